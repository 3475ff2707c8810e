package library

// BookRecord is the serializable form of a Book.
type BookRecord struct {
	Title           string  `json:"title"`
	Author          string  `json:"author"`
	AuthorBirthYear int     `json:"author_birth_year"`
	Year            int     `json:"year"`
	Price           float64 `json:"price"`
	ISBN            string  `json:"isbn"`
}

// MemberRecord is the serializable form of a Member.
type MemberRecord struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	YearJoined int    `json:"year_joined"`
}

// LoanRecord is the serializable form of a Loan. Overdue is evaluated
// against the date the snapshot was taken for.
type LoanRecord struct {
	ID        string `json:"id"`
	ISBN      string `json:"isbn"`
	MemberID  string `json:"member_id"`
	StartDate string `json:"start_date"`
	DueDate   string `json:"due_date"`
	Returned  bool   `json:"returned"`
	Overdue   bool   `json:"overdue"`
}

// Snapshot represents the complete library state at one point in time.
type Snapshot struct {
	Today             string         `json:"today,omitempty"`
	Books             []BookRecord   `json:"books"`
	Members           []MemberRecord `json:"members"`
	Loans             []LoanRecord   `json:"loans"`
	ActiveLoans       int            `json:"active_loans"`
	TotalBooksCreated int64          `json:"total_books_created"`
}

// Snapshot copies the current state into records. An empty today marks no
// loan as overdue.
func (l *Library) Snapshot(today string) Snapshot {
	l.mu.Lock()
	defer l.mu.Unlock()

	s := Snapshot{
		Today:       today,
		Books:       make([]BookRecord, 0, len(l.books)),
		Members:     make([]MemberRecord, 0, len(l.members)),
		Loans:       make([]LoanRecord, 0, len(l.loans)),
		ActiveLoans: l.activeLoanCount(),
	}
	for _, b := range l.books {
		s.Books = append(s.Books, BookRecord{
			Title:           b.title,
			Author:          b.author.name,
			AuthorBirthYear: b.author.birthYear,
			Year:            b.year,
			Price:           b.price,
			ISBN:            b.isbn,
		})
	}
	for _, m := range l.members {
		s.Members = append(s.Members, MemberRecord{ID: m.id, Name: m.name, YearJoined: m.yearJoined})
	}
	for _, ln := range l.loans {
		s.Loans = append(s.Loans, LoanRecord{
			ID:        ln.id.String(),
			ISBN:      ln.isbn,
			MemberID:  ln.memberID,
			StartDate: ln.startDate,
			DueDate:   ln.dueDate,
			Returned:  ln.returned,
			Overdue:   today != "" && ln.IsOverdue(today),
		})
	}
	return s
}
