package library

import (
	"fmt"
	"strings"
	"sync"
)

// Library owns the books, members and loans of one catalog. It is the only
// place loans are created or returned. All collections are append-only; the
// returned flag of a loan is the single piece of state that changes in place.
//
// A single mutex covers every operation so that the availability check and
// the append in LoanBook happen atomically.
type Library struct {
	mu      sync.Mutex
	books   []Book
	members []Member
	loans   []Loan
	logger  Logger
}

// New returns an empty library.
func New(opts ...Option) *Library {
	l := &Library{logger: nopLogger{}}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// ------------------ Registration ------------------

// AddBook appends b. Duplicate ISBNs are accepted.
func (l *Library) AddBook(b Book) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.books = append(l.books, b)
}

// AddMember appends m. Duplicate member IDs are accepted.
func (l *Library) AddMember(m Member) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.members = append(l.members, m)
}

// ------------------ Lookups ------------------

func (l *Library) HasBook(isbn string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.hasBook(isbn)
}

// IsBookAvailable reports whether no active loan exists for isbn. It does not
// check that the book is in the catalog, so an unknown ISBN is "available".
func (l *Library) IsBookAvailable(isbn string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.isBookAvailable(isbn)
}

func (l *Library) HasMember(id string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.hasMember(id)
}

// FindMember returns the first member registered under id.
func (l *Library) FindMember(id string) (Member, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, m := range l.members {
		if m.id == id {
			return m, true
		}
	}
	return Member{}, false
}

func (l *Library) hasBook(isbn string) bool {
	for _, b := range l.books {
		if b.isbn == isbn {
			return true
		}
	}
	return false
}

func (l *Library) isBookAvailable(isbn string) bool {
	for _, ln := range l.loans {
		if ln.isbn == isbn && !ln.returned {
			return false
		}
	}
	return true
}

func (l *Library) hasMember(id string) bool {
	for _, m := range l.members {
		if m.id == id {
			return true
		}
	}
	return false
}

// ------------------ Circulation ------------------

// LoanBook lends the book with isbn to memberID.
//
// It returns false with a nil error when the book is not in the catalog or is
// already on loan; nothing is recorded in that case. When the dates are
// invalid the ValidationError from NewLoan is returned unchanged.
//
// The member ID is not checked against the registered members. Such loans are
// still recorded and only produce a warning.
func (l *Library) LoanBook(isbn, memberID, start, due string) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if !l.hasBook(isbn) || !l.isBookAvailable(isbn) {
		l.logger.Info("loan rejected", "isbn", isbn, "member_id", memberID)
		return false, nil
	}

	loan, err := NewLoan(isbn, memberID, start, due)
	if err != nil {
		return false, err
	}
	if !l.hasMember(memberID) {
		l.logger.Warn("loan created for unregistered member", "isbn", isbn, "member_id", memberID)
	}

	l.loans = append(l.loans, loan)
	l.logger.Debug("book loaned", "loan_id", loan.id.String(), "isbn", isbn, "member_id", memberID, "due", due)
	return true, nil
}

// ReturnBook marks the first active loan matching both isbn and memberID as
// returned. It reports false when there is no such loan.
func (l *Library) ReturnBook(isbn, memberID string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	for i := range l.loans {
		ln := &l.loans[i]
		if ln.isbn == isbn && ln.memberID == memberID && !ln.returned {
			ln.MarkReturned()
			l.logger.Debug("book returned", "loan_id", ln.id.String(), "isbn", isbn, "member_id", memberID)
			return true
		}
	}
	return false
}

// ------------------ Queries ------------------

// FindByAuthor returns, in insertion order, every book whose author name
// contains name. Matching is case-sensitive.
func (l *Library) FindByAuthor(name string) []Book {
	l.mu.Lock()
	defer l.mu.Unlock()

	var result []Book
	for _, b := range l.books {
		if strings.Contains(b.author.name, name) {
			result = append(result, b)
		}
	}
	return result
}

// OverdueLoans returns the active loans whose due date is before today.
func (l *Library) OverdueLoans(today string) []Loan {
	l.mu.Lock()
	defer l.mu.Unlock()

	var result []Loan
	for _, ln := range l.loans {
		if ln.IsOverdue(today) {
			result = append(result, ln)
		}
	}
	return result
}

func (l *Library) Books() []Book {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]Book(nil), l.books...)
}

func (l *Library) Members() []Member {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]Member(nil), l.members...)
}

// Loans returns the full loan history, returned loans included.
func (l *Library) Loans() []Loan {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]Loan(nil), l.loans...)
}

func (l *Library) ActiveLoanCount() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.activeLoanCount()
}

func (l *Library) activeLoanCount() int {
	n := 0
	for _, ln := range l.loans {
		if !ln.returned {
			n++
		}
	}
	return n
}

func (l *Library) String() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return fmt.Sprintf("Library: %d books, %d members, %d active loans", len(l.books), len(l.members), l.activeLoanCount())
}
