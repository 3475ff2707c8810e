package library

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrBookNotFound   = errors.New("book not found")
	ErrBookOnLoan     = errors.New("book already checked out")
	ErrMemberNotFound = errors.New("member not found")
	ErrNoActiveLoan   = errors.New("no active loan")
)

// LibraryManager is a thin façade over the Library, keeping CLI code simple.
// It owns the BookFactory so the count of created books belongs to one
// catalog rather than to the process.
type LibraryManager struct {
	books *BookFactory
	lib   *Library
}

// NewLibraryManager creates an empty library and a fresh book counter.
func NewLibraryManager(opts ...Option) *LibraryManager {
	return &LibraryManager{books: NewBookFactory(), lib: New(opts...)}
}

// Library exposes the underlying aggregate.
func (lm *LibraryManager) Library() *Library { return lm.lib }

// ------------------ Book helpers ------------------

// AddBook builds the author and the book and registers the book.
func (lm *LibraryManager) AddBook(title, authorName string, birthYear, year int, price float64, isbn string) (Book, error) {
	author, err := NewAuthor(authorName, birthYear)
	if err != nil {
		return Book{}, fmt.Errorf("author %q: %w", authorName, err)
	}
	b, err := lm.books.NewBook(title, author, year, price, isbn)
	if err != nil {
		return Book{}, fmt.Errorf("book %q: %w", title, err)
	}
	lm.lib.AddBook(b)
	return b, nil
}

// NewBook constructs a book through the manager's counter without registering it.
func (lm *LibraryManager) NewBook(title string, author Author, year int, price float64, isbn string) (Book, error) {
	return lm.books.NewBook(title, author, year, price, isbn)
}

func (lm *LibraryManager) RegisterBook(b Book)      { lm.lib.AddBook(b) }
func (lm *LibraryManager) GetAllBooks() []Book      { return lm.lib.Books() }
func (lm *LibraryManager) TotalBooksCreated() int64 { return lm.books.Total() }

// ------------------ Member helpers ------------------

func (lm *LibraryManager) AddMember(name, id string, yearJoined int) (Member, error) {
	m, err := NewMember(name, id, yearJoined)
	if err != nil {
		return Member{}, err
	}
	lm.lib.AddMember(m)
	return m, nil
}

func (lm *LibraryManager) GetMember(id string) (Member, error) {
	m, ok := lm.lib.FindMember(id)
	if !ok {
		return Member{}, fmt.Errorf("%w: %s", ErrMemberNotFound, id)
	}
	return m, nil
}

func (lm *LibraryManager) GetAllMembers() []Member { return lm.lib.Members() }

// ------------------ Search ------------------

// SearchByAuthor returns the books whose author name contains q. Unlike
// Library.FindByAuthor, an empty or whitespace-only query matches nothing,
// so a stray space typed at the prompt does not list every author with a
// space in the name.
func (lm *LibraryManager) SearchByAuthor(q string) []Book {
	if strings.TrimSpace(q) == "" {
		return []Book{}
	}
	return lm.lib.FindByAuthor(q)
}

// ------------------ Circulation ------------------

// CheckoutBook lends the book and explains a refusal as an error.
func (lm *LibraryManager) CheckoutBook(isbn, memberID, start, due string) error {
	ok, err := lm.lib.LoanBook(isbn, memberID, start, due)
	if err != nil {
		return err
	}
	if ok {
		return nil
	}
	if !lm.lib.HasBook(isbn) {
		return fmt.Errorf("%w: %s", ErrBookNotFound, isbn)
	}
	return fmt.Errorf("%w: %s", ErrBookOnLoan, isbn)
}

// ReturnBook closes the member's active loan for isbn.
func (lm *LibraryManager) ReturnBook(isbn, memberID string) error {
	if !lm.lib.ReturnBook(isbn, memberID) {
		return fmt.Errorf("%w for book %s and member %s", ErrNoActiveLoan, isbn, memberID)
	}
	return nil
}

func (lm *LibraryManager) IsBookAvailable(isbn string) bool { return lm.lib.IsBookAvailable(isbn) }
func (lm *LibraryManager) GetAllLoans() []Loan              { return lm.lib.Loans() }

func (lm *LibraryManager) OverdueLoans(today string) []Loan { return lm.lib.OverdueLoans(today) }

// ------------------ Utilities ------------------

func (lm *LibraryManager) Summary() string { return lm.lib.String() }

// Snapshot includes the manager's book counter.
func (lm *LibraryManager) Snapshot(today string) Snapshot {
	s := lm.lib.Snapshot(today)
	s.TotalBooksCreated = lm.books.Total()
	return s
}

// PrettyBook formats a book for lists.
func PrettyBook(b Book, available bool) string {
	return fmt.Sprintf("%-12s %-30s %-25s %-6d %10.2f %-10t", b.isbn, b.title, b.author.name, b.year, b.price, available)
}
