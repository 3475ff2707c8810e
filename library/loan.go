package library

import (
	"fmt"

	"github.com/google/uuid"
)

// Loan records one borrowing of a book by a member. Dates are ISO 8601
// (YYYY-MM-DD) strings and are compared lexicographically, which matches
// chronological order for that fixed-width format.
type Loan struct {
	id        uuid.UUID
	isbn      string
	memberID  string
	startDate string
	dueDate   string
	returned  bool
}

// NewLoan fails when dueDate sorts before startDate. Neither the ISBN nor the
// member ID is checked against any catalog here.
func NewLoan(isbn, memberID, startDate, dueDate string) (Loan, error) {
	if dueDate < startDate {
		return Loan{}, invalid("Due date cannot be earlier than start date")
	}
	return Loan{
		id:        uuid.New(),
		isbn:      isbn,
		memberID:  memberID,
		startDate: startDate,
		dueDate:   dueDate,
	}, nil
}

func (l Loan) ID() uuid.UUID     { return l.id }
func (l Loan) ISBN() string      { return l.isbn }
func (l Loan) MemberID() string  { return l.memberID }
func (l Loan) StartDate() string { return l.startDate }
func (l Loan) DueDate() string   { return l.dueDate }

// MarkReturned closes the loan. Calling it again has no further effect.
func (l *Loan) MarkReturned() { l.returned = true }

func (l Loan) IsReturned() bool { return l.returned }

// IsOverdue reports whether an active loan is past its due date. A loan due
// today is not overdue.
func (l Loan) IsOverdue(today string) bool {
	return !l.returned && today > l.dueDate
}

func (l Loan) String() string {
	status := "active"
	if l.returned {
		status = "returned"
	}
	return fmt.Sprintf("Loan: %s to %s, from %s to %s (%s)", l.isbn, l.memberID, l.startDate, l.dueDate, status)
}
