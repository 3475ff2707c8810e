package library

import "fmt"

const (
	minBirthYear = 1850
	maxBirthYear = 2025
)

// Author describes the writer of a book. Authors are plain values; a Book
// holds its own copy.
type Author struct {
	name      string
	birthYear int
}

// NewAuthor validates birthYear against [1850, 2025].
func NewAuthor(name string, birthYear int) (Author, error) {
	a := Author{name: name}
	if err := a.SetBirthYear(birthYear); err != nil {
		return Author{}, err
	}
	return a, nil
}

// UnknownAuthor is the placeholder author used by unknown books.
func UnknownAuthor() Author {
	return Author{name: "Unknown", birthYear: 1900}
}

func (a Author) Name() string   { return a.name }
func (a Author) BirthYear() int { return a.birthYear }

// SetBirthYear replaces the birth year if it is within range.
func (a *Author) SetBirthYear(y int) error {
	if y < minBirthYear || y > maxBirthYear {
		return invalid("Birth year out of range")
	}
	a.birthYear = y
	return nil
}

func (a Author) String() string {
	return fmt.Sprintf("%s (%d)", a.name, a.birthYear)
}
