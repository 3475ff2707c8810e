package config

import (
	"github.com/pkg/errors"

	"library-catalog/library"
)

// Apply registers the catalog's books and members in file order and then
// replays its loans through m.
func (c Catalog) Apply(m *library.LibraryManager) error {
	for i, b := range c.Books {
		if _, err := m.AddBook(b.Title, b.Author.Name, b.Author.BirthYear, b.Year, b.Price, b.ISBN); err != nil {
			return errors.Wrapf(err, "catalog.books[%d]", i)
		}
	}
	for i, mem := range c.Members {
		if _, err := m.AddMember(mem.Name, mem.ID, mem.YearJoined); err != nil {
			return errors.Wrapf(err, "catalog.members[%d]", i)
		}
	}
	for i, l := range c.Loans {
		if err := m.CheckoutBook(l.ISBN, l.MemberID, l.Start, l.Due); err != nil {
			return errors.Wrapf(err, "catalog.loans[%d]", i)
		}
		if !l.Returned {
			continue
		}
		if err := m.ReturnBook(l.ISBN, l.MemberID); err != nil {
			return errors.Wrapf(err, "catalog.loans[%d]", i)
		}
	}
	return nil
}
