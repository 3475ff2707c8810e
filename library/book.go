package library

import (
	"fmt"
	"sync/atomic"
)

const (
	minBookYear = 1500
	maxBookYear = 2025
)

// Book is a catalog entry. Every field is held by value, so a Book returned
// from any accessor is an independent copy.
type Book struct {
	title  string
	author Author
	year   int
	price  float64
	isbn   string
}

// BookFactory constructs books and counts every successful construction.
// Copying a Book never goes through the factory and is not counted.
type BookFactory struct {
	created atomic.Int64
}

// NewBookFactory returns a factory whose counter starts at zero.
func NewBookFactory() *BookFactory { return &BookFactory{} }

// NewBook validates the year first and then the price. The title, author and
// ISBN are taken as given.
func (f *BookFactory) NewBook(title string, author Author, year int, price float64, isbn string) (Book, error) {
	b := Book{title: title, author: author, isbn: isbn}
	if err := b.SetYear(year); err != nil {
		return Book{}, err
	}
	if err := b.SetPrice(price); err != nil {
		return Book{}, err
	}
	f.created.Add(1)
	return b, nil
}

// UnknownBook returns the placeholder book. It skips validation but is
// still counted.
func (f *BookFactory) UnknownBook() Book {
	f.created.Add(1)
	return Book{
		title:  "Unknown",
		author: UnknownAuthor(),
		year:   2000,
		price:  0,
		isbn:   "Unknown",
	}
}

// Total reports how many books this factory has constructed.
func (f *BookFactory) Total() int64 { return f.created.Load() }

func (b Book) Title() string  { return b.title }
func (b Book) Author() Author { return b.author }
func (b Book) Year() int      { return b.year }
func (b Book) Price() float64 { return b.price }
func (b Book) ISBN() string   { return b.isbn }

// SetPrice rejects negative prices.
func (b *Book) SetPrice(p float64) error {
	if p < 0 {
		return invalid("Price cannot be negative")
	}
	b.price = p
	return nil
}

// SetYear rejects years outside [1500, 2025].
func (b *Book) SetYear(y int) error {
	if y < minBookYear || y > maxBookYear {
		return invalid("Year out of range")
	}
	b.year = y
	return nil
}

func (b Book) String() string {
	return fmt.Sprintf("%s by %s (%d) - %f lv. ISBN: %s", b.title, b.author.name, b.year, b.price, b.isbn)
}
