package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"library-catalog/config"
	"library-catalog/library"
	"library-catalog/output"
)

// repl is the interactive command loop over one in-memory library.
type repl struct {
	sc    *bufio.Scanner
	out   *output.Printer
	mgr   *library.LibraryManager
	today string
}

func runREPL(in io.Reader, s *session, mgr *library.LibraryManager) error {
	r := &repl{sc: bufio.NewScanner(in), out: s.out, mgr: mgr, today: s.today}
	p := r.out

	p.Plain("Welcome to the Library Catalog!")
	p.Plain("Available commands:")
	p.Plain("  Books: add book, list books, search author")
	p.Plain("  Members: add member, list members")
	p.Plain("  Circulation: checkout, return, list loans, overdue")
	p.Plain("  System: summary, exit")
	p.Info("Today is %s.", r.today)

	for {
		r.prompt("\n> ")
		if !r.sc.Scan() {
			break
		}
		cmd := strings.TrimSpace(r.sc.Text())

		switch cmd {
		case "add book":
			r.handleAddBook()
		case "add member":
			r.handleAddMember()
		case "list books":
			r.handleListBooks()
		case "list members":
			r.handleListMembers()
		case "list loans":
			r.handleListLoans()
		case "search author":
			r.handleSearchAuthor()
		case "checkout":
			r.handleCheckout()
		case "return":
			r.handleReturn()
		case "overdue":
			r.handleOverdue()
		case "summary":
			p.Plain("%s", r.mgr.Summary())
		case "exit":
			p.Plain("Goodbye!")
			return nil
		case "":
		default:
			p.Error("Unknown command. Type one of the available commands listed above.")
		}
	}
	return r.sc.Err()
}

func (r *repl) prompt(label string) {
	fmt.Fprint(r.out.Writer(), label)
}

// ask prompts for one line. ok is false when input is exhausted.
func (r *repl) ask(label string) (string, bool) {
	r.prompt(label)
	if !r.sc.Scan() {
		return "", false
	}
	return strings.TrimSpace(r.sc.Text()), true
}

func (r *repl) askInt(label string) (int, bool) {
	s, ok := r.ask(label)
	if !ok {
		return 0, false
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		r.out.Error("Invalid number: %s", s)
		return 0, false
	}
	return n, true
}

func (r *repl) askDate(label, fallback string) (string, bool) {
	s, ok := r.ask(label)
	if !ok {
		return "", false
	}
	if s == "" {
		s = fallback
	}
	if err := config.ValidateDate(s); err != nil {
		r.out.Error("Invalid date: %v", err)
		return "", false
	}
	return s, true
}

func (r *repl) handleAddBook() {
	title, ok := r.ask("Title: ")
	if !ok {
		return
	}
	author, ok := r.ask("Author: ")
	if !ok {
		return
	}
	birthYear, ok := r.askInt("Author birth year: ")
	if !ok {
		return
	}
	year, ok := r.askInt("Year: ")
	if !ok {
		return
	}
	priceStr, ok := r.ask("Price: ")
	if !ok {
		return
	}
	price, err := strconv.ParseFloat(priceStr, 64)
	if err != nil {
		r.out.Error("Invalid price: %s", priceStr)
		return
	}
	isbn, ok := r.ask("ISBN: ")
	if !ok {
		return
	}

	b, err := r.mgr.AddBook(title, author, birthYear, year, price, isbn)
	if err != nil {
		r.out.Error("Error adding book: %v", err)
		return
	}
	r.out.Success("Added %s", b)
}

func (r *repl) handleAddMember() {
	name, ok := r.ask("Name: ")
	if !ok {
		return
	}
	id, ok := r.ask("Member ID: ")
	if !ok {
		return
	}
	joined, ok := r.askInt("Year joined: ")
	if !ok {
		return
	}

	m, err := r.mgr.AddMember(name, id, joined)
	if err != nil {
		r.out.Error("Error adding member: %v", err)
		return
	}
	r.out.Success("Added member %s", m)
}

func (r *repl) handleListBooks() {
	books := r.mgr.GetAllBooks()
	if len(books) == 0 {
		r.out.Plain("No books in library.")
		return
	}

	r.out.Plain("%-12s %-30s %-25s %-6s %10s %-10s", "ISBN", "Title", "Author", "Year", "Price", "Available")
	r.out.Plain("%s", strings.Repeat("-", 98))
	for _, b := range books {
		r.out.Plain("%s", library.PrettyBook(b, r.mgr.IsBookAvailable(b.ISBN())))
	}
}

func (r *repl) handleListMembers() {
	members := r.mgr.GetAllMembers()
	if len(members) == 0 {
		r.out.Plain("No members registered.")
		return
	}
	for _, m := range members {
		r.out.Plain("%s", m)
	}
}

func (r *repl) handleListLoans() {
	loans := r.mgr.GetAllLoans()
	if len(loans) == 0 {
		r.out.Plain("No loans recorded.")
		return
	}
	for _, l := range loans {
		r.out.Plain("%s", l)
	}
}

func (r *repl) handleSearchAuthor() {
	q, ok := r.ask("Author contains: ")
	if !ok {
		return
	}

	books := r.mgr.SearchByAuthor(q)
	if len(books) == 0 {
		r.out.Plain("No books found for author '%s'.", q)
		return
	}
	r.out.Plain("Found %d book(s) for author '%s':", len(books), q)
	for _, b := range books {
		r.out.Plain("%s", b)
	}
}

func (r *repl) handleCheckout() {
	isbn, ok := r.ask("ISBN: ")
	if !ok {
		return
	}
	memberID, ok := r.ask("Member ID: ")
	if !ok {
		return
	}
	start, ok := r.askDate(fmt.Sprintf("Start date [%s]: ", r.today), r.today)
	if !ok {
		return
	}
	due, ok := r.askDate("Due date: ", "")
	if !ok {
		return
	}

	if err := r.mgr.CheckoutBook(isbn, memberID, start, due); err != nil {
		r.out.Error("Error checking out book: %v", err)
		return
	}

	who := memberID
	if m, err := r.mgr.GetMember(memberID); err == nil {
		who = m.Name()
	} else {
		r.out.Warning("Member %s is not registered", memberID)
	}
	r.out.Success("Book %s checked out to %s until %s", isbn, who, due)
}

func (r *repl) handleReturn() {
	isbn, ok := r.ask("ISBN: ")
	if !ok {
		return
	}
	memberID, ok := r.ask("Member ID: ")
	if !ok {
		return
	}

	if err := r.mgr.ReturnBook(isbn, memberID); err != nil {
		r.out.Error("Error returning book: %v", err)
		return
	}
	r.out.Success("Book %s returned by %s", isbn, memberID)
}

func (r *repl) handleOverdue() {
	loans := r.mgr.OverdueLoans(r.today)
	if len(loans) == 0 {
		r.out.Plain("No overdue loans as of %s.", r.today)
		return
	}
	for _, l := range loans {
		r.out.Warning("%s", l)
	}
}
