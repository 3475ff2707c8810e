package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"library-catalog/config"
	"library-catalog/library"
)

func main() {
	path := "catalog.yaml"
	if len(os.Args) > 1 {
		path = os.Args[1]
	}

	cfg, err := config.Load(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading catalog: %v\n", err)
		os.Exit(1)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
	manager := library.NewLibraryManager(library.WithLogger(logger))

	fmt.Printf("Importing catalog from %s...\n", path)

	successCount := 0
	errorCount := 0

	for _, b := range cfg.Catalog.Books {
		fmt.Printf("Importing: %s by %s... ", b.Title, b.Author.Name)
		if _, err := manager.AddBook(b.Title, b.Author.Name, b.Author.BirthYear, b.Year, b.Price, b.ISBN); err != nil {
			fmt.Printf("ERROR - %v\n", err)
			errorCount++
			continue
		}
		fmt.Printf("SUCCESS (ISBN: %s)\n", b.ISBN)
		successCount++
	}

	for _, m := range cfg.Catalog.Members {
		fmt.Printf("Registering member: %s... ", m.Name)
		if _, err := manager.AddMember(m.Name, m.ID, m.YearJoined); err != nil {
			fmt.Printf("ERROR - %v\n", err)
			errorCount++
			continue
		}
		fmt.Printf("SUCCESS (ID: %s)\n", m.ID)
		successCount++
	}

	for _, l := range cfg.Catalog.Loans {
		fmt.Printf("Recording loan: %s to %s... ", l.ISBN, l.MemberID)
		if err := manager.CheckoutBook(l.ISBN, l.MemberID, l.Start, l.Due); err != nil {
			fmt.Printf("ERROR - %v\n", err)
			errorCount++
			continue
		}
		if l.Returned {
			if err := manager.ReturnBook(l.ISBN, l.MemberID); err != nil {
				fmt.Printf("ERROR - %v\n", err)
				errorCount++
				continue
			}
		}
		fmt.Println("SUCCESS")
		successCount++
	}

	fmt.Printf("\nImport complete!\n")
	fmt.Printf("Successfully imported: %d entries\n", successCount)
	fmt.Printf("Errors: %d\n", errorCount)
	fmt.Println(manager.Summary())

	if books := manager.GetAllBooks(); len(books) > 0 {
		fmt.Println("\nImported books:")
		fmt.Printf("%-12s %-50s %-30s\n", "ISBN", "Title", "Author")
		fmt.Println(strings.Repeat("-", 94))
		for _, b := range books {
			fmt.Printf("%-12s %-50s %-30s\n", b.ISBN(), truncateString(b.Title(), 50), truncateString(b.Author().Name(), 30))
		}
	}

	today := cfg.ResolveToday(time.Now())
	if overdue := manager.OverdueLoans(today); len(overdue) > 0 {
		fmt.Printf("\nOverdue as of %s:\n", today)
		for _, l := range overdue {
			fmt.Println(l)
		}
	}

	if errorCount > 0 {
		os.Exit(1)
	}
}

// truncateString shortens s to at most maxLen characters, counted in runes.
func truncateString(s string, maxLen int) string {
	r := []rune(s)
	if len(r) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return string(r[:maxLen])
	}
	return string(r[:maxLen-3]) + "..."
}
