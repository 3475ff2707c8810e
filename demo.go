package main

import (
	"github.com/spf13/cobra"

	"library-catalog/library"
	"library-catalog/output"
)

func newDemoCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Run the lending walkthrough on a fresh library",
		Long: `Builds a library with two books by Ivan Vazov and one member, lends a
book, returns it and lists the author's books. The config catalog is ignored.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := opts.session(cmd.OutOrStdout(), cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			return runDemo(s.out, library.NewLibraryManager(library.WithLogger(s.logger)))
		},
	}
}

func runDemo(p *output.Printer, mgr *library.LibraryManager) error {
	author, err := library.NewAuthor("Ivan Vazov", 1850)
	if err != nil {
		return err
	}
	b1, err := mgr.NewBook("Pod igoto", author, 1894, 25.50, "ISBN-001")
	if err != nil {
		return err
	}
	b2, err := mgr.NewBook("Nema zemya", author, 1900, 18.90, "ISBN-002")
	if err != nil {
		return err
	}
	mgr.RegisterBook(b1)
	mgr.RegisterBook(b2)
	if _, err := mgr.AddMember("Petar Petrov", "M001", 2023); err != nil {
		return err
	}

	p.Plain("%s", mgr.Summary())

	if err := mgr.CheckoutBook("ISBN-001", "M001", "2025-11-03", "2025-11-17"); err == nil {
		p.Success("Loan created.")
	} else {
		p.Error("Loan failed: %v", err)
	}

	p.Plain("Available ISBN-001? %t", mgr.IsBookAvailable("ISBN-001"))
	if err := mgr.ReturnBook("ISBN-001", "M001"); err != nil {
		p.Error("Return failed: %v", err)
	}
	p.Plain("Available ISBN-001? %t", mgr.IsBookAvailable("ISBN-001"))

	for _, b := range mgr.SearchByAuthor("Vazov") {
		p.Plain("%s", b)
	}

	p.Plain("Total books created: %d", mgr.TotalBooksCreated())
	return nil
}
