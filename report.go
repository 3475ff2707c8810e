package main

import (
	"fmt"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/spf13/cobra"

	"library-catalog/library"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func newReportCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "report",
		Short: "Print the configured catalog with loans and overdue status",
		Long: `Seeds a library from the config file and prints books, members and
loans. Overdue status is evaluated against --today (or the current date).

Examples:
  catalog report --config catalog.yaml
  catalog report --config catalog.yaml --today 2025-11-20 --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := opts.session(cmd.OutOrStdout(), cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			mgr, err := s.manager()
			if err != nil {
				return err
			}
			if s.json {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(mgr.Snapshot(s.today))
			}
			printReport(s, mgr)
			return nil
		},
	}
}

func printReport(s *session, mgr *library.LibraryManager) {
	p := s.out
	p.Plain("%s", mgr.Summary())

	p.Section("Books")
	books := mgr.GetAllBooks()
	if len(books) == 0 {
		p.Muted("No books in library.")
	} else {
		p.Plain("%-12s %-30s %-25s %-6s %10s %-10s", "ISBN", "Title", "Author", "Year", "Price", "Available")
		p.Plain("%s", strings.Repeat("-", 98))
		for _, b := range books {
			p.Plain("%s", library.PrettyBook(b, mgr.IsBookAvailable(b.ISBN())))
		}
	}

	p.Section("Members")
	members := mgr.GetAllMembers()
	if len(members) == 0 {
		p.Muted("No members registered.")
	}
	for _, m := range members {
		p.Plain("%s", m)
	}

	p.Section(fmt.Sprintf("Loans (as of %s)", s.today))
	loans := mgr.GetAllLoans()
	if len(loans) == 0 {
		p.Muted("No loans recorded.")
	}
	for _, l := range loans {
		if l.IsOverdue(s.today) {
			p.Warning("%s OVERDUE", l)
			continue
		}
		p.Plain("%s", l)
	}
}
