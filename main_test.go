package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"library-catalog/library"
)

// execute runs the root command and returns what it wrote to stdout and stderr.
func execute(t *testing.T, in string, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetIn(strings.NewReader(in))
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func writeCatalog(t *testing.T) string {
	t.Helper()
	body := `
today: "2025-11-20"
catalog:
  books:
    - title: Pod igoto
      author: {name: Ivan Vazov, birth_year: 1850}
      year: 1894
      price: 25.5
      isbn: ISBN-001
  members:
    - {name: Petar Petrov, id: M001, year_joined: 2023}
  loans:
    - {isbn: ISBN-001, member_id: M001, start: "2025-11-03", due: "2025-11-17"}
`
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write catalog: %v", err)
	}
	return path
}

func TestDemo(t *testing.T) {
	out, _, err := execute(t, "", "demo")
	require.NoError(t, err)

	want := strings.Join([]string{
		"Library: 2 books, 1 members, 0 active loans",
		"✓ Loan created.",
		"Available ISBN-001? false",
		"Available ISBN-001? true",
		"Pod igoto by Ivan Vazov (1894) - 25.500000 lv. ISBN: ISBN-001",
		"Nema zemya by Ivan Vazov (1900) - 18.900000 lv. ISBN: ISBN-002",
		"Total books created: 2",
	}, "\n") + "\n"
	assert.Equal(t, want, out)
}

func TestREPLSession(t *testing.T) {
	script := strings.Join([]string{
		"add member", "Anna Ivanova", "M002", "2024",
		"add book", "Pod igoto", "Ivan Vazov", "1850", "1894", "25.5", "ISBN-001",
		"add book", "Bad", "Nobody", "1700", "1900", "1", "ISBN-BAD",
		"checkout", "ISBN-001", "M002", "2025-11-01", "2025-11-10",
		"overdue",
		"checkout", "ISBN-001", "M003", "", "2025-11-30",
		"return", "ISBN-001", "M002",
		"return", "ISBN-001", "M002",
		"search author", "Vazov",
		"summary",
		"bogus",
		"exit",
	}, "\n") + "\n"

	out, _, err := execute(t, script, "--today", "2025-11-20")
	require.NoError(t, err)

	assert.Contains(t, out, "ℹ Today is 2025-11-20.")
	assert.Contains(t, out, "✓ Added member Anna Ivanova (ID: M002, Joined: 2024)")
	assert.Contains(t, out, "✓ Added Pod igoto by Ivan Vazov (1894) - 25.500000 lv. ISBN: ISBN-001")
	assert.Contains(t, out, "✗ Error adding book: author \"Nobody\": Birth year out of range")
	assert.Contains(t, out, "✓ Book ISBN-001 checked out to Anna Ivanova until 2025-11-10")
	assert.Contains(t, out, "⚠ Loan: ISBN-001 to M002, from 2025-11-01 to 2025-11-10 (active)")
	assert.Contains(t, out, "✗ Error checking out book: book already checked out: ISBN-001")
	assert.Contains(t, out, "✓ Book ISBN-001 returned by M002")
	assert.Contains(t, out, "✗ Error returning book: no active loan for book ISBN-001 and member M002")
	assert.Contains(t, out, "Found 1 book(s) for author 'Vazov':")
	assert.Contains(t, out, "Library: 1 books, 1 members, 0 active loans")
	assert.Contains(t, out, "✗ Unknown command.")
	assert.True(t, strings.HasSuffix(out, "Goodbye!\n"))
}

func TestREPLEndsOnEOF(t *testing.T) {
	out, _, err := execute(t, "summary\n")
	require.NoError(t, err)
	assert.Contains(t, out, "Library: 0 books, 0 members, 0 active loans")
}

func TestReport(t *testing.T) {
	out, _, err := execute(t, "", "report", "--config", writeCatalog(t))
	require.NoError(t, err)

	assert.Contains(t, out, "Library: 1 books, 1 members, 1 active loans")
	assert.Contains(t, out, "Loans (as of 2025-11-20)")
	assert.Contains(t, out, "⚠ Loan: ISBN-001 to M001, from 2025-11-03 to 2025-11-17 (active) OVERDUE")
	assert.Contains(t, out, "Petar Petrov (ID: M001, Joined: 2023)")
}

func TestReportJSON(t *testing.T) {
	out, _, err := execute(t, "", "report", "--config", writeCatalog(t), "--json", "--today", "2025-11-10")
	require.NoError(t, err)

	var snap library.Snapshot
	require.NoError(t, json.Unmarshal([]byte(out), &snap))
	assert.Equal(t, "2025-11-10", snap.Today)
	require.Len(t, snap.Loans, 1)
	assert.False(t, snap.Loans[0].Overdue)
	assert.Equal(t, 1, snap.ActiveLoans)
	assert.EqualValues(t, 1, snap.TotalBooksCreated)
	assert.Equal(t, "ISBN-001", snap.Books[0].ISBN)
}

func TestRejectsBadFlags(t *testing.T) {
	_, _, err := execute(t, "", "report", "--today", "20/11/2025")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--today")

	_, _, err = execute(t, "", "report", "--color", "sometimes")
	assert.Error(t, err)

	_, _, err = execute(t, "", "report", "--config", filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestREPLCheckoutToUnregisteredMember(t *testing.T) {
	script := strings.Join([]string{
		"add book", "Nema zemya", "Ivan Vazov", "1850", "1900", "18.9", "ISBN-002",
		"checkout", "ISBN-002", "M009", "2025-11-03", "2025-11-17",
		"list loans",
		"exit",
	}, "\n") + "\n"

	out, errOut, err := execute(t, script, "--today", "2025-11-20")
	require.NoError(t, err)

	assert.Contains(t, out, "⚠ Member M009 is not registered")
	assert.Contains(t, out, "✓ Book ISBN-002 checked out to M009 until 2025-11-17")
	assert.Contains(t, out, "Loan: ISBN-002 to M009, from 2025-11-03 to 2025-11-17 (active)")
	assert.Contains(t, errOut, "loan created for unregistered member")
	assert.Contains(t, errOut, "member_id=M009")
	assert.NotContains(t, out, "loan created for unregistered member")
}
