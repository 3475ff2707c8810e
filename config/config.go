// Package config reads the catalog configuration file: the reference date
// used for overdue checks, output preferences and an optional seed catalog.
package config

// Color modes accepted by OutputSection.Color.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// OutputSection controls how the CLI prints results.
type OutputSection struct {
	// JSON switches report output to JSON.
	JSON bool `yaml:"json"`

	// Color is one of auto, always or never. Empty means auto.
	Color string `yaml:"color"`
}

// AuthorEntry describes a book's author in the catalog file.
type AuthorEntry struct {
	Name      string `yaml:"name"`
	BirthYear int    `yaml:"birth_year"`
}

type BookEntry struct {
	Title  string      `yaml:"title"`
	Author AuthorEntry `yaml:"author"`
	Year   int         `yaml:"year"`
	Price  float64     `yaml:"price"`
	ISBN   string      `yaml:"isbn"`
}

type MemberEntry struct {
	Name       string `yaml:"name"`
	ID         string `yaml:"id"`
	YearJoined int    `yaml:"year_joined"`
}

// LoanEntry is replayed through the library, so it is subject to the same
// availability rules as an interactive checkout. Returned loans are closed
// right after being created.
type LoanEntry struct {
	ISBN     string `yaml:"isbn"`
	MemberID string `yaml:"member_id"`
	Start    string `yaml:"start"`
	Due      string `yaml:"due"`
	Returned bool   `yaml:"returned"`
}

// Catalog is the seed data applied to a fresh library.
type Catalog struct {
	Books   []BookEntry   `yaml:"books"`
	Members []MemberEntry `yaml:"members"`
	Loans   []LoanEntry   `yaml:"loans"`
}

// FileConfig represents a catalog configuration file.
type FileConfig struct {
	// Version is the file format version (optional, currently always 1).
	Version int `yaml:"version,omitempty"`

	// Today is the YYYY-MM-DD date used for overdue checks. Empty means the
	// current date.
	Today string `yaml:"today"`

	Output  OutputSection `yaml:"output"`
	Catalog Catalog       `yaml:"catalog"`
}

// Default returns the configuration used when no file is given.
func Default() FileConfig {
	return FileConfig{Version: 1, Output: OutputSection{Color: ColorAuto}}
}
