package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"library-catalog/config"
	"library-catalog/library"
	"library-catalog/output"
)

// rootOptions holds the global flags. Flags win over values from the config file.
type rootOptions struct {
	configPath string
	today      string
	color      string
	jsonOutput bool
	verbose    bool
}

// session is everything a command needs once flags and config are resolved.
type session struct {
	cfg    config.FileConfig
	out    *output.Printer
	logger *slog.Logger
	today  string
	json   bool
}

// session resolves flags and config. Command output goes to w; library
// diagnostics go to errW.
func (o *rootOptions) session(w, errW io.Writer) (*session, error) {
	cfg := config.Default()
	if o.configPath != "" {
		loaded, err := config.Load(o.configPath)
		if err != nil {
			return nil, errors.Wrapf(err, "config %s", o.configPath)
		}
		cfg = loaded
	}
	if o.today != "" {
		if err := config.ValidateDate(o.today); err != nil {
			return nil, errors.Wrap(err, "--today")
		}
		cfg.Today = o.today
	}
	if o.color != "" {
		cfg.Output.Color = o.color
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var color bool
	if f, ok := w.(*os.File); ok {
		color = output.Detect(cfg.Output.Color, f)
	} else {
		color = cfg.Output.Color == config.ColorAlways
	}

	level := slog.LevelWarn
	if o.verbose {
		level = slog.LevelDebug
	}

	return &session{
		cfg:    cfg,
		out:    output.New(w, color),
		logger: slog.New(slog.NewTextHandler(errW, &slog.HandlerOptions{Level: level})),
		today:  cfg.ResolveToday(time.Now()),
		json:   o.jsonOutput || cfg.Output.JSON,
	}, nil
}

// manager builds a library seeded with the configured catalog.
func (s *session) manager() (*library.LibraryManager, error) {
	mgr := library.NewLibraryManager(library.WithLogger(s.logger))
	if err := s.cfg.Catalog.Apply(mgr); err != nil {
		return nil, errors.Wrap(err, "seed catalog")
	}
	return mgr, nil
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:   "catalog",
		Short: "In-memory library catalog: books, members and loans",
		Long: `catalog manages a small in-memory library.

Without a subcommand it starts an interactive session. The optional config
file can seed the catalog with books, members and loans.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := opts.session(cmd.OutOrStdout(), cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			mgr, err := s.manager()
			if err != nil {
				return err
			}
			return runREPL(cmd.InOrStdin(), s, mgr)
		},
	}

	root.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "Path to a YAML config file")
	root.PersistentFlags().StringVar(&opts.today, "today", "", "Reference date (YYYY-MM-DD) for overdue checks")
	root.PersistentFlags().StringVar(&opts.color, "color", "", "Color mode: auto, always or never")
	root.PersistentFlags().BoolVar(&opts.jsonOutput, "json", false, "Output reports as JSON")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Verbose logging on stderr")

	root.AddCommand(newDemoCmd(opts), newReportCmd(opts))
	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
