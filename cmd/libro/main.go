package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/studiowebux/libro/internal/cli"
	"github.com/studiowebux/libro/internal/config"
	"github.com/studiowebux/libro/internal/library"
	"github.com/studiowebux/libro/internal/tui"
)

var version = "0.1.0"

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "libro",
	Short: "Libro - personal library tracker",
	Long: `Libro tracks the books you read: titles, authors, translators,
genres, and your reviews. All data lives in a local SQLite database.

Run without arguments to start the interactive TUI, or use a subcommand
for one-shot operations.

Examples:
  libro                                      # Start the TUI
  libro add -t "Dune" -a "Frank Herbert" -g 소설
  libro browse                               # List all books
  libro browse --output json                 # Machine-readable listing
  libro review 3 -r 5 -m "A desert classic"  # Review book #3
  libro report years                         # Reading chart by year`,
	Version: version,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTUI()
	},
}

func runTUI() error {
	mgr, err := openLibrary()
	if err != nil {
		return err
	}

	if config.DebugEnabled() {
		f, err := tea.LogToFile(config.DebugLogPath, "libro")
		if err != nil {
			return fmt.Errorf("failed to open debug log: %w", err)
		}
		defer f.Close()
	}

	model, err := tui.NewModel(mgr)
	if err != nil {
		mgr.Close()
		return err
	}

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}

func openLibrary() (*library.Manager, error) {
	if err := config.Initialize(); err != nil {
		return nil, fmt.Errorf("failed to initialize config: %w", err)
	}
	mgr, err := library.NewManager(config.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open library: %w", err)
	}
	return mgr, nil
}

var addOpts cli.AddOptions

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a book",
	Long:  "Add a book. Missing required fields are prompted for interactively.",
	RunE: func(cmd *cobra.Command, args []string) error {
		mgr, err := openLibrary()
		if err != nil {
			return err
		}
		defer mgr.Close()
		return cli.Add(mgr, addOpts, os.Stdout)
	},
}

var browseOpts cli.BrowseOptions

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "List books",
	RunE: func(cmd *cobra.Command, args []string) error {
		mgr, err := openLibrary()
		if err != nil {
			return err
		}
		defer mgr.Close()
		return cli.Browse(mgr, browseOpts, os.Stdout)
	},
}

var reviewOpts cli.ReviewOptions

var reviewCmd = &cobra.Command{
	Use:   "review <book-id>",
	Short: "Add a review to a book",
	Long:  "Add a review to a book. Without -m the review text is read from stdin.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := fmt.Sscanf(args[0], "%d", &reviewOpts.BookID); err != nil {
			return fmt.Errorf("invalid book id: %q", args[0])
		}
		mgr, err := openLibrary()
		if err != nil {
			return err
		}
		defer mgr.Close()
		return cli.Review(mgr, reviewOpts, os.Stdin, os.Stdout)
	},
}

var reportCmd = &cobra.Command{
	Use:       "report [authors|years|stats|recent]",
	Short:     "Print reading reports",
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: []string{"authors", "years", "stats", "recent"},
	RunE: func(cmd *cobra.Command, args []string) error {
		view := ""
		if len(args) > 0 {
			view = args[0]
		}
		mgr, err := openLibrary()
		if err != nil {
			return err
		}
		defer mgr.Close()
		return cli.Report(mgr, view, os.Stdout)
	},
}

func init() {
	addCmd.Flags().StringVarP(&addOpts.Title, "title", "t", "", "Book title")
	addCmd.Flags().StringVarP(&addOpts.Authors, "authors", "a", "", "Comma-separated author names")
	addCmd.Flags().StringVar(&addOpts.Translators, "translators", "", "Comma-separated translator names")
	addCmd.Flags().StringVarP(&addOpts.Genre, "genre", "g", "", "Genre")
	addCmd.Flags().IntVarP(&addOpts.Pages, "pages", "p", 0, "Page count")
	addCmd.Flags().IntVarP(&addOpts.Year, "year", "y", 0, "Publication year")

	browseCmd.Flags().Int64Var(&browseOpts.ID, "id", 0, "Show a single book by id")
	browseCmd.Flags().IntVarP(&browseOpts.Year, "year", "y", 0, "Filter by publication year")
	browseCmd.Flags().StringVarP(&browseOpts.Query, "query", "q", "", "Substring filter on title, author, genre, or review")
	browseCmd.Flags().StringVarP(&browseOpts.Output, "output", "o", "text", "Output format: text, json, yaml")

	reviewCmd.Flags().IntVarP(&reviewOpts.Rating, "rating", "r", 5, "Rating from 1 to 5")
	reviewCmd.Flags().StringVarP(&reviewOpts.Date, "date", "d", "", "Date read (YYYY-MM-DD, defaults to today)")
	reviewCmd.Flags().StringVarP(&reviewOpts.Text, "message", "m", "", "Review text")

	rootCmd.AddCommand(addCmd, browseCmd, reviewCmd, reportCmd)
}
