package report

import (
	"fmt"
	"strings"

	"github.com/studiowebux/libro/internal/types"
)

func plural(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}

// FormatAuthorStats renders the author ranking as plain text for CLI output.
func FormatAuthorStats(books []types.ExtendedBook) string {
	var b strings.Builder
	b.WriteString("Author Statistics\n")
	b.WriteString(strings.Repeat("=", 40))
	b.WriteString("\n")

	stats := AuthorStats(books)
	if len(stats) == 0 {
		b.WriteString("No authors found.\n")
		return b.String()
	}

	fmt.Fprintf(&b, "Total Authors: %d\n\n", len(stats))
	b.WriteString("Most Read Authors:\n")
	for i, s := range stats {
		if i >= 10 {
			break
		}
		fmt.Fprintf(&b, "%d. %s (%d book%s)\n", i+1, s.Name, s.Books, plural(s.Books))
	}
	return b.String()
}

// FormatReadingStats renders library totals plus a per-year breakdown.
func FormatReadingStats(books []types.ExtendedBook) string {
	var b strings.Builder
	b.WriteString("Reading Statistics\n")
	b.WriteString(strings.Repeat("=", 40))
	b.WriteString("\n")

	stats := ComputeReadingStats(books)
	fmt.Fprintf(&b, "Total Books: %d\n", stats.TotalBooks)
	fmt.Fprintf(&b, "Total Pages: %d\n", stats.TotalPages)
	fmt.Fprintf(&b, "Total Reviews: %d\n", stats.TotalReviews)
	if stats.TotalReviews > 0 {
		fmt.Fprintf(&b, "Average Rating: %.1f/5\n", stats.AverageRating)
	}

	years := YearCounts(books)
	if len(years) > 0 {
		b.WriteString("\nBooks by Year:\n")
		for _, yc := range years {
			fmt.Fprintf(&b, "  %d: %d book%s\n", yc.Year, yc.Count, plural(yc.Count))
		}
	}
	return b.String()
}

// FormatYearChart renders the per-year reading counts as a bar chart.
func FormatYearChart(books []types.ExtendedBook) string {
	var b strings.Builder
	b.WriteString("Year-by-Year Reading Chart\n")
	b.WriteString(strings.Repeat("=", 40))
	b.WriteString("\n")

	years := YearCounts(books)
	if len(years) == 0 {
		b.WriteString("No reading dates available for chart generation.\n")
		return b.String()
	}
	for _, yc := range years {
		fmt.Fprintf(&b, "%d: %s (%d book%s)\n", yc.Year, strings.Repeat("█", yc.Count), yc.Count, plural(yc.Count))
	}
	return b.String()
}
