// Package report computes reading statistics over the loaded library.
// Computations are pure so the TUI report screen and the CLI report command
// can share them.
package report

import (
	"sort"

	"github.com/studiowebux/libro/internal/types"
)

// AuthorStat is one author's book count.
type AuthorStat struct {
	Name  string
	Books int
}

// AuthorStats counts books per author name, most-read first. Authors are
// already deduplicated by the writers table, so each book contributes once
// per distinct author.
func AuthorStats(books []types.ExtendedBook) []AuthorStat {
	counts := make(map[string]int)
	for _, b := range books {
		for _, a := range b.Authors {
			counts[a.Name]++
		}
	}

	stats := make([]AuthorStat, 0, len(counts))
	for name, n := range counts {
		stats = append(stats, AuthorStat{Name: name, Books: n})
	}
	sort.Slice(stats, func(i, j int) bool {
		if stats[i].Books != stats[j].Books {
			return stats[i].Books > stats[j].Books
		}
		return stats[i].Name < stats[j].Name
	})
	return stats
}

// ReadingStats aggregates totals across the whole library.
type ReadingStats struct {
	TotalBooks    int
	TotalPages    int
	TotalReviews  int
	AverageRating float64
}

// ComputeReadingStats sums books, pages and reviews. AverageRating is zero
// when there are no reviews.
func ComputeReadingStats(books []types.ExtendedBook) ReadingStats {
	var stats ReadingStats
	stats.TotalBooks = len(books)

	ratingSum := 0
	for _, b := range books {
		if b.Book.Pages != nil {
			stats.TotalPages += *b.Book.Pages
		}
		stats.TotalReviews += len(b.Reviews)
		for _, r := range b.Reviews {
			ratingSum += r.Rating
		}
	}
	if stats.TotalReviews > 0 {
		stats.AverageRating = float64(ratingSum) / float64(stats.TotalReviews)
	}
	return stats
}

// YearCount is the number of books read (reviewed) in one year.
type YearCount struct {
	Year  int
	Count int
}

// YearCounts buckets reviews by their read date's year, ascending. Reviews
// without a date are skipped.
func YearCounts(books []types.ExtendedBook) []YearCount {
	counts := make(map[int]int)
	for _, b := range books {
		for _, r := range b.Reviews {
			if r.DateRead != nil {
				counts[r.DateRead.Year()]++
			}
		}
	}

	years := make([]YearCount, 0, len(counts))
	for year, n := range counts {
		years = append(years, YearCount{Year: year, Count: n})
	}
	sort.Slice(years, func(i, j int) bool { return years[i].Year < years[j].Year })
	return years
}

// RecentBooks returns the most recently added books (highest id first),
// truncated to limit.
func RecentBooks(books []types.ExtendedBook, limit int) []types.ExtendedBook {
	recent := make([]types.ExtendedBook, len(books))
	copy(recent, books)
	sort.Slice(recent, func(i, j int) bool {
		var a, b int64
		if recent[i].Book.ID != nil {
			a = *recent[i].Book.ID
		}
		if recent[j].Book.ID != nil {
			b = *recent[j].Book.ID
		}
		return a > b
	})
	if limit > 0 && len(recent) > limit {
		recent = recent[:limit]
	}
	return recent
}
