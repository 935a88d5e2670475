package library

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/studiowebux/libro/internal/types"
)

const dateLayout = "2006-01-02"

// AddReview stores a review for an existing book and returns the review id.
// A nil DateRead defaults to today.
func (m *Manager) AddReview(review types.NewReview) (int64, error) {
	if err := validateRating(review.Rating); err != nil {
		return 0, err
	}
	if err := validateNonEmpty(review.Text, "review text"); err != nil {
		return 0, err
	}

	var exists int
	err := m.db.QueryRow("SELECT 1 FROM books WHERE id = ?", review.BookID).Scan(&exists)
	if err == sql.ErrNoRows {
		return 0, fmt.Errorf("book %d: %w", review.BookID, ErrBookNotFound)
	}
	if err != nil {
		return 0, fmt.Errorf("failed to check book: %w", err)
	}

	dateStr := time.Now().Format(dateLayout)
	if review.DateRead != nil {
		dateStr = review.DateRead.Format(dateLayout)
	}

	res, err := m.db.Exec(
		"INSERT INTO reviews (book_id, date_read, rating, review) VALUES (?, ?, ?, ?)",
		review.BookID, dateStr, review.Rating, review.Text,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to insert review: %w", err)
	}
	return res.LastInsertId()
}

// UpdateReview replaces the stored date, rating and text of a review.
func (m *Manager) UpdateReview(reviewID int64, updates types.Review) error {
	if err := validateRating(updates.Rating); err != nil {
		return err
	}
	if err := validateNonEmpty(updates.Text, "review text"); err != nil {
		return err
	}

	var dateStr *string
	if updates.DateRead != nil {
		s := updates.DateRead.Format(dateLayout)
		dateStr = &s
	}

	res, err := m.db.Exec(
		"UPDATE reviews SET date_read = ?, rating = ?, review = ? WHERE id = ?",
		dateStr, updates.Rating, updates.Text, reviewID,
	)
	if err != nil {
		return fmt.Errorf("failed to update review: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("review %d: %w", reviewID, ErrReviewNotFound)
	}
	return nil
}

// DeleteReview removes a single review by id.
func (m *Manager) DeleteReview(reviewID int64) error {
	res, err := m.db.Exec("DELETE FROM reviews WHERE id = ?", reviewID)
	if err != nil {
		return fmt.Errorf("failed to delete review: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("review %d: %w", reviewID, ErrReviewNotFound)
	}
	return nil
}

// GetReviews returns a book's reviews, most recently read first.
func (m *Manager) GetReviews(bookID int64) ([]types.Review, error) {
	rows, err := m.db.Query(`
		SELECT id, book_id, date_read, rating, review
		FROM reviews
		WHERE book_id = ?
		ORDER BY date_read DESC`, bookID)
	if err != nil {
		return nil, fmt.Errorf("failed to load reviews: %w", err)
	}
	defer rows.Close()

	var reviews []types.Review
	for rows.Next() {
		var r types.Review
		var id int64
		var dateStr sql.NullString
		if err := rows.Scan(&id, &r.BookID, &dateStr, &r.Rating, &r.Text); err != nil {
			return nil, fmt.Errorf("failed to scan review: %w", err)
		}
		r.ID = &id
		if dateStr.Valid {
			if parsed, err := time.Parse(dateLayout, dateStr.String); err == nil {
				r.DateRead = &parsed
			}
		}
		reviews = append(reviews, r)
	}
	return reviews, rows.Err()
}
