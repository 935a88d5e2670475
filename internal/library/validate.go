package library

import (
	"fmt"
	"strings"
	"time"
)

// Validation rules match what the rest of the system expects from stored
// rows: ratings 1-5, plausible publication years, positive page counts.

func validateNonEmpty(value, field string) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("%s cannot be empty", field)
	}
	return nil
}

func validateRating(rating int) error {
	if rating < 1 || rating > 5 {
		return fmt.Errorf("rating must be between 1 and 5")
	}
	return nil
}

func validateYear(year int) error {
	maxYear := time.Now().Year() + 10
	if year < 1000 || year > maxYear {
		return fmt.Errorf("year must be between 1000 and %d", maxYear)
	}
	return nil
}

func validatePages(pages int) error {
	if pages <= 0 {
		return fmt.Errorf("pages must be a positive number")
	}
	return nil
}
