package types

import (
	"fmt"
	"time"
)

// WriterType distinguishes authors from translators. A writer row is
// deduplicated by (name, type), so the same person can appear once as an
// author and once as a translator.
type WriterType string

const (
	WriterAuthor     WriterType = "author"
	WriterTranslator WriterType = "translator"
)

// ParseWriterType converts the database representation back into a WriterType
func ParseWriterType(s string) (WriterType, error) {
	switch s {
	case "author":
		return WriterAuthor, nil
	case "translator":
		return WriterTranslator, nil
	default:
		return "", fmt.Errorf("invalid writer type: %q", s)
	}
}

func (w WriterType) String() string {
	return string(w)
}

// Book is a single book row. Pages and PubYear are optional; a nil pointer
// means the value was never entered.
type Book struct {
	ID      *int64 `json:"id" yaml:"id"`
	Title   string `json:"title" yaml:"title"`
	Pages   *int   `json:"pages,omitempty" yaml:"pages,omitempty"`
	PubYear *int   `json:"pub_year,omitempty" yaml:"pub_year,omitempty"`
	Genre   string `json:"genre" yaml:"genre"`
}

// Review is a reading note attached to exactly one book.
type Review struct {
	ID       *int64     `json:"id" yaml:"id"`
	BookID   int64      `json:"book_id" yaml:"book_id"`
	DateRead *time.Time `json:"date_read,omitempty" yaml:"date_read,omitempty"`
	Rating   int        `json:"rating" yaml:"rating"`
	Text     string     `json:"review" yaml:"review"`
}

// Writer is an author or translator, shared across books.
type Writer struct {
	ID   *int64     `json:"id" yaml:"id"`
	Name string     `json:"name" yaml:"name"`
	Type WriterType `json:"type" yaml:"type"`
}

// ExtendedBook is a book joined with its writers and reviews, the shape the
// UI and reports consume.
type ExtendedBook struct {
	Book        Book     `json:"book" yaml:"book"`
	Authors     []Writer `json:"authors" yaml:"authors"`
	Translators []Writer `json:"translators,omitempty" yaml:"translators,omitempty"`
	Reviews     []Review `json:"reviews,omitempty" yaml:"reviews,omitempty"`
}

// NewBook is the input for creating a book. Authors and Translators are
// plain names; the library layer resolves them to writer rows.
type NewBook struct {
	Title       string
	Authors     []string
	Translators []string
	Pages       *int
	PubYear     *int
	Genre       string
}

// NewReview is the input for creating a review. A nil DateRead defaults to
// today when stored.
type NewReview struct {
	BookID   int64
	DateRead *time.Time
	Rating   int
	Text     string
}

// BookFilter narrows GetBooks results. Zero value means no filtering.
type BookFilter struct {
	ID   *int64
	Year *int
}
