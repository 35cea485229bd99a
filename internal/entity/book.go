package entity

import (
	"fmt"
	"strconv"
)

// Book is the stored form of a book. AuthorID and PublisherID never change
// after creation.
type Book struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	AuthorID    string `json:"authorId"`
	PublisherID string `json:"publisherId"`
	Year        int    `json:"year"`
	Genre       string `json:"genre"`
}

var _ Record[Book] = Book{}

func (b Book) GetID() string { return b.ID }

func (b Book) WithID(id string) Book {
	b.ID = id
	return b
}

func (b Book) Field(name string) string {
	switch name {
	case FieldID:
		return b.ID
	case FieldTitle:
		return b.Title
	case FieldAuthorID:
		return b.AuthorID
	case FieldPublisherID:
		return b.PublisherID
	case FieldYear:
		return strconv.Itoa(b.Year)
	case FieldGenre:
		return b.Genre
	default:
		return ""
	}
}

// BookView is what clients see: references are replaced by names.
type BookView struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Author    string `json:"author"`
	Publisher string `json:"publisher"`
	Year      int    `json:"year"`
	Genre     string `json:"genre"`
}

func UnknownAuthor(id string) string {
	return fmt.Sprintf("Unknown author (ID: %s)", id)
}

func UnknownPublisher(id string) string {
	return fmt.Sprintf("Unknown publisher (ID: %s)", id)
}

// NewBookView resolves the book references through the given name indexes.
func NewBookView(b Book, authorNames, publisherNames map[string]string) BookView {
	author, ok := authorNames[b.AuthorID]
	if !ok {
		author = UnknownAuthor(b.AuthorID)
	}

	publisher, ok := publisherNames[b.PublisherID]
	if !ok {
		publisher = UnknownPublisher(b.PublisherID)
	}

	return BookView{
		ID:        b.ID,
		Title:     b.Title,
		Author:    author,
		Publisher: publisher,
		Year:      b.Year,
		Genre:     b.Genre,
	}
}
