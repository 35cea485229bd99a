package controller

import (
	"context"
	"strings"

	"github.com/project/librarysrv/internal/entity"
)

const (
	categoryAuthor    = "AUTHOR"
	categoryBook      = "BOOK"
	categoryPublisher = "PUBLISHER"
)

// operations is the category independent view of a use case.
type operations interface {
	list(ctx context.Context) (any, error)
	get(ctx context.Context, id string) (any, error)
	search(ctx context.Context, term string) (any, error)
	add(ctx context.Context, fields map[string]any) (any, error)
	update(ctx context.Context, id string, fields map[string]any) (any, error)
	remove(ctx context.Context, id string) (any, error)
}

type crud[V any] struct {
	listFn   func(context.Context) ([]V, error)
	getFn    func(context.Context, string) (V, error)
	searchFn func(context.Context, string) ([]V, error)
	addFn    func(context.Context, map[string]any) (V, error)
	updateFn func(context.Context, string, map[string]any) (V, error)
	removeFn func(context.Context, string) (V, error)
}

func (c crud[V]) list(ctx context.Context) (any, error) {
	items, err := c.listFn(ctx)
	if items == nil {
		items = []V{}
	}
	return items, err
}

func (c crud[V]) get(ctx context.Context, id string) (any, error) {
	return c.getFn(ctx, id)
}

func (c crud[V]) search(ctx context.Context, term string) (any, error) {
	return c.searchFn(ctx, term)
}

func (c crud[V]) add(ctx context.Context, fields map[string]any) (any, error) {
	return c.addFn(ctx, fields)
}

func (c crud[V]) update(ctx context.Context, id string, fields map[string]any) (any, error) {
	return c.updateFn(ctx, id, fields)
}

func (c crud[V]) remove(ctx context.Context, id string) (any, error) {
	return c.removeFn(ctx, id)
}

type category struct {
	name   string // AUTHOR
	plural string // AUTHORS
	ops    operations
}

// title is the singular name for messages, e.g. "Author".
func (c *category) title() string {
	return c.name[:1] + strings.ToLower(c.name[1:])
}

func (c *category) lowerPlural() string {
	return strings.ToLower(c.plural)
}

// route is what a category token resolves to: AUTHOR and AUTHORS lead to the
// same category, only the plural flag differs.
type route struct {
	*category
	isPlural bool
}

func newCategoryTable(authors AuthorUseCase, books BooksUseCase, publishers PublisherUseCase) map[string]route {
	var categories []*category

	if authors != nil {
		categories = append(categories, &category{
			name:   categoryAuthor,
			plural: categoryAuthor + "S",
			ops: crud[entity.Author]{
				listFn:   authors.ListAuthors,
				getFn:    authors.GetAuthor,
				searchFn: authors.SearchAuthors,
				addFn:    authors.AddAuthor,
				updateFn: authors.UpdateAuthor,
				removeFn: authors.DeleteAuthor,
			},
		})
	}

	if books != nil {
		categories = append(categories, &category{
			name:   categoryBook,
			plural: categoryBook + "S",
			ops: crud[entity.BookView]{
				listFn:   books.ListBooks,
				getFn:    books.GetBook,
				searchFn: books.SearchBooks,
				addFn:    books.AddBook,
				updateFn: books.UpdateBook,
				removeFn: books.DeleteBook,
			},
		})
	}

	if publishers != nil {
		categories = append(categories, &category{
			name:   categoryPublisher,
			plural: categoryPublisher + "S",
			ops: crud[entity.Publisher]{
				listFn:   publishers.ListPublishers,
				getFn:    publishers.GetPublisher,
				searchFn: publishers.SearchPublishers,
				addFn:    publishers.AddPublisher,
				updateFn: publishers.UpdatePublisher,
				removeFn: publishers.DeletePublisher,
			},
		})
	}

	table := make(map[string]route, 2*len(categories))
	for _, c := range categories {
		table[c.name] = route{category: c}
		table[c.plural] = route{category: c, isPlural: true}
	}
	return table
}
