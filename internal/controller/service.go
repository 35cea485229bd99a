package controller

import (
	"context"

	"github.com/project/librarysrv/internal/entity"
	"go.uber.org/zap"
)

type (
	AuthorUseCase interface {
		ListAuthors(ctx context.Context) ([]entity.Author, error)
		GetAuthor(ctx context.Context, id string) (entity.Author, error)
		SearchAuthors(ctx context.Context, term string) ([]entity.Author, error)
		AddAuthor(ctx context.Context, fields map[string]any) (entity.Author, error)
		UpdateAuthor(ctx context.Context, id string, fields map[string]any) (entity.Author, error)
		DeleteAuthor(ctx context.Context, id string) (entity.Author, error)
	}

	PublisherUseCase interface {
		ListPublishers(ctx context.Context) ([]entity.Publisher, error)
		GetPublisher(ctx context.Context, id string) (entity.Publisher, error)
		SearchPublishers(ctx context.Context, term string) ([]entity.Publisher, error)
		AddPublisher(ctx context.Context, fields map[string]any) (entity.Publisher, error)
		UpdatePublisher(ctx context.Context, id string, fields map[string]any) (entity.Publisher, error)
		DeletePublisher(ctx context.Context, id string) (entity.Publisher, error)
	}

	BooksUseCase interface {
		ListBooks(ctx context.Context) ([]entity.BookView, error)
		GetBook(ctx context.Context, id string) (entity.BookView, error)
		SearchBooks(ctx context.Context, term string) ([]entity.BookView, error)
		AddBook(ctx context.Context, fields map[string]any) (entity.BookView, error)
		UpdateBook(ctx context.Context, id string, fields map[string]any) (entity.BookView, error)
		DeleteBook(ctx context.Context, id string) (entity.BookView, error)
	}
)

const tracerName = "github.com/project/librarysrv/internal/controller"

type implementation struct {
	logger     *zap.Logger
	categories map[string]route
}

func New(
	logger *zap.Logger,
	authorUseCase AuthorUseCase,
	booksUseCase BooksUseCase,
	publisherUseCase PublisherUseCase,
) *implementation {
	return &implementation{
		logger:     logger,
		categories: newCategoryTable(authorUseCase, booksUseCase, publisherUseCase),
	}
}
