package library

import (
	"context"
	"errors"
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/project/librarysrv/internal/entity"
	"github.com/project/librarysrv/internal/log"
	"github.com/project/librarysrv/internal/usecase/repository"
	"github.com/samber/lo"
	"go.opentelemetry.io/otel/attribute"
)

const (
	fieldAuthorName    = "authorName"
	fieldPublisherName = "publisherName"
)

var bookUpdatable = []allowedField{
	{name: entity.FieldTitle, kind: textField},
	{name: entity.FieldYear, kind: numberField},
	{name: entity.FieldGenre, kind: textField},
}

type bookInput struct {
	Title         string `json:"title"`
	AuthorName    string `json:"authorName"`
	PublisherName string `json:"publisherName"`
	Year          int    `json:"year"`
	Genre         string `json:"genre"`
}

func (l *libraryImpl) views(ctx context.Context, books []entity.Book) []entity.BookView {
	authorNames := nameIndex(ctx, l.authorRepository, entity.FieldName)
	publisherNames := nameIndex(ctx, l.publisherRepository, entity.FieldName)

	return lo.Map(books, func(b entity.Book, _ int) entity.BookView {
		return entity.NewBookView(b, authorNames, publisherNames)
	})
}

func (l *libraryImpl) view(ctx context.Context, book entity.Book) entity.BookView {
	return l.views(ctx, []entity.Book{book})[0]
}

func (l *libraryImpl) ListBooks(ctx context.Context) ([]entity.BookView, error) {
	span, traceID := traceOf(ctx)
	log.InfoEntity(l.logger, "start of listing books", traceID, log.List, kindBook, "")

	books, err := l.booksRepository.GetAll(ctx)
	if log.ErrorEntity(l.logger, err, "failed listing books", traceID, log.List, kindBook, "") {
		span.RecordError(err)
		return []entity.BookView{}, nil
	}

	return l.views(ctx, books), nil
}

func (l *libraryImpl) GetBook(ctx context.Context, id string) (entity.BookView, error) {
	span, traceID := traceOf(ctx)
	span.SetAttributes(attribute.String("book_id", id))
	log.InfoEntity(l.logger, "start of getting book", traceID, log.Get, kindBook, id)

	book, err := getByID(ctx, l.booksRepository, id, entity.ErrBookNotFound)
	if log.ErrorEntity(l.logger, err, "failed getting book", traceID, log.Get, kindBook, id) {
		span.RecordError(err)
		return entity.BookView{}, err
	}

	return l.view(ctx, book), nil
}

func (l *libraryImpl) SearchBooks(ctx context.Context, term string) ([]entity.BookView, error) {
	span, traceID := traceOf(ctx)
	log.InfoEntity(l.logger, "start of searching books", traceID, log.Search, kindBook, term)

	books, err := searchBy(ctx, l.booksRepository, entity.FieldTitle, term, entity.ErrBookNotFound)
	if log.ErrorEntity(l.logger, err, "failed searching books", traceID, log.Search, kindBook, term) {
		span.RecordError(err)
		return nil, err
	}

	return l.views(ctx, books), nil
}

func (l *libraryImpl) AddBook(ctx context.Context, fields map[string]any) (entity.BookView, error) {
	span, traceID := traceOf(ctx)

	input := bookInput{
		Title:         titleCase(stringField(fields, entity.FieldTitle)),
		AuthorName:    stringField(fields, fieldAuthorName),
		PublisherName: stringField(fields, fieldPublisherName),
		Genre:         titleCase(stringField(fields, entity.FieldGenre)),
	}
	year, yearOK := intField(fields, entity.FieldYear)
	input.Year = year
	log.InfoEntity(l.logger, "start of adding book", traceID, log.Add, kindBook, input.Title)

	book, author, publisher, err := l.addBook(ctx, input, hasField(fields, entity.FieldYear), yearOK)
	if log.ErrorEntity(l.logger, err, "failed adding book", traceID, log.Add, kindBook, input.Title) {
		span.RecordError(err)
		return entity.BookView{}, err
	}

	span.SetAttributes(attribute.String("book_id", book.ID))
	l.notify(ctx, repository.OutboxKindBook, entity.ChangeCreated, book.ID, book)
	log.InfoEntity(l.logger, "added the book", traceID, log.Add, kindBook, input.Title, book.ID)

	return entity.NewBookView(book,
		map[string]string{author.ID: author.Name},
		map[string]string{publisher.ID: publisher.Name},
	), nil
}

func (l *libraryImpl) addBook(
	ctx context.Context,
	input bookInput,
	yearPresent, yearOK bool,
) (entity.Book, entity.Author, entity.Publisher, error) {
	var (
		book      entity.Book
		author    entity.Author
		publisher entity.Publisher
	)

	err := validation.ValidateStruct(&input,
		validation.Field(&input.Title, validation.Required),
		validation.Field(&input.AuthorName, validation.Required),
		validation.Field(&input.PublisherName, validation.Required),
		validation.Field(&input.Year, validation.By(func(any) error {
			switch {
			case !yearPresent:
				return errors.New("cannot be blank")
			case !yearOK:
				return errors.New("must be an integer")
			}
			return nil
		})),
		validation.Field(&input.Genre, validation.Required),
	)
	if err != nil {
		return book, author, publisher, fmt.Errorf("%w: %s", entity.ErrValidation, err.Error())
	}

	author, err = resolveByName(ctx, l.authorRepository, entity.FieldName, input.AuthorName, entity.ErrAuthorNotFound)
	if err != nil {
		return book, author, publisher, err
	}

	publisher, err = resolveByName(ctx, l.publisherRepository, entity.FieldName, input.PublisherName, entity.ErrPublisherNotFound)
	if err != nil {
		return book, author, publisher, err
	}

	if err = ensureUnique(ctx, l.booksRepository, entity.FieldTitle, input.Title, "", kindBook); err != nil {
		return book, author, publisher, err
	}

	book, err = l.booksRepository.Add(ctx, entity.Book{
		Title:       input.Title,
		AuthorID:    author.ID,
		PublisherID: publisher.ID,
		Year:        input.Year,
		Genre:       input.Genre,
	})

	return book, author, publisher, err
}

func (l *libraryImpl) UpdateBook(ctx context.Context, id string, fields map[string]any) (entity.BookView, error) {
	span, traceID := traceOf(ctx)
	span.SetAttributes(attribute.String("book_id", id))
	log.InfoEntity(l.logger, "start of updating book", traceID, log.Update, kindBook, id)

	book, err := l.updateBook(ctx, id, fields)
	if log.ErrorEntity(l.logger, err, "failed updating book", traceID, log.Update, kindBook, id) {
		span.RecordError(err)
		return entity.BookView{}, err
	}

	l.notify(ctx, repository.OutboxKindBook, entity.ChangeUpdated, book.ID, book)
	log.InfoEntity(l.logger, "updated the book", traceID, log.Update, kindBook, id, book.ID)
	return l.view(ctx, book), nil
}

func (l *libraryImpl) updateBook(ctx context.Context, id string, fields map[string]any) (entity.Book, error) {
	updates := buildUpdate(fields, bookUpdatable)
	if len(updates) == 0 {
		return entity.Book{}, fmt.Errorf("%w: nothing to update, allowed fields: %s", entity.ErrValidation, fieldNames(bookUpdatable))
	}

	_, found, err := l.booksRepository.GetByID(ctx, id)
	if err != nil {
		return entity.Book{}, err
	}
	if !found {
		return entity.Book{}, fmt.Errorf("%w with id %q", entity.ErrBookNotFound, id)
	}

	if title, ok := updates[entity.FieldTitle].(string); ok {
		if err := ensureUnique(ctx, l.booksRepository, entity.FieldTitle, title, id, kindBook); err != nil {
			return entity.Book{}, err
		}
	}

	book, found, err := l.booksRepository.Update(ctx, id, updates)
	if err != nil {
		return entity.Book{}, err
	}
	if !found {
		return entity.Book{}, fmt.Errorf("%w with id %q", entity.ErrBookNotFound, id)
	}

	return book, nil
}

func (l *libraryImpl) DeleteBook(ctx context.Context, id string) (entity.BookView, error) {
	span, traceID := traceOf(ctx)
	span.SetAttributes(attribute.String("book_id", id))
	log.InfoEntity(l.logger, "start of deleting book", traceID, log.Delete, kindBook, id)

	book, found, err := l.booksRepository.Delete(ctx, id)
	if err == nil && !found {
		err = fmt.Errorf("%w with id %q", entity.ErrBookNotFound, id)
	}

	if log.ErrorEntity(l.logger, err, "failed deleting book", traceID, log.Delete, kindBook, id) {
		span.RecordError(err)
		return entity.BookView{}, err
	}

	l.notify(ctx, repository.OutboxKindBook, entity.ChangeDeleted, book.ID, book)
	log.InfoEntity(l.logger, "deleted the book", traceID, log.Delete, kindBook, id, book.ID)
	return l.view(ctx, book), nil
}

func (l *libraryImpl) CountBooksByAuthorID(ctx context.Context, authorID string) int {
	return l.countBooks(ctx, entity.FieldAuthorID, authorID)
}

func (l *libraryImpl) CountBooksByPublisherID(ctx context.Context, publisherID string) int {
	return l.countBooks(ctx, entity.FieldPublisherID, publisherID)
}

func (l *libraryImpl) countBooks(ctx context.Context, field, id string) int {
	span, traceID := traceOf(ctx)

	books, err := l.booksRepository.FindByForeignKey(ctx, field, id)
	if log.ErrorEntity(l.logger, err, "can not count books, reporting unverified", traceID, log.Count, kindBook, id) {
		span.RecordError(err)
		return UnverifiedCount
	}

	log.InfoCount(l.logger, "counted books", traceID, field, id, len(books))
	return len(books)
}
