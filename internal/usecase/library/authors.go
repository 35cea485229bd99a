package library

import (
	"context"
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/project/librarysrv/internal/entity"
	"github.com/project/librarysrv/internal/log"
	"github.com/project/librarysrv/internal/usecase/repository"
	"go.opentelemetry.io/otel/attribute"
)

var authorUpdatable = []allowedField{
	{name: entity.FieldName, kind: textField},
	{name: entity.FieldNationality, kind: textField},
}

func (l *libraryImpl) ListAuthors(ctx context.Context) ([]entity.Author, error) {
	span, traceID := traceOf(ctx)
	log.InfoEntity(l.logger, "start of listing authors", traceID, log.List, kindAuthor, "")

	authors, err := l.authorRepository.GetAll(ctx)
	if log.ErrorEntity(l.logger, err, "failed listing authors", traceID, log.List, kindAuthor, "") {
		span.RecordError(err)
		return []entity.Author{}, nil
	}

	return authors, nil
}

func (l *libraryImpl) GetAuthor(ctx context.Context, id string) (entity.Author, error) {
	span, traceID := traceOf(ctx)
	span.SetAttributes(attribute.String("author_id", id))
	log.InfoEntity(l.logger, "start of getting author", traceID, log.Get, kindAuthor, id)

	author, err := getByID(ctx, l.authorRepository, id, entity.ErrAuthorNotFound)
	if log.ErrorEntity(l.logger, err, "failed getting author", traceID, log.Get, kindAuthor, id) {
		span.RecordError(err)
		return entity.Author{}, err
	}

	return author, nil
}

func (l *libraryImpl) SearchAuthors(ctx context.Context, term string) ([]entity.Author, error) {
	span, traceID := traceOf(ctx)
	log.InfoEntity(l.logger, "start of searching authors", traceID, log.Search, kindAuthor, term)

	authors, err := searchBy(ctx, l.authorRepository, entity.FieldName, term, entity.ErrAuthorNotFound)
	if log.ErrorEntity(l.logger, err, "failed searching authors", traceID, log.Search, kindAuthor, term) {
		span.RecordError(err)
		return nil, err
	}

	return authors, nil
}

func (l *libraryImpl) AddAuthor(ctx context.Context, fields map[string]any) (entity.Author, error) {
	span, traceID := traceOf(ctx)

	author := entity.Author{
		Name:        titleCase(stringField(fields, entity.FieldName)),
		Nationality: titleCase(stringField(fields, entity.FieldNationality)),
	}
	log.InfoEntity(l.logger, "start of adding author", traceID, log.Add, kindAuthor, author.Name)

	err := validation.ValidateStruct(&author,
		validation.Field(&author.Name, validation.Required),
		validation.Field(&author.Nationality, validation.Required),
	)
	if err != nil {
		err = fmt.Errorf("%w: %s", entity.ErrValidation, err.Error())
	}

	if err == nil {
		err = ensureUnique(ctx, l.authorRepository, entity.FieldName, author.Name, "", kindAuthor)
	}

	if err == nil {
		author, err = l.authorRepository.Add(ctx, author)
	}

	if log.ErrorEntity(l.logger, err, "failed adding author", traceID, log.Add, kindAuthor, author.Name) {
		span.RecordError(err)
		return entity.Author{}, err
	}

	span.SetAttributes(attribute.String("author_id", author.ID))
	l.notify(ctx, repository.OutboxKindAuthor, entity.ChangeCreated, author.ID, author)
	log.InfoEntity(l.logger, "added the author", traceID, log.Add, kindAuthor, author.Name, author.ID)
	return author, nil
}

func (l *libraryImpl) UpdateAuthor(ctx context.Context, id string, fields map[string]any) (entity.Author, error) {
	span, traceID := traceOf(ctx)
	span.SetAttributes(attribute.String("author_id", id))
	log.InfoEntity(l.logger, "start of updating author", traceID, log.Update, kindAuthor, id)

	author, err := l.updateAuthor(ctx, id, fields)
	if log.ErrorEntity(l.logger, err, "failed updating author", traceID, log.Update, kindAuthor, id) {
		span.RecordError(err)
		return entity.Author{}, err
	}

	l.notify(ctx, repository.OutboxKindAuthor, entity.ChangeUpdated, author.ID, author)
	log.InfoEntity(l.logger, "updated the author", traceID, log.Update, kindAuthor, id, author.ID)
	return author, nil
}

func (l *libraryImpl) updateAuthor(ctx context.Context, id string, fields map[string]any) (entity.Author, error) {
	updates := buildUpdate(fields, authorUpdatable)
	if len(updates) == 0 {
		return entity.Author{}, fmt.Errorf("%w: nothing to update, allowed fields: %s", entity.ErrValidation, fieldNames(authorUpdatable))
	}

	_, found, err := l.authorRepository.GetByID(ctx, id)
	if err != nil {
		return entity.Author{}, err
	}
	if !found {
		return entity.Author{}, fmt.Errorf("%w with id %q", entity.ErrAuthorNotFound, id)
	}

	if name, ok := updates[entity.FieldName].(string); ok {
		if err := ensureUnique(ctx, l.authorRepository, entity.FieldName, name, id, kindAuthor); err != nil {
			return entity.Author{}, err
		}
	}

	author, found, err := l.authorRepository.Update(ctx, id, updates)
	if err != nil {
		return entity.Author{}, err
	}
	if !found {
		return entity.Author{}, fmt.Errorf("%w with id %q", entity.ErrAuthorNotFound, id)
	}

	return author, nil
}

func (l *libraryImpl) DeleteAuthor(ctx context.Context, id string) (entity.Author, error) {
	span, traceID := traceOf(ctx)
	span.SetAttributes(attribute.String("author_id", id))
	log.InfoEntity(l.logger, "start of deleting author", traceID, log.Delete, kindAuthor, id)

	author, err := l.deleteAuthor(ctx, id)
	if log.ErrorEntity(l.logger, err, "failed deleting author", traceID, log.Delete, kindAuthor, id) {
		span.RecordError(err)
		return entity.Author{}, err
	}

	l.notify(ctx, repository.OutboxKindAuthor, entity.ChangeDeleted, author.ID, author)
	log.InfoEntity(l.logger, "deleted the author", traceID, log.Delete, kindAuthor, id, author.ID)
	return author, nil
}

func (l *libraryImpl) deleteAuthor(ctx context.Context, id string) (entity.Author, error) {
	_, found, err := l.authorRepository.GetByID(ctx, id)
	if err != nil {
		return entity.Author{}, err
	}
	if !found {
		return entity.Author{}, fmt.Errorf("%w with id %q", entity.ErrAuthorNotFound, id)
	}

	if err := dependentBooks(kindAuthor, id, l.CountBooksByAuthorID(ctx, id)); err != nil {
		return entity.Author{}, err
	}

	author, found, err := l.authorRepository.Delete(ctx, id)
	if err != nil {
		return entity.Author{}, err
	}
	if !found {
		return entity.Author{}, fmt.Errorf("%w with id %q", entity.ErrAuthorNotFound, id)
	}

	return author, nil
}

func dependentBooks(kind, id string, count int) error {
	switch {
	case count == UnverifiedCount:
		return fmt.Errorf("%w: can not verify dependent books of %s %s", entity.ErrConflict, kind, id)
	case count > 0:
		return fmt.Errorf("%w: %s %s has %d dependent books", entity.ErrConflict, kind, id, count)
	default:
		return nil
	}
}
