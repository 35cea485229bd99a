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

var publisherUpdatable = []allowedField{
	{name: entity.FieldName, kind: textField},
	{name: entity.FieldCountry, kind: textField},
}

func (l *libraryImpl) ListPublishers(ctx context.Context) ([]entity.Publisher, error) {
	span, traceID := traceOf(ctx)
	log.InfoEntity(l.logger, "start of listing publishers", traceID, log.List, kindPublisher, "")

	publishers, err := l.publisherRepository.GetAll(ctx)
	if log.ErrorEntity(l.logger, err, "failed listing publishers", traceID, log.List, kindPublisher, "") {
		span.RecordError(err)
		return []entity.Publisher{}, nil
	}

	return publishers, nil
}

func (l *libraryImpl) GetPublisher(ctx context.Context, id string) (entity.Publisher, error) {
	span, traceID := traceOf(ctx)
	span.SetAttributes(attribute.String("publisher_id", id))
	log.InfoEntity(l.logger, "start of getting publisher", traceID, log.Get, kindPublisher, id)

	publisher, err := getByID(ctx, l.publisherRepository, id, entity.ErrPublisherNotFound)
	if log.ErrorEntity(l.logger, err, "failed getting publisher", traceID, log.Get, kindPublisher, id) {
		span.RecordError(err)
		return entity.Publisher{}, err
	}

	return publisher, nil
}

func (l *libraryImpl) SearchPublishers(ctx context.Context, term string) ([]entity.Publisher, error) {
	span, traceID := traceOf(ctx)
	log.InfoEntity(l.logger, "start of searching publishers", traceID, log.Search, kindPublisher, term)

	publishers, err := searchBy(ctx, l.publisherRepository, entity.FieldName, term, entity.ErrPublisherNotFound)
	if log.ErrorEntity(l.logger, err, "failed searching publishers", traceID, log.Search, kindPublisher, term) {
		span.RecordError(err)
		return nil, err
	}

	return publishers, nil
}

func (l *libraryImpl) AddPublisher(ctx context.Context, fields map[string]any) (entity.Publisher, error) {
	span, traceID := traceOf(ctx)

	publisher := entity.Publisher{
		Name:    titleCase(stringField(fields, entity.FieldName)),
		Country: titleCase(stringField(fields, entity.FieldCountry)),
	}
	log.InfoEntity(l.logger, "start of adding publisher", traceID, log.Add, kindPublisher, publisher.Name)

	err := validation.ValidateStruct(&publisher,
		validation.Field(&publisher.Name, validation.Required),
		validation.Field(&publisher.Country, validation.Required),
	)
	if err != nil {
		err = fmt.Errorf("%w: %s", entity.ErrValidation, err.Error())
	}

	if err == nil {
		err = ensureUnique(ctx, l.publisherRepository, entity.FieldName, publisher.Name, "", kindPublisher)
	}

	if err == nil {
		publisher, err = l.publisherRepository.Add(ctx, publisher)
	}

	if log.ErrorEntity(l.logger, err, "failed adding publisher", traceID, log.Add, kindPublisher, publisher.Name) {
		span.RecordError(err)
		return entity.Publisher{}, err
	}

	span.SetAttributes(attribute.String("publisher_id", publisher.ID))
	l.notify(ctx, repository.OutboxKindPublisher, entity.ChangeCreated, publisher.ID, publisher)
	log.InfoEntity(l.logger, "added the publisher", traceID, log.Add, kindPublisher, publisher.Name, publisher.ID)
	return publisher, nil
}

func (l *libraryImpl) UpdatePublisher(ctx context.Context, id string, fields map[string]any) (entity.Publisher, error) {
	span, traceID := traceOf(ctx)
	span.SetAttributes(attribute.String("publisher_id", id))
	log.InfoEntity(l.logger, "start of updating publisher", traceID, log.Update, kindPublisher, id)

	publisher, err := l.updatePublisher(ctx, id, fields)
	if log.ErrorEntity(l.logger, err, "failed updating publisher", traceID, log.Update, kindPublisher, id) {
		span.RecordError(err)
		return entity.Publisher{}, err
	}

	l.notify(ctx, repository.OutboxKindPublisher, entity.ChangeUpdated, publisher.ID, publisher)
	log.InfoEntity(l.logger, "updated the publisher", traceID, log.Update, kindPublisher, id, publisher.ID)
	return publisher, nil
}

func (l *libraryImpl) updatePublisher(ctx context.Context, id string, fields map[string]any) (entity.Publisher, error) {
	updates := buildUpdate(fields, publisherUpdatable)
	if len(updates) == 0 {
		return entity.Publisher{}, fmt.Errorf("%w: nothing to update, allowed fields: %s", entity.ErrValidation, fieldNames(publisherUpdatable))
	}

	_, found, err := l.publisherRepository.GetByID(ctx, id)
	if err != nil {
		return entity.Publisher{}, err
	}
	if !found {
		return entity.Publisher{}, fmt.Errorf("%w with id %q", entity.ErrPublisherNotFound, id)
	}

	if name, ok := updates[entity.FieldName].(string); ok {
		if err := ensureUnique(ctx, l.publisherRepository, entity.FieldName, name, id, kindPublisher); err != nil {
			return entity.Publisher{}, err
		}
	}

	publisher, found, err := l.publisherRepository.Update(ctx, id, updates)
	if err != nil {
		return entity.Publisher{}, err
	}
	if !found {
		return entity.Publisher{}, fmt.Errorf("%w with id %q", entity.ErrPublisherNotFound, id)
	}

	return publisher, nil
}

func (l *libraryImpl) DeletePublisher(ctx context.Context, id string) (entity.Publisher, error) {
	span, traceID := traceOf(ctx)
	span.SetAttributes(attribute.String("publisher_id", id))
	log.InfoEntity(l.logger, "start of deleting publisher", traceID, log.Delete, kindPublisher, id)

	publisher, err := l.deletePublisher(ctx, id)
	if log.ErrorEntity(l.logger, err, "failed deleting publisher", traceID, log.Delete, kindPublisher, id) {
		span.RecordError(err)
		return entity.Publisher{}, err
	}

	l.notify(ctx, repository.OutboxKindPublisher, entity.ChangeDeleted, publisher.ID, publisher)
	log.InfoEntity(l.logger, "deleted the publisher", traceID, log.Delete, kindPublisher, id, publisher.ID)
	return publisher, nil
}

func (l *libraryImpl) deletePublisher(ctx context.Context, id string) (entity.Publisher, error) {
	_, found, err := l.publisherRepository.GetByID(ctx, id)
	if err != nil {
		return entity.Publisher{}, err
	}
	if !found {
		return entity.Publisher{}, fmt.Errorf("%w with id %q", entity.ErrPublisherNotFound, id)
	}

	if err := dependentBooks(kindPublisher, id, l.CountBooksByPublisherID(ctx, id)); err != nil {
		return entity.Publisher{}, err
	}

	publisher, found, err := l.publisherRepository.Delete(ctx, id)
	if err != nil {
		return entity.Publisher{}, err
	}
	if !found {
		return entity.Publisher{}, fmt.Errorf("%w with id %q", entity.ErrPublisherNotFound, id)
	}

	return publisher, nil
}
