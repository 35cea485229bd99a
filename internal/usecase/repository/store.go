package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"slices"
	"strings"

	"github.com/google/uuid"
	"github.com/project/librarysrv/internal/entity"
	"github.com/project/librarysrv/pkg/logger"
	"github.com/samber/lo"
	"go.uber.org/zap"
)

// Store is a typed view over one collection. Every mutation is a full
// read-modify-write of the collection inside the transactor; a failed read
// aborts the mutation so stored data is never replaced by a partial view.
type Store[T entity.Record[T]] struct {
	logger      *zap.Logger
	name        string
	collections Collections
	transactor  Transactor
}

func NewStore[T entity.Record[T]](logger *zap.Logger, name string, collections Collections, transactor Transactor) *Store[T] {
	return &Store[T]{
		logger:      logger,
		name:        name,
		collections: collections,
		transactor:  transactor,
	}
}

func (s *Store[T]) Name() string {
	return s.name
}

func (s *Store[T]) load(ctx context.Context) ([]T, error) {
	raw, err := s.collections.Read(ctx, s.name)
	if err != nil {
		logger.CheckError(err, s.logger, "can not load collection", zap.String("collection", s.name))
		return nil, fmt.Errorf("%w: read collection %s: %w", entity.ErrInternal, s.name, err)
	}

	items := make([]T, 0, len(raw))
	for i, r := range raw {
		var item T
		if err := json.Unmarshal(r, &item); err != nil {
			logger.CheckError(err, s.logger, "can not decode record", zap.String("collection", s.name), zap.Int("index", i))
			return nil, fmt.Errorf("%w: decode %s record %d: %w", entity.ErrInternal, s.name, i, err)
		}
		items = append(items, item)
	}

	return items, nil
}

func (s *Store[T]) save(ctx context.Context, items []T) error {
	raw := make([]json.RawMessage, 0, len(items))
	for _, item := range items {
		data, err := json.Marshal(item)
		if err != nil {
			return fmt.Errorf("%w: encode %s record %s: %w", entity.ErrInternal, s.name, item.GetID(), err)
		}
		raw = append(raw, data)
	}

	if err := s.collections.Write(ctx, s.name, raw); err != nil {
		logger.CheckError(err, s.logger, "can not write collection", zap.String("collection", s.name))
		return fmt.Errorf("%w: write collection %s: %w", entity.ErrInternal, s.name, err)
	}

	return nil
}

func (s *Store[T]) GetAll(ctx context.Context) ([]T, error) {
	items, err := s.load(ctx)
	if err != nil {
		return []T{}, err
	}
	return items, nil
}

func (s *Store[T]) GetByID(ctx context.Context, id string) (T, bool, error) {
	var zero T

	items, err := s.load(ctx)
	if err != nil {
		return zero, false, err
	}

	item, found := lo.Find(items, func(it T) bool { return it.GetID() == id })
	return item, found, nil
}

// FindByField returns records whose field contains substring, ignoring case.
func (s *Store[T]) FindByField(ctx context.Context, field, substring string) ([]T, error) {
	items, err := s.load(ctx)
	if err != nil {
		return []T{}, err
	}

	needle := strings.ToLower(substring)
	return lo.Filter(items, func(it T, _ int) bool {
		return strings.Contains(strings.ToLower(it.Field(field)), needle)
	}), nil
}

// FindByForeignKey returns records whose field equals id exactly.
func (s *Store[T]) FindByForeignKey(ctx context.Context, field, id string) ([]T, error) {
	items, err := s.load(ctx)
	if err != nil {
		return []T{}, err
	}

	if id == "" {
		return []T{}, nil
	}

	return lo.Filter(items, func(it T, _ int) bool {
		return it.Field(field) == id
	}), nil
}

// Add appends item, assigning a fresh id when it has none.
func (s *Store[T]) Add(ctx context.Context, item T) (T, error) {
	var stored T

	err := s.transactor.WithTx(ctx, func(ctx context.Context) error {
		items, err := s.load(ctx)
		if err != nil {
			return err
		}

		exists := func(id string) bool {
			return lo.ContainsBy(items, func(it T) bool { return it.GetID() == id })
		}

		id := item.GetID()
		if id == "" {
			id = uuid.NewString()
			for exists(id) {
				id = uuid.NewString()
			}
		} else if exists(id) {
			return fmt.Errorf("%w: %s with id %s already exists", entity.ErrConflict, s.name, id)
		}

		stored = item.WithID(id)
		return s.save(ctx, append(items, stored))
	})

	if err != nil {
		var zero T
		return zero, err
	}

	return stored, nil
}

// Update overlays fields onto the record with the given id. The id itself
// is never changed.
func (s *Store[T]) Update(ctx context.Context, id string, fields map[string]any) (T, bool, error) {
	var (
		updated T
		found   bool
	)

	err := s.transactor.WithTx(ctx, func(ctx context.Context) error {
		items, err := s.load(ctx)
		if err != nil {
			return err
		}

		idx := slices.IndexFunc(items, func(it T) bool { return it.GetID() == id })
		if idx < 0 {
			return nil
		}

		merged, err := merge(items[idx], fields)
		if err != nil {
			return err
		}

		items[idx] = merged
		if err := s.save(ctx, items); err != nil {
			return err
		}

		updated, found = merged, true
		return nil
	})

	if err != nil {
		var zero T
		return zero, false, err
	}

	return updated, found, nil
}

func (s *Store[T]) Delete(ctx context.Context, id string) (T, bool, error) {
	var (
		removed T
		found   bool
	)

	err := s.transactor.WithTx(ctx, func(ctx context.Context) error {
		items, err := s.load(ctx)
		if err != nil {
			return err
		}

		idx := slices.IndexFunc(items, func(it T) bool { return it.GetID() == id })
		if idx < 0 {
			return nil
		}

		removed = items[idx]
		if err := s.save(ctx, slices.Delete(items, idx, idx+1)); err != nil {
			return err
		}

		found = true
		return nil
	})

	if err != nil {
		var zero T
		return zero, false, err
	}

	return removed, found, nil
}

func merge[T entity.Record[T]](item T, fields map[string]any) (T, error) {
	var zero T

	data, err := json.Marshal(item)
	if err != nil {
		return zero, fmt.Errorf("%w: %w", entity.ErrInternal, err)
	}

	m := make(map[string]any)
	if err := json.Unmarshal(data, &m); err != nil {
		return zero, fmt.Errorf("%w: %w", entity.ErrInternal, err)
	}

	for k, v := range fields {
		if k == entity.FieldID {
			continue
		}
		m[k] = v
	}

	data, err = json.Marshal(m)
	if err != nil {
		return zero, fmt.Errorf("%w: %w", entity.ErrValidation, err)
	}

	var out T
	if err := json.Unmarshal(data, &out); err != nil {
		return zero, fmt.Errorf("%w: %w", entity.ErrValidation, err)
	}

	return out.WithID(item.GetID()), nil
}
