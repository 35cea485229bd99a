package repository

import (
	"context"
	"encoding/json"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/samber/lo"
)

type Status uint

const (
	Created Status = iota
	InProgress
	Success
	Abandoned
)

func (s Status) String() string {
	switch s {
	case Created:
		return "CREATED"
	case InProgress:
		return "IN_PROGRESS"
	case Success:
		return "SUCCESS"
	case Abandoned:
		return "ABANDONED"
	}
	panic("unreachable")
}

var ErrInvalidOutboxMessage = errors.New("outbox message is not valid json")

type outboxRecord struct {
	IdempotencyKey string          `json:"idempotencyKey"`
	Kind           OutboxKind      `json:"kind"`
	Data           json.RawMessage `json:"data"`
	Status         string          `json:"status"`
	Attempts       int             `json:"attempts"`
	CreatedAt      time.Time       `json:"createdAt"`
	UpdatedAt      time.Time       `json:"updatedAt"`
}

var _ OutboxRepository = (*outboxRepository)(nil)

// outboxRepository keeps pending notifications in the outbox collection.
// Delivered messages are removed; abandoned ones stay for inspection.
type outboxRepository struct {
	mu            sync.Mutex
	collections   Collections
	attemptsRetry int
	now           func() time.Time
}

func NewOutbox(collections Collections, attemptsRetry int) *outboxRepository {
	return &outboxRepository{
		collections:   collections,
		attemptsRetry: attemptsRetry,
		now:           time.Now,
	}
}

func (o *outboxRepository) load(ctx context.Context) ([]outboxRecord, error) {
	raw, err := o.collections.Read(ctx, OutboxCollection)
	if err != nil {
		return nil, err
	}

	records := make([]outboxRecord, 0, len(raw))
	for _, r := range raw {
		var rec outboxRecord
		if err := json.Unmarshal(r, &rec); err != nil {
			return nil, err
		}
		records = append(records, rec)
	}

	return records, nil
}

func (o *outboxRepository) save(ctx context.Context, records []outboxRecord) error {
	raw := make([]json.RawMessage, 0, len(records))
	for _, rec := range records {
		data, err := json.Marshal(rec)
		if err != nil {
			return err
		}
		raw = append(raw, data)
	}

	return o.collections.Write(ctx, OutboxCollection, raw)
}

func (o *outboxRepository) SendMessage(ctx context.Context, idempotencyKey string, kind OutboxKind, message []byte) error {
	if !json.Valid(message) {
		return ErrInvalidOutboxMessage
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	records, err := o.load(ctx)
	if err != nil {
		return err
	}

	if lo.ContainsBy(records, func(r outboxRecord) bool { return r.IdempotencyKey == idempotencyKey }) {
		return nil
	}

	now := o.now().UTC()
	records = append(records, outboxRecord{
		IdempotencyKey: idempotencyKey,
		Kind:           kind,
		Data:           message,
		Status:         Created.String(),
		CreatedAt:      now,
		UpdatedAt:      now,
	})

	return o.save(ctx, records)
}

// status == CREATED || (status == IN_PROGRESS && now - updated_at > TTL)
func (o *outboxRepository) GetMessages(ctx context.Context, batchSize int, inProgressTTL time.Duration) ([]OutboxData, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	records, err := o.load(ctx)
	if err != nil {
		return nil, err
	}

	now := o.now().UTC()
	deadline := now.Add(-inProgressTTL)

	candidates := make([]int, 0)
	for i, r := range records {
		if r.Status == Created.String() || (r.Status == InProgress.String() && r.UpdatedAt.Before(deadline)) {
			candidates = append(candidates, i)
		}
	}

	sort.SliceStable(candidates, func(a, b int) bool {
		return records[candidates[a]].CreatedAt.Before(records[candidates[b]].CreatedAt)
	})

	if batchSize >= 0 && len(candidates) > batchSize {
		candidates = candidates[:batchSize]
	}

	result := make([]OutboxData, 0, len(candidates))
	if len(candidates) == 0 {
		return result, nil
	}

	for _, i := range candidates {
		records[i].Status = InProgress.String()
		records[i].UpdatedAt = now
		result = append(result, OutboxData{
			IdempotencyKey: records[i].IdempotencyKey,
			Kind:           records[i].Kind,
			RawData:        records[i].Data,
		})
	}

	if err := o.save(ctx, records); err != nil {
		return nil, err
	}

	return result, nil
}

func (o *outboxRepository) MarkAs(ctx context.Context, idempotencyKeys []string, s Status) error {
	if len(idempotencyKeys) == 0 {
		return nil
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	records, err := o.load(ctx)
	if err != nil {
		return err
	}

	keys := lo.SliceToMap(idempotencyKeys, func(k string) (string, struct{}) { return k, struct{}{} })
	now := o.now().UTC()

	for i := range records {
		rec := &records[i]
		if _, ok := keys[rec.IdempotencyKey]; !ok {
			continue
		}

		status := s.String()
		if rec.Status == InProgress.String() {
			if s == Created && rec.Attempts+1 > o.attemptsRetry {
				status = Abandoned.String()
			}
			if s == Created || s == Success {
				rec.Attempts++
			}
		}

		rec.Status = status
		rec.UpdatedAt = now
	}

	records = lo.Filter(records, func(r outboxRecord, _ int) bool {
		return r.Status != Success.String()
	})

	return o.save(ctx, records)
}
