package memoryrepo

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/GuruMohith24/e-commerce-backend/internal/service/models/outbox"
)

// MemoryOutboxRepository is an in-memory outbox repository for tests and
// local development.
type MemoryOutboxRepository struct {
	mu       sync.RWMutex
	seq      int64
	messages map[int64]outbox.Message
}

// NewMemoryOutboxRepository creates a new in-memory outbox repository.
func NewMemoryOutboxRepository() *MemoryOutboxRepository {
	return &MemoryOutboxRepository{
		messages: make(map[int64]outbox.Message),
	}
}

// Insert adds a new message to the outbox.
func (r *MemoryOutboxRepository) Insert(_ context.Context, msg outbox.Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.seq++
	msg.ID = r.seq
	r.messages[msg.ID] = msg

	return nil
}

// GetPendingMessages retrieves messages that are ready for publishing.
func (r *MemoryOutboxRepository) GetPendingMessages(
	_ context.Context,
	limit int,
) ([]outbox.Message, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	now := time.Now()
	result := make([]outbox.Message, 0, len(r.messages))
	for _, msg := range r.messages {
		if msg.NextRetryAt.After(now) || msg.RetryCount >= msg.MaxRetries {
			continue
		}
		result = append(result, msg)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].NextRetryAt.Before(result[j].NextRetryAt)
	})

	if limit > 0 && len(result) > limit {
		result = result[:limit]
	}

	return result, nil
}

// Delete removes a message from the outbox after successful delivery.
func (r *MemoryOutboxRepository) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.messages, id)

	return nil
}

// UpdateRetry updates retry count and error information.
func (r *MemoryOutboxRepository) UpdateRetry(
	_ context.Context,
	id int64,
	retryCount int,
	lastError string,
	nextRetryAt time.Time,
) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	msg, ok := r.messages[id]
	if !ok {
		return nil
	}

	msg.RetryCount = retryCount
	msg.LastError = lastError
	msg.NextRetryAt = nextRetryAt
	msg.UpdatedAt = time.Now()
	r.messages[id] = msg

	return nil
}

// Len returns the number of staged messages.
func (r *MemoryOutboxRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.messages)
}
