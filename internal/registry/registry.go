package registry

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/koaskas/life-counter-bot/internal/domain"
)

// ErrNotRegistered is returned when a chat has no reference timestamp yet.
var ErrNotRegistered = errors.New("user is not registered")

// Registry stores each chat's reference timestamp. SetReference overwrites
// unconditionally; there is no delete operation.
type Registry interface {
	SetReference(ctx context.Context, chatID int64, birthAt time.Time) error
	GetReference(ctx context.Context, chatID int64) (time.Time, error)
	All(ctx context.Context) ([]domain.User, error)
	Close() error
}

const shardCount = 16

type shard struct {
	mu   sync.RWMutex
	refs map[int64]time.Time
}

// Memory is the volatile Registry. Keys are sharded so concurrent
// registrations for different chats do not contend on one lock.
type Memory struct {
	shards [shardCount]*shard
}

// NewMemory returns an empty in-memory registry.
func NewMemory() *Memory {
	m := &Memory{}
	for i := range m.shards {
		m.shards[i] = &shard{refs: make(map[int64]time.Time)}
	}
	return m
}

func (m *Memory) shardFor(chatID int64) *shard {
	return m.shards[uint64(chatID)%shardCount]
}

// SetReference overwrites any prior reference for chatID.
func (m *Memory) SetReference(_ context.Context, chatID int64, birthAt time.Time) error {
	s := m.shardFor(chatID)
	s.mu.Lock()
	s.refs[chatID] = birthAt
	s.mu.Unlock()
	return nil
}

// GetReference returns the current reference or ErrNotRegistered.
func (m *Memory) GetReference(_ context.Context, chatID int64) (time.Time, error) {
	s := m.shardFor(chatID)
	s.mu.RLock()
	t, ok := s.refs[chatID]
	s.mu.RUnlock()
	if !ok {
		return time.Time{}, ErrNotRegistered
	}
	return t, nil
}

// All returns every registered user, ordered by chat id.
func (m *Memory) All(_ context.Context) ([]domain.User, error) {
	var res []domain.User
	for _, s := range m.shards {
		s.mu.RLock()
		for id, t := range s.refs {
			res = append(res, domain.User{ChatID: id, BirthAt: t})
		}
		s.mu.RUnlock()
	}
	sort.Slice(res, func(i, j int) bool { return res[i].ChatID < res[j].ChatID })
	return res, nil
}

// Close is a no-op for the in-memory registry.
func (m *Memory) Close() error { return nil }
