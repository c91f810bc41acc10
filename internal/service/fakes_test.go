package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/wonny/ohaeng/backend/internal/contracts"
	"github.com/wonny/ohaeng/backend/internal/fortune"
	"github.com/wonny/ohaeng/backend/internal/profile"
)

// memStore in-memory DailyStore (first write wins)
type memStore struct {
	mu      sync.Mutex
	records map[string]fortune.StoredRecord
	gets    int
	saves   int
	failFor map[string]bool // birth date text → SaveDaily 실패
}

func newMemStore() *memStore {
	return &memStore{records: map[string]fortune.StoredRecord{}, failFor: map[string]bool{}}
}

func storeKey(birth, target time.Time) string {
	return birth.Format(contracts.DateLayout) + "|" + target.Format(contracts.DateLayout)
}

func (s *memStore) SaveDaily(_ context.Context, birth time.Time, record contracts.DailyFortuneRecord, hash string) (*fortune.StoredRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.saves++

	if s.failFor[birth.Format(contracts.DateLayout)] {
		return nil, errors.New("insert failed")
	}

	key := storeKey(birth, record.Date)
	if existing, ok := s.records[key]; ok {
		return &existing, nil
	}
	stored := fortune.StoredRecord{
		ID:         uuid.New(),
		BirthDate:  birth,
		TargetDate: record.Date,
		TablesHash: hash,
		Record:     record,
		CreatedAt:  time.Now(),
	}
	s.records[key] = stored
	return &stored, nil
}

func (s *memStore) GetDaily(_ context.Context, birth, target time.Time) (*fortune.StoredRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.gets++

	stored, ok := s.records[storeKey(birth, target)]
	if !ok {
		return nil, nil
	}
	return &stored, nil
}

func (s *memStore) ListByBirth(_ context.Context, birth, from, to time.Time) ([]fortune.StoredRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []fortune.StoredRecord
	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		if stored, ok := s.records[storeKey(birth, d)]; ok {
			out = append(out, stored)
		}
	}
	return out, nil
}

func (s *memStore) put(birth time.Time, record contracts.DailyFortuneRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records[storeKey(birth, record.Date)] = fortune.StoredRecord{ID: uuid.New(), BirthDate: birth, TargetDate: record.Date, Record: record}
}

// memCache in-memory Cache with JSON round trips (Redis와 동일한 직렬화 경로)
type memCache struct {
	mu    sync.Mutex
	items map[string][]byte
}

func newMemCache() *memCache {
	return &memCache{items: map[string][]byte{}}
}

func (c *memCache) Get(_ context.Context, key string, dest interface{}) (bool, error) {
	c.mu.Lock()
	data, ok := c.items[key]
	c.mu.Unlock()
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(data, dest)
}

func (c *memCache) Set(_ context.Context, key string, value interface{}, _ time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.mu.Lock()
	c.items[key] = data
	c.mu.Unlock()
	return nil
}

func (c *memCache) GetOrSet(ctx context.Context, key string, dest interface{}, ttl time.Duration, fn func() (interface{}, error)) error {
	found, err := c.Get(ctx, key, dest)
	if err != nil || found {
		return err
	}
	value, err := fn()
	if err != nil {
		return err
	}
	if err := c.Set(ctx, key, value, ttl); err != nil {
		return err
	}
	_, err = c.Get(ctx, key, dest)
	return err
}

func (c *memCache) Delete(_ context.Context, key string) error {
	c.mu.Lock()
	delete(c.items, key)
	c.mu.Unlock()
	return nil
}

func (c *memCache) has(key string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.items[key]
	return ok
}

func (c *memCache) len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}

// downCache every call fails (Redis 연결 끊김)
type downCache struct{}

var errCacheDown = errors.New("redis: connection refused")

func (downCache) Get(context.Context, string, interface{}) (bool, error) {
	return false, errCacheDown
}

func (downCache) Set(context.Context, string, interface{}, time.Duration) error {
	return errCacheDown
}

func (downCache) GetOrSet(context.Context, string, interface{}, time.Duration, func() (interface{}, error)) error {
	return errCacheDown
}

func (downCache) Delete(context.Context, string) error {
	return errCacheDown
}

// memMembers in-memory MemberStore
type memMembers struct {
	members []profile.Member
	err     error
}

func (m *memMembers) SaveMember(_ context.Context, mem profile.Member) error {
	if m.err != nil {
		return m.err
	}
	for i := range m.members {
		if m.members[i].ID == mem.ID {
			m.members[i] = mem
			return nil
		}
	}
	m.members = append(m.members, mem)
	return nil
}

func (m *memMembers) DeleteMember(_ context.Context, id string) error {
	if m.err != nil {
		return m.err
	}
	for i := range m.members {
		if m.members[i].ID == id {
			m.members = append(m.members[:i], m.members[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("%w: %s", profile.ErrMemberNotFound, id)
}

func (m *memMembers) GetMember(_ context.Context, id string) (*profile.Member, error) {
	for _, mem := range m.members {
		if mem.ID == id {
			found := mem
			return &found, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", profile.ErrMemberNotFound, id)
}

func (m *memMembers) ListByTeam(_ context.Context, teamID string) ([]profile.Member, error) {
	if m.err != nil {
		return nil, m.err
	}
	var out []profile.Member
	for _, mem := range m.members {
		if mem.TeamID == teamID {
			out = append(out, mem)
		}
	}
	return out, nil
}

func (m *memMembers) ListAll(_ context.Context) ([]profile.Member, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.members, nil
}
