package store

import (
	"context"
	"slices"
	"sync"

	"github.com/JaimeStill/shows-api/internal/shows"
)

func init() {
	Register(DriverMemory, openMemory)
}

// Memory is a process-local show store. Each mutation is a single critical
// section, so concurrent requests never lose updates.
type Memory struct {
	mu     sync.RWMutex
	nextID int
	order  []int
	items  map[int]shows.Show
}

// NewMemory returns an empty store whose first id is 1.
func NewMemory() *Memory {
	return &Memory{
		nextID: 1,
		order:  make([]int, 0),
		items:  make(map[int]shows.Show),
	}
}

func openMemory(cfg *Config, deps Deps) (shows.Repository, error) {
	m := NewMemory()
	if !cfg.ShouldSeed() {
		return m, nil
	}

	cmds, err := DefaultShows()
	if err != nil {
		return nil, err
	}
	if _, err := m.CreateMany(deps.Lifecycle.Context(), cmds); err != nil {
		return nil, err
	}
	deps.Logger.Info("memory store seeded", "shows", len(cmds))
	return m, nil
}

// All returns matching shows in id order. Ids are assigned increasing and
// appended, so insertion order is id order.
func (m *Memory) All(_ context.Context, filters shows.Filters) ([]shows.Show, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	list := make([]shows.Show, 0, len(m.order))
	for _, id := range m.order {
		if s := m.items[id]; filters.Matches(s) {
			list = append(list, s)
		}
	}
	return list, nil
}

func (m *Memory) ByID(_ context.Context, id int) (*shows.Show, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	s, ok := m.items[id]
	if !ok {
		return nil, shows.ErrNotFound
	}
	return &s, nil
}

func (m *Memory) Create(_ context.Context, cmd shows.ShowCommand) (*shows.Show, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s := m.insert(cmd)
	return &s, nil
}

// CreateMany inserts every command under one lock.
func (m *Memory) CreateMany(_ context.Context, cmds []shows.ShowCommand) ([]shows.Show, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	created := make([]shows.Show, 0, len(cmds))
	for _, cmd := range cmds {
		created = append(created, m.insert(cmd))
	}
	return created, nil
}

func (m *Memory) UpdateByID(_ context.Context, id int, cmd shows.ShowCommand) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.items[id]; !ok {
		return shows.ErrNotFound
	}
	m.items[id] = cmd.Show(id)
	return nil
}

func (m *Memory) DeleteByID(_ context.Context, id int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.items[id]; !ok {
		return shows.ErrNotFound
	}
	delete(m.items, id)
	if i := slices.Index(m.order, id); i >= 0 {
		m.order = slices.Delete(m.order, i, i+1)
	}
	return nil
}

// insert requires m.mu held for writing.
func (m *Memory) insert(cmd shows.ShowCommand) shows.Show {
	s := cmd.Show(m.nextID)
	m.nextID++
	m.items[s.ID] = s
	m.order = append(m.order, s.ID)
	return s
}
