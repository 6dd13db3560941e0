package shows_test

import (
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/JaimeStill/shows-api/internal/shows"
)

// fakeRepo is a minimal in-test Repository.
type fakeRepo struct {
	mu     sync.Mutex
	nextID int
	items  map[int]shows.Show
	err    error
}

func newFakeRepo(seed ...shows.ShowCommand) *fakeRepo {
	r := &fakeRepo{nextID: 1, items: make(map[int]shows.Show)}
	for _, cmd := range seed {
		r.Create(context.Background(), cmd)
	}
	return r
}

func (r *fakeRepo) All(_ context.Context, f shows.Filters) ([]shows.Show, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	list := make([]shows.Show, 0, len(r.items))
	for _, s := range r.items {
		if f.Matches(s) {
			list = append(list, s)
		}
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	return list, nil
}

func (r *fakeRepo) ByID(_ context.Context, id int) (*shows.Show, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.items[id]
	if !ok {
		return nil, shows.ErrNotFound
	}
	return &s, nil
}

func (r *fakeRepo) Create(_ context.Context, cmd shows.ShowCommand) (*shows.Show, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s := cmd.Show(r.nextID)
	r.items[s.ID] = s
	r.nextID++
	return &s, nil
}

func (r *fakeRepo) UpdateByID(_ context.Context, id int, cmd shows.ShowCommand) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[id]; !ok {
		return shows.ErrNotFound
	}
	r.items[id] = cmd.Show(id)
	return nil
}

func (r *fakeRepo) DeleteByID(_ context.Context, id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[id]; !ok {
		return shows.ErrNotFound
	}
	delete(r.items, id)
	return nil
}

var errBroken = errors.New("store offline")
