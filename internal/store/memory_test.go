package store

import (
	"context"
	"testing"

	"github.com/JaimeStill/shows-api/internal/shows"
)

func TestMemory_Conformance(t *testing.T) {
	runConformance(t, func(t *testing.T) shows.Repository {
		return NewMemory()
	})
}

func TestOpen_MemorySeeded(t *testing.T) {
	cfg := &Config{}
	if err := cfg.Finalize(nil); err != nil {
		t.Fatal(err)
	}

	repo, err := Open(cfg, Deps{})
	if err != nil {
		t.Fatal(err)
	}

	list, err := repo.All(context.Background(), shows.Filters{})
	if err != nil {
		t.Fatal(err)
	}

	want := []shows.Show{
		{ID: 1, Name: "Game of Thrones", EpisodesSeen: 10},
		{ID: 2, Name: "Naruto", EpisodesSeen: 220},
		{ID: 3, Name: "Black Mirror", EpisodesSeen: 3},
		{ID: 4, Name: "Brooklyn Nine-Nine", EpisodesSeen: 80},
		{ID: 5, Name: "Westworld", EpisodesSeen: 4},
		{ID: 6, Name: "The Office", EpisodesSeen: 18},
	}
	if len(list) != len(want) {
		t.Fatalf("len = %d, want %d", len(list), len(want))
	}
	for i := range want {
		if list[i] != want[i] {
			t.Errorf("list[%d] = %+v, want %+v", i, list[i], want[i])
		}
	}
}

func TestOpen_MemoryUnseeded(t *testing.T) {
	seed := false
	cfg := &Config{Driver: DriverMemory, Seed: &seed}

	repo, err := Open(cfg, Deps{})
	if err != nil {
		t.Fatal(err)
	}

	list, _ := repo.All(context.Background(), shows.Filters{})
	if len(list) != 0 {
		t.Errorf("len = %d, want 0", len(list))
	}
}

func TestMemory_ByIDReturnsCopy(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()
	s, _ := m.Create(ctx, shows.NewShowCommand("Dark", 26))

	got, _ := m.ByID(ctx, s.ID)
	got.Name = "changed"

	again, _ := m.ByID(ctx, s.ID)
	if again.Name != "Dark" {
		t.Errorf("store mutated through returned pointer: %q", again.Name)
	}
}
