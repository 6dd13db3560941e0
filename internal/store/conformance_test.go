package store

import (
	"context"
	"errors"
	"math"
	"sync"
	"testing"

	"github.com/JaimeStill/shows-api/internal/shows"
)

// runConformance exercises the shows.Repository contract against an empty backend.
func runConformance(t *testing.T, newRepo func(t *testing.T) shows.Repository) {
	ctx := context.Background()

	t.Run("empty", func(t *testing.T) {
		list, err := newRepo(t).All(ctx, shows.Filters{})
		if err != nil {
			t.Fatal(err)
		}
		if list == nil || len(list) != 0 {
			t.Errorf("All() = %#v, want empty non-nil slice", list)
		}
	})

	t.Run("create assigns increasing ids", func(t *testing.T) {
		repo := newRepo(t)
		a, err := repo.Create(ctx, shows.NewShowCommand("Dark", 26))
		if err != nil {
			t.Fatal(err)
		}
		b, err := repo.Create(ctx, shows.NewShowCommand("Dark", 26))
		if err != nil {
			t.Fatal(err)
		}
		if b.ID <= a.ID {
			t.Errorf("ids %d then %d, want increasing", a.ID, b.ID)
		}

		got, err := repo.ByID(ctx, b.ID)
		if err != nil {
			t.Fatal(err)
		}
		if *got != *b {
			t.Errorf("ByID() = %+v, want %+v", *got, *b)
		}
	})

	t.Run("all is ordered and filtered", func(t *testing.T) {
		repo := newRepo(t)
		for _, cmd := range []shows.ShowCommand{
			shows.NewShowCommand("Westworld", 4),
			shows.NewShowCommand("Naruto", 220),
			shows.NewShowCommand("The Office", 18),
		} {
			if _, err := repo.Create(ctx, cmd); err != nil {
				t.Fatal(err)
			}
		}

		list, err := repo.All(ctx, shows.Filters{})
		if err != nil {
			t.Fatal(err)
		}
		for i := 1; i < len(list); i++ {
			if list[i].ID <= list[i-1].ID {
				t.Fatalf("All() not ordered by id: %+v", list)
			}
		}

		threshold := 18
		list, err = repo.All(ctx, shows.Filters{MinEpisodes: &threshold})
		if err != nil {
			t.Fatal(err)
		}
		if len(list) != 2 || list[0].Name != "Naruto" || list[1].Name != "The Office" {
			t.Errorf("All(minEpisodes=18) = %+v", list)
		}
	})

	t.Run("update preserves id", func(t *testing.T) {
		repo := newRepo(t)
		s, _ := repo.Create(ctx, shows.NewShowCommand("Black Mirror", 3))

		if err := repo.UpdateByID(ctx, s.ID, shows.NewShowCommand("Black Mirror", 19)); err != nil {
			t.Fatal(err)
		}
		got, err := repo.ByID(ctx, s.ID)
		if err != nil {
			t.Fatal(err)
		}
		if got.ID != s.ID || got.EpisodesSeen != 19 {
			t.Errorf("after update = %+v", *got)
		}
	})

	t.Run("missing ids", func(t *testing.T) {
		repo := newRepo(t)

		if _, err := repo.ByID(ctx, 404); !errors.Is(err, shows.ErrNotFound) {
			t.Errorf("ByID() err = %v, want ErrNotFound", err)
		}
		if err := repo.UpdateByID(ctx, 404, shows.NewShowCommand("x", 1)); !errors.Is(err, shows.ErrNotFound) {
			t.Errorf("UpdateByID() err = %v, want ErrNotFound", err)
		}
		if err := repo.DeleteByID(ctx, 404); !errors.Is(err, shows.ErrNotFound) {
			t.Errorf("DeleteByID() err = %v, want ErrNotFound", err)
		}
	})

	t.Run("ids beyond int32 are missing", func(t *testing.T) {
		repo := newRepo(t)

		for _, id := range []int{3_000_000_000, math.MaxInt64} {
			if _, err := repo.ByID(ctx, id); !errors.Is(err, shows.ErrNotFound) {
				t.Errorf("ByID(%d) err = %v, want ErrNotFound", id, err)
			}
			if err := repo.UpdateByID(ctx, id, shows.NewShowCommand("x", 1)); !errors.Is(err, shows.ErrNotFound) {
				t.Errorf("UpdateByID(%d) err = %v, want ErrNotFound", id, err)
			}
			if err := repo.DeleteByID(ctx, id); !errors.Is(err, shows.ErrNotFound) {
				t.Errorf("DeleteByID(%d) err = %v, want ErrNotFound", id, err)
			}
		}
	})

	t.Run("episode counts beyond int32", func(t *testing.T) {
		repo := newRepo(t)
		const episodes = 3_000_000_000

		s, err := repo.Create(ctx, shows.NewShowCommand("One Piece", episodes))
		if err != nil {
			t.Fatal(err)
		}
		if err := repo.UpdateByID(ctx, s.ID, shows.NewShowCommand("One Piece", episodes+1)); err != nil {
			t.Fatal(err)
		}

		threshold := episodes
		list, err := repo.All(ctx, shows.Filters{MinEpisodes: &threshold})
		if err != nil {
			t.Fatal(err)
		}
		if len(list) != 1 || list[0].EpisodesSeen != episodes+1 {
			t.Errorf("All(minEpisodes=%d) = %+v", episodes, list)
		}
	})

	t.Run("delete never reuses ids", func(t *testing.T) {
		repo := newRepo(t)
		a, _ := repo.Create(ctx, shows.NewShowCommand("a", 1))
		b, _ := repo.Create(ctx, shows.NewShowCommand("b", 2))

		if err := repo.DeleteByID(ctx, b.ID); err != nil {
			t.Fatal(err)
		}
		if err := repo.DeleteByID(ctx, b.ID); !errors.Is(err, shows.ErrNotFound) {
			t.Errorf("second delete err = %v, want ErrNotFound", err)
		}

		c, _ := repo.Create(ctx, shows.NewShowCommand("c", 3))
		if c.ID == b.ID || c.ID <= a.ID {
			t.Errorf("id %d reused or not increasing (a=%d b=%d)", c.ID, a.ID, b.ID)
		}

		list, _ := repo.All(ctx, shows.Filters{})
		if len(list) != 2 || list[0].ID != a.ID || list[1].ID != c.ID {
			t.Errorf("All() after delete = %+v", list)
		}
	})

	t.Run("concurrent creates", func(t *testing.T) {
		repo := newRepo(t)
		const n = 50

		var wg sync.WaitGroup
		for range n {
			wg.Add(1)
			go func() {
				defer wg.Done()
				if _, err := repo.Create(ctx, shows.NewShowCommand("x", 1)); err != nil {
					t.Error(err)
				}
			}()
		}
		wg.Wait()

		list, err := repo.All(ctx, shows.Filters{})
		if err != nil {
			t.Fatal(err)
		}
		seen := make(map[int]bool, n)
		for _, s := range list {
			if seen[s.ID] {
				t.Fatalf("duplicate id %d", s.ID)
			}
			seen[s.ID] = true
		}
		if len(list) != n {
			t.Errorf("len = %d, want %d", len(list), n)
		}
	})
}
