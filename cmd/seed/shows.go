package main

import (
	"context"
	"fmt"
	"os"

	"github.com/JaimeStill/shows-api/internal/shows"
	"github.com/JaimeStill/shows-api/internal/store"
)

func init() {
	registerSeeder(&ShowSeeder{})
}

// ShowSeeder inserts the default show list, or the [[shows]] of an external
// TOML file. A store that already holds shows is left alone unless forced.
type ShowSeeder struct {
	file  string
	force bool
}

func (s *ShowSeeder) Name() string {
	return "shows"
}

func (s *ShowSeeder) Description() string {
	return "Seeds the tracked show list"
}

// SetFile configures an external seed file path, overriding the embedded default.
func (s *ShowSeeder) SetFile(path string) {
	s.file = path
}

// SetForce seeds even when the store is not empty.
func (s *ShowSeeder) SetForce(force bool) {
	s.force = force
}

func (s *ShowSeeder) Seed(ctx context.Context, repo shows.Repository) (int, error) {
	if !s.force {
		existing, err := repo.All(ctx, shows.Filters{})
		if err != nil {
			return 0, fmt.Errorf("check existing shows: %w", err)
		}
		if len(existing) > 0 {
			return 0, nil
		}
	}

	cmds, err := s.load()
	if err != nil {
		return 0, err
	}

	created, err := store.Seed(ctx, repo, cmds)
	return len(created), err
}

func (s *ShowSeeder) load() ([]shows.ShowCommand, error) {
	if s.file == "" {
		return store.DefaultShows()
	}

	f, err := os.Open(s.file)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}
	defer f.Close()

	return store.LoadSeed(f)
}
