package store

import (
	"bytes"
	"context"
	_ "embed"
	"fmt"
	"io"

	"github.com/JaimeStill/shows-api/internal/shows"
	"github.com/pelletier/go-toml/v2"
)

//go:embed seed.toml
var defaultSeed []byte

type seedFile struct {
	Shows []struct {
		Name         string `toml:"name"`
		EpisodesSeen int    `toml:"episodes_seen"`
	} `toml:"shows"`
}

// BulkCreator is implemented by backends that insert many shows atomically.
type BulkCreator interface {
	CreateMany(ctx context.Context, cmds []shows.ShowCommand) ([]shows.Show, error)
}

// DefaultShows returns the built-in seed list.
func DefaultShows() ([]shows.ShowCommand, error) {
	return LoadSeed(bytes.NewReader(defaultSeed))
}

// LoadSeed decodes a TOML seed document of [[shows]] tables.
func LoadSeed(r io.Reader) ([]shows.ShowCommand, error) {
	var f seedFile
	if err := toml.NewDecoder(r).DisallowUnknownFields().Decode(&f); err != nil {
		return nil, fmt.Errorf("decode seed: %w", err)
	}

	cmds := make([]shows.ShowCommand, 0, len(f.Shows))
	for _, s := range f.Shows {
		cmds = append(cmds, shows.NewShowCommand(s.Name, s.EpisodesSeen))
	}
	return cmds, nil
}

// Seed inserts cmds into repo, in one transaction when the backend supports it.
func Seed(ctx context.Context, repo shows.Repository, cmds []shows.ShowCommand) ([]shows.Show, error) {
	for i, cmd := range cmds {
		if err := cmd.Validate(); err != nil {
			return nil, fmt.Errorf("seed entry %d: %w", i, err)
		}
	}
	return createMany(ctx, repo, cmds)
}

func createMany(ctx context.Context, repo shows.Repository, cmds []shows.ShowCommand) ([]shows.Show, error) {
	if bulk, ok := repo.(BulkCreator); ok {
		return bulk.CreateMany(ctx, cmds)
	}

	created := make([]shows.Show, 0, len(cmds))
	for _, cmd := range cmds {
		s, err := repo.Create(ctx, cmd)
		if err != nil {
			return created, fmt.Errorf("seed %q: %w", *cmd.Name, err)
		}
		created = append(created, *s)
	}
	return created, nil
}
