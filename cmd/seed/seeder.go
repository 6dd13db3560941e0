// Package main provides the seed command for populating a show store with
// initial or test data. Seeders self-register and run against whichever
// backend the configuration selects.
package main

import (
	"context"
	"fmt"
	"sort"

	"github.com/JaimeStill/shows-api/internal/shows"
)

// Seeder defines the interface for store seeders.
type Seeder interface {
	// Name returns the unique identifier for this seeder.
	Name() string

	// Description returns a human-readable description of what this seeder does.
	Description() string

	// Seed populates repo and returns the number of records written.
	Seed(ctx context.Context, repo shows.Repository) (int, error)
}

var seeders = map[string]Seeder{}

// registerSeeder adds a seeder to the global registry.
// Seeders self-register via init() functions.
func registerSeeder(s Seeder) {
	seeders[s.Name()] = s
}

func getSeeder(name string) (Seeder, bool) {
	s, ok := seeders[name]
	return s, ok
}

// listSeeders returns all registered seeders sorted by name.
func listSeeders() []Seeder {
	result := make([]Seeder, 0, len(seeders))
	for _, s := range seeders {
		result = append(result, s)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name() < result[j].Name() })
	return result
}

func runSeeder(ctx context.Context, repo shows.Repository, name string) (int, error) {
	seeder, ok := getSeeder(name)
	if !ok {
		return 0, fmt.Errorf("seeder not found: %s", name)
	}

	n, err := seeder.Seed(ctx, repo)
	if err != nil {
		return n, fmt.Errorf("seed %s: %w", name, err)
	}
	return n, nil
}

func runAllSeeders(ctx context.Context, repo shows.Repository) (int, error) {
	total := 0
	for _, s := range listSeeders() {
		n, err := runSeeder(ctx, repo, s.Name())
		total += n
		if err != nil {
			return total, err
		}
	}
	return total, nil
}
