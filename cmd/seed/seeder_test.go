package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/JaimeStill/shows-api/internal/shows"
	"github.com/JaimeStill/shows-api/internal/store"
)

func TestListSeeders(t *testing.T) {
	list := listSeeders()
	if len(list) == 0 {
		t.Fatal("no seeders registered")
	}
	if list[0].Name() != "shows" {
		t.Errorf("Name() = %q, want %q", list[0].Name(), "shows")
	}
}

func TestRunSeeder_Unknown(t *testing.T) {
	if _, err := runSeeder(context.Background(), store.NewMemory(), "missing"); err == nil {
		t.Fatal("expected error for unknown seeder")
	}
}

func TestShowSeeder_Default(t *testing.T) {
	ctx := context.Background()
	repo := store.NewMemory()
	s := &ShowSeeder{}

	n, err := s.Seed(ctx, repo)
	if err != nil {
		t.Fatalf("Seed() error = %v", err)
	}
	if n != 6 {
		t.Errorf("Seed() = %d, want 6", n)
	}

	n, err = s.Seed(ctx, repo)
	if err != nil {
		t.Fatalf("second Seed() error = %v", err)
	}
	if n != 0 {
		t.Errorf("second Seed() = %d, want 0 on a populated store", n)
	}

	s.SetForce(true)
	n, err = s.Seed(ctx, repo)
	if err != nil {
		t.Fatalf("forced Seed() error = %v", err)
	}
	if n != 6 {
		t.Errorf("forced Seed() = %d, want 6", n)
	}

	list, _ := repo.All(ctx, shows.Filters{})
	if len(list) != 12 {
		t.Errorf("store holds %d shows, want 12", len(list))
	}
}

func TestShowSeeder_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.toml")
	data := "[[shows]]\nname = \"Severance\"\nepisodes_seen = 9\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	repo := store.NewMemory()
	s := &ShowSeeder{}
	s.SetFile(path)

	n, err := s.Seed(context.Background(), repo)
	if err != nil {
		t.Fatalf("Seed() error = %v", err)
	}
	if n != 1 {
		t.Fatalf("Seed() = %d, want 1", n)
	}

	got, err := repo.ByID(context.Background(), 1)
	if err != nil {
		t.Fatal(err)
	}
	if got.Name != "Severance" || got.EpisodesSeen != 9 {
		t.Errorf("ByID(1) = %+v", got)
	}
}

func TestShowSeeder_MissingFile(t *testing.T) {
	s := &ShowSeeder{}
	s.SetFile(filepath.Join(t.TempDir(), "absent.toml"))

	if _, err := s.Seed(context.Background(), store.NewMemory()); err == nil {
		t.Fatal("expected error for missing seed file")
	}
}
