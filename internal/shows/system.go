package shows

import (
	"context"
	"fmt"
	"log/slog"
)

// System defines the show operations exposed to the HTTP layer.
// Create and Update return the full collection after the change.
type System interface {
	List(ctx context.Context, filters Filters) ([]Show, error)
	Find(ctx context.Context, id int) (*Show, error)
	Create(ctx context.Context, cmd ShowCommand) ([]Show, error)
	Update(ctx context.Context, id int, cmd ShowCommand) ([]Show, error)
	Delete(ctx context.Context, id int) error
}

type system struct {
	repo   Repository
	logger *slog.Logger
}

// New creates the show System over repo.
func New(repo Repository, logger *slog.Logger) System {
	return &system{
		repo:   repo,
		logger: logger.With("system", "shows"),
	}
}

func (s *system) List(ctx context.Context, filters Filters) ([]Show, error) {
	list, err := s.repo.All(ctx, filters)
	if err != nil {
		return nil, fmt.Errorf("list shows: %w", err)
	}
	return list, nil
}

func (s *system) Find(ctx context.Context, id int) (*Show, error) {
	show, err := s.repo.ByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find show %d: %w", id, err)
	}
	return show, nil
}

func (s *system) Create(ctx context.Context, cmd ShowCommand) ([]Show, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	show, err := s.repo.Create(ctx, cmd)
	if err != nil {
		return nil, fmt.Errorf("create show: %w", err)
	}
	s.logger.Info("show created", "id", show.ID, "name", show.Name)

	return s.List(ctx, Filters{})
}

// Update reports a missing id before it inspects cmd.
func (s *system) Update(ctx context.Context, id int, cmd ShowCommand) ([]Show, error) {
	if _, err := s.repo.ByID(ctx, id); err != nil {
		return nil, fmt.Errorf("update show %d: %w", id, err)
	}

	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	if err := s.repo.UpdateByID(ctx, id, cmd); err != nil {
		return nil, fmt.Errorf("update show %d: %w", id, err)
	}
	s.logger.Info("show updated", "id", id)

	return s.List(ctx, Filters{})
}

func (s *system) Delete(ctx context.Context, id int) error {
	if err := s.repo.DeleteByID(ctx, id); err != nil {
		return fmt.Errorf("delete show %d: %w", id, err)
	}
	s.logger.Info("show deleted", "id", id)
	return nil
}
