package store

import (
	"context"
	"errors"

	"github.com/JaimeStill/shows-api/internal/shows"
	"github.com/JaimeStill/shows-api/pkg/metrics"
)

// instrumented counts every repository call by driver, operation, and result.
// A missing show is counted as "not_found" rather than "error".
type instrumented struct {
	inner  shows.Repository
	driver string
	m      *metrics.Metrics
}

func newInstrumented(inner shows.Repository, driver string, m *metrics.Metrics) *instrumented {
	return &instrumented{inner: inner, driver: driver, m: m}
}

func (i *instrumented) observe(op string, err error) {
	result := "ok"
	switch {
	case errors.Is(err, shows.ErrNotFound):
		result = "not_found"
	case err != nil:
		result = "error"
	}
	i.m.StoreOperations.WithLabelValues(i.driver, op, result).Inc()
}

func (i *instrumented) All(ctx context.Context, filters shows.Filters) ([]shows.Show, error) {
	list, err := i.inner.All(ctx, filters)
	i.observe("all", err)
	return list, err
}

func (i *instrumented) ByID(ctx context.Context, id int) (*shows.Show, error) {
	s, err := i.inner.ByID(ctx, id)
	i.observe("by_id", err)
	return s, err
}

func (i *instrumented) Create(ctx context.Context, cmd shows.ShowCommand) (*shows.Show, error) {
	s, err := i.inner.Create(ctx, cmd)
	i.observe("create", err)
	return s, err
}

func (i *instrumented) UpdateByID(ctx context.Context, id int, cmd shows.ShowCommand) error {
	err := i.inner.UpdateByID(ctx, id, cmd)
	i.observe("update", err)
	return err
}

func (i *instrumented) DeleteByID(ctx context.Context, id int) error {
	err := i.inner.DeleteByID(ctx, id)
	i.observe("delete", err)
	return err
}

// CreateMany forwards to the inner backend's bulk insert when it has one.
func (i *instrumented) CreateMany(ctx context.Context, cmds []shows.ShowCommand) ([]shows.Show, error) {
	list, err := createMany(ctx, i.inner, cmds)
	i.observe("create_many", err)
	return list, err
}
