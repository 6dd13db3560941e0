package store

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"log/slog"

	"github.com/JaimeStill/shows-api/internal/shows"
	"github.com/JaimeStill/shows-api/pkg/database"
	"github.com/JaimeStill/shows-api/pkg/query"
	"github.com/JaimeStill/shows-api/pkg/repository"
)

//go:embed migrations/*.sql
var migrations embed.FS

var projection = query.
	NewProjectionMap("public", "shows", "s").
	Project("id", "ID").
	Project("name", "Name").
	Project("episodes_seen", "EpisodesSeen")

const defaultSort = "ID"

func init() {
	Register(DriverPostgres, openPostgres)
}

// Postgres stores shows in the shows table. Ids come from a BIGSERIAL
// sequence, so deleted ids are never handed out again.
type Postgres struct {
	db     *sql.DB
	logger *slog.Logger
}

func NewPostgres(db *sql.DB, logger *slog.Logger) *Postgres {
	return &Postgres{
		db:     db,
		logger: logger.With("system", "store.postgres"),
	}
}

func openPostgres(cfg *Config, deps Deps) (shows.Repository, error) {
	db, err := database.New(&cfg.Database, deps.Logger)
	if err != nil {
		return nil, err
	}
	if err := db.Start(deps.Lifecycle); err != nil {
		return nil, err
	}
	if err := db.Migrate(migrations, "migrations"); err != nil {
		return nil, err
	}
	return NewPostgres(db.Connection(), deps.Logger), nil
}

func scanShow(s repository.Scanner) (shows.Show, error) {
	var show shows.Show
	err := s.Scan(&show.ID, &show.Name, &show.EpisodesSeen)
	return show, err
}

func (p *Postgres) All(ctx context.Context, filters shows.Filters) ([]shows.Show, error) {
	qb := query.NewBuilder(projection, defaultSort)
	filters.Apply(qb)

	q, args := qb.Build()
	list, err := repository.QueryMany(ctx, p.db, q, args, scanShow)
	if err != nil {
		return nil, fmt.Errorf("query shows: %w", err)
	}
	return list, nil
}

func (p *Postgres) ByID(ctx context.Context, id int) (*shows.Show, error) {
	q, args := query.NewBuilder(projection, defaultSort).
		WhereEquals("ID", id).
		Build()

	s, err := repository.QueryOne(ctx, p.db, q, args, scanShow)
	if err != nil {
		return nil, repository.MapError(err, shows.ErrNotFound, nil)
	}
	return &s, nil
}

const insertShow = `
	INSERT INTO public.shows (name, episodes_seen)
	VALUES ($1, $2)
	RETURNING id, name, episodes_seen`

func (p *Postgres) Create(ctx context.Context, cmd shows.ShowCommand) (*shows.Show, error) {
	s, err := repository.QueryOne(ctx, p.db, insertShow, []any{*cmd.Name, *cmd.EpisodesSeen}, scanShow)
	if err != nil {
		return nil, fmt.Errorf("insert show: %w", err)
	}
	return &s, nil
}

// CreateMany inserts every command in one transaction.
func (p *Postgres) CreateMany(ctx context.Context, cmds []shows.ShowCommand) ([]shows.Show, error) {
	created, err := repository.WithTx(ctx, p.db, func(tx *sql.Tx) ([]shows.Show, error) {
		created := make([]shows.Show, 0, len(cmds))
		for _, cmd := range cmds {
			s, err := repository.QueryOne(ctx, tx, insertShow, []any{*cmd.Name, *cmd.EpisodesSeen}, scanShow)
			if err != nil {
				return nil, fmt.Errorf("insert show %q: %w", *cmd.Name, err)
			}
			created = append(created, s)
		}
		return created, nil
	})
	if err != nil {
		return nil, err
	}

	p.logger.Debug("shows inserted", "count", len(created))
	return created, nil
}

func (p *Postgres) UpdateByID(ctx context.Context, id int, cmd shows.ShowCommand) error {
	err := repository.ExecExpectOne(ctx, p.db,
		"UPDATE public.shows SET name = $1, episodes_seen = $2 WHERE id = $3",
		*cmd.Name, *cmd.EpisodesSeen, id,
	)
	return repository.MapError(err, shows.ErrNotFound, nil)
}

func (p *Postgres) DeleteByID(ctx context.Context, id int) error {
	err := repository.ExecExpectOne(ctx, p.db, "DELETE FROM public.shows WHERE id = $1", id)
	return repository.MapError(err, shows.ErrNotFound, nil)
}
