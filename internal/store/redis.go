package store

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/JaimeStill/shows-api/internal/shows"
	"github.com/redis/go-redis/v9"
)

func init() {
	Register(DriverRedis, openRedis)
}

// Redis stores each show as a hash and keeps ordering in a sorted set:
//
//   - {prefix}:seq        counter for id assignment (INCR, never reset)
//   - {prefix}:index      sorted set of ids, score = id
//   - {prefix}:show:{id}  hash with name and episodes_seen
//
// Mutations run as Lua scripts so each one is atomic on the server.
type Redis struct {
	client   *redis.Client
	logger   *slog.Logger
	seqKey   string
	indexKey string
	prefix   string
}

// createShow assigns the next id and stores the show.
//
// KEYS[1] = seq, KEYS[2] = index
// ARGV[1] = key prefix for show hashes, ARGV[2] = name, ARGV[3] = episodes_seen
var createShow = redis.NewScript(`
local id = redis.call('INCR', KEYS[1])
redis.call('HSET', ARGV[1] .. id, 'name', ARGV[2], 'episodes_seen', ARGV[3])
redis.call('ZADD', KEYS[2], id, id)
return id
`)

// updateShow replaces both fields when the show exists. Returns 0 when missing.
//
// KEYS[1] = show hash
// ARGV[1] = name, ARGV[2] = episodes_seen
var updateShow = redis.NewScript(`
if redis.call('EXISTS', KEYS[1]) == 0 then
    return 0
end
redis.call('HSET', KEYS[1], 'name', ARGV[1], 'episodes_seen', ARGV[2])
return 1
`)

// deleteShow removes the hash and its index entry. Returns the number of hashes removed.
//
// KEYS[1] = show hash, KEYS[2] = index
// ARGV[1] = id
var deleteShow = redis.NewScript(`
local n = redis.call('DEL', KEYS[1])
redis.call('ZREM', KEYS[2], ARGV[1])
return n
`)

// NewRedis wraps client. Keys are namespaced under prefix.
func NewRedis(client *redis.Client, prefix string, logger *slog.Logger) *Redis {
	return &Redis{
		client:   client,
		logger:   logger.With("system", "store.redis"),
		seqKey:   prefix + ":seq",
		indexKey: prefix + ":index",
		prefix:   prefix + ":show:",
	}
}

func openRedis(cfg *Config, deps Deps) (shows.Repository, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Address,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	ctx, cancel := context.WithTimeout(deps.Lifecycle.Context(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}

	r := NewRedis(client, cfg.Redis.Prefix, deps.Logger)

	deps.Lifecycle.OnShutdown(func() {
		<-deps.Lifecycle.Context().Done()
		r.logger.Info("closing redis connection")
		if err := client.Close(); err != nil {
			r.logger.Error("redis close error", "error", err)
		}
	})

	return r, nil
}

func (r *Redis) showKey(id int) string {
	return r.prefix + strconv.Itoa(id)
}

func (r *Redis) All(ctx context.Context, filters shows.Filters) ([]shows.Show, error) {
	ids, err := r.client.ZRange(ctx, r.indexKey, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("read index: %w", err)
	}

	cmds := make([]*redis.MapStringStringCmd, len(ids))
	_, err = r.client.Pipelined(ctx, func(pipe redis.Pipeliner) error {
		for i, id := range ids {
			cmds[i] = pipe.HGetAll(ctx, r.prefix+id)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("read shows: %w", err)
	}

	list := make([]shows.Show, 0, len(ids))
	for i, cmd := range cmds {
		fields := cmd.Val()
		// deleted between ZRANGE and HGETALL
		if len(fields) == 0 {
			continue
		}
		s, err := decodeShow(ids[i], fields)
		if err != nil {
			return nil, err
		}
		if filters.Matches(s) {
			list = append(list, s)
		}
	}
	return list, nil
}

func (r *Redis) ByID(ctx context.Context, id int) (*shows.Show, error) {
	fields, err := r.client.HGetAll(ctx, r.showKey(id)).Result()
	if err != nil {
		return nil, fmt.Errorf("read show: %w", err)
	}
	if len(fields) == 0 {
		return nil, shows.ErrNotFound
	}

	s, err := decodeShow(strconv.Itoa(id), fields)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *Redis) Create(ctx context.Context, cmd shows.ShowCommand) (*shows.Show, error) {
	id, err := createShow.Run(ctx, r.client,
		[]string{r.seqKey, r.indexKey},
		r.prefix, *cmd.Name, *cmd.EpisodesSeen,
	).Int()
	if err != nil {
		return nil, fmt.Errorf("create show: %w", err)
	}

	s := cmd.Show(id)
	return &s, nil
}

func (r *Redis) UpdateByID(ctx context.Context, id int, cmd shows.ShowCommand) error {
	n, err := updateShow.Run(ctx, r.client,
		[]string{r.showKey(id)},
		*cmd.Name, *cmd.EpisodesSeen,
	).Int()
	if err != nil {
		return fmt.Errorf("update show: %w", err)
	}
	if n == 0 {
		return shows.ErrNotFound
	}
	return nil
}

func (r *Redis) DeleteByID(ctx context.Context, id int) error {
	n, err := deleteShow.Run(ctx, r.client,
		[]string{r.showKey(id), r.indexKey},
		id,
	).Int()
	if err != nil {
		return fmt.Errorf("delete show: %w", err)
	}
	if n == 0 {
		return shows.ErrNotFound
	}
	return nil
}

func decodeShow(id string, fields map[string]string) (shows.Show, error) {
	n, err := strconv.Atoi(id)
	if err != nil {
		return shows.Show{}, fmt.Errorf("decode show id %q: %w", id, err)
	}

	episodes, err := strconv.Atoi(fields["episodes_seen"])
	if err != nil {
		return shows.Show{}, fmt.Errorf("decode show %d: %w", n, err)
	}

	return shows.Show{
		ID:           n,
		Name:         fields["name"],
		EpisodesSeen: episodes,
	}, nil
}
