package query_test

import (
	"testing"

	"github.com/JaimeStill/shows-api/pkg/query"
)

var projection = query.
	NewProjectionMap("public", "shows", "s").
	Project("id", "ID").
	Project("name", "Name").
	Project("episodes_seen", "EpisodesSeen")

func TestProjectionMap(t *testing.T) {
	if got := projection.Table(); got != "public.shows s" {
		t.Errorf("Table() = %q", got)
	}
	if got := projection.Columns(); got != "s.id, s.name, s.episodes_seen" {
		t.Errorf("Columns() = %q", got)
	}
	if got := projection.Column("EpisodesSeen"); got != "s.episodes_seen" {
		t.Errorf("Column() = %q", got)
	}
	if got := projection.Column("unknown"); got != "unknown" {
		t.Errorf("Column(unknown) = %q", got)
	}
}

func TestBuilder_Build(t *testing.T) {
	threshold := 10

	tests := []struct {
		name     string
		build    func() *query.Builder
		wantSQL  string
		wantArgs int
	}{
		{
			name:    "no conditions",
			build:   func() *query.Builder { return query.NewBuilder(projection, "ID") },
			wantSQL: "SELECT s.id, s.name, s.episodes_seen FROM public.shows s ORDER BY s.id ASC",
		},
		{
			name: "nil conditions ignored",
			build: func() *query.Builder {
				return query.NewBuilder(projection, "ID").WhereEquals("ID", nil).WhereAtLeast("EpisodesSeen", nil)
			},
			wantSQL: "SELECT s.id, s.name, s.episodes_seen FROM public.shows s ORDER BY s.id ASC",
		},
		{
			name: "numbered placeholders",
			build: func() *query.Builder {
				return query.NewBuilder(projection, "ID").WhereEquals("ID", 3).WhereAtLeast("EpisodesSeen", &threshold)
			},
			wantSQL:  "SELECT s.id, s.name, s.episodes_seen FROM public.shows s WHERE s.id = $1 AND s.episodes_seen >= $2 ORDER BY s.id ASC",
			wantArgs: 2,
		},
		{
			name: "custom order",
			build: func() *query.Builder {
				return query.NewBuilder(projection, "ID").OrderBy("Name", true)
			},
			wantSQL: "SELECT s.id, s.name, s.episodes_seen FROM public.shows s ORDER BY s.name DESC",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sql, args := tt.build().Build()
			if sql != tt.wantSQL {
				t.Errorf("sql = %q\nwant  %q", sql, tt.wantSQL)
			}
			if len(args) != tt.wantArgs {
				t.Errorf("args = %v, want %d", args, tt.wantArgs)
			}
		})
	}
}

func TestBuilder_BuildCount(t *testing.T) {
	threshold := 1
	sql, args := query.NewBuilder(projection, "ID").WhereAtLeast("EpisodesSeen", &threshold).BuildCount()

	if sql != "SELECT COUNT(*) FROM public.shows s WHERE s.episodes_seen >= $1" {
		t.Errorf("sql = %q", sql)
	}
	if len(args) != 1 || args[0] != 1 {
		t.Errorf("args = %v", args)
	}
}
