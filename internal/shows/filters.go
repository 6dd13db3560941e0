package shows

import (
	"fmt"
	"net/url"
	"strconv"

	"github.com/JaimeStill/shows-api/pkg/query"
)

// Filters contains optional filtering criteria for show queries.
type Filters struct {
	MinEpisodes *int
}

// FiltersFromQuery extracts filter values from URL query parameters.
// A present but non-integer minEpisodes is rejected.
func FiltersFromQuery(values url.Values) (Filters, error) {
	if !values.Has("minEpisodes") {
		return Filters{}, nil
	}

	raw := values.Get("minEpisodes")
	n, err := strconv.Atoi(raw)
	if err != nil {
		return Filters{}, fmt.Errorf("%w: %q", ErrInvalidMinEpisodes, raw)
	}
	return Filters{MinEpisodes: &n}, nil
}

// Active reports whether any filter is set.
func (f Filters) Active() bool {
	return f.MinEpisodes != nil
}

// Matches reports whether s passes every filter.
func (f Filters) Matches(s Show) bool {
	if f.MinEpisodes != nil && s.EpisodesSeen < *f.MinEpisodes {
		return false
	}
	return true
}

// Apply adds filter conditions to a query builder.
func (f Filters) Apply(b *query.Builder) *query.Builder {
	return b.WhereAtLeast("EpisodesSeen", f.MinEpisodes)
}
