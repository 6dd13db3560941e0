// Package shows tracks TV shows and the number of episodes seen for each.
// The package owns the domain types, the storage contract, and the HTTP
// handlers. Storage backends live in internal/store.
package shows

// Show is a tracked show. ID is assigned by the store and never changes.
type Show struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	EpisodesSeen int    `json:"episodes_seen"`
}

// ShowCommand carries the client supplied fields for create and update.
// Pointers distinguish an absent field from its zero value.
type ShowCommand struct {
	Name         *string `json:"name"`
	EpisodesSeen *int    `json:"episodes_seen"`
}

// NewShowCommand builds a complete command.
func NewShowCommand(name string, episodesSeen int) ShowCommand {
	return ShowCommand{Name: &name, EpisodesSeen: &episodesSeen}
}

// Validate reports the first missing field. Name is checked before episodes.
func (c ShowCommand) Validate() error {
	if c.Name == nil {
		return ErrMissingName
	}
	if c.EpisodesSeen == nil {
		return ErrMissingEpisodes
	}
	return nil
}

// Show materializes the command under id. The command must be valid.
func (c ShowCommand) Show(id int) Show {
	return Show{
		ID:           id,
		Name:         *c.Name,
		EpisodesSeen: *c.EpisodesSeen,
	}
}
