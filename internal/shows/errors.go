package shows

import (
	"errors"
	"net/http"

	"github.com/JaimeStill/shows-api/pkg/handlers"
)

// Domain errors for show operations.
var (
	ErrNotFound           = errors.New("show not found")
	ErrMissingName        = errors.New("name is required")
	ErrMissingEpisodes    = errors.New("episodes_seen is required")
	ErrInvalidID          = errors.New("invalid show id")
	ErrInvalidMinEpisodes = errors.New("minEpisodes must be an integer")
)

// Client facing messages.
const (
	MsgIDNotFound      = "The provided Id does not exists!"
	MsgNoShowWithID    = "No show with this id exists"
	MsgMissingName     = "There is no name in the body!"
	MsgMissingEpisodes = "There is no episodes_seen in the body!"
	MsgNoShowsMatch    = "there is no show that has that much episodes seen!"
	MsgShowDeleted     = "Show deleted"
)

// MapHTTPStatus maps domain errors to appropriate HTTP status codes.
func MapHTTPStatus(err error) int {
	if errors.Is(err, ErrNotFound) {
		return http.StatusNotFound
	}
	if errors.Is(err, ErrMissingName) || errors.Is(err, ErrMissingEpisodes) {
		return http.StatusUnprocessableEntity
	}
	if errors.Is(err, ErrInvalidID) ||
		errors.Is(err, ErrInvalidMinEpisodes) ||
		errors.Is(err, handlers.ErrMalformedBody) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

// clientMessage returns the envelope message for err. notFound differs
// between routes, so callers supply it.
func clientMessage(err error, notFound string) string {
	switch {
	case errors.Is(err, ErrNotFound):
		return notFound
	case errors.Is(err, ErrMissingName):
		return MsgMissingName
	case errors.Is(err, ErrMissingEpisodes):
		return MsgMissingEpisodes
	default:
		return err.Error()
	}
}
