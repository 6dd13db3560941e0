package shows

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/JaimeStill/shows-api/pkg/handlers"
	"github.com/JaimeStill/shows-api/pkg/routes"
)

// Handler provides HTTP handlers for show CRUD operations.
type Handler struct {
	sys          System
	logger       *slog.Logger
	maxBodyBytes int64
}

// NewHandler creates a new shows HTTP handler. Request bodies larger than
// maxBodyBytes are rejected; zero disables the limit.
func NewHandler(sys System, logger *slog.Logger, maxBodyBytes int64) *Handler {
	return &Handler{
		sys:          sys,
		logger:       logger,
		maxBodyBytes: maxBodyBytes,
	}
}

// Routes returns the route group configuration for show endpoints.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix:      "/shows",
		Tags:        []string{"Shows"},
		Description: "Tracked shows and episodes seen",
		Routes: []routes.Route{
			{Method: "GET", Pattern: "", Handler: h.List, OpenAPI: Spec.List},
			{Method: "POST", Pattern: "", Handler: h.Create, OpenAPI: Spec.Create},
			{Method: "GET", Pattern: "/{id}", Handler: h.Find, OpenAPI: Spec.Find},
			{Method: "PUT", Pattern: "/{id}", Handler: h.Update, OpenAPI: Spec.Update},
			{Method: "DELETE", Pattern: "/{id}", Handler: h.Delete, OpenAPI: Spec.Delete},
		},
	}
}

// List handles GET /shows, optionally filtered by minEpisodes.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	filters, err := FiltersFromQuery(r.URL.Query())
	if err != nil {
		h.fail(w, err, "")
		return
	}

	list, err := h.sys.List(r.Context(), filters)
	if err != nil {
		h.fail(w, err, "")
		return
	}

	if filters.Active() && len(list) == 0 {
		handlers.Respond(w, http.StatusOK, MsgNoShowsMatch, handlers.Result{"response": MsgNoShowsMatch})
		return
	}

	handlers.OK(w, handlers.Result{"shows": list})
}

// Find handles GET /shows/{id}.
func (h *Handler) Find(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.fail(w, err, "")
		return
	}

	show, err := h.sys.Find(r.Context(), id)
	if err != nil {
		h.fail(w, err, MsgIDNotFound)
		return
	}

	handlers.OK(w, handlers.Result{"result": show})
}

// Create handles POST /shows and returns the full list.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var cmd ShowCommand
	if err := handlers.DecodeJSON(w, r, h.maxBodyBytes, &cmd); err != nil {
		h.fail(w, err, "")
		return
	}

	list, err := h.sys.Create(r.Context(), cmd)
	if err != nil {
		h.fail(w, err, "")
		return
	}

	handlers.OK(w, handlers.Result{"shows": list})
}

// Update handles PUT /shows/{id}. Both fields are replaced.
// An unknown id is a 404 whatever the body holds.
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.fail(w, err, "")
		return
	}

	if _, err := h.sys.Find(r.Context(), id); err != nil {
		h.fail(w, err, MsgIDNotFound)
		return
	}

	var cmd ShowCommand
	if err := handlers.DecodeJSON(w, r, h.maxBodyBytes, &cmd); err != nil {
		h.fail(w, err, "")
		return
	}

	list, err := h.sys.Update(r.Context(), id, cmd)
	if err != nil {
		h.fail(w, err, MsgIDNotFound)
		return
	}

	handlers.OK(w, handlers.Result{"shows": list})
}

// Delete handles DELETE /shows/{id}.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.fail(w, err, "")
		return
	}

	if err := h.sys.Delete(r.Context(), id); err != nil {
		h.fail(w, err, MsgNoShowWithID)
		return
	}

	handlers.Message(w, http.StatusOK, MsgShowDeleted)
}

// fail writes err as an envelope. Server errors carry the error text;
// client errors carry the static message for their kind.
func (h *Handler) fail(w http.ResponseWriter, err error, notFound string) {
	status := MapHTTPStatus(err)
	if status >= http.StatusInternalServerError {
		handlers.RespondError(w, h.logger, status, err)
		return
	}

	h.logger.Warn("request rejected", "error", err, "status", status)
	handlers.Message(w, status, clientMessage(err, notFound))
}

func pathID(r *http.Request) (int, error) {
	raw := r.PathValue("id")
	id, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidID, raw)
	}
	return id, nil
}
