package preset

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/anviet/showcase/internal/response"
)

type contextKey struct{}

// WithVariant returns a context carrying the active variant.
func WithVariant(ctx context.Context, v Variant) context.Context {
	return context.WithValue(ctx, contextKey{}, v)
}

// FromContext returns the active variant, defaulting to Modern when the
// resolver middleware did not run.
func FromContext(ctx context.Context) Variant {
	if v, ok := ctx.Value(contextKey{}).(Variant); ok {
		return v
	}
	return Modern
}

// Resolver resolves the active variant per request: a recognized URL
// parameter wins and is persisted, else the stored value, else Modern.
// The result is injected into the request context.
func Resolver(store Store) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			stored := ""
			if v, ok := store.Load(r); ok {
				stored = string(v)
			}
			active, adopted := Resolve(r.URL.Query().Get(QueryParam), stored)
			if adopted {
				store.Save(w, active)
			}
			next.ServeHTTP(w, r.WithContext(WithVariant(r.Context(), active)))
		})
	}
}

// Handler holds HTTP handlers for reading and changing the active variant.
type Handler struct {
	store Store
}

// NewHandler creates a preset Handler backed by store.
func NewHandler(store Store) *Handler {
	return &Handler{store: store}
}

type stateData struct {
	Preset    string `json:"preset"`
	Theme     string `json:"theme"`
	DataAttr  string `json:"dataAttr"`
	BodyClass string `json:"bodyClass"`
}

type setRequest struct {
	Preset string `json:"preset"`
}

func state(v Variant) stateData {
	return stateData{
		Preset:    v.String(),
		Theme:     string(v.Theme()),
		DataAttr:  v.DataAttr(),
		BodyClass: v.BodyClass(),
	}
}

// Get godoc
//
//	@Summary		Current visual variant
//	@Description	Returns the active preset, its legacy theme projection and the document attributes to apply.
//	@Tags			preset
//	@Produce		json
//	@Success		200	{object}	stateData
//	@Router			/preset [get]
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	response.OK(w, state(FromContext(r.Context())))
}

// Set godoc
//
//	@Summary		Select a visual variant
//	@Description	Persists the given preset and returns the resulting state.
//	@Tags			preset
//	@Accept			json
//	@Produce		json
//	@Param			request	body		setRequest	true	"one of modern, trad, premium"
//	@Success		200		{object}	stateData
//	@Failure		400		{object}	response.ErrorBody
//	@Router			/preset [put]
func (h *Handler) Set(w http.ResponseWriter, r *http.Request) {
	var req setRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "invalid request body")
		return
	}
	v, ok := Parse(req.Preset)
	if !ok {
		response.BadRequest(w, "unknown preset")
		return
	}
	h.store.Save(w, v)
	response.OK(w, state(v))
}

// Toggle godoc
//
//	@Summary		Cycle to the next variant
//	@Description	Advances modern → trad → premium → modern, persists the result and returns it.
//	@Tags			preset
//	@Produce		json
//	@Success		200	{object}	stateData
//	@Router			/preset/toggle [post]
func (h *Handler) Toggle(w http.ResponseWriter, r *http.Request) {
	v := FromContext(r.Context()).Next()
	h.store.Save(w, v)
	response.OK(w, state(v))
}

// ThemeCSS godoc
//
//	@Summary		Theme stylesheet
//	@Description	Serves the active variant's theme projection as CSS custom properties on :root.
//	@Tags			preset
//	@Produce		plain
//	@Success		200	{string}	string
//	@Router			/preset/theme.css [get]
func (h *Handler) ThemeCSS(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/css; charset=utf-8")
	_ = WriteCSS(w, FromContext(r.Context()).Theme())
}
