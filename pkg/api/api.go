package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	pkgerrors "github.com/matzehuels/mosaic/pkg/errors"
	pkgio "github.com/matzehuels/mosaic/pkg/io"
	"github.com/matzehuels/mosaic/pkg/mosaic"
	"github.com/matzehuels/mosaic/pkg/workspace"
)

// maxBodyBytes bounds request bodies.
const maxBodyBytes = 1 << 20

// Options configures the service.
type Options struct {
	// Logger receives one debug line per request. Defaults to log.Default().
	Logger *log.Logger
	// Direction is the start direction used by /v1/build when the request
	// names none. Defaults to row.
	Direction mosaic.Direction
	// ExpandPercentage is used by /v1/ops/expand when the request names none.
	// Defaults to 70.
	ExpandPercentage float64
}

type handlers struct {
	logger           *log.Logger
	direction        mosaic.Direction
	expandPercentage float64
}

// NewRouter returns the HTTP handler serving every endpoint.
func NewRouter(opts Options) http.Handler {
	h := &handlers{
		logger:           opts.Logger,
		direction:        opts.Direction,
		expandPercentage: opts.ExpandPercentage,
	}
	if h.logger == nil {
		h.logger = log.Default()
	}
	if !h.direction.Valid() {
		h.direction = mosaic.Row
	}
	if h.expandPercentage == 0 {
		h.expandPercentage = workspace.DefaultExpandPercentage
	}

	r := chi.NewMux()
	r.Use(
		middleware.RequestID,
		middleware.Recoverer,
		requestLogger(h.logger),
	)

	r.Get("/healthz", h.health)
	r.Route("/v1", func(r chi.Router) {
		r.Post("/build", h.build)
		r.Post("/leaves", h.leaves)
		r.Post("/corner", h.corner)
		r.Post("/resolve", h.resolve)
		r.Post("/boxes", h.boxes)
		r.Post("/apply", h.apply)

		r.Route("/ops", func(r chi.Router) {
			r.Post("/insert", h.insert)
			r.Post("/remove", h.remove)
			r.Post("/hide", h.hide)
			r.Post("/expand", h.expand)
			r.Post("/drag", h.drag)
		})
	})
	return r
}

// errorResponse is the body of every failed request.
type errorResponse struct {
	Code    pkgerrors.Code `json:"code"`
	Message string         `json:"message"`
	Detail  string         `json:"detail,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func (h *handlers) writeError(w http.ResponseWriter, r *http.Request, err error) {
	e := pkgerrors.Classify(err)
	status := pkgerrors.HTTPStatus(e.Code)
	if status >= http.StatusInternalServerError {
		h.logger.Error("request failed", "path", r.URL.Path, "err", err)
	}
	resp := errorResponse{Code: e.Code, Message: e.Message}
	if e.Cause != nil {
		resp.Detail = e.Cause.Error()
	}
	writeJSON(w, status, resp)
}

// decode reads the JSON request body into v.
func decode(w http.ResponseWriter, r *http.Request, v any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		var de *pkgio.DecodeError
		if errors.As(err, &de) {
			return err
		}
		return pkgerrors.Wrap(pkgerrors.ErrCodeInvalidFormat, err, "invalid request body")
	}
	return nil
}
