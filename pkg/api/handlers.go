package api

import (
	"log/slog"
	"net/http"

	"github.com/NVIDIA/path-follower/pkg/errors"
	"github.com/NVIDIA/path-follower/pkg/follower"
	"github.com/NVIDIA/path-follower/pkg/options"
	"github.com/NVIDIA/path-follower/pkg/pose"
	"github.com/NVIDIA/path-follower/pkg/serializer"
	"github.com/NVIDIA/path-follower/pkg/server"
)

// Handler serves driving configuration assembly over HTTP.
//
// Every request gets its own pose tracker over the shared transform buffer,
// so the tracking mode set by one assembly never leaks into another.
type Handler struct {
	opts         *options.Options
	buffer       *pose.Buffer
	maxBodyBytes int64
}

// NewHandler creates a Handler that fills unnamed roles from opts.
func NewHandler(opts *options.Options, buffer *pose.Buffer, maxBodyBytes int64) *Handler {
	return &Handler{
		opts:         opts,
		buffer:       buffer,
		maxBodyBytes: maxBodyBytes,
	}
}

// HandleConstruct handles POST /v1/construct. The body is a follower.Request
// in JSON, YAML or TOML; empty fields fall back to the server options. The
// reply is the summary of the assembled configuration.
func (h *Handler) HandleConstruct(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		server.WriteError(w, r, http.StatusMethodNotAllowed, errors.ErrCodeMethodNotAllowed,
			"Method not allowed", false, map[string]any{"method": r.Method, "allowed": http.MethodPost})
		return
	}

	var body follower.Request
	if err := serializer.DecodeRequest(r, h.maxBodyBytes, &body); err != nil {
		server.WriteError(w, r, http.StatusBadRequest, errors.ErrCodeInvalidRequest,
			"Invalid request body", false, map[string]any{"error": err.Error()})
		return
	}

	req := follower.RequestFromOptions(h.opts).Override(body)

	assembler, err := follower.NewAssembler(pose.NewStaticTracker(h.buffer), h.opts)
	if err != nil {
		server.WriteErrorFromErr(w, r, err, "Failed to create assembler", nil)
		return
	}

	cfg, err := assembler.Construct(req)
	if err != nil {
		server.WriteErrorFromErr(w, r, err, "Failed to construct driving configuration", nil)
		return
	}

	slog.Debug("construct request served", "id", cfg.ID().String())
	serializer.RespondJSON(w, http.StatusOK, cfg.Summary())
}

// HandleComponents handles GET /v1/components with an optional role query
// parameter.
func (h *Handler) HandleComponents(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		server.WriteError(w, r, http.StatusMethodNotAllowed, errors.ErrCodeMethodNotAllowed,
			"Method not allowed", false, map[string]any{"method": r.Method, "allowed": http.MethodGet})
		return
	}

	cat, err := follower.ListComponents(r.URL.Query().Get("role"))
	if err != nil {
		server.WriteErrorFromErr(w, r, err, "Failed to list components", nil)
		return
	}

	serializer.RespondJSON(w, http.StatusOK, cat)
}
