package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"tally/internal/receipt"
	dErrors "tally/pkg/domain-errors"
	"tally/pkg/platform/httputil"
	"tally/pkg/requestcontext"
)

// Service defines the interface for receipt operations.
type Service interface {
	Process(ctx context.Context, doc receipt.Document) (string, error)
	Points(ctx context.Context, id string) (int, error)
}

// Handler wires receipt endpoints to the receipt service.
type Handler struct {
	service Service
	logger  *slog.Logger
}

// New constructs a receipt handler with its dependencies.
func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// Register mounts receipt endpoints on the router.
func (h *Handler) Register(r chi.Router) {
	r.Post("/receipts/process", h.HandleProcess)
	r.Get("/receipts/{id}/points", h.HandlePoints)
}

// HandleProcess handles POST /receipts/process requests.
func (h *Handler) HandleProcess(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	var doc receipt.Document
	if err := httputil.DecodeJSON(r, &doc); err != nil {
		h.logger.WarnContext(ctx, "malformed receipt body",
			"request_id", requestID,
			"error", err.Error(),
		)
		httputil.WriteError(w, err)
		return
	}

	id, err := h.service.Process(ctx, doc)
	if err != nil {
		var vErr *receipt.ValidationError
		if errors.As(err, &vErr) {
			h.logger.WarnContext(ctx, "receipt rejected",
				"request_id", requestID,
				"kind", string(vErr.Kind),
				"field", vErr.Field,
			)
			httputil.WriteError(w, dErrors.New(dErrors.CodeValidation, vErr.Message))
			return
		}
		h.logger.ErrorContext(ctx, "failed to process receipt",
			"request_id", requestID,
			"error", err.Error(),
		)
		httputil.WriteError(w, dErrors.New(dErrors.CodeInternal, "internal server error"))
		return
	}

	httputil.WriteJSON(w, http.StatusOK, ProcessResponse{ID: id})
}

// HandlePoints handles GET /receipts/{id}/points requests.
func (h *Handler) HandlePoints(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	id := chi.URLParam(r, "id")
	points, err := h.service.Points(ctx, id)
	if err != nil {
		if dErrors.Is(err, dErrors.CodeNotFound) {
			httputil.WriteError(w, err)
			return
		}
		h.logger.ErrorContext(ctx, "failed to score receipt",
			"request_id", requestID,
			"receipt_id", id,
			"error", err.Error(),
		)
		httputil.WriteError(w, dErrors.New(dErrors.CodeInternal, "internal server error"))
		return
	}

	httputil.WriteJSON(w, http.StatusOK, PointsResponse{Points: points})
}
