package smartnotes

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/2beens/smarttrack/internal/telemetry/tracing"
	"github.com/2beens/smarttrack/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=smartnotes_test

type notesService interface {
	Process(ctx context.Context, params ProcessParams) (*SmartNote, error)
	Update(ctx context.Context, id, raw string) (*SmartNote, error)
	AttachEvents(ctx context.Context, id string, events []Event) (*SmartNote, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]SmartNote, error)
}

type AddNoteRequest struct {
	Raw         string       `json:"raw"`
	Manual      bool         `json:"manual"`
	Attachments []Attachment `json:"attachments,omitempty"`
}

type UpdateNoteRequest struct {
	Raw string `json:"raw"`
}

type AttachEventsRequest struct {
	Events []Event `json:"events"`
}

type ExtractRequest struct {
	Raw string `json:"raw"`
}

type ExtractResponse struct {
	ExtractResult
	Summary string `json:"summary"`
}

type ListResponse struct {
	Notes []SmartNote `json:"notes"`
	Total int         `json:"total"`
}

type Handler struct {
	service notesService
}

func NewHandler(service notesService) *Handler {
	return &Handler{
		service: service,
	}
}

func (h *Handler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.smartnotes.add")
	defer span.End()

	var req AddNoteRequest
	if err := pkg.DecodeJSONBody(r, &req); err != nil {
		log.Errorf("add note, decode request: %s", err)
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	note, err := h.service.Process(ctx, ProcessParams{
		Raw:         req.Raw,
		Manual:      req.Manual,
		Attachments: req.Attachments,
	})
	if err != nil {
		if errors.Is(err, ErrEmptyNote) {
			http.Error(w, "error, raw empty", http.StatusBadRequest)
			return
		}
		log.Errorf("add note: %s", err)
		http.Error(w, "error, failed to add new note", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, note, http.StatusCreated)
}

func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.smartnotes.update")
	defer span.End()

	id := mux.Vars(r)["id"]
	if id == "" {
		http.Error(w, "error, id empty", http.StatusBadRequest)
		return
	}

	var req UpdateNoteRequest
	if err := pkg.DecodeJSONBody(r, &req); err != nil {
		log.Errorf("update note, decode request: %s", err)
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	note, err := h.service.Update(ctx, id, req.Raw)
	if err != nil {
		h.writeServiceError(w, "update note", id, err)
		return
	}

	pkg.WriteJSONOK(w, note)
}

func (h *Handler) HandleAttachEvents(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.smartnotes.attachevents")
	defer span.End()

	id := mux.Vars(r)["id"]
	if id == "" {
		http.Error(w, "error, id empty", http.StatusBadRequest)
		return
	}

	var req AttachEventsRequest
	if err := pkg.DecodeJSONBody(r, &req); err != nil {
		log.Errorf("attach events, decode request: %s", err)
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	note, err := h.service.AttachEvents(ctx, id, req.Events)
	if err != nil {
		h.writeServiceError(w, "attach events", id, err)
		return
	}

	pkg.WriteJSONOK(w, note)
}

func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.smartnotes.delete")
	defer span.End()

	id := mux.Vars(r)["id"]
	if id == "" {
		http.Error(w, "error, id empty", http.StatusBadRequest)
		return
	}

	if err := h.service.Delete(ctx, id); err != nil {
		h.writeServiceError(w, "delete note", id, err)
		return
	}

	pkg.WriteResponse(w, "", fmt.Sprintf("deleted:%s", id))
}

func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.smartnotes.list")
	defer span.End()

	notes, err := h.service.List(ctx)
	if err != nil {
		log.Errorf("list notes error: %s", err)
		http.Error(w, "failed to get notes", http.StatusInternalServerError)
		return
	}

	if len(notes) == 0 {
		notes = []SmartNote{}
	}

	pkg.WriteJSONOK(w, ListResponse{
		Notes: notes,
		Total: len(notes),
	})
}

// HandleExtract previews extraction without storing anything.
func (h *Handler) HandleExtract(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.smartnotes.extract")
	defer span.End()

	var req ExtractRequest
	if err := pkg.DecodeJSONBody(r, &req); err != nil {
		log.Errorf("extract, decode request: %s", err)
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	result := Extract(req.Raw)
	pkg.WriteJSONOK(w, ExtractResponse{
		ExtractResult: result,
		Summary:       BuildSummary(req.Raw, result.Candidates),
	})
}

func (h *Handler) writeServiceError(w http.ResponseWriter, op, id string, err error) {
	switch {
	case errors.Is(err, ErrNoteNotFound):
		http.Error(w, "error, note not found", http.StatusNotFound)
	case errors.Is(err, ErrEmptyNote), errors.Is(err, ErrInvalidEvent):
		http.Error(w, fmt.Sprintf("error, %s", err), http.StatusBadRequest)
	default:
		log.Errorf("%s [%s]: %s", op, id, err)
		http.Error(w, fmt.Sprintf("error, %s failed", op), http.StatusInternalServerError)
	}
}
