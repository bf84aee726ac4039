package notes

import (
	"context"
	"errors"

	"notes-backend/cmd/server/handlers/handlerutil"
	"notes-backend/cmd/server/handlers/httperr"
	"notes-backend/internal/logger"
	"notes-backend/internal/services/notes"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// Service defines the interface for the notes service
type Service interface {
	Create(ctx context.Context, req notes.CreateNoteRequest) (*notes.NoteResponse, error)
	List(ctx context.Context, req notes.ListNotesRequest) ([]*notes.NoteResponse, error)
	Get(ctx context.Context, id int64) (*notes.NoteResponse, error)
	Update(ctx context.Context, id int64, req notes.UpdateNoteRequest) (*notes.NoteResponse, error)
	Delete(ctx context.Context, id int64) error
}

// Handlers contains the notes HTTP handlers
type Handlers struct {
	service  Service
	validate *validator.Validate
}

// NewHandlers creates new notes handlers
func NewHandlers(service Service, validate *validator.Validate) *Handlers {
	return &Handlers{
		service:  service,
		validate: validate,
	}
}

// fail maps a service error onto the HTTP error taxonomy: NotFound to
// 404, constraint conflicts to 400 with the constraint description,
// anything else to 500.
func fail(err error, handlerName string, id int64) error {
	logFields := []any{"handler", handlerName, "error", err}
	if id != 0 {
		logFields = append(logFields, "noteID", id)
	}

	switch {
	case errors.Is(err, notes.ErrNoteNotFound):
		logger.L().Info("note not found", logFields...)
		return httperr.NotFound(notes.ErrNoteNotFound)
	case errors.Is(err, notes.ErrStorageConflict):
		logger.L().Warn("storage conflict", logFields...)
		return httperr.Fail(httperr.E{Status: 400, Message: err.Error()})
	}

	logger.L().Error("service operation failed", logFields...)
	return httperr.Fail(httperr.E{Status: 500, Message: err.Error()})
}

// Create handles note creation
// @Summary Create a new note
// @Tags notes
// @Accept json
// @Produce json
// @Param request body notes.CreateNoteRequest true "Create note request"
// @Success 201 {object} notes.NoteResponse
// @Failure 400 {object} httperr.E
// @Failure 500 {object} httperr.E
// @Router /notes [post]
func (h *Handlers) Create(c *fiber.Ctx) error {
	var req notes.CreateNoteRequest
	if err := handlerutil.ParseAndValidateBody(c, &req, h.validate, "Create"); err != nil {
		return err
	}

	resp, err := h.service.Create(c.Context(), req)
	if err != nil {
		return fail(err, "Create", 0)
	}

	return c.Status(201).JSON(resp)
}

// List handles notes listing with search, tag filter and pagination
// @Summary List notes, most recently updated first
// @Tags notes
// @Produce json
// @Param q query string false "Case-insensitive substring search in title or content"
// @Param tag query string false "Case-insensitive substring filter on the stored tag string"
// @Param skip query int false "Pagination offset (default: 0)" minimum(0)
// @Param limit query int false "Page size (default: 50, max: 200)" minimum(1) maximum(200)
// @Success 200 {array} notes.NoteResponse
// @Failure 400 {object} httperr.E
// @Router /notes [get]
func (h *Handlers) List(c *fiber.Ctx) error {
	var req notes.ListNotesRequest
	if err := handlerutil.ParseAndValidateQuery(c, &req, h.validate, "List"); err != nil {
		return err
	}

	resp, err := h.service.List(c.Context(), req)
	if err != nil {
		return fail(err, "List", 0)
	}

	return c.JSON(resp)
}

// Get handles fetching a single note
// @Summary Get a note by id
// @Tags notes
// @Produce json
// @Param id path int true "Note ID"
// @Success 200 {object} notes.NoteResponse
// @Failure 404 {object} httperr.E
// @Router /notes/{id} [get]
func (h *Handlers) Get(c *fiber.Ctx) error {
	id, err := handlerutil.ExtractNoteID(c, "Get", notes.ErrNoteNotFound)
	if err != nil {
		return err
	}

	resp, err := h.service.Get(c.Context(), id)
	if err != nil {
		return fail(err, "Get", id)
	}

	return c.JSON(resp)
}

// Update handles partial note updates
// @Summary Update a note; only supplied fields change
// @Tags notes
// @Accept json
// @Produce json
// @Param id path int true "Note ID"
// @Param request body notes.UpdateNoteRequest true "Update note request"
// @Success 200 {object} notes.NoteResponse
// @Failure 400 {object} httperr.E
// @Failure 404 {object} httperr.E
// @Failure 500 {object} httperr.E
// @Router /notes/{id} [put]
func (h *Handlers) Update(c *fiber.Ctx) error {
	id, err := handlerutil.ExtractNoteID(c, "Update", notes.ErrNoteNotFound)
	if err != nil {
		return err
	}

	var req notes.UpdateNoteRequest
	if err := handlerutil.ParseAndValidateBody(c, &req, h.validate, "Update"); err != nil {
		return err
	}

	resp, err := h.service.Update(c.Context(), id, req)
	if err != nil {
		return fail(err, "Update", id)
	}

	return c.JSON(resp)
}

// Delete handles note deletion
// @Summary Delete a note
// @Tags notes
// @Param id path int true "Note ID"
// @Success 204
// @Failure 404 {object} httperr.E
// @Failure 500 {object} httperr.E
// @Router /notes/{id} [delete]
func (h *Handlers) Delete(c *fiber.Ctx) error {
	id, err := handlerutil.ExtractNoteID(c, "Delete", notes.ErrNoteNotFound)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Context(), id); err != nil {
		return fail(err, "Delete", id)
	}

	return c.SendStatus(204)
}
