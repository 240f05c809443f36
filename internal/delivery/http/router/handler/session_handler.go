// Package handler contains the HTTP handlers of the delivery layer.
package handler

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"reunion/internal/delivery/http/middleware"
	"reunion/internal/delivery/http/response"
	"reunion/internal/domain/entity"
	"reunion/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// SessionHandlerParams holds dependencies for SessionHandler, injected by Fx.
type SessionHandlerParams struct {
	fx.In

	SessionUC usecase.SessionUsecase
	Logger    *slog.Logger
}

// SessionHandler holds dependencies for session-related handlers
type SessionHandler struct {
	sessionUC usecase.SessionUsecase
	logger    *slog.Logger
}

// NewSessionHandler is the constructor for SessionHandler
func NewSessionHandler(params SessionHandlerParams) *SessionHandler {
	return &SessionHandler{
		sessionUC: params.SessionUC,
		logger:    params.Logger,
	}
}

// SetStepRequest represents the request body for moving between steps
type SetStepRequest struct {
	Step int `json:"step" validate:"required,min=1,max=5"`
}

// GetSession returns the live session, creating a fresh one on first touch.
func (h *SessionHandler) GetSession(c echo.Context) error {
	key, ok := middleware.GetSessionKey(c)
	if !ok {
		return response.BadRequest(c, "MISSING_SESSION_KEY", "Session key could not be resolved")
	}

	session, err := h.sessionUC.Get(c.Request().Context(), key)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, session, "")
}

// ResetSession restores the initial defaults and purges stored state.
func (h *SessionHandler) ResetSession(c echo.Context) error {
	key, ok := middleware.GetSessionKey(c)
	if !ok {
		return response.BadRequest(c, "MISSING_SESSION_KEY", "Session key could not be resolved")
	}

	session, err := h.sessionUC.Reset(c.Request().Context(), key)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, session, "Session reset")
}

// SetStep records the step the client navigated to.
func (h *SessionHandler) SetStep(c echo.Context) error {
	key, ok := middleware.GetSessionKey(c)
	if !ok {
		return response.BadRequest(c, "MISSING_SESSION_KEY", "Session key could not be resolved")
	}

	var req SetStepRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid step input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	session, err := h.sessionUC.SetStep(c.Request().Context(), key, req.Step)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, session, "")
}

// UpdateForm shallow-merges the submitted fields into the registration form.
func (h *SessionHandler) UpdateForm(c echo.Context) error {
	key, ok := middleware.GetSessionKey(c)
	if !ok {
		return response.BadRequest(c, "MISSING_SESSION_KEY", "Session key could not be resolved")
	}

	var req usecase.UpdateFormInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid form input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	session, err := h.sessionUC.UpdateForm(c.Request().Context(), key, &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, session, "")
}

// AddCartItem adds or merges a merchandise line.
func (h *SessionHandler) AddCartItem(c echo.Context) error {
	key, ok := middleware.GetSessionKey(c)
	if !ok {
		return response.BadRequest(c, "MISSING_SESSION_KEY", "Session key could not be resolved")
	}

	var req usecase.AddCartItemInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid cart item input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	session, err := h.sessionUC.AddCartItem(c.Request().Context(), key, &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, session, "Item added")
}

// ReplaceCart swaps the whole cart in one write.
func (h *SessionHandler) ReplaceCart(c echo.Context) error {
	key, ok := middleware.GetSessionKey(c)
	if !ok {
		return response.BadRequest(c, "MISSING_SESSION_KEY", "Session key could not be resolved")
	}

	var req usecase.ReplaceCartInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid cart input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	session, err := h.sessionUC.ReplaceCart(c.Request().Context(), key, &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, session, "Cart replaced")
}

// IncrementCartLine raises the quantity of the addressed line by one.
func (h *SessionHandler) IncrementCartLine(c echo.Context) error {
	return h.mutateLine(c, h.sessionUC.IncrementCartLine)
}

// DecrementCartLine lowers the quantity of the addressed line by one.
func (h *SessionHandler) DecrementCartLine(c echo.Context) error {
	return h.mutateLine(c, h.sessionUC.DecrementCartLine)
}

// RemoveCartLine removes the addressed line entirely.
func (h *SessionHandler) RemoveCartLine(c echo.Context) error {
	return h.mutateLine(c, h.sessionUC.RemoveCartLine)
}

// ConfirmNameTag confirms a transient name-tag slot into the cart.
func (h *SessionHandler) ConfirmNameTag(c echo.Context) error {
	key, ok := middleware.GetSessionKey(c)
	if !ok {
		return response.BadRequest(c, "MISSING_SESSION_KEY", "Session key could not be resolved")
	}

	var req usecase.ConfirmNameTagInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid name tag input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	session, err := h.sessionUC.ConfirmNameTag(c.Request().Context(), key, &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, session, "Name tag confirmed")
}

// RemoveNameTag removes the name-tag line addressed by slot.
func (h *SessionHandler) RemoveNameTag(c echo.Context) error {
	key, ok := middleware.GetSessionKey(c)
	if !ok {
		return response.BadRequest(c, "MISSING_SESSION_KEY", "Session key could not be resolved")
	}

	slot, err := strconv.Atoi(c.Param("slot"))
	if err != nil {
		return response.BadRequest(c, "INVALID_SLOT", "Invalid name tag slot")
	}

	session, err := h.sessionUC.RemoveNameTag(c.Request().Context(), key, slot)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, session, "Name tag removed")
}

// SetPaymentProof replaces the held payment proof with the uploaded file.
func (h *SessionHandler) SetPaymentProof(c echo.Context) error {
	key, ok := middleware.GetSessionKey(c)
	if !ok {
		return response.BadRequest(c, "MISSING_SESSION_KEY", "Session key could not be resolved")
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return response.BadRequest(c, "MISSING_FILE", "A payment proof file is required")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return response.BadRequest(c, "INVALID_FILE", "The payment proof file could not be read")
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return response.BadRequest(c, "INVALID_FILE", "The payment proof file could not be read")
	}

	session, err := h.sessionUC.SetPaymentProof(c.Request().Context(), key, &usecase.PaymentProofInput{
		Data:        data,
		FileName:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get("Content-Type"),
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, session, "Payment proof attached")
}

// ClearPaymentProof drops the held payment proof.
func (h *SessionHandler) ClearPaymentProof(c echo.Context) error {
	key, ok := middleware.GetSessionKey(c)
	if !ok {
		return response.BadRequest(c, "MISSING_SESSION_KEY", "Session key could not be resolved")
	}

	session, err := h.sessionUC.ClearPaymentProof(c.Request().Context(), key)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, session, "Payment proof removed")
}

// mutateLine factors the shared key-and-index plumbing of the quantity ops.
func (h *SessionHandler) mutateLine(c echo.Context, op func(ctx context.Context, key uuid.UUID, index int) (*entity.CheckoutSession, error)) error {
	key, ok := middleware.GetSessionKey(c)
	if !ok {
		return response.BadRequest(c, "MISSING_SESSION_KEY", "Session key could not be resolved")
	}

	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INDEX", "Invalid cart line index")
	}

	session, err := op(c.Request().Context(), key, index)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, session, "")
}
