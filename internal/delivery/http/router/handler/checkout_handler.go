package handler

import (
	"log/slog"
	"net/http"

	"reunion/internal/delivery/http/middleware"
	"reunion/internal/delivery/http/response"
	"reunion/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// CheckoutHandlerParams holds dependencies for CheckoutHandler, injected by Fx.
type CheckoutHandlerParams struct {
	fx.In

	CheckoutUC usecase.CheckoutUsecase
	Logger     *slog.Logger
}

// CheckoutHandler holds dependencies for the final-save handlers
type CheckoutHandler struct {
	checkoutUC usecase.CheckoutUsecase
	logger     *slog.Logger
}

// NewCheckoutHandler is the constructor for CheckoutHandler
func NewCheckoutHandler(params CheckoutHandlerParams) *CheckoutHandler {
	return &CheckoutHandler{
		checkoutUC: params.CheckoutUC,
		logger:     params.Logger,
	}
}

// Submit runs the multi-stage save of the whole session.
func (h *CheckoutHandler) Submit(c echo.Context) error {
	key, ok := middleware.GetSessionKey(c)
	if !ok {
		return response.BadRequest(c, "MISSING_SESSION_KEY", "Session key could not be resolved")
	}

	result, err := h.checkoutUC.Submit(c.Request().Context(), key)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, result, "Registration saved")
}

// CheckDuplicate reports whether the email or phone is already registered.
func (h *CheckoutHandler) CheckDuplicate(c echo.Context) error {
	var req usecase.CheckDuplicateInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid duplicate check input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	exists, err := h.checkoutUC.CheckDuplicate(c.Request().Context(), &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]bool{"exists": exists}, "")
}
