package http

import (
	"net/http"

	"finbridge-ledger/internal/usecase/admin"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

type AdminHandler struct{ uc *admin.Usecase }

func NewAdminHandler(uc *admin.Usecase) *AdminHandler { return &AdminHandler{uc: uc} }

type depositReq struct {
	Address string `json:"address" validate:"required,ethaddr"`
	Value   string `json:"value"   validate:"required,decpos"`
}

func (h *AdminHandler) Pause(c echo.Context) error {
	caller, ok := callerAddr(c)
	if !ok {
		return missingCaller(c)
	}
	dto, err := h.uc.Pause(c.Request().Context(), caller)
	if err != nil {
		return writeDomainErr(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *AdminHandler) Unpause(c echo.Context) error {
	caller, ok := callerAddr(c)
	if !ok {
		return missingCaller(c)
	}
	dto, err := h.uc.Unpause(c.Request().Context(), caller)
	if err != nil {
		return writeDomainErr(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *AdminHandler) State(c echo.Context) error {
	dto, err := h.uc.State(c.Request().Context())
	if err != nil {
		return writeDomainErr(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *AdminHandler) Deposit(c echo.Context) error {
	caller, ok := callerAddr(c)
	if !ok {
		return missingCaller(c)
	}
	var req depositReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "InvalidBody", Message: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "ValidationFailed",
			Details: ToFieldErrors(err),
		})
	}
	value, _ := decimal.NewFromString(req.Value)

	if err := h.uc.Deposit(c.Request().Context(), caller, normalizeAddr(req.Address), value); err != nil {
		return writeDomainErr(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"address": normalizeAddr(req.Address), "value": value})
}

func (h *AdminHandler) EmergencyWithdraw(c echo.Context) error {
	caller, ok := callerAddr(c)
	if !ok {
		return missingCaller(c)
	}
	swept, err := h.uc.EmergencyWithdraw(c.Request().Context(), caller)
	if err != nil {
		return writeDomainErr(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"swept": swept})
}
