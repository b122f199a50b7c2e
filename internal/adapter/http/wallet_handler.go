package http

import (
	"net/http"

	"finbridge-ledger/internal/usecase/wallet"

	"github.com/labstack/echo/v4"
)

type WalletHandler struct{ uc *wallet.Usecase }

func NewWalletHandler(uc *wallet.Usecase) *WalletHandler { return &WalletHandler{uc: uc} }

func (h *WalletHandler) Connect(c echo.Context) error {
	caller, ok := callerAddr(c)
	if !ok {
		return missingCaller(c)
	}
	dto, err := h.uc.Connect(c.Request().Context(), caller)
	if err != nil {
		return writeDomainErr(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *WalletHandler) Disconnect(c echo.Context) error {
	caller, ok := callerAddr(c)
	if !ok {
		return missingCaller(c)
	}
	dto, err := h.uc.Disconnect(c.Request().Context(), caller)
	if err != nil {
		return writeDomainErr(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *WalletHandler) IsConnected(c echo.Context) error {
	addr := normalizeAddr(c.Param("address"))
	if !reAddr.MatchString(addr) {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "InvalidAddress", Message: "malformed address"})
	}
	connected, err := h.uc.IsConnected(c.Request().Context(), addr)
	if err != nil {
		return writeDomainErr(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"address": addr, "connected": connected})
}
