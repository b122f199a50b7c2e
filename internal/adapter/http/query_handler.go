package http

import (
	"context"
	"net/http"
	"strconv"

	"finbridge-ledger/internal/usecase/query"

	"github.com/labstack/echo/v4"
)

type QueryHandler struct{ uc *query.Usecase }

func NewQueryHandler(uc *query.Usecase) *QueryHandler { return &QueryHandler{uc: uc} }

func (h *QueryHandler) GetLoan(c echo.Context) error {
	id, ok := loanIDParam(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "InvalidLoanID", Message: "malformed loan_id"})
	}
	dto, err := h.uc.GetLoan(c.Request().Context(), id)
	if err != nil {
		return writeDomainErr(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *QueryHandler) ListActive(c echo.Context) error {
	ids, err := h.uc.ActiveLoanIDs(c.Request().Context())
	if err != nil {
		return writeDomainErr(c, err)
	}
	if ids == nil {
		ids = []uint64{}
	}
	return c.JSON(http.StatusOK, map[string]any{"loan_ids": ids})
}

func (h *QueryHandler) UserLoans(c echo.Context) error {
	return h.userIDList(c, h.uc.UserLoanIDs)
}

func (h *QueryHandler) UserFunded(c echo.Context) error {
	return h.userIDList(c, h.uc.UserFundedIDs)
}

func (h *QueryHandler) userIDList(c echo.Context, list func(ctx context.Context, address string) ([]uint64, error)) error {
	addr := normalizeAddr(c.Param("address"))
	if !reAddr.MatchString(addr) {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "InvalidAddress", Message: "malformed address"})
	}
	ids, err := list(c.Request().Context(), addr)
	if err != nil {
		return writeDomainErr(c, err)
	}
	if ids == nil {
		ids = []uint64{}
	}
	return c.JSON(http.StatusOK, map[string]any{"address": addr, "loan_ids": ids})
}

func (h *QueryHandler) UserStats(c echo.Context) error {
	addr := normalizeAddr(c.Param("address"))
	if !reAddr.MatchString(addr) {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "InvalidAddress", Message: "malformed address"})
	}
	dto, err := h.uc.UserStats(c.Request().Context(), addr)
	if err != nil {
		return writeDomainErr(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *QueryHandler) Balance(c echo.Context) error {
	addr := normalizeAddr(c.Param("address"))
	if !reAddr.MatchString(addr) {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "InvalidAddress", Message: "malformed address"})
	}
	dto, err := h.uc.Balance(c.Request().Context(), addr)
	if err != nil {
		return writeDomainErr(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *QueryHandler) Events(c echo.Context) error {
	afterSeq, _ := strconv.ParseInt(c.QueryParam("after_seq"), 10, 64)
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	events, err := h.uc.Events(c.Request().Context(), afterSeq, limit)
	if err != nil {
		return writeDomainErr(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"events": events})
}

func (h *QueryHandler) Constants(c echo.Context) error {
	return c.JSON(http.StatusOK, h.uc.Constants())
}
