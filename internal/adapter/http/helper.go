package http

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
)

// ---- helpers ----

// CallerHeader carries the caller's wallet address, set by the wallet
// plumbing in front of this API.
const CallerHeader = "Fb-Caller"

func callerAddr(c echo.Context) (string, bool) {
	raw := normalizeAddr(c.Request().Header.Get(CallerHeader))
	if !reAddr.MatchString(raw) {
		return "", false
	}
	return raw, true
}

func missingCaller(c echo.Context) error {
	return c.JSON(http.StatusBadRequest, ErrorResponse{
		Error:   "InvalidCaller",
		Message: "missing or malformed " + CallerHeader + " header",
	})
}

func loanIDParam(c echo.Context) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param("loan_id"), 10, 64)
	return id, err == nil && id > 0
}

func containsFieldMsg(list []FieldError, field, substr string) bool {
	for _, e := range list {
		if e.Field == field && strings.Contains(e.Message, substr) {
			return true
		}
	}
	return false
}
