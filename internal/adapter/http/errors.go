package http

import (
	"errors"
	"net/http"

	"finbridge-ledger/internal/domain/account"
	"finbridge-ledger/internal/domain/engine"
	"finbridge-ledger/internal/domain/loan"
	"finbridge-ledger/internal/domain/wallet"

	"github.com/labstack/echo/v4"
)

// kindOf maps a domain sentinel to its wire-level error kind and status.
// The kind string is part of the contract: clients branch on it, so it
// is never reclassified here.
func kindOf(err error) (int, string) {
	switch {
	case errors.Is(err, wallet.ErrWalletRequired):
		return http.StatusForbidden, "WalletNotConnected"
	case errors.Is(err, wallet.ErrAlreadyConnected):
		return http.StatusConflict, "AlreadyConnected"
	case errors.Is(err, wallet.ErrNotConnected):
		return http.StatusConflict, "NotConnected"
	case errors.Is(err, engine.ErrPaused):
		return http.StatusConflict, "ContractPaused"
	case errors.Is(err, engine.ErrNotOwner):
		return http.StatusForbidden, "NotOwner"
	case errors.Is(err, loan.ErrInvalidAmount):
		return http.StatusBadRequest, "InvalidAmount"
	case errors.Is(err, loan.ErrInvalidDuration):
		return http.StatusBadRequest, "InvalidDuration"
	case errors.Is(err, loan.ErrInvalidRate):
		return http.StatusBadRequest, "InvalidRate"
	case errors.Is(err, loan.ErrNotFound):
		return http.StatusNotFound, "LoanNotFound"
	case errors.Is(err, loan.ErrAlreadyFunded):
		return http.StatusConflict, "LoanAlreadyFunded"
	case errors.Is(err, loan.ErrNotActive):
		return http.StatusConflict, "LoanNotActive"
	case errors.Is(err, loan.ErrNotFunded):
		return http.StatusConflict, "LoanNotFunded"
	case errors.Is(err, loan.ErrCannotFundOwn):
		return http.StatusForbidden, "CannotFundOwnLoan"
	case errors.Is(err, loan.ErrIncorrectAmount):
		return http.StatusBadRequest, "IncorrectAmount"
	case errors.Is(err, loan.ErrNotBorrower):
		return http.StatusForbidden, "NotBorrower"
	case errors.Is(err, account.ErrInsufficientFunds):
		return http.StatusUnprocessableEntity, "TransferFailed"
	default:
		return http.StatusInternalServerError, "Internal"
	}
}

func writeDomainErr(c echo.Context, err error) error {
	code, kind := kindOf(err)
	msg := err.Error()
	if code == http.StatusInternalServerError {
		msg = "internal error"
	}
	return c.JSON(code, ErrorResponse{Error: kind, Message: msg})
}
