package http

import (
	"net/http"

	"finbridge-ledger/internal/usecase/ledger"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

type LoanHandler struct{ uc *ledger.Usecase }

func NewLoanHandler(uc *ledger.Usecase) *LoanHandler { return &LoanHandler{uc: uc} }

// Amounts travel as decimal strings, never floats.
type createLoanReq struct {
	Amount          string `json:"amount"            validate:"required,decpos"`
	DurationSeconds int64  `json:"duration_seconds"  validate:"required,gt=0"`
	InterestRate    int64  `json:"interest_rate,omitempty"`
}

type valueReq struct {
	Value string `json:"value" validate:"required,decpos"`
}

func (h *LoanHandler) Create(c echo.Context) error {
	caller, ok := callerAddr(c)
	if !ok {
		return missingCaller(c)
	}
	var req createLoanReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "InvalidBody", Message: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "ValidationFailed",
			Details: ToFieldErrors(err),
		})
	}
	amount, _ := decimal.NewFromString(req.Amount) // validated above

	dto, err := h.uc.Create(c.Request().Context(), ledger.CreateInput{
		Borrower:        caller,
		Amount:          amount,
		DurationSeconds: req.DurationSeconds,
		InterestRatePct: req.InterestRate,
	})
	if err != nil {
		return writeDomainErr(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *LoanHandler) Fund(c echo.Context) error {
	caller, ok := callerAddr(c)
	if !ok {
		return missingCaller(c)
	}
	id, ok := loanIDParam(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "InvalidLoanID", Message: "malformed loan_id"})
	}
	var req valueReq
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

	dto, err := h.uc.Fund(c.Request().Context(), ledger.FundInput{Lender: caller, LoanID: id, Value: value})
	if err != nil {
		return writeDomainErr(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *LoanHandler) Repay(c echo.Context) error {
	caller, ok := callerAddr(c)
	if !ok {
		return missingCaller(c)
	}
	id, ok := loanIDParam(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "InvalidLoanID", Message: "malformed loan_id"})
	}
	var req valueReq
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

	dto, err := h.uc.Repay(c.Request().Context(), ledger.RepayInput{Borrower: caller, LoanID: id, Value: value})
	if err != nil {
		return writeDomainErr(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *LoanHandler) Withdraw(c echo.Context) error {
	caller, ok := callerAddr(c)
	if !ok {
		return missingCaller(c)
	}
	id, ok := loanIDParam(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "InvalidLoanID", Message: "malformed loan_id"})
	}
	dto, err := h.uc.Withdraw(c.Request().Context(), ledger.WithdrawInput{Caller: caller, LoanID: id})
	if err != nil {
		return writeDomainErr(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}
