package http

import (
	"fmt"
	"net/http"
	"strconv"
	"testing"
)

const thirtyDays = "2592000"

// createLoan connects the borrower if needed and opens a 1.0-for-30-days
// request, returning the new loan id.
func createLoan(t *testing.T, f *fixture) uint64 {
	t.Helper()
	body := `{"amount": "1", "duration_seconds": ` + thirtyDays + `}`
	rec := f.do(t, f.loans.Create, http.MethodPost, "/api/v1/loans", body, borrowerAddr)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create loan: status %d body %s", rec.Code, rec.Body.String())
	}
	id, ok := decodeBody(t, rec)["id"].(float64)
	if !ok || id < 1 {
		t.Fatalf("create loan: body %s", rec.Body.String())
	}
	return uint64(id)
}

func TestLoanCreate(t *testing.T) {
	f := newFixture(t)
	f.connect(t, borrowerAddr)

	body := `{"amount": "1", "duration_seconds": ` + thirtyDays + `}`
	rec := f.do(t, f.loans.Create, http.MethodPost, "/api/v1/loans", body, borrowerAddr)
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d body %s", rec.Code, rec.Body.String())
	}
	got := decodeBody(t, rec)
	if got["state"] != "open" || got["borrower"] != borrowerAddr {
		t.Fatalf("body = %s", rec.Body.String())
	}
	// 1.0 for 30 days prices at base 520 + amount tier 100
	if got["interest_rate_bps"] != float64(620) {
		t.Fatalf("interest_rate_bps = %v, want 620", got["interest_rate_bps"])
	}
}

func TestLoanCreate_WalletRequired(t *testing.T) {
	f := newFixture(t)

	body := `{"amount": "1", "duration_seconds": ` + thirtyDays + `}`
	rec := f.do(t, f.loans.Create, http.MethodPost, "/api/v1/loans", body, borrowerAddr)
	wantKind(t, rec, http.StatusForbidden, "WalletNotConnected")
}

func TestLoanCreate_ValidationFailure(t *testing.T) {
	f := newFixture(t)
	f.connect(t, borrowerAddr)

	for _, body := range []string{
		`{"duration_seconds": ` + thirtyDays + `}`,
		`{"amount": "abc", "duration_seconds": ` + thirtyDays + `}`,
		`{"amount": "-1", "duration_seconds": ` + thirtyDays + `}`,
	} {
		rec := f.do(t, f.loans.Create, http.MethodPost, "/api/v1/loans", body, borrowerAddr)
		wantKind(t, rec, http.StatusUnprocessableEntity, "ValidationFailed")
	}
}

func TestLoanCreate_Paused(t *testing.T) {
	f := newFixture(t)
	f.connect(t, borrowerAddr)

	rec := f.do(t, f.admins.Pause, http.MethodPost, "/api/v1/admin/pause", "", ownerAddr)
	if rec.Code != http.StatusOK {
		t.Fatalf("pause: status %d body %s", rec.Code, rec.Body.String())
	}

	body := `{"amount": "1", "duration_seconds": ` + thirtyDays + `}`
	rec = f.do(t, f.loans.Create, http.MethodPost, "/api/v1/loans", body, borrowerAddr)
	wantKind(t, rec, http.StatusConflict, "ContractPaused")
}

func TestLoanFund(t *testing.T) {
	f := newFixture(t)
	f.connect(t, borrowerAddr)
	f.connect(t, lenderAddr)
	f.credit(t, lenderAddr, "10")
	id := createLoan(t, f)

	target := fmt.Sprintf("/api/v1/loans/%d/fund", id)
	rec := f.do(t, f.loans.Fund, http.MethodPost, target, `{"value": "1"}`, lenderAddr,
		"loan_id", strconv.FormatUint(id, 10))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d body %s", rec.Code, rec.Body.String())
	}
	got := decodeBody(t, rec)
	if got["state"] != "funded" || got["lender"] != lenderAddr {
		t.Fatalf("body = %s", rec.Body.String())
	}

	// principal moved borrower-ward inside the same transaction
	rec = f.do(t, f.queries.Balance, http.MethodGet, "/api/v1/accounts/"+borrowerAddr+"/balance", "", "",
		"address", borrowerAddr)
	if decodeBody(t, rec)["balance"] != "1" {
		t.Fatalf("borrower balance = %s", rec.Body.String())
	}
}

func TestLoanFund_ExactMatch(t *testing.T) {
	f := newFixture(t)
	f.connect(t, borrowerAddr)
	f.connect(t, lenderAddr)
	f.credit(t, lenderAddr, "10")
	id := createLoan(t, f)

	rec := f.do(t, f.loans.Fund, http.MethodPost, "/api/v1/loans/1/fund", `{"value": "0.999"}`, lenderAddr,
		"loan_id", strconv.FormatUint(id, 10))
	wantKind(t, rec, http.StatusBadRequest, "IncorrectAmount")
}

func TestLoanFund_OwnLoan(t *testing.T) {
	f := newFixture(t)
	f.connect(t, borrowerAddr)
	f.credit(t, borrowerAddr, "10")
	id := createLoan(t, f)

	rec := f.do(t, f.loans.Fund, http.MethodPost, "/api/v1/loans/1/fund", `{"value": "1"}`, borrowerAddr,
		"loan_id", strconv.FormatUint(id, 10))
	wantKind(t, rec, http.StatusForbidden, "CannotFundOwnLoan")
}

func TestLoanFund_InsufficientBalance(t *testing.T) {
	f := newFixture(t)
	f.connect(t, borrowerAddr)
	f.connect(t, lenderAddr)
	id := createLoan(t, f)

	rec := f.do(t, f.loans.Fund, http.MethodPost, "/api/v1/loans/1/fund", `{"value": "1"}`, lenderAddr,
		"loan_id", strconv.FormatUint(id, 10))
	wantKind(t, rec, http.StatusUnprocessableEntity, "TransferFailed")
}

func TestLoanFund_UnknownLoan(t *testing.T) {
	f := newFixture(t)
	f.connect(t, lenderAddr)

	rec := f.do(t, f.loans.Fund, http.MethodPost, "/api/v1/loans/404/fund", `{"value": "1"}`, lenderAddr,
		"loan_id", "404")
	wantKind(t, rec, http.StatusNotFound, "LoanNotFound")
}

func TestLoanFund_BadLoanID(t *testing.T) {
	f := newFixture(t)
	f.connect(t, lenderAddr)

	rec := f.do(t, f.loans.Fund, http.MethodPost, "/api/v1/loans/abc/fund", `{"value": "1"}`, lenderAddr,
		"loan_id", "abc")
	wantKind(t, rec, http.StatusBadRequest, "InvalidLoanID")
}

func TestLoanRepay(t *testing.T) {
	f := newFixture(t)
	f.connect(t, borrowerAddr)
	f.connect(t, lenderAddr)
	f.credit(t, lenderAddr, "10")
	id := createLoan(t, f)
	idStr := strconv.FormatUint(id, 10)

	rec := f.do(t, f.loans.Fund, http.MethodPost, "/api/v1/loans/"+idStr+"/fund", `{"value": "1"}`, lenderAddr,
		"loan_id", idStr)
	if rec.Code != http.StatusOK {
		t.Fatalf("fund: status %d body %s", rec.Code, rec.Body.String())
	}

	// short repayments bounce before the transfer is attempted
	rec = f.do(t, f.loans.Repay, http.MethodPost, "/api/v1/loans/"+idStr+"/repay", `{"value": "1"}`, borrowerAddr,
		"loan_id", idStr)
	wantKind(t, rec, http.StatusBadRequest, "IncorrectAmount")

	// top up the borrower with the interest, then settle in full
	f.topUp(t, borrowerAddr, "0.062")
	rec = f.do(t, f.loans.Repay, http.MethodPost, "/api/v1/loans/"+idStr+"/repay", `{"value": "1.062"}`, borrowerAddr,
		"loan_id", idStr)
	if rec.Code != http.StatusOK {
		t.Fatalf("repay: status %d body %s", rec.Code, rec.Body.String())
	}
	if decodeBody(t, rec)["state"] != "repaid" {
		t.Fatalf("body = %s", rec.Body.String())
	}

	rec = f.do(t, f.queries.Balance, http.MethodGet, "/api/v1/accounts/"+lenderAddr+"/balance", "", "",
		"address", lenderAddr)
	if decodeBody(t, rec)["balance"] != "10.062" {
		t.Fatalf("lender balance = %s", rec.Body.String())
	}
}

func TestLoanRepay_OnlyBorrower(t *testing.T) {
	f := newFixture(t)
	f.connect(t, borrowerAddr)
	f.connect(t, lenderAddr)
	f.credit(t, lenderAddr, "10")
	id := createLoan(t, f)
	idStr := strconv.FormatUint(id, 10)

	rec := f.do(t, f.loans.Fund, http.MethodPost, "/api/v1/loans/"+idStr+"/fund", `{"value": "1"}`, lenderAddr,
		"loan_id", idStr)
	if rec.Code != http.StatusOK {
		t.Fatalf("fund: status %d body %s", rec.Code, rec.Body.String())
	}

	rec = f.do(t, f.loans.Repay, http.MethodPost, "/api/v1/loans/"+idStr+"/repay", `{"value": "1.062"}`, lenderAddr,
		"loan_id", idStr)
	wantKind(t, rec, http.StatusForbidden, "NotBorrower")
}

func TestLoanWithdraw(t *testing.T) {
	f := newFixture(t)
	f.connect(t, borrowerAddr)
	id := createLoan(t, f)
	idStr := strconv.FormatUint(id, 10)

	rec := f.do(t, f.loans.Withdraw, http.MethodPost, "/api/v1/loans/"+idStr+"/withdraw", "", borrowerAddr,
		"loan_id", idStr)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d body %s", rec.Code, rec.Body.String())
	}
	if decodeBody(t, rec)["state"] != "withdrawn" {
		t.Fatalf("body = %s", rec.Body.String())
	}
}
