package rest

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/lcorreia/bankledger/internal/domain"
	"github.com/lcorreia/bankledger/internal/usecase/ledger"
)

// AccountHandler holds the dependencies for account-related handlers.
type AccountHandler struct {
	service *ledger.LedgerService
	logger  *zap.Logger
}

// NewAccountHandler creates a new AccountHandler.
func NewAccountHandler(service *ledger.LedgerService, logger *zap.Logger) *AccountHandler {
	return &AccountHandler{service: service, logger: logger}
}

// OpenAccountRequest defines the expected JSON body for opening an account.
// Number is optional; one is generated when omitted.
type OpenAccountRequest struct {
	Kind           string `json:"kind"`
	Number         string `json:"number"`
	Holder         string `json:"holder"`
	InitialBalance string `json:"initial_balance"`
}

// AmountRequest defines the JSON body for deposits and withdrawals.
type AmountRequest struct {
	Amount string `json:"amount"`
}

// StatementResponse is the JSON shape of an account statement.
// Fee and InterestRate are variant-specific and omitted when not set.
type StatementResponse struct {
	Number       string `json:"number"`
	Holder       string `json:"holder"`
	Balance      string `json:"balance"`
	Kind         string `json:"kind"`
	MonthlyFee   string `json:"monthly_fee,omitempty"`
	InterestRate string `json:"interest_rate,omitempty"`
}

// WithdrawResponse reports the outcome of a withdrawal. Withdrawn false
// means the amount exceeded the account's limit; the request itself was
// well-formed.
type WithdrawResponse struct {
	Withdrawn bool              `json:"withdrawn"`
	Account   StatementResponse `json:"account"`
}

func toStatementResponse(st domain.Statement) StatementResponse {
	resp := StatementResponse{
		Number:  st.Number,
		Holder:  st.Holder,
		Balance: st.Balance.StringFixed(2),
		Kind:    string(st.Kind),
	}
	switch st.Kind {
	case domain.KindChecking:
		resp.MonthlyFee = st.MonthlyFee.StringFixed(2)
	case domain.KindSavings:
		resp.InterestRate = st.InterestRate.String()
	}
	return resp
}

// OpenAccount handles POST /accounts.
func (h *AccountHandler) OpenAccount(w http.ResponseWriter, r *http.Request) {
	var req OpenAccountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	kind := domain.AccountKind(req.Kind)
	if kind != domain.KindChecking && kind != domain.KindSavings {
		http.Error(w, "kind must be CHECKING or SAVINGS", http.StatusBadRequest)
		return
	}

	initial, err := decimal.NewFromString(req.InitialBalance)
	if err != nil {
		http.Error(w, "invalid initial_balance: "+req.InitialBalance, http.StatusBadRequest)
		return
	}

	st, err := h.service.OpenAccount(ledger.OpenAccountInput{
		Kind:           kind,
		Number:         req.Number,
		Holder:         req.Holder,
		InitialBalance: initial,
	})
	if err != nil {
		h.writeError(w, err)
		return
	}

	h.logger.Info("account opened",
		zap.String("number", st.Number),
		zap.String("kind", req.Kind))
	writeJSON(w, http.StatusCreated, toStatementResponse(st))
}

// GetAccount handles GET /accounts/{number}.
func (h *AccountHandler) GetAccount(w http.ResponseWriter, r *http.Request) {
	number := chi.URLParam(r, "number")

	st, err := h.service.GetStatement(number)
	if err != nil {
		h.writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toStatementResponse(st))
}

// Deposit handles POST /accounts/{number}/deposit.
func (h *AccountHandler) Deposit(w http.ResponseWriter, r *http.Request) {
	number := chi.URLParam(r, "number")

	amount, ok := h.decodeAmount(w, r)
	if !ok {
		return
	}

	st, err := h.service.Deposit(number, amount)
	if err != nil {
		h.writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toStatementResponse(st))
}

// Withdraw handles POST /accounts/{number}/withdraw.
// A refused withdrawal (insufficient funds) is answered with 409 Conflict
// and withdrawn=false rather than an error: it is the expected outcome of
// asking for more than the account allows.
func (h *AccountHandler) Withdraw(w http.ResponseWriter, r *http.Request) {
	number := chi.URLParam(r, "number")

	amount, ok := h.decodeAmount(w, r)
	if !ok {
		return
	}

	withdrawn, st, err := h.service.Withdraw(number, amount)
	if err != nil {
		h.writeError(w, err)
		return
	}

	status := http.StatusOK
	if !withdrawn {
		status = http.StatusConflict
	}
	writeJSON(w, status, WithdrawResponse{
		Withdrawn: withdrawn,
		Account:   toStatementResponse(st),
	})
}

// ListAccounts handles GET /accounts: the full report as JSON.
func (h *AccountHandler) ListAccounts(w http.ResponseWriter, r *http.Request) {
	report := h.service.GenerateReport()
	resp := make([]StatementResponse, 0, len(report))
	for _, st := range report {
		resp = append(resp, toStatementResponse(st))
	}
	writeJSON(w, http.StatusOK, resp)
}

// RunMonthlyUpdates handles POST /updates/monthly and returns the
// post-update report.
func (h *AccountHandler) RunMonthlyUpdates(w http.ResponseWriter, r *http.Request) {
	h.service.ProcessMonthlyUpdates()
	h.logger.Info("monthly updates processed")

	report := h.service.GenerateReport()
	resp := make([]StatementResponse, 0, len(report))
	for _, st := range report {
		resp = append(resp, toStatementResponse(st))
	}
	writeJSON(w, http.StatusOK, resp)
}

// TextReport handles GET /report: the human-readable report.
func (h *AccountHandler) TextReport(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(ledger.RenderReport(h.service.GenerateReport())))
}

func (h *AccountHandler) decodeAmount(w http.ResponseWriter, r *http.Request) (decimal.Decimal, bool) {
	var req AmountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return decimal.Decimal{}, false
	}
	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		http.Error(w, "invalid amount: "+req.Amount, http.StatusBadRequest)
		return decimal.Decimal{}, false
	}
	return amount, true
}

// writeError maps domain errors to HTTP statuses: validation failures are
// the client's fault, a missing account is 404, anything else is 500.
func (h *AccountHandler) writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrAccountNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, domain.ErrInvalidAmount),
		errors.Is(err, domain.ErrNegativeInitialBalance),
		errors.Is(err, domain.ErrBelowMinimumBalance):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		h.logger.Error("request failed", zap.Error(err))
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
