package rest

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"github.com/lcorreia/bankledger/internal/usecase/ledger"
)

// NewRouter creates and configures the HTTP router for the ledger API.
func NewRouter(service *ledger.LedgerService, logger *zap.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("healthy"))
	})

	handler := NewAccountHandler(service, logger)

	r.Route("/accounts", func(r chi.Router) {
		r.Post("/", handler.OpenAccount)
		r.Get("/", handler.ListAccounts)
		r.Get("/{number}", handler.GetAccount)
		r.Post("/{number}/deposit", handler.Deposit)
		r.Post("/{number}/withdraw", handler.Withdraw)
	})

	r.Post("/updates/monthly", handler.RunMonthlyUpdates)
	r.Get("/report", handler.TextReport)

	return r
}
