package router

import (
	_ "go-bank-accounts/docs"
	"go-bank-accounts/handler"
	"go-bank-accounts/metrics"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger/v2"
)

func NewRouter(accountHandler *handler.AccountHandler, notificationHandler *handler.NotificationHandler, m *metrics.Metrics) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", handler.HealthCheck)
	mux.Handle("GET /swagger/", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))
	if m != nil {
		mux.Handle("GET /metrics", promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{}))
	}

	mux.Handle("GET /api/accounts", handler.ErrorHandlingMiddleware(accountHandler.ListAccounts))
	mux.Handle("GET /api/accounts/interest", handler.ErrorHandlingMiddleware(accountHandler.TotalInterest))
	mux.Handle("POST /api/accounts/{accountId}/withdrawals", handler.ErrorHandlingMiddleware(accountHandler.Withdraw))
	mux.Handle("POST /api/notifications", handler.ErrorHandlingMiddleware(notificationHandler.Dispatch))

	return mux
}
