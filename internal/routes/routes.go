package routes

import (
	"net/http"

	"github.com/dropkit/dropkit/internal/app"
	"github.com/dropkit/dropkit/internal/handler"
	"github.com/dropkit/dropkit/internal/middleware"
)

func SetupRoutes(a *app.App) http.Handler {
	// Handlers
	file := handler.NewFileHandler(a.FileService, a.Cfg.MaxUploadSize)
	webhook := handler.NewWebhookHandler(a.WebhookService)
	health := handler.NewHealthHandler(a.DB)

	requireBearer := middleware.RequireBearer(a.TokenService)

	mux := http.NewServeMux()

	// Files (bearer auth)
	mux.HandleFunc("POST /upload", requireBearer(file.Upload))
	mux.HandleFunc("GET /files", requireBearer(file.List))
	mux.HandleFunc("GET /files/{id}", requireBearer(file.Access))

	// Download is deliberately outside bearer auth and never writes to the
	// access log; only GET /files/{id} records accesses.
	mux.HandleFunc("GET /download/{id}", file.Download)

	// Identity provider webhook (svix signature verified in the service)
	mux.HandleFunc("POST /webhook", webhook.Handle)

	// Ops
	mux.HandleFunc("GET /healthz", health.Health)

	// Global middleware - executed in order (top to bottom)
	return middleware.Chain(
		mux,
		middleware.RequestLogging,
	)
}
