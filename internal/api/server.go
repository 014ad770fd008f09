package api

import (
	"net/http"
	"time"

	chatapi "github.com/futig/querysphere-backend/internal/api/chat"
	"github.com/futig/querysphere-backend/internal/api/docs"
	"github.com/futig/querysphere-backend/internal/api/middleware"
	referenceapi "github.com/futig/querysphere-backend/internal/api/reference"
	"github.com/futig/querysphere-backend/internal/pkg/response"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// RequestTimeout bounds a single request. The http.Server write timeout must
// stay above it so the timeout response reaches the client.
const RequestTimeout = 60 * time.Second

type healthResponse struct {
	Status string `json:"status"`
}

// SetupRouter creates and configures the HTTP router
func SetupRouter(
	chatHandler *chatapi.Handler,
	referenceHandler *referenceapi.Handler,
	allowedOrigins []string,
	logger *zap.Logger,
) http.Handler {
	r := chi.NewRouter()

	r.Use(
		chimiddleware.Recoverer,
		chimiddleware.RequestID,
		middleware.Logger(logger),
		middleware.CORS(allowedOrigins),
		chimiddleware.Timeout(RequestTimeout),
	)

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		response.Error(w, http.StatusNotFound, "route not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		response.Error(w, http.StatusMethodNotAllowed, "method not allowed")
	})

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		response.Success(w, healthResponse{Status: "healthy"})
	})

	docs.RegisterRoutes(r)
	chatapi.RegisterRoutes(r, chatHandler)
	referenceapi.RegisterRoutes(r, referenceHandler)

	return r
}
