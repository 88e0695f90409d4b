package wire

import (
	"net/http"

	"travelease/internal/adaptor"
	"travelease/internal/data/repository"
	"travelease/internal/usecase"
	"travelease/pkg/middleware"
	"travelease/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// App holds the wired application.
type App struct {
	Router *chi.Mux
}

// Wiring initializes services, handlers, and the router.
func Wiring(repo *repository.Repository, config *utils.Config, hasher utils.PasswordHasher, logger *zap.Logger) *App {
	service := usecase.NewService(repo, config, hasher, logger)
	handler := adaptor.NewHandler(service, logger)

	router := setupRouter(handler, logger)

	return &App{
		Router: router,
	}
}

func setupRouter(handler *adaptor.Handler, logger *zap.Logger) *chi.Mux {
	r := chi.NewRouter()

	// Apply global middleware
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS())

	wireRegistration(r, handler.Registration)

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Unknown routes get the JSON envelope too
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		utils.ResponseNotFound(w, "Route not found")
	})

	return r
}
