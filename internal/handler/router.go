package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/psychmaster/psychmaster/internal/handler/chat"
	middlewarePkg "github.com/psychmaster/psychmaster/internal/middleware"
	"github.com/psychmaster/psychmaster/pkg/utils"
)

// ServiceName identifies the API in health responses.
const ServiceName = "psychMASTER API"

// Deps are the services behind the routes.
type Deps struct {
	Chat        *chat.Handler
	CORSOrigins []string
	AIEnabled   bool
}

// NewRouter wires HTTP routes to core services.
func NewRouter(deps Deps) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middlewarePkg.RequestLogger)
	r.Use(middleware.Recoverer)
	r.Use(middlewarePkg.CORS(deps.CORSOrigins))

	r.Route("/api", func(api chi.Router) {
		api.Get("/", func(w http.ResponseWriter, _ *http.Request) {
			utils.RespondJSON(w, http.StatusOK, map[string]string{"message": "Hello World"})
		})

		api.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
			utils.RespondJSON(w, http.StatusOK, map[string]any{
				"status":     "healthy",
				"service":    ServiceName,
				"ai_enabled": deps.AIEnabled,
			})
		})

		if deps.Chat != nil {
			deps.Chat.RegisterRoutes(api)
		}
	})

	return r
}
