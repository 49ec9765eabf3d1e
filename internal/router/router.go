package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"nando-backend/internal/handlers"
	"nando-backend/internal/middleware"
)

func New(
	assistantHandler *handlers.AssistantHandler,
	reservationHandler *handlers.ReservationHandler,
	siteHandler *handlers.SiteHandler,
	frontendURL string,
	chatRateLimit int,
) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestID)
	r.Use(middleware.CORS(frontendURL))

	// Every assistant request is a paid upstream call.
	chatLimiter := middleware.NewRateLimiter(chatRateLimit, time.Minute)

	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusMethodNotAllowed)
		w.Write([]byte(`{"error":{"code":"METHOD_NOT_ALLOWED","message":"Method Not Allowed"}}`))
	})

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok"}`))
	})

	r.Route("/api/v1", func(r chi.Router) {

		// ──── Assistant Routes ────
		r.Route("/assistant", func(r chi.Router) {
			r.Use(chatLimiter.Middleware)
			r.Post("/chat", assistantHandler.Chat)
		})

		// ──── Reservation Routes ────
		r.Post("/reservations", reservationHandler.Create)

		// ──── Site Data Routes ────
		r.Get("/menu", siteHandler.Menu)
		r.Get("/hours", siteHandler.Hours)
		r.Get("/content", siteHandler.Content)
	})

	return r
}
