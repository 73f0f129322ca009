package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/samandr77/immutablepost/docs" // swagger docs
)

func NewRouter(h *Handler, mw *Middleware) http.Handler {
	mux := chi.NewRouter()
	mux.Use(mw.Log, mw.Recover, mw.Cors)

	mux.Route("/api", func(r chi.Router) {
		r.Get("/health", h.Health)
		r.Get("/swagger/*", httpSwagger.WrapHandler)

		r.Get("/form", h.Form)
		r.Get("/countries", h.Countries)
		r.Post("/submissions", h.Submit)

		r.Group(func(r chi.Router) {
			r.Use(mw.APIKeyAuth)
			r.Get("/settings", h.Settings)
			r.Put("/settings", h.UpdateSettings)
			r.Get("/invoices/{number}/deliveries", h.Deliveries)
		})
	})

	return mux
}
