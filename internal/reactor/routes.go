package reactor

import "github.com/go-chi/chi/v5"

// RegisterRoutes mounts all reactor endpoints onto the given router
// under the /reactor prefix.
func RegisterRoutes(r chi.Router) {
	r.Route("/reactor", func(r chi.Router) {
		r.Post("/run", RunCalculation)
		r.Post("/coefficients", Coefficients)
		r.Post("/chart", Chart)
		r.Get("/presets", ListPresets)
	})
}
