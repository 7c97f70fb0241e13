package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	httpSwagger "github.com/swaggo/http-swagger"
)

// routes wires middlewares and endpoints. Adjust CORS for your frontend hosts.
func (a *App) routes() http.Handler {
	r := chi.NewRouter()

	r.Use(requestLogger)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:5173", "http://127.0.0.1:5173", "http://localhost:3000"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Get("/api/openapi.yaml", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/yaml; charset=utf-8")
		w.Header().Set("Cache-Control", "public, max-age=60")
		w.Write(openapiYAML)
	})

	r.Mount("/swagger", httpSwagger.Handler(
		httpSwagger.URL("/api/openapi.yaml"),
	))

	r.Route("/api", func(api chi.Router) {
		api.Get("/state", a.handleState)

		api.Route("/plants", func(pr chi.Router) {
			pr.Get("/", a.handleListPlants)
			pr.Post("/", a.handleCreatePlant)
			pr.Get("/types", a.handlePlantTypes)

			pr.Route("/{id}", func(ir chi.Router) {
				ir.Get("/", a.handleGetPlant)
				ir.Put("/", a.handleUpdatePlant)
				ir.Delete("/", a.handleDeletePlant)

				ir.Get("/cuttings", a.handleListCuttings)
				ir.Post("/cuttings", a.handleCreateCuttings)

				ir.Post("/comments", a.handleAddComment)
				ir.Post("/care-tips", a.handleCareTips)

				ir.Post("/image", a.handleUploadImage)
				ir.Delete("/image", a.handleDeleteImage)
			})
		})

		api.Delete("/admin/plants", a.handleResetCollection)
	})

	return r
}
