package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/sainikhil1483/quick-poll-anonymous-views/app"
)

func Wire(app app.App) http.Handler {
	root := chi.NewRouter()
	root.Use(middleware.Logger, middleware.Recoverer)

	root.Mount("/api", apiRouter(app))
	root.Mount("/", servePublicFiles(app.PublicDir))

	return root
}

func apiRouter(app app.App) http.Handler {
	api := chi.NewRouter()

	// CRD survey (there is no update: surveys are immutable once saved)
	api.Get("/surveys", ListSurveys(app))
	api.Post("/surveys", CreateSurvey(app))
	api.Get("/surveys/{id}", GetSurveyById(app))
	api.Delete("/surveys/{id}", DeleteSurvey(app))

	api.Get("/surveys/{id}/responses", ListResponses(app))
	api.Post("/surveys/{id}/responses", SubmitResponse(app))

	api.Get("/surveys/{id}/analytics", GetAnalytics(app))
	api.Get("/surveys/{id}/export", ExportCSV(app))
	api.Get("/surveys/{id}/share", ShareSurvey(app))

	api.Get("/stats", GetStats(app))

	return api
}

func servePublicFiles(dir string) http.Handler {
	return http.FileServer(http.Dir(dir))
}
