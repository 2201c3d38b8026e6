package routes

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"github.com/sainikhil1483/quick-poll-anonymous-views/analytics"
	"github.com/sainikhil1483/quick-poll-anonymous-views/app"
	"github.com/sainikhil1483/quick-poll-anonymous-views/httpx"
	"github.com/sainikhil1483/quick-poll-anonymous-views/view"
)

func GetAnalytics(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		surveyId := chi.URLParam(r, "id")

		survey, ok, err := app.Surveys.Get(surveyId)
		if err != nil {
			httpx.LogInternalError(w, "store.get_survey", err)
			return
		}
		if !ok {
			httpx.LogNotFound(w, "get_analytics", surveyId)
			return
		}

		responses, err := app.Responses.List(surveyId)
		if err != nil {
			httpx.LogInternalError(w, "store.get_responses", err)
			return
		}

		render.JSON(w, r, analytics.Build(survey, responses))
	}
}

func ExportCSV(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		surveyId := chi.URLParam(r, "id")

		survey, ok, err := app.Surveys.Get(surveyId)
		if err != nil {
			httpx.LogInternalError(w, "store.get_survey", err)
			return
		}
		if !ok {
			httpx.LogNotFound(w, "export_csv", surveyId)
			return
		}

		responses, err := app.Responses.List(surveyId)
		if err != nil {
			httpx.LogInternalError(w, "store.get_responses", err)
			return
		}

		w.Header().Set("Content-Type", "text/csv")
		w.Header().Set("Content-Disposition",
			fmt.Sprintf(`attachment; filename=%q`, analytics.FileName(survey.Title)))
		if err := analytics.WriteCSV(w, survey, responses); err != nil {
			httpx.LogInternalError(w, "export_csv.write", err)
		}
	}
}

func ShareSurvey(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		surveyId := chi.URLParam(r, "id")

		if _, ok, err := app.Surveys.Get(surveyId); err != nil {
			httpx.LogInternalError(w, "store.get_survey", err)
			return
		} else if !ok {
			httpx.LogNotFound(w, "share_survey", surveyId)
			return
		}

		render.JSON(w, r, map[string]any{
			"url": view.ShareLink(app.Url()+"/", surveyId),
		})
	}
}

func GetStats(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		surveys, err := app.Surveys.List()
		if err != nil {
			httpx.LogInternalError(w, "store.get_surveys", err)
			return
		}

		overview := analytics.BuildOverview(surveys, func(surveyId string) int {
			responses, err := app.Responses.List(surveyId)
			if err != nil {
				return 0
			}
			return len(responses)
		})
		render.JSON(w, r, overview)
	}
}
