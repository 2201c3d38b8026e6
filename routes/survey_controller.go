package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"github.com/sainikhil1483/quick-poll-anonymous-views/app"
	"github.com/sainikhil1483/quick-poll-anonymous-views/draft"
	"github.com/sainikhil1483/quick-poll-anonymous-views/httpx"
	"github.com/sainikhil1483/quick-poll-anonymous-views/log"
	"github.com/sainikhil1483/quick-poll-anonymous-views/model"
)

type surveyDraft struct {
	Title       string           `json:"title"`
	Description string           `json:"description"`
	Questions   []model.Question `json:"questions"`
}

func CreateSurvey(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		body := surveyDraft{}
		err := render.DecodeJSON(r.Body, &body)
		if err != nil {
			httpx.LogStatus(w, http.StatusBadRequest, log.DebugLevel, "request.parse_body")
			return
		}

		d := draft.Draft{
			Title:       body.Title,
			Description: body.Description,
			Questions:   body.Questions,
		}
		survey, err := d.Build()
		if err != nil {
			httpx.LogValidation(w, r, "survey.validate", err, nil)
			return
		}

		err = app.Surveys.Save(survey)
		if err != nil {
			httpx.LogInternalError(w, "store.save_survey", err)
			return
		}

		w.WriteHeader(http.StatusCreated)
		render.JSON(w, r, map[string]any{
			"id": survey.ID,
		})
	}
}

func ListSurveys(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		surveys, err := app.Surveys.List()
		if err != nil {
			httpx.LogInternalError(w, "store.get_surveys", err)
			return
		}

		render.JSON(w, r, map[string]any{
			"surveys": surveys,
		})
	}
}

func GetSurveyById(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		surveyId := chi.URLParam(r, "id")

		survey, ok, err := app.Surveys.Get(surveyId)
		if err != nil {
			httpx.LogInternalError(w, "store.get_survey", err)
			return
		}
		if !ok {
			httpx.LogNotFound(w, "get_survey", surveyId)
			return
		}

		render.JSON(w, r, survey)
	}
}

func DeleteSurvey(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		surveyId := chi.URLParam(r, "id")

		deleted, err := app.Surveys.Delete(surveyId)
		if err != nil {
			httpx.LogInternalError(w, "store.delete_survey", err)
			return
		}
		if !deleted {
			httpx.LogNotFound(w, "delete_survey", surveyId)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
