package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"github.com/sainikhil1483/quick-poll-anonymous-views/app"
	"github.com/sainikhil1483/quick-poll-anonymous-views/collect"
	"github.com/sainikhil1483/quick-poll-anonymous-views/httpx"
	"github.com/sainikhil1483/quick-poll-anonymous-views/log"
)

type responseSubmission struct {
	Responses map[string]string `json:"responses"`
}

func SubmitResponse(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		surveyId := chi.URLParam(r, "id")

		survey, ok, err := app.Surveys.Get(surveyId)
		if err != nil {
			httpx.LogInternalError(w, "store.get_survey", err)
			return
		}
		if !ok {
			httpx.LogNotFound(w, "submit_response", surveyId)
			return
		}

		body := responseSubmission{}
		err = render.DecodeJSON(r.Body, &body)
		if err != nil {
			httpx.LogStatus(w, http.StatusBadRequest, log.DebugLevel, "request.parse_body")
			return
		}

		session := collect.NewSession(survey)
		for questionId, answer := range body.Responses {
			session.SetAnswer(questionId, answer)
		}

		response, err := session.Submit(app.Responses)
		if err != nil {
			if missing, ok := err.(*collect.MissingRequiredError); ok {
				httpx.LogValidation(w, r, "response.validate", missing, map[string]any{
					"missing": missing.QuestionIDs,
				})
				return
			}
			httpx.LogInternalError(w, "store.add_response", err)
			return
		}

		w.WriteHeader(http.StatusCreated)
		render.JSON(w, r, map[string]any{
			"id": response.ID,
		})
	}
}

func ListResponses(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		surveyId := chi.URLParam(r, "id")

		if _, ok, err := app.Surveys.Get(surveyId); err != nil {
			httpx.LogInternalError(w, "store.get_survey", err)
			return
		} else if !ok {
			httpx.LogNotFound(w, "get_responses", surveyId)
			return
		}

		responses, err := app.Responses.List(surveyId)
		if err != nil {
			httpx.LogInternalError(w, "store.get_responses", err)
			return
		}

		render.JSON(w, r, map[string]any{
			"responses": responses,
		})
	}
}
