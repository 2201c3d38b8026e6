package collect

import (
	"errors"
	"testing"

	"github.com/sainikhil1483/quick-poll-anonymous-views/model"
	"github.com/sainikhil1483/quick-poll-anonymous-views/repo"
	"github.com/sainikhil1483/quick-poll-anonymous-views/store"
)

func lunchSurvey() model.Survey {
	return model.Survey{
		ID:    "s1",
		Title: "Lunch",
		Questions: []model.Question{
			{ID: "q1", Type: model.MultipleChoice, Question: "Pick one", Options: []string{"Pizza", "Salad"}, Required: true},
			{ID: "q2", Type: model.ShortAnswer, Question: "Why?"},
		},
	}
}

func TestSubmit(t *testing.T) {
	responses := repo.NewResponses(store.NewMemory())
	session := NewSession(lunchSurvey())

	session.SetAnswer("q1", "Pizza")
	session.SetAnswer("q2", "cheese")

	response, err := session.Submit(responses)
	if err != nil {
		t.Fatalf("Submit failed: %v", err)
	}
	if response.SurveyID != "s1" {
		t.Errorf("SurveyID = %q", response.SurveyID)
	}
	if response.ID == "" || response.SubmittedAt == "" {
		t.Error("Submit did not assign id and timestamp")
	}
	if response.Responses["q1"] != "Pizza" || response.Responses["q2"] != "cheese" {
		t.Errorf("answer map = %v", response.Responses)
	}

	stored, _ := responses.List("s1")
	if len(stored) != 1 {
		t.Fatalf("%d responses persisted, want 1", len(stored))
	}
}

func TestSubmitRejectsMissingRequired(t *testing.T) {
	responses := repo.NewResponses(store.NewMemory())
	session := NewSession(lunchSurvey())

	// whitespace-only counts as missing
	session.SetAnswer("q1", "   ")

	_, err := session.Submit(responses)
	var missing *MissingRequiredError
	if !errors.As(err, &missing) {
		t.Fatalf("Submit = %v, want MissingRequiredError", err)
	}
	if len(missing.QuestionIDs) != 1 || missing.QuestionIDs[0] != "q1" {
		t.Errorf("missing set = %v, want exactly [q1]", missing.QuestionIDs)
	}

	// nothing was persisted
	stored, _ := responses.List("s1")
	if len(stored) != 0 {
		t.Errorf("rejected submit persisted %d responses", len(stored))
	}
	if session.Submitted() {
		t.Error("session marked submitted after rejection")
	}
}

func TestMissingRequiredKeepsQuestionOrder(t *testing.T) {
	survey := model.Survey{
		ID: "s1",
		Questions: []model.Question{
			{ID: "a", Type: model.ShortAnswer, Required: true},
			{ID: "b", Type: model.ShortAnswer},
			{ID: "c", Type: model.ShortAnswer, Required: true},
		},
	}
	session := NewSession(survey)

	missing := session.MissingRequired()
	if len(missing) != 2 || missing[0] != "a" || missing[1] != "c" {
		t.Errorf("MissingRequired = %v, want [a c]", missing)
	}
}

func TestOptionalQuestionsMayStayUnanswered(t *testing.T) {
	responses := repo.NewResponses(store.NewMemory())
	session := NewSession(lunchSurvey())

	session.SetAnswer("q1", "Salad")
	// q2 untouched, and an empty edit must not leak into the record
	session.SetAnswer("q2", "")

	response, err := session.Submit(responses)
	if err != nil {
		t.Fatalf("Submit failed: %v", err)
	}
	if _, present := response.Responses["q2"]; present {
		t.Errorf("empty answer stored: %v", response.Responses)
	}
}

func TestSubmitIsTerminal(t *testing.T) {
	responses := repo.NewResponses(store.NewMemory())
	session := NewSession(lunchSurvey())
	session.SetAnswer("q1", "Pizza")

	if _, err := session.Submit(responses); err != nil {
		t.Fatalf("Submit failed: %v", err)
	}
	if !session.Submitted() {
		t.Error("session not marked submitted")
	}

	session.SetAnswer("q1", "Salad")
	if session.Answer("q1") != "Pizza" {
		t.Error("answer mutated after submit")
	}

	if _, err := session.Submit(responses); !errors.Is(err, ErrAlreadySubmitted) {
		t.Errorf("second Submit = %v, want ErrAlreadySubmitted", err)
	}
	stored, _ := responses.List("s1")
	if len(stored) != 1 {
		t.Errorf("%d responses persisted after double submit", len(stored))
	}
}
