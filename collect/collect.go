// Package collect accumulates a respondent's answers for one survey and
// commits them as a single immutable response record.
package collect

import (
	"errors"
	"fmt"
	"strings"

	"github.com/sainikhil1483/quick-poll-anonymous-views/model"
	"github.com/sainikhil1483/quick-poll-anonymous-views/repo"
)

var ErrAlreadySubmitted = errors.New("response already submitted")

// MissingRequiredError carries every required question left unanswered,
// so the caller can mark exactly those fields rather than an arbitrary
// one from the set.
type MissingRequiredError struct {
	QuestionIDs []string
}

func (e *MissingRequiredError) Error() string {
	return fmt.Sprintf("%d required question(s) unanswered", len(e.QuestionIDs))
}

// Session holds the in-progress answers for one survey. After a
// successful Submit it is terminal: further edits and submits fail.
type Session struct {
	survey    model.Survey
	answers   map[string]string
	submitted bool
}

func NewSession(survey model.Survey) *Session {
	return &Session{
		survey:  survey,
		answers: make(map[string]string),
	}
}

// SetAnswer records the current answer text for a question. For
// multiple-choice questions the value is the selected option's literal
// text, not an index.
func (s *Session) SetAnswer(questionID, text string) {
	if s.submitted {
		return
	}
	s.answers[questionID] = text
}

func (s *Session) Answer(questionID string) string {
	return s.answers[questionID]
}

func (s *Session) Submitted() bool {
	return s.submitted
}

// MissingRequired returns the ids of required questions whose answer is
// absent or whitespace-only, in question order.
func (s *Session) MissingRequired() []string {
	var missing []string
	for _, q := range s.survey.Questions {
		if q.Required && strings.TrimSpace(s.answers[q.ID]) == "" {
			missing = append(missing, q.ID)
		}
	}
	return missing
}

// Submit validates required questions and appends one response record.
// Nothing is persisted on rejection.
func (s *Session) Submit(responses *repo.Responses) (model.Response, error) {
	if s.submitted {
		return model.Response{}, ErrAlreadySubmitted
	}
	if missing := s.MissingRequired(); len(missing) > 0 {
		return model.Response{}, &MissingRequiredError{QuestionIDs: missing}
	}

	answered := make(map[string]string, len(s.answers))
	for id, text := range s.answers {
		if text != "" {
			answered[id] = text
		}
	}

	response := model.Response{
		ID:          model.NewID(),
		SurveyID:    s.survey.ID,
		Responses:   answered,
		SubmittedAt: model.Now(),
	}
	if err := responses.Add(response); err != nil {
		return model.Response{}, err
	}

	s.submitted = true
	return response, nil
}
