// Package draft builds a survey in memory before it is committed to the
// survey repository. Mutations on unknown question ids are no-ops;
// constraint violations are reported as errors so the caller can show a
// distinct reason for each.
package draft

import (
	"errors"
	"fmt"
	"strings"

	"github.com/sainikhil1483/quick-poll-anonymous-views/model"
)

var (
	ErrMissingTitle   = errors.New("survey title is required")
	ErrNoQuestions    = errors.New("survey needs at least one question")
	ErrTooFewOptions  = errors.New("multiple-choice question needs at least 2 options")
	ErrMinOptions     = errors.New("cannot remove option: at least 2 are required")
	ErrNotMultiChoice = errors.New("question has no options")
)

type Draft struct {
	Title       string
	Description string
	Questions   []model.Question
}

func New() *Draft {
	return &Draft{}
}

// AddQuestion appends a new question with the default shape: multiple
// choice, two placeholder options, not required. Returns its id.
func (d *Draft) AddQuestion() string {
	q := model.Question{
		ID:      model.NewID(),
		Type:    model.MultipleChoice,
		Options: []string{"Option 1", "Option 2"},
	}
	d.Questions = append(d.Questions, q)
	return q.ID
}

func (d *Draft) DeleteQuestion(id string) {
	kept := d.Questions[:0]
	for _, q := range d.Questions {
		if q.ID != id {
			kept = append(kept, q)
		}
	}
	d.Questions = kept
}

func (d *Draft) question(id string) *model.Question {
	for i := range d.Questions {
		if d.Questions[i].ID == id {
			return &d.Questions[i]
		}
	}
	return nil
}

func (d *Draft) SetText(id, text string) {
	if q := d.question(id); q != nil {
		q.Question = text
	}
}

func (d *Draft) SetRequired(id string, required bool) {
	if q := d.question(id); q != nil {
		q.Required = required
	}
}

// SetType switches the question type. Going to short-answer discards the
// options; switching back does not restore them.
func (d *Draft) SetType(id string, typ model.QuestionType) {
	q := d.question(id)
	if q == nil {
		return
	}
	q.Type = typ
	if typ == model.ShortAnswer {
		q.Options = nil
	}
}

func (d *Draft) AddOption(id string) error {
	q := d.question(id)
	if q == nil || q.Type != model.MultipleChoice {
		return ErrNotMultiChoice
	}
	q.Options = append(q.Options, fmt.Sprintf("Option %d", len(q.Options)+1))
	return nil
}

func (d *Draft) SetOption(id string, index int, value string) error {
	q := d.question(id)
	if q == nil || q.Type != model.MultipleChoice {
		return ErrNotMultiChoice
	}
	if index < 0 || index >= len(q.Options) {
		return fmt.Errorf("option index %d out of range", index)
	}
	q.Options[index] = value
	return nil
}

// RemoveOption refuses to drop below two options.
func (d *Draft) RemoveOption(id string, index int) error {
	q := d.question(id)
	if q == nil || q.Type != model.MultipleChoice {
		return ErrNotMultiChoice
	}
	if index < 0 || index >= len(q.Options) {
		return fmt.Errorf("option index %d out of range", index)
	}
	if len(q.Options) <= 2 {
		return ErrMinOptions
	}
	q.Options = append(q.Options[:index], q.Options[index+1:]...)
	return nil
}

// Build validates the draft and produces a survey with a fresh id and
// timestamp. Each rejection carries its own reason.
func (d *Draft) Build() (model.Survey, error) {
	title := strings.TrimSpace(d.Title)
	if title == "" {
		return model.Survey{}, ErrMissingTitle
	}
	if len(d.Questions) == 0 {
		return model.Survey{}, ErrNoQuestions
	}

	questions := make([]model.Question, len(d.Questions))
	for i, q := range d.Questions {
		if q.Type == model.ShortAnswer {
			q.Options = nil
		} else if len(q.Options) < 2 {
			return model.Survey{}, ErrTooFewOptions
		}
		if q.ID == "" {
			q.ID = model.NewID()
		}
		questions[i] = q
	}

	return model.Survey{
		ID:          model.NewID(),
		Title:       title,
		Description: strings.TrimSpace(d.Description),
		Questions:   questions,
		CreatedAt:   model.Now(),
	}, nil
}
