package model

import (
	"time"

	"github.com/gofrs/uuid"
)

type QuestionType string

const (
	MultipleChoice QuestionType = "multiple-choice"
	ShortAnswer    QuestionType = "short-answer"
)

// Question is a single survey prompt. Options is present only for
// multiple-choice questions, and always holds at least two entries.
type Question struct {
	ID       string       `json:"id"`
	Type     QuestionType `json:"type"`
	Question string       `json:"question"`
	Options  []string     `json:"options,omitempty"`
	Required bool         `json:"required"`
}

// Survey is immutable once saved: there is no edit operation,
// only create and delete.
type Survey struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Questions   []Question `json:"questions"`
	CreatedAt   string     `json:"createdAt"`
}

// Response maps question ids to answer text. Only answered questions
// appear as keys. SurveyID is never checked against an existing survey.
type Response struct {
	ID          string            `json:"id"`
	SurveyID    string            `json:"surveyId"`
	Responses   map[string]string `json:"responses"`
	SubmittedAt string            `json:"submittedAt"`
}

// NewID returns a random UUIDv4 string.
func NewID() string {
	return uuid.Must(uuid.NewV4()).String()
}

// Now returns the current time as an RFC3339 UTC string, the format
// used for CreatedAt and SubmittedAt.
func Now() string {
	return time.Now().UTC().Format(time.RFC3339)
}
