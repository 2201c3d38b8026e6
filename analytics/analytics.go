// Package analytics reduces the raw response records of a survey into
// the derived view data: per-option distributions, short-answer
// listings, completion rate and overview totals. Everything here is a
// pure function of (survey, responses); nothing is persisted.
package analytics

import (
	"math"

	"github.com/sainikhil1483/quick-poll-anonymous-views/model"
)

type OptionCount struct {
	Option     string `json:"option"`
	Count      int    `json:"count"`
	Percentage int    `json:"percentage"`
}

type ShortAnswer struct {
	ID     int    `json:"id"`
	Answer string `json:"answer"`
}

type QuestionStats struct {
	Question     model.Question `json:"question"`
	Answered     int            `json:"answered"`
	Distribution []OptionCount  `json:"distribution,omitempty"`
	Answers      []ShortAnswer  `json:"answers,omitempty"`
}

type View struct {
	Survey         model.Survey    `json:"survey"`
	TotalResponses int             `json:"totalResponses"`
	CompletionRate int             `json:"completionRate"`
	Questions      []QuestionStats `json:"questions"`
}

type Overview struct {
	TotalSurveys   int `json:"totalSurveys"`
	TotalResponses int `json:"totalResponses"`
	AvgPerSurvey   int `json:"avgResponsesPerSurvey"`
}

func percent(count, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(count) / float64(total) * 100))
}

// Distribution tallies a multiple-choice question. Answers that match
// no option exactly are ignored and counted toward no bucket.
// Percentages are rounded independently per option and need not sum
// to 100.
func Distribution(q model.Question, responses []model.Response) []OptionCount {
	counts := make(map[string]int, len(q.Options))
	for _, o := range q.Options {
		counts[o] = 0
	}
	for _, r := range responses {
		answer, ok := r.Responses[q.ID]
		if !ok {
			continue
		}
		if _, known := counts[answer]; known {
			counts[answer]++
		}
	}

	dist := make([]OptionCount, len(q.Options))
	for i, o := range q.Options {
		dist[i] = OptionCount{
			Option:     o,
			Count:      counts[o],
			Percentage: percent(counts[o], len(responses)),
		}
	}
	return dist
}

// ShortAnswers lists the non-empty answers for a question in response
// order, each with a 1-based index local to that question.
func ShortAnswers(questionID string, responses []model.Response) []ShortAnswer {
	var answers []ShortAnswer
	for _, r := range responses {
		if a := r.Responses[questionID]; a != "" {
			answers = append(answers, ShortAnswer{ID: len(answers) + 1, Answer: a})
		}
	}
	return answers
}

// CompletionRate is the percentage of responses that answered every
// question in the survey, required or not.
func CompletionRate(survey model.Survey, responses []model.Response) int {
	complete := 0
	for _, r := range responses {
		done := true
		for _, q := range survey.Questions {
			if r.Responses[q.ID] == "" {
				done = false
				break
			}
		}
		if done {
			complete++
		}
	}
	return percent(complete, len(responses))
}

func answered(questionID string, responses []model.Response) int {
	n := 0
	for _, r := range responses {
		if r.Responses[questionID] != "" {
			n++
		}
	}
	return n
}

// Build assembles the full analytics view for one survey.
func Build(survey model.Survey, responses []model.Response) View {
	stats := make([]QuestionStats, len(survey.Questions))
	for i, q := range survey.Questions {
		qs := QuestionStats{
			Question: q,
			Answered: answered(q.ID, responses),
		}
		if q.Type == model.MultipleChoice {
			qs.Distribution = Distribution(q, responses)
		} else {
			qs.Answers = ShortAnswers(q.ID, responses)
		}
		stats[i] = qs
	}

	return View{
		Survey:         survey,
		TotalResponses: len(responses),
		CompletionRate: CompletionRate(survey, responses),
		Questions:      stats,
	}
}

// BuildOverview totals responses across all surveys for the landing
// page stat cards.
func BuildOverview(surveys []model.Survey, count func(surveyID string) int) Overview {
	total := 0
	for _, s := range surveys {
		total += count(s.ID)
	}

	avg := 0
	if len(surveys) > 0 {
		avg = int(math.Round(float64(total) / float64(len(surveys))))
	}
	return Overview{
		TotalSurveys:   len(surveys),
		TotalResponses: total,
		AvgPerSurvey:   avg,
	}
}
