package analytics

import (
	"io"
	"strings"

	"github.com/sainikhil1483/quick-poll-anonymous-views/model"
)

// WriteCSV writes the export: a header row of response id, submission
// time and every question text, then one row per response in submission
// order, with an empty cell where a question went unanswered. Every
// cell is wrapped in double quotes; embedded quote characters are not
// escaped, a known limitation of the format.
func WriteCSV(w io.Writer, survey model.Survey, responses []model.Response) error {
	header := make([]string, 0, len(survey.Questions)+2)
	header = append(header, "Response ID", "Submitted At")
	for _, q := range survey.Questions {
		header = append(header, q.Question)
	}
	if err := writeRow(w, header, false); err != nil {
		return err
	}

	for _, r := range responses {
		row := make([]string, 0, len(header))
		row = append(row, r.ID, r.SubmittedAt)
		for _, q := range survey.Questions {
			row = append(row, r.Responses[q.ID])
		}
		if err := writeRow(w, row, true); err != nil {
			return err
		}
	}
	return nil
}

func writeRow(w io.Writer, cells []string, leadingNewline bool) error {
	var sb strings.Builder
	if leadingNewline {
		sb.WriteByte('\n')
	}
	for i, cell := range cells {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteByte('"')
		sb.WriteString(cell)
		sb.WriteByte('"')
	}
	_, err := io.WriteString(w, sb.String())
	return err
}

// FileName names the one-shot download for a survey's export.
func FileName(title string) string {
	return title + "_responses.csv"
}
