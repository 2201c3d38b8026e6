// Package repo implements the survey and response repositories over the
// key-value store. Collections are stored as whole JSON arrays and
// replaced on every write; the read-modify-write is not atomic, which is
// accepted for a single active writer.
package repo

const surveysKey = "surveys"

func responsesKey(surveyID string) string {
	return "responses_" + surveyID
}
