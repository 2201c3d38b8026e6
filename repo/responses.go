package repo

import (
	"encoding/json"

	"github.com/pkg/errors"

	"github.com/sainikhil1483/quick-poll-anonymous-views/log"
	"github.com/sainikhil1483/quick-poll-anonymous-views/model"
	"github.com/sainikhil1483/quick-poll-anonymous-views/store"
)

// Responses is the append-only collection of response records, one
// stored list per survey id. Records are never mutated or reordered;
// they disappear only through the survey delete cascade.
type Responses struct {
	kv store.KV
}

func NewResponses(kv store.KV) *Responses {
	return &Responses{kv}
}

// List returns all responses for the survey in submission order.
func (r *Responses) List(surveyID string) ([]model.Response, error) {
	raw, ok, err := r.kv.Get(responsesKey(surveyID))
	if err != nil {
		return nil, errors.Wrap(err, "responses.list")
	}
	if !ok {
		return []model.Response{}, nil
	}

	var responses []model.Response
	if err := json.Unmarshal([]byte(raw), &responses); err != nil {
		log.Warnf("responses.list.parse: %s", err)
		return []model.Response{}, nil
	}
	if responses == nil {
		responses = []model.Response{}
	}
	return responses, nil
}

// Add appends the response to its survey's list and writes the whole
// list back. Last write wins under concurrent writers; the system
// assumes a single active writer.
func (r *Responses) Add(response model.Response) error {
	responses, err := r.List(response.SurveyID)
	if err != nil {
		return err
	}

	responses = append(responses, response)
	raw, err := json.Marshal(responses)
	if err != nil {
		return errors.Wrap(err, "responses.add.marshal")
	}
	return errors.Wrap(r.kv.Set(responsesKey(response.SurveyID), string(raw)), "responses.add")
}
