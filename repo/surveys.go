package repo

import (
	"encoding/json"

	"github.com/pkg/errors"

	"github.com/sainikhil1483/quick-poll-anonymous-views/log"
	"github.com/sainikhil1483/quick-poll-anonymous-views/model"
	"github.com/sainikhil1483/quick-poll-anonymous-views/store"
)

type Surveys struct {
	kv store.KV
}

func NewSurveys(kv store.KV) *Surveys {
	return &Surveys{kv}
}

// List returns all surveys in insertion order. An absent key, and
// stored content that does not parse, both yield an empty list.
func (r *Surveys) List() ([]model.Survey, error) {
	raw, ok, err := r.kv.Get(surveysKey)
	if err != nil {
		return nil, errors.Wrap(err, "surveys.list")
	}
	if !ok {
		return []model.Survey{}, nil
	}

	var surveys []model.Survey
	if err := json.Unmarshal([]byte(raw), &surveys); err != nil {
		log.Warnf("surveys.list.parse: %s", err)
		return []model.Survey{}, nil
	}
	if surveys == nil {
		surveys = []model.Survey{}
	}
	return surveys, nil
}

func (r *Surveys) Get(id string) (model.Survey, bool, error) {
	surveys, err := r.List()
	if err != nil {
		return model.Survey{}, false, err
	}
	for _, s := range surveys {
		if s.ID == id {
			return s, true, nil
		}
	}
	return model.Survey{}, false, nil
}

// Save appends the survey and writes the full list back. No id
// collision check is performed.
func (r *Surveys) Save(survey model.Survey) error {
	surveys, err := r.List()
	if err != nil {
		return err
	}

	surveys = append(surveys, survey)
	raw, err := json.Marshal(surveys)
	if err != nil {
		return errors.Wrap(err, "surveys.save.marshal")
	}
	return errors.Wrap(r.kv.Set(surveysKey, string(raw)), "surveys.save")
}

// Delete removes the survey with the given id and then deletes its
// responses. The cascade is best effort, not a transaction: a failure
// after the list write leaves orphaned response data behind.
func (r *Surveys) Delete(id string) (bool, error) {
	surveys, err := r.List()
	if err != nil {
		return false, err
	}

	kept := surveys[:0]
	for _, s := range surveys {
		if s.ID != id {
			kept = append(kept, s)
		}
	}
	if len(kept) == len(surveys) {
		return false, nil
	}

	raw, err := json.Marshal(kept)
	if err != nil {
		return false, errors.Wrap(err, "surveys.delete.marshal")
	}
	if err := r.kv.Set(surveysKey, string(raw)); err != nil {
		return false, errors.Wrap(err, "surveys.delete")
	}

	if err := r.kv.Delete(responsesKey(id)); err != nil {
		log.Warnf("surveys.delete.cascade: %s", err)
	}
	return true, nil
}
