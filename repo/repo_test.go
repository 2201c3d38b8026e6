package repo

import (
	"testing"

	"github.com/sainikhil1483/quick-poll-anonymous-views/model"
	"github.com/sainikhil1483/quick-poll-anonymous-views/store"
)

func testSurvey(id, title string) model.Survey {
	return model.Survey{
		ID:    id,
		Title: title,
		Questions: []model.Question{
			{ID: "q1", Type: model.MultipleChoice, Question: "Pick one", Options: []string{"A", "B"}},
		},
		CreatedAt: model.Now(),
	}
}

func TestSurveysEmpty(t *testing.T) {
	surveys := NewSurveys(store.NewMemory())

	list, err := surveys.List()
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(list) != 0 {
		t.Errorf("List on empty store returned %d surveys", len(list))
	}
}

func TestSurveysSaveOrder(t *testing.T) {
	surveys := NewSurveys(store.NewMemory())

	for _, id := range []string{"a", "b", "c"} {
		if err := surveys.Save(testSurvey(id, "Survey "+id)); err != nil {
			t.Fatalf("Save(%s) failed: %v", id, err)
		}
	}

	list, err := surveys.List()
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(list) != 3 {
		t.Fatalf("List returned %d surveys, want 3", len(list))
	}
	for i, id := range []string{"a", "b", "c"} {
		if list[i].ID != id {
			t.Errorf("list[%d].ID = %q, want %q (insertion order)", i, list[i].ID, id)
		}
	}
}

func TestSurveysGet(t *testing.T) {
	surveys := NewSurveys(store.NewMemory())
	if err := surveys.Save(testSurvey("a", "First")); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	s, ok, err := surveys.Get("a")
	if err != nil || !ok {
		t.Fatalf("Get = ok %v, err %v", ok, err)
	}
	if s.Title != "First" {
		t.Errorf("Get returned title %q", s.Title)
	}

	if _, ok, _ := surveys.Get("nope"); ok {
		t.Error("Get of unknown id reported found")
	}
}

func TestDeleteCascades(t *testing.T) {
	kv := store.NewMemory()
	surveys := NewSurveys(kv)
	responses := NewResponses(kv)

	if err := surveys.Save(testSurvey("a", "Doomed")); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	err := responses.Add(model.Response{
		ID: "r1", SurveyID: "a",
		Responses:   map[string]string{"q1": "A"},
		SubmittedAt: model.Now(),
	})
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	deleted, err := surveys.Delete("a")
	if err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if !deleted {
		t.Fatal("Delete reported nothing removed")
	}

	list, _ := surveys.List()
	if len(list) != 0 {
		t.Errorf("survey still listed after delete: %v", list)
	}
	left, err := responses.List("a")
	if err != nil {
		t.Fatalf("List responses failed: %v", err)
	}
	if len(left) != 0 {
		t.Errorf("responses survived cascade delete: %v", left)
	}
}

func TestDeleteUnknown(t *testing.T) {
	surveys := NewSurveys(store.NewMemory())

	deleted, err := surveys.Delete("ghost")
	if err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if deleted {
		t.Error("Delete of unknown id reported removal")
	}
}

func TestResponsesAppendOrder(t *testing.T) {
	responses := NewResponses(store.NewMemory())

	for _, id := range []string{"r1", "r2", "r3"} {
		err := responses.Add(model.Response{
			ID: id, SurveyID: "a",
			Responses:   map[string]string{"q1": "A"},
			SubmittedAt: model.Now(),
		})
		if err != nil {
			t.Fatalf("Add(%s) failed: %v", id, err)
		}
	}

	list, err := responses.List("a")
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(list) != 3 {
		t.Fatalf("List returned %d responses, want 3", len(list))
	}
	for i, id := range []string{"r1", "r2", "r3"} {
		if list[i].ID != id {
			t.Errorf("list[%d].ID = %q, want %q (submission order)", i, list[i].ID, id)
		}
	}
}

func TestMalformedStoredData(t *testing.T) {
	kv := store.NewMemory()
	kv.Set("surveys", "{not json")
	kv.Set("responses_a", "also not json")

	list, err := NewSurveys(kv).List()
	if err != nil {
		t.Fatalf("List over malformed data failed: %v", err)
	}
	if len(list) != 0 {
		t.Errorf("malformed surveys not treated as empty: %v", list)
	}

	responses, err := NewResponses(kv).List("a")
	if err != nil {
		t.Fatalf("List over malformed data failed: %v", err)
	}
	if len(responses) != 0 {
		t.Errorf("malformed responses not treated as empty: %v", responses)
	}
}
