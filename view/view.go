// Package view models the top-level view state machine: which screen is
// active, which survey it targets, and the one-way URL entry into
// responding mode.
package view

import (
	"errors"
	"net/url"
)

type State int

const (
	List State = iota
	Authoring
	Responding
	Analyzing
)

func (s State) String() string {
	switch s {
	case List:
		return "list"
	case Authoring:
		return "authoring"
	case Responding:
		return "responding"
	case Analyzing:
		return "analyzing"
	}
	return "unknown"
}

var ErrBadTransition = errors.New("transition not allowed from current view")

// Router tracks the active view. Responding carries the target survey
// id and a terminal submitted sub-state; Back always returns to List
// and clears the URL-entry marker.
type Router struct {
	state     State
	surveyID  string
	submitted bool
	fromURL   bool
}

func New() *Router {
	return &Router{state: List}
}

// FromQuery enters Responding directly when the query names an existing
// survey, bypassing List. Unknown or absent ids land on List.
func FromQuery(query url.Values, exists func(id string) bool) *Router {
	id := query.Get("survey")
	if id != "" && exists(id) {
		return &Router{state: Responding, surveyID: id, fromURL: true}
	}
	return New()
}

func (r *Router) State() State     { return r.state }
func (r *Router) SurveyID() string { return r.surveyID }
func (r *Router) Submitted() bool  { return r.submitted }
func (r *Router) FromURL() bool    { return r.fromURL }

// Create moves List → Authoring.
func (r *Router) Create() error {
	if r.state != List {
		return ErrBadTransition
	}
	r.state = Authoring
	return nil
}

// Close leaves Authoring after a save or cancel.
func (r *Router) Close() error {
	if r.state != Authoring {
		return ErrBadTransition
	}
	r.state = List
	return nil
}

// Respond moves List → Responding for one survey.
func (r *Router) Respond(surveyID string) error {
	if r.state != List {
		return ErrBadTransition
	}
	r.state = Responding
	r.surveyID = surveyID
	return nil
}

// Analyze moves List → Analyzing for one survey.
func (r *Router) Analyze(surveyID string) error {
	if r.state != List {
		return ErrBadTransition
	}
	r.state = Analyzing
	r.surveyID = surveyID
	return nil
}

// MarkSubmitted records the in-place submitted sub-state of Responding.
// It is not a transition; the view stays until the user navigates back.
func (r *Router) MarkSubmitted() error {
	if r.state != Responding {
		return ErrBadTransition
	}
	r.submitted = true
	return nil
}

// Back returns to List from any view and clears the URL entry marker.
func (r *Router) Back() {
	r.state = List
	r.surveyID = ""
	r.submitted = false
	r.fromURL = false
}

// ShareLink builds the direct-entry URL for a survey.
func ShareLink(origin, surveyID string) string {
	return origin + "?survey=" + url.QueryEscape(surveyID)
}
