package app

import (
	"github.com/sainikhil1483/quick-poll-anonymous-views/config"
	"github.com/sainikhil1483/quick-poll-anonymous-views/repo"
)

// App carries the repositories and config into every handler, so tests
// can substitute an in-memory store.
type App struct {
	Surveys   *repo.Surveys
	Responses *repo.Responses
	config.Config
}
