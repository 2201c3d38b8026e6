package main

import (
	"errors"
	"net/http"
	"time"

	"github.com/sainikhil1483/quick-poll-anonymous-views/app"
	"github.com/sainikhil1483/quick-poll-anonymous-views/config"
	"github.com/sainikhil1483/quick-poll-anonymous-views/log"
	"github.com/sainikhil1483/quick-poll-anonymous-views/repo"
	"github.com/sainikhil1483/quick-poll-anonymous-views/routes"
	"github.com/sainikhil1483/quick-poll-anonymous-views/store"
)

func main() {
	cfg := config.ParseFlags()
	if cfg.Debug {
		log.SetLevel(log.DebugLevel)
	}

	kv, err := store.Open(cfg.DBPath)
	if err != nil {
		log.Fatal("main.store.open:", err)
	}
	defer kv.Close()

	app := app.App{
		Surveys:   repo.NewSurveys(kv),
		Responses: repo.NewResponses(kv),
		Config:    cfg,
	}

	handler := routes.Wire(app)

	err = runServer(cfg, handler)
	if !errors.Is(err, http.ErrServerClosed) {
		log.Fatal("main.server:", err)
	}
}

func runServer(cfg config.Config, handler http.Handler) error {
	srv := &http.Server{
		Addr:         cfg.Addr,
		Handler:      handler,
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	log.Info("Listening on " + cfg.Url())
	return srv.ListenAndServe()
}
