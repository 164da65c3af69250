package app

import "github.com/ziliangpeng/rspki/internal/domain"

// App is the view of the wiring that commands depend on.
type App struct {
	Config  Config
	Keys    domain.KeyService
	Bench   domain.BenchService
	Results domain.BenchStore
}

// New returns an App for cfg over the services in w.
func New(cfg Config, w *Wire) *App {
	return &App{
		Config:  cfg,
		Keys:    w.Keys,
		Bench:   w.Bench,
		Results: w.Results,
	}
}
