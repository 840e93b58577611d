package main

import (
	"log"
	"net/http"
	"time"

	"gpr-profile-service/internal/adapters/chart"
	"gpr-profile-service/internal/adapters/session"
	"gpr-profile-service/internal/api"
	"gpr-profile-service/internal/platform/config"
	"gpr-profile-service/internal/platform/profile"
	"gpr-profile-service/internal/services"
)

// main is the application composition root.
// It wires concrete adapters (spreadsheet sources, chart renderer,
// session store) behind ports and starts the HTTP server.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	opts, err := buildOptions(cfg)
	if err != nil {
		log.Fatal(err)
	}

	if cfg.SharedSecret == "" {
		log.Println("GPR_SHARED_SECRET is empty; access gate disabled")
	}

	router := api.NewRouter(api.Deps{
		Secret:         cfg.SharedSecret,
		Sessions:       session.NewMemoryStore(),
		Renderer:       chart.NewProfileRenderer(),
		Options:        opts,
		MaxUploadBytes: cfg.MaxUploadBytes,
	})

	// Timeouts sized for multi-file uploads plus chart rendering.
	log.Printf("Server listening addr=:%s mode=%s step=%.2f", cfg.Port, opts.Mode, opts.Step)
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	log.Fatal(srv.ListenAndServe())
}

func buildOptions(cfg config.Config) (services.Options, error) {
	opts := services.DefaultOptions()

	mode, err := services.ParseColumnMode(cfg.InputMode)
	if err != nil {
		return opts, err
	}
	opts.Mode = mode

	if cfg.ChainageStep > 0 {
		opts.Step = cfg.ChainageStep
	}

	// An on-disk survey profile wins over plain env settings.
	if cfg.ProfilePath != "" {
		p, err := profile.Load(cfg.ProfilePath)
		if err != nil {
			return opts, err
		}
		if opts, err = p.Apply(opts); err != nil {
			return opts, err
		}
	}

	return opts, nil
}
