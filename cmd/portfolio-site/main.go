// Command portfolio-site serves the embedded portfolio fixture page on a
// local address so the markup the acceptance suite drives can be poked at
// manually.
package main

import (
	"net/http"
	"os"

	"github.com/nsmirnova/portfolio-e2e/internal/config"
	"github.com/nsmirnova/portfolio-e2e/internal/obs"
	"github.com/nsmirnova/portfolio-e2e/internal/site"
)

func main() {
	obs.Init()
	log := obs.Pkg("main")

	addr := config.ParseFlags()
	cfg, err := config.Load(addr)
	if err != nil {
		log.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	log.Info("serving portfolio fixture site", "addr", cfg.ListenAddr)
	if err := http.ListenAndServe(cfg.ListenAddr, site.NewHandler()); err != nil {
		log.Error("server exited", "error", err)
		os.Exit(1)
	}
}
