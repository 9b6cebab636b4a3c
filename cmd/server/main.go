package main

import (
	"log"
	"net/http"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/jaminalder/codex-reversi/internal/app"
	"github.com/jaminalder/codex-reversi/internal/domain"
	"github.com/jaminalder/codex-reversi/internal/web"
)

type config struct {
	Addr      string `env:"REVERSI_ADDR" envDefault:":8080"`
	BoardSize int    `env:"REVERSI_BOARD_SIZE" envDefault:"8"`
}

func main() {
	var cfg config
	if err := env.Parse(&cfg); err != nil {
		log.Fatalf("parse env: %v", err)
	}
	if _, err := domain.NewBoard(cfg.BoardSize); err != nil {
		log.Fatalf("board size %d: %v", cfg.BoardSize, err)
	}

	svc := app.NewService(cfg.BoardSize)
	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           web.NewServer(svc),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	log.Printf("reversi listening on %s (board size %d)", cfg.Addr, cfg.BoardSize)
	if err := srv.ListenAndServe(); err != nil {
		log.Fatal(err)
	}
}
