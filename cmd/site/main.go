package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/curtsdirt/site/internal/config"
	"github.com/curtsdirt/site/internal/excel"
	httphandler "github.com/curtsdirt/site/internal/http"
	"github.com/curtsdirt/site/internal/logger"
	"github.com/curtsdirt/site/internal/pdf"
	"github.com/curtsdirt/site/internal/service"
	"github.com/curtsdirt/site/internal/site"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Environment)

	pages, err := site.Templates()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to parse page templates")
	}
	content := site.NewContent(cfg.Business)

	siteService := service.NewSiteService(cfg, content.Business, pdf.NewGenerator(), excel.NewGenerator())

	handler := httphandler.NewHandler(siteService, content, pages, log)
	router := httphandler.NewRouter(handler, cfg.HTTP, cfg.Environment, log)

	addr := fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", addr).Msg("starting site")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error().Err(err).Msg("server stopped")
			os.Exit(1)
		}
	case <-ctx.Done():
		log.Info().Msg("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("graceful shutdown failed")
			os.Exit(1)
		}
	}
}
