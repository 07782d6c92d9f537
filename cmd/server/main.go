package main

import (
	"context"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/Ishanvi-14/PersonaVerse-AI-sub000/internal/api"
	"github.com/Ishanvi-14/PersonaVerse-AI-sub000/pkg/simplify/config"
)

func main() {
	var (
		configPath = flag.String("config", "", "YAML config file (optional)")
		addr       = flag.String("addr", "", "Listen address (overrides config and SIMPLIFY_ADDR)")
		verbose    = flag.Bool("verbose", false, "Enable debug logging")
	)
	flag.Parse()

	zcfg := zap.NewProductionConfig()
	if *verbose {
		zcfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	log, err := zcfg.Build()
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatal("invalid configuration", zap.Error(err))
	}
	if *addr != "" {
		cfg.Server.Addr = *addr
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	comp, err := (&config.Loader{Config: cfg, Logger: log}).Load(ctx)
	if err != nil {
		log.Fatal("failed to load components", zap.Error(err))
	}

	srv := api.NewServer(comp, log.Named("api"))

	httpServer := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      srv,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown.
	done := make(chan struct{})
	go func() {
		defer close(done)
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		log.Info("shutting down...")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			log.Warn("shutdown incomplete", zap.Error(err))
		}
	}()

	log.Info("starting simplify server",
		zap.String("addr", cfg.Server.Addr),
		zap.Strings("producers", comp.ProducerNames()),
		zap.String("store", cfg.Store.Path),
	)
	if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		comp.Close()
		log.Fatal("server error", zap.Error(err))
	}
	<-done

	if err := comp.Close(); err != nil {
		log.Warn("close store", zap.Error(err))
	}
}
