package main

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/samandr77/immutablepost/internal/api"
	"github.com/samandr77/immutablepost/internal/api/events"
	"github.com/samandr77/immutablepost/internal/clients/gomail"
	"github.com/samandr77/immutablepost/internal/entity"
	"github.com/samandr77/immutablepost/internal/invoice"
	"github.com/samandr77/immutablepost/internal/repository"
	"github.com/samandr77/immutablepost/internal/service"
	"github.com/samandr77/immutablepost/pkg/broker"
	"github.com/samandr77/immutablepost/pkg/config"
	"github.com/samandr77/immutablepost/pkg/job"
	"github.com/samandr77/immutablepost/pkg/logger"
	"github.com/samandr77/immutablepost/pkg/postgres"
)

const (
	readTimeout       = 10 * time.Second
	readHeaderTimeout = time.Second
	writeTimeout      = 30 * time.Second
)

//nolint:funlen
func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.New(".env")
	panicOnErr("load config", err)

	_, err = logger.New(cfg.Logger.Level, cfg.Logger.Format)
	panicOnErr("create logger", err)

	err = service.ValidateEmail(cfg.Vendor.Email)
	panicOnErr("vendor email", err)

	pool, err := postgres.Connect(ctx, cfg.Postgres.DSN, cfg.Postgres.MaxConn)
	panicOnErr("connect to postgres", err)
	defer pool.Close()

	err = postgres.UpMigrations(ctx, cfg.Postgres.DSN)
	panicOnErr("up migrations", err)

	repo := repository.New(pool)
	mailer := gomail.New(cfg.Mailer)
	builder := invoice.New(entity.Party{
		Name:    cfg.Vendor.Name,
		Address: cfg.Vendor.Address,
		Country: cfg.Vendor.Country,
		Phone:   cfg.Vendor.Phone,
		Email:   cfg.Vendor.Email,
	})

	var producer service.Producer = broker.NopProducer{}

	if cfg.Kafka.Enabled {
		p := broker.NewProducer(cfg.Kafka.Brokers, cfg.Kafka.NotifiedTopic)
		defer p.Close()

		producer = p
	}

	s := service.New(repo, mailer, producer, builder, cfg.Jobs.ResendMaxAttempts)

	// Kafka consumers
	if cfg.Kafka.Enabled {
		consumer := broker.NewConsumer(
			cfg.Kafka.Brokers,
			cfg.Kafka.ConsumerID,
			cfg.Kafka.HandlerRetries,
			cfg.Kafka.HandlerDelay,
			cfg.Kafka.SubmissionTopic,
		)
		defer consumer.Close()

		eventHandler := events.NewEventHandler(s)

		consumer.Handle(cfg.Kafka.SubmissionTopic, eventHandler.OnSubmission)
		consumer.Consume(ctx)
	}

	jobs := job.NewService().
		Add(cfg.Jobs.ResendEnabled, job.Job{
			Name:     "resend_failed_deliveries",
			Interval: cfg.Jobs.ResendInterval,
			Timeout:  cfg.Jobs.ResendTimeout,
			Run:      s.ResendFailed,
		})
	jobs.Start(ctx)

	h := api.NewHandler(s)
	mw := api.NewMiddleware(api.MiddlewareConfig{
		APIKey:         cfg.HTTP.APIKey,
		AllowedOrigins: cfg.HTTP.CORSOrigins,
	})

	router := api.NewRouter(h, mw)

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler:           router,
		ReadTimeout:       readTimeout,
		ReadHeaderTimeout: readHeaderTimeout,
		WriteTimeout:      writeTimeout,
	}

	if cfg.TLS.Enabled() {
		server.TLSConfig = tlsConfig(cfg.TLS)
	}

	var wg sync.WaitGroup

	wg.Add(1)

	go func() {
		defer wg.Done()

		slog.InfoContext(ctx, "http server started", "port", cfg.HTTP.Port, "tls", cfg.TLS.Enabled())

		var err error
		if cfg.TLS.Enabled() {
			err = server.ListenAndServeTLS(cfg.TLS.ServerCert, cfg.TLS.ServerKey)
		} else {
			err = server.ListenAndServe()
		}

		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Panicf("listen and serve: %s", err)
		}

		slog.DebugContext(ctx, "http server stopped")
	}()

	waitSignal(cancel, server)

	wg.Wait()
	jobs.Stop()
}

func tlsConfig(cfg config.TLS) *tls.Config {
	tlsCfg := &tls.Config{
		MinVersion: tls.VersionTLS12,
		ClientAuth: tls.NoClientCert,
	}

	if cfg.MTLSEnabled {
		caCert, err := os.ReadFile(cfg.CACert)
		panicOnErr("load CA cert", err)

		caCertPool := x509.NewCertPool()
		if !caCertPool.AppendCertsFromPEM(caCert) {
			log.Panic("failed to append CA cert to pool")
		}

		tlsCfg.ClientCAs = caCertPool
		tlsCfg.ClientAuth = tls.RequireAndVerifyClientCert
	}

	return tlsCfg
}

func waitSignal(cancel context.CancelFunc, server *http.Server) {
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	sig := <-ch

	slog.Info("got OS signal", "signal", sig.String())

	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	err := server.Shutdown(shutdownCtx)
	if err != nil {
		slog.ErrorContext(shutdownCtx, "server shutdown", "error", err)
	}
}

func panicOnErr(msg string, err error) {
	if err != nil {
		log.Panicf("%s: %s", msg, err)
	}
}
