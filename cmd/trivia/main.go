package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/awslabs/aws-lambda-go-api-proxy/httpadapter"
	"github.com/urfave/cli/v2"

	"github.com/saulo-duarte/trivia-lambda/internal/config"
	"github.com/saulo-duarte/trivia-lambda/internal/container"
	"github.com/saulo-duarte/trivia-lambda/internal/seed"
)

func main() {
	app := &cli.App{
		Name:  "trivia",
		Usage: "trivia questions API",
		Before: func(c *cli.Context) error {
			config.LoadEnv()
			config.Init()
			return nil
		},
		Commands: []*cli.Command{
			{
				Name:  "serve",
				Usage: "run the HTTP server",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "addr",
						Usage:   "listen address",
						EnvVars: []string{"ADDR"},
					},
				},
				Action: serve,
			},
			{
				Name:   "lambda",
				Usage:  "serve API Gateway proxy events on AWS Lambda",
				Action: serveLambda,
			},
			{
				Name:   "migrate",
				Usage:  "create or update the database schema",
				Action: migrate,
			},
			{
				Name:  "seed",
				Usage: "load categories and questions from a YAML file",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "file",
						Usage: "seed file",
						Value: "data/trivia.yaml",
					},
				},
				Action: runSeed,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		config.Logger.WithError(err).Fatal("trivia exited with error")
	}
}

func serve(c *cli.Context) error {
	ctx, stop := signal.NotifyContext(c.Context, os.Interrupt, syscall.SIGTERM)
	defer stop()

	cont, err := container.New(ctx)
	if err != nil {
		return err
	}

	addr := c.String("addr")
	if addr == "" {
		addr = ":" + config.Load().Port
	}

	srv := &http.Server{
		Addr:              addr,
		Handler:           cont.Router(),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		config.Logger.WithField("addr", addr).Info("Server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	config.Logger.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func serveLambda(c *cli.Context) error {
	cont, err := container.New(c.Context)
	if err != nil {
		return err
	}

	adapter := httpadapter.New(cont.Router())
	lambda.Start(adapter.ProxyWithContext)
	return nil
}

func migrate(c *cli.Context) error {
	settings := config.Load()
	if err := config.Connect(c.Context, settings.DatabaseDriver, settings.DatabaseDSN); err != nil {
		return err
	}
	return container.Migrate(config.DB)
}

func runSeed(c *cli.Context) error {
	data, err := seed.Load(c.String("file"))
	if err != nil {
		return err
	}

	settings := config.Load()
	if err := config.Connect(c.Context, settings.DatabaseDriver, settings.DatabaseDSN); err != nil {
		return err
	}
	if err := container.Migrate(config.DB); err != nil {
		return err
	}

	_, err = seed.Run(c.Context, config.DB, data)
	return err
}
