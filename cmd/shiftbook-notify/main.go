package main

import (
	"context"
	"errors"
	"os"
	"time"

	"shiftbook/internal/amqp"
	"shiftbook/internal/cli"
	"shiftbook/internal/log"
	"shiftbook/internal/worker"
)

func main() {
	os.Exit(run())
}

func run() int {
	cli.LoadEnvFile()

	logger := cli.SetupLogger(nil, os.Stdout)
	cfg, err := cli.LoadAndValidateConfig(logger)
	if err != nil {
		return 1
	}
	logger = cli.SetupLogger(cfg, os.Stdout)

	if cfg.AMQPURL == "" {
		logger.Error("AMQP_URL is required")
		return 1
	}

	logger.Info("Starting shiftbook-notify",
		"exchange", cfg.AMQPExchange,
		"queue", cfg.AMQPQueue)

	client, err := amqp.NewClient(cfg.AMQPURL, cfg.AMQPExchange, cfg.AMQPQueue)
	if err != nil {
		logger.Error("Failed to initialize AMQP client", log.FieldError, err)
		return 1
	}
	defer func() {
		if err := client.Close(); err != nil {
			logger.Warn("Failed to close AMQP client", log.FieldError, err)
		}
	}()

	w := worker.NewNotificationWorker(logger)
	ctx, done := cli.GracefulShutdown(logger, 30*time.Second, nil)

	go w.Run(ctx, time.Hour)

	consumed := make(chan error, 1)
	go func() {
		consumed <- client.ConsumeNotifications(ctx, w.HandleNotification)
	}()

	select {
	case err := <-consumed:
		if err != nil && !errors.Is(err, context.Canceled) {
			logger.Error("Notification consumption failed", log.FieldError, err)
			return 1
		}
	case <-ctx.Done():
		cli.WaitForShutdown(ctx, done)
	}
	return 0
}
