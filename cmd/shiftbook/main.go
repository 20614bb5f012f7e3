package main

import (
	"context"
	"os"

	"shiftbook/internal/amqp"
	"shiftbook/internal/cli"
	"shiftbook/internal/log"
)

func main() {
	os.Exit(run())
}

func run() int {
	cli.LoadEnvFile()

	logger := cli.SetupLogger(nil, os.Stderr)
	cfg, err := cli.LoadAndValidateConfig(logger)
	if err != nil {
		return 1
	}
	logger = cli.SetupLogger(cfg, os.Stderr)

	app := &cli.App{
		Config: cfg,
		Logger: logger,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}

	// AMQP is optional; without a broker notifications stay local.
	if cfg.AMQPURL != "" {
		client, err := amqp.NewClient(cfg.AMQPURL, cfg.AMQPExchange, cfg.AMQPQueue)
		if err != nil {
			logger.Warn("Failed to initialize AMQP client, continuing without publishing", log.FieldError, err)
		} else {
			defer client.Close()
			app.Publisher = client
			logger.Debug("Initialized AMQP client",
				"exchange", cfg.AMQPExchange,
				"queue", cfg.AMQPQueue)
		}
	}

	return cli.Run(context.Background(), app, os.Args[0], os.Args[1:])
}
