package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"budgetreport/internal/amqp"
	"budgetreport/internal/backend"
	"budgetreport/internal/cli"
	applog "budgetreport/internal/log"
	"budgetreport/internal/mail"
	"budgetreport/internal/services"
)

func main() {
	cli.LoadEnvFile()
	logger := cli.SetupLogger()

	logger.Info("Starting budgetreport")

	cfg := cli.LoadAndValidateConfig(logger)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	backendConfig, err := backend.FromAppConfig(cfg)
	if err != nil {
		logger.Error("Invalid backend configuration", applog.FieldError, err)
		os.Exit(1)
	}

	factory := backend.NewFactory(logger.Logger)
	be, err := factory.CreateBackend(ctx, backendConfig)
	if err != nil {
		logger.Error("Failed to initialize ledger backend", applog.FieldError, err, applog.FieldBackend, backendConfig.Type)
		os.Exit(1)
	}
	if be.Cleanup != nil {
		defer be.Cleanup()
	}

	// Narrative sink is optional; without it only the report sheet is
	// produced.
	var drafts mail.DraftSender
	if cfg.DraftEnabled {
		gmailClient, err := mail.NewGmailClient(ctx, cfg.DraftRecipient)
		if err != nil {
			logger.Error("Failed to initialize Gmail client", applog.FieldError, err)
			os.Exit(1)
		}
		drafts = gmailClient
	} else {
		logger.Info("Narrative draft disabled - skipping Gmail client")
	}

	var events services.EventPublisher
	if cfg.AMQPURL != "" {
		amqpClient, err := amqp.NewClient(cfg.AMQPURL, cfg.AMQPExchange, cfg.AMQPQueue)
		if err != nil {
			logger.Error("Failed to initialize AMQP client", applog.FieldError, err)
			os.Exit(1)
		}
		defer amqpClient.Close()
		events = amqpClient
	}

	svc := services.NewReportService(be.Source, be.Writer, drafts, events, cfg.Threshold)
	result, err := svc.Run(ctx)
	if err != nil {
		logger.Error("Report run failed", applog.FieldError, err)
		os.Exit(1)
	}

	logger.Info("Report generated",
		applog.FieldYear, result.Period.Year,
		applog.FieldMonth, int(result.Period.Month),
		"categories", result.CategoriesParsed,
		applog.FieldFlagged, result.CategoriesFlagged)

	if result.DraftErr != nil {
		logger.Warn("Report sheet written but narrative draft failed", applog.FieldError, result.DraftErr)
		os.Exit(2)
	}
}
