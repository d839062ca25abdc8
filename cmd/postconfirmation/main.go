package main

import (
	"context"
	"log"
	"os"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/learning-platform/authhooks/pkg/cognito"
	"github.com/learning-platform/authhooks/pkg/config"
	"github.com/learning-platform/authhooks/pkg/observability"
	"github.com/learning-platform/authhooks/pkg/trigger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger := observability.NewLogger(cfg.Observability.LogLevel, os.Stdout)
	metrics := observability.NewMetrics(prometheus.NewRegistry())

	client, err := cognito.NewClient(context.Background())
	if err != nil {
		log.Fatalf("Failed to create Cognito client: %v", err)
	}

	handler := trigger.NewPostConfirmationHandler(client, logger, metrics)
	lambda.Start(handler.Handle)
}
