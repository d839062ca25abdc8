package main

import (
	"database/sql"
	"log"
	"os"

	"github.com/aws/aws-lambda-go/lambda"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/learning-platform/authhooks/pkg/config"
	"github.com/learning-platform/authhooks/pkg/directory"
	"github.com/learning-platform/authhooks/pkg/observability"
	"github.com/learning-platform/authhooks/pkg/provision"
	"github.com/learning-platform/authhooks/pkg/tenant"
	"github.com/learning-platform/authhooks/pkg/trigger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger := observability.NewLogger(cfg.Observability.LogLevel, os.Stdout)
	metrics := observability.NewMetrics(prometheus.NewRegistry())

	var provisioner *provision.Provisioner
	if cfg.Provisioning.Enabled {
		db, err := sql.Open("postgres", cfg.Directory.PostgresURL)
		if err != nil {
			log.Fatalf("Failed to open directory database: %v", err)
		}
		mappings := directory.NewMappingStore(db, cfg.Directory.MappingCacheSize, cfg.Directory.MappingCacheTTL, metrics)
		provisioner = provision.NewProvisioner(directory.NewStore(db), provision.NewRoleResolver(mappings), logger, metrics)
	}

	var syncer provision.GroupSyncer
	if cfg.Platform.GroupSyncURL != "" {
		syncer = directory.NewSyncClient(cfg.Platform.GroupSyncURL, cfg.Platform.GroupSyncTimeout)
	}

	handler := trigger.NewPreTokenHandler(tenant.NewResolver(logger), provisioner, syncer, logger, metrics)
	lambda.Start(handler.Handle)
}
