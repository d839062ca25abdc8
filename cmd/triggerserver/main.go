package main

import (
	"context"
	"database/sql"
	"encoding/json"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/learning-platform/authhooks/pkg/cognito"
	"github.com/learning-platform/authhooks/pkg/config"
	"github.com/learning-platform/authhooks/pkg/directory"
	"github.com/learning-platform/authhooks/pkg/observability"
	"github.com/learning-platform/authhooks/pkg/provision"
	"github.com/learning-platform/authhooks/pkg/tenant"
	"github.com/learning-platform/authhooks/pkg/trigger"
)

// triggerserver exposes the trigger handlers over HTTP for local
// development and integration testing, where invoking Lambda is awkward.
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
		defer db.Close()
		mappings := directory.NewMappingStore(db, cfg.Directory.MappingCacheSize, cfg.Directory.MappingCacheTTL, metrics)
		provisioner = provision.NewProvisioner(directory.NewStore(db), provision.NewRoleResolver(mappings), logger, metrics)
	}

	var syncer provision.GroupSyncer
	if cfg.Platform.GroupSyncURL != "" {
		syncer = directory.NewSyncClient(cfg.Platform.GroupSyncURL, cfg.Platform.GroupSyncTimeout)
	}

	preToken := trigger.NewPreTokenHandler(tenant.NewResolver(logger), provisioner, syncer, logger, metrics)

	client, err := cognito.NewClient(context.Background())
	if err != nil {
		log.Fatalf("Failed to create Cognito client: %v", err)
	}
	postConfirm := trigger.NewPostConfirmationHandler(client, logger, metrics)

	router := mux.NewRouter()
	router.HandleFunc("/triggers/pre-token-generation", func(w http.ResponseWriter, r *http.Request) {
		var event trigger.PreTokenEvent
		if err := json.NewDecoder(r.Body).Decode(&event); err != nil {
			http.Error(w, "invalid event payload", http.StatusBadRequest)
			return
		}
		out, _ := preToken.Handle(r.Context(), &event)
		writeJSON(w, out)
	}).Methods(http.MethodPost)

	router.HandleFunc("/triggers/post-confirmation", func(w http.ResponseWriter, r *http.Request) {
		var event trigger.PostConfirmationEvent
		if err := json.NewDecoder(r.Body).Decode(&event); err != nil {
			http.Error(w, "invalid event payload", http.StatusBadRequest)
			return
		}
		out, _ := postConfirm.Handle(r.Context(), &event)
		writeJSON(w, out)
	}).Methods(http.MethodPost)

	if cfg.Observability.MetricsEnabled {
		router.Handle("/metrics", metrics.Handler()).Methods(http.MethodGet)
	}
	router.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}).Methods(http.MethodGet)

	server := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		logger.WithField("addr", server.Addr).Info("trigger server listening")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Printf("Shutdown error: %v", err)
	}
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("Failed to encode response: %v", err)
	}
}
