package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/egannguyen/supplement-store/internal/cart"
	"github.com/egannguyen/supplement-store/internal/catalog"
	"github.com/egannguyen/supplement-store/internal/cli"
	"github.com/egannguyen/supplement-store/internal/journal"
	"github.com/egannguyen/supplement-store/internal/ledger"
	"github.com/egannguyen/supplement-store/internal/messaging/gochannel"
	"github.com/egannguyen/supplement-store/internal/metrics"
	"github.com/egannguyen/supplement-store/internal/service"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	}))
	slog.SetDefault(logger)

	broker := gochannel.NewBroker(logger)
	defer broker.Close()

	registry := prometheus.NewRegistry()
	ledgerMetrics := metrics.NewLedgerMetrics(registry)

	orderLedger := ledger.New(broker, journal.NewMemoryJournal(), ledgerMetrics)
	svc := service.NewStoreService(catalog.New(catalog.Seed()), cart.New(), orderLedger)

	// Consume order events in-process, mirroring what a downstream
	// notification system would see.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	startConsumer := func(topic string) {
		err := broker.Consume(ctx, topic, func(ctx context.Context, payload []byte) error {
			var event map[string]any
			if err := json.Unmarshal(payload, &event); err != nil {
				return fmt.Errorf("failed to unmarshal event on %s: %w", topic, err)
			}
			slog.Debug("Event received", "topic", topic, "order_id", event["order_id"])
			return nil
		})
		if err != nil {
			slog.Error("Failed to start consumer", "topic", topic, "err", err)
		}
	}
	startConsumer(ledger.TopicOrderCreated)
	startConsumer(ledger.TopicOrderStatusUpdated)

	if err := cli.Execute(svc); err != nil {
		slog.Error("Command failed", "err", err)
		os.Exit(1)
	}
}
