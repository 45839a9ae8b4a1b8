package handler

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/MichalMitros/commerce-seeder/internal/catalog"
	"github.com/MichalMitros/commerce-seeder/internal/platform/models"
	"github.com/MichalMitros/commerce-seeder/internal/platform/rabbitmq"
	"github.com/MichalMitros/commerce-seeder/internal/seeder"
	"github.com/MichalMitros/commerce-seeder/pkg/v1/commander"
	"github.com/rs/zerolog"
)

//go:generate mockery --name Consumer --filename consumer.go

// Consumer consumes messages from queue.
type Consumer interface {
	Consume(ctx context.Context, queue string, handler rabbitmq.HandlerFunc) (<-chan error, error)
}

// Seeder seeds commerce backend with catalog.
type Seeder interface {
	Seed(ctx context.Context, catalog *models.Catalog, ops ...seeder.SeedOption) (*models.Run, error)
}

// RMQHandler handles seed commands from RMQ.
type RMQHandler struct {
	consumer       Consumer
	seeder         Seeder
	defaultCatalog string
	logger         *zerolog.Logger
}

// NewHandler returns new RMQHandler. Commands without catalog file seed catalog at defaultCatalog path,
// or the embedded demo catalog when the path is empty.
func NewHandler(consumer Consumer, seeder Seeder, defaultCatalog string, logger *zerolog.Logger) *RMQHandler {
	return &RMQHandler{
		consumer:       consumer,
		seeder:         seeder,
		defaultCatalog: defaultCatalog,
		logger:         logger,
	}
}

// Start starts consuming and handling seed commands from RMQ.
func (h *RMQHandler) Start(ctx context.Context, queue string) error {
	errorsChan, err := h.consumer.Consume(ctx, queue, h.Handle)
	if err != nil {
		return err
	}

	go func() {
		for err := range errorsChan {
			h.logger.Error().
				Err(err).
				Msg("can't handle message")
		}
	}()

	return nil
}

// Handle runs seeding described by seed command message.
func (h *RMQHandler) Handle(ctx context.Context, message []byte) error {
	cmd, err := decodeMessage(message)
	if err != nil {
		return err
	}

	catalogFile := cmd.CatalogFile
	if catalogFile == "" {
		catalogFile = h.defaultCatalog
	}

	cat, err := catalog.Load(catalogFile)
	if err != nil {
		return fmt.Errorf("can't load catalog: %w", err)
	}

	if err := catalog.Validate(cat); err != nil {
		return fmt.Errorf("can't validate catalog: %w", err)
	}

	h.logger.Debug().
		Str("catalogFile", catalogFile).
		Bool("force", cmd.Force).
		Bool("rollback", cmd.Rollback).
		Msg("seeding started")

	run, err := h.seeder.Seed(ctx, cat, seeder.Force(cmd.Force), seeder.Rollback(cmd.Rollback))
	if err != nil {
		return fmt.Errorf("seeding failed: %w", err)
	}

	h.logger.Debug().
		Int("runId", run.ID).
		Int32("created", *run.CreatedEntities).
		Int32("reused", *run.ReusedEntities).
		Msg("seeding finished")

	return nil
}

func decodeMessage(msg []byte) (*commander.SeedCommand, error) {
	var cmd commander.SeedCommand
	err := json.Unmarshal(msg, &cmd)
	if err != nil {
		return nil, fmt.Errorf("can't decode seed command: %w", err)
	}

	return &cmd, nil
}
