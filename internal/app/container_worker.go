package app

import (
	"context"
	"fmt"

	"go.uber.org/dig"

	"courier-chat/internal/config"
	"courier-chat/internal/logx"
	"courier-chat/internal/service/workflow"
	"courier-chat/internal/transport/kafka"
)

// MustBuildWorkerContainer builds the DI container for the bus worker: the
// same core and services as the HTTP service, plus the Kafka transport
// instead of the router.
func MustBuildWorkerContainer(ctx context.Context) *dig.Container {
	b := NewContainerBuilder()
	container, err := b.buildWorker(ctx)
	if err != nil {
		b.logFatalf("failed to build worker container: %v", err)
	}
	return container
}

func (b *ContainerBuilder) buildWorker(ctx context.Context) (*dig.Container, error) {
	container := dig.New()

	if err := registerCore(container, ctx); err != nil {
		return nil, fmt.Errorf("core: %w", err)
	}
	if err := registerDb(container, b.dbConnect); err != nil {
		return nil, fmt.Errorf("DB: %w", err)
	}
	if err := registerService(container); err != nil {
		return nil, fmt.Errorf("service: %w", err)
	}
	if err := registerKafka(container); err != nil {
		return nil, fmt.Errorf("kafka: %w", err)
	}
	return container, nil
}

func registerKafka(container *dig.Container) error {
	return provideAll(container,
		func(cfg *config.Config) (*kafka.Producer, error) {
			return kafka.NewProducer(cfg.Kafka.Brokers, cfg.Kafka.RendersTopic)
		},
		func(wf *workflow.Service, producer *kafka.Producer, logger logx.Logger) kafka.HandleFunc {
			return makeUpdatesHandler(wf, producer, logger)
		},
		func(cfg *config.Config, h kafka.HandleFunc, logger logx.Logger) (*kafka.Consumer, error) {
			return kafka.NewConsumer(cfg.Kafka.Brokers, cfg.Kafka.GroupID, cfg.Kafka.UpdatesTopic, h, logger)
		},
	)
}
