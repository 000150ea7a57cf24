// Package pubsub propagates catalog changes between storefront instances.
package pubsub

import (
	"context"
	"log/slog"

	"storefront/config"
	"storefront/internal/domain/constants"
	"storefront/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// noopPublisher keeps changes local to this instance
type noopPublisher struct {
	logger *slog.Logger
}

func (p *noopPublisher) PublishStoreChanged(_ context.Context, event *service.StoreChangedEvent) error {
	p.logger.Debug("[NoopPubSub] Store change not propagated",
		slog.String("store_id", event.StoreID),
		slog.String("action", event.Action),
	)

	return nil
}

func (p *noopPublisher) Close() error {
	return nil
}

// PublisherParams holds dependencies for EventPublisher, injected by Fx
type PublisherParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewEventPublisher picks the publisher named by pubsub.provider; an empty provider means single-instance mode
func NewEventPublisher(params PublisherParams) (service.EventPublisher, error) {
	cfg := params.Config.PubSub
	if cfg == nil || cfg.Provider == "" {
		params.Logger.Info("PubSub not configured, store changes stay on this instance")

		return &noopPublisher{logger: params.Logger}, nil
	}

	var (
		publisher service.EventPublisher
		err       error
	)
	switch cfg.Provider {
	case constants.PubSubProviderLocal:
		publisher, err = newLocalPublisher(cfg, params.Logger)
	case constants.PubSubProviderGoogle:
		publisher, err = newGooglePublisher(params.Ctx, cfg, params.Logger)
	default:
		err = errors.Errorf("unknown pubsub provider: %s", cfg.Provider)
	}
	if err != nil {
		return nil, err
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			params.Logger.Info("Closing store change publisher", slog.String("provider", cfg.Provider))

			return publisher.Close()
		},
	})

	return publisher, nil
}

func newLocalPublisher(cfg *config.PubSubConfig, logger *slog.Logger) (service.EventPublisher, error) {
	if cfg.LocalEndpoint == "" {
		return nil, errors.New("pubsub.localEndpoint is required for the local provider")
	}
	logger.Info("Publishing store changes over local HTTP", slog.String("endpoint", cfg.LocalEndpoint))

	return NewLocalHTTPPublisher(cfg.LocalEndpoint, logger), nil
}

func newGooglePublisher(ctx context.Context, cfg *config.PubSubConfig, logger *slog.Logger) (service.EventPublisher, error) {
	if cfg.ProjectID == "" || cfg.TopicID == "" {
		return nil, errors.New("pubsub.projectId and pubsub.topicId are required for the google provider")
	}
	logger.Info("Publishing store changes to Google Pub/Sub",
		slog.String("project_id", cfg.ProjectID),
		slog.String("topic_id", cfg.TopicID),
	)

	return NewGooglePubSubPublisher(ctx, cfg.ProjectID, cfg.TopicID, logger)
}

// Module provides the Pub/Sub FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewEventPublisher),
)
