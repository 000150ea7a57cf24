package main

import (
	"context"
	"log/slog"
	"os"

	"storefront/config"
	"storefront/internal/delivery"
	"storefront/internal/delivery/http"
	"storefront/internal/delivery/http/middleware"
	"storefront/internal/delivery/http/router/handler"
	"storefront/internal/delivery/worker"
	workerhandler "storefront/internal/delivery/worker/handler"
	"storefront/internal/domain/lifecycle"
	"storefront/internal/domain/service"
	"storefront/internal/errors"
	"storefront/internal/infra/auth"
	"storefront/internal/infra/cache"
	"storefront/internal/infra/geolocation"
	logs "storefront/internal/infra/log"
	"storefront/internal/infra/persistence/postgres"
	"storefront/internal/infra/pubsub"
	"storefront/internal/infra/qrcode"
	"storefront/internal/state"
	"storefront/internal/usecase"
	"storefront/internal/usecase/impl"
	"storefront/internal/webview/render"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			loadCatalog,
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Options(
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
			postgres.New,
			state.NewCatalog,
		),
		pubsub.Module,
		cache.Module,
		geolocation.Module,
		auth.Module,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewStoreRepository,
			postgres.NewMenuRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			newQRCodeService,
			newRenderOptions,
		),
	)
}

// newQRCodeService creates a QR code service from the qrcode config section
func newQRCodeService(cfg *config.Config) (service.QRCodeService, error) {
	if cfg.QRCode == nil {
		return nil, errors.New("qrcode.baseUrl is required")
	}

	return qrcode.NewQRCodeService(cfg.QRCode.BaseURL, cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel)
}

// newRenderOptions maps the webview config section onto coordinator options
func newRenderOptions(cfg *config.Config) render.Options {
	if cfg.WebView == nil {
		return render.Options{}
	}

	return render.Options{
		DataLoadDelay:         cfg.WebView.DataLoadDelay,
		LogoutSettleDelay:     cfg.WebView.LogoutSettleDelay,
		ListContainerSelector: cfg.WebView.ListContainerSelector,
	}
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewLocationService,
			impl.NewStoreService,
			impl.NewCatalogService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
			newWebViewMiddleware,
		),
	)
}

// newWebViewMiddleware uses the default keyword detector
func newWebViewMiddleware() *middleware.WebViewMiddleware {
	return middleware.NewWebViewMiddleware(nil)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewHealthHandler,
			handler.NewStoreHandler,
			handler.NewLocationHandler,
			handler.NewWebViewHandler,
			handler.NewOwnerHandler,
			workerhandler.NewPushHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
			fx.Annotate(
				worker.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

// loadCatalog fills the in-memory catalog before the servers accept traffic
func loadCatalog(lc fx.Lifecycle, catalogUC usecase.CatalogUsecase, logger *slog.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := catalogUC.LoadCatalog(ctx); err != nil {
				return errors.Wrap(err, "failed to load catalog")
			}
			logger.Info("Catalog loaded")

			return nil
		},
	})
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		if delivery == nil {
			continue
		}
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
