package impl

import (
	"context"
	"log/slog"

	"storefront/config"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/geo"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/errors"
	"storefront/internal/state"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

const defaultNearbyLimit = 3

// storeService implements the StoreUsecase interface on top of the in-memory catalog.
type storeService struct {
	catalog     *state.Catalog
	storeRepo   repository.StoreRepository
	menuRepo    repository.MenuRepository
	locationUC  usecase.LocationUsecase
	qrService   service.QRCodeService
	nearbyLimit int
	maxRadiusKm float64
	logger      *slog.Logger
}

// StoreServiceParams holds dependencies for StoreService, injected by Fx.
type StoreServiceParams struct {
	fx.In

	Catalog    *state.Catalog
	StoreRepo  repository.StoreRepository
	MenuRepo   repository.MenuRepository
	LocationUC usecase.LocationUsecase
	QRService  service.QRCodeService
	Config     *config.Config
	Logger     *slog.Logger
}

// NewStoreService creates a new store service instance
func NewStoreService(params StoreServiceParams) usecase.StoreUsecase {
	nearbyLimit := defaultNearbyLimit
	var maxRadiusKm float64
	if params.Config != nil && params.Config.Ranking != nil {
		if params.Config.Ranking.NearbyLimit > 0 {
			nearbyLimit = params.Config.Ranking.NearbyLimit
		}
		maxRadiusKm = params.Config.Ranking.MaxRadiusKm
	}

	logger := params.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &storeService{
		catalog:     params.Catalog,
		storeRepo:   params.StoreRepo,
		menuRepo:    params.MenuRepo,
		locationUC:  params.LocationUC,
		qrService:   params.QRService,
		nearbyLimit: nearbyLimit,
		maxRadiusKm: maxRadiusKm,
		logger:      logger,
	}
}

func (srv *storeService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListStores returns the whole catalog, nearest first when the location resolves.
func (srv *storeService) ListStores(ctx context.Context, query *usecase.StoreQuery) (*usecase.StoreListing, error) {
	return srv.rank(ctx, query, 0)
}

// NearbyStores returns the closest stores.
func (srv *storeService) NearbyStores(ctx context.Context, query *usecase.StoreQuery) (*usecase.StoreListing, error) {
	limit := srv.nearbyLimit
	if query != nil && query.Limit > 0 {
		limit = query.Limit
	}

	return srv.rank(ctx, query, limit)
}

// rank joins the catalog snapshot with the caller's location. A failed
// resolution yields the unranked list and a retry hint, never an error.
func (srv *storeService) rank(ctx context.Context, query *usecase.StoreQuery, limit int) (*usecase.StoreListing, error) {
	if query == nil {
		query = &usecase.StoreQuery{}
	}

	stores := srv.catalog.Snapshot()

	resolved, err := srv.locationUC.ResolveLocation(ctx, query.Location)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, errors.WithStack(ctxErr)
		}

		srv.log(ctx).Info("Listing stores without distance ranking", slog.Any("reason", err))

		return &usecase.StoreListing{
			RankedStores:    geo.RankStores(nil, stores),
			LocationError:   locationErrorMessage(err),
			RetryPermission: true,
		}, nil
	}

	location := &resolved.Location
	result := geo.RankStores(location, stores)
	if radius := srv.radius(query.RadiusKm); radius > 0 {
		result = geo.WithinRadius(result, *location, radius)
	}
	if result.Ranked && limit > 0 && len(result.Stores) > limit {
		result.Stores = result.Stores[:limit]
	}

	return &usecase.StoreListing{
		RankedStores: result,
		Location:     resolved,
	}, nil
}

func (srv *storeService) radius(requested float64) float64 {
	if requested <= 0 {
		return 0
	}
	if srv.maxRadiusKm > 0 && requested > srv.maxRadiusKm {
		return srv.maxRadiusKm
	}

	return requested
}

// GetStore reads the catalog, falling back to the repository for stores
// created on another instance whose change event has not arrived yet.
func (srv *storeService) GetStore(ctx context.Context, storeID uuid.UUID) (*entity.Store, error) {
	if store, ok := srv.catalog.Store(storeID); ok {
		return store, nil
	}

	store, err := srv.storeRepo.FindStoreByID(ctx, storeID)
	if err != nil {
		if errors.Is(err, repository.ErrStoreNotFound) {
			return nil, domainerrors.ErrStoreNotFound.WrapMessage("store not in catalog")
		}

		return nil, errors.Wrap(err, "failed to find store by ID")
	}

	srv.catalog.UpsertStore(store)

	return store, nil
}

// GetMenu groups the store's items under their categories. Items without a
// known category go to a trailing section with no category.
func (srv *storeService) GetMenu(ctx context.Context, storeID uuid.UUID) (*entity.Menu, error) {
	store, err := srv.GetStore(ctx, storeID)
	if err != nil {
		return nil, err
	}

	categories, err := srv.menuRepo.FindCategoriesByStore(ctx, storeID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find categories by store")
	}

	items, err := srv.menuRepo.FindItemsByStore(ctx, storeID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find items by store")
	}

	return &entity.Menu{
		Store:    store,
		Sections: buildMenuSections(categories, items),
	}, nil
}

func buildMenuSections(categories []*entity.MenuCategory, items []*entity.MenuItem) []*entity.MenuSection {
	sections := make([]*entity.MenuSection, 0, len(categories)+1)
	byCategory := make(map[uuid.UUID]*entity.MenuSection, len(categories))
	for _, category := range categories {
		section := &entity.MenuSection{Category: category, Items: []*entity.MenuItem{}}
		sections = append(sections, section)
		byCategory[category.ID] = section
	}

	uncategorized := &entity.MenuSection{Items: []*entity.MenuItem{}}
	for _, item := range items {
		if item.CategoryID != nil {
			if section, ok := byCategory[*item.CategoryID]; ok {
				section.Items = append(section.Items, item)

				continue
			}
		}
		uncategorized.Items = append(uncategorized.Items, item)
	}

	if len(uncategorized.Items) > 0 {
		sections = append(sections, uncategorized)
	}

	return sections
}

// GetStoreQRCode renders the ordering QR code of an existing store.
func (srv *storeService) GetStoreQRCode(ctx context.Context, storeID uuid.UUID) ([]byte, error) {
	if _, err := srv.GetStore(ctx, storeID); err != nil {
		return nil, err
	}

	png, err := srv.qrService.GenerateStoreQR(storeID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate store QR code")
	}

	return png, nil
}

func locationErrorMessage(err error) string {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return appErr.Message()
	}

	return domainerrors.ErrLocationUnavailable.Message()
}
