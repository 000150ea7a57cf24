package router

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"storefront/config"
	deliverycontext "storefront/internal/delivery/context"
	httpmiddleware "storefront/internal/delivery/http/middleware"
	"storefront/internal/delivery/http/response"
	"storefront/internal/delivery/http/router/handler"
	"storefront/internal/delivery/http/validator"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"
	mockservice "storefront/internal/mocks/service"
	mockusecase "storefront/internal/mocks/usecase"
	"storefront/internal/state"
	"storefront/internal/usecase"
	"storefront/internal/webview/render"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type testServer struct {
	echo       *echo.Echo
	storeUC    *mockusecase.MockStoreUsecase
	locationUC *mockusecase.MockLocationUsecase
	catalogUC  *mockusecase.MockCatalogUsecase
	verifier   *mockservice.MockTokenVerifier
	catalog    *state.Catalog
}

func newTestServer(t *testing.T, cfg *config.Config) *testServer {
	t.Helper()

	logger := slog.New(slog.DiscardHandler)
	ts := &testServer{
		storeUC:    mockusecase.NewMockStoreUsecase(t),
		locationUC: mockusecase.NewMockLocationUsecase(t),
		catalogUC:  mockusecase.NewMockCatalogUsecase(t),
		verifier:   mockservice.NewMockTokenVerifier(t),
		catalog:    state.NewCatalog(),
	}
	if cfg == nil {
		cfg = &config.Config{}
	}

	e := echo.New()
	e.Validator = validator.New()
	e.HTTPErrorHandler = httpmiddleware.NewErrorMiddleware(logger).HandleHTTPError

	NewRouter(RouterParams{
		HealthHandler:     handler.NewHealthHandler(handler.HealthHandlerParams{Catalog: ts.catalog}),
		StoreHandler:      handler.NewStoreHandler(handler.StoreHandlerParams{StoreUC: ts.storeUC, Logger: logger}),
		LocationHandler:   handler.NewLocationHandler(handler.LocationHandlerParams{LocationUC: ts.locationUC}),
		WebViewHandler:    handler.NewWebViewHandler(handler.WebViewHandlerParams{RenderOptions: render.Options{}}),
		OwnerHandler:      handler.NewOwnerHandler(handler.OwnerHandlerParams{CatalogUC: ts.catalogUC, Logger: logger}),
		AuthMiddleware:    httpmiddleware.NewAuthMiddleware(ts.verifier, logger),
		WebViewMiddleware: httpmiddleware.NewWebViewMiddleware(nil),
		Config:            cfg,
	}).RegisterRoutes(e)
	ts.echo = e

	return ts
}

func (ts *testServer) do(req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	ts.echo.ServeHTTP(rec, req)

	return rec
}

func (ts *testServer) authorize(req *http.Request, identity *service.Identity) {
	req.Header.Set(echo.HeaderAuthorization, "Bearer token-"+identity.UID)
	ts.verifier.EXPECT().Verify(mock.Anything, "token-"+identity.UID).Return(identity, nil)
}

type envelope struct {
	response.Response
	Data json.RawMessage `json:"data"`
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()

	var body envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body), rec.Body.String())

	return body
}

func TestHealth(t *testing.T) {
	ts := newTestServer(t, nil)
	ts.catalog.ReplaceStores([]*entity.Store{{ID: uuid.New(), Name: "A"}})

	rec := ts.do(httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decode(t, rec)
	assert.True(t, body.Success)
	assert.JSONEq(t, `{"status":"ok","stores":1,"catalog_version":1}`, string(body.Data))
}

func TestStores_ListPassesLocationSources(t *testing.T) {
	ts := newTestServer(t, nil)
	distance := 1.2
	listing := &usecase.StoreListing{
		RankedStores: entity.RankedStores{
			Stores: []entity.StoreWithDistance{{Store: entity.Store{Name: "Near"}, Distance: &distance}},
			Ranked: true,
		},
	}

	ts.storeUC.EXPECT().ListStores(mock.Anything, mock.MatchedBy(func(q *usecase.StoreQuery) bool {
		return q.Location.Bridge != nil &&
			q.Location.Query.Get("lat") == "25.03" &&
			q.Location.ClientIP == "203.0.113.9" &&
			q.RadiusKm == 5 && q.Limit == 0
	})).Return(listing, nil)

	req := httptest.NewRequest(http.MethodGet, "/stores?lat=25.03&lng=121.56&locationPermission=true&radius=5", nil)
	req.Header.Set("X-Native-Bridge", "flutter")
	req.Header.Set(echo.HeaderXRealIP, "203.0.113.9")
	rec := ts.do(req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "true", rec.Header().Get("X-WebView"))
	assert.Contains(t, string(decode(t, rec).Data), `"distance":1.2`)
}

func TestStores_NearbyQueryValidation(t *testing.T) {
	ts := newTestServer(t, nil)

	for _, target := range []string{"/stores/nearby?radius=-1", "/stores/nearby?radius=abc", "/stores/nearby?radius=NaN", "/stores/nearby?radius=%2BInf", "/stores/nearby?limit=x", "/stores/nearby?limit=-2"} {
		rec := ts.do(httptest.NewRequest(http.MethodGet, target, nil))
		assert.Equal(t, http.StatusBadRequest, rec.Code, target)
	}
}

func TestStores_NearbyWithLocationError(t *testing.T) {
	ts := newTestServer(t, nil)
	ts.storeUC.EXPECT().NearbyStores(mock.Anything, mock.MatchedBy(func(q *usecase.StoreQuery) bool {
		return q.Limit == 5
	})).Return(&usecase.StoreListing{
		RankedStores:    entity.RankedStores{Stores: []entity.StoreWithDistance{{Store: entity.Store{Name: "A"}}}},
		LocationError:   "unable to obtain real location",
		RetryPermission: true,
	}, nil)

	rec := ts.do(httptest.NewRequest(http.MethodGet, "/stores/nearby?limit=5", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	data := string(decode(t, rec).Data)
	assert.Contains(t, data, `"retry_permission":true`)
	assert.Contains(t, data, `"location_error"`)
}

func TestStores_GetStoreAndMenu(t *testing.T) {
	ts := newTestServer(t, nil)
	storeID := uuid.New()

	t.Run("invalid id", func(t *testing.T) {
		rec := ts.do(httptest.NewRequest(http.MethodGet, "/stores/not-a-uuid", nil))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "INVALID_ID", decode(t, rec).Error.Code)
	})

	t.Run("not found", func(t *testing.T) {
		ts.storeUC.EXPECT().GetStore(mock.Anything, storeID).Return(nil, domainerrors.ErrStoreNotFound).Once()

		rec := ts.do(httptest.NewRequest(http.MethodGet, "/stores/"+storeID.String(), nil))
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "STORE_NOT_FOUND", decode(t, rec).Error.Code)
	})

	t.Run("menu", func(t *testing.T) {
		ts.storeUC.EXPECT().GetMenu(mock.Anything, storeID).Return(&entity.Menu{
			Store:    &entity.Store{ID: storeID, Name: "A"},
			Sections: []*entity.MenuSection{{Items: []*entity.MenuItem{{Name: "Tea", Price: 50}}}},
		}, nil).Once()

		rec := ts.do(httptest.NewRequest(http.MethodGet, "/stores/"+storeID.String()+"/menu", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, string(decode(t, rec).Data), `"Tea"`)
	})

	t.Run("qrcode", func(t *testing.T) {
		ts.storeUC.EXPECT().GetStoreQRCode(mock.Anything, storeID).Return([]byte("\x89PNG"), nil).Once()

		rec := ts.do(httptest.NewRequest(http.MethodGet, "/stores/"+storeID.String()+"/qrcode", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
		assert.Equal(t, "\x89PNG", rec.Body.String())
	})
}

func TestLocation(t *testing.T) {
	t.Run("resolved", func(t *testing.T) {
		ts := newTestServer(t, nil)
		ts.locationUC.EXPECT().ResolveLocation(mock.Anything, mock.Anything).Return(&entity.ResolvedLocation{
			Location:          entity.Location{Latitude: 25.03, Longitude: 121.56},
			Source:            entity.LocationSourceURL,
			PermissionGranted: true,
		}, nil).Once()

		rec := ts.do(httptest.NewRequest(http.MethodGet, "/location?locationPermission=true&lat=25.03&lng=121.56", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"latitude":25.03,"longitude":121.56,"source":"url","has_permission":true}`, string(decode(t, rec).Data))
		ts.locationUC.AssertNotCalled(t, "HasLocationPermission", mock.Anything, mock.Anything)
	})

	t.Run("unavailable is 422", func(t *testing.T) {
		ts := newTestServer(t, nil)
		ts.locationUC.EXPECT().ResolveLocation(mock.Anything, mock.Anything).
			Return(nil, domainerrors.ErrLocationUnavailable.WrapMessage("position lookup not configured"))

		rec := ts.do(httptest.NewRequest(http.MethodGet, "/location", nil))

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		assert.Equal(t, "LOCATION_UNAVAILABLE", decode(t, rec).Error.Code)
	})
}

func TestDistance(t *testing.T) {
	ts := newTestServer(t, nil)

	rec := ts.do(httptest.NewRequest(http.MethodGet, "/distance?from_lat=25.0330&from_lng=121.5654&to_lat=25.0478&to_lng=121.5170", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var got handler.DistanceResponse
	require.NoError(t, json.Unmarshal(decode(t, rec).Data, &got))
	assert.InDelta(t, 5.1, got.DistanceKm, 0.0001)
	assert.Equal(t, "5.1km", got.Display)

	rec = ts.do(httptest.NewRequest(http.MethodGet, "/distance?from_lat=1&from_lng=2&to_lat=3", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	for _, target := range []string{
		"/distance?from_lat=NaN&from_lng=0&to_lat=0&to_lng=0",
		"/distance?from_lat=0&from_lng=Inf&to_lat=0&to_lng=0",
		"/distance?from_lat=0&from_lng=0&to_lat=-Inf&to_lng=0",
	} {
		rec = ts.do(httptest.NewRequest(http.MethodGet, target, nil))
		assert.Equal(t, http.StatusBadRequest, rec.Code, target)
		assert.Equal(t, "INVALID_COORDINATE", decode(t, rec).Error.Code, target)
	}
}

func TestWebViewEnvironment(t *testing.T) {
	ts := newTestServer(t, nil)

	req := httptest.NewRequest(http.MethodGet, "/webview/environment", nil)
	req.Header.Set("User-Agent", "Mozilla/5.0 (Linux; Android 14; Pixel 8 Build/UQ1A; wv) AppleWebKit/537.36 Chrome/120.0 Mobile Safari/537.36")
	rec := ts.do(req)
	require.Equal(t, http.StatusOK, rec.Code)

	var got handler.EnvironmentResponse
	require.NoError(t, json.Unmarshal(decode(t, rec).Data, &got))
	assert.True(t, got.IsWebView)
	assert.True(t, got.Hints.Enabled)
	assert.Equal(t, 2, got.Hints.DeferFrames)
	assert.Equal(t, int64(100), got.Hints.DataLoadDelayMs)
	assert.Equal(t, int64(150), got.Hints.LogoutSettleDelayMs)

	req = httptest.NewRequest(http.MethodGet, "/webview/environment", nil)
	req.Header.Set("User-Agent", "Mozilla/5.0 (Macintosh; Intel Mac OS X 14_0) AppleWebKit/605.1.15 Version/17.0 Safari/605.1.15")
	rec = ts.do(req)
	require.NoError(t, json.Unmarshal(decode(t, rec).Data, &got))
	assert.False(t, got.IsWebView)
	assert.False(t, got.Hints.Enabled)
	assert.Equal(t, `[data-testid="list-container"]`, got.Hints.ListContainerSelector)
}

func TestOwner_RequiresAuthentication(t *testing.T) {
	ts := newTestServer(t, nil)

	rec := ts.do(httptest.NewRequest(http.MethodGet, "/owner/stores", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "UNAUTHENTICATED", decode(t, rec).Error.Code)
}

func TestOwner_RequiredRole(t *testing.T) {
	cfg := &config.Config{Auth: &config.AuthConfig{OwnerRole: "owner"}}
	ts := newTestServer(t, cfg)

	req := httptest.NewRequest(http.MethodGet, "/owner/stores", nil)
	ts.authorize(req, &service.Identity{UID: "customer-1"})
	rec := ts.do(req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestOwner_CreateStore(t *testing.T) {
	owner := &service.Identity{UID: "owner-1"}

	t.Run("created", func(t *testing.T) {
		ts := newTestServer(t, nil)
		created := &entity.Store{ID: uuid.New(), OwnerID: owner.UID, Name: "Noodle Bar"}
		ts.catalogUC.EXPECT().CreateStore(mock.Anything, owner.UID, mock.MatchedBy(func(in *usecase.CreateStoreInput) bool {
			return in.Name == "Noodle Bar" && in.Latitude != nil && *in.Latitude == 25.03
		})).Return(created, nil)

		req := httptest.NewRequest(http.MethodPost, "/owner/stores", strings.NewReader(`{"name":"Noodle Bar","latitude":25.03,"longitude":121.56}`))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		ts.authorize(req, owner)
		rec := ts.do(req)

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Contains(t, string(decode(t, rec).Data), created.ID.String())
	})

	t.Run("validation failure", func(t *testing.T) {
		ts := newTestServer(t, nil)

		req := httptest.NewRequest(http.MethodPost, "/owner/stores", strings.NewReader(`{"latitude":123}`))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		ts.authorize(req, owner)
		rec := ts.do(req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		body := decode(t, rec)
		assert.Equal(t, "VALIDATION_FAILED", body.Error.Code)
		assert.Contains(t, body.Error.Details, "Name: required")
	})

	t.Run("malformed body", func(t *testing.T) {
		ts := newTestServer(t, nil)

		req := httptest.NewRequest(http.MethodPost, "/owner/stores", strings.NewReader(`{"name":`))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		ts.authorize(req, owner)
		rec := ts.do(req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "INVALID_INPUT", decode(t, rec).Error.Code)
	})
}

func TestOwner_MutationsMapDomainErrors(t *testing.T) {
	owner := &service.Identity{UID: "owner-1"}
	storeID := uuid.New()
	itemID := uuid.New()
	categoryID := uuid.New()

	t.Run("update store of another owner", func(t *testing.T) {
		ts := newTestServer(t, nil)
		ts.catalogUC.EXPECT().UpdateStore(mock.Anything, owner.UID, storeID, mock.Anything).
			Return(nil, domainerrors.ErrStoreOwnershipViolation)

		req := httptest.NewRequest(http.MethodPut, "/owner/stores/"+storeID.String(), strings.NewReader(`{"is_open":true}`))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		ts.authorize(req, owner)
		rec := ts.do(req)

		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Equal(t, "STORE_OWNERSHIP_VIOLATION", decode(t, rec).Error.Code)
	})

	t.Run("delete item", func(t *testing.T) {
		ts := newTestServer(t, nil)
		ts.catalogUC.EXPECT().DeleteMenuItem(mock.Anything, owner.UID, storeID, itemID).Return(nil)

		req := httptest.NewRequest(http.MethodDelete, "/owner/stores/"+storeID.String()+"/items/"+itemID.String(), nil)
		ts.authorize(req, owner)
		rec := ts.do(req)

		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("category name conflict", func(t *testing.T) {
		ts := newTestServer(t, nil)
		ts.catalogUC.EXPECT().UpdateCategory(mock.Anything, owner.UID, storeID, categoryID, mock.Anything).
			Return(nil, domainerrors.ErrCategoryNameConflict)

		req := httptest.NewRequest(http.MethodPut, "/owner/stores/"+storeID.String()+"/categories/"+categoryID.String(), strings.NewReader(`{"name":"Drinks"}`))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		ts.authorize(req, owner)
		rec := ts.do(req)

		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("unexpected error is a 500", func(t *testing.T) {
		ts := newTestServer(t, nil)
		ts.catalogUC.EXPECT().ListOwnerStores(mock.Anything, owner.UID).Return(nil, assert.AnError)

		req := httptest.NewRequest(http.MethodGet, "/owner/stores", nil)
		ts.authorize(req, owner)
		rec := ts.do(req)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, "INTERNAL_ERROR", decode(t, rec).Error.Code)
	})
}

func TestOwner_IdentityReachesUsecaseContext(t *testing.T) {
	ts := newTestServer(t, nil)
	owner := &service.Identity{UID: "owner-1"}
	ts.catalogUC.EXPECT().ListOwnerStores(mock.MatchedBy(func(ctx context.Context) bool {
		identity := deliverycontext.GetIdentityFromContext(ctx)

		return identity != nil && identity.UID == owner.UID
	}), owner.UID).Return([]*entity.Store{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/owner/stores", nil)
	ts.authorize(req, owner)
	rec := ts.do(req)

	assert.Equal(t, http.StatusOK, rec.Code)
}
