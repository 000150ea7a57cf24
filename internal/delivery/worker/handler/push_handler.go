// Package handler contains the worker's Pub/Sub push endpoint.
package handler

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"storefront/config"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/service"
	"storefront/internal/errors"
	"storefront/internal/infra/pubsub"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

// PushTokenValidator checks the Google-signed token of a push request
type PushTokenValidator func(ctx context.Context, token, audience string) (*idtoken.Payload, error)

// PushHandler applies catalog change events pushed by Pub/Sub
type PushHandler struct {
	verifyPushAuth bool
	validateToken  PushTokenValidator
	logger         *slog.Logger
	catalogUC      usecase.CatalogUsecase
}

// PushHandlerParams holds dependencies for the PushHandler
type PushHandlerParams struct {
	fx.In

	Config    *config.Config
	Logger    *slog.Logger
	CatalogUC usecase.CatalogUsecase
}

// NewPushHandler creates a new Pub/Sub push handler
func NewPushHandler(params PushHandlerParams) *PushHandler {
	verifyPushAuth := params.Config.Worker != nil && params.Config.Worker.VerifyPushAuth

	return &PushHandler{
		verifyPushAuth: verifyPushAuth,
		validateToken:  idtoken.Validate,
		logger:         params.Logger,
		catalogUC:      params.CatalogUC,
	}
}

// HandlePush handles incoming Pub/Sub push messages.
// 2xx acknowledges the message; 503 asks Pub/Sub to redeliver it.
func (h *PushHandler) HandlePush(c echo.Context) error {
	ctx := c.Request().Context()

	if h.verifyPushAuth {
		if err := h.verifyPushToken(c.Request()); err != nil {
			h.logger.Warn("[Worker] Invalid Pub/Sub token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	var pushMsg pubsub.PushMessage
	if err := c.Bind(&pushMsg); err != nil {
		h.logger.Error("[Worker] Failed to parse push message", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	event, err := pushMsg.DecodeStoreChanged()
	if err != nil {
		h.logger.Error("[Worker] Failed to decode store changed event", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	requestID := h.extractRequestID(ctx, event)
	reqLogger := h.logger.With(slog.String("request_id", requestID))
	ctx = deliverycontext.WithRequestID(ctx, requestID)
	ctx = deliverycontext.WithLogger(ctx, reqLogger)

	storeID, err := uuid.Parse(event.StoreID)
	if err != nil {
		// redelivery cannot fix a bad ID, acknowledge it
		reqLogger.Warn("[Worker] Dropping event with invalid store ID", slog.String("store_id", event.StoreID))

		return c.NoContent(http.StatusOK)
	}

	if err := h.catalogUC.RefreshStore(ctx, storeID); err != nil {
		reqLogger.Error("[Worker] Failed to refresh store",
			slog.String("store_id", event.StoreID),
			slog.String("action", event.Action),
			slog.Any("error", err),
		)

		return c.NoContent(http.StatusServiceUnavailable)
	}

	reqLogger.Info("[Worker] Store refreshed",
		slog.String("store_id", event.StoreID),
		slog.String("action", event.Action),
		slog.String("message_id", pushMsg.Message.MessageID),
	)

	return c.NoContent(http.StatusOK)
}

// extractRequestID prefers the event's ID, then the incoming X-Request-Id, else a new one
func (h *PushHandler) extractRequestID(ctx context.Context, event *service.StoreChangedEvent) string {
	if event.RequestID != "" {
		return event.RequestID
	}

	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		return requestID
	}

	return uuid.NewString()
}

// verifyPushToken verifies the JWT Google attaches to authenticated push requests
// Reference: https://cloud.google.com/pubsub/docs/push#authenticating_standard_push_requests
func (h *PushHandler) verifyPushToken(req *http.Request) error {
	authHeader := req.Header.Get("Authorization")
	if authHeader == "" {
		return errors.New("missing authorization header")
	}

	token, ok := strings.CutPrefix(authHeader, "Bearer ")
	if !ok {
		return errors.New("invalid authorization header format")
	}

	// The audience is this endpoint's URL
	scheme := "https"
	if req.TLS == nil {
		scheme = "http"
	}
	audience := fmt.Sprintf("%s://%s%s", scheme, req.Host, req.URL.Path)

	payload, err := h.validateToken(req.Context(), token, audience)
	if err != nil {
		return errors.Wrap(err, "failed to validate token")
	}

	if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}

	if emailVerified, ok := payload.Claims["email_verified"].(bool); ok && !emailVerified {
		return errors.New("email not verified")
	}

	return nil
}
