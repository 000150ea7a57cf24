// Package geolocation implements the position lookup fallback used when
// neither the native shell nor the page URL supplies a location.
package geolocation

import (
	"context"
	"encoding/json"
	"log/slog"
	"math"
	"net/http"
	"net/url"
	"strings"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"

	"github.com/pkg/errors"
)

const ipPlaceholder = "{ip}"

// lookupResponse accepts the field spellings of the common IP geolocation APIs
type lookupResponse struct {
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
	Lat       *float64 `json:"lat"`
	Lon       *float64 `json:"lon"`
	Error     bool     `json:"error"`
	Reason    string   `json:"reason"`
}

func (r *lookupResponse) location() (*entity.Location, bool) {
	lat, lng := r.Latitude, r.Longitude
	if lat == nil || lng == nil {
		lat, lng = r.Lat, r.Lon
	}
	if lat == nil || lng == nil {
		return nil, false
	}
	if math.IsNaN(*lat) || math.IsNaN(*lng) || math.IsInf(*lat, 0) || math.IsInf(*lng, 0) {
		return nil, false
	}

	return &entity.Location{Latitude: *lat, Longitude: *lng}, true
}

type ipLookup struct {
	urlTemplate string
	httpClient  *http.Client
	logger      *slog.Logger
}

// NewIPLookup returns a Geolocator that queries an HTTP endpoint built from
// urlTemplate, where {ip} is replaced with the escaped client address.
func NewIPLookup(urlTemplate string, httpClient *http.Client, logger *slog.Logger) (service.Geolocator, error) {
	if !strings.Contains(urlTemplate, ipPlaceholder) {
		return nil, errors.Errorf("lookup url %q has no %s placeholder", urlTemplate, ipPlaceholder)
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	return &ipLookup{urlTemplate: urlTemplate, httpClient: httpClient, logger: logger}, nil
}

func (g *ipLookup) CurrentPosition(ctx context.Context, client string, opts entity.PositionOptions) (*entity.Location, error) {
	if client == "" {
		return nil, errors.New("client address is required")
	}

	if opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.Timeout)
		defer cancel()
	}

	endpoint := strings.ReplaceAll(g.urlTemplate, ipPlaceholder, url.PathEscape(client))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, http.NoBody)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "position lookup request")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Errorf("position lookup returned status %d", resp.StatusCode)
	}

	var body lookupResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, errors.Wrap(err, "decode position lookup response")
	}
	if body.Error {
		return nil, errors.Errorf("position lookup failed: %s", body.Reason)
	}

	location, ok := body.location()
	if !ok {
		return nil, errors.New("position lookup returned no usable coordinates")
	}

	g.logger.DebugContext(ctx, "[Geolocation] Position lookup succeeded",
		slog.String("client", client),
		slog.Bool("high_accuracy", opts.EnableHighAccuracy),
	)

	return location, nil
}
