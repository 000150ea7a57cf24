package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/slighter12/go-lib/database/postgres"
)

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "100KB"

	defaultGeolocationTimeout    = 10 * time.Second
	defaultGeolocationMaximumAge = 5 * time.Minute
	defaultGeolocationCacheSize  = 10000
	defaultNearbyLimit           = 3
	defaultDataLoadDelay         = 100 * time.Millisecond
	defaultLogoutSettleDelay     = 150 * time.Millisecond
	defaultListContainerSelector = `[data-testid="list-container"]`
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		AutoMigrate bool   `json:"autoMigrate" yaml:"autoMigrate"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int    `json:"port" yaml:"port"`
		MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	// Worker configures the catalog push receiver; disabled when nil or port is zero
	Worker *WorkerConfig `json:"worker" yaml:"worker"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	Auth *AuthConfig `json:"auth" yaml:"auth"`

	// Geolocation configures location resolution and the position lookup fallback
	Geolocation *GeolocationConfig `json:"geolocation" yaml:"geolocation"`

	// Redis backs the position cache; an in-memory cache is used when nil
	Redis *RedisConfig `json:"redis" yaml:"redis"`

	Ranking *RankingConfig `json:"ranking" yaml:"ranking"`

	// WebView configures the render/timing coordinator hints
	WebView *WebViewConfig `json:"webview" yaml:"webview"`

	// QRCode configuration for store ordering QR codes
	QRCode *QRCodeConfig `json:"qrcode" yaml:"qrcode"`

	// PubSub configuration for catalog change events
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// WorkerConfig defines the catalog push receiver server
type WorkerConfig struct {
	Port int `json:"port" yaml:"port"`
	// Verify Google-signed push tokens on incoming push requests
	VerifyPushAuth bool `json:"verifyPushAuth" yaml:"verifyPushAuth"`
}

// AuthConfig defines how store owner tokens are verified
type AuthConfig struct {
	// Provider is "firebase" or "jwt"
	Provider string `json:"provider" yaml:"provider"`

	// Firebase service account credentials file (firebase provider)
	CredentialsPath string `json:"credentialsPath" yaml:"credentialsPath"`
	ProjectID       string `json:"projectId" yaml:"projectId"`

	// HMAC secret (jwt provider)
	Secret string `json:"secret" yaml:"secret"`

	// OwnerRole, when set, is required on tokens calling the owner API
	OwnerRole string `json:"ownerRole" yaml:"ownerRole"`
}

// GeolocationConfig defines location resolution options
type GeolocationConfig struct {
	// Lookup endpoint template, {ip} is replaced with the client address.
	// The fallback lookup is disabled when empty.
	LookupURL string `json:"lookupUrl" yaml:"lookupUrl"`

	Timeout            time.Duration `json:"timeout" yaml:"timeout"`
	MaximumAge         time.Duration `json:"maximumAge" yaml:"maximumAge"`
	// High accuracy is requested unless explicitly set to false
	EnableHighAccuracy *bool `json:"enableHighAccuracy" yaml:"enableHighAccuracy"`

	// Entries kept by the in-memory position cache
	CacheSize int `json:"cacheSize" yaml:"cacheSize"`
}

// RedisConfig defines the Redis connection for the position cache
type RedisConfig struct {
	Addr     string `json:"addr" yaml:"addr"`
	Password string `json:"password" yaml:"password"`
	DB       int    `json:"db" yaml:"db"`
	Prefix   string `json:"prefix" yaml:"prefix"`
}

// RankingConfig defines store ranking defaults
type RankingConfig struct {
	NearbyLimit int     `json:"nearbyLimit" yaml:"nearbyLimit"`
	MaxRadiusKm float64 `json:"maxRadiusKm" yaml:"maxRadiusKm"`
}

// WebViewConfig defines render/timing coordinator settings
type WebViewConfig struct {
	DataLoadDelay         time.Duration `json:"dataLoadDelay" yaml:"dataLoadDelay"`
	LogoutSettleDelay     time.Duration `json:"logoutSettleDelay" yaml:"logoutSettleDelay"`
	ListContainerSelector string        `json:"listContainerSelector" yaml:"listContainerSelector"`
}

// QRCodeConfig defines QR code generation configuration
type QRCodeConfig struct {
	Size                 int    `json:"size" yaml:"size"`
	ErrorCorrectionLevel string `json:"errorCorrectionLevel" yaml:"errorCorrectionLevel"`
	BaseURL              string `json:"baseUrl" yaml:"baseUrl"`
}

// PubSubConfig defines Pub/Sub configuration for event publishing
type PubSubConfig struct {
	// Provider type: "local" for local HTTP or "google" for Google Pub/Sub
	Provider string `json:"provider" yaml:"provider"`

	// Google Cloud project ID (for google provider)
	ProjectID string `json:"projectId" yaml:"projectId"`

	// Pub/Sub topic ID (for google provider)
	TopicID string `json:"topicId" yaml:"topicId"`

	// Local HTTP endpoint for development (for local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	// Build list of paths to search for config file
	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			abs := filepath.Join(pwd, path)
			searchPaths = append(searchPaths, abs)
		}
	}

	// Try to find and load the config file
	var configFile string
	var found bool
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate
			found = true

			break
		}
	}

	if !found {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	// Load YAML config file
	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// Load environment variables
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// Convert ENV_VAR_NAME to path and align each segment with existing YAML keys.
			// Example: POSTGRES_SSLMODE -> postgres.sslMode (not postgres.sslmode)
			key := canonicalizeEnvKey(k, existingConfigMap)

			return key, v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	// Unmarshal into the config struct (case-insensitive to match env vars)
	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				// Case-insensitive matching for env var overrides
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	applyDefaults(cfg)

	// Build replicas from environment variables (POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, etc.)
	if cfg.Postgres != nil {
		cfg.Postgres.Replicas = buildReplicasFromEnv()
	}

	return cfg, nil
}

// applyDefaults fills optional sections so consumers never see nil
func applyDefaults(cfg *Config) {
	if cfg.Geolocation == nil {
		cfg.Geolocation = &GeolocationConfig{}
	}
	if cfg.Geolocation.EnableHighAccuracy == nil {
		highAccuracy := true
		cfg.Geolocation.EnableHighAccuracy = &highAccuracy
	}
	if cfg.Geolocation.CacheSize <= 0 {
		cfg.Geolocation.CacheSize = defaultGeolocationCacheSize
	}
	if cfg.Geolocation.Timeout <= 0 {
		cfg.Geolocation.Timeout = defaultGeolocationTimeout
	}
	if cfg.Geolocation.MaximumAge <= 0 {
		cfg.Geolocation.MaximumAge = defaultGeolocationMaximumAge
	}

	if cfg.Ranking == nil {
		cfg.Ranking = &RankingConfig{}
	}
	if cfg.Ranking.NearbyLimit <= 0 {
		cfg.Ranking.NearbyLimit = defaultNearbyLimit
	}

	if cfg.WebView == nil {
		cfg.WebView = &WebViewConfig{}
	}
	if cfg.WebView.DataLoadDelay <= 0 {
		cfg.WebView.DataLoadDelay = defaultDataLoadDelay
	}
	if cfg.WebView.LogoutSettleDelay <= 0 {
		cfg.WebView.LogoutSettleDelay = defaultLogoutSettleDelay
	}
	if strings.TrimSpace(cfg.WebView.ListContainerSelector) == "" {
		cfg.WebView.ListContainerSelector = defaultListContainerSelector
	}
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		if matched, next, ok := findExistingSegment(current, segment); ok {
			canonical = append(canonical, matched)
			current = next
		} else {
			canonical = append(canonical, segment)
			current = nil
		}
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (matched string, next map[string]any, ok bool) {
	if len(current) == 0 {
		return "", nil, false
	}

	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) != needle {
			continue
		}

		child, _ := value.(map[string]any)

		return key, child, true
	}

	return "", nil, false
}

func normalizeToken(s string) string {
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		normalized.WriteRune(unicode.ToLower(r))
	}

	return normalized.String()
}

// buildReplicasFromEnv builds the replicas slice from environment variables.
// Environment variable format: POSTGRES_REPLICAS_{index}_{field}
// Example: POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, POSTGRES_REPLICAS_0_USERNAME, POSTGRES_REPLICAS_0_PASSWORD
func buildReplicasFromEnv() []postgres.ConnectionConfig {
	var replicas []postgres.ConnectionConfig

	for i := 0; ; i++ {
		prefix := "POSTGRES_REPLICAS_" + strconv.Itoa(i) + "_"

		host := os.Getenv(prefix + "HOST")
		port := os.Getenv(prefix + "PORT")
		if host == "" || port == "" {
			// No more replicas or incomplete configuration.
			break
		}

		replica := postgres.ConnectionConfig{
			Host:     host,
			Port:     port,
			UserName: os.Getenv(prefix + "USERNAME"),
			Password: os.Getenv(prefix + "PASSWORD"),
		}

		replicas = append(replicas, replica)
	}

	return replicas
}
