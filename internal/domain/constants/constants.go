package constants

// Environments
const (
	EnvDevelop    = "develop"
	EnvProduction = "production"
)

// Pub/Sub providers
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Token verification providers
const (
	AuthProviderFirebase = "firebase"
	AuthProviderJWT      = "jwt"
)

// Location query parameters set by the native shell
const (
	QueryLocationPermission = "locationPermission"
	QueryLatitude           = "lat"
	QueryLongitude          = "lng"
)

// Headers injected by the native shell into WebView requests
const (
	HeaderNativeBridge       = "X-Native-Bridge"
	HeaderLocationPermission = "X-Location-Permission"
	HeaderBridgeLatitude     = "X-Bridge-Latitude"
	HeaderBridgeLongitude    = "X-Bridge-Longitude"
	HeaderDisplayMode        = "X-Display-Mode"
	HeaderWebView            = "X-WebView"
)
