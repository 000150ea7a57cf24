// Package webview classifies whether a page runs inside a native app's
// embedded WebView rather than a normal browser tab.
package webview

import (
	"net/http"
	"net/url"
	"strings"
	"unicode"

	"storefront/internal/domain/constants"
)

// ProtocolFile is the page protocol of locally bundled WebView content.
const ProtocolFile = "file:"

// userAgentKeywords are matched against whole user-agent tokens.
var userAgentKeywords = map[string]struct{}{
	"wv":           {},
	"webview":      {},
	"app":          {},
	"flutter":      {},
	"react-native": {},
	"cordova":      {},
	"phonegap":     {},
}

// Signals are the runtime facts the classification is derived from.
type Signals struct {
	UserAgent  string `json:"user_agent"`
	HasBridge  bool   `json:"has_bridge"` // a native bridge/helper object is present
	Protocol   string `json:"protocol"`   // page protocol including the colon, e.g. "https:"
	Standalone bool   `json:"standalone"` // standalone display mode flag
}

// Detector classifies a runtime. It is a strategy so callers and tests can force either branch.
type Detector func(Signals) bool

// IsWebView is the default Detector. Any single positive signal wins.
// It is a heuristic: false positives and negatives are accepted.
func IsWebView(signals Signals) bool {
	if signals.HasBridge || signals.Standalone {
		return true
	}
	if strings.EqualFold(signals.Protocol, ProtocolFile) {
		return true
	}

	return hasKeyword(signals.UserAgent)
}

// Always and Never are fixed detectors.
func Always(Signals) bool { return true }
func Never(Signals) bool  { return false }

// SignalsFromRequest derives signals from a request made by the page.
func SignalsFromRequest(r *http.Request) Signals {
	signals := Signals{
		UserAgent:  r.UserAgent(),
		HasBridge:  r.Header.Get(constants.HeaderNativeBridge) != "",
		Protocol:   originProtocol(r.Header.Get("Origin")),
		Standalone: strings.EqualFold(r.Header.Get(constants.HeaderDisplayMode), "standalone"),
	}
	if r.URL != nil && strings.EqualFold(r.URL.Query().Get("display"), "standalone") {
		signals.Standalone = true
	}

	return signals
}

// hasKeyword tokenizes the lower-cased UA so "app" does not match "applewebkit".
func hasKeyword(userAgent string) bool {
	tokens := strings.FieldsFunc(strings.ToLower(userAgent), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '-'
	})
	for _, token := range tokens {
		if _, ok := userAgentKeywords[token]; ok {
			return true
		}
	}

	return false
}

func originProtocol(origin string) string {
	if origin == "" {
		return ""
	}

	parsed, err := url.Parse(origin)
	if err != nil || parsed.Scheme == "" {
		return ""
	}

	return strings.ToLower(parsed.Scheme) + ":"
}
