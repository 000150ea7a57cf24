package render

import "context"

// Element is a styled node of the page.
type Element interface {
	SetStyle(property, value string) error
	// OffsetHeight reads layout, forcing a synchronous reflow.
	OffsetHeight() (float64, error)
	AddScrollListener(fn func(), passive bool) error
}

// Surface is the page document.
type Surface interface {
	Body() Element
	Query(selector string) (Element, bool)
	// DispatchTouchStart fires a synthetic touchstart at target.
	DispatchTouchStart(target Element) error
}

// Storage is a clearable key/value store such as local or session storage.
type Storage interface {
	Clear() error
}

// LogoutBridge is the native logout helper exposed by the host shell.
type LogoutBridge interface {
	Logout(ctx context.Context) error
}
