// Package app is the headless application core a frontend embeds: screen
// routing, form lifecycle, directory filtering and login prefs, all driven
// through a Gateway so the rendering layer stays a pure function of state.
package app

import (
	"motogarage-api/models"
)

// Session identifies the authenticated rider.
type Session struct {
	UserID string
	Email  string
}

// AuthEvent is a push-style session change delivered outside the normal
// request/response cycle.
type AuthEvent int

const (
	SignedIn AuthEvent = iota
	SignedOut
)

// Gateway is the backend surface the application core talks to: one call per
// user action, no retries, no batching.
type Gateway interface {
	SignIn(email, password string) (*Session, error)
	SignUp(fullName, email, password string) (*Session, error)
	SignOut() error
	// Session returns the current session, or nil when unauthenticated.
	Session() (*Session, error)

	ListShops(filters models.ShopFilters, page int) ([]models.Shop, error)
	ShopStats() (*models.ShopStats, error)
	Countries() ([]string, error)
	Cities(country string) ([]string, error)
}

// AuthNotifier pushes session changes to subscribers. Subscribe returns the
// matching unsubscribe, called on unmount.
type AuthNotifier interface {
	Subscribe(fn func(AuthEvent)) (unsubscribe func())
}
