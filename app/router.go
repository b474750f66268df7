package app

import (
	"sync"
)

// Screen is the single source of truth for what is currently shown.
type Screen string

const (
	ScreenLoading          Screen = "loading"
	ScreenLogin            Screen = "login"
	ScreenRegister         Screen = "register"
	ScreenHome             Screen = "home"
	ScreenProfile          Screen = "profile"
	ScreenBookingRequest   Screen = "bookingRequest"
	ScreenServiceDocuments Screen = "serviceDocuments"
)

// Router holds the current screen and its transition rules. Navigation is
// purely in-memory: no history stack, no URL sync. Session pushes go through
// the same transition function as explicit navigation.
type Router struct {
	mu sync.Mutex

	gateway Gateway
	screen  Screen

	// Motorcycle selected for the service documents screen; cleared when
	// navigating back to the profile.
	selectedMotorcycleID string

	unsubscribe func()
}

func NewRouter(gateway Gateway) *Router {
	return &Router{
		gateway: gateway,
		screen:  ScreenLoading,
	}
}

// Boot resolves the transient loading state: home when a session exists,
// login otherwise. A failed session check counts as signed out.
func (r *Router) Boot() {
	session, err := r.gateway.Session()
	if err != nil || session == nil {
		r.navigate(ScreenLogin)
		return
	}
	r.navigate(ScreenHome)
}

// Mount registers for session pushes. Call Unmount when the router goes away.
func (r *Router) Mount(notifier AuthNotifier) {
	r.unsubscribe = notifier.Subscribe(func(event AuthEvent) {
		switch event {
		case SignedIn:
			r.navigate(ScreenHome)
		case SignedOut:
			r.navigate(ScreenLogin)
		}
	})
}

func (r *Router) Unmount() {
	if r.unsubscribe != nil {
		r.unsubscribe()
		r.unsubscribe = nil
	}
}

// Screen returns the currently shown screen.
func (r *Router) Screen() Screen {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.screen
}

// SelectedMotorcycleID returns the motorcycle the service documents screen
// is showing, empty elsewhere.
func (r *Router) SelectedMotorcycleID() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.selectedMotorcycleID
}

// ShowLogin, ShowRegister, ShowHome, ShowProfile and ShowBookingRequest are
// the explicit navigation entry points.
func (r *Router) ShowLogin() Screen { return r.navigate(ScreenLogin) }

func (r *Router) ShowRegister() Screen { return r.navigate(ScreenRegister) }

func (r *Router) ShowHome() Screen { return r.navigate(ScreenHome) }

func (r *Router) ShowProfile() Screen { return r.navigate(ScreenProfile) }

func (r *Router) ShowBookingRequest() Screen { return r.navigate(ScreenBookingRequest) }

// OpenServiceDocuments shows the documents screen for one motorcycle.
func (r *Router) OpenServiceDocuments(motorcycleID string) Screen {
	r.mu.Lock()
	r.selectedMotorcycleID = motorcycleID
	r.mu.Unlock()
	return r.navigate(ScreenServiceDocuments)
}

// Back returns from the service documents screen to the profile, clearing
// the selected motorcycle. On any other screen it is a no-op.
func (r *Router) Back() Screen {
	r.mu.Lock()
	if r.screen != ScreenServiceDocuments {
		current := r.screen
		r.mu.Unlock()
		return current
	}
	r.selectedMotorcycleID = ""
	r.mu.Unlock()
	return r.navigate(ScreenProfile)
}

// navigate is the single transition function: every screen change, explicit
// or pushed, lands here.
func (r *Router) navigate(target Screen) Screen {
	r.mu.Lock()
	defer r.mu.Unlock()
	if target != ScreenServiceDocuments {
		r.selectedMotorcycleID = ""
	}
	r.screen = target
	return r.screen
}
