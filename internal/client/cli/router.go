package cli

import (
	"context"
	"fmt"

	"playcenter-console/internal/logging"
)

// Page names. Registration and navigation use these keys.
const (
	PageDashboard = "dashboard"
	PageWalkins   = "walkins"
	PageParties   = "parties"
	PagePackages  = "packages"
	PageUsers     = "users"
	PageReports   = "reports"
	PageBackup    = "backup"
)

// PageLoader fetches a page's data and renders it.
type PageLoader func(ctx context.Context) error

// Router dispatches page navigation and owns the reload-after-mutation
// contract. Navigation always invokes the loader, even when the target is
// already the current page, so revisiting a page never shows stale rows.
type Router struct {
	log     logging.Logger
	pages   map[string]PageLoader
	current string

	// nav, when set, renders the navigation bar before a page loads.
	nav func(current string)
}

func NewRouter(log logging.Logger) *Router {
	return &Router{log: log, pages: make(map[string]PageLoader)}
}

func (r *Router) Register(name string, loader PageLoader) {
	r.pages[name] = loader
}

// Current returns the name of the page on screen, or "" before the first
// navigation.
func (r *Router) Current() string {
	return r.current
}

// NavigateTo switches to the named page and invokes its loader. The page
// becomes current even when the loader fails, so a retry stays on the page
// the user asked for.
func (r *Router) NavigateTo(ctx context.Context, name string) error {
	loader, ok := r.pages[name]
	if !ok {
		return fmt.Errorf("unknown page %q", name)
	}

	r.current = name
	r.log.Debug(ctx, "navigating", "page", name)
	if r.nav != nil {
		r.nav(name)
	}
	return loader(ctx)
}

// affectsDashboard reports whether mutations on the page change numbers the
// dashboard shows. Walk-ins and parties feed its widgets; packages, users
// and backups do not.
func affectsDashboard(page string) bool {
	return page == PageWalkins || page == PageParties
}

// RefreshAfterMutation reloads the page a mutation originated from, and the
// dashboard as well when the mutation affects it. The dashboard reloads
// first so the origin list ends up on screen; the origin page stays current.
func (r *Router) RefreshAfterMutation(ctx context.Context, origin string) error {
	if affectsDashboard(origin) {
		if loader, ok := r.pages[PageDashboard]; ok {
			if err := loader(ctx); err != nil {
				r.log.Warn(ctx, "dashboard refresh failed", "error", err)
			}
		}
	}
	return r.NavigateTo(ctx, origin)
}
