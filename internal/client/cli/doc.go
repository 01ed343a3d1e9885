// Package cli provides the interactive play-center console client.
//
// It wires configuration, the persisted session, API services, and an
// interactive REPL organized around pages: dashboard, walk-ins, parties,
// packages, reports, and (for administrators) users and backup. Typical
// flow: restore or prompt for credentials, land on the dashboard, and
// navigate pages by name.
//
// Key features:
//   - Login / Logout with a persisted bearer token
//   - Walk-in check-in, checkout, editing, and debounced live search
//   - Party bookings with a 12-hour time picker
//   - Multi-visit packages with visit redemption
//   - Monthly reports with walk-in and party summaries
//   - Database backup management (admin only)
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// After any successful mutation the originating list reloads, and the
// dashboard reloads as well when walk-ins or parties changed.
package cli
