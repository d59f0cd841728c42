// Package store holds the client-side snapshots of backend state. Stores are
// never written to directly by the view layer: every mutation round-trips
// through the backend and concludes with a full refresh of the owning store,
// so the client cannot drift from server truth.
package store

import "context"

// Notifier delivers a human-readable notice to the user. Store operations
// report failures through it and otherwise swallow them: no retries, no
// rollback, the last-known-good snapshot stays in place.
type Notifier func(message string)

// NopNotifier discards all notices.
func NopNotifier(string) {}

// mutateThenReload runs a mutation against the backend and, on success,
// unconditionally reloads the owning store's snapshot. The reload happens
// regardless of what the mutation's response body contained; its result is
// deliberately ignored because the refresh already reported any failure.
func mutateThenReload(ctx context.Context, mutate func(context.Context) error, reload func(context.Context) error) error {
	if err := mutate(ctx); err != nil {
		return err
	}
	_ = reload(ctx)
	return nil
}
