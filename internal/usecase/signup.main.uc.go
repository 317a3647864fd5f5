package usecase

import (
	"context"
	"log"
)

// Collection holding profile documents.
const usersCollection = "users"

// DocumentStore is the remote record store consulted for uniqueness and
// written to during provisioning.
type DocumentStore interface {
	// QueryByField reports whether no record in the collection holds the value.
	QueryByField(ctx context.Context, collection, field, value string) (bool, error)
	WriteDocument(ctx context.Context, collection, id string, fields map[string]any) error
}

// IdentityProvider creates login credentials and returns their generated id.
type IdentityProvider interface {
	CreateCredential(ctx context.Context, email, password string) (string, error)
}

// Navigator receives the screen-change signal on successful registration.
type Navigator interface {
	Navigate(route string)
}

// Notifier receives short-lived user-facing status text. Fire and forget.
type Notifier interface {
	Notify(text string)
}

// checkAvailability asks the store whether a field value is free. An error from
// the store is treated as not available: an unverifiable value must not pass.
func checkAvailability(ctx context.Context, store DocumentStore, field, value string) bool {
	empty, err := store.QueryByField(ctx, usersCollection, field, value)
	if err != nil {
		log.Printf("[WARN] %s availability check failed: %v", field, err)
		return false
	}
	return empty
}
