// Package ports defines interfaces (ports) that connect the core domain to
// infrastructure. Implementations (adapters) live in src/infra/repo, which
// keeps the core free of any dependency on a concrete backend.
package ports

import (
	"context"
	"time"

	"pressroom/src/core/domain"
)

// Record is implemented by pointers to domain entities so generic stores
// can address, stamp, and touch records uniformly.
type Record interface {
	EntityID() string
	SetIdentity(id string, now time.Time)
	Touch(now time.Time)
}

// Page bundles one page of entities with its pagination metadata.
// Meta.Total counts the whole filtered set, independent of page and limit.
type Page[E any] struct {
	Data []E
	Meta domain.PageMeta
}

// Repository is the generic CRUD contract every entity store implements.
//
// Absence is a value, not an error: Get, Update, and Delete return
// (nil, nil) when no record matches, including syntactically invalid
// identifiers. The caller decides whether absence escalates to a NotFound
// domain error. Backend failures other than "no rows" and uniqueness
// violations surface as SystemFault domain errors.
type Repository[E any] interface {
	// List applies the filter, sorts (default: createdAt descending),
	// and returns the requested page with metadata computed over the
	// filtered set.
	List(ctx context.Context, filter domain.Filter, page domain.PageRequest) (*Page[E], error)

	// Get returns the record with the given id, or nil when absent.
	Get(ctx context.Context, id string) (*E, error)

	// Create persists a new record, assigning its identifier and
	// timestamps. A uniqueness violation raises a Validation error whose
	// details name the offending field.
	Create(ctx context.Context, entity E) (*E, error)

	// Update merges the patch into the record and refreshes updatedAt.
	// Returns nil when absent.
	Update(ctx context.Context, id string, patch domain.Patch) (*E, error)

	// Delete removes the record and returns it for observability, or nil
	// when absent.
	Delete(ctx context.Context, id string) (*E, error)
}

// HealthChecker reports whether the backing storage is reachable.
type HealthChecker interface {
	Health(ctx context.Context) error
}

// Stores bundles the per-entity repositories handed to the use cases.
type Stores struct {
	Articles Repository[domain.Article]
	Users    Repository[domain.User]
	Comments Repository[domain.Comment]
	Health   HealthChecker
}
