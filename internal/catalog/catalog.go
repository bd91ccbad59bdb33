// Package catalog supplies the live opportunity catalog consumed by the
// match endpoint when a request carries no opportunities of its own.
// It is a read-only collaborator: the decision core never writes to it.
package catalog

import (
	"context"

	"unibridge.app/compass/internal/model"
)

// Source yields the active (not yet expired) opportunity catalog,
// nearest deadline first.
type Source interface {
	Active(ctx context.Context) ([]model.Opportunity, error)
}
