package repository

import (
	"context"

	"lokapasar/internal/domain/entity"
)

// CatalogProvider fetches the authoritative product list from the remote
// catalog service. A failed fetch is recovered by the caller with the local
// fallback dataset; implementations must not retry on their own.
type CatalogProvider interface {
	FetchCatalog(ctx context.Context) ([]entity.RawProduct, error)
}
