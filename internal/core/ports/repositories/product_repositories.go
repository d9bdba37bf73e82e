package repositories

import (
	"context"

	"github.com/dejmenek/pms-backend/internal/core/domain"
	"github.com/dejmenek/pms-backend/internal/utils/pagination"
)

// ProductRepository defines the persistence operations for products.
// Implementations signal a missing product with apperrors.ErrNotFound; other
// failures are returned wrapped and mapped by the service layer.
type ProductRepository interface {
	// GetProducts returns one page of products matching the search term,
	// ordered by the given column and direction.
	GetProducts(ctx context.Context, page int, search string, perPage pagination.PageSize, sortColumn domain.ProductSortColumn, sortDirection pagination.SortDirection) (pagination.Paged[domain.Product], error)

	// CountProducts returns the total number of products.
	CountProducts(ctx context.Context) (int, error)

	// RemoveProducts deletes the given ids in one statement; ids that do not
	// exist are silently skipped.
	RemoveProducts(ctx context.Context, productIDs []int64) error

	// RemoveProduct deletes a single product by id.
	RemoveProduct(ctx context.Context, productID int64) error

	// AddLaptop persists a new laptop and returns it with the generated id.
	AddLaptop(ctx context.Context, laptop domain.Product) (domain.Product, error)

	// AddDesktop persists a new desktop and returns it with the generated id.
	AddDesktop(ctx context.Context, desktop domain.Product) (domain.Product, error)

	// FindProductByID returns the product or apperrors.ErrNotFound.
	FindProductByID(ctx context.Context, productID int64) (domain.Product, error)

	// UpdateProduct replaces the full record of an existing product.
	UpdateProduct(ctx context.Context, product domain.Product) error
}
