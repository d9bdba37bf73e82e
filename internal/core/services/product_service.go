package services

import (
	"context"
	"errors"
	"log/slog"

	"github.com/dejmenek/pms-backend/internal/apperrors"
	"github.com/dejmenek/pms-backend/internal/core/domain"
	portsrepo "github.com/dejmenek/pms-backend/internal/core/ports/repositories"
	portssvc "github.com/dejmenek/pms-backend/internal/core/ports/services"
	"github.com/dejmenek/pms-backend/internal/dto"
	"github.com/dejmenek/pms-backend/internal/platform/cache"
	"github.com/dejmenek/pms-backend/internal/utils/pagination"
	"github.com/dejmenek/pms-backend/internal/validation"
)

// productServiceImpl orchestrates validation, repository access, and cache
// coordination for the product catalog.
type productServiceImpl struct {
	BaseService
	productRepo portsrepo.ProductRepository
	validator   *validation.Validator
	cache       cache.Store[domain.Product]
}

// NewProductService creates the product service.
func NewProductService(repo portsrepo.ProductRepository, validator *validation.Validator, productCache cache.Store[domain.Product]) portssvc.ProductSvcFacade {
	return &productServiceImpl{
		productRepo: repo,
		validator:   validator,
		cache:       productCache,
	}
}

// Ensure productServiceImpl implements the ProductSvcFacade interface
var _ portssvc.ProductSvcFacade = (*productServiceImpl)(nil)

func (s *productServiceImpl) GetProducts(ctx context.Context, req dto.GetProductsRequest) (pagination.Paged[dto.ProductResponse], error) {
	s.LogInfo(ctx, "Getting products",
		slog.String("search", req.Search),
		slog.Int("page", req.Page),
		slog.Int("per_page", int(req.PerPage)),
		slog.String("sort_column", string(req.SortColumn)),
		slog.String("sort_direction", string(req.SortDirection)))

	if req.Page < 1 {
		s.LogWarn(ctx, "Rejecting non-positive page", slog.Int("page", req.Page))
		return pagination.Paged[dto.ProductResponse]{}, domain.ProductErrors.InvalidPage
	}

	if req.SortColumn == "" {
		req.SortColumn = domain.SortByName
	}
	if req.SortDirection == "" {
		req.SortDirection = pagination.Ascending
	}

	if verr := s.validator.Validate(&req); verr != nil {
		s.LogWarn(ctx, "Validation failed for GetProductsRequest", slog.String("error", verr.Error()))
		return pagination.Paged[dto.ProductResponse]{}, verr
	}

	products, err := s.productRepo.GetProducts(ctx, req.Page, req.Search, req.PerPage, req.SortColumn, req.SortDirection)
	if err != nil {
		s.LogError(ctx, err, "Failed to get products", slog.Int("page", req.Page))
		return pagination.Paged[dto.ProductResponse]{}, domain.ProductErrors.GetProductsFailed
	}

	responses := pagination.MapPaged(products, dto.ToProductResponse)
	s.LogInfo(ctx, "Retrieved products", slog.Int("total_count", responses.TotalCount), slog.Int("page", req.Page))
	return responses, nil
}

func (s *productServiceImpl) GetProductsCount(ctx context.Context) (int, error) {
	count, err := s.productRepo.CountProducts(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to count products")
		return 0, domain.ProductErrors.GetProductsCountFailed
	}
	s.LogDebug(ctx, "Total products count", slog.Int("count", count))
	return count, nil
}

func (s *productServiceImpl) RemoveProducts(ctx context.Context, productIDs []int64) error {
	s.LogInfo(ctx, "Removing products", slog.Int("count", len(productIDs)))

	if err := s.productRepo.RemoveProducts(ctx, productIDs); err != nil {
		s.LogError(ctx, err, "Failed to remove products")
		return domain.ProductErrors.RemoveProductsFailed
	}

	for _, productID := range productIDs {
		s.cache.Delete(cache.ProductKey(productID))
	}
	s.LogInfo(ctx, "Removed products successfully", slog.Int("count", len(productIDs)))
	return nil
}

func (s *productServiceImpl) RemoveSingleProduct(ctx context.Context, productID int64) error {
	s.LogInfo(ctx, "Removing single product", slog.Int64("product_id", productID))

	if err := s.productRepo.RemoveProduct(ctx, productID); err != nil {
		s.LogError(ctx, err, "Failed to remove product", slog.Int64("product_id", productID))
		return domain.ProductErrors.RemoveSingleProductFailed
	}

	s.cache.Delete(cache.ProductKey(productID))
	s.LogInfo(ctx, "Removed product successfully", slog.Int64("product_id", productID))
	return nil
}

func (s *productServiceImpl) CreateLaptop(ctx context.Context, req dto.LaptopRequest) error {
	s.LogInfo(ctx, "Attempting to create laptop", slog.String("name", req.Name))

	if verr := s.validator.Validate(&req); verr != nil {
		s.LogWarn(ctx, "Laptop request validation failed", slog.String("error", verr.Error()))
		return verr
	}

	laptop, err := req.ToLaptop()
	if err != nil {
		// A request that passed validation cannot produce invalid value
		// objects; reaching this means the rule set and constructors diverged.
		s.LogError(ctx, err, "Failed to build laptop entity", slog.String("name", req.Name))
		return domain.ProductErrors.CreateLaptopFailed
	}

	if _, err := s.productRepo.AddLaptop(ctx, laptop); err != nil {
		s.LogError(ctx, err, "Failed to create laptop", slog.String("name", req.Name))
		return domain.ProductErrors.CreateLaptopFailed
	}

	s.LogInfo(ctx, "Laptop created successfully", slog.String("name", req.Name))
	return nil
}

func (s *productServiceImpl) CreateDesktop(ctx context.Context, req dto.DesktopRequest) error {
	s.LogInfo(ctx, "Attempting to create desktop", slog.String("name", req.Name))

	if verr := s.validator.Validate(&req); verr != nil {
		s.LogWarn(ctx, "Desktop request validation failed", slog.String("error", verr.Error()))
		return verr
	}

	desktop, err := req.ToDesktop()
	if err != nil {
		s.LogError(ctx, err, "Failed to build desktop entity", slog.String("name", req.Name))
		return domain.ProductErrors.CreateDesktopFailed
	}

	if _, err := s.productRepo.AddDesktop(ctx, desktop); err != nil {
		s.LogError(ctx, err, "Failed to create desktop", slog.String("name", req.Name))
		return domain.ProductErrors.CreateDesktopFailed
	}

	s.LogInfo(ctx, "Desktop created successfully", slog.String("name", req.Name))
	return nil
}

func (s *productServiceImpl) GetProductByID(ctx context.Context, productID int64) (domain.Product, error) {
	s.LogInfo(ctx, "Getting product by id", slog.Int64("product_id", productID))

	cacheKey := cache.ProductKey(productID)
	if cached, ok := s.cache.Get(cacheKey); ok {
		s.LogInfo(ctx, "Product retrieved from cache", slog.Int64("product_id", productID))
		return cached, nil
	}

	product, err := s.productRepo.FindProductByID(ctx, productID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			s.LogWarn(ctx, "Product not found", slog.Int64("product_id", productID))
			return domain.Product{}, domain.ProductErrors.ProductNotFound
		}
		s.LogError(ctx, err, "Failed to get product", slog.Int64("product_id", productID))
		return domain.Product{}, domain.ProductErrors.GetProductsFailed
	}

	s.cache.Set(cacheKey, product)
	s.LogInfo(ctx, "Product found", slog.Int64("product_id", productID))
	return product, nil
}

func (s *productServiceImpl) UpdateProduct(ctx context.Context, req dto.ProductRequest, productID int64) error {
	s.LogInfo(ctx, "Updating product", slog.Int64("product_id", productID))

	var (
		product domain.Product
		err     error
	)
	switch r := req.(type) {
	case *dto.LaptopRequest:
		product, err = r.ToLaptop()
	case *dto.DesktopRequest:
		product, err = r.ToDesktop()
	default:
		s.LogWarn(ctx, "Invalid product type for update", slog.Int64("product_id", productID))
		return domain.ProductErrors.InvalidProductType
	}
	if err != nil {
		s.LogError(ctx, err, "Failed to build product entity for update", slog.Int64("product_id", productID))
		return domain.ProductErrors.UpdateProductFailed
	}

	product.ID = productID
	if err := s.productRepo.UpdateProduct(ctx, product); err != nil {
		s.LogError(ctx, err, "Failed to update product", slog.Int64("product_id", productID))
		return domain.ProductErrors.UpdateProductFailed
	}

	s.cache.Delete(cache.ProductKey(productID))
	s.LogInfo(ctx, "Product updated successfully", slog.Int64("product_id", productID))
	return nil
}
