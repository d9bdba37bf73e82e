package services

import (
	"context"

	"github.com/dejmenek/pms-backend/internal/core/domain"
	"github.com/dejmenek/pms-backend/internal/dto"
	"github.com/dejmenek/pms-backend/internal/utils/pagination"
)

// ProductSvcFacade is the service contract for the product catalog. Every
// method returns either a value or a *apperrors.Error with a stable code.
type ProductSvcFacade interface {
	GetProducts(ctx context.Context, req dto.GetProductsRequest) (pagination.Paged[dto.ProductResponse], error)
	GetProductsCount(ctx context.Context) (int, error)
	RemoveProducts(ctx context.Context, productIDs []int64) error
	RemoveSingleProduct(ctx context.Context, productID int64) error
	CreateLaptop(ctx context.Context, req dto.LaptopRequest) error
	CreateDesktop(ctx context.Context, req dto.DesktopRequest) error
	GetProductByID(ctx context.Context, productID int64) (domain.Product, error)
	UpdateProduct(ctx context.Context, req dto.ProductRequest, productID int64) error
}
