package domain

import "github.com/dejmenek/pms-backend/internal/apperrors"

// ProductErrors is the catalog of stable errors the product service returns.
// Codes are contractual: callers map them to field-level messages.
var ProductErrors = struct {
	ProductNotFound           *apperrors.Error
	InvalidPage               *apperrors.Error
	RemoveSingleProductFailed *apperrors.Error
	RemoveProductsFailed      *apperrors.Error
	CreateLaptopFailed        *apperrors.Error
	CreateDesktopFailed       *apperrors.Error
	UpdateProductFailed       *apperrors.Error
	InvalidProductType        *apperrors.Error
	GetProductsFailed         *apperrors.Error
	GetProductsCountFailed    *apperrors.Error
}{
	ProductNotFound:           apperrors.NewNotFound("ProductService.ProductNotFound", "The product could not be found."),
	InvalidPage:               apperrors.NewFailure("ProductService.InvalidPage", "Page number must be greater than zero."),
	RemoveSingleProductFailed: apperrors.NewFailure("ProductService.RemoveSingleProductFailed", "An error occurred while deleting the product."),
	RemoveProductsFailed:      apperrors.NewFailure("ProductService.RemoveProductsFailed", "An error occurred while deleting products."),
	CreateLaptopFailed:        apperrors.NewFailure("ProductService.CreateLaptopFailed", "An error occurred while creating the laptop."),
	CreateDesktopFailed:       apperrors.NewFailure("ProductService.CreateDesktopFailed", "An error occurred while creating the desktop."),
	UpdateProductFailed:       apperrors.NewFailure("ProductService.UpdateProductFailed", "An error occurred while updating the product."),
	InvalidProductType:        apperrors.NewProblem("ProductService.InvalidProductType", "The specified product type is invalid."),
	GetProductsFailed:         apperrors.NewFailure("ProductService.GetProductsFailed", "An error occurred while fetching products."),
	GetProductsCountFailed:    apperrors.NewFailure("ProductService.GetProductsCountFailed", "An error occurred while counting products."),
}
