package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	portssvc "github.com/dejmenek/pms-backend/internal/core/ports/services"
	"github.com/dejmenek/pms-backend/internal/dto"
	"github.com/dejmenek/pms-backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// productHandler handles HTTP requests for the product catalog.
type productHandler struct {
	productService portssvc.ProductSvcFacade
}

func newProductHandler(ps portssvc.ProductSvcFacade) *productHandler {
	return &productHandler{productService: ps}
}

// registerProductRoutes registers routes related to products.
func registerProductRoutes(rg *gin.RouterGroup, productService portssvc.ProductSvcFacade) {
	h := newProductHandler(productService)

	products := rg.Group("/products")
	{
		products.GET("", h.listProducts)
		products.GET("/count", h.countProducts)
		products.GET("/:id", h.getProduct)
		products.DELETE("/:id", h.deleteProduct)
		products.POST("/batch-delete", h.deleteProducts)
		products.POST("/laptops", h.createLaptop)
		products.PUT("/laptops/:id", h.updateLaptop)
		products.POST("/desktops", h.createDesktop)
		products.PUT("/desktops/:id", h.updateDesktop)
	}
}

// listProducts returns one page of the catalog, filtered and sorted by the
// query parameters.
func (h *productHandler) listProducts(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	req := dto.GetProductsRequest{Page: 1, PerPage: 10}
	if err := c.ShouldBindQuery(&req); err != nil {
		logger.Warn("Failed to bind query for listProducts", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	page, err := h.productService.GetProducts(c.Request.Context(), req)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, page)
}

func (h *productHandler) countProducts(c *gin.Context) {
	count, err := h.productService.GetProductsCount(c.Request.Context())
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": count})
}

func (h *productHandler) getProduct(c *gin.Context) {
	productID, ok := parseProductID(c)
	if !ok {
		return
	}

	product, err := h.productService.GetProductByID(c.Request.Context(), productID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, product)
}

func (h *productHandler) deleteProduct(c *gin.Context) {
	productID, ok := parseProductID(c)
	if !ok {
		return
	}

	if err := h.productService.RemoveSingleProduct(c.Request.Context(), productID); err != nil {
		respondWithError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// deleteProductsRequest is the payload for batch product deletion.
type deleteProductsRequest struct {
	IDs []int64 `json:"ids" binding:"required,min=1"`
}

func (h *productHandler) deleteProducts(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req deleteProductsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for deleteProducts", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	if err := h.productService.RemoveProducts(c.Request.Context(), req.IDs); err != nil {
		respondWithError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *productHandler) createLaptop(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.LaptopRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for createLaptop", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	if err := h.productService.CreateLaptop(c.Request.Context(), req); err != nil {
		respondWithError(c, err)
		return
	}

	c.Status(http.StatusCreated)
}

func (h *productHandler) createDesktop(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.DesktopRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for createDesktop", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	if err := h.productService.CreateDesktop(c.Request.Context(), req); err != nil {
		respondWithError(c, err)
		return
	}

	c.Status(http.StatusCreated)
}

func (h *productHandler) updateLaptop(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	productID, ok := parseProductID(c)
	if !ok {
		return
	}

	var req dto.LaptopRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for updateLaptop", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	if err := h.productService.UpdateProduct(c.Request.Context(), &req, productID); err != nil {
		respondWithError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *productHandler) updateDesktop(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	productID, ok := parseProductID(c)
	if !ok {
		return
	}

	var req dto.DesktopRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for updateDesktop", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	if err := h.productService.UpdateProduct(c.Request.Context(), &req, productID); err != nil {
		respondWithError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func parseProductID(c *gin.Context) (int64, bool) {
	productID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product id"})
		return 0, false
	}
	return productID, true
}
