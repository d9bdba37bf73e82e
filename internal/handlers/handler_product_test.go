package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dejmenek/pms-backend/internal/apperrors"
	"github.com/dejmenek/pms-backend/internal/core/domain"
	portssvc "github.com/dejmenek/pms-backend/internal/core/ports/services"
	"github.com/dejmenek/pms-backend/internal/dto"
	"github.com/dejmenek/pms-backend/internal/handlers"
	"github.com/dejmenek/pms-backend/internal/utils/pagination"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type ProductHandlerTestSuite struct {
	suite.Suite
	router             *gin.Engine
	mockUserService    *MockUserService
	mockProductService *MockProductService
}

func (suite *ProductHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.mockUserService = new(MockUserService)
	suite.mockProductService = new(MockProductService)
	suite.router = gin.New()
	handlers.RegisterRoutes(suite.router, &portssvc.ServiceContainer{
		Product: suite.mockProductService,
		User:    suite.mockUserService,
	})
}

func (suite *ProductHandlerTestSuite) TestListProducts_BindsQuery() {
	page := pagination.NewPaged([]dto.ProductResponse{{ID: 1, Name: "XPS 13", EditPage: dto.EditPageLaptop}}, 2, pagination.Five, 6)

	suite.mockProductService.On("GetProducts", mock.Anything, mock.MatchedBy(func(req dto.GetProductsRequest) bool {
		return req.Search == "xps" &&
			req.Page == 2 &&
			req.PerPage == pagination.Five &&
			req.SortColumn == domain.SortByPrice &&
			req.SortDirection == pagination.Descending
	})).Return(page, nil).Once()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/products?search=xps&page=2&perPage=5&sortColumn=price&sortDirection=desc", nil)
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)
	var got pagination.Paged[dto.ProductResponse]
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &got))
	suite.Equal(2, got.CurrentPage)
	suite.Equal(2, got.TotalPages)
	suite.mockProductService.AssertExpectations(suite.T())
}

func (suite *ProductHandlerTestSuite) TestGetProduct_InvalidID() {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/products/not-a-number", nil)
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockProductService.AssertNotCalled(suite.T(), "GetProductByID")
}

func (suite *ProductHandlerTestSuite) TestGetProduct_NotFound() {
	suite.mockProductService.On("GetProductByID", mock.Anything, int64(99)).
		Return(domain.Product{}, domain.ProductErrors.ProductNotFound).Once()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/products/99", nil)
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusNotFound, w.Code)
	suite.Contains(w.Body.String(), "ProductService.ProductNotFound")
}

func (suite *ProductHandlerTestSuite) TestCreateLaptop_ValidationErrorsSurfaceViolations() {
	validationErr := apperrors.NewValidation(apperrors.Violation{
		Code:    "ScreenSize",
		Message: "Screen Size must be between 7 and 20 inches.",
	})

	suite.mockProductService.On("CreateLaptop", mock.Anything, mock.AnythingOfType("dto.LaptopRequest")).
		Return(validationErr).Once()

	payload, _ := json.Marshal(dto.LaptopRequest{})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/products/laptops", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Contains(w.Body.String(), "violations")
	suite.Contains(w.Body.String(), "ScreenSize")
}

func (suite *ProductHandlerTestSuite) TestUpdateDesktop_ProblemMapsTo422() {
	suite.mockProductService.On("UpdateProduct", mock.Anything, mock.Anything, int64(5)).
		Return(domain.ProductErrors.InvalidProductType).Once()

	payload, _ := json.Marshal(dto.DesktopRequest{})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/v1/products/desktops/5", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnprocessableEntity, w.Code)
	suite.Contains(w.Body.String(), "ProductService.InvalidProductType")
}

func (suite *ProductHandlerTestSuite) TestDeleteProducts_NoContent() {
	suite.mockProductService.On("RemoveProducts", mock.Anything, []int64{1, 2}).Return(nil).Once()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/products/batch-delete", bytes.NewReader([]byte(`{"ids":[1,2]}`)))
	req.Header.Set("Content-Type", "application/json")
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusNoContent, w.Code)
	suite.mockProductService.AssertExpectations(suite.T())
}

func TestProductHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ProductHandlerTestSuite))
}
