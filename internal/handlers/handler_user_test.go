package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dejmenek/pms-backend/internal/core/domain"
	portssvc "github.com/dejmenek/pms-backend/internal/core/ports/services"
	"github.com/dejmenek/pms-backend/internal/dto"
	"github.com/dejmenek/pms-backend/internal/handlers"
	"github.com/dejmenek/pms-backend/internal/utils/pagination"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock UserService ---
type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) GetUsers(ctx context.Context, req dto.GetUsersRequest) (pagination.Paged[dto.UserListItem], error) {
	args := m.Called(ctx, req)
	return args.Get(0).(pagination.Paged[dto.UserListItem]), args.Error(1)
}
func (m *MockUserService) GetUserDetails(ctx context.Context, userID string) (dto.UserDetails, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(dto.UserDetails), args.Error(1)
}
func (m *MockUserService) RemoveSingleUser(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}
func (m *MockUserService) RemoveUsers(ctx context.Context, userIDs []string) error {
	args := m.Called(ctx, userIDs)
	return args.Error(0)
}
func (m *MockUserService) UpdateUser(ctx context.Context, req dto.UpdateUserRequest) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}
func (m *MockUserService) GetUserForUpdate(ctx context.Context, userID string) (dto.UserForUpdate, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(dto.UserForUpdate), args.Error(1)
}
func (m *MockUserService) GetUserRolesForUpdate(ctx context.Context, userID string) ([]dto.RoleOption, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.RoleOption), args.Error(1)
}
func (m *MockUserService) UpdateUserRoles(ctx context.Context, userID string, selectedRoles []string) error {
	args := m.Called(ctx, userID, selectedRoles)
	return args.Error(0)
}
func (m *MockUserService) CreateUser(ctx context.Context, req dto.CreateUserRequest) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}

// Ensure mock implements the interface
var _ portssvc.UserSvcFacade = (*MockUserService)(nil)

// --- Mock ProductService (routes are registered together) ---
type MockProductService struct {
	mock.Mock
}

func (m *MockProductService) GetProducts(ctx context.Context, req dto.GetProductsRequest) (pagination.Paged[dto.ProductResponse], error) {
	args := m.Called(ctx, req)
	return args.Get(0).(pagination.Paged[dto.ProductResponse]), args.Error(1)
}
func (m *MockProductService) GetProductsCount(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}
func (m *MockProductService) RemoveProducts(ctx context.Context, productIDs []int64) error {
	args := m.Called(ctx, productIDs)
	return args.Error(0)
}
func (m *MockProductService) RemoveSingleProduct(ctx context.Context, productID int64) error {
	args := m.Called(ctx, productID)
	return args.Error(0)
}
func (m *MockProductService) CreateLaptop(ctx context.Context, req dto.LaptopRequest) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}
func (m *MockProductService) CreateDesktop(ctx context.Context, req dto.DesktopRequest) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}
func (m *MockProductService) GetProductByID(ctx context.Context, productID int64) (domain.Product, error) {
	args := m.Called(ctx, productID)
	return args.Get(0).(domain.Product), args.Error(1)
}
func (m *MockProductService) UpdateProduct(ctx context.Context, req dto.ProductRequest, productID int64) error {
	args := m.Called(ctx, req, productID)
	return args.Error(0)
}

var _ portssvc.ProductSvcFacade = (*MockProductService)(nil)

// --- Test Suite ---
type UserHandlerTestSuite struct {
	suite.Suite
	router             *gin.Engine
	mockUserService    *MockUserService
	mockProductService *MockProductService
}

func (suite *UserHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.mockUserService = new(MockUserService)
	suite.mockProductService = new(MockProductService)
	suite.router = gin.New()
	handlers.RegisterRoutes(suite.router, &portssvc.ServiceContainer{
		Product: suite.mockProductService,
		User:    suite.mockUserService,
	})
}

func (suite *UserHandlerTestSuite) TestGetUserDetails_OK() {
	userID := uuid.NewString()
	details := dto.UserDetails{ID: userID, Username: "anna", Email: "anna@example.com", Roles: []string{"Manager"}}

	suite.mockUserService.On("GetUserDetails", mock.Anything, userID).Return(details, nil).Once()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/users/"+userID, nil)
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)
	var got dto.UserDetails
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &got))
	suite.Equal(details, got)
	suite.mockUserService.AssertExpectations(suite.T())
}

func (suite *UserHandlerTestSuite) TestGetUserDetails_NotFound() {
	userID := uuid.NewString()

	suite.mockUserService.On("GetUserDetails", mock.Anything, userID).
		Return(dto.UserDetails{}, domain.UserErrors.UserNotFound).Once()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/users/"+userID, nil)
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusNotFound, w.Code)
	suite.Contains(w.Body.String(), "UserService.UserNotFound")
}

func (suite *UserHandlerTestSuite) TestDeleteUser_AdminConflict() {
	userID := uuid.NewString()

	suite.mockUserService.On("RemoveSingleUser", mock.Anything, userID).
		Return(domain.UserErrors.AdminUserDeletionNotAllowed).Once()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/v1/users/"+userID, nil)
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusConflict, w.Code)
	suite.Contains(w.Body.String(), "UserService.AdminUserDeletionNotAllowed")
}

func (suite *UserHandlerTestSuite) TestUpdateUser_PathIDWins() {
	pathID := uuid.NewString()
	body := dto.UpdateUserRequest{ID: uuid.NewString(), Username: "carol", Email: "carol@example.com"}

	suite.mockUserService.On("UpdateUser", mock.Anything, mock.MatchedBy(func(req dto.UpdateUserRequest) bool {
		return req.ID == pathID && req.Username == "carol"
	})).Return(nil).Once()

	payload, _ := json.Marshal(body)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/v1/users/"+pathID, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusNoContent, w.Code)
	suite.mockUserService.AssertExpectations(suite.T())
}

func (suite *UserHandlerTestSuite) TestBatchDelete_RequiresIDs() {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/users/batch-delete", bytes.NewReader([]byte(`{}`)))
	req.Header.Set("Content-Type", "application/json")
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockUserService.AssertNotCalled(suite.T(), "RemoveUsers")
}

func (suite *UserHandlerTestSuite) TestCreateUser_Created() {
	body := dto.CreateUserRequest{Username: "dave", Email: "dave@example.com", Password: "s3cret-pass"}

	suite.mockUserService.On("CreateUser", mock.Anything, body).Return(nil).Once()

	payload, _ := json.Marshal(body)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/users", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusCreated, w.Code)
	suite.mockUserService.AssertExpectations(suite.T())
}

func TestUserHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(UserHandlerTestSuite))
}
