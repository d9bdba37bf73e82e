package validation_test

import (
	"testing"

	"github.com/dejmenek/pms-backend/internal/apperrors"
	"github.com/dejmenek/pms-backend/internal/core/domain"
	"github.com/dejmenek/pms-backend/internal/dto"
	"github.com/dejmenek/pms-backend/internal/utils/pagination"
	"github.com/dejmenek/pms-backend/internal/validation"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newValidator() *validation.Validator {
	return validation.New(validation.NewPhoneValidator())
}

func validLaptopRequest() dto.LaptopRequest {
	return dto.LaptopRequest{
		ComputerRequest: dto.ComputerRequest{
			Name:     "ThinkPad X1 Carbon",
			Price:    decimal.NewFromInt(6499),
			IsActive: true,
			Processor: &dto.ProcessorSpec{
				Brand:         domain.BrandIntel,
				Model:         "i7-1355U",
				CoreCount:     10,
				ClockSpeedGHz: 1.7,
			},
			RAMSize:         domain.RAM16,
			Storage:         &dto.StorageSpec{Value: 1, Unit: domain.UnitTB},
			OperatingSystem: domain.SystemWindows,
			GraphicsCard:    "Intel Iris Xe",
		},
		ScreenSize:    14.0,
		BatteryLife:   12,
		WebcamQuality: "1080p",
	}
}

func TestValidate_ValidLaptop(t *testing.T) {
	v := newValidator()
	req := validLaptopRequest()

	assert.Nil(t, v.Validate(&req))
}

func TestValidate_ScreenSizeBoundaries(t *testing.T) {
	v := newValidator()

	testCases := []struct {
		screenSize float64
		valid      bool
	}{
		{6.9, false},
		{7.0, true},
		{20.0, true},
		{20.1, false},
	}

	for _, tc := range testCases {
		req := validLaptopRequest()
		req.ScreenSize = tc.screenSize
		err := v.Validate(&req)
		if tc.valid {
			assert.Nil(t, err, "screen size %v should be valid", tc.screenSize)
		} else {
			assert.NotNil(t, err, "screen size %v should be invalid", tc.screenSize)
		}
	}
}

func TestValidate_LaptopViolationsAggregated(t *testing.T) {
	v := newValidator()
	req := validLaptopRequest()
	req.Name = ""
	req.Price = decimal.Zero
	req.BatteryLife = 0

	err := v.Validate(&req)

	require.NotNil(t, err)
	assert.Equal(t, apperrors.KindValidation, err.Kind)
	require.Len(t, err.Violations, 3)
	assert.Equal(t, "LaptopRequest.Name", err.Violations[0].Code)
	assert.Equal(t, "LaptopRequest.Price", err.Violations[1].Code)
	assert.Equal(t, "LaptopRequest.BatteryLife", err.Violations[2].Code)
}

func TestValidate_NestedProcessorRules(t *testing.T) {
	v := newValidator()

	req := validLaptopRequest()
	req.Processor = nil
	err := v.Validate(&req)
	require.NotNil(t, err)
	require.Len(t, err.Violations, 1)
	assert.Equal(t, "LaptopRequest.Processor", err.Violations[0].Code)

	req = validLaptopRequest()
	req.Processor.Brand = domain.Brand("Qualcomm")
	req.Processor.CoreCount = 0
	err = v.Validate(&req)
	require.NotNil(t, err)
	require.Len(t, err.Violations, 2)
	assert.Equal(t, "LaptopRequest.Processor.Brand", err.Violations[0].Code)
	assert.Equal(t, "LaptopRequest.Processor.CoreCount", err.Violations[1].Code)
}

func TestValidate_StorageRules(t *testing.T) {
	v := newValidator()
	req := validLaptopRequest()
	req.Storage = &dto.StorageSpec{Value: 0, Unit: domain.StorageUnit("MB")}

	err := v.Validate(&req)

	require.NotNil(t, err)
	require.Len(t, err.Violations, 2)
	assert.Equal(t, "LaptopRequest.Storage.Value", err.Violations[0].Code)
	assert.Equal(t, "LaptopRequest.Storage.Unit", err.Violations[1].Code)
}

func TestValidate_Desktop(t *testing.T) {
	v := newValidator()
	req := dto.DesktopRequest{
		ComputerRequest: validLaptopRequest().ComputerRequest,
		CaseType:        domain.CaseMidTower,
	}
	assert.Nil(t, v.Validate(&req))

	req.CaseType = domain.CaseType("Cube")
	err := v.Validate(&req)
	require.NotNil(t, err)
	assert.Equal(t, "DesktopRequest.CaseType", err.Violations[0].Code)
	assert.Equal(t, "Case type is invalid.", err.Violations[0].Message)
}

func TestValidate_GetProductsRequest(t *testing.T) {
	v := newValidator()

	valid := dto.GetProductsRequest{
		Page:          1,
		PerPage:       pagination.Ten,
		SortColumn:    domain.SortByName,
		SortDirection: pagination.Ascending,
	}
	assert.Nil(t, v.Validate(&valid))

	invalid := dto.GetProductsRequest{Page: 0, PerPage: pagination.PageSize(7)}
	err := v.Validate(&invalid)
	require.NotNil(t, err)
	require.Len(t, err.Violations, 2)
	assert.Equal(t, "GetProductsRequest.Page", err.Violations[0].Code)
	assert.Equal(t, "GetProductsRequest.PerPage", err.Violations[1].Code)
	assert.Equal(t, "Invalid page size.", err.Violations[1].Message)
}

func TestValidate_CreateUserRequest(t *testing.T) {
	v := newValidator()

	phone := "+48601234567"
	valid := dto.CreateUserRequest{
		Username:    "jkowalski",
		Email:       "j.kowalski@example.com",
		Password:    "s3cret-password",
		PhoneNumber: &phone,
	}
	assert.Nil(t, v.Validate(&valid))

	// Phone is optional: nil passes.
	valid.PhoneNumber = nil
	assert.Nil(t, v.Validate(&valid))

	badPhone := "not-a-number"
	invalid := dto.CreateUserRequest{
		Username:    "jkowalski",
		Email:       "not-an-email",
		Password:    "short",
		PhoneNumber: &badPhone,
	}
	err := v.Validate(&invalid)
	require.NotNil(t, err)
	require.Len(t, err.Violations, 3)
	assert.Equal(t, "CreateUserRequest.Email", err.Violations[0].Code)
	assert.Equal(t, "CreateUserRequest.Password", err.Violations[1].Code)
	assert.Equal(t, "CreateUserRequest.PhoneNumber", err.Violations[2].Code)
	assert.Equal(t, "Enter a valid phone number in international format (e.g., +48...).", err.Violations[2].Message)
}

func TestValidate_UpdateUserRequest(t *testing.T) {
	v := newValidator()

	err := v.Validate(&dto.UpdateUserRequest{Username: "jkowalski", Email: "j@example.com"})
	require.NotNil(t, err)
	require.Len(t, err.Violations, 1)
	assert.Equal(t, "UpdateUserRequest.ID", err.Violations[0].Code)
}

func TestPhoneValidator(t *testing.T) {
	phone := validation.NewPhoneValidator()

	assert.True(t, phone.Valid(""))
	assert.True(t, phone.Valid("+48601234567"))
	assert.True(t, phone.Valid("+14155552671"))
	assert.False(t, phone.Valid("not-a-number"))
	assert.False(t, phone.Valid("+99912"))
}
