package dto

import (
	"time"

	"github.com/dejmenek/pms-backend/internal/core/domain"
	"github.com/dejmenek/pms-backend/internal/utils/pagination"
	"github.com/shopspring/decimal"
)

// ProcessorSpec carries processor fields of a product request. Sub-fields are
// validated only when the parent pointer is non-nil.
type ProcessorSpec struct {
	Brand         domain.Brand `json:"brand" validate:"brand"`
	Model         string       `json:"model" validate:"required,max=100"`
	CoreCount     int          `json:"coreCount" validate:"gt=0"`
	ClockSpeedGHz float64      `json:"clockSpeedGHz" validate:"gt=0"`
}

// StorageSpec carries storage capacity fields of a product request.
type StorageSpec struct {
	Value int                `json:"value" validate:"gt=0"`
	Unit  domain.StorageUnit `json:"unit" validate:"storageunit"`
}

// ComputerRequest holds the fields shared by laptop and desktop requests.
type ComputerRequest struct {
	Name            string            `json:"name" validate:"required,max=200"`
	Price           decimal.Decimal   `json:"price" validate:"dgt0"`
	IsActive        bool              `json:"isActive"`
	Processor       *ProcessorSpec    `json:"processor" validate:"required"`
	RAMSize         domain.RAMSize    `json:"ramSize" validate:"ramsize"`
	Storage         *StorageSpec      `json:"storage" validate:"required"`
	OperatingSystem domain.SystemType `json:"operatingSystem" validate:"systemtype"`
	GraphicsCard    string            `json:"graphicsCard" validate:"required,max=100"`
}

// LaptopRequest is the payload for creating or updating a laptop.
type LaptopRequest struct {
	ComputerRequest
	ScreenSize    float64 `json:"screenSize" validate:"gte=7,lte=20"`
	BatteryLife   int     `json:"batteryLife" validate:"gt=0"`
	WebcamQuality string  `json:"webcamQuality" validate:"required,max=50"`
}

// DesktopRequest is the payload for creating or updating a desktop.
type DesktopRequest struct {
	ComputerRequest
	CaseType domain.CaseType `json:"caseType" validate:"casetype"`
}

// ProductRequest is the closed set of concrete product payloads. UpdateProduct
// dispatches on the concrete type; anything else is an invalid product type.
type ProductRequest interface {
	productRequest()
}

func (*LaptopRequest) productRequest()  {}
func (*DesktopRequest) productRequest() {}

// GetProductsRequest filters, sorts, and pages the product listing.
type GetProductsRequest struct {
	Search        string                   `json:"search" form:"search"`
	Page          int                      `json:"page" form:"page" validate:"gt=0"`
	PerPage       pagination.PageSize      `json:"perPage" form:"perPage" validate:"pagesize"`
	SortColumn    domain.ProductSortColumn `json:"sortColumn" form:"sortColumn" validate:"omitempty,sortcolumn"`
	SortDirection pagination.SortDirection `json:"sortDirection" form:"sortDirection" validate:"omitempty,sortdirection"`
}

// Edit page identifiers exposed on product list rows; the UI routes update
// flows by the product's concrete subtype.
const (
	EditPageLaptop  = "UpdateLaptop"
	EditPageDesktop = "UpdateDesktop"
)

// ProductResponse is a product list row.
type ProductResponse struct {
	ID        int64           `json:"id"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	DateAdded time.Time       `json:"dateAdded"`
	IsActive  bool            `json:"isActive"`
	EditPage  string          `json:"editPage"`
}

// ToProductResponse maps a domain product to its list row, deriving the edit
// page from the product kind.
func ToProductResponse(p domain.Product) ProductResponse {
	editPage := EditPageDesktop
	if p.Kind == domain.KindLaptop {
		editPage = EditPageLaptop
	}
	return ProductResponse{
		ID:        p.ID,
		Name:      p.Name,
		Price:     p.Price,
		DateAdded: p.DateAdded,
		IsActive:  p.IsActive,
		EditPage:  editPage,
	}
}

// ToLaptop builds the laptop domain entity from a validated request. Value
// objects go through their validated constructors, so a request that passed
// the rule set cannot yield an invalid entity.
func (r *LaptopRequest) ToLaptop() (domain.Product, error) {
	base, err := r.ComputerRequest.toComputer(domain.KindLaptop)
	if err != nil {
		return domain.Product{}, err
	}
	base.ScreenSize = r.ScreenSize
	base.BatteryLife = r.BatteryLife
	base.WebcamQuality = r.WebcamQuality
	return base, nil
}

// ToDesktop builds the desktop domain entity from a validated request.
func (r *DesktopRequest) ToDesktop() (domain.Product, error) {
	base, err := r.ComputerRequest.toComputer(domain.KindDesktop)
	if err != nil {
		return domain.Product{}, err
	}
	base.CaseType = r.CaseType
	return base, nil
}

func (r ComputerRequest) toComputer(kind domain.ProductKind) (domain.Product, error) {
	processor, err := domain.NewProcessor(r.Processor.Brand, r.Processor.Model, r.Processor.CoreCount, r.Processor.ClockSpeedGHz)
	if err != nil {
		return domain.Product{}, err
	}
	storage, err := domain.NewStorageCapacity(r.Storage.Value, r.Storage.Unit)
	if err != nil {
		return domain.Product{}, err
	}
	return domain.Product{
		Kind:            kind,
		Name:            r.Name,
		Price:           r.Price,
		IsActive:        r.IsActive,
		DateAdded:       time.Now().UTC(),
		Processor:       processor,
		RAMSize:         r.RAMSize,
		Storage:         storage,
		OperatingSystem: r.OperatingSystem,
		GraphicsCard:    r.GraphicsCard,
	}, nil
}
