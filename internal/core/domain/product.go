package domain

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// ProductKind discriminates the concrete product variant. The product
// hierarchy is a closed set; persistence and mapping logic switch on this
// discriminant explicitly.
type ProductKind string

const (
	KindLaptop  ProductKind = "laptop"
	KindDesktop ProductKind = "desktop"
)

// IsValid reports whether the kind is a defined variant.
func (k ProductKind) IsValid() bool {
	return k == KindLaptop || k == KindDesktop
}

// Brand is a processor manufacturer.
type Brand string

const (
	BrandIntel Brand = "Intel"
	BrandAMD   Brand = "AMD"
	BrandApple Brand = "Apple"
)

func (b Brand) IsValid() bool {
	switch b {
	case BrandIntel, BrandAMD, BrandApple:
		return true
	}
	return false
}

// StorageUnit is the unit a storage capacity is expressed in.
type StorageUnit string

const (
	UnitGB StorageUnit = "GB"
	UnitTB StorageUnit = "TB"
)

func (u StorageUnit) IsValid() bool {
	return u == UnitGB || u == UnitTB
}

// RAMSize is one of the fixed memory capacities, in gigabytes.
type RAMSize int

const (
	RAM8  RAMSize = 8
	RAM16 RAMSize = 16
	RAM32 RAMSize = 32
	RAM64 RAMSize = 64
)

func (r RAMSize) IsValid() bool {
	switch r {
	case RAM8, RAM16, RAM32, RAM64:
		return true
	}
	return false
}

// SystemType is the installed operating system family.
type SystemType string

const (
	SystemWindows SystemType = "Windows"
	SystemMacOS   SystemType = "MacOS"
	SystemLinux   SystemType = "Linux"
)

func (s SystemType) IsValid() bool {
	switch s {
	case SystemWindows, SystemMacOS, SystemLinux:
		return true
	}
	return false
}

// CaseType is a desktop chassis form factor.
type CaseType string

const (
	CaseMidTower        CaseType = "MidTower"
	CaseMiniTower       CaseType = "MiniTower"
	CaseSmallFormFactor CaseType = "SmallFormFactor"
	CaseFullTower       CaseType = "FullTower"
)

func (c CaseType) IsValid() bool {
	switch c {
	case CaseMidTower, CaseMiniTower, CaseSmallFormFactor, CaseFullTower:
		return true
	}
	return false
}

// ProductSortColumn selects the column product listings are ordered by.
type ProductSortColumn string

const (
	SortByName      ProductSortColumn = "name"
	SortByPrice     ProductSortColumn = "price"
	SortByDateAdded ProductSortColumn = "dateAdded"
	SortByID        ProductSortColumn = "id"
)

func (c ProductSortColumn) IsValid() bool {
	switch c {
	case SortByName, SortByPrice, SortByDateAdded, SortByID:
		return true
	}
	return false
}

// Processor is an immutable value object describing a CPU. Construct it only
// through NewProcessor so the invariants hold for every instance.
type Processor struct {
	Brand         Brand   `json:"brand"`
	Model         string  `json:"model"`
	CoreCount     int     `json:"coreCount"`
	ClockSpeedGHz float64 `json:"clockSpeedGHz"`
}

// NewProcessor validates and builds a Processor value.
func NewProcessor(brand Brand, model string, coreCount int, clockSpeedGHz float64) (Processor, error) {
	if !brand.IsValid() {
		return Processor{}, fmt.Errorf("invalid processor brand %q", brand)
	}
	if model == "" {
		return Processor{}, errors.New("processor model cannot be empty")
	}
	if coreCount <= 0 {
		return Processor{}, errors.New("processor core count must be greater than zero")
	}
	if clockSpeedGHz <= 0 {
		return Processor{}, errors.New("processor clock speed must be greater than zero")
	}
	return Processor{Brand: brand, Model: model, CoreCount: coreCount, ClockSpeedGHz: clockSpeedGHz}, nil
}

// String renders the processor for display, e.g. "Intel i7-13700K, 16 cores @ 3.4 GHz".
func (p Processor) String() string {
	return fmt.Sprintf("%s %s, %d cores @ %g GHz", p.Brand, p.Model, p.CoreCount, p.ClockSpeedGHz)
}

// StorageCapacity is an immutable value object for disk size. Two capacities
// are equal iff their gigabyte-normalized magnitudes match, regardless of unit.
type StorageCapacity struct {
	Value int         `json:"value"`
	Unit  StorageUnit `json:"unit"`
}

// NewStorageCapacity validates and builds a StorageCapacity value.
func NewStorageCapacity(value int, unit StorageUnit) (StorageCapacity, error) {
	if value <= 0 {
		return StorageCapacity{}, errors.New("storage capacity must be greater than zero")
	}
	if !unit.IsValid() {
		return StorageCapacity{}, fmt.Errorf("invalid storage unit %q", unit)
	}
	return StorageCapacity{Value: value, Unit: unit}, nil
}

// Gigabytes returns the capacity normalized to gigabytes.
func (s StorageCapacity) Gigabytes() int {
	if s.Unit == UnitTB {
		return s.Value * 1024
	}
	return s.Value
}

// Equal compares two capacities by normalized magnitude.
func (s StorageCapacity) Equal(other StorageCapacity) bool {
	return s.Gigabytes() == other.Gigabytes()
}

// String renders the capacity for display, e.g. "512 GB".
func (s StorageCapacity) String() string {
	return fmt.Sprintf("%d %s", s.Value, s.Unit)
}

// Product is the closed product variant: shared base fields, shared computer
// fields, and per-kind fields selected by Kind. Laptop fields are meaningful
// only when Kind == KindLaptop, desktop fields only when Kind == KindDesktop.
type Product struct {
	ID        int64           `json:"id"`
	Kind      ProductKind     `json:"kind"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	IsActive  bool            `json:"isActive"`
	DateAdded time.Time       `json:"dateAdded"`

	Processor       Processor       `json:"processor"`
	RAMSize         RAMSize         `json:"ramSize"`
	Storage         StorageCapacity `json:"storage"`
	OperatingSystem SystemType      `json:"operatingSystem"`
	GraphicsCard    string          `json:"graphicsCard"`

	// Laptop-only fields.
	ScreenSize    float64 `json:"screenSize,omitempty"`
	BatteryLife   int     `json:"batteryLife,omitempty"`
	WebcamQuality string  `json:"webcamQuality,omitempty"`

	// Desktop-only field.
	CaseType CaseType `json:"caseType,omitempty"`
}
