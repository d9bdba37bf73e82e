package domain_test

import (
	"testing"

	"github.com/dejmenek/pms-backend/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProcessor_Valid(t *testing.T) {
	p, err := domain.NewProcessor(domain.BrandIntel, "i7-13700K", 16, 3.4)

	require.NoError(t, err)
	assert.Equal(t, domain.BrandIntel, p.Brand)
	assert.Equal(t, "i7-13700K", p.Model)
	assert.Equal(t, 16, p.CoreCount)
	assert.Equal(t, 3.4, p.ClockSpeedGHz)
}

func TestNewProcessor_Invalid(t *testing.T) {
	testCases := []struct {
		name       string
		brand      domain.Brand
		model      string
		coreCount  int
		clockSpeed float64
	}{
		{"undefined brand", domain.Brand("Qualcomm"), "8cx", 8, 3.0},
		{"empty model", domain.BrandAMD, "", 8, 3.0},
		{"zero cores", domain.BrandAMD, "Ryzen 7", 0, 3.0},
		{"negative cores", domain.BrandAMD, "Ryzen 7", -4, 3.0},
		{"zero clock speed", domain.BrandApple, "M3", 8, 0},
		{"negative clock speed", domain.BrandApple, "M3", 8, -1.2},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := domain.NewProcessor(tc.brand, tc.model, tc.coreCount, tc.clockSpeed)
			assert.Error(t, err)
		})
	}
}

func TestNewStorageCapacity_Invalid(t *testing.T) {
	_, err := domain.NewStorageCapacity(0, domain.UnitGB)
	assert.Error(t, err)

	_, err = domain.NewStorageCapacity(-1, domain.UnitTB)
	assert.Error(t, err)

	_, err = domain.NewStorageCapacity(512, domain.StorageUnit("MB"))
	assert.Error(t, err)
}

func TestStorageCapacity_UnitNormalization(t *testing.T) {
	oneTB, err := domain.NewStorageCapacity(1, domain.UnitTB)
	require.NoError(t, err)
	tbInGB, err := domain.NewStorageCapacity(1024, domain.UnitGB)
	require.NoError(t, err)

	assert.Equal(t, 1024, oneTB.Gigabytes())
	assert.True(t, oneTB.Equal(tbInGB))
	assert.True(t, tbInGB.Equal(oneTB))

	smaller, err := domain.NewStorageCapacity(512, domain.UnitGB)
	require.NoError(t, err)
	assert.False(t, oneTB.Equal(smaller))
}

func TestStorageCapacity_String(t *testing.T) {
	s, err := domain.NewStorageCapacity(512, domain.UnitGB)
	require.NoError(t, err)
	assert.Equal(t, "512 GB", s.String())
}
