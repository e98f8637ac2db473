package contest_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/w1pns/wfd-logger/internal/contest"
	"github.com/w1pns/wfd-logger/internal/domain"
)

func TestClassifyBand_KnownBands(t *testing.T) {
	tests := []struct {
		mhz  float64
		want domain.Band
	}{
		{1.8, "160m"},
		{2.0, "160m"}, // inclusive upper edge
		{3.5, "80m"},
		{3.9, "80m"},
		{5.35, "60m"},
		{7.0, "40m"},
		{7.3, "40m"},
		{10.1, "30m"},
		{10.15, "30m"},
		{14.0, "20m"},
		{14.074, "20m"},
		{14.35, "20m"},
		{18.068, "17m"},
		{18.168, "17m"},
		{21.2, "15m"},
		{24.95, "12m"},
		{28.0, "10m"},
		{29.7, "10m"},
		{50.125, "6m"},
		{146.52, "2m"},
		{222.1, "1.25m"},
		{446.0, "70cm"},
		{915.0, "33cm"},
		{1296.0, "23cm"},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.want, contest.ClassifyBand(tc.mhz), "frequency %v MHz", tc.mhz)
	}
}

func TestClassifyBand_OutOfBand_IsUnknownNotError(t *testing.T) {
	for _, mhz := range []float64{0.5, 2.5, 4.5, 13.999, 100.0, 500.0, 1e6} {
		assert.Equal(t, domain.BandUnknown, contest.ClassifyBand(mhz), "frequency %v MHz", mhz)
	}
}

func TestKnownBands_ExcludesUnknown(t *testing.T) {
	bands := contest.KnownBands()
	assert.NotEmpty(t, bands)
	assert.NotContains(t, bands, domain.BandUnknown)
	assert.Equal(t, domain.Band("160m"), bands[0], "bands should be in ascending frequency order")
}

func TestCabrilloFreq(t *testing.T) {
	tests := []struct {
		mhz  float64
		want string
	}{
		{1.85, "1850"}, // HF uses whole kHz
		{3.75, "3750"},
		{7.2, "7200"},
		{14.25, "14250"},
		{21.3, "21300"},
		{28.4, "28400"},
		{50.125, "50"}, // VHF/UHF use band designators
		{146.52, "144"},
		{222.1, "222"},
		{446.0, "432"},
		{915.0, "902"},
		{1296.0, "1.2G"},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.want, contest.CabrilloFreq(tc.mhz), "frequency %v MHz", tc.mhz)
	}
}

func TestCabrilloMode(t *testing.T) {
	assert.Equal(t, "CW", contest.CabrilloMode(domain.ModeCW))
	assert.Equal(t, "PH", contest.CabrilloMode(domain.ModeSSB))
	assert.Equal(t, "DG", contest.CabrilloMode(domain.ModeDigital))
}
