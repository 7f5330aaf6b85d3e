package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/burakcnaksy0/classifieds-service/internal/listing/domain"
)

func TestFormatPrice(t *testing.T) {
	tests := []struct {
		name     string
		price    string
		currency domain.Currency
		want     string
	}{
		{"lira with grouping", "1250000", domain.CurrencyTRY, "₺1.250.000"},
		{"dollars", "45000", domain.CurrencyUSD, "$45.000"},
		{"euros with fraction", "1999.5", domain.CurrencyEUR, "€1.999,5"},
		{"unknown currency falls back to code", "100", "GBP", "GBP 100"},
		{"beyond float64 integer precision", "9007199254740993", domain.CurrencyTRY, "₺9.007.199.254.740.993"},
		{"beyond int64 range", "99999999999999999999", domain.CurrencyTRY, "₺99.999.999.999.999.999.999"},
		{"high-precision fraction", "0.105", domain.CurrencyTRY, "₺0,105"},
		{"trailing fraction zeros trimmed", "1250.50", domain.CurrencyTRY, "₺1.250,5"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			price := mustPrice(t, tt.price)
			assert.Equal(t, tt.want, FormatPrice(price, tt.currency))
		})
	}
}

func TestDisplayLabel(t *testing.T) {
	assert.Equal(t, "Natural Gas", DisplayLabel("heating_type", "NATURAL_GAS"))
	assert.Equal(t, "Semi-Automatic", DisplayLabel("transmission", "SEMI_AUTOMATIC"))
	// Unknown values and domains pass through untouched.
	assert.Equal(t, "GEOTHERMAL", DisplayLabel("heating_type", "GEOTHERMAL"))
	assert.Equal(t, "FLAT", DisplayLabel("unknown_domain", "FLAT"))
}

func TestComparisonFields_VariantTables(t *testing.T) {
	vehicle := comparisonFields(domain.TypeVehicle)
	assert.Equal(t, "Price", vehicle[0].name)
	assert.Equal(t, "Brand", vehicle[3].name)

	land := comparisonFields(domain.TypeLand)
	names := make([]string, 0, len(land))
	for _, f := range land {
		names = append(names, f.name)
	}
	assert.Contains(t, names, "Zoning Status")
	assert.NotContains(t, names, "Brand")
}
