package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tair/jewelkraft/internal/storefront/domain"
)

func validConfig() domain.ProductConfig {
	return domain.ProductConfig{
		Material: "Sterling Silver",
		Size:     "M",
		Color:    "Polished",
		Hallmark: "925",
		Purity:   "92.5% (Sterling Silver)",
		Weight:   "5-10g",
		Quantity: 1,
	}
}

func TestValidatePrompt(t *testing.T) {
	tests := []struct {
		name    string
		prompt  string
		wantMsg string
	}{
		{"blank", "   ", "Please enter a description for your jewelry design"},
		{"too short", "gold ring", "Please provide a more detailed description (minimum 10 characters)"},
		{"too long", strings.Repeat("a", 501), "Description is too long (maximum 500 characters)"},
		{"minimum", "gold rings", ""},
		{"maximum", strings.Repeat("a", 500), ""},
		{"multibyte counted as characters", strings.Repeat("é", 10), ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePrompt(tt.prompt)
			if tt.wantMsg == "" {
				assert.Nil(t, err)
				return
			}
			require.NotNil(t, err)
			assert.Equal(t, "prompt", err.Field)
			assert.Equal(t, tt.wantMsg, err.Message)
		})
	}
}

func TestValidateProduct(t *testing.T) {
	options := domain.DefaultOptions()

	tests := []struct {
		name      string
		mutate    func(*domain.ProductConfig)
		wantField string
		wantMsg   string
	}{
		{"valid", func(*domain.ProductConfig) {}, "", ""},
		{"valid with karat", func(c *domain.ProductConfig) { c.Karat = 18 }, "", ""},
		{"missing material", func(c *domain.ProductConfig) { c.Material = "" }, "material", "Please select a material"},
		{"unknown material", func(c *domain.ProductConfig) { c.Material = "Wood" }, "material", "Unsupported material"},
		{"missing size", func(c *domain.ProductConfig) { c.Size = "" }, "size", "Please select a size"},
		{"bad karat", func(c *domain.ProductConfig) { c.Karat = 9 }, "karat", "Please select a karat"},
		{"missing color", func(c *domain.ProductConfig) { c.Color = "" }, "color", "Please select a color"},
		{"missing hallmark", func(c *domain.ProductConfig) { c.Hallmark = "" }, "hallmark", "Please select a hallmark"},
		{"missing purity", func(c *domain.ProductConfig) { c.Purity = "" }, "purity", "Please select a purity"},
		{"missing weight", func(c *domain.ProductConfig) { c.Weight = "" }, "weight", "Please select a weight"},
		{"zero quantity", func(c *domain.ProductConfig) { c.Quantity = 0 }, "quantity", "Quantity must be at least 1"},
		{"first failure wins", func(c *domain.ProductConfig) { c.Material = ""; c.Quantity = 0 }, "material", "Please select a material"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(&cfg)

			err := ValidateProduct(cfg, options)
			if tt.wantField == "" {
				assert.Nil(t, err)
				return
			}
			require.NotNil(t, err)
			assert.Equal(t, tt.wantField, err.Field)
			assert.Equal(t, tt.wantMsg, err.Error())
		})
	}
}

func TestValidateShipping(t *testing.T) {
	ok := Shipping{Name: "Asha", Address: "12 MG Road", Phone: "9999999999", Email: "asha@example.com"}
	assert.Nil(t, ValidateShipping(ok))

	noPhone := ok
	noPhone.Phone = " "
	assert.Equal(t, "phone", ValidateShipping(noPhone).Field)

	badEmail := ok
	badEmail.Email = "asha@example"
	err := ValidateShipping(badEmail)
	require.NotNil(t, err)
	assert.Equal(t, "Please enter a valid email address", err.Message)

	assert.Equal(t, "Email is required", ValidateEmail("").Message)
}

func TestValidateQuantity(t *testing.T) {
	assert.Nil(t, ValidateQuantity(3))
	assert.NotNil(t, ValidateQuantity(-1))
}
