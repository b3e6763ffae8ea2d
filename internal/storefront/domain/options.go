package domain

import "slices"

// ProductOptions lists the legal values for each configurable product field
type ProductOptions struct {
	Materials []string `json:"materials"`
	Sizes     []string `json:"sizes"`
	Karats    []int    `json:"karats"`
	Colors    []string `json:"colors"`
	Hallmarks []string `json:"hallmarking"`
	Purities  []string `json:"purity"`
	Weights   []string `json:"weight_ranges"`
}

// DefaultOptions is the catalog offered on product pages
func DefaultOptions() ProductOptions {
	return ProductOptions{
		Materials: []string{"Sterling Silver", "Platinum"},
		Sizes:     []string{"XS", "S", "M", "L", "XL"},
		Karats:    []int{10, 14, 18, 24},
		Colors:    []string{"Polished", "Matte", "Oxidized"},
		Hallmarks: []string{"925", "950", "Platinum"},
		Purities:  []string{"99.9%", "99.5%", "92.5% (Sterling Silver)"},
		Weights:   []string{"1-5g", "5-10g", "10-20g", "20-50g"},
	}
}

// ProductConfig is the option set a customer picks for a design
type ProductConfig struct {
	Material string `json:"material"`
	Size     string `json:"size"`
	Karat    int    `json:"karat,omitempty"`
	Color    string `json:"color"`
	Hallmark string `json:"hallmark"`
	Purity   string `json:"purity"`
	Weight   string `json:"weight"`
	Quantity int    `json:"quantity"`
}

// Allows reports whether the named field accepts value
func (o ProductOptions) Allows(field, value string) bool {
	switch field {
	case "material":
		return slices.Contains(o.Materials, value)
	case "size":
		return slices.Contains(o.Sizes, value)
	case "color":
		return slices.Contains(o.Colors, value)
	case "hallmark":
		return slices.Contains(o.Hallmarks, value)
	case "purity":
		return slices.Contains(o.Purities, value)
	case "weight":
		return slices.Contains(o.Weights, value)
	}
	return false
}

// AllowsKarat reports whether karat is offered. Zero means not applicable.
func (o ProductOptions) AllowsKarat(karat int) bool {
	return karat == 0 || slices.Contains(o.Karats, karat)
}
