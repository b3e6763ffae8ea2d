// Package validation checks user input at the HTTP boundary before anything
// reaches the store.
package validation

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/tair/jewelkraft/internal/storefront/domain"
)

// Prompt length limits, in characters
const (
	MinPromptLength = 10
	MaxPromptLength = 500
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidationError is a user-facing message tied to one input field
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e *ValidationError) Error() string {
	return e.Message
}

func fail(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// ValidatePrompt checks a design description
func ValidatePrompt(prompt string) *ValidationError {
	if strings.TrimSpace(prompt) == "" {
		return fail("prompt", "Please enter a description for your jewelry design")
	}
	n := utf8.RuneCountInString(prompt)
	if n < MinPromptLength {
		return fail("prompt", "Please provide a more detailed description (minimum 10 characters)")
	}
	if n > MaxPromptLength {
		return fail("prompt", "Description is too long (maximum 500 characters)")
	}
	return nil
}

// ValidateProduct checks a product configuration against the options catalog.
// The first failing field is reported.
func ValidateProduct(cfg domain.ProductConfig, options domain.ProductOptions) *ValidationError {
	required := []struct {
		field, value, missing, invalid string
	}{
		{"material", cfg.Material, "Please select a material", "Unsupported material"},
		{"size", cfg.Size, "Please select a size", "Unsupported size"},
	}
	for _, r := range required {
		if err := checkOption(options, r.field, r.value, r.missing, r.invalid); err != nil {
			return err
		}
	}

	if !options.AllowsKarat(cfg.Karat) {
		return fail("karat", "Please select a karat")
	}

	rest := []struct {
		field, value, missing, invalid string
	}{
		{"color", cfg.Color, "Please select a color", "Unsupported finish"},
		{"hallmark", cfg.Hallmark, "Please select a hallmark", "Unsupported hallmark"},
		{"purity", cfg.Purity, "Please select a purity", "Unsupported purity"},
		{"weight", cfg.Weight, "Please select a weight", "Unsupported weight range"},
	}
	for _, r := range rest {
		if err := checkOption(options, r.field, r.value, r.missing, r.invalid); err != nil {
			return err
		}
	}

	if cfg.Quantity < 1 {
		return fail("quantity", "Quantity must be at least 1")
	}
	return nil
}

func checkOption(options domain.ProductOptions, field, value, missing, invalid string) *ValidationError {
	if value == "" {
		return fail(field, missing)
	}
	if !options.Allows(field, value) {
		return fail(field, invalid)
	}
	return nil
}

// ValidateQuantity checks a cart quantity supplied by a client
func ValidateQuantity(quantity int) *ValidationError {
	if quantity < 1 {
		return fail("quantity", "Quantity must be at least 1")
	}
	return nil
}

// ValidateEmail checks an email address
func ValidateEmail(email string) *ValidationError {
	if email == "" {
		return fail("email", "Email is required")
	}
	if !emailPattern.MatchString(email) {
		return fail("email", "Please enter a valid email address")
	}
	return nil
}

// Shipping is the delivery information collected at checkout
type Shipping struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
}

// ValidateShipping checks checkout delivery details
func ValidateShipping(s Shipping) *ValidationError {
	if strings.TrimSpace(s.Name) == "" {
		return fail("name", "Name is required")
	}
	if strings.TrimSpace(s.Address) == "" {
		return fail("address", "Address is required")
	}
	if strings.TrimSpace(s.Phone) == "" {
		return fail("phone", "Phone number is required")
	}
	return ValidateEmail(s.Email)
}
