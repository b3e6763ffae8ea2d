package domain

// CartEntry is a quantity of one product pending checkout.
// The cart holds at most one entry per ProductID.
type CartEntry struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

// CartLine is a cart entry joined with its product and, best effort, its design
type CartLine struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
	Title    string  `json:"title"`
	Image    string  `json:"image"`
	Price    float64 `json:"price"`
	Subtotal float64 `json:"subtotal"`
}

// CartView is the rendered cart
type CartView struct {
	Lines     []CartLine `json:"lines"`
	ItemCount int        `json:"item_count"`
	Total     float64    `json:"total"`
	Currency  string     `json:"currency"`
	Dangling  int        `json:"dangling,omitempty"`
}

// Fallbacks used when a product's design cannot be found
const (
	DefaultLineTitle = "Custom Jewelry"
	DefaultLineImage = "/dummy-images/ring1.jpg"
)

// BuildCartView joins cart entries with their products and designs. Entries
// whose product no longer exists are skipped and counted as dangling; a
// missing design falls back to a generic title and image.
func BuildCartView(entries []CartEntry, products []Product, designs []Design, unitPrice float64, currency string) CartView {
	productByID := make(map[string]Product, len(products))
	for _, p := range products {
		if _, seen := productByID[p.ID]; !seen {
			productByID[p.ID] = p
		}
	}
	designByID := make(map[string]Design, len(designs))
	for _, d := range designs {
		if _, seen := designByID[d.ID]; !seen {
			designByID[d.ID] = d
		}
	}

	view := CartView{Lines: []CartLine{}, Currency: currency}
	for _, e := range entries {
		product, ok := productByID[e.ProductID]
		if !ok {
			view.Dangling++
			continue
		}

		line := CartLine{
			Product:  product,
			Quantity: e.Quantity,
			Title:    DefaultLineTitle,
			Image:    DefaultLineImage,
			Price:    unitPrice,
			Subtotal: unitPrice * float64(e.Quantity),
		}
		if design, ok := designByID[product.DesignID]; ok {
			if design.Prompt != "" {
				line.Title = design.Prompt
			}
			line.Image = design.CoverImage(DefaultLineImage)
		}

		view.Lines = append(view.Lines, line)
		view.ItemCount += e.Quantity
		view.Total += line.Subtotal
	}
	return view
}

// Pricing is the flat per-unit price applied to every configured product
type Pricing struct {
	UnitPrice float64
	Currency  string
}
