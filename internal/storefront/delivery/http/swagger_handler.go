package http

import (
	"net/http"

	"github.com/gorilla/mux"
)

// RegisterSwaggerDocs registers Swagger documentation routes
// @Summary Swagger documentation
// @Description Swagger API documentation
// @Tags Swagger
// @Success 200 {string} string "Swagger UI"
// @Router /swagger/ [get]
func RegisterSwaggerDocs(router *mux.Router, swaggerHandler http.Handler) {
	router.PathPrefix("/swagger/").Handler(swaggerHandler)
}

// GenerateDesign godoc
// @Summary Generate a design
// @Description Generate jewelry images for a prompt and store them as a draft design
// @Tags Designs
// @Accept json
// @Produce json
// @Param request body object{prompt=string,userId=string} true "Design prompt"
// @Success 201 {object} object{success=bool,message=string,data=object}
// @Failure 400 {object} object{success=bool,error=string,field=string}
// @Failure 502 {object} object{success=bool,error=string}
// @Router /api/designs/generate [post]
func (h *StorefrontHandler) GenerateDesignDoc() {}

// ListDesigns godoc
// @Summary List designs
// @Description List designs in creation order
// @Tags Designs
// @Produce json
// @Param userId query string false "Owner filter"
// @Param status query string false "Status filter (draft, saved, ordered)"
// @Success 200 {object} object{success=bool,data=object{designs=array,total=int}}
// @Router /api/designs [get]
func (h *StorefrontHandler) ListDesignsDoc() {}

// GetDesign godoc
// @Summary Get design by ID
// @Tags Designs
// @Produce json
// @Param id path string true "Design ID"
// @Success 200 {object} object{success=bool,data=object}
// @Failure 404 {object} object{success=bool,error=string}
// @Router /api/designs/{id} [get]
func (h *StorefrontHandler) GetDesignDoc() {}

// SaveDesign godoc
// @Summary Save a design
// @Description Mark a draft design as saved
// @Tags Designs
// @Produce json
// @Param id path string true "Design ID"
// @Success 200 {object} object{success=bool,message=string,data=object}
// @Failure 404 {object} object{success=bool,error=string}
// @Router /api/designs/{id}/save [put]
func (h *StorefrontHandler) SaveDesignDoc() {}

// DeleteDesign godoc
// @Summary Delete a design
// @Tags Designs
// @Produce json
// @Param id path string true "Design ID"
// @Success 200 {object} object{success=bool,message=string}
// @Router /api/designs/{id} [delete]
func (h *StorefrontHandler) DeleteDesignDoc() {}

// ConfigureProduct godoc
// @Summary Configure a product
// @Description Create a product from a design and options, optionally adding it to the cart
// @Tags Products
// @Accept json
// @Produce json
// @Param request body object{designId=string,material=string,size=string,karat=int,color=string,hallmark=string,purity=string,weight=string,quantity=int,addToCart=bool} true "Product configuration"
// @Success 201 {object} object{success=bool,message=string,data=object}
// @Failure 400 {object} object{success=bool,error=string,field=string}
// @Failure 404 {object} object{success=bool,error=string}
// @Router /api/products [post]
func (h *StorefrontHandler) ConfigureProductDoc() {}

// ListProducts godoc
// @Summary List products
// @Tags Products
// @Produce json
// @Param designId query string false "Design filter"
// @Success 200 {object} object{success=bool,data=object{products=array,total=int}}
// @Router /api/products [get]
func (h *StorefrontHandler) ListProductsDoc() {}

// GetProduct godoc
// @Summary Get product by ID
// @Tags Products
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} object{success=bool,data=object}
// @Failure 404 {object} object{success=bool,error=string}
// @Router /api/products/{id} [get]
func (h *StorefrontHandler) GetProductDoc() {}

// DeleteProduct godoc
// @Summary Delete a product
// @Description Delete a product and drop it from the cart
// @Tags Products
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} object{success=bool,message=string}
// @Router /api/products/{id} [delete]
func (h *StorefrontHandler) DeleteProductDoc() {}

// GetOptions godoc
// @Summary Product options
// @Description Legal values for every configurable product field
// @Tags Products
// @Produce json
// @Success 200 {object} object{success=bool,data=object}
// @Router /api/options [get]
func (h *StorefrontHandler) GetOptionsDoc() {}

// GetCart godoc
// @Summary Get cart
// @Description Cart lines joined with products and designs, priced
// @Tags Cart
// @Produce json
// @Success 200 {object} object{success=bool,data=object}
// @Router /api/cart [get]
func (h *StorefrontHandler) GetCartDoc() {}

// CartCount godoc
// @Summary Cart badge count
// @Tags Cart
// @Produce json
// @Success 200 {object} object{success=bool,data=object{lines=int,units=int}}
// @Router /api/cart/count [get]
func (h *StorefrontHandler) CartCountDoc() {}

// AddToCart godoc
// @Summary Add to cart
// @Tags Cart
// @Accept json
// @Produce json
// @Param request body object{productId=string,quantity=int} true "Cart item"
// @Success 200 {object} object{success=bool,message=string,data=object}
// @Failure 400 {object} object{success=bool,error=string,field=string}
// @Failure 404 {object} object{success=bool,error=string}
// @Router /api/cart/items [post]
func (h *StorefrontHandler) AddToCartDoc() {}

// UpdateCartItem godoc
// @Summary Update cart quantity
// @Tags Cart
// @Accept json
// @Produce json
// @Param productId path string true "Product ID"
// @Param request body object{quantity=int} true "New quantity"
// @Success 200 {object} object{success=bool,message=string,data=object}
// @Failure 400 {object} object{success=bool,error=string,field=string}
// @Failure 404 {object} object{success=bool,error=string}
// @Router /api/cart/items/{productId} [patch]
func (h *StorefrontHandler) UpdateCartItemDoc() {}

// RemoveFromCart godoc
// @Summary Remove from cart
// @Tags Cart
// @Produce json
// @Param productId path string true "Product ID"
// @Success 200 {object} object{success=bool,message=string,data=object}
// @Router /api/cart/items/{productId} [delete]
func (h *StorefrontHandler) RemoveFromCartDoc() {}

// ClearCart godoc
// @Summary Clear cart
// @Tags Cart
// @Produce json
// @Success 200 {object} object{success=bool,message=string}
// @Router /api/cart [delete]
func (h *StorefrontHandler) ClearCartDoc() {}

// Checkout godoc
// @Summary Checkout
// @Description Submit the cart to the order service; the cart is cleared once the order is accepted
// @Tags Checkout
// @Accept json
// @Produce json
// @Param request body object{shipping=object{name=string,address=string,phone=string,email=string},payment_id=string} true "Checkout details"
// @Success 201 {object} object{success=bool,message=string,data=object{order_id=string}}
// @Failure 400 {object} object{success=bool,error=string,field=string}
// @Failure 502 {object} object{success=bool,error=string}
// @Router /api/checkout [post]
func (h *StorefrontHandler) CheckoutDoc() {}

// HealthCheck godoc
// @Summary Health check
// @Description Service health with store collection sizes
// @Tags Health
// @Produce json
// @Success 200 {object} object{success=bool,message=string,data=object}
// @Router /health [get]
func (h *StorefrontHandler) HealthCheckDoc() {}
