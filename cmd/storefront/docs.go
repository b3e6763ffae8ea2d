package main

// @title JewelKraft Storefront API
// @version 1.0
// @description Designs, products, cart and checkout for the AI jewelry storefront

// @contact.name API Support
// @contact.email support@example.com

// @host localhost:8080
// @BasePath /

// @tag.name Designs
// @tag.description Generated jewelry designs

// @tag.name Products
// @tag.description Configured products and the options catalog

// @tag.name Cart
// @tag.description Shopping cart and checkout

// @tag.name Health
// @tag.description Health check endpoints
