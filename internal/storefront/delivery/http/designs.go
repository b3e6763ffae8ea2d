package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/tair/jewelkraft/internal/storefront/domain"
	"github.com/tair/jewelkraft/internal/storefront/usecase/command"
	"github.com/tair/jewelkraft/internal/storefront/usecase/query"
)

// GenerateDesign handles POST /api/designs/generate
func (h *StorefrontHandler) GenerateDesign(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Prompt string `json:"prompt"`
		UserID string `json:"userId"`
	}
	if !decodeBody(w, r, &req) {
		return
	}

	design, err := h.commands.GenerateDesign.Handle(r.Context(), command.GenerateDesignCommand{
		UserID: req.UserID,
		Prompt: req.Prompt,
	})
	if err != nil {
		respondError(w, r, err, "Failed to generate design")
		return
	}

	respondJSON(w, http.StatusCreated, Response{
		Success: true,
		Message: "Design generated successfully",
		Data:    design,
	})
}

// ListDesigns handles GET /api/designs
func (h *StorefrontHandler) ListDesigns(w http.ResponseWriter, r *http.Request) {
	q := query.ListDesignsQuery{
		UserID: r.URL.Query().Get("userId"),
		Status: domain.DesignStatus(r.URL.Query().Get("status")),
	}

	designs := h.queries.ListDesigns.Handle(r.Context(), q)

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data: map[string]interface{}{
			"designs": designs,
			"total":   len(designs),
		},
	})
}

// GetDesign handles GET /api/designs/{id}
func (h *StorefrontHandler) GetDesign(w http.ResponseWriter, r *http.Request) {
	design, err := h.queries.GetDesign.Handle(r.Context(), query.GetDesignQuery{ID: mux.Vars(r)["id"]})
	if err != nil {
		respondError(w, r, err, "Failed to get design")
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    design,
	})
}

// SaveDesign handles PUT /api/designs/{id}/save
func (h *StorefrontHandler) SaveDesign(w http.ResponseWriter, r *http.Request) {
	design, err := h.commands.SaveDesign.Handle(r.Context(), command.SaveDesignCommand{ID: mux.Vars(r)["id"]})
	if err != nil {
		respondError(w, r, err, "Failed to save design")
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Design saved successfully",
		Data:    design,
	})
}

// DeleteDesign handles DELETE /api/designs/{id}
func (h *StorefrontHandler) DeleteDesign(w http.ResponseWriter, r *http.Request) {
	if err := h.commands.DeleteDesign.Handle(r.Context(), command.DeleteDesignCommand{ID: mux.Vars(r)["id"]}); err != nil {
		respondError(w, r, err, "Failed to delete design")
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Design deleted successfully",
	})
}
