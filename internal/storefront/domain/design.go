package domain

import "time"

// DesignStatus tracks where a design is in its lifecycle
type DesignStatus string

// Design statuses
const (
	DesignDraft   DesignStatus = "draft"
	DesignSaved   DesignStatus = "saved"
	DesignOrdered DesignStatus = "ordered"
)

// Design is one AI-generated jewelry concept: a prompt and the images it produced.
// Only Status changes after creation.
type Design struct {
	ID        string       `json:"id"`
	UserID    string       `json:"userId"`
	Prompt    string       `json:"prompt"`
	Images    []string     `json:"images"`
	CreatedAt time.Time    `json:"createdAt"`
	Status    DesignStatus `json:"status"`
}

// Clone returns a deep copy so callers never share the Images slice
func (d Design) Clone() Design {
	d.Images = append([]string(nil), d.Images...)
	return d
}

// CoverImage returns the first image or fallback when the design has none
func (d Design) CoverImage(fallback string) string {
	if len(d.Images) == 0 {
		return fallback
	}
	return d.Images[0]
}
