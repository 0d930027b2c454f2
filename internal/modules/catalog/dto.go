package catalog

import "equiprent/internal/repository"

// CreateRequest is shared by brands and categories.
type CreateRequest struct {
	Name        string  `json:"name" binding:"required,max=255"`
	Description *string `json:"description"`
}

type UpdateRequest struct {
	Name        *string `json:"name" binding:"omitempty,min=1,max=255"`
	Description *string `json:"description"`
}

func (r UpdateRequest) toPatch() repository.CatalogPatch {
	return repository.CatalogPatch{Name: r.Name, Description: r.Description}
}
