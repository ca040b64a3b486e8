package dto

import "time"

// CreateMaterialRequest entrada para crear un material.
type CreateMaterialRequest struct {
	Name string `json:"name"`
	Unit string `json:"unit"`
}

// MaterialResponse salida de un material.
type MaterialResponse struct {
	ID        string    `json:"id"`
	CompanyID string    `json:"company_id"`
	Name      string    `json:"name"`
	Unit      string    `json:"unit"`
	CreatedAt time.Time `json:"created_at"`
}

// MaterialListResponse lista paginada de materiales.
type MaterialListResponse struct {
	Items []MaterialResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}

// CreateProductRequest entrada para crear un producto.
type CreateProductRequest struct {
	Name string `json:"name"`
	Unit string `json:"unit"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID        string    `json:"id"`
	CompanyID string    `json:"company_id"`
	Name      string    `json:"name"`
	Unit      string    `json:"unit"`
	CreatedAt time.Time `json:"created_at"`
}

// ProductListResponse lista paginada de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}

// BOMLineRequest línea de la lista de materiales a reemplazar.
type BOMLineRequest struct {
	MaterialID string `json:"material_id"`
	Quantity   string `json:"quantity"` // decimal en texto
}

// ReplaceBOMRequest reemplazo completo de la lista de materiales de un producto.
type ReplaceBOMRequest struct {
	Lines []BOMLineRequest `json:"lines"`
}

// BOMLineResponse salida de una línea de BOM.
type BOMLineResponse struct {
	MaterialID string `json:"material_id"`
	Quantity   string `json:"quantity"`
}

// BOMResponse lista de materiales de un producto.
type BOMResponse struct {
	ProductID string            `json:"product_id"`
	Lines     []BOMLineResponse `json:"lines"`
}
