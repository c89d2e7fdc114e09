package dto

import "github.com/shopspring/decimal"

// ProductFormRequest campos del formulario de producto, para crear o editar.
// Las reglas de validación viven en form.ProductForm; los tags son la base
// estructural (el corte price > 0 es una regla custom sobre decimal).
type ProductFormRequest struct {
	Name     string          `json:"name" validate:"required,notblank"`
	Category string          `json:"category" validate:"required,notblank"`
	SKU      string          `json:"sku" validate:"required,notblank"`
	Price    decimal.Decimal `json:"price" validate:"dgt0"`
	Quantity int             `json:"quantity" validate:"min=0"`
	Status   string          `json:"status" validate:"required,oneof=IN_STOCK LOW_STOCK OUT_OF_STOCK"`
}

// UpdateProductRequest actualización parcial: campo nil conserva el valor previo.
type UpdateProductRequest struct {
	Name     *string          `json:"name"`
	Category *string          `json:"category"`
	SKU      *string          `json:"sku"`
	Price    *decimal.Decimal `json:"price"`
	Quantity *int             `json:"quantity"`
	Status   *string          `json:"status"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Category string          `json:"category"`
	SKU      string          `json:"sku"`
	Price    decimal.Decimal `json:"price"`
	Quantity int             `json:"quantity"`
	Status   string          `json:"status"`
}

// ProductSaveResponse resultado de crear o editar: el producto guardado más el
// aviso de éxito con su redirección temporizada.
type ProductSaveResponse struct {
	Product ProductResponse `json:"product"`
	Notice  Notice          `json:"notice"`
}

// ProductListResponse listado completo en orden de inserción.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Total int               `json:"total"`
}
