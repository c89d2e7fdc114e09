package entity

import "github.com/shopspring/decimal"

// Estados válidos para Product. El status lo fija el usuario; no se deriva
// automáticamente de Quantity (quantity 0 con IN_STOCK es representable).
const (
	StatusInStock    = "IN_STOCK"
	StatusLowStock   = "LOW_STOCK"
	StatusOutOfStock = "OUT_OF_STOCK"
)

// ValidStatus indica si s es uno de los tres estados conocidos.
func ValidStatus(s string) bool {
	return s == StatusInStock || s == StatusLowStock || s == StatusOutOfStock
}

// Product representa un producto commodity del inventario.
// ID lo asigna el backend (contador secuencial, estable durante la vida del registro).
// SKU es texto libre; su unicidad no se valida en este núcleo.
type Product struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Category string          `json:"category"`
	SKU      string          `json:"sku"`
	Price    decimal.Decimal `json:"price"`    // > 0 para ser válido al guardar
	Quantity int             `json:"quantity"` // >= 0
	Status   string          `json:"status"`   // IN_STOCK | LOW_STOCK | OUT_OF_STOCK
}

// ProductDraft son los campos que aporta el cliente al crear un producto.
// El ID lo asigna el store.
type ProductDraft struct {
	Name     string
	Category string
	SKU      string
	Price    decimal.Decimal
	Quantity int
	Status   string
}

// ProductPatch son campos opcionales para actualización parcial: un campo nil
// conserva el valor previo del registro.
type ProductPatch struct {
	Name     *string
	Category *string
	SKU      *string
	Price    *decimal.Decimal
	Quantity *int
	Status   *string
}
