package repository

import (
	"context"

	"github.com/commodityhub/inventory-api/internal/domain/entity"
)

// ProductRepository define el puerto de acceso a la colección canónica de
// productos (DIP). Las implementaciones devuelven copias: mutar el resultado
// no afecta el estado del store.
type ProductRepository interface {
	// List devuelve la colección completa en orden de inserción.
	List(ctx context.Context) ([]*entity.Product, error)
	// GetByID devuelve nil, nil si el producto no existe.
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	// Create asigna un ID nuevo (contador monótono, nunca reutilizado) y
	// agrega el producto al final de la colección.
	Create(ctx context.Context, draft entity.ProductDraft) (*entity.Product, error)
	// Update fusiona los campos no-nil del patch sobre el registro existente,
	// sin cambiar ID ni posición. Retorna domain.ErrNotFound si el ID no existe.
	Update(ctx context.Context, id string, patch entity.ProductPatch) (*entity.Product, error)
}
