package usecase

import (
	"context"

	"github.com/commodityhub/inventory-api/internal/application/dto"
	"github.com/commodityhub/inventory-api/internal/application/form"
	"github.com/commodityhub/inventory-api/internal/domain"
	"github.com/commodityhub/inventory-api/internal/domain/entity"
	"github.com/commodityhub/inventory-api/internal/domain/repository"
)

// ValidationError agrupa los errores por campo del formulario; la vista los
// muestra junto a cada input.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string { return "formulario inválido" }

// ProductUseCase casos de uso CRUD para productos sobre el store canónico.
// La vista solo maneja copias de trabajo; la colección vive en el repositorio.
type ProductUseCase struct {
	repo repository.ProductRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

// List devuelve el listado completo en orden de inserción.
func (uc *ProductUseCase) List(ctx context.Context) (*dto.ProductListResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return &dto.ProductListResponse{Items: items, Total: len(items)}, nil
}

// GetByID obtiene un producto por ID. Retorna nil, nil si no existe.
func (uc *ProductUseCase) GetByID(ctx context.Context, id string) (*dto.ProductResponse, error) {
	p, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toProductResponse(p), nil
}

// Create valida el formulario completo y crea el producto. El ID lo asigna el
// store.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.ProductFormRequest) (*dto.ProductResponse, error) {
	f := form.FromRequest(in)
	if !f.Validate() {
		return nil, &ValidationError{Fields: f.Errors()}
	}
	p, err := uc.repo.Create(ctx, f.Draft())
	if err != nil {
		return nil, err
	}
	return toProductResponse(p), nil
}

// Update aplica una actualización parcial: carga el registro, superpone los
// campos enviados sobre el formulario y valida el resultado fusionado antes de
// persistir. Retorna domain.ErrNotFound si el ID no existe.
func (uc *ProductUseCase) Update(ctx context.Context, id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	existing, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, domain.ErrNotFound
	}

	f := form.Load(*existing)
	if in.Name != nil {
		f.SetName(*in.Name)
	}
	if in.Category != nil {
		f.SetCategory(*in.Category)
	}
	if in.SKU != nil {
		f.SetSKU(*in.SKU)
	}
	if in.Price != nil {
		f.SetPrice(*in.Price)
	}
	if in.Quantity != nil {
		f.SetQuantity(*in.Quantity)
	}
	if in.Status != nil {
		f.SetStatus(*in.Status)
	}
	if !f.Validate() {
		return nil, &ValidationError{Fields: f.Errors()}
	}

	p, err := uc.repo.Update(ctx, id, entity.ProductPatch{
		Name:     in.Name,
		Category: in.Category,
		SKU:      in.SKU,
		Price:    in.Price,
		Quantity: in.Quantity,
		Status:   in.Status,
	})
	if err != nil {
		return nil, err
	}
	return toProductResponse(p), nil
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:       p.ID,
		Name:     p.Name,
		Category: p.Category,
		SKU:      p.SKU,
		Price:    p.Price,
		Quantity: p.Quantity,
		Status:   p.Status,
	}
}
