package usecase

import (
	"context"

	"github.com/commodityhub/inventory-api/internal/application/dto"
	"github.com/commodityhub/inventory-api/internal/domain/entity"
	"github.com/commodityhub/inventory-api/internal/domain/repository"
)

// DashboardUseCase genera el resumen del inventario para el dashboard.
// Solo lectura; delega todo el acceso a datos en el repositorio.
type DashboardUseCase struct {
	repo repository.ProductRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(repo repository.ProductRepository) *DashboardUseCase {
	return &DashboardUseCase{repo: repo}
}

// GetSummary agrega totales y conteos por status sobre el listado completo.
// El conteo usa el status declarado por el usuario: un producto con quantity 0
// y status IN_STOCK cuenta como IN_STOCK.
func (uc *DashboardUseCase) GetSummary(ctx context.Context) (*dto.DashboardSummaryDTO, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	summary := &dto.DashboardSummaryDTO{TotalProducts: len(list)}
	for _, p := range list {
		summary.TotalQuantity += p.Quantity
		switch p.Status {
		case entity.StatusInStock:
			summary.InStockCount++
		case entity.StatusLowStock:
			summary.LowStockCount++
		case entity.StatusOutOfStock:
			summary.OutOfStockCount++
		}
	}
	return summary, nil
}
