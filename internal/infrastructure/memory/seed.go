package memory

import (
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/commodityhub/inventory-api/internal/domain/entity"
)

// SeedCredentials devuelve el set fijo de usuarios del sistema. El password en
// claro solo existe aquí; en el store queda únicamente el hash bcrypt.
func SeedCredentials() ([]entity.Credential, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	return []entity.Credential{
		{
			User: entity.User{
				ID:    "1",
				Name:  "Manager User",
				Email: "manager@commodityhub.com",
				Role:  entity.RoleManager,
			},
			PasswordHash: string(hash),
		},
		{
			User: entity.User{
				ID:    "2",
				Name:  "Store Keeper User",
				Email: "store@commodityhub.com",
				Role:  entity.RoleStoreKeeper,
			},
			PasswordHash: string(hash),
		},
	}, nil
}

// SeedProducts devuelve el catálogo inicial de commodities. El contador de IDs
// arranca después del último seed (6).
func SeedProducts() []entity.Product {
	return []entity.Product{
		{ID: "1", Name: "Wheat", Category: "Grains", SKU: "GRN-001", Price: decimal.NewFromFloat(25.50), Quantity: 150, Status: entity.StatusInStock},
		{ID: "2", Name: "Corn", Category: "Grains", SKU: "GRN-002", Price: decimal.NewFromFloat(20.00), Quantity: 5, Status: entity.StatusLowStock},
		{ID: "3", Name: "Rice", Category: "Grains", SKU: "GRN-003", Price: decimal.NewFromFloat(30.75), Quantity: 0, Status: entity.StatusOutOfStock},
		{ID: "4", Name: "Coffee Beans", Category: "Beverages", SKU: "BEV-001", Price: decimal.NewFromFloat(45.00), Quantity: 80, Status: entity.StatusInStock},
		{ID: "5", Name: "Sugar", Category: "Sweeteners", SKU: "SWT-001", Price: decimal.NewFromFloat(15.25), Quantity: 3, Status: entity.StatusLowStock},
	}
}

// SeedNextID primer ID libre después de los productos seed.
const SeedNextID = 6
