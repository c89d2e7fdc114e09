// Package memory implementa el backend simulado: colección de productos en
// memoria y set fijo de credenciales, con latencia artificial por operación.
package memory

import (
	"context"
	"strconv"
	"sync"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/commodityhub/inventory-api/internal/domain"
	"github.com/commodityhub/inventory-api/internal/domain/entity"
	"github.com/commodityhub/inventory-api/internal/domain/repository"
)

// TokenFunc emite un token opaco para el usuario autenticado. Debe garantizar
// unicidad por llamada (dos logins nunca comparten token).
type TokenFunc func(user entity.User) (string, error)

// Latency latencias artificiales por operación. Cero desactiva la espera.
type Latency struct {
	Auth   time.Duration
	List   time.Duration
	Get    time.Duration
	Mutate time.Duration
}

// Config parámetros de construcción del store.
type Config struct {
	Credentials []entity.Credential
	Products    []entity.Product
	NextID      int64 // primer ID a asignar en Create
	Latency     Latency
	TokenFunc   TokenFunc
}

// Store es el dueño exclusivo de la colección canónica de productos y del set
// de credenciales. Instancia explícita con ciclo de vida inyectado: cada test
// construye la suya. Un solo actor lógico; las operaciones se serializan con
// el mutex y la latencia se espera fuera de la sección crítica.
type Store struct {
	mu          sync.Mutex
	credentials []entity.Credential
	products    []entity.Product
	nextID      int64
	latency     Latency
	tokenFn     TokenFunc
}

var _ repository.ProductRepository = (*Store)(nil)
var _ repository.Authenticator = (*Store)(nil)

// New construye el store con los datos iniciales de cfg.
func New(cfg Config) *Store {
	nextID := cfg.NextID
	if nextID <= 0 {
		nextID = int64(len(cfg.Products)) + 1
	}
	products := make([]entity.Product, len(cfg.Products))
	copy(products, cfg.Products)
	return &Store{
		credentials: cfg.Credentials,
		products:    products,
		nextID:      nextID,
		latency:     cfg.Latency,
		tokenFn:     cfg.TokenFunc,
	}
}

// Authenticate recorre el set fijo de credenciales y verifica el primer match
// exacto de email (sensible a mayúsculas) cuyo password coincida con el hash.
// Retorna domain.ErrInvalidCredentials si ningún par coincide.
func (s *Store) Authenticate(ctx context.Context, email, password string) (*entity.Session, error) {
	if err := s.wait(ctx, s.latency.Auth); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, cred := range s.credentials {
		if cred.User.Email != email {
			continue
		}
		if bcrypt.CompareHashAndPassword([]byte(cred.PasswordHash), []byte(password)) != nil {
			continue
		}
		token, err := s.tokenFn(cred.User)
		if err != nil {
			return nil, err
		}
		return &entity.Session{Token: token, User: cred.User}, nil
	}
	return nil, domain.ErrInvalidCredentials
}

// List devuelve una copia de la colección en orden de inserción.
func (s *Store) List(ctx context.Context) ([]*entity.Product, error) {
	if err := s.wait(ctx, s.latency.List); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]*entity.Product, 0, len(s.products))
	for i := range s.products {
		p := s.products[i]
		out = append(out, &p)
	}
	return out, nil
}

// GetByID devuelve una copia del producto, o nil, nil si no existe.
func (s *Store) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	if err := s.wait(ctx, s.latency.Get); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.products {
		if s.products[i].ID == id {
			p := s.products[i]
			return &p, nil
		}
	}
	return nil, nil
}

// Create asigna el siguiente ID del contador (monótono, nunca reutilizado) y
// agrega el producto al final de la colección.
func (s *Store) Create(ctx context.Context, draft entity.ProductDraft) (*entity.Product, error) {
	if err := s.wait(ctx, s.latency.Mutate); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	p := entity.Product{
		ID:       strconv.FormatInt(s.nextID, 10),
		Name:     draft.Name,
		Category: draft.Category,
		SKU:      draft.SKU,
		Price:    draft.Price,
		Quantity: draft.Quantity,
		Status:   draft.Status,
	}
	s.nextID++
	s.products = append(s.products, p)

	out := p
	return &out, nil
}

// Update fusiona los campos no-nil del patch sobre el registro existente, en
// su posición, sin tocar el ID. Retorna domain.ErrNotFound si el ID no existe.
func (s *Store) Update(ctx context.Context, id string, patch entity.ProductPatch) (*entity.Product, error) {
	if err := s.wait(ctx, s.latency.Mutate); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.products {
		if s.products[i].ID != id {
			continue
		}
		p := &s.products[i]
		if patch.Name != nil {
			p.Name = *patch.Name
		}
		if patch.Category != nil {
			p.Category = *patch.Category
		}
		if patch.SKU != nil {
			p.SKU = *patch.SKU
		}
		if patch.Price != nil {
			p.Price = *patch.Price
		}
		if patch.Quantity != nil {
			p.Quantity = *patch.Quantity
		}
		if patch.Status != nil {
			p.Status = *patch.Status
		}
		out := *p
		return &out, nil
	}
	return nil, domain.ErrNotFound
}

// wait suspende al llamador durante d respetando la cancelación del contexto.
// El llamador queda bloqueado en el select, nunca en spin.
func (s *Store) wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
