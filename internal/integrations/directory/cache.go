package directory

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/m04kA/SMC-VetClinicService/internal/domain"
)

// Resolver источник данных справочника
type Resolver interface {
	ResolveClient(ctx context.Context, id uuid.UUID) (*domain.ClientSummary, error)
	ResolvePet(ctx context.Context, id uuid.UUID) (*domain.PetSummary, error)
	ResolveEmployee(ctx context.Context, id uuid.UUID) (*domain.EmployeeSummary, error)
}

// CachedResolver LRU кэш с TTL поверх справочника
// Кэшируются только успешные ответы, ошибки всегда уходят в источник
type CachedResolver struct {
	next      Resolver
	clients   *expirable.LRU[uuid.UUID, *domain.ClientSummary]
	pets      *expirable.LRU[uuid.UUID, *domain.PetSummary]
	employees *expirable.LRU[uuid.UUID, *domain.EmployeeSummary]
}

// NewCachedResolver создает кэширующую обёртку
// size - размер каждого из трёх кэшей, ttl - время жизни записи
func NewCachedResolver(next Resolver, size int, ttl time.Duration) *CachedResolver {
	return &CachedResolver{
		next:      next,
		clients:   expirable.NewLRU[uuid.UUID, *domain.ClientSummary](size, nil, ttl),
		pets:      expirable.NewLRU[uuid.UUID, *domain.PetSummary](size, nil, ttl),
		employees: expirable.NewLRU[uuid.UUID, *domain.EmployeeSummary](size, nil, ttl),
	}
}

func (c *CachedResolver) ResolveClient(ctx context.Context, id uuid.UUID) (*domain.ClientSummary, error) {
	if v, ok := c.clients.Get(id); ok {
		return v, nil
	}
	v, err := c.next.ResolveClient(ctx, id)
	if err != nil {
		return nil, err
	}
	c.clients.Add(id, v)
	return v, nil
}

func (c *CachedResolver) ResolvePet(ctx context.Context, id uuid.UUID) (*domain.PetSummary, error) {
	if v, ok := c.pets.Get(id); ok {
		return v, nil
	}
	v, err := c.next.ResolvePet(ctx, id)
	if err != nil {
		return nil, err
	}
	c.pets.Add(id, v)
	return v, nil
}

func (c *CachedResolver) ResolveEmployee(ctx context.Context, id uuid.UUID) (*domain.EmployeeSummary, error) {
	if v, ok := c.employees.Get(id); ok {
		return v, nil
	}
	v, err := c.next.ResolveEmployee(ctx, id)
	if err != nil {
		return nil, err
	}
	c.employees.Add(id, v)
	return v, nil
}

// Purge очищает все кэши
func (c *CachedResolver) Purge() {
	c.clients.Purge()
	c.pets.Purge()
	c.employees.Purge()
}
