package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"sheetcrm/internal/model"
	"sheetcrm/internal/repository"
)

// EntityService provides CRUD and name search over one worksheet
type EntityService[T any] interface {
	Create(ctx context.Context, v T) error
	Get(ctx context.Context, id string) (*T, error)
	Update(ctx context.Context, id string, v T) error
	Delete(ctx context.Context, id string) error
	Search(ctx context.Context, query string) ([]T, error)
}

type (
	UserService     = EntityService[model.User]
	CustomerService = EntityService[model.Customer]
	ProductService  = EntityService[model.Product]
)

type entityService[T any] struct {
	repo   repository.Repository[T]
	entity string
	name   func(T) string
	withID func(T, string) T
}

// NewUserService creates a new UserService
func NewUserService(repo repository.UserRepository) UserService {
	return &entityService[model.User]{
		repo:   repo,
		entity: "User",
		name:   func(u model.User) string { return u.Name },
		withID: func(u model.User, id string) model.User { u.ID = id; return u },
	}
}

// NewCustomerService creates a new CustomerService
func NewCustomerService(repo repository.CustomerRepository) CustomerService {
	return &entityService[model.Customer]{
		repo:   repo,
		entity: "Customer",
		name:   func(c model.Customer) string { return c.Name },
		withID: func(c model.Customer, id string) model.Customer { c.ID = id; return c },
	}
}

// NewProductService creates a new ProductService
func NewProductService(repo repository.ProductRepository) ProductService {
	return &entityService[model.Product]{
		repo:   repo,
		entity: "Product",
		name:   func(p model.Product) string { return p.Name },
		withID: func(p model.Product, id string) model.Product { p.ID = id; return p },
	}
}

func (s *entityService[T]) Create(ctx context.Context, v T) error {
	if err := s.repo.Create(ctx, v); err != nil {
		return fmt.Errorf("failed to create %s in repo: %w", strings.ToLower(s.entity), err)
	}
	return nil
}

func (s *entityService[T]) Get(ctx context.Context, id string) (*T, error) {
	v, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to find %s by ID: %w", strings.ToLower(s.entity), err)
	}
	if v == nil {
		return nil, entityNotFound(s.entity)
	}
	return v, nil
}

// Update replaces the whole record. The path id is authoritative over the body id.
func (s *entityService[T]) Update(ctx context.Context, id string, v T) error {
	err := s.repo.Update(ctx, id, s.withID(v, id))
	if errors.Is(err, repository.ErrRowNotFound) {
		return entityNotFound(s.entity)
	}
	if err != nil {
		return fmt.Errorf("failed to update %s in repo: %w", strings.ToLower(s.entity), err)
	}
	return nil
}

func (s *entityService[T]) Delete(ctx context.Context, id string) error {
	err := s.repo.Delete(ctx, id)
	if errors.Is(err, repository.ErrRowNotFound) {
		return entityNotFound(s.entity)
	}
	if err != nil {
		return fmt.Errorf("failed to delete %s in repo: %w", strings.ToLower(s.entity), err)
	}
	return nil
}

// Search matches query as a case-insensitive substring of the name
func (s *entityService[T]) Search(ctx context.Context, query string) ([]T, error) {
	all, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to search %ss: %w", strings.ToLower(s.entity), err)
	}
	needle := strings.ToLower(query)
	matches := make([]T, 0)
	for _, v := range all {
		if strings.Contains(strings.ToLower(s.name(v)), needle) {
			matches = append(matches, v)
		}
	}
	return matches, nil
}
