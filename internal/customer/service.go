package customer

import (
	"context"

	"github.com/nghia89/landingpage-wedding-sub000/pkg/log"
	"github.com/nghia89/landingpage-wedding-sub000/pkg/paging"
)

// Service is the customer domain logic. The CRM surface is small enough that
// it skips the usecase/repository split the bigger domains use.
type Service interface {
	Create(ctx context.Context, input CreateCustomerInput) (Customer, error)
	List(ctx context.Context, input ListCustomersInput) (ListCustomersOutput, error)
	Detail(ctx context.Context, id string) (Customer, error)
	Update(ctx context.Context, input UpdateCustomerInput) (Customer, error)
	Delete(ctx context.Context, id string) error
	CountAll(ctx context.Context) (int, error)
}

// Store is the persistence interface the service depends on.
type Store interface {
	Insert(ctx context.Context, c Customer) (Customer, error)
	GetByID(ctx context.Context, id string) (Customer, error)
	List(ctx context.Context, search string, page, limit int) ([]Customer, int, error)
	Update(ctx context.Context, c Customer) (Customer, error)
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int, error)
}

type service struct {
	store Store
	l     log.Logger
}

func NewService(store Store, l log.Logger) Service {
	return &service{store: store, l: l}
}

func (s *service) Create(ctx context.Context, input CreateCustomerInput) (Customer, error) {
	c, err := s.store.Insert(ctx, Customer{
		Name:        input.Name,
		Phone:       input.Phone,
		Email:       input.Email,
		WeddingDate: input.WeddingDate,
		Notes:       input.Notes,
	})
	if err != nil {
		s.l.Errorf(ctx, "customer.Create: %v", err)
		return Customer{}, err
	}
	return c, nil
}

func (s *service) List(ctx context.Context, input ListCustomersInput) (ListCustomersOutput, error) {
	page, limit := paging.Normalize(input.Page, input.Limit)
	customers, total, err := s.store.List(ctx, input.Search, page, limit)
	if err != nil {
		s.l.Errorf(ctx, "customer.List: %v", err)
		return ListCustomersOutput{}, err
	}
	p := paging.New(page, limit, total)
	return ListCustomersOutput{
		Customers: customers,
		Total:     total,
		Page:      p.Page,
		Limit:     p.Limit,
	}, nil
}

func (s *service) Detail(ctx context.Context, id string) (Customer, error) {
	c, err := s.store.GetByID(ctx, id)
	if err != nil {
		s.l.Errorf(ctx, "customer.Detail: %v", err)
		return Customer{}, err
	}
	if c.ID == "" {
		return Customer{}, ErrCustomerNotFound
	}
	return c, nil
}

func (s *service) Update(ctx context.Context, input UpdateCustomerInput) (Customer, error) {
	existing, err := s.Detail(ctx, input.ID)
	if err != nil {
		return Customer{}, err
	}

	existing.Name = coalesce(input.Name, existing.Name)
	existing.Phone = coalesce(input.Phone, existing.Phone)
	existing.Email = coalesce(input.Email, existing.Email)
	existing.WeddingDate = coalesce(input.WeddingDate, existing.WeddingDate)
	existing.Notes = coalesce(input.Notes, existing.Notes)

	c, err := s.store.Update(ctx, existing)
	if err != nil {
		s.l.Errorf(ctx, "customer.Update: %v", err)
		return Customer{}, err
	}
	return c, nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	if _, err := s.Detail(ctx, id); err != nil {
		return err
	}
	if err := s.store.Delete(ctx, id); err != nil {
		s.l.Errorf(ctx, "customer.Delete: %v", err)
		return err
	}
	return nil
}

func (s *service) CountAll(ctx context.Context) (int, error) {
	return s.store.Count(ctx)
}

func coalesce(newVal, existing string) string {
	if newVal != "" {
		return newVal
	}
	return existing
}
