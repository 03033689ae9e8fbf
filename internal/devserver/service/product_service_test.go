package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/gadgetstore/storefront/internal/core/domain"
	coreports "github.com/gadgetstore/storefront/internal/core/ports"
)

type stubProductRepository struct {
	byID map[string]*domain.Product
	err  error
}

func newStubProductRepository() *stubProductRepository {
	return &stubProductRepository{byID: map[string]*domain.Product{}}
}

func (r *stubProductRepository) List(_ context.Context) ([]domain.Product, error) {
	if r.err != nil {
		return nil, r.err
	}
	out := []domain.Product{}
	for _, p := range r.byID {
		out = append(out, *p)
	}
	return out, nil
}

func (r *stubProductRepository) FindByID(_ context.Context, id string) (*domain.Product, error) {
	p, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrProductNotFound
	}
	return p, nil
}

func (r *stubProductRepository) Insert(_ context.Context, p *domain.Product) error {
	if r.err != nil {
		return r.err
	}
	r.byID[p.ID] = p
	return nil
}

func (r *stubProductRepository) Update(_ context.Context, p *domain.Product) error {
	if _, ok := r.byID[p.ID]; !ok {
		return domain.ErrProductNotFound
	}
	r.byID[p.ID] = p
	return nil
}

func (r *stubProductRepository) Delete(_ context.Context, id string) error {
	if _, ok := r.byID[id]; !ok {
		return domain.ErrProductNotFound
	}
	delete(r.byID, id)
	return nil
}

func productInput() coreports.ProductInput {
	return coreports.ProductInput{
		Name:        "Widget",
		Price:       9.99,
		Description: "A widget",
		Image:       "https://img.example/w.png",
	}
}

func TestProductService_CreateAssignsID(t *testing.T) {
	repo := newStubProductRepository()
	s := NewProductService(repo, zerolog.Nop())

	p, err := s.Create(context.Background(), productInput())
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if p.ID == "" {
		t.Fatal("expected a generated id")
	}
	if p.Name != "Widget" || p.Price != 9.99 {
		t.Fatalf("unexpected product: %+v", p)
	}

	stored, err := s.Get(context.Background(), p.ID)
	if err != nil || stored.ID != p.ID {
		t.Fatalf("created product not readable: %v %+v", err, stored)
	}
}

func TestProductService_Update(t *testing.T) {
	repo := newStubProductRepository()
	s := NewProductService(repo, zerolog.Nop())
	created, _ := s.Create(context.Background(), productInput())

	in := productInput()
	in.Name = "Widget v2"
	updated, err := s.Update(context.Background(), created.ID, in)
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if updated.Name != "Widget v2" {
		t.Fatalf("unexpected product: %+v", updated)
	}
}

func TestProductService_UpdateMissing(t *testing.T) {
	s := NewProductService(newStubProductRepository(), zerolog.Nop())

	_, err := s.Update(context.Background(), "ghost", productInput())
	if !errors.Is(err, domain.ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}
}

func TestProductService_Delete(t *testing.T) {
	repo := newStubProductRepository()
	s := NewProductService(repo, zerolog.Nop())
	created, _ := s.Create(context.Background(), productInput())

	if err := s.Delete(context.Background(), created.ID); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if err := s.Delete(context.Background(), created.ID); !errors.Is(err, domain.ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound on second delete, got %v", err)
	}
}
