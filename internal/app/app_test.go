package app

import (
	"context"
	"io"

	"github.com/gadgetstore/storefront/internal/core/domain"
	"github.com/gadgetstore/storefront/internal/core/ports"
)

// stubProductAPI is a scriptable ports.ProductAPI for controller tests.
type stubProductAPI struct {
	products []domain.Product
	listErr  error

	created   []ports.ProductInput
	updated   map[string]ports.ProductInput
	deleted   []string
	mutateErr error
}

func (s *stubProductAPI) ListProducts(_ context.Context) ([]domain.Product, error) {
	if s.listErr != nil {
		return nil, s.listErr
	}
	return s.products, nil
}

func (s *stubProductAPI) GetProduct(_ context.Context, id string) (domain.Product, error) {
	for _, p := range s.products {
		if p.ID == id {
			return p, nil
		}
	}
	return domain.Product{}, domain.ErrProductNotFound
}

func (s *stubProductAPI) CreateProduct(_ context.Context, in ports.ProductInput) (domain.Product, error) {
	if s.mutateErr != nil {
		return domain.Product{}, s.mutateErr
	}
	s.created = append(s.created, in)
	return domain.Product{ID: "created", Name: in.Name, Price: in.Price}, nil
}

func (s *stubProductAPI) UpdateProduct(_ context.Context, id string, in ports.ProductInput) (domain.Product, error) {
	if s.mutateErr != nil {
		return domain.Product{}, s.mutateErr
	}
	if s.updated == nil {
		s.updated = map[string]ports.ProductInput{}
	}
	s.updated[id] = in
	return domain.Product{ID: id, Name: in.Name, Price: in.Price}, nil
}

func (s *stubProductAPI) DeleteProduct(_ context.Context, id string) error {
	if s.mutateErr != nil {
		return s.mutateErr
	}
	s.deleted = append(s.deleted, id)
	return nil
}

// stubUploader is a scriptable ports.ImageUploader.
type stubUploader struct {
	url   string
	err   error
	calls int
}

func (s *stubUploader) UploadImage(_ context.Context, _ string, r io.Reader) (string, error) {
	s.calls++
	_, _ = io.Copy(io.Discard, r)
	if s.err != nil {
		return "", s.err
	}
	return s.url, nil
}

// stubAuthAPI is a scriptable ports.AuthAPI.
type stubAuthAPI struct {
	session domain.Session
	err     error
	calls   int
}

func (s *stubAuthAPI) Login(_ context.Context, _, _ string) (domain.Session, error) {
	s.calls++
	if s.err != nil {
		return domain.Session{}, s.err
	}
	return s.session, nil
}

// nopStorage is a ports.SessionStorage that keeps nothing.
type nopStorage struct{}

func (nopStorage) Load(_ context.Context) (domain.Session, bool, error) {
	return domain.Session{}, false, nil
}
func (nopStorage) Save(_ context.Context, _ domain.Session) error { return nil }
func (nopStorage) Clear(_ context.Context) error                  { return nil }
