package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/rs/zerolog"

	"github.com/gadgetstore/storefront/internal/client"
	"github.com/gadgetstore/storefront/internal/core/domain"
	"github.com/gadgetstore/storefront/internal/core/ports"
)

// UpsertController backs the product create/edit form. Editing starts from an
// existing product; creating starts blank. Save and upload each disable their
// own control while in flight.
type UpsertController struct {
	mu       sync.Mutex
	products ports.ProductAPI
	uploader ports.ImageUploader
	log      zerolog.Logger

	editingID string // empty when creating
	form      ports.ProductInput

	saving      bool
	uploading   bool
	fieldErrors map[string]string
}

// NewUpsertController prepares the form. product is nil when creating.
func NewUpsertController(products ports.ProductAPI, uploader ports.ImageUploader, product *domain.Product, log zerolog.Logger) *UpsertController {
	c := &UpsertController{products: products, uploader: uploader, log: log}
	if product != nil {
		c.editingID = product.ID
		c.form = ports.ProductInput{
			Name:        product.Name,
			Price:       product.Price,
			Description: product.Description,
			Image:       product.Image,
		}
	}
	return c
}

// Editing reports whether the form updates an existing product.
func (u *UpsertController) Editing() bool {
	return u.editingID != ""
}

// Form returns the current field values.
func (u *UpsertController) Form() ports.ProductInput {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.form
}

// SetForm replaces the field values as the user types.
func (u *UpsertController) SetForm(in ports.ProductInput) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.form = in
}

// FieldErrors returns per-field validation messages from the last submit.
func (u *UpsertController) FieldErrors() map[string]string {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.fieldErrors
}

// Saving reports whether a save is in flight.
func (u *UpsertController) Saving() bool {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.saving
}

// Uploading reports whether an image upload is in flight.
func (u *UpsertController) Uploading() bool {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.uploading
}

// Submit validates the form and creates or updates the product. The returned
// error is the API failure for the screen's alert; validation failures land
// in FieldErrors with no network call.
func (u *UpsertController) Submit(ctx context.Context) error {
	u.mu.Lock()
	if u.saving {
		u.mu.Unlock()
		return nil
	}
	u.fieldErrors = validateForm(u.form)
	if u.fieldErrors != nil {
		u.mu.Unlock()
		return nil
	}
	u.saving = true
	in := u.form
	u.mu.Unlock()

	var err error
	if u.editingID != "" {
		_, err = u.products.UpdateProduct(ctx, u.editingID, in)
	} else {
		_, err = u.products.CreateProduct(ctx, in)
	}

	u.mu.Lock()
	u.saving = false
	u.mu.Unlock()

	if err != nil {
		u.log.Warn().Err(err).Str("product_id", u.editingID).Msg("failed to save product")
	}
	return err
}

// UploadImage sends the picked file and, on success, fills the form's image
// field with the returned URL. A 404 is reported with a configuration hint
// since it almost always means the API base URL points at the wrong backend.
func (u *UpsertController) UploadImage(ctx context.Context, filename string, r io.Reader) error {
	u.mu.Lock()
	if u.uploading {
		u.mu.Unlock()
		return nil
	}
	u.uploading = true
	u.mu.Unlock()

	url, err := u.uploader.UploadImage(ctx, filename, r)

	u.mu.Lock()
	defer u.mu.Unlock()
	u.uploading = false
	if err != nil {
		u.log.Warn().Err(err).Msg("image upload failed")
		return uploadError(err)
	}
	u.form.Image = url
	return nil
}

// uploadError shapes an upload failure for display.
func uploadError(err error) error {
	var apiErr *client.APIError
	if errors.As(err, &apiErr) {
		if apiErr.Status == 404 {
			return fmt.Errorf("upload endpoint not found (404): check that the backend is running and exposes POST /products/upload-image, and that the API base URL is configured correctly")
		}
		return fmt.Errorf("upload failed (%d): %s", apiErr.Status, apiErr.Message)
	}
	return fmt.Errorf("upload failed (network): %w", err)
}
