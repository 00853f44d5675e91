package gateway

import (
	"context"
	"net/url"

	"github.com/expofair/exhibitor-portal/internal/core/domain"
	"github.com/expofair/exhibitor-portal/internal/core/ports"
)

type contentListEnvelope struct {
	Data struct {
		Docs []contentDTO `json:"docs"`
	} `json:"data"`
}

func (c *Client) listContent(ctx context.Context, token, path string, page, limit int, fallback string) ([]contentDTO, error) {
	body := map[string]int{"page": page, "limit": limit}
	var resp contentListEnvelope
	if err := c.postJSON(ctx, token, path, body, &resp, fallback); err != nil {
		return nil, err
	}
	return resp.Data.Docs, nil
}

// ListProducts fetches one page of the exhibitor's products.
func (c *Client) ListProducts(ctx context.Context, token string, page, limit int) ([]domain.Product, error) {
	docs, err := c.listContent(ctx, token, "/user/get-products", page, limit, "failed to load products")
	if err != nil {
		return nil, err
	}
	products := make([]domain.Product, 0, len(docs))
	for _, d := range docs {
		products = append(products, domain.Product{
			ID:          d.ID,
			Name:        d.Name,
			Description: d.Description,
			Images:      d.Images,
			CreatedAt:   d.CreatedAt,
		})
	}
	return products, nil
}

// ListServices fetches one page of the exhibitor's services.
func (c *Client) ListServices(ctx context.Context, token string, page, limit int) ([]domain.Service, error) {
	docs, err := c.listContent(ctx, token, "/user/get-services", page, limit, "failed to load services")
	if err != nil {
		return nil, err
	}
	services := make([]domain.Service, 0, len(docs))
	for _, d := range docs {
		services = append(services, domain.Service{
			ID:          d.ID,
			Name:        d.Name,
			Description: d.Description,
			Images:      d.Images,
			CreatedAt:   d.CreatedAt,
		})
	}
	return services, nil
}

// ListGallery fetches one page of the exhibitor's gallery images.
func (c *Client) ListGallery(ctx context.Context, token string, page, limit int) ([]domain.GalleryImage, error) {
	body := map[string]int{"page": page, "limit": limit}
	var resp struct {
		Data struct {
			Docs []galleryImageDTO `json:"docs"`
		} `json:"data"`
	}
	if err := c.postJSON(ctx, token, "/user/get-gallery-images", body, &resp, "failed to load gallery"); err != nil {
		return nil, err
	}
	images := make([]domain.GalleryImage, 0, len(resp.Data.Docs))
	for _, d := range resp.Data.Docs {
		images = append(images, domain.GalleryImage{
			ID:          d.ID,
			FileURL:     d.FileURL,
			Description: d.Description,
			UploadDate:  d.UploadDate,
		})
	}
	return images, nil
}

// upsertContent builds the shared multipart payload for product and service
// create-or-update. When editing without new files, the existing image URLs
// are resent so the backend does not treat omission as deletion.
func (c *Client) upsertContent(ctx context.Context, token, path string, in ports.ContentUpsert, fallback string) error {
	fields := url.Values{}
	fields.Set("name", in.Name)
	if in.Description != "" {
		fields.Set("description", in.Description)
	}
	if in.ID != "" {
		fields.Set("id", in.ID)
	}
	files := make([]ports.FileUpload, 0, len(in.Files))
	for _, f := range in.Files {
		f.Field = "images"
		files = append(files, f)
	}
	if len(in.Files) == 0 {
		for _, u := range in.ExistingImages {
			fields.Add("existingImages", u)
		}
	}
	return c.postMultipart(ctx, token, path, fields, files, nil, fallback)
}

// UpsertProduct creates or updates a product.
func (c *Client) UpsertProduct(ctx context.Context, token string, in ports.ContentUpsert) error {
	return c.upsertContent(ctx, token, "/user/update-products", in, "failed to save product")
}

// UpsertService creates or updates a service.
func (c *Client) UpsertService(ctx context.Context, token string, in ports.ContentUpsert) error {
	return c.upsertContent(ctx, token, "/user/update-services", in, "failed to save service")
}

// UploadGalleryImage uploads a new gallery image.
func (c *Client) UploadGalleryImage(ctx context.Context, token string, in ports.GalleryUpload) error {
	fields := url.Values{}
	if in.Description != "" {
		fields.Set("description", in.Description)
	}
	img := in.Image
	img.Field = "galleryImage"
	return c.postMultipart(ctx, token, "/user/upload-gallery-image", fields, []ports.FileUpload{img}, nil, "failed to upload image")
}

// DeleteProduct removes a product by id.
func (c *Client) DeleteProduct(ctx context.Context, token, id string) error {
	return c.postJSON(ctx, token, "/user/delete-products", map[string]string{"id": id}, nil, "failed to delete product")
}

// DeleteService removes a service by id.
func (c *Client) DeleteService(ctx context.Context, token, id string) error {
	return c.postJSON(ctx, token, "/user/delete-services", map[string]string{"id": id}, nil, "failed to delete service")
}

// DeleteGalleryImage removes a gallery image by id.
func (c *Client) DeleteGalleryImage(ctx context.Context, token, id string) error {
	return c.postJSON(ctx, token, "/user/delete-gallery-image", map[string]string{"id": id}, nil, "failed to delete image")
}
