package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/expofair/exhibitor-portal/internal/api/metrics"
	"github.com/expofair/exhibitor-portal/internal/core/domain"
	"github.com/expofair/exhibitor-portal/internal/core/ports"
)

// ContentService is the uniform list/upsert/delete flow over the three
// exhibitor content collections.
type ContentService struct {
	gw  ports.ContentGateway
	log zerolog.Logger
}

func NewContentService(gw ports.ContentGateway, log zerolog.Logger) *ContentService {
	return &ContentService{gw: gw, log: log}
}

// Products fetches one page of products.
func (s *ContentService) Products(ctx context.Context, token string, page, limit int) ([]domain.Product, error) {
	metrics.ScreenFetchesTotal.WithLabelValues("products").Inc()
	return s.gw.ListProducts(ctx, token, page, limit)
}

// Services fetches one page of services.
func (s *ContentService) Services(ctx context.Context, token string, page, limit int) ([]domain.Service, error) {
	metrics.ScreenFetchesTotal.WithLabelValues("services").Inc()
	return s.gw.ListServices(ctx, token, page, limit)
}

// Gallery fetches one page of gallery images.
func (s *ContentService) Gallery(ctx context.Context, token string, page, limit int) ([]domain.GalleryImage, error) {
	metrics.ScreenFetchesTotal.WithLabelValues("gallery").Inc()
	return s.gw.ListGallery(ctx, token, page, limit)
}

// Upsert creates or updates a product or service. When editing without new
// files the caller must pass the entity's existing image URLs through; an
// edit that supplies neither would make the backend drop all images, so it
// is rejected before the network call.
func (s *ContentService) Upsert(ctx context.Context, token string, kind ports.ContentKind, in ports.ContentUpsert) error {
	if in.Name == "" {
		return domain.NewValidationError("name", "is required")
	}
	if in.ID != "" && len(in.Files) == 0 && len(in.ExistingImages) == 0 {
		return domain.NewValidationError("images", "editing requires new files or existing image references")
	}

	var err error
	switch kind {
	case ports.KindProduct:
		err = s.gw.UpsertProduct(ctx, token, in)
	case ports.KindService:
		err = s.gw.UpsertService(ctx, token, in)
	default:
		return fmt.Errorf("upsert: unsupported content kind %q", kind)
	}
	if err != nil {
		return err
	}

	s.log.Info().Str("kind", string(kind)).Str("name", in.Name).Bool("edit", in.ID != "").Msg("content saved")
	return nil
}

// UploadGalleryImage uploads a new gallery image.
func (s *ContentService) UploadGalleryImage(ctx context.Context, token string, in ports.GalleryUpload) error {
	if len(in.Image.Content) == 0 {
		return domain.NewValidationError("galleryImage", "is required")
	}
	return s.gw.UploadGalleryImage(ctx, token, in)
}

// Delete removes one entity from the given collection.
func (s *ContentService) Delete(ctx context.Context, token string, kind ports.ContentKind, id string) error {
	if id == "" {
		return domain.NewValidationError("id", "is required")
	}

	var err error
	switch kind {
	case ports.KindProduct:
		err = s.gw.DeleteProduct(ctx, token, id)
	case ports.KindService:
		err = s.gw.DeleteService(ctx, token, id)
	case ports.KindGallery:
		err = s.gw.DeleteGalleryImage(ctx, token, id)
	default:
		return fmt.Errorf("delete: unsupported content kind %q", kind)
	}
	if err != nil {
		return err
	}

	s.log.Info().Str("kind", string(kind)).Str("id", id).Msg("content deleted")
	return nil
}
