package handler

import (
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/expofair/exhibitor-portal/internal/core/ports"
)

// ContentHandler exposes the uniform list/upsert/delete flow for products,
// services, and gallery images. One handler serves all three collections;
// routes bind the kind.
type ContentHandler struct {
	content ports.ContentService
}

func NewContentHandler(content ports.ContentService) *ContentHandler {
	return &ContentHandler{content: content}
}

// List returns the listing handler for one content kind.
//
// @Summary      List products, services, or gallery images
// @Tags         content
// @Produce      json
// @Security     BearerAuth
// @Param        page   query  int  false  "Page number"
// @Param        limit  query  int  false  "Page size"
// @Router       /products [get]
func (h *ContentHandler) List(kind ports.ContentKind) echo.HandlerFunc {
	return func(c echo.Context) error {
		sess, err := ctxSession(c)
		if err != nil {
			return err
		}

		ctx := c.Request().Context()
		page, limit := queryInt(c, "page", 1), queryInt(c, "limit", 10)

		switch kind {
		case ports.KindProduct:
			docs, err := h.content.Products(ctx, sess.Token, page, limit)
			if err != nil {
				return err
			}
			return c.JSON(http.StatusOK, map[string]any{"docs": docs})
		case ports.KindService:
			docs, err := h.content.Services(ctx, sess.Token, page, limit)
			if err != nil {
				return err
			}
			return c.JSON(http.StatusOK, map[string]any{"docs": docs})
		case ports.KindGallery:
			docs, err := h.content.Gallery(ctx, sess.Token, page, limit)
			if err != nil {
				return err
			}
			return c.JSON(http.StatusOK, map[string]any{"docs": docs})
		default:
			return fmt.Errorf("list: unsupported content kind %q", kind)
		}
	}
}

type upsertContentRequest struct {
	ID          string `form:"id"`
	Name        string `form:"name" validate:"required"`
	Description string `form:"description"`
}

// Upsert returns the create-or-update handler for products or services.
// New image files arrive as multipart parts named "images"; when editing
// without new files, the "existing_images" fields must carry the URLs
// already stored.
//
// @Summary      Create or update a product or service
// @Tags         content
// @Accept       mpfd
// @Produce      json
// @Security     BearerAuth
// @Router       /products [post]
func (h *ContentHandler) Upsert(kind ports.ContentKind) echo.HandlerFunc {
	return func(c echo.Context) error {
		sess, err := ctxSession(c)
		if err != nil {
			return err
		}

		var req upsertContentRequest
		if err := c.Bind(&req); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
		}
		if err := c.Validate(&req); err != nil {
			return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
		}

		files, err := formFiles(c, "images")
		if err != nil {
			return err
		}

		form, err := c.MultipartForm()
		var existing []string
		if err == nil && form != nil {
			existing = form.Value["existing_images"]
		}

		in := ports.ContentUpsert{
			ID:             req.ID,
			Name:           req.Name,
			Description:    req.Description,
			Files:          files,
			ExistingImages: existing,
		}
		if err := h.content.Upsert(c.Request().Context(), sess.Token, kind, in); err != nil {
			return err
		}
		return c.JSON(http.StatusOK, map[string]string{"message": "saved"})
	}
}

// UploadGalleryImage handles a new gallery image upload.
//
// @Summary      Upload a gallery image
// @Tags         content
// @Accept       mpfd
// @Produce      json
// @Security     BearerAuth
// @Router       /gallery [post]
func (h *ContentHandler) UploadGalleryImage(c echo.Context) error {
	sess, err := ctxSession(c)
	if err != nil {
		return err
	}

	img, err := formFile(c, "image")
	if err != nil {
		return err
	}
	if img == nil {
		return echo.NewHTTPError(http.StatusBadRequest, "image is required")
	}

	in := ports.GalleryUpload{
		Image:       *img,
		Description: c.FormValue("description"),
	}
	if err := h.content.UploadGalleryImage(c.Request().Context(), sess.Token, in); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "uploaded"})
}

// Delete returns the deletion handler for one content kind.
//
// @Summary      Delete a product, service, or gallery image
// @Tags         content
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "Entity id"
// @Router       /products/{id} [delete]
func (h *ContentHandler) Delete(kind ports.ContentKind) echo.HandlerFunc {
	return func(c echo.Context) error {
		sess, err := ctxSession(c)
		if err != nil {
			return err
		}
		if err := h.content.Delete(c.Request().Context(), sess.Token, kind, c.Param("id")); err != nil {
			return err
		}
		return c.JSON(http.StatusOK, map[string]string{"message": "deleted"})
	}
}

// formFiles reads every multipart part under the given field name.
func formFiles(c echo.Context, field string) ([]ports.FileUpload, error) {
	form, err := c.MultipartForm()
	if err != nil || form == nil {
		return nil, nil
	}

	var files []ports.FileUpload
	for _, fh := range form.File[field] {
		f, err := readFileHeader(fh, field)
		if err != nil {
			return nil, err
		}
		files = append(files, f)
	}
	return files, nil
}

func readFileHeader(fh *multipart.FileHeader, field string) (ports.FileUpload, error) {
	if fh.Size > maxUploadBytes {
		return ports.FileUpload{}, echo.NewHTTPError(http.StatusRequestEntityTooLarge, field+" exceeds the upload size limit")
	}
	f, err := fh.Open()
	if err != nil {
		return ports.FileUpload{}, echo.NewHTTPError(http.StatusBadRequest, "unreadable "+field)
	}
	defer f.Close()

	content, err := io.ReadAll(io.LimitReader(f, maxUploadBytes))
	if err != nil {
		return ports.FileUpload{}, echo.NewHTTPError(http.StatusBadRequest, "unreadable "+field)
	}
	return ports.FileUpload{Field: field, Filename: fh.Filename, Content: content}, nil
}
