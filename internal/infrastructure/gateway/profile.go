package gateway

import (
	"context"
	"net/url"

	"github.com/expofair/exhibitor-portal/internal/core/domain"
	"github.com/expofair/exhibitor-portal/internal/core/ports"
)

// UpdateProfile submits the profile edit as multipart form data. Image slots
// travel either as file parts or as existing-URL fields, never both for the
// same slot.
func (c *Client) UpdateProfile(ctx context.Context, token string, in ports.ProfileUpdate) (*domain.Principal, error) {
	fields := url.Values{}
	fields.Set("id", in.ID)
	fields.Set("name", in.Name)
	fields.Set("email", in.Email)
	fields.Set("mobile", in.Mobile)
	if in.CompanyName != "" {
		fields.Set("companyName", in.CompanyName)
	}
	if in.Designation != "" {
		fields.Set("designation", in.Designation)
	}
	if in.About != "" {
		fields.Set("about", in.About)
	}

	var files []ports.FileUpload
	addSlot := func(field string, file *ports.FileUpload, existing, existingField string) {
		if file != nil {
			f := *file
			f.Field = field
			files = append(files, f)
			return
		}
		if existing != "" {
			fields.Set(existingField, existing)
		}
	}
	addSlot("profileImage", in.ProfileImage, in.ExistingProfileImage, "existingProfileImage")
	addSlot("coverImage", in.CoverImage, in.ExistingCoverImage, "existingCoverImage")
	addSlot("companyLogo", in.CompanyLogo, in.ExistingCompanyLogo, "existingCompanyLogo")

	var resp struct {
		Data principalDTO `json:"data"`
	}
	if err := c.postMultipart(ctx, token, "/user/update-profile", fields, files, &resp, "failed to update profile"); err != nil {
		return nil, err
	}
	p := resp.Data.toDomain()
	return &p, nil
}

// UpdateQR uploads the freshly generated QR artifact and returns its stored
// URL.
func (c *Client) UpdateQR(ctx context.Context, token string, qr ports.FileUpload) (string, error) {
	qr.Field = "qrCode"
	var resp struct {
		Data struct {
			QRCode string `json:"qrCode"`
		} `json:"data"`
	}
	if err := c.postMultipart(ctx, token, "/user/update-qr", nil, []ports.FileUpload{qr}, &resp, "failed to update QR code"); err != nil {
		return "", err
	}
	return resp.Data.QRCode, nil
}
