package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/expofair/exhibitor-portal/internal/api/metrics"
	"github.com/expofair/exhibitor-portal/internal/core/domain"
	"github.com/expofair/exhibitor-portal/internal/core/ports"
	"github.com/expofair/exhibitor-portal/internal/qr"
)

const minPasswordLength = 8

// ProfileService owns the principal's own record: profile edits, the QR
// artifact that follows them, and password changes.
type ProfileService struct {
	gw       ports.ProfileGateway
	auth     ports.AuthGateway
	generate func(principalID string) (ports.FileUpload, error)
	log      zerolog.Logger
}

func NewProfileService(gw ports.ProfileGateway, auth ports.AuthGateway, log zerolog.Logger) *ProfileService {
	return &ProfileService{gw: gw, auth: auth, generate: qr.Generate, log: log}
}

// Update validates and submits a profile edit, then regenerates and uploads
// the QR artifact for the updated principal. The profile mutation commits
// upstream first; a QR upload that still fails after one retry is reported
// as explicit partial success rather than masking the committed edit as a
// failure.
func (s *ProfileService) Update(ctx context.Context, token string, role domain.Role, in ports.ProfileUpdate) (*ports.ProfileResult, error) {
	if err := validateProfile(role, in); err != nil {
		return nil, err
	}

	principal, err := s.gw.UpdateProfile(ctx, token, in)
	if err != nil {
		return nil, err
	}
	metrics.ScreenFetchesTotal.WithLabelValues("profile").Inc()

	result := &ports.ProfileResult{Principal: principal}

	artifact, err := s.generate(principal.ID)
	if err != nil {
		s.log.Error().Err(err).Str("principal_id", principal.ID).Msg("qr generation failed")
		metrics.QRUploadsTotal.WithLabelValues("failed").Inc()
		return result, nil
	}

	url, err := s.gw.UpdateQR(ctx, token, artifact)
	if err != nil {
		metrics.QRUploadsTotal.WithLabelValues("retried").Inc()
		s.log.Warn().Err(err).Str("principal_id", principal.ID).Msg("qr upload failed, retrying once")
		url, err = s.gw.UpdateQR(ctx, token, artifact)
	}
	if err != nil {
		metrics.QRUploadsTotal.WithLabelValues("failed").Inc()
		s.log.Error().Err(err).Str("principal_id", principal.ID).Msg("qr upload failed after retry")
		return result, nil
	}

	metrics.QRUploadsTotal.WithLabelValues("success").Inc()
	principal.QRCode = url
	result.QRUpdated = true
	return result, nil
}

// ChangePassword applies the client-side rules before any network call:
// the confirmation must match and the new password must be at least eight
// characters.
func (s *ProfileService) ChangePassword(ctx context.Context, token string, role domain.Role, current, newPassword, confirm string) error {
	if current == "" {
		return domain.NewValidationError("currentPassword", "is required")
	}
	if len(newPassword) < minPasswordLength {
		return domain.NewValidationError("newPassword", "must be at least 8 characters")
	}
	if newPassword != confirm {
		return domain.NewValidationError("confirmPassword", "does not match new password")
	}
	return s.auth.ChangePassword(ctx, token, role, current, newPassword)
}

// validateProfile enforces the exhibitor image requirement: profile image,
// cover image, and company logo must each arrive as a new file or as an
// existing stored reference. A violation never reaches the network.
func validateProfile(role domain.Role, in ports.ProfileUpdate) error {
	if in.ID == "" {
		return domain.NewValidationError("id", "is required")
	}
	if in.Name == "" {
		return domain.NewValidationError("name", "is required")
	}
	if in.Email == "" {
		return domain.NewValidationError("email", "is required")
	}

	if role != domain.RoleExhibitor {
		return nil
	}

	slots := []struct {
		name     string
		file     *ports.FileUpload
		existing string
	}{
		{"profileImage", in.ProfileImage, in.ExistingProfileImage},
		{"coverImage", in.CoverImage, in.ExistingCoverImage},
		{"companyLogo", in.CompanyLogo, in.ExistingCompanyLogo},
	}
	for _, slot := range slots {
		if slot.file == nil && slot.existing == "" {
			return domain.NewValidationError(slot.name, "is required for exhibitors")
		}
	}
	return nil
}
