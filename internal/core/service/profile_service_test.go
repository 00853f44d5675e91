package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/expofair/exhibitor-portal/internal/core/domain"
	"github.com/expofair/exhibitor-portal/internal/core/ports"
)

type stubProfileGateway struct {
	updateProfileFn func(ctx context.Context, token string, in ports.ProfileUpdate) (*domain.Principal, error)
	updateQRFn      func(ctx context.Context, token string, qr ports.FileUpload) (string, error)
}

func (s *stubProfileGateway) UpdateProfile(ctx context.Context, token string, in ports.ProfileUpdate) (*domain.Principal, error) {
	return s.updateProfileFn(ctx, token, in)
}

func (s *stubProfileGateway) UpdateQR(ctx context.Context, token string, qr ports.FileUpload) (string, error) {
	return s.updateQRFn(ctx, token, qr)
}

func validUpdate() ports.ProfileUpdate {
	return ports.ProfileUpdate{
		ID:                   "e_1",
		Name:                 "Acme Corp",
		Email:                "acme@x.com",
		ExistingProfileImage: "https://cdn/profile.png",
		ExistingCoverImage:   "https://cdn/cover.png",
		ExistingCompanyLogo:  "https://cdn/logo.png",
	}
}

func newProfileService(gw *stubProfileGateway, auth *stubAuthGateway) *ProfileService {
	svc := NewProfileService(gw, auth, zerolog.Nop())
	svc.generate = func(principalID string) (ports.FileUpload, error) {
		return ports.FileUpload{Field: "qrCode", Filename: "qr-" + principalID + ".png", Content: []byte("png")}, nil
	}
	return svc
}

func TestProfileService_Update_ExhibitorRequiresAllImageSlots(t *testing.T) {
	gw := &stubProfileGateway{
		updateProfileFn: func(context.Context, string, ports.ProfileUpdate) (*domain.Principal, error) {
			t.Fatalf("invalid profile must not reach the backend")
			return nil, nil
		},
	}
	svc := newProfileService(gw, &stubAuthGateway{})

	in := validUpdate()
	in.ExistingCoverImage = ""

	_, err := svc.Update(context.Background(), "tok", domain.RoleExhibitor, in)
	var ve *domain.ValidationError
	if !errors.As(err, &ve) || ve.Field != "coverImage" {
		t.Fatalf("expected coverImage validation error, got %v", err)
	}
}

func TestProfileService_Update_VisitorExemptFromImageSlots(t *testing.T) {
	gw := &stubProfileGateway{
		updateProfileFn: func(context.Context, string, ports.ProfileUpdate) (*domain.Principal, error) {
			return &domain.Principal{ID: "v_1", Name: "Visitor", Role: domain.RoleVisitor}, nil
		},
		updateQRFn: func(context.Context, string, ports.FileUpload) (string, error) {
			return "https://cdn/qr.png", nil
		},
	}
	svc := newProfileService(gw, &stubAuthGateway{})

	result, err := svc.Update(context.Background(), "tok", domain.RoleVisitor, ports.ProfileUpdate{
		ID: "v_1", Name: "Visitor", Email: "v@x.com",
	})
	if err != nil {
		t.Fatalf("visitor update: %v", err)
	}
	if !result.QRUpdated {
		t.Fatalf("expected QR updated")
	}
	if result.Principal.QRCode != "https://cdn/qr.png" {
		t.Fatalf("qr url not applied: %+v", result.Principal)
	}
}

func TestProfileService_Update_QRRetriedOnce(t *testing.T) {
	attempts := 0
	gw := &stubProfileGateway{
		updateProfileFn: func(context.Context, string, ports.ProfileUpdate) (*domain.Principal, error) {
			return &domain.Principal{ID: "e_1", Role: domain.RoleExhibitor}, nil
		},
		updateQRFn: func(context.Context, string, ports.FileUpload) (string, error) {
			attempts++
			if attempts == 1 {
				return "", &domain.UpstreamError{StatusCode: 502, Message: "upstream hiccup"}
			}
			return "https://cdn/qr.png", nil
		},
	}
	svc := newProfileService(gw, &stubAuthGateway{})

	result, err := svc.Update(context.Background(), "tok", domain.RoleExhibitor, validUpdate())
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if attempts != 2 {
		t.Fatalf("expected one retry, got %d attempts", attempts)
	}
	if !result.QRUpdated {
		t.Fatalf("retry succeeded, QRUpdated must be true")
	}
}

func TestProfileService_Update_QRFailureIsPartialSuccess(t *testing.T) {
	attempts := 0
	gw := &stubProfileGateway{
		updateProfileFn: func(context.Context, string, ports.ProfileUpdate) (*domain.Principal, error) {
			return &domain.Principal{ID: "e_1", Name: "Acme Corp", Role: domain.RoleExhibitor}, nil
		},
		updateQRFn: func(context.Context, string, ports.FileUpload) (string, error) {
			attempts++
			return "", &domain.UpstreamError{StatusCode: 502, Message: "still down"}
		},
	}
	svc := newProfileService(gw, &stubAuthGateway{})

	result, err := svc.Update(context.Background(), "tok", domain.RoleExhibitor, validUpdate())
	// The profile edit committed upstream, so the operation as a whole
	// succeeds with the QR flagged as not updated.
	if err != nil {
		t.Fatalf("committed edit must not surface as failure: %v", err)
	}
	if attempts != 2 {
		t.Fatalf("expected exactly one retry, got %d attempts", attempts)
	}
	if result.QRUpdated {
		t.Fatalf("QRUpdated must be false after exhausted retry")
	}
	if result.Principal == nil || result.Principal.Name != "Acme Corp" {
		t.Fatalf("updated principal must be returned: %+v", result.Principal)
	}
}

func TestProfileService_ChangePassword_ClientSideRules(t *testing.T) {
	auth := &stubAuthGateway{
		changePasswordFn: func(context.Context, string, domain.Role, string, string) error {
			t.Fatalf("invalid password change must not reach the backend")
			return nil
		},
	}
	svc := newProfileService(&stubProfileGateway{}, auth)

	tests := []struct {
		name      string
		current   string
		next      string
		confirm   string
		wantField string
	}{
		{"missing current", "", "longenough1", "longenough1", "currentPassword"},
		{"too short", "oldpass1", "short", "short", "newPassword"},
		{"mismatch", "oldpass1", "longenough1", "different1", "confirmPassword"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := svc.ChangePassword(context.Background(), "tok", domain.RoleExhibitor, tt.current, tt.next, tt.confirm)
			var ve *domain.ValidationError
			if !errors.As(err, &ve) || ve.Field != tt.wantField {
				t.Fatalf("expected %s validation error, got %v", tt.wantField, err)
			}
		})
	}
}

func TestProfileService_ChangePassword_Forwards(t *testing.T) {
	forwarded := false
	auth := &stubAuthGateway{
		changePasswordFn: func(_ context.Context, _ string, role domain.Role, current, next string) error {
			forwarded = true
			if role != domain.RoleVisitor || current != "oldpass1" || next != "longenough1" {
				t.Fatalf("unexpected args: %s %s %s", role, current, next)
			}
			return nil
		},
	}
	svc := newProfileService(&stubProfileGateway{}, auth)

	err := svc.ChangePassword(context.Background(), "tok", domain.RoleVisitor, "oldpass1", "longenough1", "longenough1")
	if err != nil || !forwarded {
		t.Fatalf("change password: %v forwarded=%v", err, forwarded)
	}
}
