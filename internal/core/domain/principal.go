package domain

// Role identifies which side of the fair a principal belongs to.
type Role string

const (
	RoleExhibitor Role = "exhibitor"
	RoleVisitor   Role = "visitor"
)

// Valid reports whether the role tag is one the portal knows about.
// Stored sessions carrying anything else are discarded on load.
func (r Role) Valid() bool {
	return r == RoleExhibitor || r == RoleVisitor
}

// Principal is the authenticated exhibitor or visitor. The record is owned by
// the backend; the portal holds a projection of it for the lifetime of the
// session. The Profile service is the only writer after login.
type Principal struct {
	ID          string `json:"id"`
	Email       string `json:"email"`
	Name        string `json:"name"`
	Mobile      string `json:"mobile"`
	CompanyName string `json:"company_name,omitempty"`
	Designation string `json:"designation,omitempty"`
	About       string `json:"about,omitempty"`
	Role        Role   `json:"role"`

	// Image fields hold object-storage URLs assigned by the backend.
	ProfileImage string `json:"profile_image,omitempty"`
	CoverImage   string `json:"cover_image,omitempty"`
	CompanyLogo  string `json:"company_logo,omitempty"`
	QRCode       string `json:"qr_code,omitempty"`
}
