package domain

import "time"

// thumbnailLimit is how many images a content card shows before collapsing
// the rest behind a "+N more" count.
const thumbnailLimit = 3

// Product is an exhibitor-owned catalogue item with an ordered image list.
type Product struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Images      []string  `json:"images"`
	CreatedAt   time.Time `json:"created_at"`
}

// HiddenImages returns how many images are collapsed behind the "+N more"
// badge. Zero when the list fits within the thumbnail limit.
func (p Product) HiddenImages() int {
	return hiddenImages(p.Images)
}

// Service is an exhibitor-owned service listing. Structurally identical to
// Product; the backend keeps them in separate collections.
type Service struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Images      []string  `json:"images"`
	CreatedAt   time.Time `json:"created_at"`
}

func (s Service) HiddenImages() int {
	return hiddenImages(s.Images)
}

// GalleryImage is a single uploaded image in the exhibitor's gallery.
type GalleryImage struct {
	ID          string    `json:"id"`
	FileURL     string    `json:"file_url"`
	Description string    `json:"description,omitempty"`
	UploadDate  time.Time `json:"upload_date"`
}

func hiddenImages(images []string) int {
	if len(images) <= thumbnailLimit {
		return 0
	}
	return len(images) - thumbnailLimit
}
