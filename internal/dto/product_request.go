package dto

import "mime/multipart"

type CreateProductRequest struct {
	Title       string
	Description string
	Category    string
	Price       float64
	Images      []*multipart.FileHeader
}

// UpdateProductRequest carries partial field updates plus the image
// reconciliation inputs: ExistingImages lists the previously stored files to
// keep (as URLs or bare filenames), NewImages are fresh uploads.
type UpdateProductRequest struct {
	Title          *string
	Description    *string
	Category       *string
	Price          *float64
	ExistingImages []string
	NewImages      []*multipart.FileHeader
}
