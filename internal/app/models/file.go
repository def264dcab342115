package models

// File is the metadata of an uploaded file from the 'files' table
type File struct {
	ID           int64   `json:"id" db:"id" example:"1"`
	Filename     string  `json:"filename" db:"filename" example:"1736935200000_brochure.pdf"`
	OriginalName *string `json:"originalname" db:"originalname" example:"brochure.pdf"`
	MimeType     *string `json:"mimetype" db:"mimetype" example:"application/pdf"`
	Size         *int64  `json:"size" db:"size" example:"204800"`
	URL          string  `json:"url" db:"url" example:"/uploads/1736935200000_brochure.pdf"`
	CreatedAt    string  `json:"created_at" db:"created_at"`
}
