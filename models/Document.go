package models

import "time"

const (
	DocumentTypeAddressProof = "address_proof"
	DocumentTypeIDProof      = "id_proof"
)

// Document records only the display name of an uploaded file; the bytes are
// never stored, so URL stays a placeholder.
type Document struct {
	ID         string    `json:"id"`
	Type       string    `json:"type"` // address_proof, id_proof
	Name       string    `json:"name"`
	URL        string    `json:"url"`
	Verified   bool      `json:"verified"`
	UploadedAt time.Time `json:"uploadedAt"`
}
