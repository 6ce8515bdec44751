// Package storage holds the contract with the object-storage collaborator.
// Uploads happen upstream of the account operations; this package only
// describes the result the service consumes.
package storage

// UploadedAsset describes an object already uploaded to binary storage.
// The account service only ever reads the URL; the Key belongs to the
// uploader and is carried for traceability.
type UploadedAsset struct {
	URL string `json:"url"`
	Key string `json:"key"`
}
