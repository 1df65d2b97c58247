package filestorage

import "mime/multipart"

// FileStorage defines the interface for storing uploaded catalog documents.
type FileStorage interface {
	// SaveUpload stores an uploaded file and returns the full filesystem
	// path of the stored copy.
	SaveUpload(fileHeader *multipart.FileHeader, subPath string) (string, error)

	// DeleteFile removes a stored file. Deleting a missing file is not an
	// error.
	DeleteFile(path string) error
}
