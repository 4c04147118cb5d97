package storage

import (
	"io"
	"mime/multipart"
)

// UploadedFile is the value handed to an Uploader: the multipart layer is
// unwrapped at the handler boundary so nothing below it touches the request.
type UploadedFile struct {
	Name        string
	ContentType string
	Data        []byte
}

// Uploader stores an asset and returns a durable URL for it.
type Uploader interface {
	Upload(file UploadedFile) (string, error)
}

// FromMultipart reads a multipart file header into an UploadedFile.
func FromMultipart(fh *multipart.FileHeader) (UploadedFile, error) {
	f, err := fh.Open()
	if err != nil {
		return UploadedFile{}, err
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return UploadedFile{}, err
	}
	return UploadedFile{
		Name:        fh.Filename,
		ContentType: fh.Header.Get("Content-Type"),
		Data:        data,
	}, nil
}
