package supabase

import (
	"bytes"
	"fmt"
	"mime"
	"path"
	"strings"

	storage "github.com/supabase-community/storage-go"
)

const archivePrefix = "documents"

// DocumentArchive keeps a copy of every uploaded office document in a Supabase Storage bucket.
type DocumentArchive struct {
	client *storage.Client
	bucket string
}

func NewDocumentArchive(supabaseURL, serviceRoleKey, bucket string) *DocumentArchive {
	baseURL := strings.TrimSuffix(supabaseURL, "/")
	client := storage.NewClient(baseURL+"/storage/v1", serviceRoleKey, nil)

	return &DocumentArchive{
		client: client,
		bucket: bucket,
	}
}

// ArchivePath is the object key for a document: documents/{public id}/{filename}.
func ArchivePath(publicID, filename string) string {
	return path.Join(archivePrefix, publicID, path.Base(filename))
}

func contentType(filename string) string {
	if ct := mime.TypeByExtension(path.Ext(filename)); ct != "" {
		return ct
	}
	return "application/octet-stream"
}

// Store uploads data and returns the object path.
func (a *DocumentArchive) Store(publicID, filename string, data []byte) (string, error) {
	objectPath := ArchivePath(publicID, filename)

	ct := contentType(filename)
	upsert := true
	_, err := a.client.UploadFile(a.bucket, objectPath, bytes.NewReader(data), storage.FileOptions{
		ContentType: &ct,
		Upsert:      &upsert,
	})
	if err != nil {
		return "", fmt.Errorf("failed to archive document: %w", err)
	}

	return objectPath, nil
}

func (a *DocumentArchive) Remove(objectPath string) error {
	if _, err := a.client.RemoveFile(a.bucket, []string{objectPath}); err != nil {
		return fmt.Errorf("failed to remove archived document: %w", err)
	}
	return nil
}
