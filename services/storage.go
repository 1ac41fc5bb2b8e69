package services

import (
	"bytes"
	"fmt"
	"os"

	storage_go "github.com/supabase-community/storage-go"
)

const rendersBucket = "renders"

var storageClient *storage_go.Client

// InitStorage configures the object-storage client from environment.
func InitStorage() error {
	url := os.Getenv("SUPABASE_URL")
	key := os.Getenv("SUPABASE_SERVICE_KEY")
	if url == "" || key == "" {
		return fmt.Errorf("SUPABASE_URL and SUPABASE_SERVICE_KEY must be set")
	}
	storageClient = storage_go.NewClient(url+"/storage/v1", key, nil)
	return nil
}

// UploadRender persists image bytes under path in the renders bucket and
// returns the public URL.
func UploadRender(data []byte, path, contentType string) (string, error) {
	if storageClient == nil {
		return "", fmt.Errorf("storage not initialized")
	}
	upsert := true
	_, err := storageClient.UploadFile(rendersBucket, path, bytes.NewReader(data), storage_go.FileOptions{
		ContentType: &contentType,
		Upsert:      &upsert,
	})
	if err != nil {
		return "", fmt.Errorf("upload %s: %w", path, err)
	}
	res := storageClient.GetPublicUrl(rendersBucket, path)
	return res.SignedURL, nil
}
