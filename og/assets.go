package og

import (
	"bytes"
	"fmt"
	"image"
	"io"
	"net/http"
	"time"

	"github.com/disintegration/imaging"
)

// AssetFetcher downloads remote images and fonts for composition.
type AssetFetcher struct {
	Client *http.Client
}

// NewAssetFetcher returns a fetcher with a 10 second timeout.
func NewAssetFetcher() *AssetFetcher {
	return &AssetFetcher{Client: &http.Client{Timeout: 10 * time.Second}}
}

// FetchImage downloads and decodes an image from url.
func (f *AssetFetcher) FetchImage(url string) (image.Image, error) {
	body, err := f.FetchBytes(url)
	if err != nil {
		return nil, err
	}
	img, err := imaging.Decode(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("decode image from %s: %w", url, err)
	}
	return img, nil
}

// FetchBytes downloads raw bytes (font files, etc.) from url.
func (f *AssetFetcher) FetchBytes(url string) ([]byte, error) {
	client := f.Client
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}
	resp, err := client.Get(url)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", url, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch %s: status %d", url, resp.StatusCode)
	}
	return io.ReadAll(resp.Body)
}
