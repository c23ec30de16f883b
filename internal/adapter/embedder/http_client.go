// Package embedder is the client side of the face feature extractor,
// an external sidecar that reduces a photo to a 128-float embedding.
package embedder

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"

	"github.com/nimbus-pos/nimbus/internal/core/domain"
)

type HTTPClient struct {
	baseURL string
	client  *http.Client
}

func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
	}
}

type embedResponse struct {
	Vector []float64 `json:"vector"`
}

// Extract posts the photo to the sidecar's /embed endpoint. The sidecar
// answers 400 for an undecodable image and 422 when no face is present.
func (c *HTTPClient) Extract(ctx context.Context, photo []byte) ([]float64, error) {
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	fw, err := mw.CreateFormFile("photo", "photo.jpg")
	if err != nil {
		return nil, fmt.Errorf("embedder: build request: %w", err)
	}
	if _, err := fw.Write(photo); err != nil {
		return nil, fmt.Errorf("embedder: build request: %w", err)
	}
	if err := mw.Close(); err != nil {
		return nil, fmt.Errorf("embedder: build request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/embed", &body)
	if err != nil {
		return nil, fmt.Errorf("embedder: build request: %w", err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("embedder: %w", err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusBadRequest:
		return nil, domain.ErrInvalidImage
	case http.StatusUnprocessableEntity:
		return nil, domain.ErrNoFaceDetected
	default:
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("embedder: status %d: %s", resp.StatusCode, b)
	}

	var out embedResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("embedder: decode response: %w", err)
	}
	if len(out.Vector) != domain.EmbeddingDim {
		return nil, fmt.Errorf("embedder: vector dim %d, want %d", len(out.Vector), domain.EmbeddingDim)
	}
	return out.Vector, nil
}
