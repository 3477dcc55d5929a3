package ocr

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"time"
)

// HTTPReader talks to an easyocr sidecar service: POST /read with the image
// and a language set, returning paragraph-grouped text lines.
type HTTPReader struct {
	baseURL   string
	languages []string
	client    *http.Client
}

// NewHTTPReader builds a reader for one script family. languages is the
// easyocr language set the sidecar should load (e.g. ["uz","en"] for latin,
// ["ru"] for cyrillic).
func NewHTTPReader(baseURL string, languages []string) *HTTPReader {
	return &HTTPReader{
		baseURL:   baseURL,
		languages: append([]string(nil), languages...),
		client:    &http.Client{Timeout: 120 * time.Second},
	}
}

type readResponse struct {
	Lines []string `json:"lines"`
}

func (r *HTTPReader) ReadLines(ctx context.Context, imagePath string) ([]string, error) {
	f, err := os.Open(imagePath)
	if err != nil {
		return nil, fmt.Errorf("open image: %w", err)
	}
	defer f.Close()

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)

	langs, err := json.Marshal(r.languages)
	if err != nil {
		return nil, err
	}
	if err := mw.WriteField("languages", string(langs)); err != nil {
		return nil, err
	}
	fw, err := mw.CreateFormFile("image", filepath.Base(imagePath))
	if err != nil {
		return nil, err
	}
	if _, err := io.Copy(fw, f); err != nil {
		return nil, err
	}
	if err := mw.Close(); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.baseURL+"/read", &body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusServiceUnavailable {
		return nil, ErrUnavailable
	}
	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("ocr service http %d: %s", resp.StatusCode, string(b))
	}

	var out readResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("decode ocr response: %w", err)
	}
	return out.Lines, nil
}
