package punct

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// HTTPRestorer calls a punctuation-restoration sidecar: POST /restore with
// {"text": ...} returning {"text": ...}.
type HTTPRestorer struct {
	baseURL string
	client  *http.Client
}

func NewHTTPRestorer(baseURL string) *HTTPRestorer {
	return &HTTPRestorer{
		baseURL: baseURL,
		client:  &http.Client{Timeout: 30 * time.Second},
	}
}

type restoreMessage struct {
	Text string `json:"text"`
}

func (r *HTTPRestorer) Restore(ctx context.Context, text string) (string, error) {
	payload, err := json.Marshal(restoreMessage{Text: text})
	if err != nil {
		return "", fmt.Errorf("encode restore request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.baseURL+"/restore", bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("punctuation service http %d: %s", resp.StatusCode, string(b))
	}

	var out restoreMessage
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("decode restore response: %w", err)
	}
	return out.Text, nil
}
