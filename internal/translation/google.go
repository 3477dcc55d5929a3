package translation

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const googleEndpoint = "https://translate.googleapis.com/translate_a/single"

// GoogleProvider translates through the public translate_a/single endpoint
// (the same one the web widget uses); no API key is needed.
type GoogleProvider struct {
	client *http.Client
}

func NewGoogleProvider() *GoogleProvider {
	return &GoogleProvider{client: &http.Client{Timeout: 15 * time.Second}}
}

func (p *GoogleProvider) Name() string { return "Google" }

func (p *GoogleProvider) Translate(ctx context.Context, source, target, text string) (string, error) {
	q := url.Values{}
	q.Set("client", "gtx")
	q.Set("sl", source)
	q.Set("tl", target)
	q.Set("dt", "t")
	q.Set("q", text)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, googleEndpoint+"?"+q.Encode(), nil)
	if err != nil {
		return "", err
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("google http %d: %s", resp.StatusCode, string(b))
	}

	// The response is a nested JSON array; the translation is split over
	// [0][i][0] segments.
	var payload []json.RawMessage
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", fmt.Errorf("google decode: %w", err)
	}
	if len(payload) == 0 {
		return "", fmt.Errorf("google: empty response")
	}

	var segments [][]json.RawMessage
	if err := json.Unmarshal(payload[0], &segments); err != nil {
		return "", fmt.Errorf("google decode segments: %w", err)
	}

	var sb strings.Builder
	for _, seg := range segments {
		if len(seg) == 0 {
			continue
		}
		var part string
		if err := json.Unmarshal(seg[0], &part); err != nil {
			continue
		}
		sb.WriteString(part)
	}
	return sb.String(), nil
}
