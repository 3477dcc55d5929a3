package translation

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

const myMemoryEndpoint = "https://api.mymemory.translated.net/get"

// MyMemoryProvider translates through the MyMemory public API.
type MyMemoryProvider struct {
	client *http.Client
}

func NewMyMemoryProvider() *MyMemoryProvider {
	return &MyMemoryProvider{client: &http.Client{Timeout: 15 * time.Second}}
}

func (p *MyMemoryProvider) Name() string { return "MyMemory" }

type myMemoryResponse struct {
	ResponseData struct {
		TranslatedText string `json:"translatedText"`
	} `json:"responseData"`
	ResponseStatus json.Number `json:"responseStatus"`
}

func (p *MyMemoryProvider) Translate(ctx context.Context, source, target, text string) (string, error) {
	q := url.Values{}
	q.Set("q", text)
	q.Set("langpair", source+"|"+target)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, myMemoryEndpoint+"?"+q.Encode(), nil)
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
		return "", fmt.Errorf("mymemory http %d: %s", resp.StatusCode, string(b))
	}

	var mr myMemoryResponse
	if err := json.NewDecoder(resp.Body).Decode(&mr); err != nil {
		return "", fmt.Errorf("mymemory decode: %w", err)
	}
	if status, _ := mr.ResponseStatus.Int64(); status != 0 && status != 200 {
		return "", fmt.Errorf("mymemory api status %s", mr.ResponseStatus)
	}
	return mr.ResponseData.TranslatedText, nil
}
