package translation

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const yandexEndpoint = "https://translate.yandex.net/api/v1.5/tr.json/translate"

// YandexProvider translates through the Yandex Translate v1.5 JSON API.
// It requires an API key; without one every call fails and the engine falls
// through to the next provider.
type YandexProvider struct {
	apiKey string
	client *http.Client
}

func NewYandexProvider(apiKey string) *YandexProvider {
	return &YandexProvider{
		apiKey: apiKey,
		client: &http.Client{Timeout: 15 * time.Second},
	}
}

func (p *YandexProvider) Name() string { return "Yandex" }

type yandexResponse struct {
	Code int      `json:"code"`
	Text []string `json:"text"`
}

func (p *YandexProvider) Translate(ctx context.Context, source, target, text string) (string, error) {
	if p.apiKey == "" {
		return "", errors.New("yandex: api key not configured")
	}

	form := url.Values{}
	form.Set("key", p.apiKey)
	form.Set("lang", source+"-"+target)
	form.Set("text", text)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, yandexEndpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := p.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("yandex http %d: %s", resp.StatusCode, string(b))
	}

	var yr yandexResponse
	if err := json.NewDecoder(resp.Body).Decode(&yr); err != nil {
		return "", fmt.Errorf("yandex decode: %w", err)
	}
	if yr.Code != 200 {
		return "", fmt.Errorf("yandex api code %d", yr.Code)
	}
	return strings.Join(yr.Text, " "), nil
}
