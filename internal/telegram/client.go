// Package telegram is a minimal Bot API client covering the operations the
// orchestrator needs: long polling, messaging, and file download.
package telegram

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"
)

const defaultAPIBase = "https://api.telegram.org"

// Client talks to the Telegram Bot API for a single bot token.
type Client struct {
	token   string
	baseURL string
	client  *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL points the client at a different API server (tests, proxies).
func WithBaseURL(u string) Option {
	return func(c *Client) { c.baseURL = u }
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.client = hc }
}

func NewClient(token string, opts ...Option) *Client {
	c := &Client{
		token:   token,
		baseURL: defaultAPIBase,
		// Long polling holds requests open; the timeout must exceed the
		// poll window.
		client: &http.Client{Timeout: 90 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type apiResponse struct {
	OK          bool            `json:"ok"`
	Result      json.RawMessage `json:"result,omitempty"`
	Description string          `json:"description,omitempty"`
	ErrorCode   int             `json:"error_code,omitempty"`
}

// invoke posts a JSON payload to one API method and decodes the result into
// out (when non-nil).
func (c *Client) invoke(ctx context.Context, method string, payload, out any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encode %s payload: %w", method, err)
	}

	url := fmt.Sprintf("%s/bot%s/%s", c.baseURL, c.token, method)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("%s: %w", method, err)
	}
	defer resp.Body.Close()

	var ar apiResponse
	if err := json.NewDecoder(resp.Body).Decode(&ar); err != nil {
		return fmt.Errorf("decode %s response: %w", method, err)
	}
	if !ar.OK {
		return fmt.Errorf("%s: api error %d: %s", method, ar.ErrorCode, ar.Description)
	}
	if out != nil {
		if err := json.Unmarshal(ar.Result, out); err != nil {
			return fmt.Errorf("decode %s result: %w", method, err)
		}
	}
	return nil
}

// DeleteWebhook removes any configured webhook so long polling can start,
// optionally discarding updates queued while the process was down.
func (c *Client) DeleteWebhook(ctx context.Context, dropPending bool) error {
	return c.invoke(ctx, "deleteWebhook", map[string]bool{"drop_pending_updates": dropPending}, nil)
}

// GetUpdates long-polls for new updates after offset, waiting up to timeout.
func (c *Client) GetUpdates(ctx context.Context, offset int64, timeout time.Duration) ([]Update, error) {
	payload := map[string]any{
		"offset":          offset,
		"timeout":         int(timeout.Seconds()),
		"allowed_updates": []string{"message"},
	}
	var updates []Update
	if err := c.invoke(ctx, "getUpdates", payload, &updates); err != nil {
		return nil, err
	}
	return updates, nil
}

type sendMessagePayload struct {
	ChatID      int64                `json:"chat_id"`
	Text        string               `json:"text"`
	ParseMode   string               `json:"parse_mode,omitempty"`
	ReplyMarkup *ReplyKeyboardMarkup `json:"reply_markup,omitempty"`
}

// SendMessage delivers HTML-formatted text, optionally with a reply
// keyboard, and returns the new message id.
func (c *Client) SendMessage(ctx context.Context, chatID int64, text string, keyboard *ReplyKeyboardMarkup) (int, error) {
	var msg Message
	err := c.invoke(ctx, "sendMessage", sendMessagePayload{
		ChatID:      chatID,
		Text:        text,
		ParseMode:   "HTML",
		ReplyMarkup: keyboard,
	}, &msg)
	if err != nil {
		return 0, err
	}
	return msg.MessageID, nil
}

// EditMessage replaces the text of a previously sent message.
func (c *Client) EditMessage(ctx context.Context, chatID int64, messageID int, text string) error {
	return c.invoke(ctx, "editMessageText", map[string]any{
		"chat_id":    chatID,
		"message_id": messageID,
		"text":       text,
		"parse_mode": "HTML",
	}, nil)
}

// DeleteMessage removes a previously sent message.
func (c *Client) DeleteMessage(ctx context.Context, chatID int64, messageID int) error {
	return c.invoke(ctx, "deleteMessage", map[string]any{
		"chat_id":    chatID,
		"message_id": messageID,
	}, nil)
}

// Download resolves a file id and streams its content to destPath.
func (c *Client) Download(ctx context.Context, fileID, destPath string) error {
	var file File
	if err := c.invoke(ctx, "getFile", map[string]string{"file_id": fileID}, &file); err != nil {
		return err
	}
	if file.FilePath == "" {
		return fmt.Errorf("getFile: empty file path for %s", fileID)
	}

	url := fmt.Sprintf("%s/file/bot%s/%s", c.baseURL, c.token, file.FilePath)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("download file: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("download file: http %d", resp.StatusCode)
	}

	dest, err := os.Create(destPath)
	if err != nil {
		return fmt.Errorf("create download target: %w", err)
	}
	if _, err := io.Copy(dest, resp.Body); err != nil {
		dest.Close()
		os.Remove(destPath)
		return fmt.Errorf("write download target: %w", err)
	}
	if err := dest.Close(); err != nil {
		os.Remove(destPath)
		return fmt.Errorf("close download target: %w", err)
	}
	return nil
}
