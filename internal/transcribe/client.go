package transcribe

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/cenkalti/backoff/v4"
)

// ErrUnavailable indicates the speech-to-text provider is not configured.
var ErrUnavailable = errors.New("transcription provider unavailable")

// Client uploads audio files to a Whisper-compatible speech-to-text endpoint.
// The language hint is fixed; auto detection is the provider's fallback.
type Client struct {
	Endpoint   string
	APIKey     string
	Model      string
	Language   string
	HTTPClient *http.Client
	MaxElapsed time.Duration
}

// NewClient constructs a transcription client for the given endpoint and key.
func NewClient(endpoint, apiKey string) *Client {
	return &Client{
		Endpoint:   endpoint,
		APIKey:     apiKey,
		Model:      "whisper-1",
		Language:   "es",
		HTTPClient: &http.Client{Timeout: 90 * time.Second},
		MaxElapsed: 2 * time.Minute,
	}
}

// Transcribe uploads the audio file and returns the transcript text.
// Transient provider errors (network, 5xx) are retried with exponential
// backoff; the caller decides whether a final failure is fatal.
func (c *Client) Transcribe(ctx context.Context, audioPath string) (string, error) {
	if c == nil || c.Endpoint == "" || c.APIKey == "" {
		return "", ErrUnavailable
	}

	audio, err := os.ReadFile(audioPath)
	if err != nil {
		return "", fmt.Errorf("read audio file: %w", err)
	}

	bo := backoff.NewExponentialBackOff()
	bo.MaxElapsedTime = c.MaxElapsed

	var transcript string
	operation := func() error {
		text, err := c.upload(ctx, filepath.Base(audioPath), audio)
		if err != nil {
			return err
		}
		transcript = text
		return nil
	}

	if err := backoff.Retry(operation, backoff.WithContext(bo, ctx)); err != nil {
		return "", fmt.Errorf("transcribe %s: %w", filepath.Base(audioPath), err)
	}
	return transcript, nil
}

func (c *Client) upload(ctx context.Context, filename string, audio []byte) (string, error) {
	var body bytes.Buffer
	w := multipart.NewWriter(&body)

	if err := w.WriteField("model", c.Model); err != nil {
		return "", backoff.Permanent(err)
	}
	if c.Language != "" {
		if err := w.WriteField("language", c.Language); err != nil {
			return "", backoff.Permanent(err)
		}
	}
	part, err := w.CreateFormFile("file", filename)
	if err != nil {
		return "", backoff.Permanent(err)
	}
	if _, err := part.Write(audio); err != nil {
		return "", backoff.Permanent(err)
	}
	if err := w.Close(); err != nil {
		return "", backoff.Permanent(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.Endpoint, &body)
	if err != nil {
		return "", backoff.Permanent(err)
	}
	req.Header.Set("Content-Type", w.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+c.APIKey)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(resp.Body)

	switch {
	case resp.StatusCode >= http.StatusInternalServerError:
		return "", fmt.Errorf("provider error (%d): %s", resp.StatusCode, respBody)
	case resp.StatusCode != http.StatusOK:
		return "", backoff.Permanent(fmt.Errorf("provider rejected request (%d): %s", resp.StatusCode, respBody))
	}

	var parsed struct {
		Text string `json:"text"`
	}
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return "", backoff.Permanent(fmt.Errorf("parse transcription response: %w", err))
	}
	return parsed.Text, nil
}
