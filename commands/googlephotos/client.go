package googlephotos

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
)

const albumsPageSize = 50

// Base URL for the Google Photos Library API - made variable for testing.
var photosBaseURL = "https://photoslibrary.googleapis.com/v1"

// StatusError is returned for any non-2xx API response. It preserves the
// HTTP status code so callers can distinguish rate limiting from other
// failures.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("google photos API returned status %d: %s", e.Code, e.Body)
}

// IsRateLimited reports whether err is an API error with HTTP status 429.
func IsRateLimited(err error) bool {
	var statusErr *StatusError
	return errors.As(err, &statusErr) && statusErr.Code == http.StatusTooManyRequests
}

// Album represents a Google Photos album.
type Album struct {
	ID              string `json:"id"`
	Title           string `json:"title"`
	ProductURL      string `json:"productUrl"`
	IsWriteable     bool   `json:"isWriteable"`
	MediaItemsCount string `json:"mediaItemsCount"`
}

// MediaItem represents a Google Photos media item.
type MediaItem struct {
	ID          string `json:"id"`
	Description string `json:"description"`
	ProductURL  string `json:"productUrl"`
}

// NewMediaItem describes one upload token to redeem in a batch create call.
type NewMediaItem struct {
	FileName    string
	UploadToken string
}

// BatchCreateResult is the per-token outcome of a batch create call.
type BatchCreateResult struct {
	UploadToken string
	MediaItem   *MediaItem
	Message     string
}

// Created reports whether the API actually created a media item for this
// token. The API can reject individual tokens inside a 200 response.
func (r BatchCreateResult) Created() bool {
	return r.MediaItem != nil && r.MediaItem.ID != ""
}

// Client handles interaction with the Google Photos Library API. It expects
// an http.Client that already carries OAuth2 credentials.
type Client struct {
	httpClient *http.Client
}

// NewClient creates a new Google Photos API client on top of an
// authenticated HTTP client.
func NewClient(httpClient *http.Client) *Client {
	return &Client{httpClient: httpClient}
}

// Albums returns the album operations of the client.
func (c *Client) Albums() *AlbumsService {
	return &AlbumsService{client: c}
}

// MediaItems returns the media item operations of the client.
func (c *Client) MediaItems() *MediaItemsService {
	return &MediaItemsService{client: c}
}

// Uploader returns the raw byte upload operations of the client.
func (c *Client) Uploader() *Uploader {
	return &Uploader{client: c}
}

// checkResponse converts a non-2xx response into a StatusError. The body is
// consumed either way.
func checkResponse(resp *http.Response) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}
	body, _ := io.ReadAll(resp.Body)
	return &StatusError{Code: resp.StatusCode, Body: string(body)}
}

// AlbumsService implements album list and create calls.
type AlbumsService struct {
	client *Client
}

// List returns all albums created by this application. Results are paged by
// the API; List follows nextPageToken until exhausted.
func (s *AlbumsService) List(ctx context.Context) ([]Album, error) {
	var all []Album
	var pageToken string
	for {
		url := fmt.Sprintf("%s/albums?pageSize=%d&excludeNonAppCreatedData=true", photosBaseURL, albumsPageSize)
		if pageToken != "" {
			url += "&pageToken=" + pageToken
		}

		req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
		if err != nil {
			return nil, err
		}

		resp, err := s.client.httpClient.Do(req)
		if err != nil {
			return nil, fmt.Errorf("failed to list albums: %w", err)
		}

		if err := checkResponse(resp); err != nil {
			resp.Body.Close()
			return nil, fmt.Errorf("failed to list albums: %w", err)
		}

		var result struct {
			Albums        []Album `json:"albums"`
			NextPageToken string  `json:"nextPageToken"`
		}
		err = json.NewDecoder(resp.Body).Decode(&result)
		resp.Body.Close()
		if err != nil {
			return nil, fmt.Errorf("failed to decode albums: %w", err)
		}

		all = append(all, result.Albums...)
		if result.NextPageToken == "" {
			return all, nil
		}
		pageToken = result.NextPageToken
	}
}

// Create creates a new album with the given title.
func (s *AlbumsService) Create(ctx context.Context, title string) (*Album, error) {
	reqBody := map[string]interface{}{
		"album": map[string]string{"title": title},
	}
	reqBytes, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST",
		photosBaseURL+"/albums",
		bytes.NewReader(reqBytes))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to create album: %w", err)
	}
	defer resp.Body.Close()

	if err := checkResponse(resp); err != nil {
		return nil, fmt.Errorf("failed to create album: %w", err)
	}

	var album Album
	if err := json.NewDecoder(resp.Body).Decode(&album); err != nil {
		return nil, fmt.Errorf("failed to decode created album: %w", err)
	}
	if album.ID == "" {
		return nil, fmt.Errorf("create album response contained no album ID")
	}
	// Albums created by this client are always writable for it, but the
	// create response omits the flag.
	album.IsWriteable = true
	return &album, nil
}

// Uploader implements the raw byte upload endpoint.
type Uploader struct {
	client *Client
}

// UploadFile streams the file's bytes to the upload endpoint and returns the
// opaque upload token for it. The token is only usable in a later batch
// create call.
func (u *Uploader) UploadFile(ctx context.Context, path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open file: %w", err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return "", fmt.Errorf("failed to stat file: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", photosBaseURL+"/uploads", f)
	if err != nil {
		return "", err
	}
	req.ContentLength = info.Size()
	req.Header.Set("Content-Type", "application/octet-stream")
	req.Header.Set("X-Goog-Upload-Protocol", "raw")
	req.Header.Set("X-Goog-Upload-File-Name", filepath.Base(path))

	resp, err := u.client.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to upload file bytes: %w", err)
	}
	defer resp.Body.Close()

	if err := checkResponse(resp); err != nil {
		return "", fmt.Errorf("failed to upload file bytes: %w", err)
	}

	token, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read upload token: %w", err)
	}
	if len(token) == 0 {
		return "", fmt.Errorf("received empty upload token")
	}
	return string(token), nil
}

// MediaItemsService implements the batch media item creation call.
type MediaItemsService struct {
	client *Client
}

// BatchCreate redeems the given upload tokens as media items inside the
// album. The API limits a single call to 50 items; chunking is the caller's
// responsibility.
func (s *MediaItemsService) BatchCreate(ctx context.Context, albumID string, items []NewMediaItem) ([]BatchCreateResult, error) {
	newItems := make([]map[string]interface{}, len(items))
	for i, item := range items {
		newItems[i] = map[string]interface{}{
			"simpleMediaItem": map[string]string{
				"uploadToken": item.UploadToken,
				"fileName":    item.FileName,
			},
		}
	}
	reqBody := map[string]interface{}{
		"albumId":       albumID,
		"newMediaItems": newItems,
	}
	reqBytes, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST",
		photosBaseURL+"/mediaItems:batchCreate",
		bytes.NewReader(reqBytes))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to create media items: %w", err)
	}
	defer resp.Body.Close()

	if err := checkResponse(resp); err != nil {
		return nil, fmt.Errorf("failed to create media items: %w", err)
	}

	var result struct {
		NewMediaItemResults []struct {
			UploadToken string     `json:"uploadToken"`
			MediaItem   *MediaItem `json:"mediaItem"`
			Status      struct {
				Code    int    `json:"code"`
				Message string `json:"message"`
			} `json:"status"`
		} `json:"newMediaItemResults"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	if len(result.NewMediaItemResults) == 0 {
		return nil, fmt.Errorf("no media item results returned")
	}

	results := make([]BatchCreateResult, len(result.NewMediaItemResults))
	for i, r := range result.NewMediaItemResults {
		results[i] = BatchCreateResult{
			UploadToken: r.UploadToken,
			MediaItem:   r.MediaItem,
			Message:     r.Status.Message,
		}
	}
	return results, nil
}
