package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"

	"github.com/SameedIlyas/Cloud-Project/internal/api"
	"github.com/SameedIlyas/Cloud-Project/internal/model"
)

// Service paths
const (
	PathStatus   = "/storage/status/"
	PathUpload   = "/storage/upload/"
	PathFiles    = "/storage/files/"
	PathStream   = "/storage/stream/"
	PathDownload = "/storage/download/"
)

// DeleteConfirmation is the exact message the service answers on a successful
// delete. Any other shape is treated as failure.
const DeleteConfirmation = "File deleted successfully"

// Download copy granularity
const downloadChunkSize = 32 * 1024

// Client issues requests against the storage service with a bearer token.
// None of the calls retries.
type Client struct {
	baseURL string
	http    api.Doer
}

// NewClient creates a new storage service client
func NewClient(baseURL string, httpClient api.Doer) *Client {
	if httpClient == nil {
		httpClient = api.NewHTTPClient()
	}
	return &Client{baseURL: baseURL, http: httpClient}
}

// UploadResult is the parsed upload response. ShouldAlert means the quota was
// reached: a warning, not a failure, and Metadata is absent in that case.
type UploadResult struct {
	Message     string           `json:"message"`
	ShouldAlert bool             `json:"should_alert"`
	Metadata    model.VideoEntry `json:"file_metadata"`
}

// GetStatus fetches the user's storage status including the file list
func (c *Client) GetStatus(ctx context.Context, token string) (model.StorageStatus, error) {
	resp, err := api.Get(ctx, c.http, api.JoinURL(c.baseURL, PathStatus), token)
	if err != nil {
		return model.StorageStatus{}, err
	}
	if resp.StatusCode != http.StatusOK {
		return model.StorageStatus{}, api.ErrorFromResponse(resp)
	}

	var status model.StorageStatus
	if err := api.DecodeJSON(resp, &status); err != nil {
		return model.StorageStatus{}, err
	}
	return status, nil
}

// ListFiles fetches the bare file list without aggregate figures
func (c *Client) ListFiles(ctx context.Context, token string) ([]model.VideoEntry, error) {
	resp, err := api.Get(ctx, c.http, api.JoinURL(c.baseURL, PathFiles), token)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, api.ErrorFromResponse(resp)
	}

	var body struct {
		Files []model.VideoEntry `json:"files"`
	}
	if err := api.DecodeJSON(resp, &body); err != nil {
		return nil, err
	}
	return body.Files, nil
}

// Upload sends one file as multipart form data. A quota-limit rejection maps
// to KindQuotaExceeded; an upload response carrying neither an alert nor file
// metadata is an unrecognized shape and fails rather than silently doing
// nothing.
func (c *Client) Upload(ctx context.Context, token, filename string, r io.Reader) (UploadResult, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return UploadResult{}, fmt.Errorf("build multipart body: %w", err)
	}
	if _, err := io.Copy(part, r); err != nil {
		return UploadResult{}, fmt.Errorf("read upload source: %w", err)
	}
	if err := writer.Close(); err != nil {
		return UploadResult{}, fmt.Errorf("finalize multipart body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, api.JoinURL(c.baseURL, PathUpload), &buf)
	if err != nil {
		return UploadResult{}, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	api.SetBearer(req, token)

	resp, err := c.http.Do(req)
	if err != nil {
		return UploadResult{}, api.NewError(api.KindUnreachable, "no response received: "+err.Error(), 0)
	}

	switch {
	case resp.StatusCode == http.StatusOK:
		var result UploadResult
		if err := api.DecodeJSON(resp, &result); err != nil {
			return UploadResult{}, err
		}
		if !result.ShouldAlert && result.Metadata.Filename == "" {
			return UploadResult{}, api.NewError(api.KindUnknown, "upload response carried neither alert nor metadata", resp.StatusCode)
		}
		return result, nil
	case resp.StatusCode == http.StatusBadRequest:
		return UploadResult{}, api.NewError(api.KindQuotaExceeded, api.ResponseMessage(resp), resp.StatusCode)
	default:
		return UploadResult{}, api.ErrorFromResponse(resp)
	}
}

// Download streams the file into w, reporting transfer progress 0-100 through
// onProgress as bytes arrive. When the total size is unknown, -1 is reported
// until the stream ends.
func (c *Client) Download(ctx context.Context, token, filename string, w io.Writer, onProgress func(percent int)) error {
	resp, err := api.Get(ctx, c.http, api.JoinURL(c.baseURL, PathDownload)+url.PathEscape(filename), token)
	if err != nil {
		return err
	}

	switch {
	case resp.StatusCode == http.StatusOK:
		// handled below
	case resp.StatusCode == http.StatusNotFound:
		return api.NewError(api.KindNotFound, api.ResponseMessage(resp), resp.StatusCode)
	default:
		return api.ErrorFromResponse(resp)
	}

	defer resp.Body.Close()

	total := resp.ContentLength
	var received int64
	lastPercent := -1
	buf := make([]byte, downloadChunkSize)

	for {
		n, readErr := resp.Body.Read(buf)
		if n > 0 {
			if _, writeErr := w.Write(buf[:n]); writeErr != nil {
				return fmt.Errorf("write download destination: %w", writeErr)
			}
			received += int64(n)

			if onProgress != nil && total > 0 {
				percent := int(received * 100 / total)
				if percent > 100 {
					percent = 100
				}
				if percent != lastPercent {
					lastPercent = percent
					onProgress(percent)
				}
			}
		}
		if readErr == io.EOF {
			break
		}
		if readErr != nil {
			return api.NewError(api.KindUnreachable, "transfer interrupted: "+readErr.Error(), resp.StatusCode)
		}
	}

	if onProgress != nil && lastPercent != 100 {
		onProgress(100)
	}
	return nil
}

// Delete removes the file keyed by filename. Success requires the exact
// confirmation message; any other 2xx shape is treated as failure.
func (c *Client) Delete(ctx context.Context, token, filename string) error {
	resp, err := api.Delete(ctx, c.http, api.JoinURL(c.baseURL, PathFiles)+url.PathEscape(filename), token)
	if err != nil {
		return err
	}

	switch {
	case resp.StatusCode == http.StatusOK:
		// handled below
	case resp.StatusCode == http.StatusNotFound:
		return api.NewError(api.KindNotFound, api.ResponseMessage(resp), resp.StatusCode)
	default:
		return api.ErrorFromResponse(resp)
	}

	var body struct {
		Message string `json:"message"`
	}
	if err := api.DecodeJSON(resp, &body); err != nil {
		return err
	}
	if body.Message != DeleteConfirmation {
		return api.NewError(api.KindServerRejected, fmt.Sprintf("unexpected delete confirmation: %q", body.Message), resp.StatusCode)
	}
	return nil
}

// Stream opens the playable byte stream for a video. The caller owns the
// returned body.
func (c *Client) Stream(ctx context.Context, token, filename string) (io.ReadCloser, error) {
	resp, err := api.Get(ctx, c.http, api.JoinURL(c.baseURL, PathStream)+url.PathEscape(filename), token)
	if err != nil {
		return nil, err
	}

	switch {
	case resp.StatusCode == http.StatusOK:
		return resp.Body, nil
	case resp.StatusCode == http.StatusNotFound:
		return nil, api.NewError(api.KindNotFound, api.ResponseMessage(resp), resp.StatusCode)
	default:
		return nil, api.ErrorFromResponse(resp)
	}
}
