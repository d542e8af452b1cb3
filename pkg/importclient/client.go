package importclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"os"
	"path/filepath"
	"strings"
)

const (
	loginRoute  = "/auth/login"
	importRoute = "/imports/documents"

	// fileField is the multipart field the import route reads the archive from.
	fileField = "file"
)

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

// Client talks to the calibration import API.
type Client struct {
	url    string
	client *http.Client
}

// New creates a Client for opts.APIURL.
func New(opts Options) *Client {
	return &Client{
		url:    opts.Normalize().APIURL,
		client: &http.Client{Timeout: opts.Timeout},
	}
}

// Login authenticates and returns the session token.
func (c *Client) Login(ctx context.Context, email, password string) (string, error) {
	payload, err := json.Marshal(LoginRequest{Email: email, Password: password})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url+loginRoute, bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	var resp LoginResponse
	if err := c.do(req, &resp); err != nil {
		return "", err
	}
	if resp.Token == "" {
		return "", ErrMissingToken
	}
	return resp.Token, nil
}

// UploadArchive sends the zip file at path to the import route using token
// as bearer credentials.
func (c *Client) UploadArchive(ctx context.Context, token, path string) (*ImportResult, error) {
	body, contentType, err := archiveForm(path)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url+importRoute, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Authorization", "Bearer "+token)

	var resp importResponse
	if err := c.do(req, &resp); err != nil {
		return nil, err
	}
	if resp.Processed == nil {
		return nil, ErrMissingProcessed
	}
	return &ImportResult{
		Processed: *resp.Processed,
		Errors:    resp.Errors,
	}, nil
}

// CloseIdleConnections releases pooled connections held by the client.
func (c *Client) CloseIdleConnections() {
	c.client.CloseIdleConnections()
}

// do sends req and decodes a 2xx JSON body into out. Any other status is
// returned as *HTTPError with the raw body attached.
func (c *Client) do(req *http.Request, out any) error {
	res, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return err
	}

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		return &HTTPError{
			Method:     req.Method,
			URL:        req.URL.String(),
			StatusCode: res.StatusCode,
			Status:     res.Status,
			Body:       string(body),
		}
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// archiveForm builds a multipart body holding the file at path as a zip part.
func archiveForm(path string) (io.Reader, string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, "", err
	}
	defer f.Close()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition",
		fmt.Sprintf(`form-data; name="%s"; filename="%s"`, fileField, quoteEscaper.Replace(filepath.Base(path))))
	header.Set("Content-Type", "application/zip")

	part, err := w.CreatePart(header)
	if err != nil {
		return nil, "", err
	}
	if _, err := io.Copy(part, f); err != nil {
		return nil, "", err
	}
	if err := w.Close(); err != nil {
		return nil, "", err
	}

	return &buf, w.FormDataContentType(), nil
}
