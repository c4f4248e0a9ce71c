package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/clpeek/clpeek/envconfig"
)

// Client talks to a running clpeek server.
type Client struct {
	base *url.URL
	http *http.Client
}

func NewClient(base *url.URL, http *http.Client) *Client {
	return &Client{base: base, http: http}
}

// ClientFromEnvironment creates a client pointed at CLPEEK_HOST.
func ClientFromEnvironment() (*Client, error) {
	base, err := url.Parse(fmt.Sprintf("http://%s", envconfig.Host))
	if err != nil {
		return nil, err
	}
	return NewClient(base, http.DefaultClient), nil
}

// StatusError is returned for non-2xx responses.
type StatusError struct {
	StatusCode   int
	Status       string
	ErrorMessage string `json:"error"`
}

func (e StatusError) Error() string {
	switch {
	case e.Status != "" && e.ErrorMessage != "":
		return fmt.Sprintf("%s: %s", e.Status, e.ErrorMessage)
	case e.Status != "":
		return e.Status
	case e.ErrorMessage != "":
		return e.ErrorMessage
	default:
		return "something went wrong, please see the clpeek server logs for details"
	}
}

func (c *Client) do(ctx context.Context, method, path string, reqData, respData any) error {
	var reqBody io.Reader
	if reqData != nil {
		data, err := json.Marshal(reqData)
		if err != nil {
			return err
		}
		reqBody = bytes.NewReader(data)
	}

	request, err := http.NewRequestWithContext(ctx, method, c.base.JoinPath(path).String(), reqBody)
	if err != nil {
		return err
	}

	request.Header.Set("Content-Type", "application/json")
	request.Header.Set("Accept", "application/json")

	response, err := c.http.Do(request)
	if err != nil {
		return err
	}
	defer response.Body.Close()

	respBody, err := io.ReadAll(response.Body)
	if err != nil {
		return err
	}

	if response.StatusCode >= http.StatusBadRequest {
		apiError := StatusError{StatusCode: response.StatusCode, Status: response.Status}
		if err := json.Unmarshal(respBody, &apiError); err != nil {
			apiError.ErrorMessage = string(respBody)
		}
		return apiError
	}

	if respData != nil {
		return json.Unmarshal(respBody, respData)
	}
	return nil
}

// Classify submits a device descriptor and returns the resolved capability
// report.
func (c *Client) Classify(ctx context.Context, req *DeviceDescriptor) (*CapabilityReport, error) {
	var resp CapabilityReport
	if err := c.do(ctx, http.MethodPost, "/api/classify", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Version reports the server version.
func (c *Client) Version(ctx context.Context) (string, error) {
	var resp VersionResponse
	if err := c.do(ctx, http.MethodGet, "/api/version", nil, &resp); err != nil {
		return "", err
	}
	return resp.Version, nil
}
