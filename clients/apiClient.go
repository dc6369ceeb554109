package clients

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
)

// APIError is a transport-level failure: the backend answered with a
// non-2xx status before any envelope could be read.
type APIError struct {
	StatusCode int
}

func (e *APIError) Error() string {
	return fmt.Sprintf("HTTP error! status: %d", e.StatusCode)
}

// envelope is the `{success, message?, data}` wrapper every backend
// response follows. Absence of success is treated the same as false.
type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// Client is the shared HTTP layer under both resource clients.
type Client struct {
	http *resty.Client
}

func New(baseURL string) *Client {
	return &Client{
		http: resty.New().
			SetBaseURL(baseURL).
			SetTimeout(30 * time.Second).
			SetHeader("Accept", "application/json"),
	}
}

// decodeEnvelope enforces the uniform response contract: non-2xx status
// raises an APIError, success:false raises the server message (or the
// caller's fallback), and on success the data payload is unmarshalled
// into out. Pass a nil out for operations with no payload.
func decodeEnvelope(resp *resty.Response, fallback string, out any) error {
	if resp.StatusCode() < 200 || resp.StatusCode() >= 300 {
		return &APIError{StatusCode: resp.StatusCode()}
	}

	var env envelope
	if err := json.Unmarshal(resp.Body(), &env); err != nil {
		return fmt.Errorf("invalid response body: %w", err)
	}
	if !env.Success {
		if env.Message != "" {
			return fmt.Errorf("%s", env.Message)
		}
		return fmt.Errorf("%s", fallback)
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return fmt.Errorf("invalid response data: %w", err)
	}
	return nil
}
