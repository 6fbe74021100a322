// Package ingress implements the client side of the lesson-notes
// generation service: the wire schema of the submission payload and the
// single outbound call the wizard makes.
package ingress

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"
	"github.com/tidwall/sjson"

	"github.com/johnamet/lng-1/internal/debug"
)

const generatePath = "/lng/v1/generate-notes"

// NotesPayload is the core lesson-note payload accepted by the service.
type NotesPayload struct {
	Subject            string         `json:"subject"`
	ClassLevel         string         `json:"class_level"`
	Topic              string         `json:"topic"`
	WeekEnding         string         `json:"week_ending"`
	ClsSize            map[string]int `json:"cls_size"`
	Duration           string         `json:"duration"`
	Days               string         `json:"days"`
	Week               string         `json:"week"`
	CustomInstructions string         `json:"custom_instructions"`
}

// Contact is the delivery metadata sent alongside the core payload.
// Email may be empty, in which case it is omitted from the request.
type Contact struct {
	PhoneNumber string
	Email       string
}

// Submission is everything the service needs for one generation request.
type Submission struct {
	Notes   NotesPayload
	Contact Contact
}

// Result is a well-formed success response.
type Result struct {
	FileURL string
}

// APIError is a structured failure reported by the service. Message is
// empty when the response body carried none.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("generate notes: status %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("generate notes: status %d", e.StatusCode)
}

// Client issues generation requests to the service.
type Client struct {
	baseURL string
	httpc   *http.Client
}

// NewClient returns a client for the service at baseURL. A zero timeout
// means the call waits indefinitely.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		httpc:   &http.Client{Timeout: timeout},
	}
}

// GenerateNotes posts one submission and classifies the response. A nil
// error means the service acknowledged the request; the returned Result
// carries the file reference from `fileUrl`, falling back to `filePath`.
// A non-2xx response yields an *APIError; transport failures are returned
// as-is.
func (c *Client) GenerateNotes(ctx context.Context, sub Submission) (*Result, error) {
	body, err := json.Marshal(sub.Notes)
	if err != nil {
		return nil, fmt.Errorf("marshal payload: %w", err)
	}

	// Contact fields ride alongside the core payload.
	body, _ = sjson.SetBytes(body, "phone_number", sub.Contact.PhoneNumber)
	if sub.Contact.Email != "" {
		body, _ = sjson.SetBytes(body, "email", sub.Contact.Email)
	}

	if debug.Enabled() {
		debug.Logf("ingress: POST %s%s\n%s", c.baseURL, generatePath, pretty.Pretty(body))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+generatePath, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("generate notes: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	debug.Logf("ingress: status=%d body=%.200s", resp.StatusCode, respBody)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &APIError{
			StatusCode: resp.StatusCode,
			Message:    gjson.GetBytes(respBody, "message").String(),
		}
	}

	fileRef := gjson.GetBytes(respBody, "fileUrl")
	if !fileRef.Exists() {
		fileRef = gjson.GetBytes(respBody, "filePath")
	}
	return &Result{FileURL: fileRef.String()}, nil
}
