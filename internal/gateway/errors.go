package gateway

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// RemoteServiceError is returned when the API answers with a non-2xx status.
type RemoteServiceError struct {
	StatusCode int
	Status     string
}

func (e *RemoteServiceError) Error() string {
	return fmt.Sprintf("GitHub API error: %s", e.Status)
}

// MalformedResponseError is returned when the response body is not valid JSON.
type MalformedResponseError struct {
	Err error
}

func (e *MalformedResponseError) Error() string {
	return fmt.Sprintf("malformed GitHub API response: %v", e.Err)
}

func (e *MalformedResponseError) Unwrap() error {
	return e.Err
}

// statusTransport fails any request whose response status is outside 2xx,
// before the GraphQL client gets to read the body.
type statusTransport struct {
	base http.RoundTripper
}

func (t *statusTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	resp, err := t.base.RoundTrip(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		resp.Body.Close()
		return nil, &RemoteServiceError{StatusCode: resp.StatusCode, Status: resp.Status}
	}
	return resp, nil
}

// classify maps a failure from the GraphQL client onto the error taxonomy.
func classify(err error) error {
	var remote *RemoteServiceError
	if errors.As(err, &remote) {
		return remote
	}
	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &syntaxErr) || errors.As(err, &typeErr) ||
		errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return &MalformedResponseError{Err: err}
	}
	return fmt.Errorf("failed to execute GraphQL query for organization: %w", err)
}
