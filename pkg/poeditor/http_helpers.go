package poeditor

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
)

// statusSuccess is the envelope status required for a call to be considered
// successful. Anything else is a service-reported failure.
const statusSuccess = "success"

// envelope is the outer JSON object every API call returns.
type envelope struct {
	Response *responseHeader `json:"response"`
	Result   json.RawMessage `json:"result"`
}

type responseHeader struct {
	Status  string `json:"status"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

// fileField describes the one multipart file part an endpoint may carry.
type fileField struct {
	name   string
	reader io.Reader
}

// post executes one API call: form-encode the fields plus the api_token,
// POST to the endpoint, normalize the envelope and return the raw result
// payload. The request is multipart/form-data when a file part is present,
// application/x-www-form-urlencoded otherwise.
func (c *Client) post(ctx context.Context, path string, fields url.Values, file *fileField) (json.RawMessage, error) {
	form := url.Values{}
	for key, values := range fields {
		form[key] = values
	}
	form.Set("api_token", c.apiToken)

	req := c.http.R().SetContext(ctx).SetFormDataFromValues(form)
	if file != nil {
		req.SetFileReader("file", file.name, file.reader)
	}

	resp, err := req.Post(c.url(path))
	if err != nil {
		return nil, fmt.Errorf("poeditor: %s: %w", path, err)
	}

	// HTTP-layer failures are reported before the body is even looked at.
	if resp.IsError() {
		return nil, &Error{
			Status:     StatusFail,
			Code:       strconv.Itoa(resp.StatusCode()),
			Message:    http.StatusText(resp.StatusCode()),
			HTTPStatus: resp.StatusCode(),
		}
	}

	var env envelope
	if err := json.Unmarshal(resp.Body(), &env); err != nil {
		return nil, &Error{
			Status:     StatusFail,
			Code:       codeNotParsed,
			Message:    "could not parse response",
			HTTPStatus: resp.StatusCode(),
		}
	}
	if env.Response == nil {
		return nil, &Error{
			Status:     StatusFail,
			Code:       codeNotParsed,
			Message:    "response key missing",
			HTTPStatus: resp.StatusCode(),
		}
	}
	if env.Response.Status != statusSuccess {
		return nil, &Error{
			Status:     env.Response.Status,
			Code:       env.Response.Code,
			Message:    env.Response.Message,
			HTTPStatus: resp.StatusCode(),
		}
	}

	return env.Result, nil
}

// postResult runs post and decodes the result payload into out. Pass a nil
// out for endpoints whose result carries nothing the caller needs.
func (c *Client) postResult(ctx context.Context, path string, fields url.Values, file *fileField, out any) error {
	result, err := c.post(ctx, path, fields, file)
	if err != nil {
		return err
	}
	if out == nil || len(result) == 0 {
		return nil
	}
	if err := json.Unmarshal(result, out); err != nil {
		return fmt.Errorf("poeditor: decode %s result: %w", path, err)
	}
	return nil
}

// setNonEmpty adds a form field only when the value is non-empty. Most
// endpoints expect absent optional parameters to be omitted entirely; the
// upload endpoint is the exception and builds all of its fields explicitly.
func setNonEmpty(fields url.Values, key, value string) {
	if value != "" {
		fields.Set(key, value)
	}
}

// setJSON encodes a structured value as JSON text inside a single form
// field. The service expects JSON-encoded arrays there, not native
// form-array encoding.
func setJSON(fields url.Values, key string, value any) error {
	encoded, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("poeditor: encode %s: %w", key, err)
	}
	fields.Set(key, string(encoded))
	return nil
}
