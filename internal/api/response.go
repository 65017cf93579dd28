package api

import (
	"encoding/json"
	"net/http"
)

// Response is the raw outcome of one round trip: status code, body bytes and
// headers, untouched. Interpretation (success vs. failure, body decoding)
// belongs to the repositories.
type Response struct {
	StatusCode int
	Body       []byte
	Headers    http.Header
}

// IsSuccess reports whether the status code is in the 2xx range.
func (r *Response) IsSuccess() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// JSON unmarshals the response body into v.
func (r *Response) JSON(v any) error {
	return json.Unmarshal(r.Body, v)
}
