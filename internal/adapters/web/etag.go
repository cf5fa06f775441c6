package web

import (
	"strconv"

	"github.com/cespare/xxhash/v2"
)

// etag derives a strong validator from the body.
func etag(body []byte) string {
	return `"` + strconv.FormatUint(xxhash.Sum64(body), 16) + `"`
}

func newResponse(status int, contentType string, body []byte) *response {
	return &response{
		status:      status,
		contentType: contentType,
		body:        body,
		etag:        etag(body),
	}
}
