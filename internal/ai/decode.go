package ai

import (
	"compress/gzip"
	"io"
	"net/http"
	"strings"

	"github.com/andybalholm/brotli"
)

// We advertise br/gzip like a browser does, so the transport will not
// decompress for us.
func decodeBody(resp *http.Response) (io.ReadCloser, error) {
	switch strings.ToLower(strings.TrimSpace(resp.Header.Get("Content-Encoding"))) {
	case "br":
		return io.NopCloser(brotli.NewReader(resp.Body)), nil
	case "gzip":
		return gzip.NewReader(resp.Body)
	default:
		return io.NopCloser(resp.Body), nil
	}
}

func readBody(resp *http.Response) (string, error) {
	body, err := decodeBody(resp)
	if err != nil {
		return "", err
	}
	defer body.Close()

	b, err := io.ReadAll(body)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
