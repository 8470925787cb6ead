package gameapi

import (
	"compress/gzip"
	"compress/zlib"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/andybalholm/brotli"
)

// NewHTTPClient returns a client that routes through proxyURL when it is
// not empty and transparently decodes gzip, deflate and brotli bodies.
// http.Transport only decompresses gzip on its own, and only when it set
// Accept-Encoding itself.
func NewHTTPClient(proxyURL string) (*http.Client, error) {
	base := http.DefaultTransport.(*http.Transport).Clone()
	if proxyURL != "" {
		parsed, err := url.Parse(proxyURL)
		if err != nil {
			return nil, fmt.Errorf("parse proxy url: %w", err)
		}
		base.Proxy = http.ProxyURL(parsed)
	}

	return &http.Client{Transport: &decodingTransport{base: base}}, nil
}

type decodingTransport struct {
	base http.RoundTripper
}

func (t *decodingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	resp, err := t.base.RoundTrip(req)
	if err != nil {
		return nil, err
	}

	encoding := strings.ToLower(strings.TrimSpace(resp.Header.Get("Content-Encoding")))
	var reader io.Reader
	switch encoding {
	case "br":
		reader = brotli.NewReader(resp.Body)
	case "gzip":
		reader, err = gzip.NewReader(resp.Body)
	case "deflate":
		reader, err = zlib.NewReader(resp.Body)
	default:
		return resp, nil
	}
	if err != nil {
		_ = resp.Body.Close()
		return nil, fmt.Errorf("open %s body: %w", encoding, err)
	}

	resp.Body = &decodedBody{Reader: reader, raw: resp.Body}
	resp.Header.Del("Content-Encoding")
	resp.Header.Del("Content-Length")
	resp.ContentLength = -1
	resp.Uncompressed = true

	return resp, nil
}

type decodedBody struct {
	io.Reader
	raw io.ReadCloser
}

func (b *decodedBody) Close() error {
	if closer, ok := b.Reader.(io.Closer); ok {
		_ = closer.Close()
	}

	return b.raw.Close()
}
