package telegram

import (
	"context"
	"fmt"
	"net"
	"net/url"
	"strings"

	"github.com/gotd/td/telegram/dcs"
	"golang.org/x/net/proxy"
)

// dialerFor returns the MTProto dial function for an account. SOCKS5
// proxies carry the TCP stream directly; http and https proxies tunnel it
// with CONNECT.
func dialerFor(proxyURL string) (dcs.DialFunc, error) {
	if strings.TrimSpace(proxyURL) == "" {
		var d net.Dialer
		return d.DialContext, nil
	}

	parsed, err := url.Parse(proxyURL)
	if err != nil {
		return nil, fmt.Errorf("parse proxy url: %w", err)
	}
	switch parsed.Scheme {
	case "socks5", "socks5h", "http", "https":
	default:
		return nil, fmt.Errorf("unsupported proxy scheme %q for messenger connection", parsed.Scheme)
	}

	dialer, err := proxy.FromURL(parsed, proxy.Direct)
	if err != nil {
		return nil, fmt.Errorf("create proxy dialer: %w", err)
	}

	if cd, ok := dialer.(proxy.ContextDialer); ok {
		return cd.DialContext, nil
	}

	return func(ctx context.Context, network, addr string) (net.Conn, error) {
		return dialer.Dial(network, addr)
	}, nil
}
