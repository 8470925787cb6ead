// Package proxies loads the optional proxy list and assigns proxies to
// sessions.
package proxies

import (
	"bufio"
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"
)

const defaultScheme = "http"

// Load reads one proxy URL per line. Blank lines and lines starting with
// '#' are skipped; a missing scheme means http.
func Load(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("proxies file %q not found: %w", path, err)
		}
		return nil, fmt.Errorf("open proxies file: %w", err)
	}
	defer func() { _ = f.Close() }()

	var list []string
	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		normalized, err := normalize(line)
		if err != nil {
			return nil, fmt.Errorf("proxies file line %d: %w", lineNo, err)
		}
		list = append(list, normalized)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read proxies file: %w", err)
	}

	return list, nil
}

func normalize(raw string) (string, error) {
	if !strings.Contains(raw, "://") {
		raw = defaultScheme + "://" + raw
	}

	parsed, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("parse proxy %q: %w", raw, err)
	}
	if parsed.Hostname() == "" || parsed.Port() == "" {
		return "", fmt.Errorf("proxy %q needs host and port", raw)
	}

	return parsed.String(), nil
}

// Assign maps sessions to proxies round-robin in the given order. An empty
// list leaves every session without a proxy.
func Assign(sessions []string, list []string) map[string]string {
	assigned := make(map[string]string, len(sessions))
	for i, name := range sessions {
		if len(list) == 0 {
			assigned[name] = ""
			continue
		}
		assigned[name] = list[i%len(list)]
	}

	return assigned
}
