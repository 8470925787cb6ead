package status

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/ranchfarm/ranch-farmer/internal/application"
)

type RenderOptions struct {
	// UserAgentWidth truncates user agents; zero keeps them whole.
	UserAgentWidth int
}

func renderView(count int, sections []string, s styles) string {
	lines := []string{
		s.title.Render("Kuroro Ranch Sessions"),
		s.header.Render(fmt.Sprintf("sessions: %d", count)),
	}

	if len(sections) == 0 {
		lines = append(lines, s.empty.Render("No sessions found. Create one with `ranch session create <name>`."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	lines = append(lines, sections...)

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderSession(status application.SessionStatus, opts RenderOptions, s styles) string {
	return s.section.Render(lipgloss.JoinVertical(
		lipgloss.Left,
		lipgloss.JoinHorizontal(lipgloss.Top, s.session.Render(status.Account.SessionName), " ", authBadge(status, s)),
		field("user agent", userAgentLabel(status.UserAgent, opts.UserAgentWidth), s),
		field("proxy", proxyLabel(status.Account.Proxy), s),
	))
}

func field(key, value string, s styles) string {
	return lipgloss.JoinHorizontal(lipgloss.Top, s.key.Render(key+":"), " ", s.detail.Render(value))
}

func authBadge(status application.SessionStatus, s styles) string {
	switch status.Auth {
	case application.AuthAuthorized:
		return s.ok.Render("[authorized]")
	case application.AuthInvalid:
		return s.warning.Render("[invalid session]")
	case application.AuthCheckError:
		return s.warning.Render(fmt.Sprintf("[check failed: %s]", status.CheckErr))
	default:
		return ""
	}
}

func userAgentLabel(ua string, width int) string {
	if strings.TrimSpace(ua) == "" {
		return "not assigned yet"
	}
	if width > 3 && len(ua) > width {
		return ua[:width-3] + "..."
	}

	return ua
}

// proxyLabel hides proxy credentials.
func proxyLabel(raw string) string {
	if strings.TrimSpace(raw) == "" {
		return "direct"
	}

	parsed, err := url.Parse(raw)
	if err != nil {
		return "invalid proxy"
	}
	if parsed.User != nil {
		parsed.User = url.User("***")
	}

	return parsed.String()
}
