package telegram

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/gotd/td/telegram/auth"
	"github.com/gotd/td/tg"

	"github.com/ranchfarm/ranch-farmer/internal/domain"
)

var errSignUpUnsupported = errors.New("phone number is not registered; sign up in the official app first")

// Prompter answers the interactive questions of a login.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
}

func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewReader(in), out: out}
}

var _ auth.UserAuthenticator = (*Prompter)(nil)

func (p *Prompter) ask(ctx context.Context, question string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if _, err := fmt.Fprint(p.out, question); err != nil {
		return "", err
	}

	line, err := p.in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", fmt.Errorf("read answer: %w", err)
	}

	answer := strings.TrimSpace(line)
	if answer == "" {
		return "", fmt.Errorf("empty answer to %q", strings.TrimSpace(question))
	}

	return answer, nil
}

func (p *Prompter) Phone(ctx context.Context) (string, error) {
	return p.ask(ctx, "Phone number: ")
}

func (p *Prompter) Password(ctx context.Context) (string, error) {
	return p.ask(ctx, "Two-step verification password: ")
}

func (p *Prompter) Code(ctx context.Context, _ *tg.AuthSentCode) (string, error) {
	return p.ask(ctx, "Login code: ")
}

func (p *Prompter) AcceptTermsOfService(_ context.Context, tos tg.HelpTermsOfService) error {
	return &auth.SignUpRequired{TermsOfService: tos}
}

func (p *Prompter) SignUp(context.Context) (auth.UserInfo, error) {
	return auth.UserInfo{}, errSignUpUnsupported
}

// Login signs the account in when its session is not authorized yet and
// persists the resulting session.
func (m *Messenger) Login(ctx context.Context, authenticator auth.UserAuthenticator) (domain.MessengerUser, error) {
	client := m.newClient()

	var user domain.MessengerUser
	err := client.Run(ctx, func(ctx context.Context) error {
		flow := auth.NewFlow(authenticator, auth.SendCodeOptions{})
		if err := client.Auth().IfNecessary(ctx, flow); err != nil {
			return fmt.Errorf("login: %w", err)
		}

		self, err := client.Self(ctx)
		if err != nil {
			return fmt.Errorf("get self: %w", err)
		}
		user = domain.MessengerUser{ID: self.ID, Username: self.Username}

		return nil
	})
	if err != nil {
		return domain.MessengerUser{}, mapError(err)
	}

	return user, nil
}
