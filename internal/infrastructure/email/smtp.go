package email

import (
	"context"
	"fmt"
	"html"

	"gopkg.in/gomail.v2"

	"github.com/ridecrew/ridecrew/internal/domain/shared/services"
	"github.com/ridecrew/ridecrew/internal/shared/config"
	"github.com/ridecrew/ridecrew/internal/shared/logger"
)

// sender is satisfied by *gomail.Dialer.
type sender interface {
	DialAndSend(m ...*gomail.Message) error
}

// SMTPNotifier delivers membership notifications by email.
type SMTPNotifier struct {
	config  config.EmailConfig
	baseURL string
	dialer  sender
	logger  logger.Interface
}

// NewMembershipNotifier returns an SMTP notifier, or a logging notifier when no
// SMTP host is configured.
func NewMembershipNotifier(cfg config.EmailConfig, baseURL string, log logger.Interface) services.MembershipNotifier {
	if cfg.SMTPHost == "" {
		log.Infow("email delivery disabled, smtp_host is empty")
		return NewLogNotifier(log)
	}
	return &SMTPNotifier{
		config:  cfg,
		baseURL: baseURL,
		dialer:  gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword),
		logger:  log,
	}
}

func (s *SMTPNotifier) JoinRequested(ctx context.Context, admins []services.Recipient, requesterName, clubName string) error {
	subject := fmt.Sprintf("%s wants to join %s", requesterName, clubName)
	htmlBody := fmt.Sprintf(`
		<html>
		<body>
			<h2>New join request</h2>
			<p><strong>%s</strong> asked to join <strong>%s</strong>.</p>
			<p>Review pending requests from the club page: <a href="%s">%s</a></p>
		</body>
		</html>
	`, html.EscapeString(requesterName), html.EscapeString(clubName), s.baseURL, s.baseURL)

	plainBody := fmt.Sprintf(`
New join request

%s asked to join %s.

Review pending requests from the club page: %s
	`, requesterName, clubName, s.baseURL)

	var firstErr error
	for _, admin := range admins {
		if err := s.send(admin, subject, htmlBody, plainBody); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

func (s *SMTPNotifier) JoinAccepted(ctx context.Context, member services.Recipient, clubName string) error {
	subject := fmt.Sprintf("Welcome to %s", clubName)
	htmlBody := fmt.Sprintf(`
		<html>
		<body>
			<h2>Request accepted</h2>
			<p>Hello %s, your request to join <strong>%s</strong> was accepted.</p>
			<p>See you on the next ride!</p>
		</body>
		</html>
	`, html.EscapeString(member.Name), html.EscapeString(clubName))

	plainBody := fmt.Sprintf(`
Request accepted

Hello %s, your request to join %s was accepted.

See you on the next ride!
	`, member.Name, clubName)

	return s.send(member, subject, htmlBody, plainBody)
}

func (s *SMTPNotifier) send(to services.Recipient, subject, htmlBody, plainBody string) error {
	m := gomail.NewMessage()
	m.SetAddressHeader("From", s.config.FromAddress, s.config.FromName)
	m.SetAddressHeader("To", to.Email, to.Name)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", plainBody)
	m.AddAlternative("text/html", htmlBody)

	if err := s.dialer.DialAndSend(m); err != nil {
		s.logger.Warnw("failed to send email", "to", to.Email, "subject", subject, "error", err)
		return fmt.Errorf("failed to send email: %w", err)
	}

	s.logger.Debugw("email sent", "to", to.Email, "subject", subject)
	return nil
}

// LogNotifier only logs notifications. Used when SMTP is not configured.
type LogNotifier struct {
	logger logger.Interface
}

func NewLogNotifier(log logger.Interface) *LogNotifier {
	return &LogNotifier{logger: log}
}

func (n *LogNotifier) JoinRequested(ctx context.Context, admins []services.Recipient, requesterName, clubName string) error {
	n.logger.Infow("join request notification skipped",
		"club", clubName,
		"requester", requesterName,
		"admins", len(admins),
	)
	return nil
}

func (n *LogNotifier) JoinAccepted(ctx context.Context, member services.Recipient, clubName string) error {
	n.logger.Infow("join accepted notification skipped", "club", clubName, "member", member.Email)
	return nil
}
