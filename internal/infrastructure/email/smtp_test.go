package email

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/gomail.v2"

	"github.com/ridecrew/ridecrew/internal/domain/shared/services"
	"github.com/ridecrew/ridecrew/internal/shared/config"
	"github.com/ridecrew/ridecrew/internal/shared/logger"
)

type fakeSender struct {
	messages []*gomail.Message
	err      error
}

func (f *fakeSender) DialAndSend(m ...*gomail.Message) error {
	f.messages = append(f.messages, m...)
	return f.err
}

func newTestNotifier(s sender) *SMTPNotifier {
	return &SMTPNotifier{
		config:  config.EmailConfig{FromAddress: "noreply@ridecrew.local", FromName: "RideCrew"},
		baseURL: "https://ridecrew.example",
		dialer:  s,
		logger:  logger.NewNopLogger(),
	}
}

func render(t *testing.T, m *gomail.Message) string {
	t.Helper()
	var buf bytes.Buffer
	_, err := m.WriteTo(&buf)
	require.NoError(t, err)
	return buf.String()
}

func TestJoinRequested_SendsOneMailPerAdmin(t *testing.T) {
	fake := &fakeSender{}
	n := newTestNotifier(fake)

	err := n.JoinRequested(context.Background(), []services.Recipient{
		{Email: "admin@club.fr", Name: "Anne"},
		{Email: "other@club.fr", Name: "Paul"},
	}, "Jean Dupont", "Vélo Club Lyon")
	require.NoError(t, err)

	require.Len(t, fake.messages, 2)
	assert.Equal(t, []string{`"Anne" <admin@club.fr>`}, fake.messages[0].GetHeader("To"))
	assert.Contains(t, render(t, fake.messages[0]), "Jean Dupont")
}

func TestJoinAccepted_ReportsDeliveryError(t *testing.T) {
	fake := &fakeSender{err: errors.New("connection refused")}
	n := newTestNotifier(fake)

	err := n.JoinAccepted(context.Background(), services.Recipient{Email: "jean@example.com", Name: "Jean"}, "Vélo Club Lyon")
	assert.Error(t, err)
	assert.Len(t, fake.messages, 1)
}

func TestNewMembershipNotifier_FallsBackToLogNotifier(t *testing.T) {
	n := NewMembershipNotifier(config.EmailConfig{}, "", logger.NewNopLogger())
	_, ok := n.(*LogNotifier)
	assert.True(t, ok)

	assert.NoError(t, n.JoinRequested(context.Background(), nil, "Jean", "Club"))
	assert.NoError(t, n.JoinAccepted(context.Background(), services.Recipient{}, "Club"))
}
