package email

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

func TestNewMailer(t *testing.T) {
	tests := []struct {
		name     string
		config   MailerConfig
		wantNoop bool
		wantErr  bool
	}{
		{name: "noop", config: MailerConfig{Provider: "noop"}, wantNoop: true},
		{name: "empty provider", config: MailerConfig{}, wantNoop: true},
		{name: "unknown provider", config: MailerConfig{Provider: "smtp"}, wantNoop: true},
		{name: "ses", config: MailerConfig{Provider: "ses", FromAddress: "no-reply@example.com", SES: SESConfig{Region: "us-east-1"}}},
		{name: "ses without region", config: MailerConfig{Provider: "ses", FromAddress: "no-reply@example.com"}, wantErr: true},
		{name: "ses without from", config: MailerConfig{Provider: "ses", SES: SESConfig{Region: "us-east-1"}}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := NewMailer(tt.config, testLogger)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			_, isNoop := m.(*noopMailer)
			assert.Equal(t, tt.wantNoop, isNoop)
		})
	}
}

func TestNoopMailer_Send(t *testing.T) {
	m := &noopMailer{logger: testLogger}
	require.NoError(t, m.Send(context.Background(), "a@example.com", "s", "<p>h</p>", "t"))
}

func TestSESMailer_BuildInput(t *testing.T) {
	m := &sesMailer{fromAddress: "no-reply@example.com", fromName: "Events"}
	assert.Equal(t, "Events <no-reply@example.com>", m.source())

	in := buildSendEmailInput(m.source(), "to@example.com", "subj", "", "plain")
	assert.Equal(t, []string{"to@example.com"}, in.Destination.ToAddresses)
	assert.Equal(t, "subj", aws.ToString(in.Message.Subject.Data))
	assert.Nil(t, in.Message.Body.Html)
	assert.Equal(t, "plain", aws.ToString(in.Message.Body.Text.Data))

	m.fromName = ""
	assert.Equal(t, "no-reply@example.com", m.source())
}
