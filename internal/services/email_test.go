package services

import (
	"context"
	"errors"
	"testing"

	"eventmanagement/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sentMail struct {
	to, subject, html, text string
}

type fakeMailer struct {
	sent []sentMail
	err  error
}

func (f *fakeMailer) Send(ctx context.Context, to, subject, html, text string) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, sentMail{to: to, subject: subject, html: html, text: text})
	return nil
}

type fakeRenderer struct {
	lastName string
	lastData any
	err      error
}

func (f *fakeRenderer) Render(name string, data any) (string, string, string, error) {
	f.lastName, f.lastData = name, data
	if f.err != nil {
		return "", "", "", f.err
	}
	return "subject", "<p>html</p>", "text", nil
}

func TestEmailService_SendEventCreated(t *testing.T) {
	ctx := context.Background()
	data := &domain.EventCreatedEmailData{Email: "owner@example.com", EventName: "GopherCon"}

	tests := []struct {
		name      string
		mailerErr error
		renderErr error
		data      *domain.EventCreatedEmailData
		wantErr   string
		wantSent  int
	}{
		{name: "sends rendered template", data: data, wantSent: 1},
		{name: "nil data", data: nil, wantErr: "event created data is nil"},
		{name: "render failure", data: data, renderErr: errors.New("boom"), wantErr: "render event_created"},
		{name: "send failure", data: data, mailerErr: errors.New("ses down"), wantErr: "send event created email"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mailer := &fakeMailer{err: tt.mailerErr}
			renderer := &fakeRenderer{err: tt.renderErr}
			svc := NewEmailService(mailer, renderer, testLogger)

			err := svc.SendEventCreated(ctx, tt.data)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			} else {
				require.NoError(t, err)
				assert.Equal(t, "event_created", renderer.lastName)
				assert.Equal(t, tt.data, renderer.lastData)
				assert.Equal(t, sentMail{to: "owner@example.com", subject: "subject", html: "<p>html</p>", text: "text"}, mailer.sent[0])
			}
			assert.Len(t, mailer.sent, tt.wantSent)
		})
	}
}
