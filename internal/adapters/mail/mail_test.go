package mail

import (
	"bytes"
	"context"
	"testing"
	"time"

	"cattery-storefront/internal/errs"
	"cattery-storefront/internal/ports/notify"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestNewSMTPNotifier_Defaults(t *testing.T) {
	_, err := NewSMTPNotifier(SMTPOptions{})
	require.ErrorIs(t, err, errs.ErrNotConfigured)

	_, err = NewSMTPNotifier(SMTPOptions{Host: "smtp.test"})
	require.ErrorIs(t, err, errs.ErrNotConfigured)

	n, err := NewSMTPNotifier(SMTPOptions{Host: " smtp.test ", User: "info@cattery.test"})
	require.NoError(t, err)
	require.Equal(t, "smtp.test", n.opts.Host)
	require.Equal(t, 465, n.opts.Port)
	require.True(t, n.opts.UseSSL)
	require.Equal(t, "info@cattery.test", n.opts.From)
	require.Equal(t, defaultTimeout, n.opts.Timeout)

	n, err = NewSMTPNotifier(SMTPOptions{Host: "smtp.test", Port: 587, From: "a@b.test", Timeout: time.Second})
	require.NoError(t, err)
	require.False(t, n.opts.UseSSL)
}

func TestSMTPNotifier_BuildMessage(t *testing.T) {
	n, err := NewSMTPNotifier(SMTPOptions{Host: "smtp.test", From: "info@cattery.test", FromName: "Moonlit Elegance Kittens"})
	require.NoError(t, err)

	m, err := n.buildMessage(notify.Message{
		To:      "owner@cattery.test",
		ReplyTo: "ana@example.com",
		Subject: "New Kitten Inquiry from Ana",
		Text:    "plain body",
		HTML:    "<p>html body</p>",
	})
	require.NoError(t, err)

	var buf bytes.Buffer
	_, err = m.WriteTo(&buf)
	require.NoError(t, err)
	raw := buf.String()
	require.Contains(t, raw, "Moonlit Elegance Kittens")
	require.Contains(t, raw, "<info@cattery.test>")
	require.Contains(t, raw, "<owner@cattery.test>")
	require.Contains(t, raw, "Reply-To: <ana@example.com>")
	require.Contains(t, raw, "Subject: New Kitten Inquiry from Ana")
	require.Contains(t, raw, "plain body")
	require.Contains(t, raw, "text/html")

	_, err = n.buildMessage(notify.Message{Subject: "no recipient"})
	require.Error(t, err)
}

func TestLogNotifier(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	n := NewLogNotifier(zap.New(core))

	require.NoError(t, n.Send(context.Background(), notify.Message{To: "owner@cattery.test", Subject: "hi"}))
	require.Equal(t, 1, logs.Len())
	require.Equal(t, "hi", logs.All()[0].ContextMap()["subject"])
}
