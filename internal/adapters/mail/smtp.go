// Package mail entrega notificaciones por SMTP (go-mail) o al log en desarrollo.
package mail

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"cattery-storefront/internal/errs"
	"cattery-storefront/internal/ports/notify"

	gomail "github.com/wneessen/go-mail"
)

const defaultTimeout = 15 * time.Second

type SMTPOptions struct {
	Host     string
	Port     int
	UseSSL   bool // TLS implícito; el puerto 465 lo fuerza
	User     string
	Password string
	From     string
	FromName string
	Timeout  time.Duration
}

// SMTPNotifier abre una conexión por mensaje. El volumen es de un
// formulario de contacto, no hace falta pool.
type SMTPNotifier struct {
	opts SMTPOptions
}

func NewSMTPNotifier(opts SMTPOptions) (*SMTPNotifier, error) {
	opts.Host = strings.TrimSpace(opts.Host)
	if opts.Host == "" {
		return nil, fmt.Errorf("smtp host: %w", errs.ErrNotConfigured)
	}
	if opts.Port <= 0 {
		opts.Port = 465
	}
	if opts.Port == 465 {
		opts.UseSSL = true
	}
	if strings.TrimSpace(opts.From) == "" {
		opts.From = opts.User
	}
	if strings.TrimSpace(opts.From) == "" {
		return nil, fmt.Errorf("smtp from address: %w", errs.ErrNotConfigured)
	}
	if opts.Timeout <= 0 {
		opts.Timeout = defaultTimeout
	}
	return &SMTPNotifier{opts: opts}, nil
}

var _ notify.Notifier = (*SMTPNotifier)(nil)

func (n *SMTPNotifier) Send(ctx context.Context, msg notify.Message) error {
	m, err := n.buildMessage(msg)
	if err != nil {
		return err
	}

	client, err := gomail.NewClient(n.opts.Host, n.clientOptions()...)
	if err != nil {
		return fmt.Errorf("smtp client: %w", err)
	}
	if err := client.DialAndSendWithContext(ctx, m); err != nil {
		return fmt.Errorf("smtp send: %w", err)
	}
	return nil
}

func (n *SMTPNotifier) clientOptions() []gomail.Option {
	opts := []gomail.Option{
		gomail.WithPort(n.opts.Port),
		gomail.WithTimeout(n.opts.Timeout),
	}
	if n.opts.UseSSL {
		opts = append(opts, gomail.WithSSL())
	} else {
		opts = append(opts, gomail.WithTLSPolicy(gomail.TLSOpportunistic))
	}
	if n.opts.User != "" {
		opts = append(opts,
			gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
			gomail.WithUsername(n.opts.User),
			gomail.WithPassword(n.opts.Password),
		)
	}
	return opts
}

func (n *SMTPNotifier) buildMessage(msg notify.Message) (*gomail.Msg, error) {
	if strings.TrimSpace(msg.To) == "" {
		return nil, errors.New("smtp: empty recipient")
	}

	m := gomail.NewMsg()
	if err := m.FromFormat(n.opts.FromName, n.opts.From); err != nil {
		return nil, fmt.Errorf("smtp from: %w", err)
	}
	if err := m.To(msg.To); err != nil {
		return nil, fmt.Errorf("smtp to: %w", err)
	}
	if msg.ReplyTo != "" {
		if err := m.ReplyTo(msg.ReplyTo); err != nil {
			return nil, fmt.Errorf("smtp reply-to: %w", err)
		}
	}
	m.Subject(msg.Subject)
	m.SetBodyString(gomail.TypeTextPlain, msg.Text)
	if msg.HTML != "" {
		m.AddAlternativeString(gomail.TypeTextHTML, msg.HTML)
	}
	return m, nil
}
