package notify

import "context"

// Message es el mensaje estructurado que entrega el canal de notificación.
type Message struct {
	To      string
	ReplyTo string
	Subject string
	Text    string
	HTML    string // opcional
}

type Notifier interface {
	Send(ctx context.Context, msg Message) error
}
