package mail

import (
	"context"

	"cattery-storefront/internal/ports/notify"

	"go.uber.org/zap"
)

// LogNotifier no envía nada: deja el mensaje en el log. Para desarrollo sin SMTP.
type LogNotifier struct {
	log *zap.Logger
}

func NewLogNotifier(log *zap.Logger) *LogNotifier {
	if log == nil {
		log = zap.NewNop()
	}
	return &LogNotifier{log: log.Named("mail")}
}

var _ notify.Notifier = (*LogNotifier)(nil)

func (n *LogNotifier) Send(_ context.Context, msg notify.Message) error {
	n.log.Info("notification (not delivered)",
		zap.String("to", msg.To),
		zap.String("reply_to", msg.ReplyTo),
		zap.String("subject", msg.Subject),
		zap.String("text", msg.Text),
	)
	return nil
}
