package inquiries

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"cattery-storefront/internal/domain/catalog"
	"cattery-storefront/internal/errs"
	"cattery-storefront/internal/ports/notify"
	"cattery-storefront/internal/ports/store"

	"go.uber.org/zap"
)

// ErrInvalidEmail acompaña al ValidationError cuando el email no parsea.
var ErrInvalidEmail = errors.New("invalid email address")

const notifyTimeout = 15 * time.Second

type Service struct {
	store      store.RecordStore
	notifier   notify.Notifier
	operatorTo string
	log        *zap.Logger
	now        func() time.Time
}

// NewService: notifier nil desactiva el aviso; operatorTo es el buzón del operador.
func NewService(st store.RecordStore, n notify.Notifier, operatorTo string, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{
		store:      st,
		notifier:   n,
		operatorTo: strings.TrimSpace(operatorTo),
		log:        log.Named("inquiries"),
		now:        time.Now,
	}
}

// Submit: validar -> guardar -> avisar. El aviso es best-effort: si falla
// se loguea y la consulta igual se da por recibida.
func (s *Service) Submit(ctx context.Context, in SubmitInput) (Inquiry, error) {
	in = normalize(in)

	if err := validate(in); err != nil {
		return Inquiry{}, err
	}

	rec, err := s.store.Insert(ctx, store.Inquiries, store.Record{
		"name":           in.Name,
		"email":          in.Email,
		"phone":          nullable(in.Phone),
		"breed_interest": nullable(in.Breed),
		"message":        in.Message,
	})
	if err != nil {
		s.log.Error("inquiry insert failed", zap.String("email", in.Email), zap.Error(err))
		return Inquiry{}, &errs.PersistenceError{Op: "insert inquiries", Err: err}
	}

	saved, err := MapInquiry(rec)
	if err != nil {
		// la fila quedó guardada; devolvemos lo que mandó el formulario
		s.log.Warn("stored inquiry not mappable", zap.Any("id", rec["id"]), zap.Error(err))
		saved = Inquiry{
			Name:          in.Name,
			Email:         in.Email,
			Phone:         in.Phone,
			BreedInterest: in.Breed,
			Message:       in.Message,
			CreatedAt:     s.now().UTC(),
		}
	}

	if err := s.notify(ctx, in); err != nil {
		s.log.Warn("inquiry notification failed",
			zap.String("inquiry_id", saved.ID),
			zap.Error(&errs.NotificationError{Err: err}),
		)
	} else if s.notifier != nil {
		s.log.Info("inquiry notification sent", zap.String("inquiry_id", saved.ID))
	}

	return saved, nil
}

func (s *Service) notify(ctx context.Context, in SubmitInput) error {
	if s.notifier == nil {
		return nil
	}
	if s.operatorTo == "" {
		return fmt.Errorf("operator address: %w", errs.ErrNotConfigured)
	}
	msg, err := renderEmail(s.operatorTo, in)
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}

	// el aviso no se corta si el cliente ya cerró la conexión
	nctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), notifyTimeout)
	defer cancel()
	return s.notifier.Send(nctx, msg)
}

// List devuelve las consultas más recientes primero. limit <= 0 = todas.
func (s *Service) List(ctx context.Context, limit int) ([]Inquiry, error) {
	recs, err := s.store.FetchAll(ctx, store.Inquiries, store.Query{
		Order: store.OrderByDesc("created_at"),
		Limit: limit,
	})
	if err != nil {
		return nil, &errs.PersistenceError{Op: "fetch inquiries", Err: err}
	}
	out := make([]Inquiry, 0, len(recs))
	for _, rec := range recs {
		q, err := MapInquiry(rec)
		if err != nil {
			s.log.Warn("dropping malformed inquiry", zap.Any("id", rec["id"]), zap.Error(err))
			continue
		}
		out = append(out, q)
	}
	return out, nil
}

func (s *Service) Count(ctx context.Context) (int, error) {
	n, err := s.store.Count(ctx, store.Inquiries)
	if err != nil {
		return 0, &errs.PersistenceError{Op: "count inquiries", Err: err}
	}
	return n, nil
}

func MapInquiry(rec store.Record) (Inquiry, error) {
	id, err := catalog.CoerceID(rec["id"])
	if err != nil {
		return Inquiry{}, err
	}
	created, _ := rec["created_at"].(time.Time)
	return Inquiry{
		ID:            id,
		Name:          str(rec["name"]),
		Email:         str(rec["email"]),
		Phone:         str(rec["phone"]),
		BreedInterest: str(rec["breed_interest"]),
		Message:       str(rec["message"]),
		CreatedAt:     created,
	}, nil
}

func normalize(in SubmitInput) SubmitInput {
	return SubmitInput{
		Name:    strings.TrimSpace(in.Name),
		Email:   strings.TrimSpace(in.Email),
		Phone:   strings.TrimSpace(in.Phone),
		Breed:   strings.TrimSpace(in.Breed),
		Message: strings.TrimSpace(in.Message),
	}
}

func validate(in SubmitInput) error {
	if err := errs.Missing(map[string]string{
		"name":    in.Name,
		"email":   in.Email,
		"message": in.Message,
	}, "name", "email", "message"); err != nil {
		return err
	}
	addr, err := mail.ParseAddress(in.Email)
	if err != nil || addr.Address != in.Email {
		return fmt.Errorf("%w: %w", ErrInvalidEmail, &errs.ValidationError{Fields: []string{"email"}})
	}
	return nil
}

// nullable: opcional vacío se guarda como NULL.
func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}

func str(v any) string {
	s, _ := v.(string)
	return s
}
