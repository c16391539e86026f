package inquiries

import (
	"context"
	"errors"
	"strings"
	"testing"

	"cattery-storefront/internal/adapters/storage/memory"
	"cattery-storefront/internal/errs"
	"cattery-storefront/internal/ports/notify"
	"cattery-storefront/internal/ports/store"

	"github.com/stretchr/testify/require"
)

// countingStore envuelve el store en memoria y permite forzar fallos de insert.
type countingStore struct {
	store.RecordStore
	inserts   int
	insertErr error
	last      store.Record
}

func (c *countingStore) Insert(ctx context.Context, res store.Resource, rec store.Record) (store.Record, error) {
	c.inserts++
	c.last = rec
	if c.insertErr != nil {
		return nil, c.insertErr
	}
	return c.RecordStore.Insert(ctx, res, rec)
}

type fakeNotifier struct {
	sent []notify.Message
	err  error
}

func (f *fakeNotifier) Send(ctx context.Context, msg notify.Message) error {
	if ctx.Err() != nil {
		return ctx.Err()
	}
	f.sent = append(f.sent, msg)
	return f.err
}

func newFixture() (*Service, *countingStore, *fakeNotifier) {
	st := &countingStore{RecordStore: memory.NewRecordsRepo()}
	n := &fakeNotifier{}
	return NewService(st, n, "owner@cattery.test", nil), st, n
}

func validInput() SubmitInput {
	return SubmitInput{
		Name:    "Ana",
		Email:   "ana@example.com",
		Message: "Is Luna still available?",
	}
}

func TestSubmit_ValidationFailsBeforePersisting(t *testing.T) {
	svc, st, n := newFixture()

	_, err := svc.Submit(context.Background(), SubmitInput{Name: "  ", Email: "a@b.co", Message: "hi"})
	var ve *errs.ValidationError
	require.ErrorAs(t, err, &ve)
	require.Equal(t, []string{"name"}, ve.Fields)

	_, err = svc.Submit(context.Background(), SubmitInput{Name: "Ana", Email: "not-an-email", Message: "hi"})
	require.ErrorIs(t, err, ErrInvalidEmail)
	require.ErrorAs(t, err, &ve)
	require.Equal(t, []string{"email"}, ve.Fields)

	require.Zero(t, st.inserts)
	require.Empty(t, n.sent)
}

func TestSubmit_PersistFailureSkipsNotification(t *testing.T) {
	svc, st, n := newFixture()
	st.insertErr = errors.New("connection reset")

	_, err := svc.Submit(context.Background(), validInput())
	var pe *errs.PersistenceError
	require.ErrorAs(t, err, &pe)
	require.Equal(t, 1, st.inserts)
	require.Empty(t, n.sent)
}

func TestSubmit_NotificationFailureStillSucceeds(t *testing.T) {
	svc, st, n := newFixture()
	n.err = errors.New("smtp: 421 try later")

	got, err := svc.Submit(context.Background(), validInput())
	require.NoError(t, err)
	require.Equal(t, "Ana", got.Name)
	require.NotEmpty(t, got.ID)
	require.Equal(t, 1, st.inserts)
	require.Len(t, n.sent, 1)
}

func TestSubmit_OptionalFieldsStoredAsNull(t *testing.T) {
	svc, st, n := newFixture()

	got, err := svc.Submit(context.Background(), validInput())
	require.NoError(t, err)
	require.Nil(t, st.last["phone"])
	require.Nil(t, st.last["breed_interest"])
	require.Empty(t, got.Phone)

	msg := n.sent[0]
	require.NotContains(t, msg.Text, "Phone:")
	require.NotContains(t, msg.Text, "Breed Interest:")
	require.NotContains(t, msg.HTML, "tel:")
}

func TestSubmit_NotificationContent(t *testing.T) {
	svc, st, n := newFixture()

	in := validInput()
	in.Phone = " 555-0100 "
	in.Breed = "Ragdoll"
	_, err := svc.Submit(context.Background(), in)
	require.NoError(t, err)
	require.Equal(t, "555-0100", st.last["phone"])
	require.Equal(t, "Ragdoll", st.last["breed_interest"])

	require.Len(t, n.sent, 1)
	msg := n.sent[0]
	require.Equal(t, "owner@cattery.test", msg.To)
	require.Equal(t, "ana@example.com", msg.ReplyTo)
	require.Equal(t, "New Kitten Inquiry from Ana", msg.Subject)
	require.True(t, strings.HasPrefix(msg.Text, "New Kitten Inquiry from Ana\n\nName: Ana\nEmail: ana@example.com\nPhone: 555-0100\nBreed Interest: Ragdoll\n\nMessage:\n"))
	require.Contains(t, msg.HTML, `<a href="tel:555-0100">555-0100</a>`)
}

func TestSubmit_EscapesHTML(t *testing.T) {
	svc, _, n := newFixture()
	in := validInput()
	in.Message = "<script>alert(1)</script>"

	_, err := svc.Submit(context.Background(), in)
	require.NoError(t, err)
	require.NotContains(t, n.sent[0].HTML, "<script>")
	require.Contains(t, n.sent[0].Text, "<script>")
}

func TestSubmit_NotifiesEvenIfRequestContextIsDone(t *testing.T) {
	svc, _, n := newFixture()
	ctx, cancel := context.WithCancel(context.Background())

	// el insert en memoria ignora ctx; el aviso corre con un ctx propio
	cancel()
	_, err := svc.Submit(ctx, validInput())
	require.NoError(t, err)
	require.Len(t, n.sent, 1)
}

func TestSubmit_NoNotifier(t *testing.T) {
	st := &countingStore{RecordStore: memory.NewRecordsRepo()}
	svc := NewService(st, nil, "", nil)

	_, err := svc.Submit(context.Background(), validInput())
	require.NoError(t, err)
	require.Equal(t, 1, st.inserts)
}

func TestListAndCount(t *testing.T) {
	svc, _, _ := newFixture()
	ctx := context.Background()
	for _, name := range []string{"Ana", "Luis"} {
		in := validInput()
		in.Name = name
		_, err := svc.Submit(ctx, in)
		require.NoError(t, err)
	}

	items, err := svc.List(ctx, 0)
	require.NoError(t, err)
	require.Len(t, items, 2)

	n, err := svc.Count(ctx)
	require.NoError(t, err)
	require.Equal(t, 2, n)
}
