package errs

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMissing_ReportsEmptyFieldsInOrder(t *testing.T) {
	err := Missing(map[string]string{
		"name":    "  ",
		"email":   "a@b.c",
		"message": "",
	}, "name", "email", "message")

	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	require.Equal(t, []string{"name", "message"}, ve.Fields)
	require.Equal(t, "validation failed: name, message", ve.Error())
}

func TestMissing_NilWhenComplete(t *testing.T) {
	require.NoError(t, Missing(map[string]string{"name": "x"}, "name"))
}

func TestTypedErrors_Unwrap(t *testing.T) {
	base := errors.New("boom")

	require.ErrorIs(t, &PersistenceError{Op: "insert", Err: base}, base)
	require.ErrorIs(t, &NotificationError{Err: base}, base)
	require.ErrorIs(t, &AuthGateError{Err: base}, base)
	require.ErrorIs(t, &UploadError{Err: ErrNotConfigured}, ErrNotConfigured)
	require.Equal(t, "persistence: insert: boom", (&PersistenceError{Op: "insert", Err: base}).Error())
}
