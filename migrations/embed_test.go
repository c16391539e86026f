package migrations

import (
	"io/fs"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFS_ContainsGooseMigrations(t *testing.T) {
	files, err := fs.Glob(FS, "*.sql")
	require.NoError(t, err)
	require.Len(t, files, 2)

	for _, name := range files {
		b, err := fs.ReadFile(FS, name)
		require.NoError(t, err)
		require.True(t, strings.Contains(string(b), "-- +goose Up"), name)
		require.True(t, strings.Contains(string(b), "-- +goose Down"), name)
	}
}
