package memory

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"smartresume/internal/shared/storage/object"
)

func TestPutOverwrites(t *testing.T) {
	ctx := context.Background()
	store := New()

	_, err := store.Put(ctx, "Generated_Resume.docx", "application/x-first", strings.NewReader("first version"))
	require.NoError(t, err)
	n, err := store.Put(ctx, "Generated_Resume.docx", "application/x-second", strings.NewReader("second"))
	require.NoError(t, err)
	assert.EqualValues(t, 6, n)
	assert.Equal(t, 1, store.Len())

	rc, err := store.Open(ctx, "Generated_Resume.docx")
	require.NoError(t, err)
	defer rc.Close()
	data, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, "second", string(data))

	ct, ok := store.ContentType("Generated_Resume.docx")
	require.True(t, ok)
	assert.Equal(t, "application/x-second", ct)
}

func TestOpenMissing(t *testing.T) {
	_, err := New().Open(context.Background(), "missing.docx")
	require.Error(t, err)
	assert.True(t, errors.Is(err, object.ErrNotFound))
}

func TestPutRejectsBlankKey(t *testing.T) {
	_, err := New().Put(context.Background(), " ", "", strings.NewReader("x"))
	require.Error(t, err)
}
