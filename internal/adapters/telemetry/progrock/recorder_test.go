package progrock_test

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/nixcrate/internal/adapters/logger"
	"go.trai.ch/nixcrate/internal/adapters/telemetry/progrock"
	"go.trai.ch/nixcrate/internal/core/domain"
)

func newRecorder() (*progrock.Recorder, *bytes.Buffer) {
	var buf bytes.Buffer
	log := logger.NewWithOutput(&buf)
	log.SetLevel(domain.LogLevelDebug)
	return progrock.New(log), &buf
}

func TestRecorder_Lifecycle(t *testing.T) {
	recorder, buf := newRecorder()
	ctx := context.Background()

	gotCtx, fetched := recorder.Record(ctx, "prefetch https://example.com/a.git@abc")
	assert.Equal(t, ctx, gotCtx)
	_, err := fetched.Stdout().Write([]byte("sha256-x\n"))
	require.NoError(t, err)
	fetched.Complete(nil)

	_, cached := recorder.Record(ctx, "prefetch https://example.com/b.git@def")
	cached.Cached()

	_, failed := recorder.Record(ctx, "prefetch https://example.com/c.git@123")
	failed.Complete(errors.New("boom"))

	require.NoError(t, recorder.Close())

	out := buf.String()
	assert.Contains(t, out, "prefetch https://example.com/a.git@abc: sha256-x")
	assert.Contains(t, out, "prefetch https://example.com/a.git@abc done in")
	assert.Contains(t, out, "prefetch https://example.com/b.git@def (cached)")
	assert.Contains(t, out, "prefetch https://example.com/c.git@123 failed: boom")
}

func TestRecorder_ReportsEachVertexOnce(t *testing.T) {
	recorder, buf := newRecorder()

	_, v := recorder.Record(context.Background(), "prefetch https://example.com/a.git@abc")
	v.Cached()

	assert.Equal(t, 1, strings.Count(buf.String(), "(cached)"))
	assert.NotContains(t, buf.String(), "done in")
}
