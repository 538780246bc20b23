package log

import (
	"bytes"
	"context"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func captureOutput(t *testing.T) *bytes.Buffer {
	t.Helper()

	SetupTestLogger()
	original := logrus.StandardLogger().Out
	buf := &bytes.Buffer{}
	logrus.SetOutput(buf)
	t.Cleanup(func() {
		logrus.SetOutput(original)
	})
	return buf
}

func TestCorrelationID(t *testing.T) {
	ctx, id := WithCorrelationID(context.Background())

	assert.NotEmpty(t, id)
	assert.Equal(t, id, GetCorrelationID(ctx))
	assert.Empty(t, GetCorrelationID(context.Background()))
}

func TestForContext_AddsCorrelationID(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	buf := captureOutput(t)

	ctx, id := WithCorrelationID(context.Background())
	ForContext(ctx).Info("consulta executada")

	assert.Contains(t, buf.String(), "correlation_id="+id)
	assert.Contains(t, buf.String(), "consulta executada")
}

func TestWithFields_FiltersInDevelopment(t *testing.T) {
	t.Setenv("APP_ENV", "dev")
	buf := captureOutput(t)

	L.WithFields(Fields{"path": "/v1/cards", "remote_addr": "127.0.0.1"}).Info("ok")

	assert.Contains(t, buf.String(), "path=/v1/cards")
	assert.NotContains(t, buf.String(), "remote_addr")
}
