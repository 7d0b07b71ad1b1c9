package log

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestWithCorrelationID(t *testing.T) {
	t.Run("Reaproveita o ID recebido", func(t *testing.T) {
		ctx, id := WithCorrelationID(context.Background(), "req-123")

		assert.Equal(t, "req-123", id)
		assert.Equal(t, "req-123", GetCorrelationID(ctx))
	})

	t.Run("Gera UUID quando não recebe ID", func(t *testing.T) {
		ctx, id := WithCorrelationID(context.Background(), "  ")

		_, err := uuid.Parse(id)
		assert.NoError(t, err)
		assert.Equal(t, id, GetCorrelationID(ctx))
	})

	t.Run("Contexto sem ID retorna vazio", func(t *testing.T) {
		assert.Empty(t, GetCorrelationID(context.Background()))
	})
}

func TestSetup(t *testing.T) {
	defer logrus.SetLevel(logrus.InfoLevel)

	Setup("debug")
	assert.Equal(t, logrus.DebugLevel, logrus.GetLevel())

	Setup("nao-existe")
	assert.Equal(t, logrus.InfoLevel, logrus.GetLevel())
}
