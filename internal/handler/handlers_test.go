package handler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-note-keeper/internal/config"
	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/service"
)

func TestNewHandlers(t *testing.T) {
	t.Run("http address configured", func(t *testing.T) {
		handlers, err := NewHandlers(
			&service.Services{},
			config.Server{HTTPAddress: "localhost:8080"},
			logger.Nop(),
		)
		require.NoError(t, err)
		assert.NotNil(t, handlers.HTTP)
	})

	t.Run("no addresses configured", func(t *testing.T) {
		_, err := NewHandlers(&service.Services{}, config.Server{}, logger.Nop())
		assert.ErrorIs(t, err, errNoHandlersAreCreated)
	})
}
