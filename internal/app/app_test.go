package app

import (
	"testing"

	"dad-circles-backend/internal/config"
	apperrors "dad-circles-backend/internal/errors"
	"dad-circles-backend/internal/notification"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSender(t *testing.T) {
	t.Run("log sender without smtp host", func(t *testing.T) {
		sender, err := newSender(&config.Config{Environment: "development"})
		require.NoError(t, err)
		assert.IsType(t, &notification.LogSender{}, sender)
	})

	t.Run("smtp sender when configured", func(t *testing.T) {
		sender, err := newSender(&config.Config{SMTPHost: "smtp.test", SMTPPort: 2525, SMTPFrom: "circles@dadcircles.test"})
		require.NoError(t, err)
		assert.IsType(t, &notification.SMTPSender{}, sender)
	})

	t.Run("smtp host without from address", func(t *testing.T) {
		_, err := newSender(&config.Config{SMTPHost: "smtp.test"})
		assert.ErrorIs(t, err, apperrors.ErrSMTPConfigMissing)
	})
}
