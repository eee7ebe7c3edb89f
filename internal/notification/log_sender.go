package notification

import (
	"context"

	"dad-circles-backend/internal/logger"
)

// LogSender writes introductions to the log instead of sending them.
// Used when no SMTP relay is configured.
type LogSender struct{}

// NewLogSender creates a log-only sender
func NewLogSender() *LogSender {
	return &LogSender{}
}

// Send implements Sender
func (s *LogSender) Send(ctx context.Context, email Email) error {
	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"to":      email.To,
		"subject": email.Subject,
	}).Info("introduction email (not sent, no SMTP relay configured)")
	return nil
}
