package mailer

import (
	"context"
	"log/slog"
	"time"
)

// LogNotifier writes OTP notifications to the log instead of sending mail.
// Used when no mail API key is configured (local development).
type LogNotifier struct {
	logger *slog.Logger
}

// NewLogNotifier creates a logging-only notifier.
func NewLogNotifier(logger *slog.Logger) *LogNotifier {
	return &LogNotifier{logger: logger}
}

// SendOTP logs the delivery. The code itself is not logged.
func (n *LogNotifier) SendOTP(ctx context.Context, email string, otp string, validFor time.Duration) error {
	n.logger.InfoContext(ctx, "OTP notification (mailer disabled)",
		slog.String("email", email),
		slog.Duration("valid_for", validFor),
	)
	return nil
}
