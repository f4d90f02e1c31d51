// Package mailer delivers activation links and generated documents over an
// authenticated SMTP relay. Delivery is best-effort: sessions are opened and
// torn down per send, there are no retries, and callers log failures instead
// of propagating them.
package mailer

import (
	"context"

	"go.uber.org/zap"
	"nika-sop.backend/internal/config"
	"nika-sop.backend/pkg/logger"
)

// Sender sends the two message types the app emits
type Sender interface {
	SendActivation(ctx context.Context, to, activationLink string) error
	SendSOP(ctx context.Context, to, subject, body string, attachment []byte) error
}

// LogSender logs emails instead of sending them — used with MAIL_PROVIDER=log.
type LogSender struct{}

func (s *LogSender) SendActivation(ctx context.Context, to, activationLink string) error {
	logger.Info(ctx, "activation email (log provider)",
		zap.String("to", to),
		zap.String("link", activationLink),
	)
	return nil
}

func (s *LogSender) SendSOP(ctx context.Context, to, subject, _ string, attachment []byte) error {
	logger.Info(ctx, "sop email (log provider)",
		zap.String("to", to),
		zap.String("subject", subject),
		zap.Int("attachment_bytes", len(attachment)),
	)
	return nil
}

// NewSender returns a LogSender for MAIL_PROVIDER=log, an SMTPSender otherwise
func NewSender(cfg config.SMTPConfig) Sender {
	if cfg.Provider == "log" {
		return &LogSender{}
	}
	return NewSMTPSender(cfg)
}
