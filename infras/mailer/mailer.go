package mailer

//go:generate go run go.uber.org/mock/mockgen -source=./mailer.go -destination=./mocks/mailer_mock.go -package=mocks

import (
	"context"
	"fmt"
	"time"

	mail "github.com/wneessen/go-mail"
	"github.com/rs/zerolog/log"

	"tandoor/config"
	"tandoor/infras/otel"
	"tandoor/shared/constant"
)

// Mailer delivers a single outbound message to the configured restaurant
// mailbox. Delivery is at-most-once: there is no queue and no retry, and a
// failed send must never affect the record that triggered it.
type Mailer interface {
	Send(ctx context.Context, subject, body string) error
}

type mailerImpl struct {
	cfg    *config.Config
	client *mail.Client
	otel   otel.Otel
}

func New(cfg *config.Config, otl otel.Otel) Mailer {
	if !cfg.Mail.Enable {
		log.Warn().Msg("Outbound mail disabled, notifications will be dropped")

		return &noopMailer{}
	}

	client, err := mail.NewClient(cfg.Mail.Host,
		mail.WithPort(cfg.Mail.Port),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(cfg.Mail.Username),
		mail.WithPassword(cfg.Mail.Password),
		mail.WithTLSPolicy(mail.TLSMandatory),
		mail.WithTimeout(time.Duration(cfg.Mail.TimeoutSeconds)*time.Second),
	)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create SMTP client")
	}

	log.Info().
		Str("host", cfg.Mail.Host).
		Int("port", cfg.Mail.Port).
		Str("recipient", cfg.Mail.Recipient).
		Msg("SMTP mailer initialized")

	return &mailerImpl{
		cfg:    cfg,
		client: client,
		otel:   otl,
	}
}

func (m *mailerImpl) Send(ctx context.Context, subject, body string) (err error) {
	ctx, scope := m.otel.NewScope(ctx, constant.OtelMailerScopeName, constant.OtelMailerScopeName+".Send")
	defer scope.End()
	defer scope.TraceIfError(err)

	msg := mail.NewMsg()

	if err = msg.From(m.cfg.Mail.Sender); err != nil {
		return fmt.Errorf("invalid sender address: %w", err)
	}

	if err = msg.To(m.cfg.Mail.Recipient); err != nil {
		return fmt.Errorf("invalid recipient address: %w", err)
	}

	msg.Subject(subject)
	msg.SetBodyString(mail.TypeTextPlain, body)

	if err = m.client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("failed to send mail: %w", err)
	}

	return nil
}

type noopMailer struct{}

func (n *noopMailer) Send(_ context.Context, subject, _ string) error {
	log.Info().Str("subject", subject).Msg("Mail disabled, dropping notification")

	return nil
}
