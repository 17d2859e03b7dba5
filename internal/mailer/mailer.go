package mailer

import (
	"context"
	"time"

	"go.uber.org/zap"
	"gopkg.in/gomail.v2"
)

type Message struct {
	To      string
	Subject string
	HTML    string
}

//go:generate mockgen -source=mailer.go -destination=mock/mailer_mock.go -package=mock
type Mailer interface {
	Send(ctx context.Context, msg Message) error
}

type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	// Timeout membatasi lama pengiriman agar tidak menggantung request.
	Timeout time.Duration
}

type SMTPMailer struct {
	dialer  *gomail.Dialer
	from    string
	timeout time.Duration
	logger  *zap.Logger
}

func NewSMTPMailer(cfg SMTPConfig, logger ...*zap.Logger) *SMTPMailer {
	l := zap.L().Named("mailer")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("mailer")
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &SMTPMailer{
		dialer:  gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
		from:    cfg.From,
		timeout: timeout,
		logger:  l,
	}
}

// Send mengirim satu email. gomail tidak context-aware, jadi pengiriman
// dijalankan di goroutine dan dibatasi oleh timeout + context pemanggil.
func (m *SMTPMailer) Send(ctx context.Context, msg Message) error {
	done := make(chan error, 1)

	go func() {
		gm := gomail.NewMessage()
		gm.SetHeader("From", m.from)
		gm.SetHeader("To", msg.To)
		gm.SetHeader("Subject", msg.Subject)
		gm.SetBody("text/html", msg.HTML)
		done <- m.dialer.DialAndSend(gm)
	}()

	ctx, cancel := context.WithTimeout(ctx, m.timeout)
	defer cancel()

	select {
	case err := <-done:
		if err != nil {
			m.logger.Warn("email send failed",
				zap.String("to", msg.To),
				zap.String("subject", msg.Subject),
				zap.Error(err),
			)
		}
		return err
	case <-ctx.Done():
		m.logger.Warn("email send timed out",
			zap.String("to", msg.To),
			zap.String("subject", msg.Subject),
		)
		return ctx.Err()
	}
}
