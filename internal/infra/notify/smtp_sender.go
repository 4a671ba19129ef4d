package notify

import (
	"context"
	"fmt"
	"time"

	"github.com/wneessen/go-mail"

	"github.com/SumitSharma2000/Car-Wash-APP/internal/config"
)

// Sender hands a finished message to a mail transport.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}

type mailClient interface {
	DialAndSendWithContext(ctx context.Context, messages ...*mail.Msg) error
}

type SMTPSender struct {
	host   string
	from   string
	client mailClient
}

func NewSMTPSender(cfg config.SMTPConfig) (*SMTPSender, error) {
	opts := []mail.Option{
		mail.WithPort(cfg.Port),
		mail.WithTLSPortPolicy(mail.TLSOpportunistic),
		mail.WithTimeout(15 * time.Second),
	}
	if cfg.User != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(cfg.User),
			mail.WithPassword(cfg.Password),
		)
	}

	client, err := mail.NewClient(cfg.Host, opts...)
	if err != nil {
		return nil, fmt.Errorf("smtp client for %s: %w", cfg.Host, err)
	}

	return &SMTPSender{
		host:   cfg.Host,
		from:   cfg.From,
		client: client,
	}, nil
}

func (s *SMTPSender) Send(ctx context.Context, msg Message) error {
	m, err := s.compose(msg)
	if err != nil {
		return err
	}

	if err := s.client.DialAndSendWithContext(ctx, m); err != nil {
		return fmt.Errorf("smtp send to %s: %w", s.host, err)
	}
	return nil
}

// compose builds the MIME message; headers are encoded by go-mail.
func (s *SMTPSender) compose(msg Message) (*mail.Msg, error) {
	m := mail.NewMsg()
	if err := m.From(s.from); err != nil {
		return nil, fmt.Errorf("sender address %q: %w", s.from, err)
	}
	if err := m.To(msg.To); err != nil {
		return nil, fmt.Errorf("recipient address %q: %w", msg.To, err)
	}

	m.Subject(msg.Subject)
	m.SetDate()
	m.SetMessageID()
	m.SetBodyString(mail.TypeTextPlain, msg.Body)
	return m, nil
}
