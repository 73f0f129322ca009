package gomail

import (
	"context"
	"crypto/tls"
	"fmt"
	"log/slog"

	"github.com/sethvargo/go-retry"
	"gopkg.in/gomail.v2"

	"github.com/samandr77/immutablepost/internal/entity"
	"github.com/samandr77/immutablepost/pkg/config"
)

type Client struct {
	cfg  config.Mailer
	send func(msg ...*gomail.Message) error
}

func New(cfg config.Mailer) *Client {
	dialer := gomail.NewDialer(cfg.Host, cfg.Port, cfg.Login, cfg.Password)

	dialer.TLSConfig = &tls.Config{
		ServerName: cfg.Host,
		MinVersion: tls.VersionTLS12,
	}

	return &Client{
		cfg:  cfg,
		send: dialer.DialAndSend,
	}
}

// Send delivers n as an HTML email, retrying up to cfg.Retries times with
// exponential backoff.
func (c *Client) Send(ctx context.Context, n entity.Notice) error {
	msg := c.message(n)

	attempt := 0
	b := retry.WithMaxRetries(c.cfg.Retries, retry.NewExponential(c.cfg.RetryDelay))

	err := retry.Do(ctx, b, func(_ context.Context) error {
		attempt++

		err := c.send(msg)
		if err != nil {
			slog.WarnContext(ctx, "send email attempt failed", "to", n.To, "attempt", attempt, "error", err)
			return retry.RetryableError(err)
		}

		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}

func (c *Client) message(n entity.Notice) *gomail.Message {
	msg := gomail.NewMessage(
		gomail.SetCharset("UTF-8"),
		gomail.SetEncoding(gomail.Base64),
	)

	if n.From.Email != "" && n.From.Email != c.cfg.From {
		msg.SetAddressHeader("From", n.From.Email, n.From.Name)
		msg.SetAddressHeader("Sender", c.cfg.From, c.cfg.FromName)
	} else {
		msg.SetAddressHeader("From", c.cfg.From, c.cfg.FromName)
	}

	msg.SetHeader("To", n.To)
	msg.SetHeader("Subject", n.Subject)
	msg.SetBody("text/html", n.Body)

	return msg
}
