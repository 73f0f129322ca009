package gomail

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gopkg.in/gomail.v2"

	"github.com/samandr77/immutablepost/internal/entity"
	"github.com/samandr77/immutablepost/pkg/config"
)

var testCfg = config.Mailer{
	Host:       "smtp.example.test",
	Port:       587,
	From:       "noreply@example.test",
	FromName:   "Immutable Post",
	Retries:    2,
	RetryDelay: time.Millisecond,
}

var notice = entity.Notice{
	Recipient: entity.RecipientBuyer,
	From:      entity.Address{Name: "Acme Pty Ltd", Email: "jane@acme.test"},
	To:        "sam@maple.test",
	Subject:   "Thanks for posting on Immutable Post",
	Body:      "<p>invoice</p>",
}

func TestClient_Send(t *testing.T) {
	t.Parallel()

	c := New(testCfg)

	var sent []*gomail.Message
	c.send = func(msg ...*gomail.Message) error {
		sent = append(sent, msg...)
		return nil
	}

	err := c.Send(context.Background(), notice)
	require.NoError(t, err)
	require.Len(t, sent, 1)

	require.Equal(t, []string{"sam@maple.test"}, sent[0].GetHeader("To"))
	require.Equal(t, []string{"Thanks for posting on Immutable Post"}, sent[0].GetHeader("Subject"))
	require.Equal(t, []string{`"Acme Pty Ltd" <jane@acme.test>`}, sent[0].GetHeader("From"))
	require.Equal(t, []string{`"Immutable Post" <noreply@example.test>`}, sent[0].GetHeader("Sender"))

	var buf bytes.Buffer

	_, err = sent[0].WriteTo(&buf)
	require.NoError(t, err)
	require.Contains(t, buf.String(), "Content-Type: text/html; charset=UTF-8")
}

func TestClient_Send_DefaultFrom(t *testing.T) {
	t.Parallel()

	c := New(testCfg)

	var sent []*gomail.Message
	c.send = func(msg ...*gomail.Message) error {
		sent = append(sent, msg...)
		return nil
	}

	n := notice
	n.From = entity.Address{}

	require.NoError(t, c.Send(context.Background(), n))
	require.Equal(t, []string{`"Immutable Post" <noreply@example.test>`}, sent[0].GetHeader("From"))
	require.Empty(t, sent[0].GetHeader("Sender"))
}

func TestClient_Send_Retries(t *testing.T) {
	t.Parallel()

	c := New(testCfg)

	calls := 0
	c.send = func(...*gomail.Message) error {
		calls++
		if calls < 3 {
			return errors.New("421 try again later")
		}

		return nil
	}

	require.NoError(t, c.Send(context.Background(), notice))
	require.Equal(t, 3, calls)
}

func TestClient_Send_GivesUp(t *testing.T) {
	t.Parallel()

	c := New(testCfg)

	calls := 0
	c.send = func(...*gomail.Message) error {
		calls++
		return errors.New("550 mailbox unavailable")
	}

	err := c.Send(context.Background(), notice)
	require.ErrorContains(t, err, "550 mailbox unavailable")
	require.Equal(t, int(testCfg.Retries)+1, calls)
}
