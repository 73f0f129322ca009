package broker

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/sethvargo/go-retry"
)

// ErrPermanent marks a handler error that retrying cannot fix.
var ErrPermanent = errors.New("permanent")

func Permanent(err error) error {
	return fmt.Errorf("%w: %w", ErrPermanent, err)
}

type Handler func(ctx context.Context, msg kafka.Message) error

// Consumer reads group topics and commits every message once its handler has
// succeeded, failed permanently or run out of retries.
type Consumer struct {
	l          *slog.Logger
	r          *kafka.Reader
	wg         sync.WaitGroup
	handlers   map[string]Handler
	retries    uint64
	retryDelay time.Duration
}

func NewConsumer(brokers []string, groupID string, retries uint64, retryDelay time.Duration, topics ...string) *Consumer {
	l := slog.Default().WithGroup("kafka").With("group_id", groupID)

	r := kafka.NewReader(kafka.ReaderConfig{
		Brokers:     brokers,
		GroupID:     groupID,
		GroupTopics: topics,
		Logger:      &infoLogger{l: l},
		ErrorLogger: &errorLogger{l: l},
	})

	return &Consumer{
		l:          l,
		r:          r,
		handlers:   make(map[string]Handler),
		retries:    retries,
		retryDelay: retryDelay,
	}
}

func (c *Consumer) Handle(topic string, h Handler) *Consumer {
	c.handlers[topic] = h
	return c
}

func (c *Consumer) Consume(ctx context.Context) *Consumer {
	c.wg.Add(1)

	go func() {
		defer c.wg.Done()

		for {
			m, err := c.r.FetchMessage(ctx)
			if err != nil {
				if errors.Is(err, io.EOF) || ctx.Err() != nil {
					c.l.Info("consumer stopped")
					return
				}

				c.l.Error("fetch kafka message", "error", err)

				continue
			}

			c.dispatch(ctx, m)

			err = c.r.CommitMessages(ctx, m)
			if err != nil && ctx.Err() == nil {
				c.l.Error("commit kafka message", "error", err, "topic", m.Topic, "offset", m.Offset)
			}
		}
	}()

	return c
}

func (c *Consumer) dispatch(ctx context.Context, m kafka.Message) {
	l := c.l.With("topic", m.Topic, "partition", m.Partition, "offset", m.Offset)

	h, ok := c.handlers[m.Topic]
	if !ok {
		l.Warn("kafka handler not found")
		return
	}

	err := retry.Do(ctx, c.backoff(), func(ctx context.Context) error {
		err := h(ctx, m)
		if err == nil || errors.Is(err, ErrPermanent) {
			return err
		}

		l.WarnContext(ctx, "kafka handler failed", "error", err)

		return retry.RetryableError(err)
	})
	if err != nil {
		l.ErrorContext(ctx, "drop kafka message", "error", err)
	}
}

func (c *Consumer) backoff() retry.Backoff {
	return retry.WithMaxRetries(c.retries, retry.NewExponential(c.retryDelay))
}

func (c *Consumer) Close() {
	err := c.r.Close()
	if err != nil {
		c.l.Error(fmt.Sprintf("close kafka reader: %s", err))
	}

	c.wg.Wait()
}

type infoLogger struct {
	l *slog.Logger
}

func (l *infoLogger) Printf(format string, v ...any) {
	l.l.Info(fmt.Sprintf(format, v...))
}

type errorLogger struct {
	l *slog.Logger
}

func (l *errorLogger) Printf(format string, v ...any) {
	l.l.Error(fmt.Sprintf(format, v...))
}
