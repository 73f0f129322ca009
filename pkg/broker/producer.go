package broker

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/samandr77/immutablepost/internal/entity"
)

type Producer struct {
	l             *slog.Logger
	w             *kafka.Writer
	notifiedTopic string
}

func NewProducer(brokers []string, topic string) *Producer {
	l := slog.Default().WithGroup("kafka").With("topic", topic)

	w := &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Balancer:               &kafka.LeastBytes{},
		Async:                  true,
		Logger:                 &infoLogger{l: l},
		ErrorLogger:            &errorLogger{l: l},
		AllowAutoTopicCreation: true,
	}

	return &Producer{
		l:             l,
		w:             w,
		notifiedTopic: topic,
	}
}

type InvoiceNotifiedEvent struct {
	InvoiceNumber string    `json:"invoice_number"`
	BuyerEmail    string    `json:"buyer_email"`
	Sent          int       `json:"sent"`
	Failed        int       `json:"failed"`
	NotifiedAt    time.Time `json:"notified_at"`
}

func (p *Producer) SendInvoiceNotified(ctx context.Context, n entity.InvoiceNotified) {
	b, err := json.Marshal(InvoiceNotifiedEvent(n))
	if err != nil {
		p.l.ErrorContext(ctx, fmt.Sprintf("marshal event: %s", err))
		return
	}

	err = p.w.WriteMessages(ctx, kafka.Message{
		Key:   []byte(n.InvoiceNumber),
		Value: b,
		Topic: p.notifiedTopic,
	})
	if err != nil {
		p.l.ErrorContext(ctx, fmt.Sprintf("write kafka message: %s", err))
		return
	}
}

func (p *Producer) Close() {
	err := p.w.Close()
	if err != nil {
		p.l.Error(fmt.Sprintf("close kafka writer: %s", err))
	}
}

// NopProducer drops events. It is used when Kafka is disabled.
type NopProducer struct{}

func (NopProducer) SendInvoiceNotified(context.Context, entity.InvoiceNotified) {}
