package broadcaster

import (
	"context"
	"log"
	"strconv"
	"time"

	"github.com/IBM/sarama"

	"respool/infra/outbox"
)

// Broadcaster drains the outbox and publishes lease events to Kafka.
// Records stay pending until the broker acknowledges them, so a crash
// between send and ack at worst re-publishes (at-least-once).
type Broadcaster struct {
	box      *outbox.Outbox
	producer sarama.SyncProducer
	topic    string
}

// ------------------------------------------------
// CONSTRUCTOR
// ------------------------------------------------

func New(
	box *outbox.Outbox,
	brokers []string,
	topic string,
) (*Broadcaster, error) {

	cfg := sarama.NewConfig()
	cfg.Producer.Return.Successes = true
	cfg.Producer.RequiredAcks = sarama.WaitForAll
	cfg.Producer.Retry.Max = 5

	producer, err := sarama.NewSyncProducer(brokers, cfg)
	if err != nil {
		return nil, err
	}

	return &Broadcaster{
		box:      box,
		producer: producer,
		topic:    topic,
	}, nil
}

// ------------------------------------------------
// START LOOP
// ------------------------------------------------

func (b *Broadcaster) Start(ctx context.Context) {
	log.Println("[broadcaster] started")

	go func() {
		ticker := time.NewTicker(250 * time.Millisecond)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return

			case <-ticker.C:
				b.drainOnce()
			}
		}
	}()
}

// ------------------------------------------------
// DRAIN LOGIC (CRITICAL)
// ------------------------------------------------

func (b *Broadcaster) drainOnce() {
	_ = b.box.ScanPending(func(rec *outbox.Record) error {

		// Mark SENT before the network hop (idempotent)
		_ = b.box.MarkSent(rec.Seq)

		msg := &sarama.ProducerMessage{
			Topic: b.topic,
			Key:   sarama.StringEncoder(strconv.FormatUint(rec.Seq, 10)),
			Value: sarama.ByteEncoder(rec.Payload),
		}

		_, _, err := b.producer.SendMessage(msg)
		if err != nil {
			return nil // stays pending, retried next tick
		}

		_ = b.box.MarkAcked(rec.Seq)
		return nil
	})
}

// ------------------------------------------------
// SHUTDOWN
// ------------------------------------------------

func (b *Broadcaster) Close() error {
	return b.producer.Close()
}
