package pubsub

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"green-link/internal/shared_kernel/avro"

	"github.com/lovoo/goka"
)

const (
	maxRetries   int = 10
	retryBackoff     = 5 * time.Second
)

type publisherKey struct {
	brokers       string
	topic         string
	prototypeType string
}

type publisherInstance struct {
	publisher *SimpleKafkaPublisher
	once      sync.Once
	err       error
}

var (
	publishersMap   = make(map[publisherKey]*publisherInstance)
	publishersMutex sync.Mutex
)

// NewKafkaPublisher returns one emitter per brokers, topic and prototype.
func NewKafkaPublisher(brokers []string, topic string, prototype any) (*SimpleKafkaPublisher, error) {
	key := publisherKey{
		brokers:       strings.Join(brokers, ","),
		topic:         topic,
		prototypeType: fmt.Sprintf("%T", prototype),
	}

	publishersMutex.Lock()
	instance, exists := publishersMap[key]
	if !exists {
		instance = &publisherInstance{}
		publishersMap[key] = instance
	}
	publishersMutex.Unlock()

	instance.once.Do(func() {
		slog.Debug("creating kafka publisher",
			slog.String("topic", topic),
			slog.String("prototypeType", key.prototypeType))

		codec, err := avro.NewCodec(prototype)
		if err != nil {
			instance.err = fmt.Errorf("creating avro codec: %w", err)
			return
		}

		for try := 0; try < maxRetries; try++ {
			slog.Debug("connecting to kafka brokers", slog.String("brokers", key.brokers))
			emitter, err := goka.NewEmitter(brokers, goka.Stream(topic), codec)
			if err == nil {
				instance.publisher = &SimpleKafkaPublisher{emitter: emitter, topic: topic}
				return
			}

			slog.Warn("kafka not ready", slog.Int("try", try+1), slog.String("error", err.Error()))
			time.Sleep(retryBackoff)
		}

		instance.err = fmt.Errorf("impossible to connect to kafka brokers after %d retries", maxRetries)
	})

	if instance.err != nil {
		return nil, instance.err
	}

	return instance.publisher, nil
}

var _ Publisher = (*SimpleKafkaPublisher)(nil)

type SimpleKafkaPublisher struct {
	emitter *goka.Emitter
	topic   string
}

func (p *SimpleKafkaPublisher) Publish(_ context.Context, key Key, message Message) error {
	slog.Debug("publishing message", slog.String("topic", p.topic), slog.String("key", string(key)))

	if err := p.emitter.EmitSync(string(key), message); err != nil {
		slog.Error("emitting message", slog.String("error", err.Error()))
		return fmt.Errorf("emitting to %s: %w", p.topic, err)
	}

	return nil
}

func (p *SimpleKafkaPublisher) Close() error {
	return p.emitter.Finish()
}
