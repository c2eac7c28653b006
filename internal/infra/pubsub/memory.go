package pubsub

import (
	"context"
	"log/slog"
	"sync"
)

var _ PublisherFactory = (*MemoryPublisherFactory)(nil)

// MemoryPublisherFactory keeps every published message in process. Used when
// running locally and in tests.
type MemoryPublisherFactory struct {
	broker *MemoryBroker
}

func NewMemoryPublisherFactory() *MemoryPublisherFactory {
	return &MemoryPublisherFactory{broker: NewMemoryBroker()}
}

func (f *MemoryPublisherFactory) Broker() *MemoryBroker {
	return f.broker
}

func (f *MemoryPublisherFactory) New(topic Topic, _ Message) (Publisher, error) {
	return &MemoryPublisher{broker: f.broker, topic: topic}, nil
}

type MemoryPublisher struct {
	broker *MemoryBroker
	topic  Topic
}

func (p *MemoryPublisher) Publish(ctx context.Context, key Key, message Message) error {
	return p.broker.Publish(ctx, p.topic, key, message)
}

type MessageEvent struct {
	Topic   Topic
	Key     Key
	Message Message
}

type MessageHandler func(context.Context, MessageEvent)

type MemoryBroker struct {
	mu          sync.RWMutex
	messages    map[Topic][]MessageEvent
	subscribers map[Topic][]MessageHandler
}

func NewMemoryBroker() *MemoryBroker {
	return &MemoryBroker{
		messages:    make(map[Topic][]MessageEvent),
		subscribers: make(map[Topic][]MessageHandler),
	}
}

// Publish records the message and hands it to subscribers synchronously.
func (b *MemoryBroker) Publish(ctx context.Context, topic Topic, key Key, message Message) error {
	event := MessageEvent{Topic: topic, Key: key, Message: message}

	b.mu.Lock()
	b.messages[topic] = append(b.messages[topic], event)
	handlers := append([]MessageHandler(nil), b.subscribers[topic]...)
	b.mu.Unlock()

	slog.Debug("message published in memory", slog.String("topic", string(topic)), slog.String("key", string(key)))

	for _, handler := range handlers {
		handler(ctx, event)
	}

	return nil
}

func (b *MemoryBroker) Subscribe(topic Topic, handler MessageHandler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.subscribers[topic] = append(b.subscribers[topic], handler)
}

func (b *MemoryBroker) Messages(topic Topic) []MessageEvent {
	b.mu.RLock()
	defer b.mu.RUnlock()

	return append([]MessageEvent(nil), b.messages[topic]...)
}

func (b *MemoryBroker) Reset() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.messages = make(map[Topic][]MessageEvent)
	b.subscribers = make(map[Topic][]MessageHandler)
}
