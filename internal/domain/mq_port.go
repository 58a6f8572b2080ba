package domain

// Event is an opaque message-queue payload.
type Event struct {
	Key   []byte
	Value []byte
}

type PublisherPort interface {
	Publish(topic string, events ...Event) error
}
