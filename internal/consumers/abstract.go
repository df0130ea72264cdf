package consumers

import "sync"

// IConsumer is one queue worker. Start blocks registering the subscription;
// Consume handles a single delivery and its error drives ack/nack.
type IConsumer interface {
	Start(key string, wg *sync.WaitGroup) error
	Consume(rawMsg []byte) error
}
