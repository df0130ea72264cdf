package consumers

import (
	"sync"
)

// ConsumerManager runs a set of queue workers and waits for them on
// shutdown.
type ConsumerManager struct {
	wg        sync.WaitGroup
	shutdown  chan struct{}
	consumers map[string]IConsumer
}

func NewConsumerManager(consumers map[string]IConsumer) *ConsumerManager {
	return &ConsumerManager{
		consumers: consumers,
		shutdown:  make(chan struct{}),
	}
}

func (s *ConsumerManager) Start() {
	for key, consumer := range s.consumers {
		go consumer.Start(key, &s.wg)
	}
}

func (s *ConsumerManager) Shutdown() {
	close(s.shutdown)

	s.wg.Wait()
}
