package mq

type IMqProvider interface {
	Connect(connectionString string) error
	Disconnect()
	Publish(routingKey string, data interface{}) error
	Subscribe(queue string, callback func(data []byte) error) error
}

// NewEconomyMqProvider connects to the broker and declares the economy
// fanout exchange every binary shares.
func NewEconomyMqProvider(url string) (IMqProvider, error) {
	return NewRabbitmqMqProvider(RabbitMqConfig{
		URL:          url,
		Exchange:     EconomyExchange,
		ExchangeType: "fanout",
		Durable:      true,
	})
}
