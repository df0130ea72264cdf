package mq

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/streadway/amqp"
)

// EconomyExchange is the fanout exchange carrying XP/level/badge/quest
// events from the API to the hub and the consumer workers.
const EconomyExchange = "focus_arena.economy"

type RabbitmqMqProvider struct {
	connection *amqp.Connection
	channel    *amqp.Channel
	queue      amqp.Queue
	config     RabbitMqConfig
}

type RabbitMqConfig struct {
	URL          string
	Exchange     string
	ExchangeType string // "fanout" so every bound queue sees every event
	QueueName    string
	BindingKey   string
	Durable      bool
	Reliable     bool
}

func NewRabbitmqMqProvider(config RabbitMqConfig) (*RabbitmqMqProvider, error) {
	var provider = &RabbitmqMqProvider{config: config}

	err := provider.Connect(config.URL)
	if err != nil {
		return nil, err
	}

	err = provider.channel.ExchangeDeclare(config.Exchange, config.ExchangeType, config.Durable, false, false, false, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to declare exchange: %v", err)
	}

	return provider, nil
}

func (r *RabbitmqMqProvider) Connect(connectionString string) error {
	connection, err := amqp.Dial(connectionString)
	if err != nil {
		return err
	}

	r.connection = connection
	r.channel, err = r.connection.Channel()
	if err != nil {
		return err
	}

	return nil
}

func (r *RabbitmqMqProvider) Disconnect() {
	if r.connection == nil {
		return
	}

	r.connection.Close()
}

func (r *RabbitmqMqProvider) Publish(routingKey string, data interface{}) error {
	bytes, err := json.Marshal(data)
	if err != nil {
		return err
	}

	err = r.channel.Publish(
		r.config.Exchange, // exchange
		routingKey,        // routing key
		false,             // mandatory
		false,             // immediate
		amqp.Publishing{
			ContentType:     "application/json",
			ContentEncoding: "utf-8",
			Body:            bytes,
			DeliveryMode:    amqp.Persistent,
			Timestamp:       time.Now(),
		},
	)

	if err != nil {
		return fmt.Errorf("failed to publish message: %v", err)
	}

	if r.config.Reliable {
		if confirmed := <-r.channel.NotifyPublish(make(chan amqp.Confirmation, 1)); !confirmed.Ack {
			return fmt.Errorf("failed to receive publish confirmation")
		}
	}

	return nil
}

func (r *RabbitmqMqProvider) Subscribe(queue string, callback func(data []byte) error) error {
	err := r.declareQueue(queue)
	if err != nil {
		return err
	}

	msgs, err := r.channel.Consume(
		r.queue.Name, // queue
		"",           // consumer
		false,        // auto-ack
		false,        // exclusive
		false,        // no-local
		false,        // no-wait
		nil,          // args
	)
	if err != nil {
		return err
	}

	go func() {
		for msg := range msgs {
			if err := callback(msg.Body); err != nil {
				msg.Nack(false, false)
				continue
			}
			msg.Ack(false)
		}
	}()

	return nil
}

func (r *RabbitmqMqProvider) declareQueue(name string) error {
	queue, err := r.channel.QueueDeclare(
		name,              // name
		r.config.Durable,  // durable
		false,             // delete when unused
		false,             // exclusive
		false,             // no-wait
		nil,               // arguments
	)
	if err != nil {
		return fmt.Errorf("failed to declare queue: %v", err)
	}

	r.queue = queue
	err = r.channel.QueueBind(
		queue.Name,          // queue name
		r.config.BindingKey, // routing key
		r.config.Exchange,   // exchange
		false,
		nil,
	)
	if err != nil {
		return fmt.Errorf("failed to bind queue: %v", err)
	}

	return nil
}
