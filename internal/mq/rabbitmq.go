package mq

import (
	amqp "github.com/rabbitmq/amqp091-go"
)

func InitQueues(mqConn *amqp.Connection) error {
	ch, err := NewChannel(mqConn)
	if err != nil {
		return err
	}
	defer ch.Close()

	// setup all needed queues (listed in constants)
	if err := SetupImmediateQueue(ch, BookingCreatedQueue); err != nil {
		return err
	}
	if err := SetupImmediateQueue(ch, ReservationDeletedQueue); err != nil {
		return err
	}

	return nil
}

func NewMQConn(url string) (*amqp.Connection, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, err
	}
	return conn, nil
}

func NewChannel(conn *amqp.Connection) (*amqp.Channel, error) {
	ch, err := conn.Channel()
	if err != nil {
		return nil, err
	}
	return ch, nil
}

func SetupImmediateQueue(ch *amqp.Channel, immediateQueueName string) error {
	_, err := ch.QueueDeclare(immediateQueueName, true, false, false, false, nil)
	return err
}
