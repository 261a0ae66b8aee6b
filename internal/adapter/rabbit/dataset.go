package rabbit

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Temutjin2k/taxi-analytics-system/internal/domain/models"
	wrap "github.com/Temutjin2k/taxi-analytics-system/pkg/logger/wrapper"
	"github.com/Temutjin2k/taxi-analytics-system/pkg/metrics"
	"github.com/Temutjin2k/taxi-analytics-system/pkg/rabbit"
	"github.com/rabbitmq/amqp091-go"
)

const (
	datasetExchange = "dataset_topic"
	serviceName     = "analytics-service"
)

// DatasetProducer announces completed ingestions so downstream consumers
// (report builders, cache warmers) can react to a fresh dataset.
type DatasetProducer struct {
	client *rabbit.RabbitMQ
}

func NewDatasetProducer(client *rabbit.RabbitMQ) (*DatasetProducer, error) {
	// Exchange объявляется идемпотентно при старте
	if err := client.Channel.ExchangeDeclare(
		datasetExchange, // name
		"topic",         // type
		true,            // durable
		false,           // auto-deleted
		false,           // internal
		false,           // no-wait
		nil,             // arguments
	); err != nil {
		return nil, fmt.Errorf("failed to declare exchange: %w", err)
	}

	return &DatasetProducer{
		client: client,
	}, nil
}

// DatasetIngested — публикует сообщение о завершённой загрузке датасета
func (r *DatasetProducer) DatasetIngested(ctx context.Context, result models.IngestResult) (err error) {
	const op = "DatasetProducer.DatasetIngested"

	defer func() {
		metrics.RecordRabbitMQPublish(serviceName, datasetExchange, err)
	}()

	body, err := json.Marshal(result)
	if err != nil {
		ctx = wrap.WithAction(ctx, "marshal_ingest_result")
		return wrap.Error(ctx, fmt.Errorf("%s: failed to marshal message: %w", op, err))
	}

	key := fmt.Sprintf("dataset.ingested.%s", result.Source)

	if err = r.client.Channel.PublishWithContext(
		ctx,
		datasetExchange, // exchange
		key,             // routing key
		false,           // mandatory
		false,           // immediate
		amqp091.Publishing{
			ContentType: "application/json",
			Body:        body,
			Timestamp:   time.Now(),
		},
	); err != nil {
		ctx = wrap.WithAction(ctx, "publish_message")
		return wrap.Error(ctx, fmt.Errorf("%s: failed to publish with context: %w", op, err))
	}

	return nil
}
