package mqx

import (
	"context"
	"fmt"

	"github.com/ecodeclub/mq-api"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const instrumentationName = "clubhouse/internal/pkg/mqx"

// TraceMq 给发送消息打点。topic 在创建 producer 的时候就确定了,
// 存下来补进 span,Message 本身不带 topic
type TraceMq struct {
	mq.MQ
	tracer trace.Tracer
}

func NewTraceMq(mq mq.MQ) *TraceMq {
	return &TraceMq{MQ: mq, tracer: otel.GetTracerProvider().Tracer(instrumentationName)}
}

func (t TraceMq) Producer(topic string) (mq.Producer, error) {
	pro, err := t.MQ.Producer(topic)
	if err != nil {
		return nil, err
	}
	return NewTraceProducer(pro, t.tracer, topic), nil
}

type TraceProducer struct {
	mq.Producer
	tracer trace.Tracer
	topic  string
}

func NewTraceProducer(producer mq.Producer, tracer trace.Tracer, topic string) *TraceProducer {
	return &TraceProducer{
		Producer: producer,
		tracer:   tracer,
		topic:    topic,
	}
}

func (t *TraceProducer) Produce(ctx context.Context, m *mq.Message) (*mq.ProducerResult, error) {
	ctx, span := t.tracer.Start(ctx, fmt.Sprintf("%s produce", t.topic), trace.WithSpanKind(trace.SpanKindProducer))
	defer span.End()
	t.setSpanAttributes(span, m)

	res, err := t.Producer.Produce(ctx, m)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	span.SetStatus(codes.Ok, "")
	return res, nil
}

func (t *TraceProducer) ProduceWithPartition(ctx context.Context, m *mq.Message, partition int) (*mq.ProducerResult, error) {
	ctx, span := t.tracer.Start(ctx, fmt.Sprintf("%s produce", t.topic), trace.WithSpanKind(trace.SpanKindProducer))
	defer span.End()
	t.setSpanAttributes(span, m)
	span.SetAttributes(attribute.Int("messaging.kafka.partition", partition))

	res, err := t.Producer.ProduceWithPartition(ctx, m, partition)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	span.SetStatus(codes.Ok, "")
	return res, nil
}

func (t *TraceProducer) setSpanAttributes(span trace.Span, m *mq.Message) {
	attrs := []attribute.KeyValue{
		attribute.String("messaging.system", "kafka"),
		attribute.String("messaging.operation", "produce"),
		attribute.String("messaging.destination", t.topic),
	}
	if m != nil && m.Value != nil {
		attrs = append(attrs, attribute.Int("messaging.message_length", len(m.Value)))
	}
	span.SetAttributes(attrs...)
}
