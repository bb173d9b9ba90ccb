package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"
	"land-catalog/internal/constants"
	"land-catalog/internal/contextkeys"
	"land-catalog/internal/contracts"
	"land-catalog/internal/core/domain"
	"land-catalog/internal/core/port"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

const publishTimeout = 10 * time.Second

// Publisher - часть rabbitmq_producer.Publisher, нужная адаптеру.
type Publisher interface {
	Publish(ctx context.Context, routingKey string, msg amqp.Publishing) error
}

// LeadEventsAdapter публикует события о новых лидах для отдела продаж.
type LeadEventsAdapter struct {
	producer Publisher
}

func NewLeadEventsAdapter(producer Publisher) (*LeadEventsAdapter, error) {
	if producer == nil {
		return nil, fmt.Errorf("rabbitmq adapter: producer cannot be nil")
	}
	return &LeadEventsAdapter{producer: producer}, nil
}

func (a *LeadEventsAdapter) QuizSubmitted(ctx context.Context, issuance *domain.Issuance) error {
	dto := QuizSubmittedEventDTO{
		ResponseID:      issuance.Response.ID,
		Name:            issuance.Response.Name,
		Phone:           issuance.Response.Phone,
		PromoCode:       issuance.Promo.Code,
		DiscountPercent: issuance.Promo.DiscountPercent,
		ExpiresAt:       issuance.Promo.ExpiresAt,
		SubmittedAt:     issuance.Response.CreatedAt,
	}
	if issuance.Response.Email != nil {
		dto.Email = *issuance.Response.Email
	}
	return a.publish(ctx, constants.EventQuizSubmitted, constants.RoutingKeyQuizSubmitted, dto)
}

func (a *LeadEventsAdapter) InquiryCreated(ctx context.Context, inquiry *domain.Inquiry) error {
	dto := InquiryCreatedEventDTO{
		InquiryID: inquiry.ID,
		Name:      inquiry.Name,
		Phone:     inquiry.Phone,
		Message:   inquiry.Message,
		Source:    inquiry.Source,
		PlotID:    inquiry.PlotID,
		CreatedAt: inquiry.CreatedAt,
	}
	return a.publish(ctx, constants.EventInquiryCreated, constants.RoutingKeyInquiryCreated, dto)
}

func (a *LeadEventsAdapter) ContactRequestCreated(ctx context.Context, request *domain.ContactRequest) error {
	dto := ContactRequestCreatedEventDTO{
		RequestID: request.ID,
		Name:      request.Name,
		Phone:     request.Phone,
		Email:     request.Email,
		Message:   request.Message,
		Type:      request.Type,
		Status:    string(request.Status),
		CreatedAt: request.CreatedAt,
	}
	return a.publish(ctx, constants.EventContactRequestCreated, constants.RoutingKeyContactRequestCreated, dto)
}

func (a *LeadEventsAdapter) publish(ctx context.Context, eventType, routingKey string, dto any) error {
	adapterLogger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"component":   "LeadEventsAdapter",
		"event_type":  eventType,
		"routing_key": routingKey,
	})

	body, err := json.Marshal(dto)
	if err != nil {
		return fmt.Errorf("rabbitmq adapter: failed to marshal %s: %w", eventType, err)
	}
	// Событие, не прошедшее схему, не уходит к потребителям
	if err := contracts.ValidateEvent(eventType, constants.EventVersionV1, body); err != nil {
		adapterLogger.Error("Event does not match its schema", err, nil)
		return fmt.Errorf("rabbitmq adapter: invalid %s event: %w", eventType, err)
	}

	msg := amqp.Publishing{
		ContentType:  "application/json",
		Body:         body,
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now(),
		Type:         eventType,
		Headers: amqp.Table{
			"x-event-type":    eventType,
			"x-event-version": constants.EventVersionV1,
		},
	}
	if traceID := contextkeys.TraceIDFromContext(ctx); traceID != "" {
		msg.Headers["x-trace-id"] = traceID
	}

	// Запрос пользователя мог уже завершиться, поэтому публикация живет по своему таймауту
	publishCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), publishTimeout)
	defer cancel()

	if err := a.producer.Publish(publishCtx, routingKey, msg); err != nil {
		adapterLogger.Error("Failed to publish lead event", err, nil)
		return fmt.Errorf("rabbitmq adapter: failed to publish %s: %w", eventType, err)
	}

	adapterLogger.Debug("Lead event published", nil)
	return nil
}
