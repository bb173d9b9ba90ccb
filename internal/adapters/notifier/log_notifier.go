package notifier

import (
	"context"
	"land-catalog/internal/contextkeys"
	"land-catalog/internal/core/domain"
	"land-catalog/internal/core/port"
)

// LogNotifier реализует LeadNotifierPort без брокера: лид только пишется в лог.
type LogNotifier struct{}

func NewLogNotifier() *LogNotifier {
	return &LogNotifier{}
}

func (n *LogNotifier) QuizSubmitted(ctx context.Context, issuance *domain.Issuance) error {
	contextkeys.LoggerFromContext(ctx).Info("New quiz lead", port.Fields{
		"component":   "LogNotifier",
		"response_id": issuance.Response.ID.String(),
		"promo_code":  issuance.Promo.Code,
	})
	return nil
}

func (n *LogNotifier) InquiryCreated(ctx context.Context, inquiry *domain.Inquiry) error {
	fields := port.Fields{
		"component":  "LogNotifier",
		"inquiry_id": inquiry.ID.String(),
		"source":     inquiry.Source,
	}
	if inquiry.PlotID != nil {
		fields["plot_id"] = inquiry.PlotID.String()
	}
	contextkeys.LoggerFromContext(ctx).Info("New inquiry lead", fields)
	return nil
}

func (n *LogNotifier) ContactRequestCreated(ctx context.Context, request *domain.ContactRequest) error {
	contextkeys.LoggerFromContext(ctx).Info("New contact request lead", port.Fields{
		"component":  "LogNotifier",
		"request_id": request.ID.String(),
		"type":       request.Type,
	})
	return nil
}
