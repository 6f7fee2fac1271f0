package notify

import (
	"context"
	"log/slog"
)

// NoOpNotifier implements Notifier by logging discarded alerts. It is used
// when Discord (or another notification backend) is not configured.
type NoOpNotifier struct {
	log *slog.Logger
}

// NewNoOpNotifier creates a notifier that discards alerts with a log message.
func NewNoOpNotifier(log *slog.Logger) *NoOpNotifier {
	return &NoOpNotifier{log: log}
}

// SendAlert logs and discards an alert.
func (n *NoOpNotifier) SendAlert(_ context.Context, alert *AssessmentAlert) error {
	n.log.Debug("notification discarded (no backend configured)",
		"vehicle", alert.VehicleName,
		"assessment", alert.Assessment,
	)
	return nil
}
