package kafka

import (
	"context"
	"log/slog"

	"fetchrecipes/networking"
)

// ReloadRequest asks a running service to reload its recipe list
type ReloadRequest struct {
	RequestType string `json:"request_type"`
	RequestedBy string `json:"requested_by,omitempty"`
}

// Dispatcher accepts reload requests
type Dispatcher interface {
	Dispatch(rt networking.RequestType) (string, error)
}

// NewReloadHandler decodes ReloadRequest messages and dispatches them.
// Unknown request types are marked and skipped.
func NewReloadHandler(d Dispatcher, logger *slog.Logger) *TypedMessageHandler[ReloadRequest] {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	logger = logger.With("component", "reload-handler")

	return &TypedMessageHandler[ReloadRequest]{
		AlwaysMark: true,
		Logger:     logger,
		Validate: func(msg *ReloadRequest) bool {
			if _, err := networking.ParseRequestType(msg.RequestType); err != nil {
				logger.Warn("skipping reload request", "error", err)
				return false
			}
			return true
		},
		Process: func(ctx context.Context, msg *ReloadRequest) error {
			rt, err := networking.ParseRequestType(msg.RequestType)
			if err != nil {
				return err
			}
			id, err := d.Dispatch(rt)
			if err != nil {
				return err
			}
			logger.Info("reload requested", "request_id", id, "request_type", string(rt), "requested_by", msg.RequestedBy)
			return nil
		},
	}
}
