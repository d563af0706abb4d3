package webapp

import (
	"context"

	"go.uber.org/zap"
)

// LogBridge is a Bridge that only writes events to the log.
// It is used when no host channel is configured.
type LogBridge struct {
	logger *zap.Logger
}

// NewLogBridge creates a new LogBridge.
func NewLogBridge(logger *zap.Logger) *LogBridge {
	return &LogBridge{logger: logger.Named("bridge")}
}

// Expand logs the expand request.
func (b *LogBridge) Expand(ctx context.Context) error {
	b.logger.Info("web_app_expand", zap.String("session", SessionFrom(ctx)))
	return nil
}

// SendData logs the payload.
func (b *LogBridge) SendData(ctx context.Context, data string) error {
	b.logger.Info("web_app_data",
		zap.String("session", SessionFrom(ctx)),
		zap.String("data", data),
	)
	return nil
}

var _ Bridge = (*LogBridge)(nil)
