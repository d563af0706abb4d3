package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"fuelform/internal/codec"
	"fuelform/internal/domain"
	"fuelform/internal/form"
	"fuelform/internal/webapp"
)

// FormAdapter turns WebApp form actions into host bridge messages.
// It holds no per-request state and is safe for concurrent use.
type FormAdapter struct {
	bridge   webapp.Bridge
	encoder  codec.Encoder
	registry VehicleRegistry
	logger   *zap.Logger
}

// FormAdapterDeps contains the dependencies of a FormAdapter.
type FormAdapterDeps struct {
	Bridge   webapp.Bridge
	Encoder  codec.Encoder
	Registry VehicleRegistry
	Logger   *zap.Logger
}

// NewFormAdapter creates a new FormAdapter. A nil Encoder selects the legacy
// format, a nil Registry the example list and a nil Logger a no-op logger.
func NewFormAdapter(deps FormAdapterDeps) *FormAdapter {
	if deps.Encoder == nil {
		deps.Encoder = codec.LegacyEncoder{}
	}
	if deps.Registry == nil {
		deps.Registry = NewStaticRegistry()
	}
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}
	return &FormAdapter{
		bridge:   deps.Bridge,
		encoder:  deps.Encoder,
		registry: deps.Registry,
		logger:   deps.Logger.Named("adapter"),
	}
}

// Load runs the page-load side effects: it asks the host to expand the
// viewport. Failures are logged and never returned.
func (a *FormAdapter) Load(ctx context.Context) {
	if err := a.bridge.Expand(ctx); err != nil {
		a.logger.Warn("expand request failed",
			zap.String("session", webapp.SessionFrom(ctx)),
			zap.Error(err),
		)
	}
}

// SubmitCar validates the car form and dispatches an add_car command.
func (a *FormAdapter) SubmitCar(ctx context.Context, ui webapp.Alerter, f *form.CarForm) error {
	record := f.Record()
	return a.submit(ctx, ui, submission{
		tag:     domain.TagAddCar,
		names:   domain.CarFields,
		record:  record,
		values:  record.Values(),
		success: webapp.AlertCarAdded,
	})
}

// SubmitTrip validates the trip form and dispatches an add_trip command.
func (a *FormAdapter) SubmitTrip(ctx context.Context, ui webapp.Alerter, f *form.TripForm) error {
	record := f.Record()
	return a.submit(ctx, ui, submission{
		tag:     domain.TagAddTrip,
		names:   domain.TripFields,
		record:  record,
		values:  record.Values(),
		success: webapp.AlertTripAdded,
	})
}

type submission struct {
	tag     string
	names   []string
	record  any
	values  []string
	success string
}

func (a *FormAdapter) submit(ctx context.Context, ui webapp.Alerter, s submission) error {
	log := a.logger.With(
		zap.String("tag", s.tag),
		zap.String("session", webapp.SessionFrom(ctx)),
	)

	missing, err := form.Missing(s.record)
	if err != nil {
		return fmt.Errorf("validate %s: %w", s.tag, err)
	}
	if len(missing) > 0 {
		ui.Alert(webapp.AlertFillAllFields)
		log.Debug("submission rejected", zap.Strings("missing", missing))
		return &ValidationError{Missing: missing}
	}

	payload, err := a.encoder.Encode(codec.NewMessage(s.tag, s.names, s.values))
	if err != nil {
		return fmt.Errorf("encode %s: %w", s.tag, err)
	}

	if _, ok := a.encoder.(codec.LegacyEncoder); ok {
		if _, err := codec.DecodeLegacy(payload, s.tag, len(s.values)); errors.Is(err, codec.ErrDelimiterCollision) {
			log.Warn("payload is ambiguous for the host parser", zap.String("payload", payload))
		}
	}

	if err := a.bridge.SendData(ctx, payload); err != nil {
		log.Error("send data failed", zap.Error(err))
		return fmt.Errorf("%w: %v", ErrDispatch, err)
	}

	log.Info("command dispatched", zap.Int("bytes", len(payload)))
	ui.Alert(s.success)
	return nil
}

// ViewCars appends every registered vehicle to c, in registry order.
// Existing container content is kept.
func (a *FormAdapter) ViewCars(ctx context.Context, c webapp.Container) error {
	vehicles, err := a.registry.List(ctx)
	if err != nil {
		a.logger.Error("list vehicles failed", zap.Error(err))
		return fmt.Errorf("%w: %v", ErrRegistryUnavailable, err)
	}

	for _, v := range vehicles {
		if err := c.Append(ctx, v.RegistrationNumber); err != nil {
			return fmt.Errorf("append %s: %w", v.RegistrationNumber, err)
		}
	}
	return nil
}
