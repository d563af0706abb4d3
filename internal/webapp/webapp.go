// Package webapp models the surface the hosting chat client exposes to the
// WebApp: the messaging bridge, the form document, containers and alerts.
package webapp

import "context"

// Alert texts shown to the user.
const (
	AlertFillAllFields = "Пожалуйста, заполните все поля."
	AlertCarAdded      = "Машина добавлена!"
	AlertTripAdded     = "Поездка добавлена!"
)

// Bridge is the host-provided messaging bridge.
// Neither call reports delivery; an error only means the hand-off failed.
type Bridge interface {
	// Expand asks the host to expand the WebApp viewport to full screen.
	Expand(ctx context.Context) error

	// SendData hands one payload string to the host application.
	SendData(ctx context.Context, data string) error
}

// Field is a named input element of the document.
type Field interface {
	Value() string
}

// Container is an element entries can be appended to.
type Container interface {
	Append(ctx context.Context, text string) error
}

// StoredContainer is a Container whose contents can be read back.
type StoredContainer interface {
	Container
	Items(ctx context.Context) ([]string, error)
}

// ContainerStore resolves the containers of a session.
type ContainerStore interface {
	Container(session, id string) StoredContainer
}

// Document is the hosting page: named fields and containers.
type Document interface {
	Field(id string) (Field, bool)
}

// Alerter presents blocking user-facing dialogs.
type Alerter interface {
	Alert(message string)
}
