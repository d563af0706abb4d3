// Package codec encodes form commands into the payload handed to the host.
package codec

import "errors"

var (
	// ErrDelimiterCollision is returned when a legacy payload does not split
	// into the expected number of values, usually because a value contains
	// the delimiter.
	ErrDelimiterCollision = errors.New("delimiter collision in payload")

	// ErrUnknownTag is returned when a payload carries an unexpected tag.
	ErrUnknownTag = errors.New("unknown message tag")

	// ErrMalformed is returned when a payload cannot be parsed.
	ErrMalformed = errors.New("malformed payload")
)

// Field is one named value of a message.
type Field struct {
	Name  string
	Value string
}

// Message is a tagged, ordered list of form values.
type Message struct {
	Tag    string
	Fields []Field
}

// NewMessage pairs names with values. Extra names or values are dropped.
func NewMessage(tag string, names, values []string) Message {
	n := min(len(names), len(values))
	fields := make([]Field, n)
	for i := 0; i < n; i++ {
		fields[i] = Field{Name: names[i], Value: values[i]}
	}
	return Message{Tag: tag, Fields: fields}
}

// Values returns the field values in order.
func (m Message) Values() []string {
	values := make([]string, len(m.Fields))
	for i, f := range m.Fields {
		values[i] = f.Value
	}
	return values
}

// Encoder turns a Message into a payload string.
type Encoder interface {
	Encode(msg Message) (string, error)
}

// Format names an encoding.
type Format string

const (
	FormatLegacy Format = "legacy"
	FormatJSON   Format = "json"
)

// New returns the encoder for format. Unknown formats fall back to legacy.
func New(format Format) Encoder {
	if format == FormatJSON {
		return JSONEncoder{}
	}
	return LegacyEncoder{}
}
