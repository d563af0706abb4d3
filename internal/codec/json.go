package codec

import (
	"encoding/json"
	"fmt"
)

// JSONVersion is the envelope version written by JSONEncoder.
const JSONVersion = 1

// envelope is the self-describing JSON payload. Field order is kept in
// Order because JSON objects are unordered.
type envelope struct {
	Type    string            `json:"type"`
	Version int               `json:"version"`
	Fields  map[string]string `json:"fields"`
	Order   []string          `json:"order"`
}

// JSONEncoder writes a versioned JSON envelope. It is not understood by
// hosts that expect the legacy format.
type JSONEncoder struct{}

// Encode marshals msg into the JSON envelope.
func (JSONEncoder) Encode(msg Message) (string, error) {
	if msg.Tag == "" {
		return "", fmt.Errorf("%w: empty tag", ErrMalformed)
	}
	env := envelope{
		Type:    msg.Tag,
		Version: JSONVersion,
		Fields:  make(map[string]string, len(msg.Fields)),
		Order:   make([]string, 0, len(msg.Fields)),
	}
	for _, f := range msg.Fields {
		if _, dup := env.Fields[f.Name]; dup {
			return "", fmt.Errorf("%w: duplicate field %q", ErrMalformed, f.Name)
		}
		env.Fields[f.Name] = f.Value
		env.Order = append(env.Order, f.Name)
	}

	data, err := json.Marshal(env)
	if err != nil {
		return "", fmt.Errorf("marshal envelope: %w", err)
	}
	return string(data), nil
}

// DecodeJSON parses a payload written by JSONEncoder.
func DecodeJSON(payload string) (Message, error) {
	var env envelope
	if err := json.Unmarshal([]byte(payload), &env); err != nil {
		return Message{}, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if env.Type == "" {
		return Message{}, fmt.Errorf("%w: missing type", ErrMalformed)
	}
	if env.Version != JSONVersion {
		return Message{}, fmt.Errorf("%w: unsupported version %d", ErrMalformed, env.Version)
	}

	msg := Message{Tag: env.Type, Fields: make([]Field, 0, len(env.Order))}
	for _, name := range env.Order {
		v, ok := env.Fields[name]
		if !ok {
			return Message{}, fmt.Errorf("%w: field %q listed but absent", ErrMalformed, name)
		}
		msg.Fields = append(msg.Fields, Field{Name: name, Value: v})
	}
	return msg, nil
}
