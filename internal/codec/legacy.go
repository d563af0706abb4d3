package codec

import (
	"fmt"
	"strings"
)

// Delimiter separates the tag and values in the legacy format.
const Delimiter = "_"

// LegacyEncoder produces "<tag>_<v1>_<v2>...". Values are not escaped, so a
// value containing the delimiter makes the payload ambiguous.
type LegacyEncoder struct{}

// Encode joins the tag and values with Delimiter.
func (LegacyEncoder) Encode(msg Message) (string, error) {
	if msg.Tag == "" {
		return "", fmt.Errorf("%w: empty tag", ErrMalformed)
	}
	parts := make([]string, 0, len(msg.Fields)+1)
	parts = append(parts, msg.Tag)
	parts = append(parts, msg.Values()...)
	return strings.Join(parts, Delimiter), nil
}

// DecodeLegacy splits a legacy payload carrying tag into exactly n values.
func DecodeLegacy(payload, tag string, n int) ([]string, error) {
	prefix := tag + Delimiter
	if !strings.HasPrefix(payload, prefix) {
		return nil, fmt.Errorf("%w: want %q", ErrUnknownTag, tag)
	}

	values := strings.Split(strings.TrimPrefix(payload, prefix), Delimiter)
	if len(values) != n {
		return nil, fmt.Errorf("%w: got %d values, want %d", ErrDelimiterCollision, len(values), n)
	}
	return values, nil
}
