// Package stamp attaches identities and civil timestamps to payloads.
// A Stamp is a payload-agnostic envelope whose ID is a time-ordered UUID
// and whose timestamp comes from an injected clock, so records created
// under a synthetic clock are fully deterministic apart from the ID.
package stamp

import (
	"fmt"

	"github.com/go-json-experiment/json"
	"github.com/google/uuid"

	"github.com/BYTE-6D65/civiltime/pkg/civil"
	"github.com/BYTE-6D65/civiltime/pkg/clock"
)

// Stamp is a timestamped record envelope that can carry any type of data.
// It supports record correlation, causation tracking, and filtering via
// metadata.
type Stamp struct {
	// ID is a time-ordered (version 7) UUID identifying this record
	ID string `json:"id"`

	// Source identifies the originating component or subsystem
	Source string `json:"source"`

	// Time indicates when the record was created, in UTC
	Time civil.Time `json:"time"`

	// Payload contains the serialized payload (use a Codec to marshal/unmarshal)
	Payload []byte `json:"payload,omitempty"`

	// Metadata provides additional context for filtering and debugging
	Metadata map[string]string `json:"metadata,omitempty"`

	// CorrelationID links related records in a workflow or transaction
	CorrelationID string `json:"correlation_id,omitempty"`

	// CausationID identifies the record that directly caused this record
	CausationID string `json:"causation_id,omitempty"`
}

// Codec defines how to serialize and deserialize payloads.
type Codec interface {
	// Marshal converts a payload struct to bytes
	Marshal(v any) ([]byte, error)

	// Unmarshal deserializes bytes into a payload struct
	Unmarshal(data []byte, v any) error
}

// JSONCodec implements Codec using JSON encoding.
type JSONCodec struct{}

// Marshal converts a payload to JSON bytes.
func (c JSONCodec) Marshal(v any) ([]byte, error) {
	return json.Marshal(v)
}

// Unmarshal deserializes JSON bytes into a payload.
func (c JSONCodec) Unmarshal(data []byte, v any) error {
	return json.Unmarshal(data, v)
}

// New creates a stamp with a generated time-ordered ID and the clock's
// current instant.
func New(source string, payload any, clk clock.Clock, codec Codec) (*Stamp, error) {
	data, err := codec.Marshal(payload)
	if err != nil {
		return nil, err
	}

	id, err := uuid.NewV7()
	if err != nil {
		return nil, err
	}

	return &Stamp{
		ID:       id.String(),
		Source:   source,
		Time:     clk.Now(),
		Payload:  data,
		Metadata: make(map[string]string),
	}, nil
}

// WithMetadata adds a metadata key-value pair to the stamp.
func (s *Stamp) WithMetadata(key, value string) *Stamp {
	if s.Metadata == nil {
		s.Metadata = make(map[string]string)
	}
	s.Metadata[key] = value
	return s
}

// WithCorrelationID sets the correlation ID for tracking related records.
func (s *Stamp) WithCorrelationID(id string) *Stamp {
	s.CorrelationID = id
	return s
}

// WithCausationID sets the causation ID to link this record to its cause.
func (s *Stamp) WithCausationID(id string) *Stamp {
	s.CausationID = id
	return s
}

// DecodePayload deserializes the stamp's payload into the provided struct.
func (s *Stamp) DecodePayload(v any, codec Codec) error {
	if len(s.Payload) == 0 {
		return nil
	}
	return codec.Unmarshal(s.Payload, v)
}

// TimeFromUUID recovers the timestamp embedded in a time-ordered UUID
// (versions 1, 2, 6, and 7) as a civil.Time. Version 7 IDs carry
// millisecond precision; versions 1, 2, and 6 carry 100ns precision.
func TimeFromUUID(u uuid.UUID) (civil.Time, error) {
	switch u.Version() {
	case 1, 2, 6, 7:
		sec, nsec := u.Time().UnixTime()
		return civil.Unix(sec, nsec), nil
	default:
		return civil.Time{}, fmt.Errorf("stamp: version %d uuid carries no timestamp", u.Version())
	}
}
