package sysop

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrInvalidOp is returned when raw bytes cannot be decoded as an Op.
var ErrInvalidOp = errors.New("invalid operation payload")

// Decode parses an Op from raw JSON bytes.
func Decode(data []byte) (*Op, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: empty data", ErrInvalidOp)
	}
	var op Op
	if err := json.Unmarshal(data, &op); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidOp, err)
	}
	if op.Kind == "" {
		return nil, fmt.Errorf("%w: missing kind field", ErrInvalidOp)
	}
	return &op, nil
}

// DecodePayload unmarshals op.Payload into dst.
func DecodePayload(op *Op, dst interface{}) error {
	if len(op.Payload) == 0 {
		return nil
	}
	if err := json.Unmarshal(op.Payload, dst); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidOp, err)
	}
	return nil
}

// Encode serialises an Op to JSON bytes.
func Encode(op *Op) ([]byte, error) {
	return json.Marshal(op)
}

// MakeOp is a convenience helper that creates and encodes an Op.
func MakeOp(kind Kind, payload interface{}) ([]byte, error) {
	var raw json.RawMessage
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return nil, err
		}
		raw = b
	}
	return Encode(&Op{Kind: kind, Payload: raw})
}
