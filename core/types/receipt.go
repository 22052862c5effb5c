package types

import (
	"encoding/json"

	"github.com/snrg-network/gsnrg/common"
)

const (
	// ReceiptStatusFailed is the status code of an operation whose state
	// changes were rolled back.
	ReceiptStatusFailed = uint64(0)

	// ReceiptStatusSuccessful is the status code of a committed operation.
	ReceiptStatusSuccessful = uint64(1)
)

// Receipt summarizes the outcome of one applied operation: the caller, the
// timestamp the operation executed under, whether it committed, and the
// events it emitted. Failed receipts carry the rejection reason and no
// events (a failed operation leaves no observable state change behind).
type Receipt struct {
	Kind   string
	From   common.Address
	Time   int64
	Status uint64
	Err    string
	Events []Event
}

// Failed reports whether the operation was rejected.
func (r *Receipt) Failed() bool { return r.Status == ReceiptStatusFailed }

// MarshalJSON renders the receipt with named events.
func (r *Receipt) MarshalJSON() ([]byte, error) {
	events := json.RawMessage("[]")
	if len(r.Events) > 0 {
		enc, err := MarshalEvents(r.Events)
		if err != nil {
			return nil, err
		}
		events = enc
	}
	return json.Marshal(struct {
		Kind   string          `json:"kind"`
		From   common.Address  `json:"from"`
		Time   int64           `json:"time"`
		Status uint64          `json:"status"`
		Err    string          `json:"error,omitempty"`
		Events json.RawMessage `json:"events"`
	}{r.Kind, r.From, r.Time, r.Status, r.Err, events})
}
