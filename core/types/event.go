// Package types holds the receipt and event records shared by the custody
// engines and the operation processor.
package types

import "encoding/json"

// Event is a structured record emitted by a state-mutating operation.
// Concrete event types live next to the engine that emits them; an event
// describes one fact (stake created, nonce consumed, root finalized) and is
// collected into the operation's receipt for off-chain indexing.
type Event interface {
	// EventName returns the stable name the event is indexed under.
	EventName() string
}

// eventEnvelope is the wire form of an event inside a receipt.
type eventEnvelope struct {
	Name string `json:"name"`
	Data Event  `json:"data"`
}

// MarshalEvents encodes events with their names for receipt output.
func MarshalEvents(events []Event) ([]byte, error) {
	out := make([]eventEnvelope, len(events))
	for i, ev := range events {
		out[i] = eventEnvelope{Name: ev.EventName(), Data: ev}
	}
	return json.Marshal(out)
}
