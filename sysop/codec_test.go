package sysop

import (
	"errors"
	"testing"

	"github.com/snrg-network/gsnrg/common"
	"github.com/snrg-network/gsnrg/core/state"
)

func TestDecodeRejectsGarbage(t *testing.T) {
	for _, data := range [][]byte{
		nil,
		[]byte(""),
		[]byte("not json"),
		[]byte(`{"payload":{}}`),
		[]byte(`{"kind":""}`),
	} {
		if _, err := Decode(data); !errors.Is(err, ErrInvalidOp) {
			t.Fatalf("Decode(%q): have %v, want ErrInvalidOp", data, err)
		}
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	data, err := MakeOp(KindStakingStake, &StakePayload{Amount: 500_000, DurationDays: 30})
	if err != nil {
		t.Fatalf("MakeOp failed: %v", err)
	}
	op, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if op.Kind != KindStakingStake {
		t.Fatalf("kind %q, want %q", op.Kind, KindStakingStake)
	}
	var p StakePayload
	if err := DecodePayload(op, &p); err != nil {
		t.Fatalf("DecodePayload failed: %v", err)
	}
	if p.Amount != 500_000 || p.DurationDays != 30 {
		t.Fatalf("payload %+v, want amount 500000 duration 30", p)
	}
}

func TestDecodePayloadEmptyIsNoop(t *testing.T) {
	op := &Op{Kind: KindStakingPause}
	var p StakePayload
	if err := DecodePayload(op, &p); err != nil {
		t.Fatalf("empty payload decode: %v", err)
	}
	if p.Amount != 0 {
		t.Fatalf("payload mutated: %+v", p)
	}
}

func TestDecodePayloadMalformed(t *testing.T) {
	op := &Op{Kind: KindStakingStake, Payload: []byte(`{"amount":"oops"}`)}
	var p StakePayload
	if err := DecodePayload(op, &p); !errors.Is(err, ErrInvalidOp) {
		t.Fatalf("have %v, want ErrInvalidOp", err)
	}
}

type recordingHandler struct {
	kind Kind
	hits int
}

func (h *recordingHandler) CanHandle(kind Kind) bool { return kind == h.kind }

func (h *recordingHandler) Handle(ctx *Context, op *Op) error {
	h.hits++
	return nil
}

func TestRegistryDispatch(t *testing.T) {
	reg := &Registry{}
	h := &recordingHandler{kind: KindSwapBurn}
	reg.Register(h)

	ctx := &Context{From: common.Address{0x01}, Now: 1000, StateDB: state.New()}
	if err := reg.Dispatch(ctx, &Op{Kind: KindSwapBurn}); err != nil {
		t.Fatalf("dispatch failed: %v", err)
	}
	if h.hits != 1 {
		t.Fatalf("handler hit %d times, want 1", h.hits)
	}

	err := reg.Dispatch(ctx, &Op{Kind: Kind("no_such_kind")})
	if !errors.Is(err, ErrUnknownKind) {
		t.Fatalf("have %v, want ErrUnknownKind", err)
	}
}
