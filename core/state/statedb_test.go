package state

import (
	"testing"

	"github.com/snrg-network/gsnrg/common"
	"github.com/snrg-network/gsnrg/snrgdb/memorydb"
)

type testEvent struct {
	Tag string `json:"tag"`
}

func (testEvent) EventName() string { return "test" }

func TestStateDefaultZero(t *testing.T) {
	s := New()
	owner := common.HexToAddress("0x1111111111111111111111111111111111111111")
	slot := common.Hash{0x01}

	if got := s.GetState(owner, slot); !got.IsZero() {
		t.Fatalf("untouched slot not zero: %x", got)
	}
}

func TestStateSetGet(t *testing.T) {
	s := New()
	owner := common.HexToAddress("0x1111111111111111111111111111111111111111")
	slot := common.Hash{0x01}
	value := common.Hash{0xde, 0xad}

	s.SetState(owner, slot, value)
	if got := s.GetState(owner, slot); got != value {
		t.Fatalf("have %x, want %x", got, value)
	}
}

func TestSnapshotRevert(t *testing.T) {
	s := New()
	owner := common.HexToAddress("0x1111111111111111111111111111111111111111")
	slot := common.Hash{0x01}

	s.SetState(owner, slot, common.Hash{0x01})
	rev1 := s.Snapshot()
	s.SetState(owner, slot, common.Hash{0x02})
	rev2 := s.Snapshot()
	s.SetState(owner, slot, common.Hash{0x03})

	s.RevertToSnapshot(rev2)
	if got := s.GetState(owner, slot); got != (common.Hash{0x02}) {
		t.Fatalf("after revert to rev2: have %x, want 02", got)
	}
	s.RevertToSnapshot(rev1)
	if got := s.GetState(owner, slot); got != (common.Hash{0x01}) {
		t.Fatalf("after revert to rev1: have %x, want 01", got)
	}
}

func TestRevertMultipleOwners(t *testing.T) {
	s := New()
	a := common.HexToAddress("0xaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa")
	b := common.HexToAddress("0xbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb")
	slot := common.Hash{0x01}

	WriteUint64(s, a, slot, 100)
	rev := s.Snapshot()
	WriteUint64(s, a, slot, 40)
	WriteUint64(s, b, slot, 60)

	s.RevertToSnapshot(rev)
	if got := ReadUint64(s, a, slot); got != 100 {
		t.Fatalf("owner a not reverted: have %d, want 100", got)
	}
	if got := ReadUint64(s, b, slot); got != 0 {
		t.Fatalf("owner b not reverted: have %d, want 0", got)
	}
}

func TestRevertInvalidSnapshot(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("revert of unknown revision did not panic")
		}
	}()
	s := New()
	s.RevertToSnapshot(42)
}

func TestEventsRevert(t *testing.T) {
	s := New()

	s.AddEvent(testEvent{Tag: "kept"})
	rev := s.Snapshot()
	s.AddEvent(testEvent{Tag: "dropped"})
	s.AddEvent(testEvent{Tag: "dropped too"})

	s.RevertToSnapshot(rev)
	events := s.Events()
	if len(events) != 1 {
		t.Fatalf("have %d events, want 1", len(events))
	}
	if ev := events[0].(testEvent); ev.Tag != "kept" {
		t.Fatalf("surviving event %q, want %q", ev.Tag, "kept")
	}
}

func TestResetEvents(t *testing.T) {
	s := New()
	s.AddEvent(testEvent{Tag: "old"})
	s.ResetEvents()
	if got := s.Events(); len(got) != 0 {
		t.Fatalf("have %d events after reset, want 0", len(got))
	}
	s.AddEvent(testEvent{Tag: "new"})
	if got := s.Events(); len(got) != 1 {
		t.Fatalf("have %d events, want 1", len(got))
	}
}

func TestCommitReload(t *testing.T) {
	disk := memorydb.New()
	owner := common.HexToAddress("0x1111111111111111111111111111111111111111")
	slot := common.Hash{0x01}

	s := NewWithStore(disk)
	WriteUint64(s, owner, slot, 7777)
	if err := s.Commit(); err != nil {
		t.Fatalf("commit failed: %v", err)
	}

	reloaded := NewWithStore(disk)
	if got := ReadUint64(reloaded, owner, slot); got != 7777 {
		t.Fatalf("reloaded value %d, want 7777", got)
	}
}

func TestCommitDeletesZeroWords(t *testing.T) {
	disk := memorydb.New()
	owner := common.HexToAddress("0x1111111111111111111111111111111111111111")
	slot := common.Hash{0x01}

	s := NewWithStore(disk)
	WriteUint64(s, owner, slot, 1)
	if err := s.Commit(); err != nil {
		t.Fatalf("commit failed: %v", err)
	}
	if disk.Len() != 1 {
		t.Fatalf("have %d keys after first commit, want 1", disk.Len())
	}

	WriteUint64(s, owner, slot, 0)
	if err := s.Commit(); err != nil {
		t.Fatalf("second commit failed: %v", err)
	}
	if disk.Len() != 0 {
		t.Fatalf("have %d keys after zeroing commit, want 0", disk.Len())
	}
}

func TestRevertedChangeNotCommitted(t *testing.T) {
	disk := memorydb.New()
	owner := common.HexToAddress("0x1111111111111111111111111111111111111111")
	slot := common.Hash{0x01}

	s := NewWithStore(disk)
	WriteUint64(s, owner, slot, 5)
	rev := s.Snapshot()
	WriteUint64(s, owner, slot, 9)
	s.RevertToSnapshot(rev)
	if err := s.Commit(); err != nil {
		t.Fatalf("commit failed: %v", err)
	}

	reloaded := NewWithStore(disk)
	if got := ReadUint64(reloaded, owner, slot); got != 5 {
		t.Fatalf("reloaded value %d, want 5", got)
	}
}

func TestWordCodecs(t *testing.T) {
	s := New()
	owner := common.HexToAddress("0x1111111111111111111111111111111111111111")

	WriteUint64(s, owner, common.Hash{0x01}, 123456789)
	if got := ReadUint64(s, owner, common.Hash{0x01}); got != 123456789 {
		t.Fatalf("uint64: have %d, want 123456789", got)
	}

	WriteInt64(s, owner, common.Hash{0x02}, 1_700_000_000)
	if got := ReadInt64(s, owner, common.Hash{0x02}); got != 1_700_000_000 {
		t.Fatalf("int64: have %d, want 1700000000", got)
	}

	WriteBool(s, owner, common.Hash{0x03}, true)
	if !ReadBool(s, owner, common.Hash{0x03}) {
		t.Fatal("bool: have false, want true")
	}
	WriteBool(s, owner, common.Hash{0x03}, false)
	if ReadBool(s, owner, common.Hash{0x03}) {
		t.Fatal("bool: have true, want false")
	}

	addr := common.HexToAddress("0xb794f5ea0ba39494ce839613fffba74279579268")
	WriteAddress(s, owner, common.Hash{0x04}, addr)
	if got := ReadAddress(s, owner, common.Hash{0x04}); got != addr {
		t.Fatalf("address: have %x, want %x", got, addr)
	}
}
