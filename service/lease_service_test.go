package service

import (
	"testing"

	"google.golang.org/protobuf/proto"

	"respool"
	"respool/api/pb"
	"respool/domain/session"
	"respool/infra/journal"
	"respool/infra/outbox"
	"respool/infra/reclaim"
	"respool/infra/sequence"
)

type testEnv struct {
	svc     *LeaseService
	jrnlDir string
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	jrnlDir := t.TempDir()
	jrnl, err := journal.Open(journal.Config{Dir: jrnlDir})
	if err != nil {
		t.Fatalf("journal open failed: %v", err)
	}
	t.Cleanup(func() { _ = jrnl.Close() })

	box, err := outbox.Open(t.TempDir())
	if err != nil {
		t.Fatalf("outbox open failed: %v", err)
	}
	t.Cleanup(func() { _ = box.Close() })

	svc := NewLeaseService(
		respool.New(respool.Config[session.Session]{BlockMaxItem: 8}),
		sequence.New(0),
		jrnl,
		box,
		reclaim.NewRetireRing(64),
		reclaim.NewReaderEpoch(),
	)
	return &testEnv{svc: svc, jrnlDir: jrnlDir}
}

func TestOpenTouchRelease(t *testing.T) {
	env := newTestEnv(t)
	svc := env.svc

	leaseID, h, err := svc.Open(100)
	if err != nil {
		t.Fatalf("open failed: %v", err)
	}

	sess, ok := svc.Resolve(h)
	if !ok {
		t.Fatal("handle must resolve")
	}
	if sess.UserID != 100 || sess.State != session.Active {
		t.Fatalf("session = %+v", sess)
	}

	if _, err := svc.Touch(leaseID); err != nil {
		t.Fatalf("touch failed: %v", err)
	}
	if n, _ := svc.Touch(leaseID); n != 2 {
		t.Fatalf("touches = %d, want 2", n)
	}

	if err := svc.Release(leaseID); err != nil {
		t.Fatalf("release failed: %v", err)
	}
	if err := svc.Release(leaseID); err == nil {
		t.Fatal("double release must fail")
	}

	// Retired but not yet reclaimed: still addressable.
	sess, ok = svc.Resolve(h)
	if !ok || sess.State != session.Retired {
		t.Fatalf("retired session = %+v, ok = %v", sess, ok)
	}
}

func TestSnapshotSeesOnlyActive(t *testing.T) {
	env := newTestEnv(t)
	svc := env.svc

	id1, _, _ := svc.Open(1)
	id2, _, _ := svc.Open(2)
	_, _, _ = svc.Open(3)
	_ = svc.Release(id1)

	snap := svc.Snapshot()
	if len(snap) != 2 {
		t.Fatalf("snapshot holds %d sessions, want 2", len(snap))
	}
	for _, sess := range snap {
		if sess.LeaseID == id1 {
			t.Fatal("released lease visible in snapshot")
		}
		if sess.State != session.Active {
			t.Fatalf("snapshot session state = %v", sess.State)
		}
	}
	_ = id2
}

func TestEpochReclaimReusesSlot(t *testing.T) {
	env := newTestEnv(t)
	svc := env.svc

	id, h, _ := svc.Open(7)
	if err := svc.Release(id); err != nil {
		t.Fatalf("release failed: %v", err)
	}

	// Before reclamation the slot must not be handed out again.
	id2, h2, _ := svc.Open(8)
	if h2 == h {
		t.Fatal("retired slot reused before the epoch advanced")
	}

	svc.AdvanceEpoch()

	_, h3, _ := svc.Open(9)
	if h3 != h {
		t.Fatalf("reclaimed slot not reused: handle = %d, want %d", h3, h)
	}
	_, _ = id2, h2
}

func TestOpenFailureReturnsSlot(t *testing.T) {
	jrnl, err := journal.Open(journal.Config{Dir: t.TempDir()})
	if err != nil {
		t.Fatalf("journal open failed: %v", err)
	}
	box, err := outbox.Open(t.TempDir())
	if err != nil {
		t.Fatalf("outbox open failed: %v", err)
	}
	t.Cleanup(func() { _ = box.Close() })

	svc := NewLeaseService(
		respool.New(respool.Config[session.Session]{BlockMaxItem: 8, CountFree: true}),
		sequence.New(0),
		jrnl,
		box,
		reclaim.NewRetireRing(64),
		reclaim.NewReaderEpoch(),
	)

	// A dead journal fails every open; the allocated slot must come
	// back instead of leaking.
	_ = jrnl.Close()

	if _, _, err := svc.Open(1); err == nil {
		t.Fatal("open must fail once the journal is closed")
	}

	st, active := svc.Describe()
	if active != 0 {
		t.Fatalf("failed open left %d leases registered", active)
	}
	if st.Items != 1 || st.FreeItems != 1 {
		t.Fatalf("slot leaked: items = %d, free = %d", st.Items, st.FreeItems)
	}

	if len(svc.Snapshot()) != 0 {
		t.Fatal("failed open visible in snapshot")
	}
}

func TestOpenEventFailureUnregistersLease(t *testing.T) {
	jrnl, err := journal.Open(journal.Config{Dir: t.TempDir()})
	if err != nil {
		t.Fatalf("journal open failed: %v", err)
	}
	t.Cleanup(func() { _ = jrnl.Close() })
	box, err := outbox.Open(t.TempDir())
	if err != nil {
		t.Fatalf("outbox open failed: %v", err)
	}

	svc := NewLeaseService(
		respool.New(respool.Config[session.Session]{BlockMaxItem: 8, CountFree: true}),
		sequence.New(0),
		jrnl,
		box,
		reclaim.NewRetireRing(64),
		reclaim.NewReaderEpoch(),
	)

	// The journal accepts the command but the outbox is gone.
	_ = box.Close()

	if _, _, err := svc.Open(1); err == nil {
		t.Fatal("open must fail once the outbox is closed")
	}

	st, active := svc.Describe()
	if active != 0 {
		t.Fatalf("failed open left %d leases registered", active)
	}
	if st.FreeItems != 1 {
		t.Fatalf("slot leaked: free = %d", st.FreeItems)
	}
}

func TestOutboxReceivesEvents(t *testing.T) {
	env := newTestEnv(t)
	svc := env.svc

	id, h, _ := svc.Open(55)
	_ = svc.Release(id)

	var events []*pb.LeaseEvent
	err := svc.box.ScanPending(func(rec *outbox.Record) error {
		var ev pb.LeaseEvent
		if err := proto.Unmarshal(rec.Payload, &ev); err != nil {
			return err
		}
		events = append(events, &ev)
		return nil
	})
	if err != nil {
		t.Fatalf("scan failed: %v", err)
	}

	if len(events) != 2 {
		t.Fatalf("outbox holds %d events, want 2", len(events))
	}
	if events[0].Type != "open" || events[0].UserId != 55 || events[0].Handle != uint64(h) {
		t.Fatalf("open event = %+v", events[0])
	}
	if events[1].Type != "release" || events[1].LeaseId != id {
		t.Fatalf("release event = %+v", events[1])
	}
}

func TestReplayRebuildsLeases(t *testing.T) {
	env := newTestEnv(t)
	svc := env.svc

	id1, _, _ := svc.Open(1)
	id2, _, _ := svc.Open(2)
	_, _ = svc.Touch(id2)
	_ = svc.Release(id1)
	lastSeq := svc.seqGen.Current()

	// A fresh service over the same journal directory must converge to
	// the same lease table.
	jrnl2, err := journal.Open(journal.Config{Dir: t.TempDir()})
	if err != nil {
		t.Fatalf("journal open failed: %v", err)
	}
	defer jrnl2.Close()
	box2, err := outbox.Open(t.TempDir())
	if err != nil {
		t.Fatalf("outbox open failed: %v", err)
	}
	defer box2.Close()

	svc2 := NewLeaseService(
		respool.New(respool.Config[session.Session]{BlockMaxItem: 8}),
		sequence.New(0),
		jrnl2,
		box2,
		reclaim.NewRetireRing(64),
		reclaim.NewReaderEpoch(),
	)
	if err := svc2.ReplayFromJournal(env.jrnlDir); err != nil {
		t.Fatalf("replay failed: %v", err)
	}

	if svc2.seqGen.Current() != lastSeq {
		t.Fatalf("sequencer = %d, want %d", svc2.seqGen.Current(), lastSeq)
	}

	snap := svc2.Snapshot()
	if len(snap) != 1 {
		t.Fatalf("replayed snapshot holds %d sessions, want 1", len(snap))
	}
	if snap[0].LeaseID != id2 || snap[0].UserID != 2 || snap[0].Touches != 1 {
		t.Fatalf("replayed session = %+v", snap[0])
	}
}
