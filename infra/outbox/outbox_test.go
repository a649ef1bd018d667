package outbox

import (
	"bytes"
	"testing"
)

func openTest(t *testing.T) *Outbox {
	t.Helper()
	o, err := Open(t.TempDir())
	if err != nil {
		t.Fatalf("open failed: %v", err)
	}
	t.Cleanup(func() { _ = o.Close() })
	return o
}

func TestAppendAndGet(t *testing.T) {
	o := openTest(t)

	if err := o.Append(1, []byte("payload-1")); err != nil {
		t.Fatalf("append failed: %v", err)
	}

	rec, err := o.Get(1)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if rec.State != StateNew || rec.Retries != 0 {
		t.Fatalf("fresh record = %+v", rec)
	}
	if !bytes.Equal(rec.Payload, []byte("payload-1")) {
		t.Fatalf("payload = %q", rec.Payload)
	}
}

func TestStateTransitions(t *testing.T) {
	o := openTest(t)

	if err := o.Append(7, []byte("x")); err != nil {
		t.Fatalf("append failed: %v", err)
	}
	if err := o.MarkSent(7); err != nil {
		t.Fatalf("mark sent failed: %v", err)
	}
	rec, _ := o.Get(7)
	if rec.State != StateSent || rec.Retries != 1 || rec.LastAttempt == 0 {
		t.Fatalf("after sent: %+v", rec)
	}

	if err := o.MarkAcked(7); err != nil {
		t.Fatalf("mark acked failed: %v", err)
	}
	rec, _ = o.Get(7)
	if rec.State != StateAcked {
		t.Fatalf("after acked: %+v", rec)
	}
	// The ack closes the attempt that MarkSent counted.
	if rec.Retries != 1 {
		t.Fatalf("retries after first-try delivery = %d, want 1", rec.Retries)
	}
}

func TestRetriesCountSendAttempts(t *testing.T) {
	o := openTest(t)

	if err := o.Append(9, []byte("x")); err != nil {
		t.Fatalf("append failed: %v", err)
	}
	_ = o.MarkSent(9)
	_ = o.MarkSent(9)
	_ = o.MarkSent(9)
	_ = o.MarkAcked(9)

	rec, _ := o.Get(9)
	if rec.Retries != 3 {
		t.Fatalf("retries = %d, want 3", rec.Retries)
	}
}

func TestScanPendingSkipsAcked(t *testing.T) {
	o := openTest(t)

	for seq := uint64(1); seq <= 3; seq++ {
		if err := o.Append(seq, []byte{byte(seq)}); err != nil {
			t.Fatalf("append %d failed: %v", seq, err)
		}
	}
	if err := o.MarkAcked(2); err != nil {
		t.Fatalf("mark acked failed: %v", err)
	}

	var seqs []uint64
	err := o.ScanPending(func(rec *Record) error {
		seqs = append(seqs, rec.Seq)
		return nil
	})
	if err != nil {
		t.Fatalf("scan failed: %v", err)
	}
	if len(seqs) != 2 || seqs[0] != 1 || seqs[1] != 3 {
		t.Fatalf("pending seqs = %v, want [1 3]", seqs)
	}
}

func TestTruncateAcked(t *testing.T) {
	o := openTest(t)

	for seq := uint64(1); seq <= 4; seq++ {
		if err := o.Append(seq, []byte{byte(seq)}); err != nil {
			t.Fatalf("append %d failed: %v", seq, err)
		}
	}
	_ = o.MarkAcked(1)
	_ = o.MarkAcked(2)
	_ = o.MarkAcked(4)

	// Only acked records at or below the watermark go away.
	if err := o.TruncateAckedUpTo(3); err != nil {
		t.Fatalf("truncate failed: %v", err)
	}

	if _, err := o.Get(1); err == nil {
		t.Fatal("seq 1 should be gone")
	}
	if _, err := o.Get(2); err == nil {
		t.Fatal("seq 2 should be gone")
	}
	if _, err := o.Get(3); err != nil {
		t.Fatal("seq 3 is not acked and must stay")
	}
	if _, err := o.Get(4); err != nil {
		t.Fatal("seq 4 is above the watermark and must stay")
	}
}
