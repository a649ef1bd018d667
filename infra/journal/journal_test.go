package journal

import (
	"os"
	"path/filepath"
	"testing"
)

func corruptByte(t *testing.T, path string, off int) {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read segment: %v", err)
	}
	if off >= len(data) {
		t.Fatalf("segment too short to corrupt at %d", off)
	}
	data[off] ^= 0xff
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write segment: %v", err)
	}
}

func TestAppendAndReplay(t *testing.T) {
	dir := t.TempDir()

	j, err := Open(Config{Dir: dir})
	if err != nil {
		t.Fatalf("open failed: %v", err)
	}

	if err := j.Append(NewRecord(RecordOpen, 1, EncodeWord(100))); err != nil {
		t.Fatalf("append failed: %v", err)
	}
	if err := j.Append(NewRecord(RecordTouch, 2, EncodeWord(1))); err != nil {
		t.Fatalf("append failed: %v", err)
	}
	if err := j.Append(NewRecord(RecordRelease, 3, EncodeWord(1))); err != nil {
		t.Fatalf("append failed: %v", err)
	}
	if err := j.Close(); err != nil {
		t.Fatalf("close failed: %v", err)
	}

	var types []RecordType
	var words []uint64
	last, err := Replay(dir, func(rec *Record) error {
		types = append(types, rec.Type)
		w, ok := DecodeWord(rec.Data)
		if !ok {
			t.Fatalf("bad payload at seq %d", rec.Seq)
		}
		words = append(words, w)
		return nil
	})
	if err != nil {
		t.Fatalf("replay failed: %v", err)
	}
	if last != 3 {
		t.Fatalf("last seq = %d, want 3", last)
	}
	if len(types) != 3 || types[0] != RecordOpen || types[1] != RecordTouch || types[2] != RecordRelease {
		t.Fatalf("replayed types = %v", types)
	}
	if words[0] != 100 || words[1] != 1 || words[2] != 1 {
		t.Fatalf("replayed words = %v", words)
	}
}

func TestRotationAndTruncate(t *testing.T) {
	dir := t.TempDir()

	// Tiny segments force a rotation on every append.
	j, err := Open(Config{Dir: dir, SegmentSize: 1})
	if err != nil {
		t.Fatalf("open failed: %v", err)
	}
	for seq := uint64(1); seq <= 4; seq++ {
		if err := j.Append(NewRecord(RecordOpen, seq, EncodeWord(seq))); err != nil {
			t.Fatalf("append %d failed: %v", seq, err)
		}
	}

	if err := j.TruncateBefore(2); err != nil {
		t.Fatalf("truncate failed: %v", err)
	}
	_ = j.Close()

	var seqs []uint64
	_, err = Replay(dir, func(rec *Record) error {
		seqs = append(seqs, rec.Seq)
		return nil
	})
	if err != nil {
		t.Fatalf("replay after truncate failed: %v", err)
	}
	for _, s := range seqs {
		if s <= 2 {
			t.Fatalf("seq %d should have been truncated", s)
		}
	}
	if len(seqs) == 0 {
		t.Fatal("truncate removed live segments")
	}
}

func TestReopenAfterTruncateResumesHighestSegment(t *testing.T) {
	dir := t.TempDir()

	j, err := Open(Config{Dir: dir, SegmentSize: 1})
	if err != nil {
		t.Fatalf("open failed: %v", err)
	}
	for seq := uint64(1); seq <= 4; seq++ {
		if err := j.Append(NewRecord(RecordOpen, seq, EncodeWord(seq))); err != nil {
			t.Fatalf("append %d failed: %v", seq, err)
		}
	}
	if err := j.TruncateBefore(2); err != nil {
		t.Fatalf("truncate failed: %v", err)
	}
	_ = j.Close()

	// The reopened journal must resume above the surviving segments,
	// not land new records below them.
	j2, err := Open(Config{Dir: dir, SegmentSize: 1})
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	if err := j2.Append(NewRecord(RecordOpen, 5, EncodeWord(5))); err != nil {
		t.Fatalf("append after reopen failed: %v", err)
	}
	_ = j2.Close()

	var seqs []uint64
	last, err := Replay(dir, func(rec *Record) error {
		seqs = append(seqs, rec.Seq)
		return nil
	})
	if err != nil {
		t.Fatalf("replay after reopen failed: %v", err)
	}
	if last != 5 {
		t.Fatalf("last seq = %d, want 5", last)
	}
	if len(seqs) != 3 || seqs[0] != 3 || seqs[1] != 4 || seqs[2] != 5 {
		t.Fatalf("replayed seqs = %v, want [3 4 5]", seqs)
	}
}

func TestResumedSegmentKeepsItsByteCount(t *testing.T) {
	dir := t.TempDir()

	// One framed word record is 33 bytes, so two of them cross the cap.
	j, err := Open(Config{Dir: dir, SegmentSize: 60})
	if err != nil {
		t.Fatalf("open failed: %v", err)
	}
	if err := j.Append(NewRecord(RecordOpen, 1, EncodeWord(1))); err != nil {
		t.Fatalf("append failed: %v", err)
	}
	_ = j.Close()

	j2, err := Open(Config{Dir: dir, SegmentSize: 60})
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	if j2.current.offset == 0 {
		t.Fatal("resumed segment reports an empty offset")
	}
	if err := j2.Append(NewRecord(RecordOpen, 2, EncodeWord(2))); err != nil {
		t.Fatalf("append after reopen failed: %v", err)
	}
	_ = j2.Close()

	if _, err := os.Stat(filepath.Join(dir, segmentName(1))); err != nil {
		t.Fatalf("segment did not rotate after resume: %v", err)
	}
}

func TestCorruptRecordFailsReplay(t *testing.T) {
	dir := t.TempDir()

	j, err := Open(Config{Dir: dir})
	if err != nil {
		t.Fatalf("open failed: %v", err)
	}
	if err := j.Append(NewRecord(RecordOpen, 1, EncodeWord(9))); err != nil {
		t.Fatalf("append failed: %v", err)
	}
	_ = j.Close()

	// Flip one payload byte on disk.
	path := filepath.Join(dir, segmentName(0))
	corruptByte(t, path, 21)

	_, err = Replay(dir, func(*Record) error { return nil })
	if err == nil {
		t.Fatal("replay accepted a corrupt record")
	}
}
