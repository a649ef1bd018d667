package journal

import (
	"encoding/binary"
	"time"
)

// RecordType defines journal intent.
type RecordType uint8

const (
	RecordOpen RecordType = iota
	RecordRelease
	RecordTouch
)

// Record is an immutable journal entry.
type Record struct {
	Type RecordType
	Seq  uint64
	Time int64
	Data []byte
}

func NewRecord(t RecordType, seq uint64, data []byte) *Record {
	return &Record{
		Type: t,
		Seq:  seq,
		Time: time.Now().UnixNano(),
		Data: data,
	}
}

// Command payloads are a single 8-byte big-endian word: the user ID for
// opens, the lease ID for touches and releases.

func EncodeWord(v uint64) []byte {
	buf := make([]byte, 8)
	binary.BigEndian.PutUint64(buf, v)
	return buf
}

func DecodeWord(b []byte) (uint64, bool) {
	if len(b) != 8 {
		return 0, false
	}
	return binary.BigEndian.Uint64(b), true
}
