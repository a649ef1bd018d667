package outbox

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/cockroachdb/pebble"
)

// -------------------- State --------------------

type State uint8

const (
	StateNew State = iota
	StateSent
	StateAcked
)

func (s State) String() string {
	switch s {
	case StateNew:
		return "NEW"
	case StateSent:
		return "SENT"
	case StateAcked:
		return "ACKED"
	default:
		return "UNKNOWN"
	}
}

// -------------------- Record --------------------

// Record is one outbox entry: a broadcast payload plus its delivery
// state. Records are keyed by event sequence, so a scan walks them in
// publish order.
type Record struct {
	Seq         uint64
	State       State
	Retries     uint32
	LastAttempt int64
	Payload     []byte
}

// binary encoding: [state:1][retries:4][lastAttempt:8][len:4][payload]
func encodeRecord(r *Record) []byte {
	buf := make([]byte, 1+4+8+4+len(r.Payload))
	buf[0] = byte(r.State)
	binary.BigEndian.PutUint32(buf[1:5], r.Retries)
	binary.BigEndian.PutUint64(buf[5:13], uint64(r.LastAttempt))
	binary.BigEndian.PutUint32(buf[13:17], uint32(len(r.Payload)))
	copy(buf[17:], r.Payload)
	return buf
}

func decodeRecord(seq uint64, b []byte) (*Record, error) {
	if len(b) < 17 {
		return nil, errors.New("invalid outbox record length")
	}
	n := binary.BigEndian.Uint32(b[13:17])
	if len(b) != 17+int(n) {
		return nil, errors.New("invalid outbox payload length")
	}
	payload := make([]byte, n)
	copy(payload, b[17:])
	return &Record{
		Seq:         seq,
		State:       State(b[0]),
		Retries:     binary.BigEndian.Uint32(b[1:5]),
		LastAttempt: int64(binary.BigEndian.Uint64(b[5:13])),
		Payload:     payload,
	}, nil
}

// -------------------- Outbox --------------------

// Outbox is the durable hand-off between the lease service and the
// Kafka broadcaster. An event is appended in state NEW in the same
// command path that mutates the lease table; the broadcaster walks
// pending records, publishes them and marks them ACKED. Acked records
// are garbage-collected once the journal has been truncated past them.
type Outbox struct {
	db     *pebble.DB
	closed atomic.Bool
}

var errClosed = errors.New("outbox closed")

func Open(dir string) (*Outbox, error) {
	db, err := pebble.Open(dir, &pebble.Options{
		DisableWAL: false, // we WANT durability
	})
	if err != nil {
		return nil, err
	}
	return &Outbox{db: db}, nil
}

func (o *Outbox) Close() error {
	// pebble panics on use after Close; the flag turns late writers
	// into plain errors instead.
	if o.closed.Swap(true) {
		return nil
	}
	return o.db.Close()
}

// -------------------- API --------------------

// Append inserts a new pending event (called by the lease service).
func (o *Outbox) Append(seq uint64, payload []byte) error {
	if o.closed.Load() {
		return errClosed
	}
	rec := &Record{
		Seq:     seq,
		State:   StateNew,
		Payload: payload,
	}
	return o.db.Set(keyFor(seq), encodeRecord(rec), pebble.Sync)
}

// MarkSent records a delivery attempt.
func (o *Outbox) MarkSent(seq uint64) error {
	return o.transition(seq, StateSent)
}

// MarkAcked records broker acknowledgement.
func (o *Outbox) MarkAcked(seq uint64) error {
	return o.transition(seq, StateAcked)
}

func (o *Outbox) transition(seq uint64, state State) error {
	if o.closed.Load() {
		return errClosed
	}
	rec, err := o.Get(seq)
	if err != nil {
		return err
	}
	rec.State = state
	// Only a send is an attempt; acking the same attempt is not.
	if state == StateSent {
		rec.Retries++
	}
	rec.LastAttempt = time.Now().UnixNano()
	return o.db.Set(keyFor(seq), encodeRecord(rec), pebble.Sync)
}

// Get returns the record for one event sequence.
func (o *Outbox) Get(seq uint64) (*Record, error) {
	if o.closed.Load() {
		return nil, errClosed
	}
	val, closer, err := o.db.Get(keyFor(seq))
	if err != nil {
		return nil, err
	}
	defer closer.Close()
	return decodeRecord(seq, val)
}

// -------------------- Scan --------------------

// ScanPending iterates every record that has not been acked, in
// sequence order. SENT records are included: a crash or a failed
// publish between MarkSent and MarkAcked must be retried.
func (o *Outbox) ScanPending(fn func(rec *Record) error) error {
	if o.closed.Load() {
		return errClosed
	}
	iter, err := o.db.NewIter(&pebble.IterOptions{
		LowerBound: []byte(keyPrefix),
		UpperBound: []byte(keyPrefix + "~"),
	})
	if err != nil {
		return err
	}
	defer iter.Close()

	for iter.First(); iter.Valid(); iter.Next() {
		seq, err := parseKey(iter.Key())
		if err != nil {
			return err
		}
		rec, err := decodeRecord(seq, iter.Value())
		if err != nil {
			return err
		}
		if rec.State == StateAcked {
			continue
		}
		if err := fn(rec); err != nil {
			return err
		}
	}
	return iter.Error()
}

// TruncateAckedUpTo deletes acked records with sequence at or below seq.
func (o *Outbox) TruncateAckedUpTo(seq uint64) error {
	if o.closed.Load() {
		return errClosed
	}
	iter, err := o.db.NewIter(&pebble.IterOptions{
		LowerBound: []byte(keyPrefix),
		UpperBound: append(keyFor(seq), '~'),
	})
	if err != nil {
		return err
	}
	defer iter.Close()

	for iter.First(); iter.Valid(); iter.Next() {
		if State(iter.Value()[0]) != StateAcked {
			continue
		}
		key := make([]byte, len(iter.Key()))
		copy(key, iter.Key())
		if err := o.db.Delete(key, pebble.Sync); err != nil {
			return err
		}
	}
	return iter.Error()
}

// -------------------- Helpers --------------------

const keyPrefix = "event/"

func keyFor(seq uint64) []byte {
	return []byte(fmt.Sprintf("%s%020d", keyPrefix, seq))
}

func parseKey(b []byte) (uint64, error) {
	var seq uint64
	_, err := fmt.Sscanf(string(bytes.TrimPrefix(b, []byte(keyPrefix))), "%d", &seq)
	return seq, err
}
