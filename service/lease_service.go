package service

import (
	"fmt"
	"sync"

	"google.golang.org/protobuf/proto"

	"respool"
	"respool/api/pb"
	"respool/domain/session"
	"respool/infra/journal"
	"respool/infra/outbox"
	"respool/infra/reclaim"
	"respool/infra/sequence"
)

/*
LeaseService is the ONLY write entry point into the system.

All coordination between:
- the pool (respool)
- domain (session)
- infra (journal, outbox, reclaim)
happens here.
*/

type LeaseService struct {
	pool   *respool.Pool[session.Session]
	seqGen *sequence.Sequencer
	jrnl   *journal.Journal
	box    *outbox.Outbox
	ring   *reclaim.RetireRing
	reader *reclaim.ReaderEpoch

	mu     sync.RWMutex
	leases map[uint64]respool.Handle[session.Session]
}

// NewLeaseService wires all dependencies.
// No globals. No magic.
func NewLeaseService(
	pool *respool.Pool[session.Session],
	seqGen *sequence.Sequencer,
	jrnl *journal.Journal,
	box *outbox.Outbox,
	ring *reclaim.RetireRing,
	reader *reclaim.ReaderEpoch,
) *LeaseService {
	return &LeaseService{
		pool:   pool,
		seqGen: seqGen,
		jrnl:   jrnl,
		box:    box,
		ring:   ring,
		reader: reader,
		leases: make(map[uint64]respool.Handle[session.Session]),
	}
}

//
// ──────────────────────────────────────────────────────────
// Commands
// ──────────────────────────────────────────────────────────
//

// Open allocates a pooled session for the user and returns the lease ID
// together with the pool handle. The handle stays resolvable for the
// process lifetime, so clients may embed it in their own structures.
func (s *LeaseService) Open(userID uint64) (uint64, respool.Handle[session.Session], error) {
	seq := s.seqGen.Next()

	sess, h := s.pool.Get()
	if sess == nil {
		return 0, 0, fmt.Errorf("session pool exhausted")
	}
	sess.Reset(seq, userID)

	if err := s.jrnl.Append(journal.NewRecord(journal.RecordOpen, seq, journal.EncodeWord(userID))); err != nil {
		// The handle never escaped, so the slot goes straight back.
		s.pool.Put(h)
		return 0, 0, err
	}

	s.mu.Lock()
	s.leases[seq] = h
	s.mu.Unlock()

	if err := s.appendEvent("open", seq, seq, userID, uint64(h)); err != nil {
		s.mu.Lock()
		delete(s.leases, seq)
		s.mu.Unlock()
		s.pool.Put(h)
		return 0, 0, err
	}
	return seq, h, nil
}

// Release retires a lease. The slot is not reused immediately: the
// handle parks in the retire ring until the epoch advancer proves no
// snapshot reader can still be looking at it.
func (s *LeaseService) Release(leaseID uint64) error {
	s.mu.Lock()
	h, ok := s.leases[leaseID]
	if !ok {
		s.mu.Unlock()
		return fmt.Errorf("unknown lease %d", leaseID)
	}
	delete(s.leases, leaseID)
	s.mu.Unlock()

	sess := s.pool.Address(h)
	if sess == nil {
		return fmt.Errorf("lease %d lost its slot", leaseID)
	}
	userID := sess.UserID
	sess.State = session.Retired

	seq := s.seqGen.Next()
	if err := s.jrnl.Append(journal.NewRecord(journal.RecordRelease, seq, journal.EncodeWord(leaseID))); err != nil {
		return err
	}

	if !s.ring.Enqueue(uint64(h)) {
		// Ring overflow: reuse immediately rather than leak. A reader
		// mid-snapshot may observe the slot being re-initialised.
		s.pool.Put(h)
	}

	return s.appendEvent("release", seq, leaseID, userID, uint64(h))
}

// Touch bumps the lease's activity counter.
func (s *LeaseService) Touch(leaseID uint64) (uint64, error) {
	s.mu.RLock()
	h, ok := s.leases[leaseID]
	s.mu.RUnlock()
	if !ok {
		return 0, fmt.Errorf("unknown lease %d", leaseID)
	}

	sess := s.pool.Address(h)
	if sess == nil {
		return 0, fmt.Errorf("lease %d lost its slot", leaseID)
	}
	sess.Touch()

	seq := s.seqGen.Next()
	if err := s.jrnl.Append(journal.NewRecord(journal.RecordTouch, seq, journal.EncodeWord(leaseID))); err != nil {
		return 0, err
	}
	return sess.Touches, nil
}

//
// ──────────────────────────────────────────────────────────
// Queries
// ──────────────────────────────────────────────────────────
//

// Resolve returns a copy of the session behind an arbitrary handle, or
// false when the handle does not address a constructed slot. Copying
// under the reader epoch keeps the view stable against reclamation.
func (s *LeaseService) Resolve(h respool.Handle[session.Session]) (session.Session, bool) {
	s.reader.Enter()
	defer s.reader.Exit()

	sess := s.pool.Address(h)
	if sess == nil {
		return session.Session{}, false
	}
	return *sess, true
}

// Snapshot returns a consistent view of all ACTIVE sessions.
func (s *LeaseService) Snapshot() []session.Session {
	s.reader.Enter()
	defer s.reader.Exit()

	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]session.Session, 0, len(s.leases))
	for _, h := range s.leases {
		if sess := s.pool.Address(h); sess != nil && sess.State == session.Active {
			out = append(out, *sess)
		}
	}
	return out
}

// Describe combines pool statistics with the live lease count.
func (s *LeaseService) Describe() (respool.Stats, int) {
	s.mu.RLock()
	n := len(s.leases)
	s.mu.RUnlock()
	return s.pool.Describe(), n
}

//
// ──────────────────────────────────────────────────────────
// Reclamation
// ──────────────────────────────────────────────────────────
//

// AdvanceEpoch performs safe reclamation.
// Intended to be called periodically by a background job.
func (s *LeaseService) AdvanceEpoch() {
	reclaim.AdvanceAndReclaim(
		s.ring,
		func(h uint64) { s.pool.Put(respool.Handle[session.Session](h)) },
		s.reader,
	)
}

//
// ──────────────────────────────────────────────────────────
// Events
// ──────────────────────────────────────────────────────────
//

func (s *LeaseService) appendEvent(kind string, seq, leaseID, userID, handle uint64) error {
	payload, err := proto.Marshal(&pb.LeaseEvent{
		V:       1,
		Type:    kind,
		LeaseId: leaseID,
		UserId:  userID,
		Seq:     seq,
		Handle:  handle,
	})
	if err != nil {
		return err
	}
	return s.box.Append(seq, payload)
}
