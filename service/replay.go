package service

import (
	"fmt"
	"log"

	"respool/domain/session"
	"respool/infra/journal"
)

/*
ReplayFromJournal rebuilds the lease table from the command journal.

IMPORTANT:
- This MUST run before accepting traffic
- The outbox is NOT replayed; the broadcaster drains it on its own
*/

func (s *LeaseService) ReplayFromJournal(dir string) error {
	lastSeq, err := journal.Replay(dir, func(rec *journal.Record) error {
		switch rec.Type {
		case journal.RecordOpen:
			userID, ok := journal.DecodeWord(rec.Data)
			if !ok {
				return fmt.Errorf("invalid open payload at seq %d", rec.Seq)
			}
			sess, h := s.pool.Get()
			if sess == nil {
				return fmt.Errorf("pool exhausted during replay at seq %d", rec.Seq)
			}
			sess.Reset(rec.Seq, userID)
			sess.OpenedNanos = rec.Time
			s.leases[rec.Seq] = h

		case journal.RecordTouch:
			leaseID, ok := journal.DecodeWord(rec.Data)
			if !ok {
				return fmt.Errorf("invalid touch payload at seq %d", rec.Seq)
			}
			if h, ok := s.leases[leaseID]; ok {
				if sess := s.pool.Address(h); sess != nil {
					sess.Touch()
				}
			}

		case journal.RecordRelease:
			leaseID, ok := journal.DecodeWord(rec.Data)
			if !ok {
				return fmt.Errorf("invalid release payload at seq %d", rec.Seq)
			}
			if h, ok := s.leases[leaseID]; ok {
				delete(s.leases, leaseID)
				if sess := s.pool.Address(h); sess != nil {
					sess.State = session.Retired
				}
				// Replay is single-threaded; no epoch detour needed.
				s.pool.Put(h)
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	// Resume sequencing AFTER replay
	s.seqGen.Reset(lastSeq)

	log.Printf("[replay] journal replay completed (last seq = %d, live leases = %d)", lastSeq, len(s.leases))
	return nil
}
