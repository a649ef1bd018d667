package journal

import (
	"encoding/binary"
	"os"
	"path/filepath"
)

type Config struct {
	Dir         string
	SegmentSize int64
}

const defaultSegmentSize = 2 * 1024 * 1024

// Journal is the append-only command log of the lease service. Every
// state-changing command is framed, checksummed and appended before it
// takes effect, so a restart can rebuild the lease table by replay.
type Journal struct {
	dir      string
	segSize  int64
	current  *segment
	segIndex int
}

func Open(cfg Config) (*Journal, error) {
	if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
		return nil, err
	}
	if cfg.SegmentSize <= 0 {
		cfg.SegmentSize = defaultSegmentSize
	}

	// Resume appending to the highest existing segment. Indices are
	// parsed from the filenames; truncation leaves holes below, so
	// counting files would reopen an older name.
	index := 0
	if files, err := filepath.Glob(filepath.Join(cfg.Dir, "segment-*.wal")); err == nil {
		for _, path := range files {
			if i, ok := segmentIndex(path); ok && i > index {
				index = i
			}
		}
	}

	seg, err := openSegment(cfg.Dir, index)
	if err != nil {
		return nil, err
	}

	return &Journal{
		dir:      cfg.Dir,
		segSize:  cfg.SegmentSize,
		current:  seg,
		segIndex: index,
	}, nil
}

// Append frames and writes one record:
// [type:1][seq:8][time:8][len:4][payload][crc:4]
func (j *Journal) Append(r *Record) error {
	payloadLen := uint32(len(r.Data))

	buf := make([]byte, 1+8+8+4+payloadLen+4)
	buf[0] = byte(r.Type)
	binary.BigEndian.PutUint64(buf[1:9], r.Seq)
	binary.BigEndian.PutUint64(buf[9:17], uint64(r.Time))
	binary.BigEndian.PutUint32(buf[17:21], payloadLen)
	copy(buf[21:], r.Data)

	crc := CRC32(buf[:21+payloadLen])
	binary.BigEndian.PutUint32(buf[21+payloadLen:], crc)

	if err := j.current.append(buf); err != nil {
		return err
	}

	if j.current.offset >= j.segSize {
		return j.rotate()
	}
	return nil
}

func (j *Journal) rotate() error {
	_ = j.current.close()
	j.segIndex++

	seg, err := openSegment(j.dir, j.segIndex)
	if err != nil {
		return err
	}
	j.current = seg
	return nil
}

// Sync flushes the current segment to stable storage.
func (j *Journal) Sync() error {
	return j.current.sync()
}

// TruncateBefore removes segments whose records all carry sequences
// at or below seq. The current segment is never removed.
func (j *Journal) TruncateBefore(seq uint64) error {
	files, err := filepath.Glob(filepath.Join(j.dir, "segment-*.wal"))
	if err != nil {
		return err
	}

	current := filepath.Join(j.dir, segmentName(j.segIndex))
	for _, path := range files {
		if path == current {
			continue
		}
		maxSeq, err := maxSeqInSegment(path)
		if err != nil {
			continue
		}
		if maxSeq <= seq {
			_ = os.Remove(path)
		}
	}
	return nil
}

func (j *Journal) Close() error {
	return j.current.close()
}
