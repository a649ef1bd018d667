package journal

import (
	"fmt"
	"os"
	"path/filepath"
)

type segment struct {
	file   *os.File
	offset int64
}

func segmentName(index int) string {
	return fmt.Sprintf("segment-%06d.wal", index)
}

// segmentIndex recovers the index encoded in a segment path.
func segmentIndex(path string) (int, bool) {
	var i int
	if _, err := fmt.Sscanf(filepath.Base(path), "segment-%d.wal", &i); err != nil {
		return 0, false
	}
	return i, true
}

func openSegment(dir string, index int) (*segment, error) {
	path := filepath.Join(dir, segmentName(index))
	f, err := os.OpenFile(path, os.O_CREATE|os.O_RDWR|os.O_APPEND, 0o644)
	if err != nil {
		return nil, err
	}
	// A resumed segment already holds bytes that count against the
	// rotation cap.
	st, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, err
	}
	return &segment{file: f, offset: st.Size()}, nil
}

func (s *segment) append(b []byte) error {
	n, err := s.file.Write(b)
	if err != nil {
		return err
	}
	s.offset += int64(n)
	return nil
}

func (s *segment) sync() error {
	return s.file.Sync()
}

func (s *segment) close() error {
	return s.file.Close()
}
