package util

import (
	"fmt"
	"os"
	"sync/atomic"

	"github.com/edsrzf/mmap-go"
)

// FileReader reads whole files through memory maps when possible, falling
// back to os.ReadFile when mapping fails (empty files, exotic filesystems,
// permission oddities). The mapped region is copied out and unmapped before
// returning, so callers may rewrite or delete the file afterwards without
// fighting an open mapping.
//
// Thread-safe: the counters use atomics and no other state is shared.
type FileReader struct {
	mmapReads int64
	fallbacks int64
}

// FileReaderStats reports how files were actually read.
type FileReaderStats struct {
	MmapReads int64
	Fallbacks int64
}

// ReadAll returns the full content of the file at path.
func (r *FileReader) ReadAll(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, err
	}
	// mmap of a zero-length file fails on most platforms.
	if info.Size() == 0 {
		return []byte{}, nil
	}

	m, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		atomic.AddInt64(&r.fallbacks, 1)
		return os.ReadFile(path)
	}
	data := make([]byte, len(m))
	copy(data, m)
	if err := m.Unmap(); err != nil {
		return nil, fmt.Errorf("unmap %s: %w", path, err)
	}
	atomic.AddInt64(&r.mmapReads, 1)
	return data, nil
}

// Stats returns a snapshot of the read counters.
func (r *FileReader) Stats() FileReaderStats {
	return FileReaderStats{
		MmapReads: atomic.LoadInt64(&r.mmapReads),
		Fallbacks: atomic.LoadInt64(&r.fallbacks),
	}
}
