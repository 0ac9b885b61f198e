// Package tablefile persists and loads the generator's HR table: a
// contiguous sequence of little-endian signed 32-bit integers, with no
// header and no checksum, per spec.md §6.
//
// Writing encodes hr into a temp file in the destination directory and
// renames it into place, following the atomic same-directory
// temp-file-then-rename shape of lox-pokerforbots/internal/fileutil, so
// readers never observe a partially written table. Loading memory-maps
// the file read-only instead of copying it into a Go slice, following
// tamirms-streamhash/index.go's mmap.Map/Unmap usage — the assembled
// table runs into the hundreds of millions of entries (spec.md §5's
// 2-3GB resource ceiling), and a generator that has just built the table
// in memory has no reason to also hold a second copy while loading it
// back for verification or querying.
package tablefile

import (
	"encoding/binary"
	"fmt"
	"os"
	"path/filepath"
	"unsafe"

	"github.com/cespare/xxhash/v2"
	"github.com/edsrzf/mmap-go"
	"github.com/rs/zerolog"
)

// Write atomically persists hr to path as raw little-endian int32s. On
// success it logs the file's xxhash digest at log for operator sanity —
// the digest is never written into the file itself, only reported.
func Write(path string, hr []int32, log zerolog.Logger) error {
	buf := make([]byte, len(hr)*4)
	for i, v := range hr {
		binary.LittleEndian.PutUint32(buf[i*4:], uint32(v))
	}

	if err := writeTableAtomic(path, buf); err != nil {
		return fmt.Errorf("tablefile: write %s: %w", path, err)
	}

	log.Info().
		Str("path", path).
		Int("entries", len(hr)).
		Str("digest", fmt.Sprintf("%x", xxhash.Sum64(buf))).
		Msg("wrote table")
	return nil
}

// writeTableAtomic writes buf to path by writing a temp file in the
// same directory and renaming it into place — same-directory temp files
// stay on one filesystem, where rename is atomic, so a reader opening
// path never observes a half-written HR table.
func writeTableAtomic(path string, buf []byte) error {
	dir := filepath.Dir(path)
	base := filepath.Base(path)

	tmp, err := os.CreateTemp(dir, base+".tmp.*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	defer func() {
		if tmp != nil {
			tmp.Close()
			os.Remove(tmpPath)
		}
	}()

	if _, err := tmp.Write(buf); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		return fmt.Errorf("sync temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	tmp = nil

	if err := os.Chmod(tmpPath, 0o644); err != nil {
		return fmt.Errorf("chmod temp file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("rename temp file: %w", err)
	}
	return nil
}

// Table is a loaded HR buffer backed by a read-only memory mapping.
// Close must be called once the table is no longer needed; it is not
// safe to call Close concurrently with reads of HR.
type Table struct {
	HR []int32

	m mmap.MMap
}

// Load memory-maps path read-only and exposes its contents as HR,
// logging the file's xxhash digest at log.
func Load(path string, log zerolog.Logger) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("tablefile: open %s: %w", path, err)
	}
	defer f.Close()

	stat, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("tablefile: stat %s: %w", path, err)
	}
	if stat.Size()%4 != 0 {
		return nil, fmt.Errorf("tablefile: %s has size %d, not a multiple of 4", path, stat.Size())
	}
	if stat.Size() == 0 {
		// mmap(2) rejects a zero-length mapping; an empty table needs no
		// mapping at all.
		log.Info().Str("path", path).Int("entries", 0).Msg("loaded table")
		return &Table{}, nil
	}

	m, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		return nil, fmt.Errorf("tablefile: mmap %s: %w", path, err)
	}

	n := len(m) / 4
	hr := unsafe.Slice((*int32)(unsafe.Pointer(&m[0])), n)

	log.Info().
		Str("path", path).
		Int("entries", n).
		Str("digest", fmt.Sprintf("%x", xxhash.Sum64(m))).
		Msg("loaded table")

	return &Table{HR: hr, m: m}, nil
}

// Close unmaps the underlying file. HR must not be accessed afterward.
func (t *Table) Close() error {
	if t.m == nil {
		return nil
	}
	err := t.m.Unmap()
	t.m = nil
	t.HR = nil
	return err
}
