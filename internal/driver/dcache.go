package driver

import (
	"encoding/hex"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/vmihailenco/msgpack/v5"

	"tenet/internal/diag"
	"tenet/internal/ruleset"
	"tenet/internal/source"
)

// Increment when the DiskPayload format changes; stale entries are
// then treated as misses instead of being misread.
const diskCacheSchemaVersion uint16 = 1

// DiskCache persists per-file check results keyed by the combined
// digest of file content and policy. Thread-safe for concurrent access.
type DiskCache struct {
	mu  sync.RWMutex
	dir string
}

// DiagRecord is the serializable form of one diagnostic. Spans keep
// only byte offsets; line/column data is re-derived from the live file.
type DiagRecord struct {
	Severity uint8
	Code     uint16
	Message  string
	Start    uint32
	End      uint32
	Notes    []NoteRecord
}

// NoteRecord is the serializable form of a diagnostic note.
type NoteRecord struct {
	Message string
	Start   uint32
	End     uint32
}

// DiskPayload stores one file's diagnostics plus the hashes that
// produced them, for validation on read.
type DiskPayload struct {
	Schema      uint16
	Path        string
	ContentHash ruleset.Digest
	PolicyHash  ruleset.Digest
	Diagnostics []DiagRecord
}

// OpenDiskCache initializes and returns a disk cache at the standard location.
func OpenDiskCache(app string) (*DiskCache, error) {
	base := os.Getenv("XDG_CACHE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		base = filepath.Join(home, ".cache")
	}
	dir := filepath.Join(base, app)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &DiskCache{dir: dir}, nil
}

// OpenDiskCacheAt is like OpenDiskCache but uses an explicit directory.
func OpenDiskCacheAt(dir string) (*DiskCache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &DiskCache{dir: dir}, nil
}

func (c *DiskCache) pathFor(key ruleset.Digest) string {
	hexKey := hex.EncodeToString(key[:])
	return filepath.Join(c.dir, "checks", hexKey+".mp")
}

// Put serializes and writes a payload to the disk cache.
func (c *DiskCache) Put(key ruleset.Digest, payload *DiskPayload) error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	p := c.pathFor(key)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(filepath.Dir(p), "tmp-*")
	if err != nil {
		return err
	}
	defer func() {
		_ = os.Remove(f.Name())
	}()

	enc := msgpack.NewEncoder(f)
	if err := enc.Encode(payload); err != nil {
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	// Atomic replace.
	return os.Rename(f.Name(), p)
}

// Get reads and deserializes a payload from the disk cache.
func (c *DiskCache) Get(key ruleset.Digest, out *DiskPayload) (bool, error) {
	if c == nil {
		return false, nil
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	p := c.pathFor(key)
	f, err := os.Open(p)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	defer func() {
		_ = f.Close()
	}()
	dec := msgpack.NewDecoder(f)
	if err := dec.Decode(out); err != nil {
		return false, err
	}
	return true, nil
}

// DropAll invalidates the cache, useful after format changes.
func (c *DiskCache) DropAll() error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	old := c.dir + ".old-" + time.Now().Format("20060102150405")
	if err := os.Rename(c.dir, old); err != nil {
		return err
	}
	return os.RemoveAll(old)
}

// payloadFromBag flattens a bag into its serializable form.
func payloadFromBag(path string, contentHash ruleset.Digest, policy ruleset.Digest, bag *diag.Bag) *DiskPayload {
	payload := &DiskPayload{
		Schema:      diskCacheSchemaVersion,
		Path:        path,
		ContentHash: contentHash,
		PolicyHash:  policy,
		Diagnostics: make([]DiagRecord, 0, bag.Len()),
	}
	for _, d := range bag.Items() {
		rec := DiagRecord{
			Severity: uint8(d.Severity),
			Code:     uint16(d.Code),
			Message:  d.Message,
			Start:    d.Primary.Start,
			End:      d.Primary.End,
		}
		for _, note := range d.Notes {
			rec.Notes = append(rec.Notes, NoteRecord{
				Message: note.Msg,
				Start:   note.Span.Start,
				End:     note.Span.End,
			})
		}
		payload.Diagnostics = append(payload.Diagnostics, rec)
	}
	return payload
}

// toBag rebuilds a bag from cached records, rebinding spans to the
// file ID of the current run.
func (p *DiskPayload) toBag(fileID source.FileID, maxDiagnostics int) *diag.Bag {
	bag := diag.NewBag(maxDiagnostics)
	for _, rec := range p.Diagnostics {
		d := diag.New(
			diag.Severity(rec.Severity),
			diag.Code(rec.Code),
			source.Span{File: fileID, Start: rec.Start, End: rec.End},
			rec.Message,
		)
		for _, note := range rec.Notes {
			d = d.WithNote(
				source.Span{File: fileID, Start: note.Start, End: note.End},
				note.Message,
			)
		}
		bag.Add(d)
	}
	return bag
}
