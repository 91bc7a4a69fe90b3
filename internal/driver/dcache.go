package driver

import (
	"encoding/hex"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/vmihailenco/msgpack/v5"

	"unifix/internal/norm"
	"unifix/internal/source"
)

// Current schema version - increment when cachePayload format changes
const diskCacheSchemaVersion uint16 = 1

// DiskCache remembers which file contents were already verified clean, keyed
// by content digest, so repeated `check --disk-cache` runs skip unchanged
// files. Thread-safe for concurrent access; a nil *DiskCache is a no-op.
type DiskCache struct {
	mu  sync.RWMutex
	dir string
}

// cachePayload is what gets serialized per digest.
type cachePayload struct {
	// Schema version for safe invalidation when format changes
	Schema uint16

	Form      string // normalization form the verdict is valid for
	Path      string // last path seen with this content, informational
	CheckedAt int64  // unix seconds
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

// OpenDiskCacheAt открывает кэш в произвольной директории (тесты).
func OpenDiskCacheAt(dir string) (*DiskCache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &DiskCache{dir: dir}, nil
}

func (c *DiskCache) pathFor(key source.Digest) string {
	hexKey := hex.EncodeToString(key[:])
	// подкаталог "clean" — для удобства читаемости/очистки
	return filepath.Join(c.dir, "clean", hexKey+".mp")
}

// StoreClean records that content with the given digest is fully normalized
// under form. Запись атомарная: temp-файл + rename.
func (c *DiskCache) StoreClean(key source.Digest, form norm.Form, path string) error {
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

	payload := cachePayload{
		Schema:    diskCacheSchemaVersion,
		Form:      form.String(),
		Path:      path,
		CheckedAt: time.Now().Unix(),
	}
	enc := msgpack.NewEncoder(f)
	if err := enc.Encode(&payload); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	return os.Rename(f.Name(), p)
}

// LookupClean reports whether the digest was previously verified clean under
// the same form. Любая ошибка чтения трактуется как промах.
func (c *DiskCache) LookupClean(key source.Digest, form norm.Form) bool {
	if c == nil {
		return false
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	f, err := os.Open(c.pathFor(key))
	if err != nil {
		// промах или повреждённый кэш — не ломаем прогон
		return false
	}
	defer func() {
		_ = f.Close()
	}()

	var payload cachePayload
	if err := msgpack.NewDecoder(f).Decode(&payload); err != nil {
		return false
	}
	if payload.Schema != diskCacheSchemaVersion {
		return false
	}
	return payload.Form == form.String()
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
