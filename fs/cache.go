package fs

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/fwojciec/scrape"
)

// Ensure CacheWriter implements scrape.Cache at compile time.
var _ scrape.Cache = (*CacheWriter)(nil)

// cacheTimeLayout is the timestamp prefix of cache file names.
const cacheTimeLayout = "20060102150405"

// CacheWriter writes records that could not be persisted as indented JSON
// files named <yyyymmddhhmmss>_cache_<kind>.json.
type CacheWriter struct {
	dir string

	// Now returns the current time. Defaults to time.Now.
	Now func() time.Time

	// create opens a new file, failing with os.ErrExist if it exists.
	create func(path string) (io.WriteCloser, error)
}

// NewCacheWriter creates a CacheWriter that writes into dir.
func NewCacheWriter(dir string) *CacheWriter {
	return &CacheWriter{dir: dir, Now: time.Now}
}

// Save writes v to a new cache file and returns its path. A file is never
// overwritten: a numeric suffix is added when the name is taken.
func (c *CacheWriter) Save(kind string, v any) (string, error) {
	if kind == "" {
		return "", scrape.Errorf(scrape.EINVALID, "cache kind required")
	}

	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encode %s cache: %w", kind, err)
	}

	if err := os.MkdirAll(c.dir, 0755); err != nil {
		return "", err
	}

	now := time.Now
	if c.Now != nil {
		now = c.Now
	}
	base := fmt.Sprintf("%s_cache_%s", now().Format(cacheTimeLayout), kind)

	create := c.create
	if create == nil {
		create = createExclusive
	}

	for i := 0; ; i++ {
		name := base + ".json"
		if i > 0 {
			name = fmt.Sprintf("%s_%d.json", base, i)
		}
		path := filepath.Join(c.dir, name)

		f, err := create(path)
		if errors.Is(err, os.ErrExist) {
			continue
		}
		if err != nil {
			return "", err
		}

		_, err = f.Write(append(data, '\n'))
		if cerr := f.Close(); err == nil {
			err = cerr
		}
		if err != nil {
			os.Remove(path)
			return "", fmt.Errorf("write %s cache: %w", kind, err)
		}
		return path, nil
	}
}

func createExclusive(path string) (io.WriteCloser, error) {
	return os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
}
