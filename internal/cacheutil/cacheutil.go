// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package cacheutil

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/apex/log"

	"github.com/staranto/holidayctl/internal/holiday"
)

// DefaultFile is the cache file name used when nothing overrides it. It is
// resolved against the working directory.
const DefaultFile = "holidays_cache.json"

// Entry is the single record held in the cache file. Key is the clear-text
// key (see holiday.Key) and Fetched is the day the entry was written.
type Entry struct {
	Key     string `json:"key"`
	Fetched string `json:"fetched"`
	holiday.YearSet
	// Path is where the entry was read from. Not persisted.
	Path string `json:"-"`
}

// Cache is a flat, single-entry cache file. Every Write replaces whatever the
// file held before, so only the most recently fetched set survives.
type Cache struct {
	Path    string
	Enabled bool
	// Now is used to stamp entries. Defaults to time.Now.
	Now func() time.Time
}

// New returns a Cache for path. An empty path resolves via File().
func New(path string) *Cache {
	if path == "" {
		path = File()
	}
	return &Cache{
		Path:    path,
		Enabled: Enabled(),
		Now:     time.Now,
	}
}

// File resolves the cache file path.
// Precedence:
//  1. HOLIDAYCTL_CACHE_FILE, if set and non-empty
//  2. DefaultFile in the working directory
func File() string {
	if c, ok := os.LookupEnv("HOLIDAYCTL_CACHE_FILE"); ok && c != "" {
		return c
	}
	return DefaultFile
}

// Enabled returns true unless HOLIDAYCTL_CACHE explicitly disables it
// ("0"/"false").
func Enabled() bool {
	enabled, _ := os.LookupEnv("HOLIDAYCTL_CACHE")
	return enabled == "" || (enabled != "0" && enabled != "false")
}

// Read returns the cached entry for key. Any failure (disabled, missing file,
// unreadable, corrupt, different key) is reported as a miss.
func (c *Cache) Read(key string) (*Entry, bool) {
	if !c.Enabled {
		return nil, false
	}

	b, err := os.ReadFile(c.Path)
	if errors.Is(err, os.ErrNotExist) {
		log.Debugf("cache file %s does not exist", c.Path)
		return nil, false
	}
	if err != nil {
		log.WithError(fmt.Errorf("%w: %w", holiday.ErrCache, err)).Warnf("failed to read cache file %s", c.Path)
		return nil, false
	}

	var entry Entry
	if err := json.Unmarshal(b, &entry); err != nil {
		log.WithError(fmt.Errorf("%w: %w", holiday.ErrCache, err)).Warnf("ignoring unparsable cache file %s", c.Path)
		return nil, false
	}

	if entry.Key != key {
		log.Debugf("cache holds %q, want %q", entry.Key, key)
		return nil, false
	}

	if err := entry.validate(); err != nil {
		log.WithError(err).Warnf("ignoring cache file %s", c.Path)
		return nil, false
	}

	entry.Path = c.Path
	return &entry, true
}

// validate holds a cached entry to the same rules the provider data obeys:
// the payload matches its key, is not empty and stays inside its year.
func (e *Entry) validate() error {
	if e.YearSet.Key() != e.Key {
		return fmt.Errorf("%w: entry %q holds %q", holiday.ErrCache, e.Key, e.YearSet.Key())
	}
	if len(e.Holidays) == 0 {
		return fmt.Errorf("%w: entry %q has no holidays", holiday.ErrCache, e.Key)
	}
	for _, h := range e.Holidays {
		if h.Date.Year != e.Year {
			return fmt.Errorf("%w: %s (%s) is outside %d", holiday.ErrCache, h.Date, h.Name, e.Year)
		}
	}
	return nil
}

// Write replaces the cache file with set. The write goes to a temp file in
// the same directory which is then renamed over the target.
func (c *Cache) Write(set holiday.YearSet) error {
	if !c.Enabled {
		return nil // treat as disabled.
	}

	now := time.Now
	if c.Now != nil {
		now = c.Now
	}

	entry := Entry{
		Key:     set.Key(),
		Fetched: holiday.DateOf(now()).String(),
		YearSet: set,
	}

	b, err := json.MarshalIndent(entry, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: failed to encode cache entry: %w", holiday.ErrCache, err)
	}

	if err := writeFile(c.Path, b, 0o600); err != nil { //nolint:mnd
		return fmt.Errorf("%w: failed to write to cache: %w", holiday.ErrCache, err)
	}
	return nil
}

// Purge removes the cache file if it is older than the provided number of
// hours. If hours <= 0 it is a no-op.
func (c *Cache) Purge(hours int) error {
	if hours <= 0 {
		log.Debug("cache cleaning disabled")
		return nil
	}

	info, err := os.Stat(c.Path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("%w: %w", holiday.ErrCache, err)
	}

	now := time.Now
	if c.Now != nil {
		now = c.Now
	}

	maxAge := time.Duration(hours) * time.Hour
	if now().Sub(info.ModTime()) <= maxAge {
		return nil
	}

	if err := os.Remove(c.Path); err != nil {
		return fmt.Errorf("%w: failed to purge cache: %w", holiday.ErrCache, err)
	}
	log.Debugf("removed cache file %s", c.Path)
	return nil
}

// writeFile writes b via a temp file, then atomically replaces path.
func writeFile(path string, b []byte, mode os.FileMode) error {
	dir := filepath.Dir(path)
	base := filepath.Base(path)

	f, err := os.CreateTemp(dir, base+".tmp-*")
	if err != nil {
		return err
	}
	tmp := f.Name()

	// Removing after a successful rename fails harmlessly.
	defer func() { _ = os.Remove(tmp) }()

	if _, err := f.Write(b); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Chmod(mode); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}

	return os.Rename(tmp, path)
}
