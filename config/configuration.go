package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"

	"github.com/spf13/afero"
)

// ErrNilCodec is returned by Load when no codec is given.
var ErrNilCodec = errors.New("codec must not be nil")

// Configuration is the root section of a tree loaded from one file.
//
// Every section of the tree shares the configuration's reader/writer lock: reads run concurrently,
// while mutations, Save and Reload are exclusive. Save and Reload do file I/O with the write lock held.
type Configuration struct {
	*Section

	filePath     string
	codec        Codec
	fs           afero.Fs
	logger       *slog.Logger
	resource     fs.FS
	resourceName string

	// autoSave is guarded by the tree lock.
	autoSave bool
}

// Load reads the configuration file at path. A missing file is bootstrapped from the default
// resource when one is configured, and fails with ErrFileNotFound otherwise. When the resource
// itself is absent the configuration starts empty and nothing is written.
func Load(path string, codec Codec, opts ...Option) (*Configuration, error) {
	if codec == nil {
		return nil, ErrNilCodec
	}

	options := newOptions(opts)

	cfg := &Configuration{
		Section:      NewSection(),
		filePath:     filepath.Clean(path),
		codec:        codec,
		fs:           options.Fs,
		logger:       options.Logger,
		resource:     options.DefaultResource,
		resourceName: options.DefaultName,
		autoSave:     options.AutoSave,
	}
	cfg.tree.afterMutate = cfg.afterMutateLocked

	cfg.tree.mu.Lock()
	defer cfg.tree.mu.Unlock()

	err := cfg.loadLocked()
	if err != nil {
		return nil, err
	}

	return cfg, nil
}

// Path returns the file path of the configuration.
func (c *Configuration) Path() string {
	return c.filePath
}

// AutoSave reports whether mutations save the file.
func (c *Configuration) AutoSave() bool {
	c.tree.mu.RLock()
	defer c.tree.mu.RUnlock()

	return c.autoSave
}

// SetAutoSave enables or disables saving after every mutation.
func (c *Configuration) SetAutoSave(enabled bool) {
	c.tree.mu.Lock()
	defer c.tree.mu.Unlock()

	c.autoSave = enabled
}

// Save writes the tree to the configuration file. A failed save leaves the in-memory tree as it is.
func (c *Configuration) Save() error {
	c.tree.mu.Lock()
	defer c.tree.mu.Unlock()

	return c.saveLocked()
}

// Reload discards the in-memory tree, including unsaved changes, and reads the file again.
// Sections obtained before Reload are detached from the new tree and must not be used.
// When reading or decoding fails the current tree is kept.
func (c *Configuration) Reload() error {
	c.tree.mu.Lock()
	defer c.tree.mu.Unlock()

	return c.loadLocked()
}

func (c *Configuration) afterMutateLocked() error {
	if !c.autoSave {
		return nil
	}

	return c.saveLocked()
}

func (c *Configuration) loadLocked() error {
	data, exists, err := readFile(c.fs, c.filePath)
	if err != nil {
		return err
	}

	if !exists {
		data, exists, err = c.bootstrapLocked()
		if err != nil {
			return err
		}

		if !exists {
			c.Section.clearLocked()

			return nil
		}
	}

	root, err := c.codec.Decode(data)
	if err != nil {
		return fmt.Errorf("%w %q: %w", ErrDecode, c.filePath, err)
	}

	c.Section.clearLocked()

	if root == nil {
		return nil
	}

	for _, entry := range root.Entries() {
		c.Section.putLocked(entry.Key, entry.Value)
	}

	c.logger.Debug("configuration loaded", slog.String("path", c.filePath), slog.Int("keys", len(c.Section.keys)))

	return nil
}

func (c *Configuration) bootstrapLocked() ([]byte, bool, error) {
	if c.resource == nil {
		return nil, false, fmt.Errorf("%w: %s", ErrFileNotFound, c.filePath)
	}

	data, found, err := copyResource(c.fs, c.filePath, c.resource, c.resourceName)
	if err != nil {
		return nil, false, err
	}

	if !found {
		c.logger.Warn("default resource not found, starting empty",
			slog.String("path", c.filePath), slog.String("resource", c.resourceName))

		return nil, false, nil
	}

	c.logger.Info("default configuration copied",
		slog.String("path", c.filePath), slog.String("resource", c.resourceName))

	return data, true, nil
}

func (c *Configuration) saveLocked() error {
	data, err := c.codec.Encode(c.Section.copyInto(&tree{}, ""))
	if err != nil {
		return fmt.Errorf("%w: encoding %q: %w", ErrIO, c.filePath, err)
	}

	err = writeFile(c.fs, c.filePath, data)
	if err != nil {
		return err
	}

	c.logger.Debug("configuration saved", slog.String("path", c.filePath), slog.Int("bytes", len(data)))

	return nil
}
