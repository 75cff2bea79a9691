package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"
	"time"
)

// LogRotator is an io.Writer over a log file that is renamed aside once it
// grows past maxSize. At most maxBackups renamed files are kept.
type LogRotator struct {
	mu          sync.Mutex
	path        string
	maxSize     int64 // bytes
	maxBackups  int
	currentFile *os.File
	currentSize int64
	now         func() time.Time
}

// NewLogRotator opens path for appending.
func NewLogRotator(path string, maxSizeMB, maxBackups int) (*LogRotator, error) {
	r := &LogRotator{
		path:       path,
		maxSize:    int64(max(maxSizeMB, 1)) * 1024 * 1024,
		maxBackups: maxBackups,
		now:        time.Now,
	}
	if err := r.openCurrentFile(); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *LogRotator) openCurrentFile() error {
	r.currentSize = 0
	if info, err := os.Stat(r.path); err == nil {
		r.currentSize = info.Size()
	}

	file, err := os.OpenFile(r.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	r.currentFile = file
	return nil
}

func (r *LogRotator) Write(p []byte) (n int, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.currentFile == nil {
		if err := r.openCurrentFile(); err != nil {
			return 0, err
		}
	}
	if r.currentSize > 0 && r.currentSize+int64(len(p)) > r.maxSize {
		if err := r.rotate(); err != nil {
			return 0, err
		}
	}

	n, err = r.currentFile.Write(p)
	r.currentSize += int64(n)
	return n, err
}

func (r *LogRotator) rotate() error {
	if err := r.currentFile.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to close current log file: %v\n", err)
	}
	r.currentFile = nil

	backup := r.path + "." + r.now().Format("2006-01-02-15-04-05.000")
	if err := os.Rename(r.path, backup); err != nil {
		return fmt.Errorf("failed to rotate log file: %w", err)
	}
	r.cleanup()
	return r.openCurrentFile()
}

// cleanup removes the oldest backups beyond maxBackups.
func (r *LogRotator) cleanup() {
	if r.maxBackups <= 0 {
		return
	}
	dir, base := filepath.Split(r.path)
	if dir == "" {
		dir = "."
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return
	}

	var backups []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasPrefix(e.Name(), base+".") {
			backups = append(backups, e.Name())
		}
	}
	// Backup suffixes are timestamps, so name order is age order.
	slices.Sort(backups)
	for len(backups) > r.maxBackups {
		if err := os.Remove(filepath.Join(dir, backups[0])); err != nil {
			fmt.Fprintf(os.Stderr, "warning: failed to remove old log file: %v\n", err)
		}
		backups = backups[1:]
	}
}

func (r *LogRotator) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.currentFile == nil {
		return nil
	}
	err := r.currentFile.Close()
	r.currentFile = nil
	return err
}
