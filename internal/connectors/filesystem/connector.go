package filesystem

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"mime"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"

	"github.com/Nikhil-4404/ai-exam-planner/internal/core/domain"
	"github.com/Nikhil-4404/ai-exam-planner/internal/core/ports/driven"
	"github.com/Nikhil-4404/ai-exam-planner/internal/logger"
)

// MaxFileSize is the largest syllabus file the connector will load.
const MaxFileSize = 32 << 20

// ErrFileTooLarge is returned when a file exceeds MaxFileSize.
var ErrFileTooLarge = errors.New("file too large")

// Ensure Connector implements the interface.
var _ driven.SyllabusSource = (*Connector)(nil)

// Connector reads syllabus documents under a root directory.
type Connector struct {
	rootPath string

	mu      sync.Mutex
	watcher *fsnotify.Watcher
	closed  bool
}

// New creates a filesystem connector rooted at rootPath.
func New(rootPath string) *Connector {
	return &Connector{rootPath: rootPath}
}

// Root returns the directory the connector reads from.
func (c *Connector) Root() string {
	return c.rootPath
}

// Read loads a single document. Relative paths resolve against the root.
func (c *Connector) Read(ctx context.Context, path string) (*domain.RawDocument, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("%w: path is required", domain.ErrInvalidInput)
	}
	if !filepath.IsAbs(path) && c.rootPath != "" {
		path = filepath.Join(c.rootPath, path)
	}
	return readFile(path)
}

// List returns the visible regular files under the root, in lexical order.
func (c *Connector) List(ctx context.Context) ([]string, error) {
	if err := c.checkRoot(); err != nil {
		return nil, err
	}

	var paths []string
	err := filepath.WalkDir(c.rootPath, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if path != c.rootPath && isHidden(d.Name()) {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.Type().IsRegular() {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return paths, nil
}

// Watch emits a change for every create, write, remove or rename of a visible
// file under the root. The channel closes when ctx is cancelled or the
// connector is closed.
func (c *Connector) Watch(ctx context.Context) (<-chan domain.RawDocumentChange, error) {
	if err := c.checkRoot(); err != nil {
		return nil, err
	}

	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return nil, errors.New("connector is closed")
	}
	if c.watcher != nil {
		c.mu.Unlock()
		return nil, errors.New("connector is already watching")
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		c.mu.Unlock()
		return nil, fmt.Errorf("creating watcher: %w", err)
	}
	c.watcher = watcher
	c.mu.Unlock()

	if err := c.addTree(watcher, c.rootPath); err != nil {
		c.stopWatcher(watcher)
		return nil, fmt.Errorf("watching %s: %w", c.rootPath, err)
	}

	changes := make(chan domain.RawDocumentChange)
	go func() {
		defer close(changes)
		defer c.stopWatcher(watcher)

		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if event.Has(fsnotify.Create) && isDir(event.Name) && !isHidden(filepath.Base(event.Name)) {
					if err := c.addTree(watcher, event.Name); err != nil {
						logger.Warn("watching new directory %s: %v", event.Name, err)
					}
					continue
				}
				change := c.handleFsEvent(event)
				if change == nil {
					continue
				}
				select {
				case changes <- *change:
				case <-ctx.Done():
					return
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				logger.Warn("watch error: %v", err)
			}
		}
	}()

	return changes, nil
}

// Close stops any active watch. It is safe to call more than once.
func (c *Connector) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return nil
	}
	c.closed = true
	if c.watcher != nil {
		err := c.watcher.Close()
		c.watcher = nil
		return err
	}
	return nil
}

// handleFsEvent converts a raw event to a document change.
// Returns nil for events that do not affect a visible regular file.
func (c *Connector) handleFsEvent(event fsnotify.Event) *domain.RawDocumentChange {
	if c.hiddenUnderRoot(event.Name) {
		return nil
	}

	switch {
	case event.Has(fsnotify.Remove), event.Has(fsnotify.Rename):
		return &domain.RawDocumentChange{
			Type: domain.ChangeDeleted,
			Document: domain.RawDocument{
				URI:      event.Name,
				MIMEType: detectMIMEType(event.Name),
			},
		}
	case event.Has(fsnotify.Create), event.Has(fsnotify.Write):
		if isDir(event.Name) {
			return nil
		}
		doc, err := readFile(event.Name)
		if err != nil {
			logger.Debug("skipping %s: %v", event.Name, err)
			return nil
		}
		changeType := domain.ChangeUpdated
		if event.Has(fsnotify.Create) {
			changeType = domain.ChangeCreated
		}
		return &domain.RawDocumentChange{Type: changeType, Document: *doc}
	default:
		return nil
	}
}

func (c *Connector) checkRoot() error {
	info, err := os.Stat(c.rootPath)
	if err != nil {
		return fmt.Errorf("root path error: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("root path error: %s is not a directory", c.rootPath)
	}
	return nil
}

// addTree registers dir and its visible subdirectories with the watcher.
func (c *Connector) addTree(watcher *fsnotify.Watcher, dir string) error {
	return filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if path != dir && isHidden(d.Name()) {
			return filepath.SkipDir
		}
		return watcher.Add(path)
	})
}

func (c *Connector) stopWatcher(watcher *fsnotify.Watcher) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.watcher == watcher {
		c.watcher = nil
		_ = watcher.Close()
	}
}

// hiddenUnderRoot reports whether any element of path below the root is hidden.
func (c *Connector) hiddenUnderRoot(path string) bool {
	rel, err := filepath.Rel(c.rootPath, path)
	if err != nil || strings.HasPrefix(rel, "..") {
		return isHidden(path)
	}
	return isHidden(rel)
}

func readFile(path string) (*domain.RawDocument, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%w: %s is a directory", domain.ErrInvalidInput, path)
	}
	if info.Size() > MaxFileSize {
		return nil, fmt.Errorf("%w: %s is %d bytes", ErrFileTooLarge, path, info.Size())
	}

	content, err := io.ReadAll(io.LimitReader(f, MaxFileSize+1))
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	if len(content) > MaxFileSize {
		return nil, fmt.Errorf("%w: %s", ErrFileTooLarge, path)
	}

	return &domain.RawDocument{
		URI:      path,
		MIMEType: detectMIMEType(path),
		Content:  content,
		Metadata: map[string]any{
			"filename":  filepath.Base(path),
			"extension": strings.ToLower(filepath.Ext(path)),
			"size":      info.Size(),
			"modified":  info.ModTime().UTC(),
		},
	}, nil
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// syllabusTypes covers formats whose registration varies across platforms.
var syllabusTypes = map[string]string{
	".md":       "text/markdown",
	".markdown": "text/markdown",
	".txt":      "text/plain",
	".text":     "text/plain",
	".csv":      "text/csv",
	".tsv":      "text/tab-separated-values",
	".htm":      "text/html",
	".html":     "text/html",
	".pdf":      "application/pdf",
	".docx":     "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
}

// detectMIMEType maps a file name to a MIME type without parameters.
// Files without an extension are treated as plain text.
func detectMIMEType(path string) string {
	ext := strings.ToLower(filepath.Ext(path))
	if ext == "" {
		return "text/plain"
	}
	if t, ok := syllabusTypes[ext]; ok {
		return t
	}
	if t := mime.TypeByExtension(ext); t != "" {
		if mediaType, _, err := mime.ParseMediaType(t); err == nil {
			return mediaType
		}
		return t
	}
	return "application/octet-stream"
}

// isHidden reports whether any path element starts with a dot.
// "." and ".." are not hidden.
func isHidden(path string) bool {
	for _, part := range strings.Split(filepath.ToSlash(path), "/") {
		if part == "" || part == "." || part == ".." {
			continue
		}
		if strings.HasPrefix(part, ".") {
			return true
		}
	}
	return false
}
