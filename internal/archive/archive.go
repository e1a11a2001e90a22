// Package archive keeps dated copies of the published homepage and replaces it atomically.
package archive

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

// dateLayout formats dates as MMDDYYYY
const dateLayout = "01022006"

// ArchiveError represents a failure copying or replacing a site file
type ArchiveError struct {
	Path    string
	Message string
	Cause   error
}

func (e *ArchiveError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("archive error: %s %s: %v", e.Message, e.Path, e.Cause)
	}
	return fmt.Sprintf("archive error: %s %s", e.Message, e.Path)
}

func (e *ArchiveError) Unwrap() error {
	return e.Cause
}

// ArchiveName returns the archive file name for a homepage replaced at t
func ArchiveName(t time.Time) string {
	return "index-" + t.Format(dateLayout) + ".html"
}

// Archive copies the current homepage verbatim into archiveDir under the dated name.
// The archive directory must already exist. Returns the archive path.
func Archive(homepage, archiveDir string, now time.Time) (string, error) {
	content, err := os.ReadFile(homepage)
	if err != nil {
		return "", &ArchiveError{Path: homepage, Message: "failed to read homepage", Cause: err}
	}

	target := filepath.Join(archiveDir, ArchiveName(now))
	if err := os.WriteFile(target, content, 0644); err != nil {
		return "", &ArchiveError{Path: target, Message: "failed to write archive", Cause: err}
	}
	return target, nil
}

// WriteAtomic replaces path with data via a temp file in the same directory and a rename.
// An existing file keeps its permission bits; new files get 0644.
func WriteAtomic(path string, data []byte) error {
	perm := os.FileMode(0644)
	if info, err := os.Stat(path); err == nil {
		perm = info.Mode().Perm()
	}

	tmp := filepath.Join(filepath.Dir(path), "."+filepath.Base(path)+"."+uuid.NewString()+".tmp")

	f, err := os.OpenFile(tmp, os.O_WRONLY|os.O_CREATE|os.O_EXCL, perm)
	if err != nil {
		return &ArchiveError{Path: tmp, Message: "failed to create temp file", Cause: err}
	}
	// OpenFile's mode is filtered by the umask
	if err := f.Chmod(perm); err != nil {
		_ = f.Close()
		_ = os.Remove(tmp)
		return &ArchiveError{Path: tmp, Message: "failed to set temp file mode", Cause: err}
	}
	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		_ = os.Remove(tmp)
		return &ArchiveError{Path: tmp, Message: "failed to write temp file", Cause: err}
	}
	if err := f.Sync(); err != nil {
		_ = f.Close()
		_ = os.Remove(tmp)
		return &ArchiveError{Path: tmp, Message: "failed to sync temp file", Cause: err}
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(tmp)
		return &ArchiveError{Path: tmp, Message: "failed to close temp file", Cause: err}
	}

	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return &ArchiveError{Path: path, Message: "failed to replace", Cause: err}
	}
	return nil
}

// replaceFile is swapped in tests to fail the homepage write
var replaceFile = WriteAtomic

// Publish archives the current homepage, then replaces it with page.
// The homepage is never touched when archiving fails.
func Publish(homepage, archiveDir, page string, now time.Time) (string, error) {
	archived, err := Archive(homepage, archiveDir, now)
	if err != nil {
		return "", err
	}
	if err := replaceFile(homepage, []byte(page)); err != nil {
		return archived, err
	}
	return archived, nil
}
