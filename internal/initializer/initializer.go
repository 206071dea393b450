// Package initializer creates the .cursorignore file in a project directory.
package initializer

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/dongho-jung/cursorignore/internal/constants"
	"github.com/dongho-jung/cursorignore/internal/embed"
	"github.com/dongho-jung/cursorignore/internal/logging"
)

// Outcome is the result of Ensure.
type Outcome int

const (
	// OutcomeCreated means the ignore file was written.
	OutcomeCreated Outcome = iota
	// OutcomeSkipped means an entry already existed at the target path.
	OutcomeSkipped
)

func (o Outcome) String() string {
	switch o {
	case OutcomeCreated:
		return "created"
	case OutcomeSkipped:
		return "skipped"
	default:
		return "unknown"
	}
}

// Message returns the status line for the outcome.
func (o Outcome) Message(name string) string {
	if o == OutcomeSkipped {
		return fmt.Sprintf(constants.MsgSkipped, name)
	}
	return fmt.Sprintf(constants.MsgCreated, name)
}

// openFile opens the target for writing. Tests replace it to inject failures.
var openFile = func(name string, flag int, perm os.FileMode) (io.WriteCloser, error) {
	f, err := os.OpenFile(name, flag, perm) //nolint:gosec // G302: ignore file needs to be readable
	if err != nil {
		return nil, err
	}
	return f, nil
}

// TargetPath returns the ignore file path inside dir.
func TargetPath(dir string) string {
	return filepath.Join(dir, constants.IgnoreFileName)
}

// Ensure writes the embedded ignore-list to dir/.cursorignore unless an entry
// already exists there. Any existing entry (file, directory or symlink,
// dangling or not) is left untouched. The existing content is never read.
func Ensure(dir string) (Outcome, error) {
	path := TargetPath(dir)
	timer := logging.StartTimer("ensure " + path)

	exists, err := entryExists(path)
	if err != nil {
		timer.StopWithResult(false, err.Error())
		return OutcomeSkipped, err
	}
	if exists {
		logging.Debug("%s exists, skipping", path)
		timer.StopWithResult(true, OutcomeSkipped.String())
		return OutcomeSkipped, nil
	}

	payload, err := embed.GetPayload()
	if err != nil {
		timer.StopWithResult(false, err.Error())
		return OutcomeSkipped, fmt.Errorf("failed to load embedded payload: %w", err)
	}

	outcome, err := writeExclusive(path, payload)
	if err != nil {
		timer.StopWithResult(false, err.Error())
		return outcome, err
	}
	timer.StopWithResult(true, outcome.String())
	return outcome, nil
}

// entryExists reports whether anything occupies path. Errors other than
// "not exist" (permission denied, not a directory) are returned as-is.
func entryExists(path string) (bool, error) {
	_, err := os.Lstat(path)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, fmt.Errorf("failed to check %s: %w", path, err)
}

// writeExclusive creates path with O_EXCL so a file that appeared after the
// existence check is not overwritten. A failed write removes the new file.
func writeExclusive(path string, payload []byte) (Outcome, error) {
	f, err := openFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, constants.IgnoreFileMode)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			logging.Debug("%s appeared concurrently, skipping", path)
			return OutcomeSkipped, nil
		}
		return OutcomeSkipped, fmt.Errorf("failed to create %s: %w", path, err)
	}

	if _, err := f.Write(payload); err != nil {
		_ = f.Close()
		removePartial(path)
		return OutcomeSkipped, fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		removePartial(path)
		return OutcomeSkipped, fmt.Errorf("failed to write %s: %w", path, err)
	}

	logging.Debug("Wrote %d bytes to %s", len(payload), path)
	return OutcomeCreated, nil
}

func removePartial(path string) {
	if err := os.Remove(path); err != nil {
		logging.Warn("Failed to remove partially written %s: %v", path, err)
	}
}
