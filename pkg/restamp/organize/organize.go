// Package organize copies cataloged photos into a date-organized tree
// (outputRoot/YYYY/MM/name). Files are copied, never moved, so the
// export directories stay intact and a re-run overwrites the same
// targets byte for byte.
package organize

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/restamp/restamp/pkg/restamp/logging"
	"github.com/restamp/restamp/pkg/restamp/types"
)

// Organizer copies entries with a known capture time into a
// year/month tree under Root.
type Organizer struct {
	// Root is the output tree root.
	Root string

	// Simulate disables all filesystem mutation.
	Simulate bool

	logger *logging.Logger
}

// New returns an Organizer writing under root.
func New(root string, simulate bool) *Organizer {
	return &Organizer{
		Root:     root,
		Simulate: simulate,
		logger:   logging.Get("organize"),
	}
}

// Run copies every entry with a capture time into Root/YYYY/MM/name.
// Entries without a capture time are skipped silently. Per-file copy
// failures are returned as messages so the caller can record them;
// they do not stop the remaining copies.
func (o *Organizer) Run(entries []types.Entry) (copied int, errs []string) {
	o.logger.Info("organizing files by date", "root", o.Root, "entries", len(entries))

	for _, e := range entries {
		if e.CapturedAt == nil {
			continue
		}

		relDir := filepath.Join(
			fmt.Sprintf("%04d", e.CapturedAt.Year()),
			fmt.Sprintf("%02d", int(e.CapturedAt.Month())),
		)
		target := filepath.Join(o.Root, relDir, e.Name)

		if o.Simulate {
			o.logger.Info("dry run: would copy", "from", e.Path, "to", target)
			continue
		}

		if err := o.copyFile(e.Path, target); err != nil {
			msg := fmt.Sprintf("copying %s to %s: %v", e.Path, target, err)
			o.logger.Error(msg)
			errs = append(errs, msg)
			continue
		}

		o.logger.Debug("copied", "name", e.Name, "dir", relDir)
		copied++
	}

	return copied, errs
}

// copyFile copies src to dst, creating the destination directory.
// An existing destination is truncated, which keeps re-runs idempotent.
func (o *Organizer) copyFile(src, dst string) error {
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return err
	}

	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
