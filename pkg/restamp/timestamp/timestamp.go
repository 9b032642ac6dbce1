// Package timestamp applies capture instants to files on disk.
//
// Modification and access times are set everywhere. Creation time is
// capability-based: it is attempted only on platforms that expose a
// settable creation-time attribute (Windows), and a failure there is
// reported but never fatal. No external command is ever invoked.
package timestamp

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/restamp/restamp/pkg/restamp/logging"
)

// ErrBirthTimeUnsupported indicates that the platform has no settable
// creation-time attribute.
var ErrBirthTimeUnsupported = errors.New("creation time not settable on this platform")

// Setter applies timestamps to files, honoring simulate mode.
type Setter struct {
	// Simulate disables all filesystem mutation; intended changes are
	// logged instead.
	Simulate bool

	logger *logging.Logger
}

// NewSetter returns a Setter. With simulate set, Set logs what it
// would do and touches nothing.
func NewSetter(simulate bool) *Setter {
	return &Setter{
		Simulate: simulate,
		logger:   logging.Get("timestamp"),
	}
}

// Set applies t as the file's access and modification time, and as its
// creation time where the platform supports that. The returned error
// carries the path and underlying cause; a creation-time failure alone
// is logged but does not make Set fail.
func (s *Setter) Set(path string, t time.Time) error {
	if s.Simulate {
		s.logger.Info("dry run: would set timestamp", "path", path, "time", t.Format(time.RFC3339))
		return nil
	}

	if err := os.Chtimes(path, t, t); err != nil {
		return fmt.Errorf("setting timestamp for %s: %w", path, err)
	}

	if err := setBirthTime(path, t); err != nil {
		if !errors.Is(err, ErrBirthTimeUnsupported) {
			s.logger.Error("failed to set creation time", "path", path, "error", err)
		}
	}

	s.logger.Debug("fixed timestamp", "path", path, "time", t.Format(time.RFC3339))
	return nil
}
