//go:build !windows

package timestamp

import "time"

// setBirthTime reports that the platform exposes no settable
// creation-time attribute.
func setBirthTime(_ string, _ time.Time) error {
	return ErrBirthTimeUnsupported
}
