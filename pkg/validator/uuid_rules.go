package validator

import (
	"strings"

	"github.com/google/uuid"
)

// UUIDString validates the canonical 36-character UUID form without
// converting the value.
func UUIDString() Step[string] {
	return Step[string]{
		Kind:    "uuid",
		Message: "must be a valid UUID",
		Check: func(v string) bool {
			// Fast rejection before parsing: length and hyphen positions.
			if len(v) != 36 || v[8] != '-' || v[13] != '-' || v[18] != '-' || v[23] != '-' {
				return false
			}
			_, err := uuid.Parse(v)
			return err == nil
		},
	}
}

// NonNilUUID rejects the all-zero UUID.
func NonNilUUID() Step[uuid.UUID] {
	return Step[uuid.UUID]{
		Kind:    "uuid_not_nil",
		Message: "UUID cannot be nil",
		Check:   func(v uuid.UUID) bool { return v != uuid.Nil },
	}
}

// UUIDVersion requires a UUID of the given version.
func UUIDVersion(version uuid.Version) Step[uuid.UUID] {
	v := strings.TrimPrefix(version.String(), "VERSION_")
	return Step[uuid.UUID]{
		Kind:    "uuid_version",
		Message: "must be a version " + v + " UUID",
		Values:  map[string]any{"version": v},
		Check:   func(v uuid.UUID) bool { return v.Version() == version },
	}
}
