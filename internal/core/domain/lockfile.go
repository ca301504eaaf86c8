package domain

import "time"

// LockfileVersion is the current lockfile format version.
const LockfileVersion = 1

// Lockfile records the outcome of the last resolution so generation and import
// can be replayed without invoking the host again.
type Lockfile struct {
	// Version is the lockfile format version.
	Version int `json:"version"`

	// Descriptor is the package the resolution was made for.
	Descriptor Descriptor `json:"descriptor"`

	// Dependencies are the resolved dependencies in host order.
	Dependencies []ResolvedDependency `json:"dependencies"`

	// PackageID is the package identity computed at resolution time.
	PackageID string `json:"package_id,omitzero"`

	// ResolvedAt is when the host resolved the graph.
	ResolvedAt time.Time `json:"resolved_at,omitzero"`
}
