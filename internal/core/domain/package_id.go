package domain

// PackageIdentity is the input of the package ID computation.
type PackageIdentity struct {
	Name     string
	Version  string
	Settings map[string]string
	Options  map[string]string
	Requires map[string]string
}

// HeaderOnly drops settings, options and requirements from the identity, leaving
// only the package name and version.
func (p PackageIdentity) HeaderOnly() PackageIdentity {
	return PackageIdentity{
		Name:    p.Name,
		Version: p.Version,
	}
}
