package domain

import (
	"maps"
	"slices"

	"go.trai.ch/zerr"
)

// Options holds option overrides keyed by package name, then option name.
type Options map[string]map[string]string

// Set assigns value to option opt of package pkg. It fails when the recipe
// does not require pkg.
func (o Options) Set(r *Recipe, pkg, opt, value string) error {
	if !r.HasRequirement(pkg) {
		err := zerr.With(ErrDependencyNotFound, "package", pkg)
		return zerr.With(err, "option", opt)
	}
	if o[pkg] == nil {
		o[pkg] = make(map[string]string)
	}
	o[pkg][opt] = value
	return nil
}

// Get returns the value of option opt of package pkg.
func (o Options) Get(pkg, opt string) (string, bool) {
	v, ok := o[pkg][opt]
	return v, ok
}

// Args renders the overrides as host option arguments ("pkg/*:opt=value"),
// sorted for a stable command line.
func (o Options) Args() []string {
	var args []string
	for _, pkg := range slices.Sorted(maps.Keys(o)) {
		for _, opt := range slices.Sorted(maps.Keys(o[pkg])) {
			args = append(args, pkg+"/*:"+opt+"="+o[pkg][opt])
		}
	}
	return args
}
