package userprops

import (
	"errors"
	"fmt"
	"io"

	"github.com/magiconair/properties"

	"github.com/hnrobert/userprops/resource"
)

// Loader reads user records from a properties source. Configure exactly one
// source: a Resource set directly takes precedence over a resource location,
// which is resolved through the configured Resolver on every Load.
//
// A Loader holds no state across calls beyond its configuration. Calling
// Load from multiple goroutines is fine as long as the configuration is not
// changed while a load is in flight; concurrent reconfiguration is
// unsupported.
type Loader struct {
	resolver resource.Resolver
	resource resource.Resource
	location string
}

// New returns a Loader with the default resolver and no source configured.
func New() *Loader {
	return &Loader{resolver: resource.DefaultResolver()}
}

// FromResource returns a Loader that reads from r.
func FromResource(r resource.Resource) *Loader {
	l := New()
	l.SetResource(r)
	return l
}

// FromResourceLocation returns a Loader that reads from location, e.g.
// "/etc/app/users.properties" or "file:/etc/app/users.properties".
func FromResourceLocation(location string) *Loader {
	l := New()
	l.SetResourceLocation(location)
	return l
}

// SetResolver replaces the resolution collaborator. A nil resolver restores
// the default.
func (l *Loader) SetResolver(r resource.Resolver) {
	if r == nil {
		r = resource.DefaultResolver()
	}
	l.resolver = r
}

// SetResource sets the source directly. It takes precedence over any
// configured location.
func (l *Loader) SetResource(r resource.Resource) {
	l.resource = r
}

// SetResourceLocation sets the source as a location string resolved at load
// time.
func (l *Loader) SetResourceLocation(location string) {
	l.location = location
}

// Load reads the configured source and returns one UserRecord per property
// entry, in file order of first occurrence. A duplicate username keeps its
// first position but the last value wins, matching properties map semantics.
//
// Any failure aborts the whole load: ErrNoSource when nothing is configured,
// *resource.UnavailableError when the source cannot be resolved or opened,
// *MalformedEntryError when an entry's value cannot be converted.
func (l *Loader) Load() ([]UserRecord, error) {
	src, err := l.effectiveResource()
	if err != nil {
		return nil, err
	}
	in, err := src.Open()
	if err != nil {
		var ue *resource.UnavailableError
		if errors.As(err, &ue) {
			return nil, err
		}
		return nil, &resource.UnavailableError{Location: src.String(), Err: err}
	}
	defer func() { _ = in.Close() }()

	b, err := io.ReadAll(in)
	if err != nil {
		return nil, &resource.UnavailableError{Location: src.String(), Err: err}
	}

	// Java properties semantics: ISO-8859-1 with \uXXXX escapes, and no
	// ${...} expansion.
	dec := &properties.Loader{Encoding: properties.ISO_8859_1, DisableExpansion: true}
	props, err := dec.LoadBytes(b)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", src, err)
	}

	users := make([]UserRecord, 0, props.Len())
	for _, name := range props.Keys() {
		value, _ := props.Get(name)
		attr, err := parseAttribute(value)
		if err != nil {
			return nil, &MalformedEntryError{Username: name, Value: value, Err: err}
		}
		users = append(users, UserRecord{
			Username: name,
			Password: attr.password,
			Enabled:  attr.enabled,
			Roles:    attr.roles,
		})
	}
	return users, nil
}

func (l *Loader) effectiveResource() (resource.Resource, error) {
	if l.resource != nil {
		return l.resource, nil
	}
	if l.location != "" {
		return l.resolver.Resolve(l.location)
	}
	return nil, ErrNoSource
}
