// Package profile holds the runtime settings of the timesense binary.
package profile

import (
	"time"

	"github.com/pkg/errors"
)

// Profile is the configuration the CLI runs with.
type Profile struct {
	// Mode can be "prod" or "dev". Dev mode enables debug logging.
	Mode string
	// Timezone is the IANA name of the zone reference instants are
	// interpreted in when the caller does not supply one.
	Timezone string
	// Reference optionally pins the reference instant ("now" otherwise),
	// in "2006-01-02 15:04" form. Used for reproducible resolution.
	Reference string
	// Version is the build version string.
	Version string
}

// IsDev returns true when running in dev mode.
func (p *Profile) IsDev() bool {
	return p.Mode != "prod"
}

// Location loads the profile's timezone.
func (p *Profile) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(p.Timezone)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid timezone %q", p.Timezone)
	}
	return loc, nil
}

// ReferenceTime returns the configured reference instant in loc, or the
// current time when none is configured.
func (p *Profile) ReferenceTime(loc *time.Location) (time.Time, error) {
	if p.Reference == "" {
		return time.Now().In(loc), nil
	}
	t, err := time.ParseInLocation("2006-01-02 15:04", p.Reference, loc)
	if err != nil {
		return time.Time{}, errors.Wrapf(err, "invalid reference time %q, want 2006-01-02 15:04", p.Reference)
	}
	return t, nil
}

// Validate checks the profile and normalizes defaults.
func (p *Profile) Validate() error {
	if p.Mode != "prod" && p.Mode != "dev" {
		p.Mode = "dev"
	}
	if p.Timezone == "" {
		p.Timezone = "Asia/Shanghai"
	}
	if _, err := p.Location(); err != nil {
		return err
	}
	if p.Reference != "" {
		loc, _ := p.Location()
		if _, err := p.ReferenceTime(loc); err != nil {
			return err
		}
	}
	return nil
}
