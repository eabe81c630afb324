// Package locate resolves the per-user base directory from the environment
// and expands it into candidate save roots for each platform convention.
//
// Both conventions sit behind [Locator] so the scanner and selector never
// need to know which platform they are working for.
package locate

import (
	"os"

	"github.com/spf13/afero"

	"github.com/backmassage/astrosave/internal/domain"
	"github.com/backmassage/astrosave/internal/logging"
)

// DefaultBaseDirEnv is the variable holding the per-user local app data
// directory on Windows.
const DefaultBaseDirEnv = "LOCALAPPDATA"

// Locator enumerates candidate roots for one platform. Locate returns
// *domain.ConfigurationError when the required environment value is absent.
type Locator interface {
	Platform() domain.Platform
	Locate() ([]string, error)
}

// LookupEnv reads one environment variable. os.LookupEnv satisfies it.
type LookupEnv func(key string) (string, bool)

// Options carries the dependencies shared by both locator variants.
type Options struct {
	Fs       afero.Fs     // Default: afero.NewOsFs().
	Env      LookupEnv    // Default: os.LookupEnv.
	Variable string       // Default: DefaultBaseDirEnv.
	Log      logging.Sink // Default: logging.Discard.
}

func (o Options) withDefaults() Options {
	if o.Fs == nil {
		o.Fs = afero.NewOsFs()
	}
	if o.Env == nil {
		o.Env = os.LookupEnv
	}
	if o.Variable == "" {
		o.Variable = DefaultBaseDirEnv
	}
	if o.Log == nil {
		o.Log = logging.Discard
	}
	return o
}

// New returns the locator for platform p.
func New(p domain.Platform, opts Options) (Locator, error) {
	switch p {
	case domain.PlatformMicrosoft:
		return NewPackageLocator(opts), nil
	case domain.PlatformSteam:
		return NewDirectoryLocator(opts), nil
	default:
		return nil, &domain.ConfigurationError{Platform: p, Variable: "platform"}
	}
}

// baseDir returns the value of the configured variable, or a
// *domain.ConfigurationError when it is unset or blank.
func baseDir(p domain.Platform, o Options) (string, error) {
	v, ok := o.Env(o.Variable)
	if !ok || v == "" {
		logging.Logf(o.Log, logging.LevelWarn, "%s is missing, maybe you're not on Windows?", o.Variable)
		return "", &domain.ConfigurationError{Platform: p, Variable: o.Variable}
	}
	return v, nil
}
