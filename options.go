package umlaut

import "github.com/npillmayer/schuko"

// Defaults for substitution limits.
const (
	DefaultCacheSize        = 1024
	DefaultMaxReplacements  = 16
	DefaultMaxCompoundRunes = 64
)

// Configuration keys understood by OptionsFromConfig.
const (
	ConfigCacheSize        = "umlaut.cachesize"
	ConfigMaxReplacements  = "umlaut.maxreplacements"
	ConfigMaxCompoundRunes = "umlaut.maxcompoundrunes"
)

type options struct {
	cacheSize        int
	maxReplacements  int
	maxCompoundRunes int
}

func defaultOptions() options {
	return options{
		cacheSize:        DefaultCacheSize,
		maxReplacements:  DefaultMaxReplacements,
		maxCompoundRunes: DefaultMaxCompoundRunes,
	}
}

// Option configures a Substituter or an Oracle.
type Option func(*options)

// CacheSize sets the number of validity decisions remembered.
// Values < 1 are ignored.
func CacheSize(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.cacheSize = n
		}
	}
}

// MaxReplacements limits the number of replacement opportunities per word.
// Words with more opportunities are left unchanged, as the number of
// candidates grows exponentially. Values < 1 are ignored; values beyond 62
// are clipped.
func MaxReplacements(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.maxReplacements = min(n, 62)
		}
	}
}

// MaxCompoundRunes limits the length of words checked for being a compound.
// Values < 1 are ignored.
func MaxCompoundRunes(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.maxCompoundRunes = n
		}
	}
}

// OptionsFromConfig reads options from an application configuration.
// Keys not set in conf keep their defaults.
func OptionsFromConfig(conf schuko.Configuration) []Option {
	if conf == nil {
		return nil
	}
	var opts []Option
	if conf.IsSet(ConfigCacheSize) {
		opts = append(opts, CacheSize(conf.GetInt(ConfigCacheSize)))
	}
	if conf.IsSet(ConfigMaxReplacements) {
		opts = append(opts, MaxReplacements(conf.GetInt(ConfigMaxReplacements)))
	}
	if conf.IsSet(ConfigMaxCompoundRunes) {
		opts = append(opts, MaxCompoundRunes(conf.GetInt(ConfigMaxCompoundRunes)))
	}
	return opts
}

func applyOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}
