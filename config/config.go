// Package config loads the collector's compile-time tunables from YAML,
// the same format the teacher toolchain uses for its own target/build
// descriptors.
package config

import (
	"os"

	"gopkg.in/yaml.v2"

	"github.com/stella-lang/stella-gc/gc"
)

// Tunables mirrors spec §6's compile-time constants as a loadable,
// overridable configuration document.
type Tunables struct {
	MaxAllocSize       int  `yaml:"max_alloc_size"`
	StatsObjectsToDump int  `yaml:"gc_stats_objects_to_dump"`
	NonIncremental     bool `yaml:"gc_no_increment"`
	Debug              bool `yaml:"stella_gc_debug"`
}

// Default returns the spec's documented defaults: a 4096-byte half-space,
// 16 objects dumped per region, incremental mode, debug tracing off.
func Default() Tunables {
	return Tunables{
		MaxAllocSize:       gc.DefaultMaxAllocSize,
		StatsObjectsToDump: gc.DefaultStatsObjectsToDump,
		NonIncremental:     false,
		Debug:              false,
	}
}

// Load reads Tunables from a YAML file at path. Fields absent from the
// document keep Default's values.
func Load(path string) (Tunables, error) {
	t := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return Tunables{}, err
	}

	if err := yaml.Unmarshal(data, &t); err != nil {
		return Tunables{}, err
	}

	return t, nil
}

// Options converts Tunables into gc.Options, leaving Out/Exit at their
// zero values so gc.NewHeap's defaulting fills them in.
func (t Tunables) Options() gc.Options {
	mode := gc.Incremental
	if t.NonIncremental {
		mode = gc.StopTheWorld
	}

	return gc.Options{
		MaxAllocSize:       t.MaxAllocSize,
		StatsObjectsToDump: t.StatsObjectsToDump,
		Mode:               mode,
		Debug:              t.Debug,
	}
}
