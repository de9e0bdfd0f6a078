package config

import (
	"flag"
	"strings"
)

// stringList is a repeatable string flag.
type stringList []string

func (s *stringList) String() string { return strings.Join(*s, ",") }

func (s *stringList) Set(v string) error {
	*s = append(*s, v)
	return nil
}

// Flags are the command-line overrides bound to one flag set.
type Flags struct {
	fs     *flag.FlagSet
	config string
	debug  bool
	scene  string
	roots  stringList
	pivot  string
	name   string
	out    string
	save   bool
}

// RegisterFlags defines the config flags on fs.
func RegisterFlags(fs *flag.FlagSet) *Flags {
	f := &Flags{fs: fs}
	fs.StringVar(&f.config, "config", "", "Path to config file (.yaml or .toml)")
	fs.BoolVar(&f.debug, "debug", false, "Enable debug logging")
	fs.StringVar(&f.scene, "scene", "", "Scene document to merge from")
	fs.Var(&f.roots, "root", "Node path to merge (repeatable)")
	fs.StringVar(&f.pivot, "pivot", "", "Node path whose world position becomes the mesh origin")
	fs.StringVar(&f.name, "name", "", "Merged object name")
	fs.StringVar(&f.out, "out", "", "Directory for the saved mesh")
	fs.BoolVar(&f.save, "save", false, "Save the merged mesh")
	return f
}

// ConfigPath returns the explicit config path if provided via -config.
func (f *Flags) ConfigPath() string {
	return f.config
}

// apply overrides cfg with every flag that was set on the command line,
// so an explicit false or empty value still wins over the config file.
func (f *Flags) apply(cfg *Config) {
	f.fs.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "debug":
			if f.debug {
				cfg.Logging.Level = "debug"
			}
		case "scene":
			cfg.Merge.Scene = f.scene
		case "root":
			cfg.Merge.Roots = append([]string(nil), f.roots...)
		case "pivot":
			cfg.Merge.Pivot = f.pivot
		case "name":
			cfg.Merge.ObjectName = f.name
		case "out":
			cfg.Merge.SavePath = f.out
		case "save":
			cfg.Merge.SaveMesh = f.save
		}
	})
}
