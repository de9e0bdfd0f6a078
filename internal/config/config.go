// Package config handles meshmerge configuration loading and management.
package config

// Config holds all settings.
type Config struct {
	Merge   MergeConfig   `yaml:"merge" toml:"merge"`
	Logging LoggingConfig `yaml:"logging" toml:"logging"`
}

// MergeConfig selects what gets merged and where the result is saved.
type MergeConfig struct {
	Scene      string   `yaml:"scene" toml:"scene"`             // scene document path
	Roots      []string `yaml:"roots" toml:"roots"`             // node paths to merge
	Pivot      string   `yaml:"pivot" toml:"pivot"`             // node path; empty is the world origin
	ObjectName string   `yaml:"object_name" toml:"object_name"` // merged entity name, mesh is <name>Mesh
	SavePath   string   `yaml:"save_path" toml:"save_path"`
	SaveMesh   bool     `yaml:"save_mesh" toml:"save_mesh"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level" toml:"level"`
	LogFile string `yaml:"log_file" toml:"log_file"`
}

// Default returns a Config with default values.
func Default() *Config {
	return &Config{
		Merge: MergeConfig{
			ObjectName: "MergedObject",
			SavePath:   "Assets/SavedMeshes",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}
