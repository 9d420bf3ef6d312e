package engine

type ApplicationConfig struct {
	// The application name used in logs.
	Name string
	// Optional TOML or YAML configuration file.
	ConfigPath string
	// Re-run the game whenever ConfigPath changes, until shutdown.
	Watch bool
	// Overrides applied on top of the file. Zero values are ignored.
	Samples  int
	Seed     uint64
	Workers  int
	LogLevel string
}
