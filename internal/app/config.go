package app

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	// ConfigPath, when non-empty, bypasses the candidate search and names
	// the configuration file directly.
	ConfigPath string

	// PartNames are looked up and described once each; when empty the app
	// starts the interactive shell instead.
	PartNames []string

	LogFormat string
	LogLevel  string
}

func NewConfig(cfg Config) (*Config, error) {
	// Nothing to reject yet: an empty part list is valid (interactive
	// mode) and an empty ConfigPath falls back to the candidate search.
	return &cfg, nil
}
