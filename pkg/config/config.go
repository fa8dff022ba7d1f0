package config

// Config is the decoded propconv configuration.
type Config struct {
	Logging  Logging  `koanf:"logging"`
	Registry Registry `koanf:"registry"`
	Time     Time     `koanf:"time"`
}

// Logging holds logger settings.
type Logging struct {
	Verbosity int `koanf:"verbosity"`
}

// Registry controls handler discovery.
type Registry struct {
	External        bool     `koanf:"external"`
	DisabledSources []string `koanf:"disabled_sources"`
}

// Time configures the time.Time handler.
type Time struct {
	Layouts []string `koanf:"layouts"`
}
