package ibangen

// Config is loaded from the environment during execution with cmd/ibangen.
type Config struct {
	// LogLevel sets the minimum log level: trace, debug, info, warn, error
	// or fatal.
	LogLevel string `envconfig:"IBANGEN_LOG_LEVEL" default:"info"`

	// LogFormat selects the log handler: text or json.
	LogFormat string `envconfig:"IBANGEN_LOG_FORMAT" default:"text"`

	// Count is the number of IBANs to generate per invocation. The -n flag
	// overrides it.
	Count int `envconfig:"IBANGEN_COUNT" default:"1"`

	Web Web
}

// Web related settings
type Web struct {
	// Host is the bind address of the web UI. The default keeps it
	// local-only; set 0.0.0.0 for containers.
	Host string `envconfig:"IBANGEN_WEB_HOST" default:"127.0.0.1"`

	// Port of the web UI, 0 lets the OS assign a free one.
	Port int `envconfig:"IBANGEN_WEB_PORT" default:"8090"`
}
