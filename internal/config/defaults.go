package config

// DefaultDictionaryPath is the configured dictionary path when nothing
// overrides it: empty means "use the wordlist embedded in the binary".
const DefaultDictionaryPath = ""

// Defaults returns the default configuration.
func Defaults() *Config {
	return &Config{
		Version:        1,
		Home:           "~/.seedshard",
		DictionaryPath: DefaultDictionaryPath,
		Output: OutputConfig{
			DefaultFormat: "auto",
			Verbose:       false,
		},
		Logging: LoggingConfig{
			Level: "error",
			File:  "~/.seedshard/seedshard.log",
		},
	}
}
