package config

import "time"

// Config holds the fixed runtime settings of webfile.
type Config struct {
	Timeout      time.Duration
	UserAgent    string
	PreviewLimit int
	SaveSuffix   string
	Verbose      bool
}

func Default() *Config {
	return &Config{
		Timeout:      10 * time.Second,
		UserAgent:    "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36",
		PreviewLimit: 1000,
		SaveSuffix:   "_content.html",
	}
}
