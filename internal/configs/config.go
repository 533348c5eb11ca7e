// Package configs for work with configurations
package configs

import (
	"os"

	"gopkg.in/yaml.v3"
)

const (
	defaultFolder  = "download"
	defaultTimeout = 30

	// upstream rejects requests without a browser user agent
	defaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/125.0.0.0 Safari/537.36"
)

// Conf for config yaml
type Conf struct {
	LinksFile string `yaml:"links_file"`
	Download  struct {
		Folder    string `yaml:"folder"`
		UserAgent string `yaml:"user_agent"`
		Timeout   int    `yaml:"timeout"`
	} `yaml:"download"`
	SeriesAliases []string `yaml:"series_aliases"`
	Tags          struct {
		Enabled bool   `yaml:"enabled"`
		Artist  string `yaml:"artist"`
		Album   string `yaml:"album"`
	} `yaml:"tags"`
}

// Load config from file
func Load(fileName string) (res *Conf, err error) {
	res = &Conf{}
	data, err := os.ReadFile(fileName) // nolint
	if err != nil {
		return nil, err
	}

	if err := yaml.Unmarshal(data, res); err != nil {
		return nil, err
	}
	res.applyDefaults()
	return res, nil
}

// Default returns config with built-in defaults, used when no config file exists
func Default() *Conf {
	res := &Conf{}
	res.applyDefaults()
	return res
}

func (c *Conf) applyDefaults() {
	if c.Download.Folder == "" {
		c.Download.Folder = defaultFolder
	}
	if c.Download.Timeout <= 0 {
		c.Download.Timeout = defaultTimeout
	}
	if c.Download.UserAgent == "" {
		c.Download.UserAgent = defaultUserAgent
	}
}
