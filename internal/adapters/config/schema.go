package config

// File is the structure of the .ghwu.yaml configuration file.
type File struct {
	Workflows    string   `yaml:"workflows"`
	OutputFormat string   `yaml:"output-format"`
	Concurrency  *int     `yaml:"concurrency"`
	Ignore       []string `yaml:"ignore"`
}
