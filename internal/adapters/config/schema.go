package config

// Projectfile represents the structure of the cjs.yaml configuration file.
type Projectfile struct {
	Main       string   `yaml:"main"`
	Extensions []string `yaml:"extensions"`
	Paths      []string `yaml:"paths"`
	Debug      bool     `yaml:"debug"`
	Trace      bool     `yaml:"trace"`
}
