package config

// fileConfig mirrors the structure of the ninjify.yaml settings file.
type fileConfig struct {
	Graph         string `yaml:"graph"`
	OutputDir     string `yaml:"output_dir"`
	Suffix        string `yaml:"suffix"`
	RemoteExecDir string `yaml:"remote_exec_dir"`
	Jobs          int    `yaml:"jobs"`
}
