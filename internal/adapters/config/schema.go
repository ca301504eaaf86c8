package config

// Recipefile represents the structure of the recipe.yaml settings file.
type Recipefile struct {
	Version   string   `yaml:"version"`
	Conan     ConanDTO `yaml:"conan"`
	BuildDir  string   `yaml:"build_dir"`
	OutputDir string   `yaml:"output_dir"`
}

// ConanDTO represents the host section of the settings file.
type ConanDTO struct {
	Executable string            `yaml:"executable"`
	Profile    string            `yaml:"profile"`
	Remote     string            `yaml:"remote"`
	Build      string            `yaml:"build"`
	Env        map[string]string `yaml:"env"`
}
