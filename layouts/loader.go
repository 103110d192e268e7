package layouts

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// layoutsFile is the on-disk shape of a layout definitions file.
type layoutsFile struct {
	Layouts []Definition `yaml:"layouts"`
}

// UnmarshalYAML decodes a definition on top of the fallback values, so a
// file only needs to spell out the fields it changes.
func (d *Definition) UnmarshalYAML(value *yaml.Node) error {
	type plain Definition
	def := plain(Fallback())
	if err := value.Decode(&def); err != nil {
		return err
	}
	*d = Definition(def)
	return nil
}

// DefaultPath returns the standard location of the user layouts file.
func DefaultPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(homeDir, ".config", "stacktile", "layouts.yaml"), nil
}

// Load reads the user layouts file from the standard location and merges
// it over the built-in layouts. A missing file yields just the built-ins.
func Load() (*Registry, error) {
	path, err := DefaultPath()
	if err != nil {
		return nil, err
	}
	return LoadFromPath(path)
}

// LoadFromPath reads a layouts file and merges it over the built-in
// layouts. User definitions override built-ins of the same name and are
// cycled before them otherwise.
func LoadFromPath(path string) (*Registry, error) {
	reg := DefaultRegistry()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return reg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read layouts file: %w", err)
	}

	defs, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	// Prepend in reverse so the file order is preserved at the front.
	for i := len(defs) - 1; i >= 0; i-- {
		reg.Put(defs[i])
	}
	return reg, nil
}

// Parse decodes and validates layout definitions from YAML.
func Parse(data []byte) ([]Definition, error) {
	var file layoutsFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse layouts: %w", err)
	}
	for i := range file.Layouts {
		if err := file.Layouts[i].Validate(); err != nil {
			return nil, err
		}
	}
	return file.Layouts, nil
}

// Save writes the given definitions to path as a layouts file, creating
// parent directories as needed.
func Save(path string, defs []Definition) error {
	data, err := yaml.Marshal(layoutsFile{Layouts: defs})
	if err != nil {
		return fmt.Errorf("failed to marshal layouts: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write layouts file: %w", err)
	}
	return nil
}
