package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/NickyBoy89/genresolve/reflector"
	"github.com/NickyBoy89/genresolve/resolvedtype"
	"gopkg.in/yaml.v3"
)

// Config is the contents of a genresolve.yaml file
type Config struct {
	// Sources are directories or .java files, relative to the config file
	Sources  []string `yaml:"sources"`
	LogLevel string   `yaml:"log_level"`
	// Format of the report: text or yaml
	Format  string   `yaml:"format"`
	Targets []Target `yaml:"targets"`
}

// Target is one type to resolve. Its type arguments are given either in
// declaration order, or by type variable name
type Target struct {
	Class     string            `yaml:"class"`
	Arguments []string          `yaml:"arguments,omitempty"`
	Bindings  map[string]string `yaml:"bindings,omitempty"`
}

var reportFormats = map[string]bool{"text": true, "yaml": true}

// LoadConfig reads and validates a config file
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}
	cfg, err := ParseConfig(data, path)
	if err != nil {
		return nil, err
	}

	dir := filepath.Dir(path)
	for i, source := range cfg.Sources {
		if !filepath.IsAbs(source) {
			cfg.Sources[i] = filepath.Join(dir, source)
		}
	}
	return cfg, nil
}

// ParseConfig parses config data; path is only used in error messages
func ParseConfig(data []byte, path string) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	cfg.setDefaults()
	if err := cfg.validate(path); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate(path string) error {
	if len(c.Targets) == 0 {
		return fmt.Errorf("%s: no targets defined", path)
	}
	if !reportFormats[c.Format] {
		return fmt.Errorf("%s: unknown format %q, expected text or yaml", path, c.Format)
	}
	for i, target := range c.Targets {
		if target.Class == "" {
			return fmt.Errorf("%s: targets[%d]: class is required", path, i)
		}
		if len(target.Arguments) > 0 && len(target.Bindings) > 0 {
			return fmt.Errorf("%s: targets[%d] (%s): arguments and bindings are mutually exclusive", path, i, target.Class)
		}
	}
	return nil
}

func (c *Config) setDefaults() {
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	if c.Format == "" {
		c.Format = "text"
	}
}

// GenericType builds the generic type the target describes. Named bindings
// are put in declaration order using the class's type variables
func (t Target) GenericType(loader reflector.ClassLoader) (reflector.GenericType, error) {
	argTexts := t.Arguments
	if len(t.Bindings) > 0 {
		class, err := loader.ForName(t.Class)
		if err != nil {
			return nil, err
		}
		names := resolvedtype.TypeVariableNamesOf(class)
		argTexts = make([]string, len(names))
		for i, name := range names {
			text, ok := t.Bindings[name.Name()]
			if !ok {
				return nil, fmt.Errorf("%s: no binding for type variable %s", t.Class, name.Name())
			}
			argTexts[i] = text
		}
		if len(t.Bindings) != len(names) {
			return nil, fmt.Errorf("%s: bindings name type variables the class does not declare", t.Class)
		}
	}
	return namedGenericType(t.Class, argTexts)
}

// namedGenericType parses each argument, and applies them to the class
func namedGenericType(class string, argTexts []string) (reflector.GenericType, error) {
	if len(argTexts) == 0 {
		return reflector.ParseGenericType(class)
	}
	args := make([]reflector.GenericType, len(argTexts))
	for i, text := range argTexts {
		arg, err := reflector.ParseGenericType(text)
		if err != nil {
			return nil, fmt.Errorf("argument %d of %s: %w", i, class, err)
		}
		args[i] = arg
	}
	return reflector.Named(class, args...), nil
}
