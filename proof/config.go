package proof

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/gnolang/hilbert/internal/deduction"
)

// DefaultConfigFile is the configuration file looked up when none is given.
const DefaultConfigFile = ".hilbert.yaml"

const (
	FormatText = "text"
	FormatJSON = "json"
)

// Config is the content of a .hilbert.yaml file.
type Config struct {
	Name      string          `yaml:"name" validate:"required"`
	Check     CheckConfig     `yaml:"check"`
	Output    OutputConfig    `yaml:"output"`
	Deduction DeductionConfig `yaml:"deduction"`
}

type CheckConfig struct {
	// DischargeSafety enables the banned-variable check for every check,
	// not only for deduce.
	DischargeSafety bool `yaml:"discharge_safety"`
}

type OutputConfig struct {
	Format string `yaml:"format" validate:"oneof=text json"`
}

type DeductionConfig struct {
	Verify    bool            `yaml:"verify"`
	Templates TemplatesConfig `yaml:"templates,omitempty"`
}

// TemplatesConfig overrides the built-in deduction fragments. Every
// override must mention the discharged hypothesis.
type TemplatesConfig struct {
	Self        string `yaml:"self,omitempty" validate:"omitempty,contains={H}"`
	Axiom       string `yaml:"axiom,omitempty" validate:"omitempty,contains={H}"`
	ModusPonens string `yaml:"modus_ponens,omitempty" validate:"omitempty,contains={H}"`
	Any         string `yaml:"any,omitempty" validate:"omitempty,contains={H}"`
	Exists      string `yaml:"exists,omitempty" validate:"omitempty,contains={H}"`
}

// Deduction returns the templates with built-in fragments for every
// field left empty.
func (t TemplatesConfig) Deduction() deduction.Templates {
	return deduction.Templates{
		Self:        t.Self,
		Axiom:       t.Axiom,
		ModusPonens: t.ModusPonens,
		Any:         t.Any,
		Exists:      t.Exists,
	}.WithDefaults()
}

func DefaultConfig() Config {
	return Config{
		Name:      "hilbert",
		Output:    OutputConfig{Format: FormatText},
		Deduction: DeductionConfig{Verify: true},
	}
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate reports the first invalid field of c.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// LoadConfig reads and validates a configuration file. Fields missing from
// the file keep their default value. An empty path, or a missing file at
// the default location, yields DefaultConfig.
func LoadConfig(path string) (Config, error) {
	config := DefaultConfig()
	if path == "" {
		return config, nil
	}

	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) && path == DefaultConfigFile {
			return config, nil
		}
		return config, err
	}
	defer f.Close()

	decoder := yaml.NewDecoder(f)
	decoder.KnownFields(true)
	if err := decoder.Decode(&config); err != nil && !errors.Is(err, io.EOF) {
		return config, fmt.Errorf("parsing %s: %w", path, err)
	}

	if err := config.Validate(); err != nil {
		return config, err
	}
	return config, nil
}

// WriteConfig writes c to path as YAML.
func WriteConfig(path string, c Config) error {
	d, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	_, err = f.Write(d)
	return err
}
