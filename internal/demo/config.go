package demo

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the sample inputs of the demonstration.
type Config struct {
	P1 []float64 `yaml:"p1"`
	P2 []float64 `yaml:"p2"`

	// Factor multiplies p1 from the right, LeftFactor multiplies p2 from the left.
	Factor     float64 `yaml:"factor"`
	LeftFactor float64 `yaml:"left_factor"`
	Offset     float64 `yaml:"offset"`

	// Power selects the coefficient of p1 to print.
	Power int `yaml:"power"`
	// Point is where p1 is evaluated.
	Point float64 `yaml:"point"`
	// Literal is converted to a constant polynomial.
	Literal float64 `yaml:"literal"`
}

// DefaultConfig returns the samples p1 = 3x^2 + 2x + 1 and p2 = x^2 + x.
func DefaultConfig() Config {
	return Config{
		P1:         []float64{1, 2, 3},
		P2:         []float64{0, 1, 1},
		Factor:     2,
		LeftFactor: 3,
		Offset:     5,
		Power:      2,
		Point:      2,
		Literal:    7,
	}
}

var ErrMissingPolynomial = errors.New("config: p1 and p2 must both have coefficients")

// LoadConfig reads a YAML file on top of DefaultConfig. An empty path
// returns the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks that both sample polynomials have coefficients. Any power
// is accepted, since coefficients outside the degree read as 0.
func (c Config) Validate() error {
	if len(c.P1) == 0 || len(c.P2) == 0 {
		return ErrMissingPolynomial
	}

	return nil
}
