package main

import (
	"fmt"
	"math"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/tuneinsight/quadgo/function"
	"github.com/tuneinsight/quadgo/integrator"
)

// Scenario is the YAML description of a comparison run: the functions to
// integrate, the integrators to run them through and the shared bounds.
type Scenario struct {
	Bounds      Bounds             `yaml:"bounds"`
	Functions   []FunctionConfig   `yaml:"functions" validate:"min=1,dive"`
	Integrators []IntegratorConfig `yaml:"integrators" validate:"min=1,dive"`
}

// Bounds are the integration bounds shared by every entry of the scenario.
type Bounds struct {
	A float64 `yaml:"a" validate:"finite"`
	B float64 `yaml:"b" validate:"finite"`
}

// FunctionConfig describes one polynomial by its coefficients in ascending
// degree order. An empty vector is the zero function.
type FunctionConfig struct {
	Coefficients []float64 `yaml:"coefficients"`
}

// IntegratorConfig describes one integrator. Step only applies to the
// "riemann" kind, where 0 means integrator.DefaultStep. Memoize wraps the
// integrator with an in-memory result cache.
type IntegratorConfig struct {
	Kind    string  `yaml:"kind" validate:"oneof=analytical riemann"`
	Step    float64 `yaml:"step,omitempty" validate:"omitempty,finite,gt=0"`
	Memoize bool    `yaml:"memoize,omitempty"`
}

var scenarioValidate = validator.New()

func init() {
	_ = scenarioValidate.RegisterValidation("finite", func(fl validator.FieldLevel) bool {
		x := fl.Field().Float()
		return !math.IsNaN(x) && !math.IsInf(x, 0)
	})
}

// DefaultScenario returns the built-in sample scenario: 2 + 4x^3 + 5x^7 over
// [0.5, 1.5], integrated analytically and with the default Riemann step.
func DefaultScenario() *Scenario {
	return &Scenario{
		Bounds: Bounds{A: 0.5, B: 1.5},
		Functions: []FunctionConfig{
			{Coefficients: []float64{2, 0, 0, 4, 0, 0, 0, 5}},
		},
		Integrators: []IntegratorConfig{
			{Kind: "analytical"},
			{Kind: "riemann"},
		},
	}
}

// LoadScenario reads and validates a YAML scenario file.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	s := new(Scenario)
	if err := yaml.Unmarshal(data, s); err != nil {
		return nil, err
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// Validate checks the scenario against its structural constraints.
func (s *Scenario) Validate() error {
	return scenarioValidate.Struct(s)
}

// Build instantiates the functions and integrators of the scenario.
func (s *Scenario) Build() (fns []function.Function, ins []integrator.Integrator, err error) {

	fns = make([]function.Function, len(s.Functions))
	for i, fc := range s.Functions {
		fns[i] = function.NewPolynomial(fc.Coefficients)
	}

	ins = make([]integrator.Integrator, len(s.Integrators))
	for i, ic := range s.Integrators {
		var in integrator.Integrator
		switch ic.Kind {
		case "analytical":
			in = integrator.NewAnalytical()
		case "riemann":
			step := ic.Step
			if step == 0 {
				step = integrator.DefaultStep
			}
			in = integrator.NewRiemann(step)
		default:
			return nil, nil, fmt.Errorf("unknown integrator kind %q", ic.Kind)
		}
		if ic.Memoize {
			in = integrator.NewMemo(in)
		}
		ins[i] = in
	}

	return
}
