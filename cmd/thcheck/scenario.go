package main

import (
	"os"

	api "github.com/MixinNetwork/threshold-check"
	"github.com/bwesterb/go-ristretto"
	"golang.org/x/xerrors"
	"gopkg.in/yaml.v3"
)

// Scenario lists what the client observed and what the server expects.
// Numeric checks and named signals may be mixed; numeric ones come first.
type Scenario struct {
	Observed []uint64 `yaml:"observed"`
	Expected []uint64 `yaml:"expected"`
	Signals  []Signal `yaml:"signals"`
}

type Signal struct {
	Name     string `yaml:"name"`
	Observed string `yaml:"observed"`
	Expected string `yaml:"expected"`
}

func loadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return parseScenario(data)
}

func parseScenario(data []byte) (*Scenario, error) {
	var s Scenario
	err := yaml.Unmarshal(data, &s)
	if err != nil {
		return nil, xerrors.Errorf("scenario: %w", err)
	}
	if len(s.Observed) != len(s.Expected) {
		return nil, xerrors.Errorf("scenario: %d observed, %d expected: %w", len(s.Observed), len(s.Expected), api.ErrLengthMismatch)
	}
	return &s, nil
}

func (s *Scenario) vectors() ([]*ristretto.Scalar, []*ristretto.Scalar) {
	observed := make([]*ristretto.Scalar, 0, len(s.Observed)+len(s.Signals))
	expected := make([]*ristretto.Scalar, 0, len(s.Expected)+len(s.Signals))
	for i := range s.Observed {
		observed = append(observed, api.CheckValueFromUint64(s.Observed[i]))
		expected = append(expected, api.CheckValueFromUint64(s.Expected[i]))
	}
	for _, sig := range s.Signals {
		observed = append(observed, api.HashCheckValue(sig.Name, []byte(sig.Observed)))
		expected = append(expected, api.HashCheckValue(sig.Name, []byte(sig.Expected)))
	}
	return observed, expected
}
