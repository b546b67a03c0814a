package clues

import (
	_ "embed"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var defaultCatalog []byte

// entry is the on-disk shape of one clue.
type entry struct {
	Kind       string   `yaml:"kind"`
	Difficulty string   `yaml:"difficulty"`
	Problem    string   `yaml:"problem"`
	Solution   string   `yaml:"solution"`
	Options    []string `yaml:"options"`
	Correct    string   `yaml:"correct"`
	Hint       string   `yaml:"hint"`
	Points     int      `yaml:"points"`
	TimeLimit  int      `yaml:"time_limit"` // seconds
}

type catalogFile struct {
	Clues []entry `yaml:"clues"`
	Final *entry  `yaml:"final"`
}

// Default returns the bank embedded in the binary.
func Default() (*Bank, error) {
	return Parse(defaultCatalog)
}

// LoadFile reads a catalog from a YAML file.
func LoadFile(path string) (*Bank, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open catalog: %w", err)
	}
	defer f.Close()
	return Load(f)
}

// Load reads a catalog from r.
func Load(r io.Reader) (*Bank, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates a YAML catalog.
func Parse(data []byte) (*Bank, error) {
	var cf catalogFile
	if err := yaml.Unmarshal(data, &cf); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	if cf.Final == nil {
		return nil, ErrNoFinal
	}

	normal := make([]Definition, 0, len(cf.Clues))
	for i, e := range cf.Clues {
		d, err := e.definition()
		if err != nil {
			return nil, fmt.Errorf("clue %d: %w", i, err)
		}
		normal = append(normal, d)
	}
	final, err := cf.Final.definition()
	if err != nil {
		return nil, fmt.Errorf("final clue: %w", err)
	}
	return NewBank(normal, final)
}

func (e entry) definition() (Definition, error) {
	d := Definition{
		Problem:   e.Problem,
		Solution:  e.Solution,
		Hint:      e.Hint,
		Points:    e.Points,
		TimeLimit: time.Duration(e.TimeLimit) * time.Second,
	}

	switch strings.ToLower(e.Kind) {
	case "text", "":
		d.Kind = FreeText
	case "choice", "mcq":
		d.Kind = MultipleChoice
	default:
		return d, fmt.Errorf("%w: unknown kind %q", ErrInvalidDefinition, e.Kind)
	}

	switch strings.ToLower(e.Difficulty) {
	case "easy":
		d.Difficulty = Easy
	case "hard":
		d.Difficulty = Hard
	case "any", "":
		d.Difficulty = Any
	default:
		return d, fmt.Errorf("%w: unknown difficulty %q", ErrInvalidDefinition, e.Difficulty)
	}

	if len(e.Options) > NumOptions {
		return d, fmt.Errorf("%w: %d options on %q", ErrInvalidDefinition, len(e.Options), e.Problem)
	}
	if d.Kind == MultipleChoice && len(e.Options) != NumOptions {
		return d, fmt.Errorf("%w: %d options on %q, want %d", ErrInvalidDefinition, len(e.Options), e.Problem, NumOptions)
	}
	copy(d.Options[:], e.Options)
	if len(e.Correct) == 1 {
		d.Correct = upperASCII(e.Correct[0])
	} else if e.Correct != "" {
		return d, fmt.Errorf("%w: correct label %q on %q", ErrInvalidDefinition, e.Correct, e.Problem)
	}

	return d, d.Validate()
}
