// Package scoring combines skill, experience, location, semantic and
// cultural signals into ranked candidate-job match scores.
package scoring

import (
	"encoding/json"
	"fmt"
	"math"
	"os"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/talent-matcher/internal/schemas"
)

// weightSumTolerance bounds floating-point drift when checking that the five
// component weights sum to 1.0.
const weightSumTolerance = 1e-6

// defaultSkillWeight applies to required skills missing from the weight
// table.
const defaultSkillWeight = 0.05

// Weights assigns the relative importance of each sub-score. A valid set is
// non-negative and sums to 1.0.
type Weights struct {
	Skills     float64 `json:"skills" validate:"gte=0,lte=1"`
	Experience float64 `json:"experience" validate:"gte=0,lte=1"`
	Location   float64 `json:"location" validate:"gte=0,lte=1"`
	Semantic   float64 `json:"semantic" validate:"gte=0,lte=1"`
	Cultural   float64 `json:"cultural" validate:"gte=0,lte=1"`
}

// Sum returns the total of the five weights.
func (w Weights) Sum() float64 {
	return w.Skills + w.Experience + w.Location + w.Semantic + w.Cultural
}

// ExperienceRule maps job-title keywords to a required-experience threshold
// in years.
type ExperienceRule struct {
	Keywords []string `json:"keywords" validate:"required,min=1"`
	Years    int      `json:"years" validate:"gte=0"`
}

// Config is the externally supplied scoring configuration. The engine never
// hard-codes a weight set; every policy knob lives here.
type Config struct {
	Name    string  `json:"name"`
	Weights Weights `json:"weights"`

	// SkillWeights maps lowercase skill names to importance weights.
	// Unknown skills get DefaultSkillWeight.
	SkillWeights       map[string]float64 `json:"skill_weights"`
	DefaultSkillWeight float64            `json:"default_skill_weight" validate:"gte=0"`

	// ExperienceRules are checked in order against the job title; the first
	// match decides the required years. No match falls back to
	// DefaultExperienceYears.
	ExperienceRules        []ExperienceRule `json:"experience_rules" validate:"dive"`
	DefaultExperienceYears int              `json:"default_experience_years" validate:"gte=0"`

	// MinSemanticScore discards pairs below this semantic sub-score before
	// ranking. Zero disables the pre-filter.
	MinSemanticScore float64 `json:"min_semantic_score" validate:"gte=0,lte=1"`
}

// DefaultConfig returns a balanced configuration. It is one choice among
// several reasonable weightings, not a canonical constant: callers with their
// own policy load it from configuration instead.
func DefaultConfig() Config {
	return Config{
		Name: "balanced",
		Weights: Weights{
			Skills:     0.35,
			Experience: 0.25,
			Location:   0.15,
			Semantic:   0.20,
			Cultural:   0.05,
		},
		SkillWeights: map[string]float64{
			"python": 0.15, "javascript": 0.12, "java": 0.12, "react": 0.10,
			"django": 0.08, "flask": 0.08, "node.js": 0.08, "sql": 0.10,
			"mongodb": 0.07, "docker": 0.06, "aws": 0.06, "machine learning": 0.12,
			"tensorflow": 0.08, "pytorch": 0.08, "statistics": 0.09, "data analysis": 0.08,
			"css": 0.05, "html": 0.05, "git": 0.04, "rest api": 0.06,
		},
		DefaultSkillWeight: defaultSkillWeight,
		ExperienceRules: []ExperienceRule{
			{Keywords: []string{"senior", "lead", "principal"}, Years: 5},
			{Keywords: []string{"junior", "entry"}, Years: 1},
		},
		DefaultExperienceYears: 3,
		MinSemanticScore:       0.1,
	}
}

// Validate rejects malformed configurations at load time so a single bad
// config never corrupts an entire ranking run.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid scoring config: %w", err)
	}
	if diff := math.Abs(c.Weights.Sum() - 1.0); diff > weightSumTolerance {
		return fmt.Errorf("invalid scoring config %q: weights must sum to 1.0, got %.6f", c.Name, c.Weights.Sum())
	}
	for skill, w := range c.SkillWeights {
		if w < 0 {
			return fmt.Errorf("invalid scoring config %q: negative weight for skill %q", c.Name, skill)
		}
	}
	return nil
}

// LoadConfig reads and validates a scoring configuration from a JSON file.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read scoring config %s: %w", path, err)
	}

	if err := schemas.ValidateScoringConfig(data); err != nil {
		return Config{}, fmt.Errorf("scoring config %s rejected: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse scoring config %s: %w", path, err)
	}
	if cfg.DefaultSkillWeight == 0 {
		cfg.DefaultSkillWeight = defaultSkillWeight
	}
	if cfg.DefaultExperienceYears == 0 {
		cfg.DefaultExperienceYears = 3
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
