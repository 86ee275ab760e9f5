package schemas

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validScoringConfig = `{
	"name": "balanced",
	"weights": {"skills": 0.35, "experience": 0.25, "location": 0.15, "semantic": 0.20, "cultural": 0.05},
	"skill_weights": {"python": 0.15},
	"default_skill_weight": 0.05,
	"experience_rules": [{"keywords": ["senior"], "years": 5}],
	"default_experience_years": 3,
	"min_semantic_score": 0.1
}`

func TestValidateScoringConfigAcceptsValidDocument(t *testing.T) {
	assert.NoError(t, ValidateScoringConfig([]byte(validScoringConfig)))
}

func TestValidateScoringConfigRejectsMissingWeights(t *testing.T) {
	err := ValidateScoringConfig([]byte(`{"name": "broken"}`))
	require.Error(t, err)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.NotEmpty(t, validationErr.Errors)
	assert.Contains(t, err.Error(), "weights")
}

func TestValidateScoringConfigRejectsIncompleteWeights(t *testing.T) {
	err := ValidateScoringConfig([]byte(`{"weights": {"skills": 1.0}}`))
	require.Error(t, err)

	var validationErr *ValidationError
	assert.ErrorAs(t, err, &validationErr)
}

func TestValidateScoringConfigRejectsOutOfRangeWeight(t *testing.T) {
	err := ValidateScoringConfig([]byte(`{
		"weights": {"skills": 1.5, "experience": 0.25, "location": 0.15, "semantic": 0.20, "cultural": 0.05}
	}`))
	assert.Error(t, err)
}

func TestValidateScoringConfigRejectsUnknownKeys(t *testing.T) {
	err := ValidateScoringConfig([]byte(`{
		"weights": {"skills": 0.35, "experience": 0.25, "location": 0.15, "semantic": 0.20, "cultural": 0.05},
		"mystery_knob": 7
	}`))
	assert.Error(t, err)
}

func TestValidateScoringConfigRejectsWrongTypes(t *testing.T) {
	err := ValidateScoringConfig([]byte(`{
		"weights": {"skills": "lots", "experience": 0.25, "location": 0.15, "semantic": 0.20, "cultural": 0.05}
	}`))
	assert.Error(t, err)
}

func TestValidateScoringConfigRejectsMalformedJSON(t *testing.T) {
	err := ValidateScoringConfig([]byte(`{not json`))
	assert.Error(t, err)
}

func TestValidateScoringConfigRejectsEmptyExperienceKeywords(t *testing.T) {
	err := ValidateScoringConfig([]byte(`{
		"weights": {"skills": 0.35, "experience": 0.25, "location": 0.15, "semantic": 0.20, "cultural": 0.05},
		"experience_rules": [{"keywords": [], "years": 5}]
	}`))
	assert.Error(t, err)
}
