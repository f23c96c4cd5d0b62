package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClampPatience(t *testing.T) {
	assert.Equal(t, PatienceFast, ClampPatience(0))
	assert.Equal(t, PatienceFast, ClampPatience(-3))
	assert.Equal(t, PatienceBalanced, ClampPatience(2))
	assert.Equal(t, PatienceCreative, ClampPatience(3))
	assert.Equal(t, PatienceCreative, ClampPatience(7))
}

func TestParamsForPatience(t *testing.T) {
	fast := ParamsForPatience(PatienceFast)
	assert.Equal(t, SamplingParams{Temperature: 0.7, TopP: 0.85, RepetitionPenalty: 1.1}, fast)

	balanced := ParamsForPatience(PatienceBalanced)
	assert.Equal(t, SamplingParams{Temperature: 0.9, TopP: 0.9, RepetitionPenalty: 1.2}, balanced)

	creative := ParamsForPatience(PatienceCreative)
	assert.Equal(t, SamplingParams{Temperature: 1.2, TopP: 0.95, RepetitionPenalty: 1.3}, creative)
}

func TestParamsForPatienceMonotonic(t *testing.T) {
	prev := ParamsForPatience(PatienceFast)
	for p := PatienceBalanced; p <= PatienceCreative; p++ {
		cur := ParamsForPatience(p)
		assert.Greater(t, cur.Temperature, prev.Temperature)
		assert.Greater(t, cur.TopP, prev.TopP)
		assert.Greater(t, cur.RepetitionPenalty, prev.RepetitionPenalty)
		prev = cur
	}
}

func TestParamsForPatienceClampsOutOfRange(t *testing.T) {
	assert.Equal(t, ParamsForPatience(PatienceFast), ParamsForPatience(-1))
	assert.Equal(t, ParamsForPatience(PatienceCreative), ParamsForPatience(99))
}
