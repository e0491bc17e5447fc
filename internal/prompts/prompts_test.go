package prompts

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/stoicaf/stoicaf-backend/internal/models"
)

func TestEveryPillarHasFullTrack(t *testing.T) {
	for _, p := range models.AllPillars() {
		for day := 1; day <= TrackLength; day++ {
			prompt, ok := ForDay(p, day)
			assert.True(t, ok, "pillar %s day %d", p, day)
			assert.NotEmpty(t, prompt, "pillar %s day %d", p, day)
		}
	}
}

func TestForDayOutOfRange(t *testing.T) {
	_, ok := ForDay(models.PillarMoney, 0)
	assert.False(t, ok)

	_, ok = ForDay(models.PillarMoney, TrackLength+1)
	assert.False(t, ok)

	_, ok = ForDay(models.Pillar("serenity"), 1)
	assert.False(t, ok)
}
