package project

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIcon(t *testing.T) {
	cases := map[string]string{
		"Music Player":          "🎵",
		"Food Ordering Website": "🍕",
		"Roll a Die":            "🎲",
		"Dice Roller":           "🎲",
		"Farm Fresh Website":    "🌾",
	}
	for title, want := range cases {
		p := Project{Title: title}
		assert.Equal(t, want, p.Icon(), title)
	}
}

func TestValidate(t *testing.T) {
	assert.NoError(t, (&Project{ID: "roll-a-die"}).Validate())
	assert.ErrorIs(t, (&Project{ID: "Roll A Die"}).Validate(), ErrInvalidID)
}
