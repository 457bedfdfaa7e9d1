package contact

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidate(t *testing.T) {
	m := Message{Name: "Ann", Email: "ann@example.com", Subject: "Hi", Body: "Hello"}
	assert.NoError(t, m.Validate())

	m.Subject = "   "
	assert.ErrorIs(t, m.Validate(), ErrMissingField)
}
