package ids

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew_Shape(t *testing.T) {
	id := New(PrefixUser)

	assert.Len(t, id, len(PrefixUser)+1+suffixLen)
	assert.True(t, HasPrefix(id, PrefixUser))
	assert.False(t, HasPrefix(id, PrefixBarber))
}

func TestNew_Unique(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 1000; i++ {
		id := NewAppointment()
		assert.False(t, seen[id], "duplicate id %s", id)
		seen[id] = true
	}
}
