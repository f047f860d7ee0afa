package crypto

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMemoryStorage(t *testing.T) {
	s := NewMemoryStorage()

	_, ok := s.Get("secret")
	assert.False(t, ok)

	s.Set("secret", "one")
	s.Set("secret", "two")
	v, ok := s.Get("secret")
	assert.True(t, ok)
	assert.Equal(t, "two", v)

	s.Remove("secret")
	s.Remove("secret")
	_, ok = s.Get("secret")
	assert.False(t, ok)
}
