package env_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/xambuild/internal/adapters/env"
)

func TestOS_Lookup(t *testing.T) {
	t.Setenv("XAMBUILD_TEST_VALUE", "hello")

	v, ok := env.OS{}.Lookup("XAMBUILD_TEST_VALUE")
	assert.True(t, ok)
	assert.Equal(t, "hello", v)

	_, ok = env.OS{}.Lookup("XAMBUILD_TEST_DEFINITELY_UNSET_123")
	assert.False(t, ok)
}

func TestOS_Lookup_EmptyIsSet(t *testing.T) {
	t.Setenv("XAMBUILD_TEST_EMPTY", "")

	v, ok := env.OS{}.Lookup("XAMBUILD_TEST_EMPTY")
	assert.True(t, ok)
	assert.Empty(t, v)
}

func TestMap_Lookup(t *testing.T) {
	m := env.Map{"A": "1"}

	v, ok := m.Lookup("A")
	assert.True(t, ok)
	assert.Equal(t, "1", v)

	_, ok = m.Lookup("B")
	assert.False(t, ok)

	_, ok = env.Map(nil).Lookup("A")
	assert.False(t, ok)
}
