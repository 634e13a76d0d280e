package envvar

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestString(t *testing.T) {
	t.Setenv("ENVVAR_TEST_STRING", " server ")

	v, ok := String("ENVVAR_TEST_STRING")
	assert.True(t, ok)
	assert.Equal(t, "server", v)

	v, ok = String("ENVVAR_TEST_STRING_UNSET", "local")
	assert.False(t, ok)
	assert.Equal(t, "local", v)
}

func TestInt64(t *testing.T) {
	t.Setenv("ENVVAR_TEST_INT", "5000")
	t.Setenv("ENVVAR_TEST_INT_BAD", "5s")

	v, ok := Int64("ENVVAR_TEST_INT")
	assert.True(t, ok)
	assert.Equal(t, int64(5000), v)

	v, ok = Int64("ENVVAR_TEST_INT_BAD", 10000)
	assert.False(t, ok)
	assert.Equal(t, int64(10000), v)
}

func TestBool(t *testing.T) {
	t.Setenv("ENVVAR_TEST_BOOL", "true")

	v, ok := Bool("ENVVAR_TEST_BOOL")
	assert.True(t, ok)
	assert.True(t, v)

	v, ok = Bool("ENVVAR_TEST_BOOL_UNSET")
	assert.False(t, ok)
	assert.False(t, v)
}
