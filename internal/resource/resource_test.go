package resource

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResource_Variants(t *testing.T) {
	t.Run("loading carries no payload", func(t *testing.T) {
		r := Loading[string]()
		assert.Equal(t, StateLoading, r.State())
		assert.True(t, r.IsLoading())

		data, ok := r.Data()
		assert.False(t, ok)
		assert.Empty(t, data)
		assert.Empty(t, r.Message())
	})

	t.Run("success carries the value", func(t *testing.T) {
		r := Success(42)
		assert.True(t, r.IsSuccess())

		data, ok := r.Data()
		assert.True(t, ok)
		assert.Equal(t, 42, data)
		assert.Empty(t, r.Message())
	})

	t.Run("error carries only the message", func(t *testing.T) {
		r := Error[int]("Login failed")
		assert.True(t, r.IsError())
		assert.Equal(t, "Login failed", r.Message())

		_, ok := r.Data()
		assert.False(t, ok)
	})
}

func TestResource_ZeroValueIsLoading(t *testing.T) {
	var r Resource[int]
	assert.True(t, r.IsLoading())
}

func TestState_String(t *testing.T) {
	assert.Equal(t, "loading", StateLoading.String())
	assert.Equal(t, "success", StateSuccess.String())
	assert.Equal(t, "error", StateError.String())
	assert.Equal(t, "unknown", State(99).String())
}
