package cache

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultKeySerializer_SerializeKey(t *testing.T) {
	serializer := NewDefaultKeySerializer()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "plain", input: "hound", want: "hound"},
		{name: "title case", input: "Labrador", want: "labrador"},
		{name: "padded", input: " labrador ", want: "labrador"},
		{name: "shouting", input: "LABRADOR", want: "labrador"},
		{name: "empty", input: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, serializer.SerializeKey(tt.input))
		})
	}
}

func TestDefaultKeySerializer_StableAcrossCalls(t *testing.T) {
	serializer := NewDefaultKeySerializer()

	first := serializer.SerializeKey("  Bulldog")
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, serializer.SerializeKey("  Bulldog"))
	}
	assert.Equal(t, first, serializer.SerializeKey("bulldog  "))
}
