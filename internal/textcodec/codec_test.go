package textcodec

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompressDecompress(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "empty", input: ""},
		{name: "ascii", input: "Water rising near the bridge"},
		{name: "utf8", input: "पूर आला आहे — 4 люди на крыше 🚨"},
		{name: "json", input: `{"id":"a","text":"fire","location":{"lat":18.5,"lng":73.8}}`},
		{name: "repetitive", input: strings.Repeat("RELAY|", 500)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			encoded, err := Compress(tt.input)
			require.NoError(t, err)
			assert.NotContains(t, encoded, "|")
			assert.NotContains(t, encoded, "=")

			decoded, err := Decompress(encoded)
			require.NoError(t, err)
			assert.Equal(t, tt.input, decoded)
		})
	}
}

func TestCompress_Deterministic(t *testing.T) {
	input := strings.Repeat("flood report ", 100)

	a, err := Compress(input)
	require.NoError(t, err)
	b, err := Compress(input)
	require.NoError(t, err)

	assert.Equal(t, a, b)
	assert.Less(t, len(a), len(input))
}

func TestDecompress_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "bad alphabet", input: "not|base64"},
		{name: "not deflate", input: "AAAAAAAA"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decompress(tt.input)
			assert.Error(t, err)
		})
	}
}
