package main

import (
	"bytes"
	"testing"

	"github.com/apex/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitLogging_FromEnv(t *testing.T) {
	defer log.SetLevel(log.ErrorLevel)

	tests := []struct {
		name    string
		env     map[string]string
		wantErr bool
	}{
		{name: "unset defaults to error", env: map[string]string{}},
		{name: "debug", env: map[string]string{logLevelEnv: "debug"}},
		{name: "upper case", env: map[string]string{logLevelEnv: "WARN"}},
		{name: "unknown level", env: map[string]string{logLevelEnv: "chatty"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			err := initLogging(&buf, func(k string) string { return tt.env[k] })
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestInitLogging_WritesAtConfiguredLevel(t *testing.T) {
	defer log.SetLevel(log.ErrorLevel)

	var buf bytes.Buffer
	require.NoError(t, initLogging(&buf, func(string) string { return "debug" }))

	log.Debug("visible")
	assert.Contains(t, buf.String(), " D visible")
}
