// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeTestConfig writes content to a temp YAML file, points
// CREDWATCH_CFG_FILE at it, and resets the global Config to force a reload.
func writeTestConfig(t *testing.T, content string) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "credwatch.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	t.Setenv("CREDWATCH_CFG_FILE", path)
	Config = Type{}
	t.Cleanup(func() { Config = Type{} })
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name      string
		content   string
		wantErr   bool
		checkFunc func(*testing.T, Type)
	}{
		{
			name: "simple string values",
			content: "metadata:\n  attribute: email\n" +
				"credential:\n  secret: temp-password\n",
			checkFunc: func(t *testing.T, cfg Type) {
				assert.NotEmpty(t, cfg.Source)
				assert.Contains(t, cfg.Data, "metadata")
			},
		},
		{
			name:    "nested structure",
			content: "sink:\n  topic: arn:aws:sns:us-east-1:123456789012:creds\n",
			checkFunc: func(t *testing.T, cfg Type) {
				sink, ok := cfg.Data["sink"].(map[string]interface{})
				assert.True(t, ok, "sink should be a map")
				assert.Equal(t, "arn:aws:sns:us-east-1:123456789012:creds", sink["topic"])
			},
		},
		{
			name:    "invalid yaml",
			content: "sink: [unclosed\n",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			writeTestConfig(t, tt.content)

			cfg, err := Load()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			tt.checkFunc(t, cfg)
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	t.Setenv("CREDWATCH_CFG_FILE", filepath.Join(t.TempDir(), "nope.yaml"))
	Config = Type{}
	t.Cleanup(func() { Config = Type{} })

	_, err := Load()
	assert.Error(t, err)
}

func TestGetString(t *testing.T) {
	writeTestConfig(t,
		"credential:\n  secret: temp-password\n"+
			"handler:\n  lookup-timeout: 2\n")
	_, err := Load()
	require.NoError(t, err)

	tests := []struct {
		name     string
		key      string
		def      []string
		expected string
		wantErr  bool
	}{
		{
			name:     "existing nested key",
			key:      "credential.secret",
			expected: "temp-password",
		},
		{
			name:     "missing key with default",
			key:      "metadata.attribute",
			def:      []string{"email"},
			expected: "email",
		},
		{
			name:    "missing key without default",
			key:     "metadata.attribute",
			wantErr: true,
		},
		{
			name:    "wrong type",
			key:     "handler.lookup-timeout",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := GetString(tt.key, tt.def...)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestGetInt(t *testing.T) {
	writeTestConfig(t, "handler:\n  lookup-timeout: 5\n")
	_, err := Load()
	require.NoError(t, err)

	got, err := GetInt("handler.lookup-timeout")
	assert.NoError(t, err)
	assert.Equal(t, 5, got)

	got, err = GetInt("handler.missing", 2)
	assert.NoError(t, err)
	assert.Equal(t, 2, got)

	_, err = GetInt("handler.missing")
	assert.Error(t, err)
}

func TestGetBool(t *testing.T) {
	writeTestConfig(t, "sink:\n  log: true\n")
	_, err := Load()
	require.NoError(t, err)

	got, err := GetBool("sink.log")
	assert.NoError(t, err)
	assert.True(t, got)

	got, err = GetBool("sink.missing", false)
	assert.NoError(t, err)
	assert.False(t, got)
}

// TestNamespacedLookup verifies that a namespaced key is preferred over the
// unnamespaced one when the Namespace is set.
func TestNamespacedLookup(t *testing.T) {
	writeTestConfig(t,
		"sink:\n  topic: global-topic\n"+
			"invoke:\n  sink:\n    topic: invoke-topic\n")
	_, err := Load("invoke")
	require.NoError(t, err)

	got, err := GetString("sink.topic")
	assert.NoError(t, err)
	assert.Equal(t, "invoke-topic", got)
}
