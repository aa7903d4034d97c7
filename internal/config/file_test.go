// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFile_JSON(t *testing.T) {
	path := writeTempConfig(t, "c.json", `{
		"adapter": {"request_timeout": 1000000000},
		"placeholder": {"address": "localhost:9999"},
		"log": {"file": "x.log"}
	}`)

	cfg, err := parseFile(path)
	require.NoError(t, err)
	assert.Equal(t, time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, "localhost:9999", cfg.Placeholder.Address)
	assert.Equal(t, "x.log", cfg.Log.File)
}

func TestParseFile_InvalidJSON(t *testing.T) {
	path := writeTempConfig(t, "c.json", `{"adapter":`)

	_, err := parseFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error decoding json configs")
}

func TestParseFile_InvalidYAMLDuration(t *testing.T) {
	path := writeTempConfig(t, "c.yml", "adapter:\n  request_timeout: soon\n")

	_, err := parseFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error decoding yaml configs")
}

func TestDuration_JSONRoundTrip(t *testing.T) {
	d := Duration(90 * time.Second)

	data, err := json.Marshal(d)
	require.NoError(t, err)
	assert.JSONEq(t, `"1m30s"`, string(data))

	var back Duration
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, d, back)
}

func TestDuration_UnmarshalJSON_WrongType(t *testing.T) {
	var d Duration
	assert.Error(t, json.Unmarshal([]byte(`true`), &d))
}
