// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterFlags_AllValues(t *testing.T) {
	flags := parseTestFlags(t,
		"-d", "sqlite",
		"--dsn", "/tmp/c.db",
		"-u", "http://localhost:8081",
		"--request-timeout", "2s",
		"--pool-size", "4",
		"--queue-size", "8",
		"--sync-interval", "1m",
		"-a", "127.0.0.1:9000",
		"--log-level", "warn",
		"--log-file", "/tmp/c.log",
		"-c", "cfg.json",
	)

	cfg := flags.config()
	assert.Equal(t, "sqlite", cfg.Storage.DB.Driver)
	assert.Equal(t, "/tmp/c.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "http://localhost:8081", cfg.Adapter.BaseURL)
	assert.Equal(t, 2*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, 4, cfg.Workers.PoolSize)
	assert.Equal(t, 8, cfg.Workers.QueueSize)
	assert.Equal(t, time.Minute, cfg.Workers.SyncInterval)
	assert.Equal(t, "127.0.0.1:9000", cfg.Placeholder.Address)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, "/tmp/c.log", cfg.Log.File)
	assert.Equal(t, "cfg.json", cfg.ConfigFilePath)
}

func TestRegisterFlags_NoArgsIsZero(t *testing.T) {
	cfg := parseTestFlags(t).config()
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestNetAddress_Set(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "localhost:8081", want: "localhost:8081"},
		{in: "127.0.0.1:80", want: "127.0.0.1:80"},
		{in: ":8081", want: ":8081"},
		{in: "8081", wantErr: true},
		{in: "localhost:http", wantErr: true},
		{in: "localhost:0", wantErr: true},
		{in: "localhost:70000", wantErr: true},
		{in: "example.com:80", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			var a NetAddress
			err := a.Set(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, a.String())
		})
	}
}

func TestNetAddress_EmptyString(t *testing.T) {
	var a NetAddress
	assert.Equal(t, "", a.String())
	assert.Equal(t, "host:port", a.Type())
}
