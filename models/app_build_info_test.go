// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewBuildInfo(t *testing.T) {
	tests := []struct {
		name                  string
		version, date, commit string
		want                  string
	}{
		{
			name:    "all set",
			version: "1.2.0", date: "2026-10-01", commit: "abc123",
			want: "Build version: 1.2.0\nBuild date: 2026-10-01\nBuild commit: abc123\n",
		},
		{
			name: "nothing set",
			want: "Build version: N/A\nBuild date: N/A\nBuild commit: N/A\n",
		},
		{
			name:    "only version",
			version: "dev",
			want:    "Build version: dev\nBuild date: N/A\nBuild commit: N/A\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NewBuildInfo(tt.version, tt.date, tt.commit).String())
		})
	}
}

func TestBuildInfo_Accessors(t *testing.T) {
	b := NewBuildInfo("1.0.0", "", "deadbeef")

	assert.Equal(t, "1.0.0", b.Version())
	assert.Equal(t, "N/A", b.Date())
	assert.Equal(t, "deadbeef", b.Commit())
}
