// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNetAddress_String(t *testing.T) {
	tests := []struct {
		name     string
		addr     NetAddress
		expected string
	}{
		{name: "empty address", addr: NetAddress{}, expected: ""},
		{name: "localhost with port", addr: NetAddress{Host: "localhost", Port: 8080}, expected: "localhost:8080"},
		{name: "IP address with port", addr: NetAddress{Host: "127.0.0.1", Port: 9090}, expected: "127.0.0.1:9090"},
		{name: "only port no host", addr: NetAddress{Port: 8080}, expected: ":8080"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.addr.String())
		})
	}
}

func TestNetAddress_Set(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		expectError bool
		want        NetAddress
	}{
		{name: "localhost", input: "localhost:8765", want: NetAddress{Host: "localhost", Port: 8765}},
		{name: "loopback ip", input: "127.0.0.1:8765", want: NetAddress{Host: "127.0.0.1", Port: 8765}},
		{name: "missing port", input: "localhost", expectError: true},
		{name: "non numeric port", input: "localhost:http", expectError: true},
		{name: "zero port", input: "localhost:0", expectError: true},
		{name: "port out of range", input: "localhost:70000", expectError: true},
		{name: "hostname not allowed", input: "example.com:80", expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var addr NetAddress
			err := addr.Set(tt.input)
			if tt.expectError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, addr)
		})
	}
}

func TestParseFlags(t *testing.T) {
	// Act
	cfg, err := ParseFlags([]string{
		"-a", "127.0.0.1:9999",
		"-d", "/tmp/leaf.db",
		"-driver", "sqlite3",
		"-config", "/etc/openleaf.json",
		"-env", "development",
		"-base-url", "http://127.0.0.1:4000",
		"-token-sign-key", "sign",
		"-session-ttl", "24h",
		"-request-timeout", "15s",
		"-sync-interval", "-1s",
		"-log-file", "leaf.log",
	})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:9999", cfg.Server.HTTPAddress)
	assert.Equal(t, "/tmp/leaf.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "sqlite3", cfg.Storage.DB.Driver)
	assert.Equal(t, "/etc/openleaf.json", cfg.JSONFilePath)
	assert.Equal(t, "development", cfg.Adapter.Environment)
	assert.Equal(t, "http://127.0.0.1:4000", cfg.Adapter.BaseURL)
	assert.Equal(t, "sign", cfg.App.TokenSignKey)
	assert.Equal(t, 24*time.Hour, cfg.App.SessionTTL)
	assert.Equal(t, 15*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, -time.Second, cfg.Workers.SyncInterval)
	assert.Equal(t, "leaf.log", cfg.App.LogFile)
}

func TestParseFlags_Empty(t *testing.T) {
	cfg, err := ParseFlags(nil)

	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestParseFlags_InvalidAddress(t *testing.T) {
	cfg, err := ParseFlags([]string{"-a", "not-an-address"})

	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "error parsing flags")
}

func TestParseFlags_UnknownFlag(t *testing.T) {
	_, err := ParseFlags([]string{"-grpc-address", "127.0.0.1:9090"})
	assert.Error(t, err)
}
