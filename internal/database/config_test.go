package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDatabaseConfigDSN(t *testing.T) {
	testCases := []struct {
		name     string
		config   DatabaseConfig
		expected string
	}{
		{
			name:     "postgres",
			config:   DatabaseConfig{Driver: "postgres", Host: "db", Port: "5432", User: "pizza", Password: "pw", Name: "pizza", SSLMode: "disable"},
			expected: "host=db user=pizza password=pw dbname=pizza port=5432 sslmode=disable",
		},
		{
			name:     "postgresql alias",
			config:   DatabaseConfig{Driver: "PostgreSQL", Host: "db", Port: "5432", User: "u", Password: "p", Name: "n", SSLMode: "require"},
			expected: "host=db user=u password=p dbname=n port=5432 sslmode=require",
		},
		{
			name:     "sqlite file",
			config:   DatabaseConfig{Driver: "sqlite", Path: "pizza.sqlite"},
			expected: "pizza.sqlite?_foreign_keys=on",
		},
		{
			name:     "sqlite with existing params",
			config:   DatabaseConfig{Path: "file:pizza.sqlite?cache=shared"},
			expected: "file:pizza.sqlite?cache=shared&_foreign_keys=on",
		},
		{
			name:     "sqlite with explicit foreign key setting",
			config:   DatabaseConfig{Driver: "sqlite", Path: ":memory:?_foreign_keys=off"},
			expected: ":memory:?_foreign_keys=off",
		},
		{
			name:     "unsupported driver",
			config:   DatabaseConfig{Driver: "mysql"},
			expected: "",
		},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.config.DSN())
		})
	}
}

func TestDatabaseConfigStringRedactsPassword(t *testing.T) {
	cfg := DatabaseConfig{Driver: "postgres", Password: "hunter2"}

	assert.NotContains(t, cfg.String(), "hunter2")
	assert.Contains(t, cfg.String(), "[REDACTED]")
}
