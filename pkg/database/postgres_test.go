package database

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/noah-isme/scholarship-match-api/pkg/config"
)

func TestDSNPrefersURL(t *testing.T) {
	dsn := DSN(config.DatabaseConfig{URL: "postgres://u:p@db:5432/scholarships", Host: "ignored"})
	assert.Equal(t, "postgres://u:p@db:5432/scholarships", dsn)
}

func TestDSNFromParts(t *testing.T) {
	dsn := DSN(config.DatabaseConfig{Host: "localhost", Port: 5432, User: "postgres", Password: "secret", Name: "scholarships", SSLMode: "disable"})
	assert.Equal(t, "host=localhost port=5432 user=postgres password=secret dbname=scholarships sslmode=disable", dsn)
}
