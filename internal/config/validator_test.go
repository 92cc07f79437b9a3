package config

import (
	"errors"
	"strings"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		fields []string
	}{
		{"defaults", func(*Config) {}, nil},
		{"alias method", func(c *Config) { c.Vote.Method = "CS" }, nil},
		{"unknown method", func(c *Config) { c.Vote.Method = "borda" }, []string{"vote.method"}},
		{"zero bound", func(c *Config) { c.Vote.MaxCandidates = 0 }, []string{"vote.max_candidates"}},
		{"huge bound", func(c *Config) { c.Vote.MaxCandidates = MaxCandidatesLimit + 1 }, []string{"vote.max_candidates"}},
		{"bad level", func(c *Config) { c.Logging.Level = "trace" }, []string{"log.level"}},
		{"upper level", func(c *Config) { c.Logging.Level = "DEBUG" }, nil},
		{"warning alias", func(c *Config) { c.Logging.Level = "warning" }, nil},
		{"upper format", func(c *Config) { c.Logging.Format = "JSON" }, nil},
		{"bad format", func(c *Config) { c.Logging.Format = "xml" }, []string{"log.format"}},
		{"several", func(c *Config) {
			c.Vote.Method = ""
			c.Logging.Format = "xml"
		}, []string{"vote.method", "log.format"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)

			var fields []string
			for _, e := range cfg.Validate() {
				fields = append(fields, e.Field)
			}
			assert.Equal(t, tt.fields, fields)
		})
	}
}

func TestValidationErrors_Error(t *testing.T) {
	one := ValidationErrors{{Field: "vote.method", Value: "x", Message: "bad"}}
	assert.Equal(t, "vote.method: bad (got: x)", one.Error())

	two := append(one, ValidationError{Field: "log.level", Value: "y", Message: "bad"})
	msg := two.Error()
	assert.True(t, strings.HasPrefix(msg, "2 validation errors:\n"))
	assert.Contains(t, msg, "  2. log.level: bad (got: y)")

	assert.Empty(t, ValidationErrors{}.Error())
}

func TestLoad_ReturnsValidationErrors(t *testing.T) {
	v := viper.New()
	SetDefaults(v)
	v.Set("vote.max_candidates", -1)

	_, err := Load(v)
	var verrs ValidationErrors
	require.True(t, errors.As(err, &verrs))
	require.Len(t, verrs, 1)
	assert.Equal(t, "vote.max_candidates", verrs[0].Field)
}
