package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"null-hydrator/hydrate"
	"null-hydrator/options"
)

func TestParse(t *testing.T) {
	yaml := `
version: "1"
policy:
  leave_cycles: true
  utc: false
skip:
  - store.Order.Notes
fixed_time: "2024-01-02T03:04:05Z"
log_level: debug
`

	cfg, err := Parse([]byte(yaml))
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "1", cfg.Version)
	assert.Equal(t, []string{"store.Order.Notes"}, cfg.Skip)
	assert.Equal(t, "2024-01-02T03:04:05Z", cfg.FixedTime)

	// unset switches keep their defaults
	assert.Equal(t,
		options.PolicyDescendPresent|options.PolicyDescendElements|options.PolicyLeaveCycles,
		cfg.Policy.Enum())

	level, err := cfg.Level()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, level)
	assert.NoError(t, cfg.Validate())
}

func TestParse_Defaults(t *testing.T) {
	cfg, err := Parse([]byte("skip: []\n"))
	require.NoError(t, err)

	assert.Equal(t, CurrentVersion, cfg.Version)
	require.NotNil(t, cfg.Policy)
	assert.Equal(t, options.PolicyDefault, cfg.Policy.Enum())
	assert.Equal(t, "info", cfg.LogLevel)

	clock, err := cfg.Clock()
	require.NoError(t, err)
	assert.Nil(t, clock)
}

func TestParse_Invalid(t *testing.T) {
	_, err := Parse([]byte("policy: [not, a, map]"))
	assert.ErrorContains(t, err, "failed to parse config YAML")
}

func TestValidate(t *testing.T) {
	cfg := &Config{
		Version: "2",
		Policy:  &Policy{},
		Skip: []string{
			"store.Order.Notes",
			"warehouse.Page[null-hydrator/warehouse.Order].Next",
			"Order.Notes",
			"store..Notes",
			"store.Order.",
		},
		FixedTime: "yesterday",
		LogLevel:  "loud",
	}

	err := cfg.Validate()
	require.Error(t, err)

	msg := err.Error()
	assert.Contains(t, msg, `unsupported version "2"`)
	assert.Contains(t, msg, `skip entry "Order.Notes"`)
	assert.Contains(t, msg, `skip entry "store..Notes"`)
	assert.Contains(t, msg, `skip entry "store.Order."`)
	assert.NotContains(t, msg, `skip entry "store.Order.Notes"`)
	assert.NotContains(t, msg, `skip entry "warehouse.Page`)
	assert.Contains(t, msg, `invalid fixed_time "yesterday"`)
	assert.Contains(t, msg, `invalid log_level "loud"`)

	_, err = cfg.Options()
	assert.Error(t, err)
}

func TestOptions(t *testing.T) {
	cfg, err := Parse([]byte(`
policy:
  leave_cycles: true
skip: [config.document.Hidden]
fixed_time: "2024-01-02T03:04:05Z"
`))
	require.NoError(t, err)

	opts, err := cfg.Options()
	require.NoError(t, err)
	require.Len(t, opts, 3)

	h := hydrate.New(opts...)
	assert.Equal(t, options.PolicyDefault|options.PolicyLeaveCycles, h.Policy())

	type document struct {
		Hidden  *string
		Created *time.Time
		Self    *document
	}

	d := &document{}
	require.NoError(t, h.Hydrate(d))

	assert.Nil(t, d.Hidden)
	assert.Nil(t, d.Self)
	require.NotNil(t, d.Created)
	assert.Equal(t, time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC), *d.Created)
}

func TestLogger(t *testing.T) {
	cfg := &Config{LogLevel: "warn"}

	logger, err := cfg.Logger(os.Stderr)
	require.NoError(t, err)
	assert.False(t, logger.Enabled(t.Context(), slog.LevelInfo))
	assert.True(t, logger.Enabled(t.Context(), slog.LevelWarn))

	_, err = (&Config{LogLevel: "verbose"}).Logger(os.Stderr)
	assert.Error(t, err)
}

func TestWriteFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hydrate.yaml")

	require.NoError(t, WriteFile(Default(), path))

	cfg, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.NoError(t, cfg.Validate())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "descend_present: true")
	assert.Contains(t, string(data), "leave_cycles: false")
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "failed to read config file")
}

func TestPolicyFrom(t *testing.T) {
	for _, policy := range []options.PolicyEnum{options.PolicyNone, options.PolicyDefault, options.PolicyAll} {
		assert.Equal(t, policy, PolicyFrom(policy).Enum(), policy.String())
	}

	var unset *Policy
	assert.Equal(t, options.PolicyDefault, unset.Enum())
}
