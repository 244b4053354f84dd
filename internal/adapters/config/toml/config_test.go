package toml

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	csvcodec "github.com/bnema/layerstats/internal/adapters/codec/csv"
	"github.com/bnema/layerstats/internal/application"
	"github.com/bnema/layerstats/internal/domain"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaultsWithoutConfigFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load(viper.New())
	require.NoError(t, err)

	assert.Empty(t, cfg.Path)
	assert.Equal(t, 5, cfg.LayerCount)
	assert.Nil(t, cfg.Seed)
	assert.Equal(t, application.DefaultGeneratorOptions(), cfg.Generator)
	assert.Equal(t, application.DefaultOutputFiles(), cfg.Files)
	assert.Equal(t, ".", cfg.OutputDir)
	assert.Equal(t, csvcodec.LenientPolicy(), cfg.Decode)
	assert.Equal(t, domain.MinMaxLegacy, cfg.MinMaxMode)
	assert.False(t, cfg.Sanitize)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoadReadsConfigFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	require.NoError(t, writeConfigFixture(home, strings.Join([]string{
		"version = 1",
		"",
		"[layers]",
		"count = 3",
		"seed = 42",
		"",
		"[output]",
		"dir = \"/tmp/layers\"",
		"summary = \"report.html\"",
		"",
		"[decode]",
		"malformed_row = \"fail\"",
		"",
		"[stats]",
		"min_max_mode = \"independent\"",
		"",
		"[report]",
		"sanitize = true",
	}, "\n")))

	cfg, err := Load(viper.New())
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(home, ".layerstats", "config.toml"), cfg.Path)
	assert.Equal(t, 3, cfg.LayerCount)
	require.NotNil(t, cfg.Seed)
	assert.Equal(t, int64(42), *cfg.Seed)
	assert.Equal(t, "/tmp/layers", cfg.OutputDir)
	assert.Equal(t, "report.html", cfg.Files.Summary)
	assert.Equal(t, "output.csv", cfg.Files.Layers)
	assert.Equal(t, csvcodec.Fail, cfg.Decode.MalformedRow)
	assert.Equal(t, csvcodec.Skip, cfg.Decode.MalformedCircle)
	assert.Equal(t, domain.MinMaxIndependent, cfg.MinMaxMode)
	assert.True(t, cfg.Sanitize)
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("LAYERSTATS_LAYERS_COUNT", "7")
	t.Setenv("LAYERSTATS_OUTPUT_DIR", "/srv/out")

	cfg, err := Load(viper.New())
	require.NoError(t, err)

	assert.Equal(t, 7, cfg.LayerCount)
	assert.Equal(t, "/srv/out", cfg.OutputDir)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{name: "future version", content: "version = 99\n", wantErr: "unsupported config schema version 99"},
		{name: "negative count", content: "[layers]\ncount = -1\n", wantErr: "layers.count"},
		{name: "unknown tolerance", content: "[decode]\ninvalid_number = \"ignore\"\n", wantErr: "decode.invalid_number"},
		{name: "unknown min max mode", content: "[stats]\nmin_max_mode = \"median\"\n", wantErr: "stats.min_max_mode"},
		{name: "output name escapes dir", content: "[output]\nsummary = \"../report.html\"\n", wantErr: "output.summary"},
		{name: "inverted circle range", content: "[generator]\nmin_circles = 60\n", wantErr: "min_circles"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			home := t.TempDir()
			t.Setenv("HOME", home)
			require.NoError(t, writeConfigFixture(home, tt.content))

			_, err := Load(viper.New())
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrInvalidConfig)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoadRejectsMalformedFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	require.NoError(t, writeConfigFixture(home, "[layers\ncount = "))

	_, err := Load(viper.New())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read config file")
}

func TestWriteFileThenLoadRoundTrip(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	want := Defaults()
	seed := int64(7)
	want.Seed = &seed
	want.LayerCount = 9
	want.MinMaxMode = domain.MinMaxIndependent

	path, err := DefaultPath()
	require.NoError(t, err)
	require.NoError(t, WriteFile(path, want))

	got, err := Load(viper.New())
	require.NoError(t, err)

	want.Path = path
	assert.Equal(t, want, got)

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestEncodeOmitsUnsetSeed(t *testing.T) {
	data, err := Encode(Defaults())
	require.NoError(t, err)

	text := string(data)
	assert.Contains(t, text, "version = 1")
	assert.Contains(t, text, "[layers]")
	assert.Contains(t, text, "count = 5")
	assert.NotContains(t, text, "seed")
	assert.Contains(t, text, "min_max_mode = 'legacy'")
}

func writeConfigFixture(home, content string) error {
	dir := filepath.Join(home, ".layerstats")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	return os.WriteFile(filepath.Join(dir, "config.toml"), []byte(content), 0o644)
}
