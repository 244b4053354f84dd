package toml

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	csvcodec "github.com/bnema/layerstats/internal/adapters/codec/csv"
	"github.com/bnema/layerstats/internal/application"
	"github.com/bnema/layerstats/internal/domain"
	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"
)

const (
	configName      = "config"
	configType      = "toml"
	configDir       = ".layerstats"
	configFile      = "config.toml"
	configFileMode  = 0o644
	configDirMode   = 0o755
	envPrefix       = "LAYERSTATS"
	tempFilePattern = ".config-*.toml.tmp"
)

const (
	keyVersion         = "version"
	keyLayersCount     = "layers.count"
	keyLayersSeed      = "layers.seed"
	keyMinCircles      = "generator.min_circles"
	keyMaxCircles      = "generator.max_circles"
	keyCoordMin        = "generator.coord_min"
	keyCoordMax        = "generator.coord_max"
	keyRadiusMin       = "generator.radius_min"
	keyRadiusMax       = "generator.radius_max"
	keyOutputDir       = "output.dir"
	keyOutputLayers    = "output.layers"
	keyOutputAverages  = "output.averages"
	keyOutputSummary   = "output.summary"
	keyOutputMinMax    = "output.min_max"
	keyMalformedRow    = "decode.malformed_row"
	keyMalformedCircle = "decode.malformed_circle"
	keyInvalidNumber   = "decode.invalid_number"
	keyMinMaxMode      = "stats.min_max_mode"
	keySanitize        = "report.sanitize"
	keyLogLevel        = "log.level"
)

// Config is the resolved configuration for one run.
type Config struct {
	Path       string
	LayerCount int
	Seed       *int64
	Generator  application.GeneratorOptions
	Files      application.OutputFiles
	OutputDir  string
	Decode     csvcodec.DecodePolicy
	MinMaxMode domain.MinMaxMode
	Sanitize   bool
	LogLevel   string
}

// DefaultPath returns $HOME/.layerstats/config.toml.
func DefaultPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}

	return filepath.Join(homeDir, configDir, configFile), nil
}

func Load(cfg *viper.Viper) (Config, error) {
	if cfg == nil {
		cfg = viper.New()
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return Config{}, fmt.Errorf("resolve home directory: %w", err)
	}

	cfg.SetConfigName(configName)
	cfg.SetConfigType(configType)
	cfg.AddConfigPath(filepath.Join(homeDir, configDir))
	cfg.SetEnvPrefix(envPrefix)
	cfg.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	cfg.AutomaticEnv()
	applyDefaults(cfg)

	err = cfg.ReadInConfig()
	if err != nil {
		var configNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &configNotFound) {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
	}

	if version := cfg.GetInt(keyVersion); version > currentSchemaVersion {
		return Config{}, fmt.Errorf("%w: unsupported config schema version %d (current %d)", domain.ErrInvalidConfig, version, currentSchemaVersion)
	}

	return fromViper(cfg)
}

func applyDefaults(cfg *viper.Viper) {
	gen := application.DefaultGeneratorOptions()
	files := application.DefaultOutputFiles()
	policy := csvcodec.LenientPolicy()

	cfg.SetDefault(keyVersion, currentSchemaVersion)
	cfg.SetDefault(keyLayersCount, application.DefaultLayerCount)
	cfg.SetDefault(keyMinCircles, gen.MinCircles)
	cfg.SetDefault(keyMaxCircles, gen.MaxCircles)
	cfg.SetDefault(keyCoordMin, gen.CoordMin)
	cfg.SetDefault(keyCoordMax, gen.CoordMax)
	cfg.SetDefault(keyRadiusMin, gen.RadiusMin)
	cfg.SetDefault(keyRadiusMax, gen.RadiusMax)
	cfg.SetDefault(keyOutputDir, ".")
	cfg.SetDefault(keyOutputLayers, files.Layers)
	cfg.SetDefault(keyOutputAverages, files.Averages)
	cfg.SetDefault(keyOutputSummary, files.Summary)
	cfg.SetDefault(keyOutputMinMax, files.MinMax)
	cfg.SetDefault(keyMalformedRow, string(policy.MalformedRow))
	cfg.SetDefault(keyMalformedCircle, string(policy.MalformedCircle))
	cfg.SetDefault(keyInvalidNumber, string(policy.InvalidNumber))
	cfg.SetDefault(keyMinMaxMode, string(domain.MinMaxLegacy))
	cfg.SetDefault(keySanitize, false)
	cfg.SetDefault(keyLogLevel, "info")
}

func fromViper(cfg *viper.Viper) (Config, error) {
	out := Config{
		Path:       cfg.ConfigFileUsed(),
		LayerCount: cfg.GetInt(keyLayersCount),
		Generator: application.GeneratorOptions{
			MinCircles: cfg.GetInt(keyMinCircles),
			MaxCircles: cfg.GetInt(keyMaxCircles),
			CoordMin:   cfg.GetFloat64(keyCoordMin),
			CoordMax:   cfg.GetFloat64(keyCoordMax),
			RadiusMin:  cfg.GetFloat64(keyRadiusMin),
			RadiusMax:  cfg.GetFloat64(keyRadiusMax),
		},
		Files: application.OutputFiles{
			Layers:   cfg.GetString(keyOutputLayers),
			Averages: cfg.GetString(keyOutputAverages),
			Summary:  cfg.GetString(keyOutputSummary),
			MinMax:   cfg.GetString(keyOutputMinMax),
		},
		OutputDir: cfg.GetString(keyOutputDir),
		Sanitize:  cfg.GetBool(keySanitize),
		LogLevel:  cfg.GetString(keyLogLevel),
	}

	if cfg.IsSet(keyLayersSeed) {
		seed := cfg.GetInt64(keyLayersSeed)
		out.Seed = &seed
	}

	if out.LayerCount < 0 {
		return Config{}, fmt.Errorf("%s must not be negative: %w", keyLayersCount, domain.ErrInvalidConfig)
	}

	if err := out.Generator.Validate(); err != nil {
		return Config{}, err
	}

	if err := out.Files.Validate(); err != nil {
		return Config{}, err
	}

	var err error
	if out.Decode.MalformedRow, err = csvcodec.ParseTolerance(cfg.GetString(keyMalformedRow)); err != nil {
		return Config{}, fmt.Errorf("%s: %w", keyMalformedRow, err)
	}
	if out.Decode.MalformedCircle, err = csvcodec.ParseTolerance(cfg.GetString(keyMalformedCircle)); err != nil {
		return Config{}, fmt.Errorf("%s: %w", keyMalformedCircle, err)
	}
	if out.Decode.InvalidNumber, err = csvcodec.ParseTolerance(cfg.GetString(keyInvalidNumber)); err != nil {
		return Config{}, fmt.Errorf("%s: %w", keyInvalidNumber, err)
	}

	if out.MinMaxMode, err = domain.ParseMinMaxMode(cfg.GetString(keyMinMaxMode)); err != nil {
		return Config{}, fmt.Errorf("%s: %w", keyMinMaxMode, err)
	}

	return out, nil
}

// Encode renders the configuration as a versioned TOML document.
func Encode(c Config) ([]byte, error) {
	data, err := toml.Marshal(toSchema(c))
	if err != nil {
		return nil, fmt.Errorf("encode config: %w", err)
	}

	return data, nil
}

// WriteFile writes c to path, replacing any existing file atomically.
func WriteFile(path string, c Config) error {
	data, err := Encode(c)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), configDirMode); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	tempFile, err := os.CreateTemp(filepath.Dir(path), tempFilePattern)
	if err != nil {
		return fmt.Errorf("create temp config file: %w", err)
	}

	tempName := tempFile.Name()
	cleanup := true
	defer func() {
		if cleanup {
			_ = os.Remove(tempName)
		}
	}()

	if _, err := tempFile.Write(data); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("write temp config file: %w", err)
	}

	if err := tempFile.Chmod(configFileMode); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("chmod temp config file: %w", err)
	}

	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("close temp config file: %w", err)
	}

	if err := os.Rename(tempName, path); err != nil {
		return fmt.Errorf("replace config file: %w", err)
	}

	cleanup = false

	return nil
}

// Defaults returns the configuration used when no file or env override exists.
func Defaults() Config {
	cfg := viper.New()
	applyDefaults(cfg)

	out, err := fromViper(cfg)
	if err != nil {
		panic(fmt.Sprintf("default config is invalid: %v", err))
	}

	return out
}

func toSchema(c Config) fileSchema {
	return fileSchema{
		Version: currentSchemaVersion,
		Layers: layersSchema{
			Count: c.LayerCount,
			Seed:  c.Seed,
		},
		Generator: generatorSchema{
			MinCircles: c.Generator.MinCircles,
			MaxCircles: c.Generator.MaxCircles,
			CoordMin:   c.Generator.CoordMin,
			CoordMax:   c.Generator.CoordMax,
			RadiusMin:  c.Generator.RadiusMin,
			RadiusMax:  c.Generator.RadiusMax,
		},
		Output: outputSchema{
			Dir:      c.OutputDir,
			Layers:   c.Files.Layers,
			Averages: c.Files.Averages,
			Summary:  c.Files.Summary,
			MinMax:   c.Files.MinMax,
		},
		Decode: decodeSchema{
			MalformedRow:    string(c.Decode.MalformedRow),
			MalformedCircle: string(c.Decode.MalformedCircle),
			InvalidNumber:   string(c.Decode.InvalidNumber),
		},
		Stats:  statsSchema{MinMaxMode: string(c.MinMaxMode)},
		Report: reportSchema{Sanitize: c.Sanitize},
		Log:    logSchema{Level: c.LogLevel},
	}
}
