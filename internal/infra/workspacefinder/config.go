package workspacefinder

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/aalvaropc/pnladl/internal/domain"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Environment overrides, read from <root>/.env and then the process
// environment. Process values win.
const (
	EnvReferenceYear = "PNLADL_REFERENCE_YEAR"
	EnvResponsesDir  = "PNLADL_RESPONSES_DIR"
	EnvMasking       = "PNLADL_MASKING"
	EnvSaveResponses = "PNLADL_SAVE_RESPONSES"
)

// LoadConfig loads pnladl.yaml (or pnladl.yml) from the workspace root,
// applies defaults and then environment overrides.
func LoadConfig(root string) (domain.Config, error) {
	cfg := domain.DefaultConfig()

	path, ok := ConfigPath(root)
	if !ok {
		path = filepath.Join(root, ConfigFileName)
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, &domain.OpError{
			Op:   "workspacefinder.loadconfig",
			Kind: domain.KindNotFound,
			Path: path,
			Err:  err,
		}
	}

	var y yamlConfig
	if err := yaml.Unmarshal(b, &y); err != nil {
		return cfg, &domain.OpError{
			Op:   "workspacefinder.loadconfig",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}

	// Apply parsed values on top of defaults.
	if y.Pnladl.Masking.Enabled != nil {
		cfg.Masking.Enabled = *y.Pnladl.Masking.Enabled
	}
	if y.Pnladl.Decoder.ReferenceYear != nil {
		cfg.Decoder.ReferenceYear = *y.Pnladl.Decoder.ReferenceYear
	}
	if y.Pnladl.Responses.Save != nil {
		cfg.Responses.Save = *y.Pnladl.Responses.Save
	}
	if y.Pnladl.Responses.Index != nil {
		cfg.Responses.Index = *y.Pnladl.Responses.Index
	}
	if y.Pnladl.Paths.MessagesDir != "" {
		cfg.Paths.MessagesDir = y.Pnladl.Paths.MessagesDir
	}
	if y.Pnladl.Paths.FlightsDir != "" {
		cfg.Paths.FlightsDir = y.Pnladl.Paths.FlightsDir
	}
	if y.Pnladl.Paths.ResponsesDir != "" {
		cfg.Paths.ResponsesDir = y.Pnladl.Paths.ResponsesDir
	}
	if y.Pnladl.Paths.LogsDir != "" {
		cfg.Paths.LogsDir = y.Pnladl.Paths.LogsDir
	}

	env, err := readEnv(root)
	if err != nil {
		return cfg, err
	}
	if err := applyEnv(&cfg, env); err != nil {
		return cfg, &domain.OpError{
			Op:   "workspacefinder.env",
			Kind: domain.KindInvalidConfig,
			Path: root,
			Err:  err,
		}
	}

	return cfg, nil
}

// readEnv merges <root>/.env with the process environment.
func readEnv(root string) (map[string]string, error) {
	out := map[string]string{}

	path := filepath.Join(root, ".env")
	if _, err := os.Stat(path); err == nil {
		fileEnv, err := godotenv.Read(path)
		if err != nil {
			return nil, &domain.OpError{
				Op:   "workspacefinder.dotenv",
				Kind: domain.KindInvalidConfig,
				Path: path,
				Err:  err,
			}
		}
		for k, v := range fileEnv {
			out[k] = v
		}
	}

	for _, k := range []string{EnvReferenceYear, EnvResponsesDir, EnvMasking, EnvSaveResponses} {
		if v, ok := os.LookupEnv(k); ok {
			out[k] = v
		}
	}
	return out, nil
}

func applyEnv(cfg *domain.Config, env map[string]string) error {
	if v := strings.TrimSpace(env[EnvReferenceYear]); v != "" {
		year, err := strconv.Atoi(v)
		if err != nil || year <= 0 {
			return fmt.Errorf("%s: expected a positive year, got %q", EnvReferenceYear, v)
		}
		cfg.Decoder.ReferenceYear = year
	}
	if v := strings.TrimSpace(env[EnvResponsesDir]); v != "" {
		cfg.Paths.ResponsesDir = v
	}
	if v := strings.TrimSpace(env[EnvMasking]); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvMasking, err)
		}
		cfg.Masking.Enabled = b
	}
	if v := strings.TrimSpace(env[EnvSaveResponses]); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvSaveResponses, err)
		}
		cfg.Responses.Save = b
	}
	return nil
}

type yamlConfig struct {
	Pnladl struct {
		Masking struct {
			Enabled *bool `yaml:"enabled"`
		} `yaml:"masking"`

		Decoder struct {
			ReferenceYear *int `yaml:"reference_year"`
		} `yaml:"decoder"`

		Responses struct {
			Save  *bool `yaml:"save"`
			Index *bool `yaml:"index"`
		} `yaml:"responses"`

		Paths struct {
			MessagesDir  string `yaml:"messages_dir"`
			FlightsDir   string `yaml:"flights_dir"`
			ResponsesDir string `yaml:"responses_dir"`
			LogsDir      string `yaml:"logs_dir"`
		} `yaml:"paths"`
	} `yaml:"pnladl"`
}
