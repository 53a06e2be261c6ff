package domain

// Config represents the pnladl configuration loaded from pnladl.yaml.
type Config struct {
	Masking   MaskingConfig
	Decoder   DecoderConfig
	Responses ResponsesConfig
	Paths     PathsConfig
}

type MaskingConfig struct {
	Enabled bool
}

// DecoderConfig tunes message decoding.
// ReferenceYear is the year attached to DDMON flight dates; 0 means the current year.
type DecoderConfig struct {
	ReferenceYear int
}

type ResponsesConfig struct {
	Save  bool
	Index bool
}

type PathsConfig struct {
	MessagesDir  string
	FlightsDir   string
	ResponsesDir string
	LogsDir      string
}

// DefaultConfig provides sane defaults if pnladl.yaml is partially missing.
func DefaultConfig() Config {
	return Config{
		Masking: MaskingConfig{Enabled: false},
		Responses: ResponsesConfig{
			Save:  true,
			Index: true,
		},
		Paths: PathsConfig{
			MessagesDir:  "messages",
			FlightsDir:   "flights",
			ResponsesDir: "responses",
			LogsDir:      ".pnladl/logs",
		},
	}
}
