package flags

import (
	"os"
	"strings"

	"github.com/spf13/pflag"
)

const (
	// Env vars
	EnvVarConfigFile = "HOSTMCP_CONFIG_FILE"
	EnvVarLogPath    = "HOSTMCP_LOG_PATH"
	EnvVarLogLevel   = "HOSTMCP_LOG_LEVEL"
	EnvVarAPIKey     = "HOSTMCP_API_KEY"
	EnvVarBaseURL    = "HOSTMCP_BASE_URL"

	// Defaults
	DefaultConfigFile = ".hostmcp.toml"
	DefaultLogPath    = ""
	DefaultLogLevel   = "info"

	// Flag names
	FlagNameConfigFile = "config-file"
	FlagNameLogPath    = "log-path"
	FlagNameLogLevel   = "log-level"
)

var (
	ConfigFile string
	LogPath    string
	LogLevel   string
)

func InitFlags(fs *pflag.FlagSet) {
	initConfigFile(fs)
	initLogger(fs)
}

func initConfigFile(fs *pflag.FlagSet) {
	if ConfigFile == "" {
		if env := strings.TrimSpace(os.Getenv(EnvVarConfigFile)); env != "" {
			ConfigFile = env
		} else {
			ConfigFile = DefaultConfigFile
		}
	}
	fs.StringVar(&ConfigFile, FlagNameConfigFile, ConfigFile, "path to config file")
}

func initLogger(fs *pflag.FlagSet) {
	if LogPath == "" {
		if env := strings.TrimSpace(os.Getenv(EnvVarLogPath)); env != "" {
			LogPath = env
		} else {
			LogPath = DefaultLogPath
		}
	}
	fs.StringVar(&LogPath, FlagNameLogPath, LogPath, "path to generated log file")

	if LogLevel == "" {
		if env := strings.TrimSpace(os.Getenv(EnvVarLogLevel)); env != "" {
			LogLevel = strings.ToLower(env)
		} else {
			LogLevel = DefaultLogLevel
		}
	}
	fs.StringVar(&LogLevel, FlagNameLogLevel, LogLevel, "log level for hostmcp logs")
}

// APIKey returns the provider API key from the environment. Credentials are
// deliberately env-only; they never appear in the config file or on flags.
func APIKey() string {
	return strings.TrimSpace(os.Getenv(EnvVarAPIKey))
}

// BaseURL returns the provider base URL override from the environment,
// or empty when unset.
func BaseURL() string {
	return strings.TrimSpace(os.Getenv(EnvVarBaseURL))
}
