package app

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// Environment variables read by ApplyEnv.
const (
	EnvHome     = "KMACRYPT_HOME"
	EnvLogLevel = "KMACRYPT_LOG_LEVEL"
	EnvLogFile  = "KMACRYPT_LOG_FILE"
)

// ConfigFileName is the name of the config file inside Home.
const ConfigFileName = "config.toml"

// Files holds the default file names used when a command is not given one.
type Files struct {
	Cryptogram   string `toml:"cryptogram"`
	ECCryptogram string `toml:"ec_cryptogram"`
	Message      string `toml:"message"`
	PublicKey    string `toml:"public_key"`
	PrivateKey   string `toml:"private_key"`
	Signature    string `toml:"signature"`
}

// Config holds runtime wiring options for building the app.
type Config struct {
	Home     string `toml:"-"`         // config directory, e.g. $HOME/.kmacrypt
	Dir      string `toml:"dir"`       // base for relative file names; empty is the working directory
	LogLevel string `toml:"log_level"` // logrus level name
	LogFile  string `toml:"log_file"`  // optional rotated log file
	Files    Files  `toml:"files"`
}

// DefaultConfig returns the built-in defaults for home.
func DefaultConfig(home string) Config {
	return Config{
		Home:     home,
		LogLevel: "warn",
		Files: Files{
			Cryptogram:   "cryptogram.txt",
			ECCryptogram: "cryptogram.txt",
			Message:      "originalMessage.txt",
			PublicKey:    "publicKey.txt",
			PrivateKey:   "privateKey.txt",
			Signature:    "signature.txt",
		},
	}
}

// DefaultHome returns $KMACRYPT_HOME, or ~/.kmacrypt when it is unset.
func DefaultHome() (string, error) {
	if h := os.Getenv(EnvHome); h != "" {
		return h, nil
	}
	dir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, ".kmacrypt"), nil
}

// LoadConfig decodes the TOML file at path over the defaults for home. An
// empty path means Home/config.toml, which may be absent.
func LoadConfig(home, path string) (Config, error) {
	cfg := DefaultConfig(home)
	explicit := path != ""
	if !explicit {
		path = filepath.Join(home, ConfigFileName)
	}

	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return DefaultConfig(home), nil
		}
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("config %s: unsupported key %q", path, undecoded[0].String())
	}
	cfg.Home = home
	cfg.Files.fillFrom(DefaultConfig(home).Files)
	return cfg, nil
}

// LoadEnvFile loads KEY=value pairs from envFile into the environment without
// overriding variables that are already set. A missing file is ignored.
func LoadEnvFile(envFile string) error {
	if envFile == "" {
		envFile = ".env"
	}
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("env file %s: %w", envFile, err)
	}
	return nil
}

// ApplyEnv overrides cfg with the KMACRYPT_* environment variables.
func (c *Config) ApplyEnv() {
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.LogLevel = v
	}
	if v := os.Getenv(EnvLogFile); v != "" {
		c.LogFile = v
	}
}

// fillFrom replaces empty names with the defaults in d.
func (f *Files) fillFrom(d Files) {
	set := func(dst *string, def string) {
		if *dst == "" {
			*dst = def
		}
	}
	set(&f.Cryptogram, d.Cryptogram)
	set(&f.ECCryptogram, d.ECCryptogram)
	set(&f.Message, d.Message)
	set(&f.PublicKey, d.PublicKey)
	set(&f.PrivateKey, d.PrivateKey)
	set(&f.Signature, d.Signature)
}
