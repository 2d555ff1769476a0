package configs

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	kerrors "github.com/PolarWolf314/oauth2keys/internal/errors"
	"github.com/PolarWolf314/oauth2keys/internal/secrets"
)

const (
	// DefaultConfigFile is the settings file looked up in the working directory.
	DefaultConfigFile = "oauth2keys.toml"

	// EnvFileName is the name of the environment file inside EncryptionKey.EnvDir.
	EnvFileName = ".env"

	// EncryptionKeyName is the variable the OAuth2 server reads its encryption key from.
	EncryptionKeyName = "TRIKODER_OAUTH2_ENCRYPTION_KEY"
)

type Config struct {
	EncryptionKey EncryptionKeyConfig `toml:"encryption_key"`
	RSA           RSAConfig           `toml:"rsa"`
	Audit         AuditConfig         `toml:"audit"`
}

type EncryptionKeyConfig struct {
	EnvDir string `toml:"env_dir"`
}

type RSAConfig struct {
	PrivateKey string `toml:"private_key"`
	PublicKey  string `toml:"public_key"`
	Length     int    `toml:"length"`
}

type AuditConfig struct {
	LogPath string `toml:"log_path,omitempty"`
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		EncryptionKey: EncryptionKeyConfig{EnvDir: "."},
		RSA: RSAConfig{
			PrivateKey: filepath.Join("var", "oauth", "private.key"),
			PublicKey:  filepath.Join("var", "oauth", "public.key"),
			Length:     secrets.DefaultKeyLength,
		},
	}
}

// EnvFilePath returns the path of the .env file the encryption key goes into.
func (c *Config) EnvFilePath() string {
	return filepath.Join(c.EncryptionKey.EnvDir, EnvFileName)
}

// Load reads the settings file at path. A missing file yields the defaults
// unless mustExist is set.
func Load(path string, mustExist bool) (*Config, error) {
	config := Default()

	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) && !mustExist {
			return config, nil
		}
		return nil, fmt.Errorf("failed to read settings file %s: %w", path, err)
	}

	md, err := LoadTOML(path, config)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", kerrors.ErrInvalidConfig, path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, key := range undecoded {
			keys = append(keys, key.String())
		}
		return nil, fmt.Errorf("%w: %s: unknown keys %s", kerrors.ErrInvalidConfig, path, strings.Join(keys, ", "))
	}

	config.fillDefaults()
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	config.resolve(filepath.Dir(path))

	return config, nil
}

// Save writes config to path. An existing file is only replaced when force is set.
func Save(path string, config *Config, force bool) error {
	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("%s: %w", path, kerrors.ErrConfigExists)
	}
	if err := SaveTOML(path, config); err != nil {
		return fmt.Errorf("failed to save settings file: %w", err)
	}
	return nil
}

// Validate checks values that would otherwise fail late, after a key was generated.
func (c *Config) Validate() error {
	if c.RSA.Length < secrets.MinKeyLength {
		return fmt.Errorf("%w: rsa.length must be at least %d, got %d", kerrors.ErrInvalidConfig, secrets.MinKeyLength, c.RSA.Length)
	}
	if filepath.Clean(c.RSA.PrivateKey) == filepath.Clean(c.RSA.PublicKey) {
		return fmt.Errorf("%w: rsa.private_key and rsa.public_key must differ", kerrors.ErrInvalidConfig)
	}
	return nil
}

// fillDefaults restores defaults for keys an explicit empty value cleared.
func (c *Config) fillDefaults() {
	defaults := Default()
	if c.EncryptionKey.EnvDir == "" {
		c.EncryptionKey.EnvDir = defaults.EncryptionKey.EnvDir
	}
	if c.RSA.PrivateKey == "" {
		c.RSA.PrivateKey = defaults.RSA.PrivateKey
	}
	if c.RSA.PublicKey == "" {
		c.RSA.PublicKey = defaults.RSA.PublicKey
	}
	if c.RSA.Length == 0 {
		c.RSA.Length = defaults.RSA.Length
	}
}

// resolve makes relative paths relative to base.
func (c *Config) resolve(base string) {
	c.EncryptionKey.EnvDir = resolvePath(base, c.EncryptionKey.EnvDir)
	c.RSA.PrivateKey = resolvePath(base, c.RSA.PrivateKey)
	c.RSA.PublicKey = resolvePath(base, c.RSA.PublicKey)
	if c.Audit.LogPath != "" {
		c.Audit.LogPath = resolvePath(base, c.Audit.LogPath)
	}
}

func resolvePath(base, path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(base, path)
}
