package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/Veraticus/chartlabel/internal/common"
	"github.com/spf13/viper"
)

// Configuration keys shared by flags, the config file and CHARTLABEL_ env vars.
const (
	KeyLogLevel     = "logging.level"
	KeyLogFormat    = "logging.format"
	KeyDatabasePath = "database.path"
	KeyRenderWidth  = "render.width"
	KeyRenderHeight = "render.height"
)

// EnvPrefix prefixes every environment variable read through BindEnv.
const EnvPrefix = "CHARTLABEL"

// BindEnv lets environment variables override configuration keys. Dots in a
// key become underscores, so logging.level is read from CHARTLABEL_LOGGING_LEVEL.
func BindEnv(v *viper.Viper) {
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
}

// Settings holds the resolved application settings.
type Settings struct {
	LogLevel     string
	LogFormat    string
	DatabasePath string
	Width        int
	Height       int
}

// DefaultSettings returns the settings used when nothing is configured.
func DefaultSettings() Settings {
	return Settings{
		LogLevel:  "info",
		LogFormat: "console",
		Width:     80,
		Height:    16,
	}
}

// LoadSettings reads settings from v. It follows this precedence:
// 1. Viper configuration (flags, config file or CHARTLABEL_ env vars)
// 2. CHARTLABEL_DB for the database path
// 3. Default values
func LoadSettings(v *viper.Viper) (Settings, error) {
	s := DefaultSettings()

	if l := v.GetString(KeyLogLevel); l != "" {
		s.LogLevel = l
	}
	if f := v.GetString(KeyLogFormat); f != "" {
		s.LogFormat = f
	}
	if p := v.GetString(KeyDatabasePath); p != "" {
		s.DatabasePath = ExpandPath(p)
	}
	if w := v.GetInt(KeyRenderWidth); w != 0 {
		s.Width = w
	}
	if h := v.GetInt(KeyRenderHeight); h != 0 {
		s.Height = h
	}

	if s.DatabasePath == "" {
		s.DatabasePath = ExpandPath(os.Getenv("CHARTLABEL_DB"))
	}

	if err := s.Validate(); err != nil {
		return Settings{}, err
	}

	return s, nil
}

// Validate checks that the render dimensions are usable.
func (s Settings) Validate() error {
	if s.Width < 0 || s.Height < 0 {
		return fmt.Errorf("%w: render size %dx%d", common.ErrInvalidConfig, s.Width, s.Height)
	}
	if _, err := common.ParseLevel(s.LogLevel); err != nil {
		return err
	}
	return nil
}
