/*
 * config.go, part of molview.
 *
 * Copyright 2012 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 *
 */

// Package config loads the settings of the molview command: the camera
// parameters used to frame molecules and the logging setup. Values come, in
// increasing priority, from the defaults, an optional YAML file and MOLVIEW_*
// environment variables (e.g. MOLVIEW_CAMERA_FOV).
package config

import (
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/rmera/molview/frame"
	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"
)

const envPrefix = "MOLVIEW"

const (
	DefaultFieldOfView = 75.0
	DefaultPadding     = 1.5
	DefaultLogLevel    = "info"
	DefaultLogFormat   = "console"
)

// CameraConfig holds the framing parameters.
type CameraConfig struct {
	FieldOfView     float64 `mapstructure:"fov"` //vertical, degrees
	Padding         float64 `mapstructure:"padding"`
	DefaultDistance float64 `mapstructure:"default_distance"`
}

// LogConfig holds the logger parameters.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"` //console or json
}

// Config is the full configuration of the command.
type Config struct {
	Camera CameraConfig `mapstructure:"camera"`
	Log    LogConfig    `mapstructure:"log"`
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	v.SetDefault("camera.fov", DefaultFieldOfView)
	v.SetDefault("camera.padding", DefaultPadding)
	v.SetDefault("camera.default_distance", frame.DefaultDistance)
	v.SetDefault("log.level", DefaultLogLevel)
	v.SetDefault("log.format", DefaultLogFormat)
	return v
}

// Default returns the configuration with every value at its default.
func Default() *Config {
	return &Config{
		Camera: CameraConfig{FieldOfView: DefaultFieldOfView, Padding: DefaultPadding, DefaultDistance: frame.DefaultDistance},
		Log:    LogConfig{Level: DefaultLogLevel, Format: DefaultLogFormat},
	}
}

// Read reads the YAML file at path, if path is not empty, and merges the MOLVIEW_*
// environment variables on top. The result is not validated, so callers can
// override values before calling Validate.
func Read(path string) (*Config, error) {
	v := newViper()
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "reading config file %q", path)
		}
	}
	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, errors.Wrap(err, "decoding configuration")
	}
	return cfg, nil
}

// Load is Read followed by Validate.
func Load(path string) (*Config, error) {
	cfg, err := Read(path)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Framer returns a frame.Framer with the camera parameters in C.
func (C *Config) Framer() *frame.Framer {
	return &frame.Framer{
		FieldOfView:     C.Camera.FieldOfView,
		Padding:         C.Camera.Padding,
		DefaultDistance: C.Camera.DefaultDistance,
	}
}

// Validate checks that the camera parameters can frame a molecule and that
// the log level and format are known.
func (C *Config) Validate() error {
	if err := C.Framer().Validate(); err != nil {
		return errors.Wrap(err, "invalid camera configuration")
	}
	if _, err := zapcore.ParseLevel(C.Log.Level); err != nil {
		return errors.Wrapf(err, "invalid log level")
	}
	switch C.Log.Format {
	case "console", "json":
	default:
		return errors.Newf("invalid log format %q, must be console or json", C.Log.Format)
	}
	return nil
}
