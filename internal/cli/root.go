/*
 * root.go, part of molview.
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

// Package cli implements the molview command: it builds the molecules in
// the table, frames them and hands the result to a renderer as JSON.
package cli

import (
	"github.com/cockroachdb/errors"
	"github.com/rmera/molview/internal/config"
	"github.com/rmera/molview/internal/logging"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// Version is set at build time.
var Version = "dev"

// rootOptions holds the global flags.
type rootOptions struct {
	ConfigPath string
	LogLevel   string
	LogFormat  string
	FOV        float64
	Padding    float64
}

// app carries what the subcommands need once the global flags are parsed.
type app struct {
	cfg *config.Config
	log *zap.Logger
}

// NewRootCommand returns the molview command with all its subcommands.
func NewRootCommand() *cobra.Command {
	opts := &rootOptions{}
	a := &app{log: logging.Nop()}
	cmd := &cobra.Command{
		Use:     "molview",
		Short:   "Builds small molecules from their VSEPR geometry and frames them for a camera",
		Version: Version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(cmd, opts)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	pf := cmd.PersistentFlags()
	pf.StringVarP(&opts.ConfigPath, "config", "c", "", "YAML configuration file")
	pf.StringVar(&opts.LogLevel, "log-level", config.DefaultLogLevel, "log level (debug, info, warn, error)")
	pf.StringVar(&opts.LogFormat, "log-format", config.DefaultLogFormat, "log format (console, json)")
	pf.Float64Var(&opts.FOV, "fov", config.DefaultFieldOfView, "vertical field of view of the camera, in degrees")
	pf.Float64Var(&opts.Padding, "padding", config.DefaultPadding, "room left around the molecule, as a distance multiplier (>= 1)")

	cmd.AddCommand(
		newListCmd(),
		newBuildCmd(a),
		newFrameCmd(a),
		newPlotCmd(a),
	)
	return cmd
}

// init loads the configuration, lets explicitly given flags override it and
// sets up the logger, which writes to the command's error stream.
func (a *app) init(cmd *cobra.Command, opts *rootOptions) error {
	cfg, err := config.Read(opts.ConfigPath)
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.Log.Level = opts.LogLevel
	}
	if flags.Changed("log-format") {
		cfg.Log.Format = opts.LogFormat
	}
	if flags.Changed("fov") {
		cfg.Camera.FieldOfView = opts.FOV
	}
	if flags.Changed("padding") {
		cfg.Camera.Padding = opts.Padding
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	log, err := logging.New(cfg.Log.Level, cfg.Log.Format, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	a.cfg, a.log = cfg, log
	a.log.Debug("configuration loaded",
		zap.String("config", opts.ConfigPath),
		zap.Float64("fov", cfg.Camera.FieldOfView),
		zap.Float64("padding", cfg.Camera.Padding),
		zap.Float64("default_distance", cfg.Camera.DefaultDistance))
	return nil
}

// Execute runs the root command with the process arguments.
func Execute() int {
	cmd := NewRootCommand()
	if err := cmd.Execute(); err != nil {
		cmd.PrintErrf("molview: %v\n", err)
		if errors.Is(err, errUsage) {
			return 2
		}
		return 1
	}
	return 0
}

// errUsage marks errors in the arguments given by the user.
var errUsage = errors.New("usage error")
