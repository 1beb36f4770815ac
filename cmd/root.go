package main

import (
	"os"

	"github.com/aukilabs/go-tooling/pkg/errors"
	"github.com/aukilabs/go-tooling/pkg/logs"
	"github.com/segmentio/encoding/json"
	"github.com/smasonuk/gosiebsp"
	"github.com/spf13/cobra"
)

var (
	configPath string
	logLevel   string
	logIndent  bool

	// conf is loaded before any subcommand runs.
	conf gosiebsp.Config
)

var rootCmd = &cobra.Command{
	Use:   "gosiebsp",
	Short: "Order and view polygon scenes with a BSP tree",
	Long: `gosiebsp builds a binary space partitioning tree from a polygon file and
uses it to draw the polygons back to front (the painter's algorithm) without a
depth buffer. It also renders a Phong-lit sphere.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	DisableAutoGenTag: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		path := configPath
		if path == "" {
			if _, err := os.Stat(gosiebsp.ConfigFileName); err == nil {
				path = gosiebsp.ConfigFileName
			}
		}

		var err error
		if conf, err = gosiebsp.LoadConfig(path); err != nil {
			return err
		}

		if cmd.Flags().Changed("log-level") {
			conf.Log.Level = logLevel
		}
		if cmd.Flags().Changed("log-indent") {
			conf.Log.Indent = logIndent
		}
		setupLogs(conf.Log)
		return nil
	},
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&configPath, "config", "", "config file (default ./"+gosiebsp.ConfigFileName+" when present)")
	flags.StringVar(&logLevel, "log-level", "info", "log level: debug, info, warning or error")
	flags.BoolVar(&logIndent, "log-indent", false, "indent json logs")
}

func setupLogs(c gosiebsp.LogConfig) {
	logs.SetLevel(logs.ParseLevel(c.Level))
	logs.Encoder = json.Marshal
	if c.Indent {
		logs.Encoder = func(v any) ([]byte, error) {
			return json.MarshalIndent(v, "", "  ")
		}
	}
	errors.Encoder = json.Marshal
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		logs.WithTag("args", os.Args[1:]).Error(err)
		os.Exit(1)
	}
}
