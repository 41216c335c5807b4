package main

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/casual-erp/casual-web/ccli"
	"github.com/casual-erp/casual-web/ui"
	"github.com/casual-erp/casual-web/watcher"
)

const (
	defaultAddr            = ":3000"
	defaultIdleTimeout     = 255 * time.Second
	defaultShutdownTimeout = 10 * time.Second
	productionEnv          = "production"
)

// appConfig is the effective configuration after defaults, config file,
// environment and flags have been merged, in that order of precedence.
type appConfig struct {
	Env      string    `mapstructure:"env" toml:"env"`
	LogLevel string    `mapstructure:"log_level" toml:"log_level"`
	Server   serverCfg `mapstructure:"server" toml:"server"`
	CLI      cliCfg    `mapstructure:"cli" toml:"cli"`
	UI       uiCfg     `mapstructure:"ui" toml:"ui"`
}

type serverCfg struct {
	Addr            string        `mapstructure:"addr" toml:"addr"`
	IdleTimeout     time.Duration `mapstructure:"idle_timeout" toml:"idle_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout" toml:"shutdown_timeout"`
}

type cliCfg struct {
	Binary     string `mapstructure:"binary" toml:"binary"`
	DevCommand string `mapstructure:"dev_command" toml:"dev_command"`
	Dir        string `mapstructure:"dir" toml:"dir,omitempty"`
}

type uiCfg struct {
	PublicDir    string        `mapstructure:"public_dir" toml:"public_dir"`
	OutputDir    string        `mapstructure:"output_dir" toml:"output_dir"`
	PDFPrefix    string        `mapstructure:"pdf_prefix" toml:"pdf_prefix"`
	HomeMarkdown string        `mapstructure:"home_markdown" toml:"home_markdown,omitempty"`
	Retries      int           `mapstructure:"retries" toml:"retries"`
	Interval     time.Duration `mapstructure:"interval" toml:"interval"`
}

// Production reports whether NODE_ENV selected the release binary.
func (c *appConfig) Production() bool {
	return c.Env == productionEnv
}

// flagKeys maps command-line flags onto configuration keys.
var flagKeys = map[string]string{
	"log-level":  "log_level",
	"addr":       "server.addr",
	"public-dir": "ui.public_dir",
	"output-dir": "ui.output_dir",
}

// loadConfig merges defaults, an optional config file, the environment and
// flags. NODE_ENV and CCLI_OUTPUT_DIR keep the names the cli deployment
// already uses; everything else is CASUAL_WEB_<KEY>.
func loadConfig(flags *pflag.FlagSet, file string) (*appConfig, error) {
	v := viper.New()

	v.SetDefault("env", "development")
	v.SetDefault("server.addr", defaultAddr)
	v.SetDefault("server.idle_timeout", defaultIdleTimeout)
	v.SetDefault("server.shutdown_timeout", defaultShutdownTimeout)
	v.SetDefault("cli.binary", ccli.DefaultBinary)
	v.SetDefault("cli.dev_command", ccli.DefaultDevCommand)
	v.SetDefault("cli.dir", "")
	v.SetDefault("ui.public_dir", ui.DefaultPublicDir)
	v.SetDefault("ui.output_dir", ui.DefaultOutputDir)
	v.SetDefault("ui.pdf_prefix", watcher.DefaultPDFPrefix)
	v.SetDefault("ui.home_markdown", "")
	v.SetDefault("ui.retries", watcher.DefaultRetries)
	v.SetDefault("ui.interval", watcher.DefaultInterval)

	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", file, err)
		}
	}

	v.SetEnvPrefix("CASUAL_WEB")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	if err := v.BindEnv("log_level"); err != nil {
		return nil, err
	}
	if err := v.BindEnv("env", "NODE_ENV", "CASUAL_WEB_ENV"); err != nil {
		return nil, err
	}
	if err := v.BindEnv("ui.output_dir", "CCLI_OUTPUT_DIR", "CASUAL_WEB_UI_OUTPUT_DIR"); err != nil {
		return nil, err
	}

	if flags != nil {
		for name, key := range flagKeys {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, err
				}
			}
		}
	}

	var cfg appConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "debug"
		if cfg.Production() {
			cfg.LogLevel = "info"
		}
	}
	if _, err := parseLevel(cfg.LogLevel); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// invokerConfig translates the configuration for ccli.New.
func (c *appConfig) invokerConfig(logger *slog.Logger) *ccli.Config {
	return &ccli.Config{
		Production: c.Production(),
		Binary:     c.CLI.Binary,
		DevCommand: c.CLI.DevCommand,
		Dir:        c.CLI.Dir,
		Logger:     logger,
	}
}

// uiConfig translates the configuration for ui.NewHandler.
func (c *appConfig) uiConfig(logger *slog.Logger) *ui.Config {
	return &ui.Config{
		PublicDir:    c.UI.PublicDir,
		OutputDir:    c.UI.OutputDir,
		PDFPrefix:    c.UI.PDFPrefix,
		HomeMarkdown: c.UI.HomeMarkdown,
		Retries:      c.UI.Retries,
		Interval:     c.UI.Interval,
		Logger:       logger,
	}
}

// configDump mirrors appConfig with durations as strings so the output can
// be fed back through --config.
type configDump struct {
	Env      string `toml:"env"`
	LogLevel string `toml:"log_level"`
	Server   struct {
		Addr            string `toml:"addr"`
		IdleTimeout     string `toml:"idle_timeout"`
		ShutdownTimeout string `toml:"shutdown_timeout"`
	} `toml:"server"`
	CLI cliCfg `toml:"cli"`
	UI  struct {
		PublicDir    string `toml:"public_dir"`
		OutputDir    string `toml:"output_dir"`
		PDFPrefix    string `toml:"pdf_prefix"`
		HomeMarkdown string `toml:"home_markdown,omitempty"`
		Retries      int    `toml:"retries"`
		Interval     string `toml:"interval"`
	} `toml:"ui"`
}

// dumpConfig renders the configuration as TOML.
func dumpConfig(cfg *appConfig) ([]byte, error) {
	var d configDump
	d.Env = cfg.Env
	d.LogLevel = cfg.LogLevel
	d.Server.Addr = cfg.Server.Addr
	d.Server.IdleTimeout = cfg.Server.IdleTimeout.String()
	d.Server.ShutdownTimeout = cfg.Server.ShutdownTimeout.String()
	d.CLI = cfg.CLI
	d.UI.PublicDir = cfg.UI.PublicDir
	d.UI.OutputDir = cfg.UI.OutputDir
	d.UI.PDFPrefix = cfg.UI.PDFPrefix
	d.UI.HomeMarkdown = cfg.UI.HomeMarkdown
	d.UI.Retries = cfg.UI.Retries
	d.UI.Interval = cfg.UI.Interval.String()
	return toml.Marshal(d)
}

func newConfigCommand(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration as TOML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			b, err := dumpConfig(app.cfg)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(b)
			return err
		},
	}
}
