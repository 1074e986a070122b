package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/iw2rmb/revise"
	"github.com/iw2rmb/revise/buffer"
	"github.com/iw2rmb/revise/editor"
	"github.com/iw2rmb/revise/internal/config"
	"github.com/iw2rmb/revise/internal/log"
	"github.com/iw2rmb/revise/syntax"
)

func init() {
	// Query the terminal background before Bubble Tea owns stdin, so the
	// OSC 11 reply is not read as typed input.
	_ = lipgloss.HasDarkBackground()
}

// flagKeys maps command-line flags to config keys.
var flagKeys = map[string]string{
	"debug":        "debug",
	"log-file":     "log_file",
	"line-numbers": "show_line_numbers",
	"theme":        "theme",
	"tab-width":    "tab_width",
}

func newRootCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:          "revise [file]",
		Short:        "A terminal text editor with syntax highlighting",
		Long:         `Revise edits one file at a time. Rust, Go, C and C++ files are highlighted; other files open as plain text.`,
		Version:      revise.Version(),
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, configPath)
			if err != nil {
				return err
			}
			return runEditor(cfg, args)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&configPath, "config", "c", "",
		"config file (default: $XDG_CONFIG_HOME/revise/config.yaml)")
	flags.Bool("debug", false, "log debug messages")
	flags.String("log-file", "", "write logs to this file")
	flags.BoolP("line-numbers", "n", false, "show line numbers")
	flags.String("theme", syntax.DefaultThemeName, "colour theme: default or a chroma style name")
	flags.Int("tab-width", config.Defaults().TabWidth, "tab stop width in cells")
	return cmd
}

// loadConfig resolves settings from, lowest to highest precedence: defaults,
// the config file, REVISE_ environment variables and changed flags. Without
// an explicit path a missing default config file is not an error.
func loadConfig(cmd *cobra.Command, path string) (config.Config, error) {
	v := config.NewViper(path)
	if path == "" {
		if dir, err := os.UserConfigDir(); err == nil {
			v.AddConfigPath(filepath.Join(dir, "revise"))
		}
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return config.Config{}, fmt.Errorf("reading config: %w", err)
		}
	}

	for flag, key := range flagKeys {
		if err := v.BindPFlag(key, cmd.Flags().Lookup(flag)); err != nil {
			return config.Config{}, fmt.Errorf("binding --%s: %w", flag, err)
		}
	}
	return config.FromViper(v)
}

func runEditor(cfg config.Config, args []string) error {
	if cfg.LogFile != "" {
		cleanup, err := log.InitWithTeaLog(cfg.LogFile, "revise")
		if err != nil {
			return fmt.Errorf("opening log file: %w", err)
		}
		defer cleanup()
		if cfg.Debug {
			log.SetMinLevel(log.LevelDebug)
		}
	}
	log.Info(log.CatConfig, "starting", "version", revise.Version(), "theme", cfg.Theme)

	doc := buffer.New()
	if len(args) == 1 {
		var err error
		if doc, err = buffer.OpenFile(args[0]); err != nil {
			return err
		}
	}

	theme, _ := syntax.ThemeNamed(lipgloss.DefaultRenderer(), cfg.Theme)
	p := tea.NewProgram(
		newApp(editor.Config{
			Document:     doc,
			ShowLineNums: cfg.ShowLineNumbers,
			TabWidth:     cfg.TabWidth,
			Theme:        theme,
			Style:        editor.DefaultStyle(),
		}),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running program: %w", err)
	}
	return nil
}
