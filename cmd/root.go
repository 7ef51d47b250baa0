package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/ygelfand/tocview/internal/commands"
	"github.com/ygelfand/tocview/internal/config"
	"github.com/ygelfand/tocview/internal/ui"
)

var (
	cfgFile    string
	outputType string
	columns    []string
	theme      string
	configErr  error
)

var rootCmd = &cobra.Command{
	Use:           "tocview",
	Short:         "Render a table of contents as an HTML table",
	Version:       config.Version,
	Long:          `tocview renders its compiled-in book records as an HTML table, or as a terminal table, JSON, YAML, CSV or text`,
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return configErr
	},
	RunE: commands.RunWithView(runRender),
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		ui.RenderError(err)
		os.Exit(1)
	}
}

func GetRootCmd() *cobra.Command {
	return rootCmd
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf("tocview version {{.Version}} (commit: %s, date: %s)\n", config.GitCommit, config.BuildDate))
	cobra.OnInitialize(initConfig)

	rootCmd.AddGroup(&cobra.Group{ID: "output", Title: "Output"})
	rootCmd.AddGroup(&cobra.Group{ID: "tui", Title: "Interactive"})

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.tocview.yaml)")
	rootCmd.PersistentFlags().StringVarP(&outputType, "output", "o", config.FormatHTML, "Output format (html, table, json, json-pretty, yaml, csv, txt)")
	viper.BindPFlag("output", rootCmd.PersistentFlags().Lookup("output"))

	rootCmd.PersistentFlags().CountP("verbose", "v", "increase verbosity")
	viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))

	rootCmd.PersistentFlags().StringSliceVar(&columns, "columns", nil, "columns to render, in order (default id,title,author,date)")
	viper.BindPFlag("columns", rootCmd.PersistentFlags().Lookup("columns"))

	rootCmd.PersistentFlags().StringVar(&theme, "theme", "", "color theme for terminal output")
	viper.BindPFlag("theme", rootCmd.PersistentFlags().Lookup("theme"))
}

func initConfig() {
	configErr = loadConfig()
}

func loadConfig() error {
	cfg := config.Get()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("failed to get home directory: %w", err)
		}

		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".tocview")
	}

	viper.SetEnvPrefix("TOCVIEW")
	viper.AutomaticEnv()

	// Explicitly bind env vars that don't have corresponding flags
	for _, key := range []string{"table_class", "head_class", "log_file"} {
		if err := viper.BindEnv(key); err != nil {
			return fmt.Errorf("failed to bind env for %s: %w", key, err)
		}
	}

	if err := viper.ReadInConfig(); err == nil {
		cfg.ConfigPath = viper.ConfigFileUsed()
	} else if cfgFile != "" {
		return fmt.Errorf("failed to read config %s: %w", cfgFile, err)
	}

	// Unmarshal the loaded config into our struct
	if err := viper.Unmarshal(cfg); err != nil {
		return fmt.Errorf("failed to parse config: %w", err)
	}
	// nil slices are skipped by Unmarshal, so set explicitly
	cfg.Columns = viper.GetStringSlice("columns")

	if cfg.OutputFormat == "" {
		cfg.OutputFormat = config.FormatHTML
	}
	if err := config.ValidateFormat(cfg.OutputFormat); err != nil {
		return err
	}
	cfg.OutputFormat = config.NormalizeFormat(cfg.OutputFormat)

	cfg.SetupLogging()
	if cfg.ConfigPath != "" {
		cfg.Logger.Debug("Config: loaded", "path", cfg.ConfigPath)
	}
	return nil
}
