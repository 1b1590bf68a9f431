package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/ukaji3/xlartifact-go/pkg/xlartifact"
	"github.com/ukaji3/xlartifact-go/pkg/xlartifact/output"
)

// Configuration keys. Each is also readable from XLARTIFACT_<KEY>.
const (
	keyArtifactsPath = "artifacts_path"
	keyOutputFormat  = "output_format"
	keyMaxRows       = "max_rows"
	keyMaxCols       = "max_cols"
	keyVerbose       = "verbose"
)

// app carries the per-invocation configuration and output streams.
type app struct {
	v      *viper.Viper
	stdout io.Writer
	stderr io.Writer
}

func newApp(stdout, stderr io.Writer, defaultPath string) *app {
	v := viper.New()
	v.SetDefault(keyArtifactsPath, defaultPath)
	v.SetDefault(keyOutputFormat, string(output.FormatPretty))
	v.SetDefault(keyMaxRows, xlartifact.DefaultMaxRows)
	v.SetDefault(keyMaxCols, xlartifact.DefaultMaxCols)
	v.SetEnvPrefix("XLARTIFACT")
	v.AutomaticEnv()

	return &app{v: v, stdout: stdout, stderr: stderr}
}

func newRootCmd(a *app) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "xlartifact",
		Short: "Extract structured data from spreadsheet artifacts",
		Long: `xlartifact lists the workbooks in an artifacts folder and extracts sheet
surveys, sheet content, schema fields and parameter tables from them.`,
		Version:       version,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.loadConfig(cmd)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.String("config", "", "config file (default: ./xlartifact.yaml or ~/.config/xlartifact/config.yaml)")
	flags.String("artifacts-path", "", "path to the artifacts folder (default: the executable's directory)")
	flags.String("output-format", "", "output format: pretty, json, or yaml (default \"pretty\")")
	flags.Bool("verbose", false, "log diagnostics to stderr")

	mustBindPFlag(a.v, keyArtifactsPath, flags.Lookup("artifacts-path"))
	mustBindPFlag(a.v, keyOutputFormat, flags.Lookup("output-format"))
	mustBindPFlag(a.v, keyVerbose, flags.Lookup("verbose"))

	rootCmd.AddCommand(
		newListCmd(a),
		newTabsCmd(a),
		newContentCmd(a),
		newSchemaCmd(a),
		newParametersCmd(a),
	)
	return rootCmd
}

// mustBindPFlag binds a config key to a flag defined alongside it. A failure
// means the flag was never registered.
func mustBindPFlag(v *viper.Viper, key string, flag *pflag.Flag) {
	if err := v.BindPFlag(key, flag); err != nil {
		panic(fmt.Sprintf("bind flag for %s: %v", key, err))
	}
}

// loadConfig reads the config file, if any. An explicit --config must exist.
func (a *app) loadConfig(cmd *cobra.Command) error {
	cfgFile, _ := cmd.Flags().GetString("config")
	if cfgFile != "" {
		a.v.SetConfigFile(cfgFile)
	} else {
		a.v.SetConfigName("xlartifact")
		a.v.SetConfigType("yaml")
		a.v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			a.v.AddConfigPath(filepath.Join(home, ".config", "xlartifact"))
		}
	}

	if err := a.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return fmt.Errorf("reading config: %w", err)
		}
		return nil
	}
	a.logger().Debug("using config file", "path", a.v.ConfigFileUsed())
	return nil
}

func (a *app) logger() *slog.Logger {
	level := slog.LevelWarn
	if a.v.GetBool(keyVerbose) {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(a.stderr, &slog.HandlerOptions{Level: level}))
}

func (a *app) extractor() (*xlartifact.Extractor, error) {
	return xlartifact.New(xlartifact.Options{
		ArtifactsPath: a.v.GetString(keyArtifactsPath),
		Logger:        a.logger(),
	})
}

// render writes v in the configured format. writePretty is used for the
// pretty format when the command has a text rendering; otherwise pretty
// falls back to indented JSON.
func (a *app) render(v any, writePretty func(io.Writer) error) error {
	format, err := output.ParseFormat(a.v.GetString(keyOutputFormat))
	if err != nil {
		return err
	}

	switch format {
	case output.FormatYAML:
		data, err := output.ToYAML(v)
		if err != nil {
			return fmt.Errorf("serialization failed: %w", err)
		}
		_, err = a.stdout.Write(data)
		return err
	case output.FormatPretty:
		if writePretty != nil {
			return writePretty(a.stdout)
		}
	}

	data, err := output.ToJSON(v, true)
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}
	_, err = fmt.Fprintln(a.stdout, string(data))
	return err
}
