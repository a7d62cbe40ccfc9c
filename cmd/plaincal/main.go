package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/username/plaincal/internal/calendar"
	"github.com/username/plaincal/internal/config"
	"github.com/username/plaincal/internal/output"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	configPath string
	logger     = zap.NewNop()
)

func main() {
	if err := newRootCmd(os.Stdout).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd(stdout io.Writer) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "plaincal",
		Short:         "Plain-text calendar listing",
		Long:          "Generate a plain-text listing with one line per day, separators at week and month boundaries and weekend markers",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Load config to get log file path
			cfg, err := config.Load(configPath, cmd.Flags())
			if err == nil && cfg.Log.File != "" {
				logger, err = initFileLogger(cfg.Log.File, cfg.Log.Level)
				if err != nil {
					initLogger(cfg.Log.Level) // Fallback to console
				}
			} else if err == nil {
				initLogger(cfg.Log.Level)
			} else {
				initLogger("info")
			}
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config file path (default: ./plaincal.yaml if present)")
	rootCmd.PersistentFlags().String("log-file", "", "Write JSON logs to this file instead of stderr")
	rootCmd.PersistentFlags().String("log-level", "", "Log level (debug, info, warn, error)")

	rootCmd.SetOut(stdout)
	rootCmd.AddCommand(generateCmd())
	rootCmd.AddCommand(configCmd())

	return rootCmd
}

func generateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Write the calendar listing for a date range",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath, cmd.Flags())
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			calCfg, err := cfg.CalendarConfig()
			if err != nil {
				return err
			}

			results, err := calendar.NewGenerator(calCfg, logger).Generate(cfg.Range.From, cfg.Range.To)
			if err != nil {
				return err
			}

			var w output.Writer
			if cfg.Output.Stdout {
				w = output.NewStreamWriter("stdout", cmd.OutOrStdout())
			} else {
				w = output.NewFileWriter(cfg.Output.Path, logger)
			}

			if err := w.Write(results.String()); err != nil {
				logger.Error("Failed to write calendar", zap.Error(err))
				return err
			}

			if !cfg.Output.Stdout {
				fmt.Fprintln(cmd.OutOrStdout(), "File written successfully.")
			}
			return nil
		},
	}

	cmd.Flags().String("from", "", "First day of the range (YYYY-MM-DD)")
	cmd.Flags().String("to", "", "Last day of the range, inclusive (YYYY-MM-DD)")
	cmd.Flags().StringP("output", "o", "", "Output file path")
	cmd.Flags().Bool("stdout", false, "Print the listing instead of writing a file")
	cmd.Flags().Int("line-length", 0, "Width of separator and day lines")
	cmd.Flags().String("day-sep", "", "Character of the plain day separator")
	cmd.Flags().String("week-sep", "", "Character of the week and month separator")
	cmd.Flags().String("weekend-marker", "", "Character repeated to mark weekend days")

	return cmd
}

func configCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath, cmd.Flags())
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			data, err := cfg.YAML()
			if err != nil {
				return err
			}

			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
}

func initLogger(level string) {
	config := zap.NewProductionConfig()
	config.EncoderConfig.TimeKey = "timestamp"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	var zapLevel zapcore.Level
	if err := zapLevel.UnmarshalText([]byte(level)); err == nil {
		config.Level = zap.NewAtomicLevelAt(zapLevel)
	}

	var err error
	logger, err = config.Build()
	if err != nil {
		panic(fmt.Sprintf("failed to initialize logger: %v", err))
	}
}

func initFileLogger(logFile string, level string) (*zap.Logger, error) {
	// Setup lumberjack for log rotation
	logWriter := &lumberjack.Logger{
		Filename:   logFile,
		MaxSize:    10, // MB
		MaxBackups: 3,
		MaxAge:     28, // days
		Compress:   true,
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.TimeKey = "timestamp"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	var zapLevel zapcore.Level
	if err := zapLevel.UnmarshalText([]byte(level)); err != nil {
		zapLevel = zapcore.InfoLevel
	}

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderConfig),
		zapcore.AddSync(logWriter),
		zapLevel,
	)

	return zap.New(core), nil
}
