package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/pathquiz/config"
)

// errAnswerRejected makes the process exit with status 1 without printing
// the error again; the verdict was already shown.
var errAnswerRejected = errors.New("answer rejected")

// state is shared by all sub-commands and filled in PersistentPreRunE.
type state struct {
	v          *viper.Viper
	configFile string
	cfg        config.Config
	log        *zap.Logger
}

func newRootCmd() *cobra.Command {
	st := &state{v: config.New(), log: zap.NewNop()}

	root := &cobra.Command{
		Use:           "pathquiz",
		Short:         "Generate and grade shortest-path benchmark fixtures",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := config.BindFlags(st.v, cmd.Flags()); err != nil {
				return err
			}
			cfg, err := config.Load(st.v, st.configFile)
			if err != nil {
				return err
			}
			st.cfg = cfg
			st.log, err = newLogger(cfg.LogLevel)
			if err != nil {
				return err
			}
			st.log.Debug("configuration resolved",
				zap.Ints("node_counts", cfg.NodeCounts),
				zap.Int("max_weight", cfg.MaxWeight),
				zap.Int64("base_seed", cfg.BaseSeed),
				zap.String("output_dir", cfg.OutputDir),
				zap.String("format", cfg.Format),
			)

			return nil
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			_ = st.log.Sync()
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&st.configFile, "config", "", "config file (yaml or json)")
	pf.String("log-level", config.Default().LogLevel, "log level: debug, info, warn or error")

	root.AddCommand(
		newGenerateCmd(st),
		newSolveCmd(st),
		newValidateCmd(st),
	)

	return root
}

// newLogger builds a console logger on stderr at the given level.
func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}
	zc := zap.NewProductionConfig()
	zc.Encoding = "console"
	zc.Level = zap.NewAtomicLevelAt(lvl)
	zc.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	zc.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	zc.DisableStacktrace = true
	zc.Sampling = nil

	return zc.Build()
}
