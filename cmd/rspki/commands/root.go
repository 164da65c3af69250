package commands

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/apex/log"
	clihandler "github.com/apex/log/handlers/cli"
	"github.com/caarlos0/ctrlc"
	"github.com/fatih/color"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ziliangpeng/rspki/internal/app"
)

var (
	cfgFile string
	appCtx  *app.App
)

// Execute runs the CLI and logs any error before returning it.
func Execute() error {
	root := newRootCmd(viper.New())
	if err := root.Execute(); err != nil {
		log.Error(err.Error())
		return err
	}
	return nil
}

func newRootCmd(v *viper.Viper) *cobra.Command {
	root := &cobra.Command{
		Use:           "rspki",
		Short:         "Generate probable primes and textbook RSA key pairs",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			log.SetHandler(clihandler.New(cmd.ErrOrStderr()))
			if err := initConfig(v); err != nil {
				return err
			}
			level := log.InfoLevel
			if v.GetBool("verbose") {
				level = log.DebugLevel
			}
			log.SetLevel(level)
			color.NoColor = !v.GetBool("color")
			if used := v.ConfigFileUsed(); used != "" {
				log.WithField("file", used).Debug("using config file")
			}

			cfg, err := app.LoadConfig(v)
			if err != nil {
				return err
			}
			w, err := app.NewWire(cfg, log.Log)
			if err != nil {
				return err
			}
			appCtx = app.New(cfg, w)
			return nil
		},
	}

	app.SetDefaults(v)

	pf := root.PersistentFlags()
	pf.StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/rspki/config.yaml)")
	pf.BoolP("verbose", "V", false, "verbose output")
	pf.Bool("color", false, "colorize output")
	pf.Int(app.KeyBits, 1024, "bit length of each prime")
	pf.Int(app.KeyRounds, 40, "Miller-Rabin rounds per candidate")
	pf.Int(app.KeyMaxAttempts, 0, "candidates to try per prime before giving up (0 = unlimited)")
	pf.String(app.KeySeed, "", "seed a reproducible random source (testing only)")
	pf.Bool(app.KeyParallel, false, "generate p and q concurrently")
	for _, name := range []string{"verbose", "color", app.KeyBits, app.KeyRounds, app.KeyMaxAttempts, app.KeySeed, app.KeyParallel} {
		_ = v.BindPFlag(name, pf.Lookup(name))
	}
	_ = v.BindEnv("color", "CLICOLOR")

	root.AddCommand(primeCmd(), keygenCmd(), benchCmd(v))
	root.CompletionOptions.HiddenDefaultCmd = true
	return root
}

// initConfig reads in config file and ENV variables if set.
func initConfig(v *viper.Viper) error {
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return err
		}
		v.AddConfigPath(filepath.Join(home, ".config", "rspki"))
		v.SetConfigType("yaml")
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("rspki")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok && cfgFile == "" {
			return nil
		}
		return err
	}
	return nil
}

// interruptible runs task under ctrlc, cancelling its context on Ctrl-C.
func interruptible(cmd *cobra.Command, task func(ctx context.Context) error) error {
	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	if err := ctrlc.Default.Run(ctx, func() error { return task(ctx) }); err != nil {
		if errors.As(err, &ctrlc.ErrorCtrlC{}) {
			log.Warn("Interrupted, exiting...")
		}
		return err
	}
	return nil
}
