package cmd

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/x-cray/logrus-prefixed-formatter"

	"github.com/c9s/bingx/pkg/cmd/cmdutil"
)

var RootCmd = &cobra.Command{
	Use:   "bingx",
	Short: "bingx perpetual swap client",
	Long:  "command line client of the bingx perpetual swap rest api",

	// SilenceUsage is an option to silence usage when an error occurs.
	SilenceUsage: true,

	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if viper.GetBool("debug") {
			log.StandardLogger().SetLevel(log.DebugLevel)
		}

		return nil
	},
}

func init() {
	RootCmd.PersistentFlags().Bool("debug", false, "debug flag")
	RootCmd.PersistentFlags().Bool("json", false, "print the raw result as json")
	RootCmd.PersistentFlags().String("dotenv", ".env.local", "the dotenv file you want to load")

	// A flag can be 'persistent' meaning that this flag will be available to
	// the command it's assigned to as well as every command under that command.
	// For global flags, assign a flag as a persistent flag on the root.
	cmdutil.PersistentFlags(RootCmd.PersistentFlags())
}

// loadDotenv loads the dotenv files before the flags are parsed, the variables
// that are already set are not overridden.
func loadDotenv(args []string) error {
	dotenvFile := ".env.local"
	for i, arg := range args {
		if strings.HasPrefix(arg, "--dotenv=") {
			dotenvFile = strings.TrimPrefix(arg, "--dotenv=")
		} else if arg == "--dotenv" && i+1 < len(args) {
			dotenvFile = args[i+1]
		}
	}

	for _, f := range []string{dotenvFile, ".env"} {
		if _, err := os.Stat(f); err != nil {
			continue
		}

		if err := godotenv.Load(f); err != nil {
			return errors.Wrapf(err, "error loading dotenv file %s", f)
		}
	}

	return nil
}

func Execute() {
	if err := loadDotenv(os.Args[1:]); err != nil {
		log.WithError(err).Fatal("failed to load dotenv files")
	}

	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))

	// Enable environment variable binding, the env vars are not overloaded yet.
	viper.AutomaticEnv()

	// Once the flags are defined, we can bind config keys with flags.
	if err := viper.BindPFlags(RootCmd.PersistentFlags()); err != nil {
		log.WithError(err).Errorf("failed to bind persistent flags. please check the flag settings.")
	}

	if err := viper.BindPFlags(RootCmd.Flags()); err != nil {
		log.WithError(err).Errorf("failed to bind local flags. please check the flag settings.")
	}

	log.SetFormatter(&prefixed.TextFormatter{})

	if err := RootCmd.Execute(); err != nil {
		log.WithError(err).Fatalf("cannot execute command")
	}
}
