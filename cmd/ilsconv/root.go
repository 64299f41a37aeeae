package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/libcat/ilsrecord/v1/logger"
)

const version = "0.3.0"

// app carries the state shared by all commands of one invocation.
type app struct {
	v   *viper.Viper
	log *logger.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{v: viper.New()}

	root := &cobra.Command{
		Use:   "ilsconv",
		Short: "Inspect and convert ILS record payloads",
		Long: fmt.Sprintf(`ilsconv (v%s)

Detects the wire format of ILS payloads, converts them between JSON, XML
and hash renditions of a record schema, and describes record schemas.`, version),
		Version:           version,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}

	root.PersistentFlags().String("log-level", logger.Warning, "log level (debug, info, warning, error)")
	root.PersistentFlags().StringP("input", "i", "-", "input file, - for stdin")

	root.AddCommand(
		a.sniffCmd(),
		a.convertCmd(),
		a.schemaCmd(),
	)
	return root
}

// setup loads .env files, binds flags and environment variables and
// creates the logger.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	_ = godotenv.Load(".env")
	_ = godotenv.Load(".env.local")

	a.v.SetEnvPrefix("ilsconv")
	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.v.AutomaticEnv()
	if err := a.v.BindPFlags(cmd.Flags()); err != nil {
		return err
	}

	a.log = logger.NewLoggerClient(logger.Config{
		Level:       a.v.GetString("log-level"),
		ServiceName: "ilsconv",
		Console:     true,
	})
	return nil
}

// readInput returns the payload named by the input flag.
func (a *app) readInput(cmd *cobra.Command) ([]byte, error) {
	name := a.v.GetString("input")
	if name == "" || name == "-" {
		return io.ReadAll(cmd.InOrStdin())
	}
	data, err := os.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	return data, nil
}
