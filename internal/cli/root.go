// Package cli implements the todo command-line front end. It only invokes
// the client's four operations and renders their results.
package cli

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/todoapp/todo-client/client"
	"github.com/todoapp/todo-client/internal/config"
	"github.com/todoapp/todo-client/internal/logger"
)

// settings are resolved once per invocation: environment first, then flags.
type settings struct {
	apiURL    string
	timeout   time.Duration
	debug     bool
	logFormat string
}

// NewRootCmd constructs the root CLI command; exposed for unit testing.
func NewRootCmd() *cobra.Command {
	s := &settings{}

	rootCmd := &cobra.Command{
		Use:           "todo",
		Short:         "Manage your todos on the remote todo service",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Quiet until the debug switch is known.
			zerolog.SetGlobalLevel(zerolog.InfoLevel)

			cfg, err := config.New()
			if err != nil {
				return err
			}
			s.merge(cmd, cfg)
			initLogger(cmd.ErrOrStderr(), s.logFormat, s.debug)
			log.Debug().
				Str("api_url", s.apiURL).
				Dur("http_timeout", s.timeout).
				Bool("debug", s.debug).
				Str("log_format", s.logFormat).
				Msg("Configuration loaded")
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVar(&s.apiURL, "api-url", config.DefaultAPIURL, "Base URL of the todo service (env TODO_API_URL)")
	rootCmd.PersistentFlags().DurationVar(&s.timeout, "timeout", 30*time.Second, "HTTP timeout per request (env TODO_HTTP_TIMEOUT)")
	rootCmd.PersistentFlags().BoolVarP(&s.debug, "debug", "d", false, "Enable verbose debug output (env TODO_DEBUG)")

	// Sub-commands
	rootCmd.AddCommand(newListCmd(s))
	rootCmd.AddCommand(newAddCmd(s))
	rootCmd.AddCommand(newDoneCmd(s, true))
	rootCmd.AddCommand(newDoneCmd(s, false))
	rootCmd.AddCommand(newEditCmd(s))
	rootCmd.AddCommand(newRemoveCmd(s))

	return rootCmd
}

// merge fills s from cfg for every flag the user did not set explicitly.
func (s *settings) merge(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()
	if !flags.Changed("api-url") {
		s.apiURL = cfg.APIURL
	}
	if !flags.Changed("timeout") {
		s.timeout = cfg.HTTPTimeout
	}
	if !flags.Changed("debug") {
		s.debug = cfg.Debug
	}
	s.logFormat = cfg.LogFormat
}

func (s *settings) newClient() (*client.Client, error) {
	return client.New(s.apiURL,
		client.WithHTTPTimeout(s.timeout),
		client.WithDebugLogging(s.debug),
		client.WithUserAgent("todo-cli/1.0"),
	)
}

func initLogger(w io.Writer, format string, debug bool) {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = logger.New(w, format, "todo-cli")
	zerolog.SetGlobalLevel(logger.Level(debug))
	log.Debug().Msg("debug logging enabled")
}

func parseID(s string) (int, error) {
	id, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("not a todo id: %q", s)
	}
	return id, nil
}

// Fail prints err in the error style on stderr.
func Fail(err error) {
	fmt.Fprintln(os.Stderr, newTheme(os.Stderr).fail.Render("✖ "+client.Describe(err)))
}
