// Package main provides the quizd entry point: a line-oriented quiz
// session server over TCP, with a local stdio mode for trying the same
// command loop without a network client.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"

	"quizcore/internal/config"
	"quizcore/internal/logger"
	"quizcore/internal/output"
	"quizcore/internal/server"
	"quizcore/internal/session"
	"quizcore/internal/store"
	"quizcore/internal/version"
)

// rootCmd represents the base command; without a subcommand it serves.
var rootCmd = &cobra.Command{
	Use:   "quizd",
	Short: "quizd - interactive quiz session server",
	Long: `quizd serves a line-oriented interactive quiz session over TCP.
Clients connect, receive a prompt and manage or play a persisted set of
question/answer items with short textual commands.`,
	Run: runServe,
}

// serveCmd is the explicit version of the default behavior.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the TCP quiz server",
	Long:  `Listen for TCP connections and run one quiz session per client.`,
	Run:   runServe,
}

// localCmd runs a single session over stdin/stdout.
var localCmd = &cobra.Command{
	Use:   "local",
	Short: "Run one quiz session on the terminal",
	Long:  `Run a single quiz session over stdin/stdout instead of listening for clients.`,
	Run:   runLocal,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(_ *cobra.Command, _ []string) {
		fmt.Println(version.GetFormattedVersion())
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.String("addr", ":3030", "TCP listen address for serve mode")
	flags.String("db", "quizzes.sqlite", "SQLite database file holding the items")
	flags.Bool("seed", true, "Seed an empty store with the starter items")
	flags.Bool("plain", false, "Disable styled output on session streams")
	flags.String("log-level", "", "Set log level (debug|info|warn|error) [default: info]")
	flags.String("log-file", "", "Write logs to file instead of stderr")

	for _, name := range []string{"addr", "db", "seed", "plain", "log-level", "log-file"} {
		if err := viper.BindPFlag(name, flags.Lookup(name)); err != nil {
			fmt.Fprintf(os.Stderr, "Error binding %s flag: %v\n", name, err)
			os.Exit(1)
		}
	}
	config.SetDefaults()

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(localCmd)
	rootCmd.AddCommand(versionCmd)

	cobra.OnInitialize(initConfig)
}

func initConfig() {
	// A missing .env file is fine; it only supplies QUIZ_* variables.
	_ = godotenv.Load()

	cfg := config.Load()
	if err := logger.Configure(cfg.LogLevel, cfg.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Error configuring logger: %v\n", err)
		os.Exit(1)
	}
}

func openStore(cfg config.Config) *store.SQLiteStore {
	st, err := store.Open(cfg.DBPath)
	if err != nil {
		logger.Fatal("failed to open item store", "path", cfg.DBPath, "error", err)
	}
	if cfg.Seed {
		if err := st.SeedIfEmpty(); err != nil {
			logger.Fatal("failed to seed item store", "error", err)
		}
	}
	return st
}

func runServe(_ *cobra.Command, _ []string) {
	cfg := config.Load()
	logger.Info("starting quizd", "version", version.GetVersion(), "addr", cfg.Addr)

	st := openStore(cfg)
	defer func() { _ = st.Close() }()

	var opts []server.Option
	if !cfg.Plain {
		opts = append(opts, server.WithStyles(output.NewThemeProvider()))
	}
	srv := server.New(cfg.Addr, st, opts...)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := srv.ListenAndServe(ctx); err != nil {
		logger.Fatal("server failed", "error", err)
	}
	logger.Info("quizd stopped")
}

func runLocal(_ *cobra.Command, _ []string) {
	cfg := config.Load()

	st := openStore(cfg)
	defer func() { _ = st.Close() }()

	options := []output.Option{output.WithWriter(os.Stdout)}
	if !cfg.Plain && term.IsTerminal(int(os.Stdout.Fd())) {
		options = append(options, output.WithStyles(output.NewThemeProvider()))
	} else {
		options = append(options, output.PlainText())
	}

	sess := session.New(os.Stdin, output.NewPrinter(options...), st)
	sess.Run()
}
