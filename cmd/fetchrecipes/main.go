package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"fetchrecipes/config"
)

var v = config.NewViper()

var rootCmd = &cobra.Command{
	Use:   "fetchrecipes",
	Short: "Fetch, decode and browse recipe lists",
	Long: `fetchrecipes loads recipe lists from bundled fixtures, an HTTP endpoint or S3,
sorts them by cuisine and serves them through an HTTP API or a terminal UI.

Request types: AllRecipes, EmptyRecipes, MalformedRecipes, DemoRecipes.`,
	SilenceUsage: true,
}

func main() {
	addPersistentFlags()
	registerCommands()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func addPersistentFlags() {
	flags := rootCmd.PersistentFlags()
	flags.String("log-level", config.DefaultLogLevel, "log level (debug, info, warn, error)")
	flags.String("log-format", config.DefaultLogFormat, "log format (text, json)")
	flags.String("source", config.SourceBundled, "recipe source (bundled, remote, s3)")
	flags.String("base-url", config.DefaultRemoteBaseURL, "base URL for the remote source")
	flags.String("bucket", "", "bucket for the s3 source")
	_ = v.BindPFlag("log.level", flags.Lookup("log-level"))
	_ = v.BindPFlag("log.format", flags.Lookup("log-format"))
	_ = v.BindPFlag("source.kind", flags.Lookup("source"))
	_ = v.BindPFlag("source.base_url", flags.Lookup("base-url"))
	_ = v.BindPFlag("s3.bucket", flags.Lookup("bucket"))
}

func registerCommands() {
	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(tuiCmd())
	rootCmd.AddCommand(fetchCmd())
	rootCmd.AddCommand(publishCmd())
}

func loadConfig() (config.Config, error) {
	return config.Load(v)
}
