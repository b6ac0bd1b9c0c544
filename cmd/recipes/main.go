// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the recipes CLI. It scrapes recipe
// cards (name, difficulty, prep time) for an ingredient from a saved
// search page into recipes/<ingredient>.csv, then walks the live search
// pages.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/recipes/internal/httputil"
	"github.com/pdiddy/recipes/internal/scrape"
	"github.com/pdiddy/recipes/internal/source"
	"github.com/pdiddy/recipes/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// Exit codes. A missing saved page is the one handled failure and keeps
// its own status.
const (
	exitOK          = 0
	exitMissingPage = 1
	exitFailure     = 2
)

// rootCmd is the base command for the recipes CLI.
var rootCmd = &cobra.Command{
	Use:   "recipes INGREDIENT",
	Short: "Scrape recipe cards for an ingredient into a CSV file",
	Long: `recipes reads the saved search page pages/INGREDIENT.html, extracts the
name, difficulty and prep time of every recipe card, and writes them to
recipes/INGREDIENT.csv. It then walks the live search results page by page
until the site has no more results.`,
	Args:          cobra.MaximumNArgs(1),
	SilenceErrors: true,
	SilenceUsage:  true,
	RunE:          runScrape,
}

func init() {
	cobra.OnInitialize(initConfig)

	flags := rootCmd.PersistentFlags()
	flags.String("config", "", "config file (default: ./recipes.yaml or ~/.config/recipes/recipes.yaml)")
	flags.String("search-url", types.DefaultSearchURL, "search endpoint queried with search[query] and page")
	flags.Int("pages", types.DefaultPages, "number of live search pages to walk")
	flags.String("pages-dir", types.DefaultPagesDir, "directory holding saved search pages")
	flags.String("recipes-dir", types.DefaultRecipesDir, "directory receiving the CSV file (must exist)")
	flags.Duration("timeout", 0, "HTTP request timeout (0 = no timeout)")

	bindFlags()
}

// flagKeys maps config keys to the persistent flags that override them.
var flagKeys = map[string]string{
	"search_url":  "search-url",
	"pages":       "pages",
	"pages_dir":   "pages-dir",
	"recipes_dir": "recipes-dir",
	"timeout":     "timeout",
}

// bindFlags binds every config key to its persistent flag.
func bindFlags() {
	flags := rootCmd.PersistentFlags()
	for key, flag := range flagKeys {
		cobra.CheckErr(viper.BindPFlag(key, flags.Lookup(flag)))
	}
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("recipes")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "recipes"))
		}
	}

	viper.SetEnvPrefix("RECIPES")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(rootCmd.ErrOrStderr(), "Using config file:", viper.ConfigFileUsed())
	}
}

// configFromViper assembles the scrape configuration from flags, the
// environment and the config file, in viper's precedence order.
func configFromViper() types.ScrapeConfig {
	cfg := types.ScrapeConfig{
		HTTPConfig: types.HTTPConfig{
			Timeout: viper.GetDuration("timeout"),
		},
		SearchURL:  viper.GetString("search_url"),
		Pages:      viper.GetInt("pages"),
		PagesDir:   viper.GetString("pages_dir"),
		RecipesDir: viper.GetString("recipes_dir"),
	}
	return cfg.WithDefaults()
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: recipes INGREDIENT")
	fmt.Fprintln(w, "Scrapes recipe cards for INGREDIENT into recipes/INGREDIENT.csv")
}

func runScrape(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		printUsage(cmd.OutOrStdout())
		return nil
	}
	ingredient := args[0]

	cfg := configFromViper()
	fetcher := &source.Fetcher{
		Client:    httputil.NewClient(cfg.HTTPConfig),
		SearchURL: cfg.SearchURL,
		Out:       cmd.OutOrStdout(),
	}

	_, err := scrape.Run(cmd.Context(), cfg, fetcher, ingredient, cmd.OutOrStdout())
	return err
}

// execute runs the CLI with args and returns the process exit status.
func execute(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	err := rootCmd.ExecuteContext(ctx)
	if err == nil {
		return exitOK
	}

	var missing *source.MissingPageError
	if errors.As(err, &missing) {
		for _, line := range missing.Instructions() {
			fmt.Fprintln(stdout, line)
		}
		return exitMissingPage
	}

	fmt.Fprintln(stderr, "Error:", err)
	return exitFailure
}

func main() {
	os.Exit(execute(context.Background(), os.Args[1:], os.Stdout, os.Stderr))
}
