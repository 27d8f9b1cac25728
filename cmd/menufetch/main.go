package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/quantmind-br/menufetch-go/internal/cache"
	"github.com/quantmind-br/menufetch-go/internal/config"
	"github.com/quantmind-br/menufetch-go/internal/menu"
	"github.com/quantmind-br/menufetch-go/internal/utils"
	"github.com/quantmind-br/menufetch-go/pkg/version"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile string
	verbose bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "menufetch <menu-name>",
	Short: "Fetch and normalize menus from a JSON:API backend",
	Long: `Menufetch retrieves hierarchical menu data from a Drupal-style JSON:API
backend and prints a normalized, order-preserving entity list as JSON.

Three backend representations are supported: menu_link_content (the
default), jsonapi_menu_items, and decoupled_menus linksets. All three
normalize to the same entity shape, so a tree can be rebuilt by grouping
entities on their parent field.`,
	Version: version.Short(),
	Args:    cobra.ExactArgs(1),
	RunE:    run,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ~/.menufetch/config.yaml)")
	rootCmd.PersistentFlags().StringP("base-url", "u", "", "Backend base URL")
	rootCmd.PersistentFlags().StringP("type", "t", "", "Menu source type (menu_link_content, jsonapi_menu_items, decoupled_menus)")
	rootCmd.PersistentFlags().String("endpoint", "", "API base path (default /jsonapi)")
	rootCmd.PersistentFlags().Duration("timeout", 0, "Request timeout")
	rootCmd.PersistentFlags().Bool("cache", false, "Cache backend responses on disk")
	rootCmd.PersistentFlags().Bool("pretty", false, "Indent JSON output")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")

	_ = viper.BindPFlag("base_url", rootCmd.PersistentFlags().Lookup("base-url"))
	_ = viper.BindPFlag("menu.type", rootCmd.PersistentFlags().Lookup("type"))
	_ = viper.BindPFlag("api.endpoint", rootCmd.PersistentFlags().Lookup("endpoint"))
	_ = viper.BindPFlag("api.timeout", rootCmd.PersistentFlags().Lookup("timeout"))
	_ = viper.BindPFlag("cache.enabled", rootCmd.PersistentFlags().Lookup("cache"))
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	}
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := utils.NewLogger(utils.LoggerOptions{
		Level:   cfg.Logging.Level,
		Format:  cfg.Logging.Format,
		Verbose: verbose,
	})

	opts := menu.Options{
		Menu: menu.MenuOptions{
			Type:             cfg.Menu.Type,
			JSONAPIMenuItems: cfg.Menu.JSONAPIMenuItems,
		},
		Endpoint:   cfg.API.Endpoint,
		Timeout:    cfg.API.Timeout,
		MaxRetries: cfg.API.MaxRetries,
		UserAgent:  cfg.API.UserAgent,
		Logger:     logger,
	}

	if cfg.Cache.Enabled {
		store, err := cache.NewBadgerCache(cache.Options{Directory: cfg.Cache.Directory})
		if err != nil {
			return fmt.Errorf("open cache: %w", err)
		}
		defer store.Close()

		opts.Cache = store
		opts.EnableCache = true
		opts.CacheTTL = cfg.Cache.TTL
	}

	client, err := menu.New(cfg.BaseURL, opts)
	if err != nil {
		return err
	}
	defer client.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	menuName := args[0]
	logger.Debug().Str("menu", menuName).Str("strategy", client.Strategy()).Msg("fetching menu")

	result, err := client.Get(ctx, menuName)
	if err != nil {
		return err
	}

	logger.Info().Str("menu", menuName).Int("entities", len(result.Entities)).Msg("menu retrieved")

	enc := json.NewEncoder(os.Stdout)
	if pretty, _ := cmd.Flags().GetBool("pretty"); pretty {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(result)
}
