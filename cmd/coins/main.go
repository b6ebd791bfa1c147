package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/vitos/crypto_dash/internal/cli"
	"github.com/vitos/crypto_dash/internal/config"
	"github.com/vitos/crypto_dash/internal/domain"
	"github.com/vitos/crypto_dash/internal/infrastructure/coingecko"
	"github.com/vitos/crypto_dash/internal/infrastructure/logger"
	"github.com/vitos/crypto_dash/internal/usecase"
	"go.uber.org/zap"
)

const usage = `Usage:
  coins list [-limit N] [-filter TEXT] [-sort KEY] [-config PATH] [-v]
  coins show [-config PATH] [-v] <coin-id>
`

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	var err error
	switch os.Args[1] {
	case "list":
		err = runList(os.Args[2:])
	case "show":
		err = runShow(os.Args[2:])
	case "-h", "--help", "help":
		fmt.Print(usage)
		return
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\n\n%s", os.Args[1], usage)
		os.Exit(2)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

type common struct {
	configPath string
	verbose    bool
}

func (c *common) register(fs *flag.FlagSet) {
	fs.StringVar(&c.configPath, "config", "config/config.yaml", "path to config file")
	fs.BoolVar(&c.verbose, "v", false, "verbose logging")
}

// setup loads config and builds the market data client.
func (c *common) setup() (*config.Config, domain.MarketDataSource, *zap.Logger, error) {
	cfg, err := config.Load(c.configPath)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("load config: %w", err)
	}
	log, err := logger.NewCLILogger(c.verbose)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("init logger: %w", err)
	}
	client := coingecko.NewClient(coingecko.Config{
		BaseURL:      cfg.API.BaseURL,
		APIKey:       cfg.API.APIKey,
		APIKeyHeader: cfg.API.APIKeyHeader,
		Timeout:      cfg.API.Timeout,
	}, log.Named("coingecko"))
	return cfg, client, log, nil
}

func viewConfig(cfg *config.Config, log *zap.Logger) usecase.ViewConfig {
	return usecase.ViewConfig{
		VsCurrency:   cfg.API.VsCurrency,
		DefaultLimit: cfg.View.DefaultLimit,
		Timeout:      cfg.API.Timeout,
		Logger:       log,
	}
}

// waitContext bounds a one-shot command a little past the request timeout.
func waitContext(cfg *config.Config) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), cfg.API.Timeout+2*time.Second)
}

func runList(args []string) error {
	var c common
	fs := flag.NewFlagSet("list", flag.ExitOnError)
	c.register(fs)
	limitRaw := fs.String("limit", "", "number of coins to fetch (1-250)")
	filter := fs.String("filter", "", "filter by name or symbol")
	sortRaw := fs.String("sort", string(domain.DefaultSortKey), "sort key")
	fs.Parse(args)

	cfg, client, log, err := c.setup()
	if err != nil {
		return err
	}
	defer log.Sync()

	vc := viewConfig(cfg, log)
	if *limitRaw != "" {
		limit, err := usecase.ParseLimit(*limitRaw)
		if err != nil {
			return err
		}
		vc.DefaultLimit = limit
	}

	view := usecase.NewHomeView(client, vc)
	defer view.Close()
	if err := view.SetSort(*sortRaw); err != nil {
		return err
	}
	view.SetFilter(*filter)

	ctx, cancel := waitContext(cfg)
	defer cancel()
	if err := view.Wait(ctx); err != nil {
		return err
	}

	vm := view.Render()
	cli.RenderList(os.Stdout, vm)
	if vm.Error != "" {
		return fmt.Errorf("list failed: %s", vm.Error)
	}
	return nil
}

func runShow(args []string) error {
	var c common
	fs := flag.NewFlagSet("show", flag.ExitOnError)
	c.register(fs)
	fs.Parse(args)
	if fs.NArg() != 1 {
		return fmt.Errorf("show takes exactly one coin id")
	}

	cfg, client, log, err := c.setup()
	if err != nil {
		return err
	}
	defer log.Sync()

	view := usecase.NewDetailView(client, viewConfig(cfg, log))
	defer view.Close()
	if err := view.SetCoin(fs.Arg(0)); err != nil {
		return err
	}

	ctx, cancel := waitContext(cfg)
	defer cancel()
	if err := view.Wait(ctx); err != nil {
		return err
	}

	vm := view.Render()
	cli.RenderDetail(os.Stdout, vm)
	if vm.Error != "" {
		return fmt.Errorf("show %s: %s", fs.Arg(0), vm.Error)
	}
	return nil
}
