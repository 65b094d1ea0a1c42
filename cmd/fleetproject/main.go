package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/mamynavalonar-dev/FLEETPROJECT/internal/config"
	"github.com/mamynavalonar-dev/FLEETPROJECT/internal/importer"
	"github.com/mamynavalonar-dev/FLEETPROJECT/internal/rules"
	"github.com/mamynavalonar-dev/FLEETPROJECT/internal/server"
	"github.com/mamynavalonar-dev/FLEETPROJECT/internal/store"
)

var (
	port    int
	devMode bool
	dataDir string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "fleetproject",
		Short: "Fleet fuel log import service",
	}

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP import service",
		RunE:  runServe,
	}
	serveCmd.Flags().IntVar(&port, "port", 0, "server port (overrides config.toml)")
	serveCmd.Flags().BoolVar(&devMode, "dev", false, "development mode")
	serveCmd.Flags().StringVar(&dataDir, "data-dir", "", "data directory (overrides config.toml)")

	importCmd := &cobra.Command{
		Use:   "import [workbook.xlsx]",
		Short: "Import one workbook into the local store and print the summary",
		Args:  cobra.ExactArgs(1),
		RunE:  runImport,
	}
	importCmd.Flags().StringVar(&dataDir, "data-dir", "", "data directory (overrides config.toml)")

	rootCmd.AddCommand(serveCmd, importCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func loadConfig() *config.AppConfig {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Printf("failed to load config, using defaults: %v", err)
		cfg = config.DefaultConfig()
	}
	if port > 0 {
		cfg.Server.Port = port
	}
	if devMode {
		cfg.Server.DevMode = true
	}
	if dataDir != "" {
		cfg.Data.DataDir = dataDir
	}
	return cfg
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()

	srv := server.NewServer(cfg)
	addr := fmt.Sprintf(":%d", cfg.Server.Port)

	go func() {
		log.Printf("listening on %s", addr)
		if err := srv.Run(addr); err != nil {
			log.Fatalf("server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("shutting down")
	return srv.Close()
}

func runImport(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()

	dir, err := config.EnsureDataDir(cfg)
	if err != nil {
		return fmt.Errorf("data directory: %w", err)
	}

	st, err := store.New(filepath.Join(dir, "fleet.db"))
	if err != nil {
		return err
	}
	defer st.Close()

	data, err := os.ReadFile(args[0])
	if err != nil {
		return err
	}

	engine := rules.NewEngine(rules.Thresholds{
		RefillAmount:   cfg.Business.RefillThreshold,
		DailyKmLimit:   cfg.Business.DailyKmLimit,
		ConsumptionMin: cfg.Business.ConsumptionMin,
		ConsumptionMax: cfg.Business.ConsumptionMax,
	})
	coordinator := importer.NewCoordinator(st, engine)

	summary, err := coordinator.ImportWorkbook(data, filepath.Base(args[0]))
	if err != nil {
		return err
	}

	out, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}
