// Package main provides the CLI entrypoint for cargodash.
package main

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/cargodash/cargodash/internal/agg"
	"github.com/cargodash/cargodash/internal/config"
	"github.com/cargodash/cargodash/internal/dashui"
	"github.com/cargodash/cargodash/internal/dataset"
	"github.com/cargodash/cargodash/internal/daterange"
	"github.com/cargodash/cargodash/internal/filter"
	"github.com/cargodash/cargodash/internal/model"
	"github.com/cargodash/cargodash/internal/report"
	"github.com/cargodash/cargodash/internal/state"
	"github.com/cargodash/cargodash/internal/store"
)

const (
	defaultReportWidth = 24
	defaultBarWidth    = 24
)

var (
	dashCount int
	dashSeed  int64
	dashDB    string
	dashRegen bool

	seedCount int
	seedSeed  int64
	seedDB    string

	reportDates    string
	reportCarrier  string
	reportRegion   string
	reportStatus   string
	reportPriority string
	reportWidth    int
	reportDB       string
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "cargodash",
		Short:         "TUI logistics analytics dashboard",
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE:          runDashCmd,
	}

	rootCmd.Flags().IntVar(&dashCount, "count", dataset.DefaultCount, "shipments to generate when seeding")
	rootCmd.Flags().Int64Var(&dashSeed, "seed", 0, "dataset seed (0 = random)")
	rootCmd.Flags().StringVar(&dashDB, "db", "", "snapshot database path")
	rootCmd.Flags().BoolVar(&dashRegen, "regen", false, "regenerate the dataset before starting")

	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newSeedCmd())
	rootCmd.AddCommand(newReportCmd())

	return rootCmd
}

func runDashCmd(cmd *cobra.Command, _ []string) error {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyIntConfig(cmd, "count", &dashCount, fileCfg.Dataset.Count)
	applyInt64Config(cmd, "seed", &dashSeed, fileCfg.Dataset.Seed)
	applyStringConfig(cmd, "db", &dashDB, fileCfg.Dataset.DB)

	records, st, err := loadRecords(dashDB, dashCount, dashSeed, dashRegen)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := st.Close(); cerr != nil {
			logErrf("failed to close db: %v\n", cerr)
		}
	}()

	stateStore := state.New(records)
	dash := dashui.NewModel(stateStore, rand.New(rand.NewSource(time.Now().UnixNano())))
	program := tea.NewProgram(dash, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run dashboard: %w", err)
	}
	return nil
}

// loadRecords opens the snapshot store and returns its records, generating
// and persisting a fresh dataset when the snapshot is empty or a regen was
// requested.
func loadRecords(dbPath string, count int, seed int64, regen bool) ([]model.Record, *store.Store, error) {
	if dbPath == "" {
		dbPath = config.DefaultDBPath()
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open db: %w", err)
	}

	ctx := context.Background()
	existing, err := st.Count(ctx)
	if err != nil {
		closeStore(st)
		return nil, nil, fmt.Errorf("failed to read snapshot: %w", err)
	}
	if existing > 0 && !regen {
		records, err := st.ListRecords(ctx)
		if err != nil {
			closeStore(st)
			return nil, nil, fmt.Errorf("failed to load snapshot: %w", err)
		}
		return records, st, nil
	}

	records := dataset.Generate(count, seed, time.Now())
	if err := st.ReplaceRecords(ctx, records); err != nil {
		closeStore(st)
		return nil, nil, fmt.Errorf("failed to store snapshot: %w", err)
	}
	return records, st, nil
}

func closeStore(st *store.Store) {
	if cerr := st.Close(); cerr != nil {
		logErrf("failed to close db: %v\n", cerr)
	}
}

func newSeedCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Regenerate the dataset snapshot",
		Args:  cobra.NoArgs,
		RunE:  runSeedCmd,
	}
	cmd.Flags().IntVar(&seedCount, "count", dataset.DefaultCount, "shipments to generate")
	cmd.Flags().Int64Var(&seedSeed, "seed", 0, "dataset seed (0 = random)")
	cmd.Flags().StringVar(&seedDB, "db", "", "snapshot database path")
	return cmd
}

func runSeedCmd(cmd *cobra.Command, _ []string) error {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyIntConfig(cmd, "count", &seedCount, fileCfg.Dataset.Count)
	applyInt64Config(cmd, "seed", &seedSeed, fileCfg.Dataset.Seed)
	applyStringConfig(cmd, "db", &seedDB, fileCfg.Dataset.DB)

	records, st, err := loadRecords(seedDB, seedCount, seedSeed, true)
	if err != nil {
		return err
	}
	defer closeStore(st)

	fmt.Printf("Seeded %d shipments.\n", len(records))
	return nil
}

func newReportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Print a filtered analytics report",
		Args:  cobra.NoArgs,
		RunE:  runReportCmd,
	}
	cmd.Flags().StringVar(&reportDates, "dates", "", "date phrase (e.g. \"q2 2025\", \"last 30 days\")")
	cmd.Flags().StringVar(&reportCarrier, "carrier", "", "carrier filter (comma-separated)")
	cmd.Flags().StringVar(&reportRegion, "region", "", "region filter (comma-separated)")
	cmd.Flags().StringVar(&reportStatus, "status", "", "status filter (comma-separated)")
	cmd.Flags().StringVar(&reportPriority, "priority", "", "priority filter (comma-separated)")
	cmd.Flags().IntVar(&reportWidth, "width", 0, "bar width (0 = auto)")
	cmd.Flags().StringVar(&reportDB, "db", "", "snapshot database path")
	return cmd
}

func runReportCmd(cmd *cobra.Command, _ []string) error {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyStringConfig(cmd, "db", &reportDB, fileCfg.Dataset.DB)
	applyIntConfig(cmd, "width", &reportWidth, fileCfg.Report.Width)
	applyStringConfig(cmd, "dates", &reportDates, fileCfg.Report.Dates)

	records, st, err := loadRecords(reportDB, dataset.DefaultCount, 0, false)
	if err != nil {
		return err
	}
	defer closeStore(st)

	filters := filter.NewGlobalFilters()
	filters.Carriers = splitFlag(reportCarrier)
	filters.Regions = splitFlag(reportRegion)
	filters.Statuses = splitFlag(reportStatus)
	filters.Priorities = splitFlag(reportPriority)
	if reportDates != "" {
		window, err := daterange.Parse(reportDates, time.Now())
		if err != nil {
			return err
		}
		filters.DateRange = []string{window.From, window.To}
	}

	cursor := time.Now().Format("2006-01")
	filtered := filter.Apply(filters, cursor, records)

	barWidth := reportWidth
	if barWidth <= 0 {
		barWidth = detectBarWidth()
	}

	out := os.Stdout
	if err := report.RenderSummary(out, filtered); err != nil {
		return err
	}
	if err := report.RenderCarrierTable(out, filtered, agg.CarrierAll); err != nil {
		return err
	}
	if err := report.RenderRegionalTable(out, filtered, agg.GeoRegion, nil); err != nil {
		return err
	}
	if err := report.RenderStatusTable(out, filtered, barWidth); err != nil {
		return err
	}
	if err := report.RenderVolumeSeries(out, filtered, agg.BucketDay, barWidth); err != nil {
		return err
	}
	if err := report.RenderCostTable(out, filtered, agg.BucketDay); err != nil {
		return err
	}
	return report.RenderHistogram(out, filtered, agg.HistogramDefault, barWidth)
}

// detectBarWidth scales the proportional bars to the terminal, falling back
// to a fixed width when stdout is not a terminal.
func detectBarWidth() int {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return defaultBarWidth
	}
	width, _, err := term.GetSize(fd)
	if err != nil || width <= 0 {
		return defaultBarWidth
	}
	barWidth := width / 3
	if barWidth < defaultReportWidth {
		barWidth = defaultReportWidth
	}
	return barWidth
}

func splitFlag(input string) []string {
	if strings.TrimSpace(input) == "" {
		return nil
	}
	parts := strings.Split(input, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		out = append(out, part)
	}
	return out
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Create/open config file",
		Args:  cobra.NoArgs,
		RunE:  runConfigCmd,
	}
}

func runConfigCmd(_ *cobra.Command, _ []string) error {
	path := config.DefaultConfigPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to stat config: %w", err)
		}
		if err := os.WriteFile(path, []byte(defaultConfigTemplate()), 0o644); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
	}

	editor := strings.TrimSpace(os.Getenv("EDITOR"))
	if editor == "" {
		editor = "vi"
	}
	parts := strings.Fields(editor)
	if len(parts) == 0 {
		return fmt.Errorf("editor command is empty")
	}
	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

func defaultConfigTemplate() string {
	return `# cargodash configuration

[dataset]
# count = 50
# seed = 0
# db = ""

[report]
# width = 0
# dates = ""
`
}

func applyStringConfig(cmd *cobra.Command, name string, target, value *string) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyIntConfig(cmd *cobra.Command, name string, target, value *int) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyInt64Config(cmd *cobra.Command, name string, target, value *int64) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
