package main

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/gen2brain/beeep"
	"github.com/invopop/jsonschema"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	naturaldate "github.com/tj/go-naturaldate"

	"github.com/ashishakkumar/resource-allocator/internal/availability"
	"github.com/ashishakkumar/resource-allocator/internal/calendar"
	"github.com/ashishakkumar/resource-allocator/internal/config"
	"github.com/ashishakkumar/resource-allocator/internal/generator"
	"github.com/ashishakkumar/resource-allocator/internal/plan"
	"github.com/ashishakkumar/resource-allocator/internal/render"
	"github.com/ashishakkumar/resource-allocator/internal/scheduler"
	"github.com/ashishakkumar/resource-allocator/internal/store"
	"github.com/ashishakkumar/resource-allocator/internal/tui"
)

var rootCmd = &cobra.Command{
	Use:   "resalloc",
	Short: "Allocate recurring activities to calendar time slots",
	Long: "resalloc expands a prioritized activity catalog across a date range, " +
		"intersects client, facilitator, and equipment availability, places each " +
		"occurrence into a concrete time slot, and reports residual conflicts.",
}

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a synthetic activity catalog and availability calendars",
	RunE:  runGenerate,
}

var scheduleCmd = &cobra.Command{
	Use:   "schedule",
	Short: "Allocate the catalog into a dated schedule",
	RunE:  runSchedule,
}

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check a schedule document for temporal conflicts",
	RunE:  runValidate,
}

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render the schedule as an HTML calendar",
	RunE:  runRender,
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the schedule as an iCalendar file",
	RunE:  runExport,
}

var viewCmd = &cobra.Command{
	Use:   "view",
	Short: "Browse the schedule interactively",
	RunE:  runView,
}

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List past scheduling runs",
	RunE:  runHistory,
}

var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON Schema of the input documents",
	RunE:  runSchema,
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Open config file in your editor",
	RunE:  runConfig,
}

func init() {
	generateCmd.Flags().Int("activities", 0, "Number of catalog activities (default from config)")
	generateCmd.Flags().Int("months", 0, "Availability span in months (default from config)")
	generateCmd.Flags().String("start", "", "Plan start date, natural language accepted (e.g. \"next monday\")")

	scheduleCmd.Flags().Int64("seed", 0, "Random seed override (defaults to config)")
	scheduleCmd.Flags().Bool("text", false, "Print the schedule to the terminal after allocation")

	renderCmd.Flags().Bool("text", false, "Print a styled terminal listing instead of writing HTML")

	exportCmd.Flags().StringP("output", "o", "personalized_schedule.ics", "Output .ics path")

	historyCmd.Flags().Int64("show", 0, "Print the stored schedule for a run ID")

	schemaCmd.Flags().String("input", "catalog", "Which document: catalog or availability")

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(scheduleCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(viewCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(schemaCmd)
	rootCmd.AddCommand(configCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newLogger(cfg *config.Config) zerolog.Logger {
	level, err := zerolog.ParseLevel(strings.ToLower(cfg.Log.Level))
	if err != nil {
		level = zerolog.InfoLevel
	}
	writer := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"}
	return zerolog.New(writer).Level(level).With().Timestamp().Logger()
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	log := newLogger(cfg)

	activities := cfg.Plan.Activities
	if n, _ := cmd.Flags().GetInt("activities"); n > 0 {
		activities = n
	}
	months := cfg.Plan.Months
	if n, _ := cmd.Flags().GetInt("months"); n > 0 {
		months = n
	}

	start := time.Now().Truncate(24 * time.Hour)
	if raw, _ := cmd.Flags().GetString("start"); raw != "" {
		parsed, err := naturaldate.Parse(raw, time.Now(), naturaldate.WithDirection(naturaldate.Future))
		if err != nil {
			return fmt.Errorf("parsing start date %q: %w", raw, err)
		}
		start = parsed.Truncate(24 * time.Hour)
	}

	gen := generator.New(cfg.Plan.Seed)
	catalog := gen.Catalog(activities)
	if err := plan.SaveCatalog(catalog, cfg.Plan.Catalog); err != nil {
		return fmt.Errorf("writing catalog: %w", err)
	}

	idx := gen.Availability(start, months)
	if err := idx.Save(cfg.Plan.Availability); err != nil {
		return fmt.Errorf("writing availability data: %w", err)
	}

	log.Info().
		Int("activities", len(catalog)).
		Int("days", len(idx.Client)).
		Str("catalog", cfg.Plan.Catalog).
		Str("availability", cfg.Plan.Availability).
		Msg("generated plan inputs")
	return nil
}

func runSchedule(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	log := newLogger(cfg)

	seed := cfg.Plan.Seed
	if cmd.Flags().Changed("seed") {
		seed, _ = cmd.Flags().GetInt64("seed")
	}

	catalog, err := plan.LoadCatalog(cfg.Plan.Catalog)
	if err != nil {
		return err
	}
	idx, err := availability.Load(cfg.Plan.Availability)
	if err != nil {
		return err
	}

	started := time.Now()
	alloc := scheduler.New(catalog, idx, seed, log)
	schedule, conflicts := alloc.Build()

	log.Info().
		Int("placements", schedule.Total()).
		Int("days", len(schedule)).
		Int("backups", schedule.BackupCount()).
		Int("conflicts", len(conflicts)).
		Dur("elapsed", time.Since(started)).
		Msg("schedule generated")

	if log.GetLevel() <= zerolog.DebugLevel {
		dist := schedule.HourDistribution()
		hours := make([]int, 0, len(dist))
		for h := range dist {
			hours = append(hours, h)
		}
		sort.Ints(hours)
		for _, h := range hours {
			log.Debug().Int("hour", h).Int("count", dist[h]).Msg("hour distribution")
		}
	}

	if err := schedule.Save(cfg.Plan.Schedule); err != nil {
		return fmt.Errorf("writing schedule: %w", err)
	}

	if db, err := store.Open(); err != nil {
		log.Warn().Err(err).Msg("run history unavailable")
	} else {
		defer db.Close()
		if runID, err := db.SaveRun(seed, schedule, conflicts); err != nil {
			log.Warn().Err(err).Msg("saving run history failed")
		} else {
			log.Debug().Int64("run", runID).Msg("run recorded")
		}
	}

	if len(conflicts) > 0 {
		fmt.Print(render.Conflicts(conflicts))
	}
	if text, _ := cmd.Flags().GetBool("text"); text {
		fmt.Print(render.Text(schedule))
	}

	if cfg.Notifications.Enabled {
		msg := fmt.Sprintf("Scheduled %d activities across %d days (%d conflicts)",
			schedule.Total(), len(schedule), len(conflicts))
		if err := beeep.Notify("resalloc", msg, ""); err != nil {
			log.Debug().Err(err).Msg("notification failed")
		}
	}

	return nil
}

func runValidate(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	schedule, err := plan.LoadSchedule(cfg.Plan.Schedule)
	if err != nil {
		return err
	}

	conflicts := scheduler.Validate(schedule)
	fmt.Print(render.Conflicts(conflicts))
	return nil
}

func runRender(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	schedule, err := plan.LoadSchedule(cfg.Plan.Schedule)
	if err != nil {
		return err
	}

	if text, _ := cmd.Flags().GetBool("text"); text {
		fmt.Print(render.Text(schedule))
		return nil
	}

	idx, err := availability.Load(cfg.Plan.Availability)
	if err != nil {
		return err
	}

	f, err := os.Create(cfg.Plan.CalendarHTML)
	if err != nil {
		return fmt.Errorf("creating calendar file: %w", err)
	}
	defer f.Close()

	if err := render.HTML(schedule, idx, f); err != nil {
		return err
	}
	fmt.Printf("Calendar view saved to %s\n", cfg.Plan.CalendarHTML)
	return nil
}

func runExport(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	schedule, err := plan.LoadSchedule(cfg.Plan.Schedule)
	if err != nil {
		return err
	}

	output, _ := cmd.Flags().GetString("output")
	f, err := os.Create(output)
	if err != nil {
		return fmt.Errorf("creating ics file: %w", err)
	}
	defer f.Close()

	if err := calendar.Export(schedule, f); err != nil {
		return err
	}
	fmt.Printf("Exported %d events to %s\n", schedule.Total(), output)
	return nil
}

func runView(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	schedule, err := plan.LoadSchedule(cfg.Plan.Schedule)
	if err != nil {
		return err
	}
	if len(schedule) == 0 {
		fmt.Println("Schedule is empty.")
		return nil
	}

	p := tea.NewProgram(tui.NewBrowser(schedule), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running TUI: %w", err)
	}
	return nil
}

func runHistory(cmd *cobra.Command, args []string) error {
	db, err := store.Open()
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer db.Close()

	if id, _ := cmd.Flags().GetInt64("show"); id > 0 {
		schedule, err := db.GetRunSchedule(id)
		if err != nil {
			return err
		}
		if len(schedule) == 0 {
			fmt.Printf("No stored schedule for run %d.\n", id)
			return nil
		}
		fmt.Print(render.Text(schedule))
		return nil
	}

	runs, err := db.ListRuns()
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		return nil
	}

	fmt.Println("Past runs:")
	for _, r := range runs {
		fmt.Printf("  #%-4d %s  seed=%-12d %3d days  %4d placements  %3d backups  %3d conflicts\n",
			r.ID, r.CreatedAt.Format("2006-01-02 15:04"), r.Seed, r.Days, r.Placements, r.Backups, r.Conflicts)
	}
	return nil
}

func runSchema(cmd *cobra.Command, args []string) error {
	input, _ := cmd.Flags().GetString("input")

	reflector := jsonschema.Reflector{}
	var schema *jsonschema.Schema
	switch input {
	case "catalog":
		schema = reflector.Reflect(&plan.Activity{})
	case "availability":
		schema = reflector.Reflect(&availability.Index{})
	default:
		return fmt.Errorf("unknown input document %q (want catalog or availability)", input)
	}

	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling schema: %w", err)
	}
	fmt.Println(string(data))
	return nil
}

func runConfig(cmd *cobra.Command, args []string) error {
	if err := config.EnsureConfigDir(); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	configPath, err := config.ConfigPath()
	if err != nil {
		return err
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		cfg := config.DefaultConfig()
		data := fmt.Sprintf(`[plan]
catalog = "%s"
availability = "%s"
schedule = "%s"
calendar_html = "%s"
activities = %d
months = %d
seed = %d

[log]
level = "%s"

[notifications]
enabled = %t
`,
			cfg.Plan.Catalog,
			cfg.Plan.Availability,
			cfg.Plan.Schedule,
			cfg.Plan.CalendarHTML,
			cfg.Plan.Activities,
			cfg.Plan.Months,
			cfg.Plan.Seed,
			cfg.Log.Level,
			cfg.Notifications.Enabled,
		)
		if err := os.WriteFile(configPath, []byte(data), 0644); err != nil {
			return fmt.Errorf("writing default config: %w", err)
		}
	}

	editor := os.Getenv("EDITOR")
	if editor == "" {
		editor = "vi"
	}

	fmt.Printf("Opening %s with %s...\n", configPath, editor)

	proc := os.ProcAttr{
		Files: []*os.File{os.Stdin, os.Stdout, os.Stderr},
	}
	process, err := os.StartProcess(editor, []string{editor, configPath}, &proc)
	if err != nil {
		fmt.Printf("Could not open editor. Config file is at: %s\n", configPath)
		return nil
	}
	_, err = process.Wait()
	return err
}
