package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"go-bug-smashers/internal/storage"
	"go-bug-smashers/internal/utils"
)

var (
	flagLimit int
	flagCSV   string
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the best runs",
	Long: `Display the best runs ordered by survived time, then kills.

Examples:
  bugsmash scores
  bugsmash scores --limit 20
  bugsmash scores --csv runs.csv`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of runs to show")
	scoresCmd.Flags().StringVar(&flagCSV, "csv", "", "Export every run to this CSV file")
}

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#32CD32"))
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FAFAFA"))
	rowStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#C0C0C0"))
	bestStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FFD700"))
	dimStyle    = lipgloss.NewStyle().Faint(true)
)

func runScores(cmd *cobra.Command, args []string) error {
	cfg, logger, err := setup()
	if err != nil {
		return err
	}
	defer logger.Sync()

	store, err := storage.Open(cfg.Storage.DBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	if flagCSV != "" {
		return exportRuns(store, flagCSV)
	}

	runs, err := store.TopRuns(flagLimit)
	if err != nil {
		return fmt.Errorf("retrieving runs: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, titleStyle.Render("Best runs - Super Bug Smashers"))
	fmt.Fprintln(out)
	if len(runs) == 0 {
		fmt.Fprintln(out, "No runs recorded yet.")
		fmt.Fprintln(out, dimStyle.Render("Play 'bugsmash' to set the first record!"))
		return nil
	}

	p := message.NewPrinter(language.English)
	fmt.Fprintln(out, headerStyle.Render(fmt.Sprintf("  %-4s  %-9s  %-8s  %-5s  %s", "Rank", "Survived", "Kills", "Level", "Date")))
	for i, run := range runs {
		line := p.Sprintf("  %-4d  %-9s  %-8d  %-5d  %s",
			i+1, utils.FormatClock(run.SurvivedSeconds), run.Kills, run.Level, run.CreatedAt.Format("2006-01-02 15:04"))
		style := rowStyle
		if i == 0 {
			style = bestStyle
		}
		fmt.Fprintln(out, style.Render(line))
	}

	all, err := store.AllRuns()
	if err != nil {
		return fmt.Errorf("retrieving runs: %w", err)
	}
	sum := storage.Summarize(all)
	fmt.Fprintln(out)
	fmt.Fprintln(out, dimStyle.Render(p.Sprintf("%d runs   best %s   mean %.1fs   median %.1fs   stddev %.1fs",
		sum.Count, utils.FormatClock(sum.Best), sum.Mean, sum.Median, sum.StdDev)))
	return nil
}

func exportRuns(store *storage.Store, path string) error {
	runs, err := store.AllRuns()
	if err != nil {
		return fmt.Errorf("retrieving runs: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()
	if err := storage.ExportCSV(f, runs); err != nil {
		return fmt.Errorf("writing csv: %w", err)
	}
	fmt.Printf("Exported %d runs to %s\n", len(runs), path)
	return nil
}
