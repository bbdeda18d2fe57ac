package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"castor/internal/observ"
	"castor/internal/ui"
	"castor/internal/verify"
)

var (
	verifyJobs    int
	verifyAll     bool
	verifyPlain   bool
	verifyTimings bool
)

// verifyListLimit bounds the finding list without --all.
const verifyListLimit = 20

func init() {
	verifyCmd.Flags().IntVar(&verifyJobs, "jobs", 0, "worker parallelism (0 = GOMAXPROCS)")
	verifyCmd.Flags().BoolVar(&verifyAll, "all", false, "list every drifting probe")
	verifyCmd.Flags().BoolVar(&verifyPlain, "plain", false, "disable the progress UI")
	verifyCmd.Flags().BoolVar(&verifyTimings, "timings", false, "show timing information")
}

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Audit result-kind drift between legacy and weak promotion",
	RunE: func(cmd *cobra.Command, args []string) error {
		timer := observ.NewTimer()
		phase := timer.Begin("audit")
		report, err := runAudit(cmd)
		timer.End(phase, fmt.Sprintf("%d probes", report.Probes))
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		quiet, _ := cmd.Flags().GetBool("quiet")

		p := message.NewPrinter(language.English)
		p.Fprintf(out, "%d probes audited, %d drifted\n", report.Probes, len(report.Findings))
		if verifyTimings {
			fmt.Fprint(out, timer.Summary())
		}

		if quiet {
			return nil
		}
		limit := len(report.Findings)
		if !verifyAll && limit > verifyListLimit {
			limit = verifyListLimit
		}
		for _, f := range report.Findings[:limit] {
			if f.Note != "" {
				fmt.Fprintf(out, "  %s (%s): %s\n", f.Probe, f.Op, f.Note)
				continue
			}
			fmt.Fprintf(out, "  %s (%s): legacy %s, weak %s\n", f.Probe, f.Op, f.Legacy, f.Weak)
		}
		if limit < len(report.Findings) {
			p.Fprintf(out, "  ... and %d more (use --all)\n", len(report.Findings)-limit)
		}
		return nil
	},
}

type auditOutcome struct {
	report verify.Report
	err    error
}

func runAudit(cmd *cobra.Command) (verify.Report, error) {
	ctx := cmd.Context()
	if verifyPlain || !isTerminal(os.Stdout) {
		return verify.Run(ctx, verify.Options{Jobs: verifyJobs})
	}

	events := make(chan verify.Event, 256)
	outcomeCh := make(chan auditOutcome, 1)

	go func() {
		report, err := verify.Run(ctx, verify.Options{
			Jobs:     verifyJobs,
			Progress: verify.ChannelSink{Ch: events},
		})
		outcomeCh <- auditOutcome{report: report, err: err}
		close(events)
	}()

	model := ui.NewProgressModel("auditing promotion drift", verify.ProbeCount(), events)
	program := tea.NewProgram(model, tea.WithOutput(os.Stdout))
	_, uiErr := program.Run()
	outcome := <-outcomeCh
	if uiErr != nil {
		return outcome.report, uiErr
	}
	return outcome.report, outcome.err
}
