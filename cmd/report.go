package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"clinical-trial-system/config"
	"clinical-trial-system/internal/client/report"
	"clinical-trial-system/internal/client/session"

	"github.com/spf13/cobra"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Report client against a running server",
	Long: `Report client against a running server.

Examples:
  ctms report login -u root -p root
  ctms report summary
  ctms report export --out ./exports
  ctms report logout`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config.Init()
		if reportServer == "" {
			reportServer = config.Get().Client.Server
		}
		return nil
	},
}

var reportLoginCmd = &cobra.Command{
	Use:   "login",
	Short: "Log in and save the session",
	RunE:  runReportLogin,
}

var reportLogoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Clear the saved session",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := newReportClient()
		if err != nil {
			return err
		}
		if err := c.Logout(); err != nil {
			return err
		}
		fmt.Println("Logged out.")
		return nil
	},
}

var reportSummaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Fetch summary and participation, print derived metrics",
	RunE:  runReportSummary,
}

var reportExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Download the snapshot and write the three-sheet workbook",
	RunE:  runReportExport,
}

// Flags
var (
	reportServer   string
	reportUsername string
	reportPassword string
	reportOutDir   string
)

func init() {
	reportCmd.AddCommand(reportLoginCmd, reportLogoutCmd, reportSummaryCmd, reportExportCmd)

	reportCmd.PersistentFlags().StringVarP(&reportServer, "server", "s", "", "API base URL (default from config)")
	for _, c := range []*cobra.Command{reportLoginCmd, reportSummaryCmd, reportExportCmd} {
		c.Flags().StringVarP(&reportUsername, "username", "u", "", "Username, logs in before the command runs")
		c.Flags().StringVarP(&reportPassword, "password", "p", "", "Password")
	}
	reportExportCmd.Flags().StringVarP(&reportOutDir, "out", "o", ".", "Output directory")
}

func sessionFile() string {
	if path := config.Get().Client.SessionFile; path != "" {
		return path
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "ctms", "session.json")
}

func newReportClient() (*report.Client, error) {
	sess, err := session.New(sessionFile())
	if err != nil {
		return nil, fmt.Errorf("failed to load session: %w", err)
	}
	sess.Subscribe(func(st *session.State) {
		if st == nil {
			fmt.Fprintln(os.Stderr, "Session cleared.")
		}
	})
	return report.NewClient(reportServer, sess), nil
}

// loggedInClient 提供了用户名时先登录，否则沿用已保存的会话
func loggedInClient(cmd *cobra.Command) (*report.Client, error) {
	c, err := newReportClient()
	if err != nil {
		return nil, err
	}
	if reportUsername != "" {
		if _, err := c.Login(cmd.Context(), reportUsername, reportPassword); err != nil {
			return nil, fmt.Errorf("login failed: %w", err)
		}
	}
	return c, nil
}

func runReportLogin(cmd *cobra.Command, args []string) error {
	if reportUsername == "" {
		return fmt.Errorf("--username is required")
	}
	c, err := loggedInClient(cmd)
	if err != nil {
		return err
	}
	st := c.Session().Get()
	fmt.Printf("Logged in as %s (%s).\n", st.User.Username, st.User.Role)
	return nil
}

func runReportSummary(cmd *cobra.Command, args []string) error {
	c, err := loggedInClient(cmd)
	if err != nil {
		return err
	}
	d := report.NewDashboard(c)
	if err := d.Load(cmd.Context()); err != nil {
		return fmt.Errorf("failed to load reports: %w", err)
	}

	v := d.View()
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Trials:           %d\n", v.Summary.Summary.Trials)
	fmt.Fprintf(out, "Participants:     %d\n", v.Summary.Summary.Participants)
	fmt.Fprintf(out, "Activities:       %d\n", v.Summary.Summary.Activities)
	fmt.Fprintf(out, "Active trials:    %d\n", v.Metrics.ActiveTrials)
	fmt.Fprintf(out, "Completion rate:  %.1f%%\n", v.Metrics.CompletionRate)
	fmt.Fprintf(out, "Avg activities:   %.1f\n", v.Metrics.AvgActivities)

	fmt.Fprintln(out, "\nStatus breakdown:")
	for _, st := range v.Summary.StatusStats {
		fmt.Fprintf(out, "  %-10s %d\n", st.Status, st.Count)
	}
	fmt.Fprintln(out, "\nParticipation:")
	for _, p := range v.Participation {
		fmt.Fprintf(out, "  %-30s %d\n", p.TrialName, p.ParticipantCount)
	}
	return nil
}

func runReportExport(cmd *cobra.Command, args []string) error {
	c, err := loggedInClient(cmd)
	if err != nil {
		return err
	}
	path, err := c.ExportWorkbook(cmd.Context(), reportOutDir, config.Get().Product, time.Now())
	if err != nil {
		return fmt.Errorf("export failed, no file written: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Exported %s\n", path)
	return nil
}
