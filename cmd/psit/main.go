package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/vojtech-kasny/IT-NETWORK/config"
	"github.com/vojtech-kasny/IT-NETWORK/dialog"
	"github.com/vojtech-kasny/IT-NETWORK/internal/archive"
	"github.com/vojtech-kasny/IT-NETWORK/logging"
	"github.com/vojtech-kasny/IT-NETWORK/parallel"
	"github.com/vojtech-kasny/IT-NETWORK/sysinfo"
)

var (
	version    = "dev"
	commitHash = "unknown"
	buildDate  = "unknown"
)

var (
	cfgFile string
	cfg     *config.Config
	log     *logging.Logger
)

var rootCmd = &cobra.Command{
	Use:   "psit",
	Short: "IT-NETWORK admin toolkit - system info, popups and parallel helpers",
	Long: `psit bundles the IT-NETWORK administrative helpers: a system info
collector for local and remote hosts, a report archive, and a popup
dialog builder.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Bootstrap the logger before the config so load warnings have
		// somewhere to go; rebuild it once the debug flag is known.
		log = logging.New(logging.Options{})

		var err error
		cfg, err = config.Load(cfgFile, log)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}

		log = logging.New(logging.Options{DebugEnabled: cfg.DebugEnabled})
		return nil
	},
}

var sysinfoCmd = &cobra.Command{
	Use:   "sysinfo",
	Short: "Collect system information for one or more hosts",
	RunE:  runSysinfo,
}

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Inspect archived system info reports",
}

var historyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List archived reports",
	RunE:  runHistoryList,
}

var historyPurgeCmd = &cobra.Command{
	Use:   "purge",
	Short: "Purge archived reports older than the specified number of days",
	RunE:  runHistoryPurge,
}

var popupCmd = &cobra.Command{
	Use:   "popup",
	Short: "Build a popup dialog and print its markup",
	RunE:  runPopup,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("psit %s (commit: %s, built: %s)\n", version, commitHash, buildDate)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./psit.yaml)")

	sysinfoCmd.Flags().StringSlice("computer", nil, "target host(s); empty collects locally")
	sysinfoCmd.Flags().String("username", "", "user name for remote queries")
	sysinfoCmd.Flags().String("password", "", "password for remote queries")
	sysinfoCmd.Flags().String("unit", "default", "size unit: default, KB, MB or GB")
	sysinfoCmd.Flags().Bool("json", false, "print the report as JSON")
	sysinfoCmd.Flags().Bool("save", false, "store the report in the local archive")
	sysinfoCmd.Flags().String("database", "psit.db", "archive database path")

	historyListCmd.Flags().String("hostname", "", "only list reports for this hostname")
	historyListCmd.Flags().Int("limit", 20, "maximum number of reports to list")
	historyPurgeCmd.Flags().Int("days", 90, "purge reports older than this many days")
	historyCmd.PersistentFlags().String("database", "psit.db", "archive database path")
	historyCmd.AddCommand(historyListCmd)
	historyCmd.AddCommand(historyPurgeCmd)

	popupCmd.Flags().String("title", "", "dialog title (BaseTitle from config when empty)")
	popupCmd.Flags().String("message", "", "dialog message text")
	popupCmd.Flags().String("buttons", string(dialog.ButtonsOK), "button set (OK, OKCancel, YesNo, YesNoCancel, RetryCancel, AbortRetryIgnore)")
	popupCmd.Flags().Int("corner-radius", dialog.DefaultCornerRadius, "window corner radius")
	popupCmd.Flags().Float64("font-size", dialog.DefaultContentFontSize, "content font size")
	popupCmd.Flags().String("font", dialog.DefaultFontFamily, "font family")
	popupCmd.Flags().Bool("no-shadow", false, "disable the drop shadow")

	rootCmd.AddCommand(sysinfoCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(popupCmd)
	rootCmd.AddCommand(versionCmd)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func runSysinfo(cmd *cobra.Command, args []string) error {
	hosts, _ := cmd.Flags().GetStringSlice("computer")
	username, _ := cmd.Flags().GetString("username")
	password, _ := cmd.Flags().GetString("password")
	unitFlag, _ := cmd.Flags().GetString("unit")
	asJSON, _ := cmd.Flags().GetBool("json")
	save, _ := cmd.Flags().GetBool("save")
	dbPath, _ := cmd.Flags().GetString("database")

	unit, err := sysinfo.ParseUnit(unitFlag)
	if err != nil {
		return err
	}

	var store *archive.Store
	if save {
		store, err = archive.New(dbPath)
		if err != nil {
			return fmt.Errorf("open archive: %w", err)
		}
		defer store.Close()
	}

	if len(hosts) == 0 {
		hosts = []string{""}
	}
	ctx := cmd.Context()

	var failed int
	results := parallel.InvokeOnHosts(ctx, hosts, func(ctx context.Context, host string) (any, error) {
		q, err := newQuerier(host, username, password)
		if err != nil {
			return nil, err
		}
		return sysinfo.Collect(ctx, q, unit)
	})

	for res := range results {
		target := res.Host
		if target == "" {
			target = "localhost"
		}

		if res.Err != nil {
			failed++
			log.Error(fmt.Sprintf("%s: %v", target, res.Err))
			continue
		}

		rep := res.Value.(*sysinfo.Report)
		log.Debug(fmt.Sprintf("%s: collected in %s", target, res.Elapsed.Truncate(time.Millisecond)))

		if asJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			if err := enc.Encode(rep); err != nil {
				return fmt.Errorf("encode report: %w", err)
			}
		} else {
			printReport(rep, unit)
		}

		if store != nil {
			id, err := store.Insert(ctx, rep, unit)
			if err != nil {
				return fmt.Errorf("archive report: %w", err)
			}
			log.Info(fmt.Sprintf("report for %s archived as #%d", target, id))
		}
	}

	if failed > 0 {
		return fmt.Errorf("collection failed for %d host(s)", failed)
	}
	return nil
}

func printReport(rep *sysinfo.Report, unit sysinfo.Unit) {
	suffix := ""
	if unit != sysinfo.UnitDefault {
		suffix = " " + string(unit)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "ComputerName\t%s\n", rep.ComputerName)
	fmt.Fprintf(w, "FQDN\t%s\n", rep.FQDN)
	fmt.Fprintf(w, "Manufacturer\t%s\n", rep.Manufacturer)
	fmt.Fprintf(w, "Model\t%s\n", rep.Model)
	fmt.Fprintf(w, "RAM\t%d%s\n", rep.RAM, suffix)
	fmt.Fprintf(w, "SystemDiskLetter\t%s\n", rep.SystemDiskLetter)
	fmt.Fprintf(w, "SystemDiskSize\t%d%s\n", rep.SystemDiskSize, suffix)
	fmt.Fprintf(w, "SystemDiskFreeSpace\t%d%s\n", rep.SystemDiskFreeSpace, suffix)
	fmt.Fprintf(w, "ProcessorCount\t%d\n", rep.ProcessorCount)
	fmt.Fprintf(w, "CoreCount\t%d\n", rep.CoreCount)
	fmt.Fprintf(w, "Uptime\t%s\n", rep.Uptime)
	fmt.Fprintf(w, "LastBootTime\t%s\n", rep.LastBootTime.Format(time.RFC3339))
	fmt.Fprintf(w, "OSName\t%s\n", rep.OSName)
	fmt.Fprintf(w, "OSVersion\t%s\n", rep.OSVersion)
	fmt.Fprintf(w, "OSInstallDate\t%s\n", rep.OSInstallDate.Format(time.RFC3339))
	fmt.Fprintf(w, "OSArchitecture\t%s\n", rep.OSArchitecture)
	fmt.Fprintf(w, "BiosVersion\t%s\n", rep.BiosVersion)
	fmt.Fprintf(w, "BiosSerialNumber\t%s\n", rep.BiosSerialNumber)
	w.Flush()
}

func runHistoryList(cmd *cobra.Command, args []string) error {
	hostname, _ := cmd.Flags().GetString("hostname")
	limit, _ := cmd.Flags().GetInt("limit")
	dbPath, _ := cmd.Flags().GetString("database")

	store, err := archive.New(dbPath)
	if err != nil {
		return fmt.Errorf("open archive: %w", err)
	}
	defer store.Close()

	records, err := store.List(cmd.Context(), archive.ListFilter{
		Hostname: hostname,
		Limit:    limit,
	})
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tHOSTNAME\tFQDN\tUNIT\tCOLLECTED")
	for _, rec := range records {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n",
			rec.ID, rec.Hostname, rec.FQDN, rec.Unit,
			rec.CollectedAt.Format(time.RFC3339))
	}
	return w.Flush()
}

func runHistoryPurge(cmd *cobra.Command, args []string) error {
	days, _ := cmd.Flags().GetInt("days")
	dbPath, _ := cmd.Flags().GetString("database")

	store, err := archive.New(dbPath)
	if err != nil {
		return fmt.Errorf("open archive: %w", err)
	}
	defer store.Close()

	n, err := store.Purge(cmd.Context(), time.Duration(days)*24*time.Hour)
	if err != nil {
		return fmt.Errorf("purge: %w", err)
	}

	fmt.Printf("Purged %d reports older than %d days\n", n, days)
	return nil
}

func runPopup(cmd *cobra.Command, args []string) error {
	title, _ := cmd.Flags().GetString("title")
	message, _ := cmd.Flags().GetString("message")
	buttons, _ := cmd.Flags().GetString("buttons")
	radius, _ := cmd.Flags().GetInt("corner-radius")
	fontSize, _ := cmd.Flags().GetFloat64("font-size")
	font, _ := cmd.Flags().GetString("font")
	noShadow, _ := cmd.Flags().GetBool("no-shadow")

	if title == "" && cfg.EnableCustomTitle {
		title = cfg.BaseTitle
	}
	if message == "" {
		return fmt.Errorf("--message is required")
	}

	spec := dialog.New(title, message,
		dialog.WithButtons(dialog.ButtonSet(buttons)),
		dialog.WithCornerRadius(radius),
		dialog.WithContentFontSize(fontSize),
		dialog.WithFontFamily(font),
		dialog.WithShadow(!noShadow),
	)

	doc, err := spec.Build()
	if err != nil {
		return err
	}

	markup, err := doc.Markup()
	if err != nil {
		return err
	}

	fmt.Println(markup)
	return nil
}
