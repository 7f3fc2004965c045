package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	app := &app{}

	rootCmd := &cobra.Command{
		Use:   "haydaycalc",
		Short: "Hay Day production building slot calculator",
		Long: `haydaycalc estimates the diamonds and coins needed to unlock the
remaining slots of your production buildings.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return app.init(cmd)
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			app.close()
		},
	}

	rootCmd.PersistentFlags().StringVar(&app.configPath, "config", "", "config file (YAML)")
	rootCmd.PersistentFlags().StringVar(&app.catalogPath, "catalog", "", "catalog file overriding the built-in cost tables")
	rootCmd.PersistentFlags().BoolVarP(&app.verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(kindsCmd(app))
	rootCmd.AddCommand(costCmd(app))
	rootCmd.AddCommand(planCmd(app))
	rootCmd.AddCommand(validateCmd(app))
	rootCmd.AddCommand(serveCmd(app))
	rootCmd.AddCommand(tuiCmd(app))

	return rootCmd
}

func kindsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "kinds",
		Short: "List every plannable building kind",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			printKinds(cmd.OutOrStdout(), a.catalog.Kinds())
			return nil
		},
	}
}

func costCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "cost <kind> <current> <target>",
		Short: "Price one upgrade of a single instance",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runCost(cmd.OutOrStdout(), args[0], args[1], args[2])
		},
	}
}

func planCmd(a *app) *cobra.Command {
	var (
		sets      []string
		reduction int
		asJSON    bool
		all       bool
	)

	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Price every building with optional per-instance ranges",
		Long: `plan starts every instance at its default range (start slots to max
slots), applies --reduce, then each --set in order.

--set takes Name[#n]=current:target; without #n every instance of the kind
is set. Instances are numbered from 1.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var rp *int
			if cmd.Flags().Changed("reduce") {
				rp = &reduction
			}
			return a.runPlan(cmd.OutOrStdout(), rp, sets, asJSON, all)
		},
	}

	cmd.Flags().StringArrayVar(&sets, "set", nil, "instance range, Name[#n]=current:target (repeatable)")
	cmd.Flags().IntVarP(&reduction, "reduce", "r", 0, "reduce every target by this many slots (0-8)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the plan as JSON")
	cmd.Flags().BoolVar(&all, "all", false, "list buildings with no remaining cost too")
	return cmd
}

func validateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "validate [catalog.yaml]",
		Short: "Validate a catalog without pricing anything",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := ""
			if len(args) == 1 {
				path = args[0]
			}
			return a.runValidate(cmd.OutOrStdout(), path)
		},
	}
}

func serveCmd(a *app) *cobra.Command {
	var port int
	var host string
	var watchCatalog bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the web calculator",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Flags().Changed("port") {
				a.cfg.Server.Port = port
			}
			if cmd.Flags().Changed("host") {
				a.cfg.Server.Host = host
			}
			return a.runServe(cmd.Context(), watchCatalog)
		},
	}

	cmd.Flags().IntVarP(&port, "port", "p", 3000, "HTTP server port")
	cmd.Flags().StringVar(&host, "host", "", "HTTP listen host")
	cmd.Flags().BoolVar(&watchCatalog, "watch", false, "reload the catalog file when it changes")
	return cmd
}

func tuiCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Plan upgrades interactively in the terminal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runTUI(cmd.OutOrStdout())
		},
	}
}
