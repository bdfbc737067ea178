package main

import (
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/terraincognita07/rangepicker/internal/cli"
	"github.com/terraincognita07/rangepicker/internal/services"
)

func newRootCommand() *cobra.Command {
	v := newViper()
	var configFile string

	root := &cobra.Command{
		Use:          "rangepicker",
		Short:        "Dual-month date range picker service",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return readConfigFile(v, configFile)
		},
	}

	root.PersistentFlags().StringVar(&configFile, "config", "", "Config file (yaml, json or toml)")
	root.PersistentFlags().String("db", "", "SQLite database path (DB_PATH)")
	root.PersistentFlags().String("tz", "", "Time zone used for today and date arithmetic (TZ)")
	_ = v.BindPFlag(configKeyDBPath, root.PersistentFlags().Lookup("db"))
	_ = v.BindPFlag(configKeyTimezone, root.PersistentFlags().Lookup("tz"))

	root.AddCommand(
		newServeCommand(v),
		newShowCommand(v),
		newProfileCommand(v),
		newSecretCommand(),
	)
	return root
}

func newServeCommand(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadServerConfig(v)
			if err != nil {
				return err
			}
			return runServer(cfg)
		},
	}
	cmd.Flags().String("port", "", "Listen port (PORT)")
	_ = v.BindPFlag(configKeyPort, cmd.Flags().Lookup("port"))
	return cmd
}

func newShowCommand(v *viper.Viper) *cobra.Command {
	var (
		profile string
		month   string
		value   string
		lang    string
	)

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the two visible months of a picker",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			options := cli.ShowOptions{
				DBPath:          v.GetString(configKeyDBPath),
				Profile:         profile,
				Month:           month,
				Language:        lang,
				DefaultLanguage: v.GetString(configKeyDefaultLanguage),
				Location:        loadLocation(v),
				Now:             time.Now,
				Highlight:       cli.IsTerminal(cmd.OutOrStdout()),
			}
			if cmd.Flags().Changed("value") {
				options.Value = &value
			}
			return cli.RunShowCommand(cmd.OutOrStdout(), options)
		},
	}
	cmd.Flags().StringVar(&profile, "profile", "", "Profile name")
	cmd.Flags().StringVar(&month, "month", "", "Month to show first (YYYY-MM)")
	cmd.Flags().StringVar(&value, "value", "", "Value to write into the picker")
	cmd.Flags().StringVar(&lang, "lang", "", "Language for titles and day names")
	return cmd
}

func newProfileCommand(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Manage picker profiles",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List profiles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cli.RunProfileListCommand(cmd.OutOrStdout(), v.GetString(configKeyDBPath))
		},
	}

	remove := &cobra.Command{
		Use:   "delete NAME",
		Short: "Delete a profile",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cli.RunProfileDeleteCommand(cmd.OutOrStdout(), v.GetString(configKeyDBPath), args[0])
		},
	}

	cmd.AddCommand(list, newProfileSetCommand(v), remove)
	return cmd
}

func newProfileSetCommand(v *viper.Viper) *cobra.Command {
	var (
		input           services.ProfileInput
		firstDay        int
		minYear         int
		maxYear         int
		closeOnSelected bool
	)

	cmd := &cobra.Command{
		Use:   "set NAME",
		Short: "Create or replace a profile",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input.Name = args[0]
			flags := cmd.Flags()
			if flags.Changed("first-day") {
				input.FirstCalendarDay = &firstDay
			}
			if flags.Changed("min-year") {
				input.MinYear = &minYear
			}
			if flags.Changed("max-year") {
				input.MaxYear = &maxYear
			}
			if flags.Changed("close-on-selected") {
				input.CloseOnSelected = &closeOnSelected
			}
			return cli.RunProfileSetCommand(cmd.OutOrStdout(), v.GetString(configKeyDBPath), input)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&input.Separator, "separator", "", "Separator between from and to")
	flags.StringVar(&input.Format, "format", "", "Output date pattern, e.g. yyyy-MM-dd")
	flags.StringVar(&input.FormatTitle, "title-format", "", "Month title pattern, e.g. MMMM yyyy")
	flags.StringVar(&input.FormatDays, "days-format", "", "Weekday header pattern, e.g. eeeeee")
	flags.IntVar(&firstDay, "first-day", 0, "First weekday column, 0 = Sunday")
	flags.IntVar(&minYear, "min-year", 0, "Earliest year reachable by navigation")
	flags.IntVar(&maxYear, "max-year", 0, "Latest year reachable by navigation")
	flags.BoolVar(&closeOnSelected, "close-on-selected", false, "Close the picker once the range is complete")
	flags.StringVar(&input.Locale, "locale", "", "Locale for titles and day names, e.g. de")
	return cmd
}

func newSecretCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "secret",
		Short: "Print a random value for SECRET_KEY",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cli.RunGenerateSecretCommand(cmd.OutOrStdout())
		},
	}
}
