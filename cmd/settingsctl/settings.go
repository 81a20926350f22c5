// ABOUTME: settings subcommands: list, value and search
// ABOUTME: Print normalized, decoded settings as indented JSON

package main

import (
	"settings-api/api/dto/mappers"
	"settings-api/core/domain"
	"settings-api/core/pagination"
	"settings-api/core/search"
	settingsapi "settings-api/settings-lib"

	"github.com/spf13/cobra"
)

type queryFlags struct {
	env         string
	companyID   string
	key         string
	settingType string
	owner       string
	childObject string
}

func (f *queryFlags) register(cmd *cobra.Command, withKey bool) {
	cmd.Flags().StringVarP(&f.env, "env", "e", "", "environment: pd, in or ac")
	cmd.Flags().StringVarP(&f.companyID, "company", "c", "", "numeric company ID")
	cmd.Flags().StringVar(&f.settingType, "type", "", "setting type: APPLICATION, COMPANY, SCHEDULING_UNIT or USER")
	cmd.Flags().StringVar(&f.owner, "owner", "", "numeric owner ID")
	_ = cmd.MarkFlagRequired("env")
	_ = cmd.MarkFlagRequired("company")

	if withKey {
		cmd.Flags().StringVarP(&f.key, "key", "k", "", "setting key")
		_ = cmd.MarkFlagRequired("key")
		return
	}
	cmd.Flags().StringVarP(&f.key, "key", "k", "", "only settings with this key")
	cmd.Flags().StringVar(&f.childObject, "child-object", "", "upstream child-object filter")
}

func (f *queryFlags) query() settingsapi.Query {
	return settingsapi.Query{
		Environment: domain.Environment(f.env),
		CompanyID:   f.companyID,
		KeyName:     f.key,
		Type:        f.settingType,
		Owner:       f.owner,
		ChildObject: f.childObject,
	}
}

func settingsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Read company settings",
	}

	cmd.AddCommand(settingsListCmd())
	cmd.AddCommand(settingsValueCmd())
	cmd.AddCommand(settingsSearchCmd())

	return cmd
}

func settingsListCmd() *cobra.Command {
	var flags queryFlags

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List a company's settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadApp()
			if err != nil {
				return err
			}
			defer a.sync()

			client, err := a.client()
			if err != nil {
				return err
			}

			q := flags.query()
			list, err := client.ListSettings(cmd.Context(), q)
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), mappers.ToSettingsListResponse(q.Environment, q.CompanyID, list))
		},
	}

	flags.register(cmd, false)
	return cmd
}

func settingsValueCmd() *cobra.Command {
	var flags queryFlags
	var limit, offset int

	cmd := &cobra.Command{
		Use:   "value",
		Short: "Print a window of lines from one setting's value",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadApp()
			if err != nil {
				return err
			}
			defer a.sync()

			client, err := a.client()
			if err != nil {
				return err
			}

			var opts domain.PageOptions
			if cmd.Flags().Changed("limit") {
				opts.Limit = pagination.Int(limit)
			}
			if cmd.Flags().Changed("offset") {
				opts.Offset = pagination.Int(offset)
			}

			res, err := client.SettingValue(cmd.Context(), flags.query(), opts)
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), mappers.ToValueResponse(res))
		},
	}

	flags.register(cmd, true)
	cmd.Flags().IntVar(&limit, "limit", 0, "maximum number of lines (default all)")
	cmd.Flags().IntVar(&offset, "offset", 0, "zero-based first line")
	return cmd
}

func settingsSearchCmd() *cobra.Command {
	var flags queryFlags
	var term string
	var contextLines int

	cmd := &cobra.Command{
		Use:   "search",
		Short: "Search inside one setting's value",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadApp()
			if err != nil {
				return err
			}
			defer a.sync()

			client, err := a.client()
			if err != nil {
				return err
			}

			res, err := client.SearchSetting(cmd.Context(), flags.query(), term, contextLines)
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), mappers.ToSearchResponse(term, res))
		},
	}

	flags.register(cmd, true)
	cmd.Flags().StringVarP(&term, "term", "t", "", "literal text to look for, case-insensitive")
	cmd.Flags().IntVar(&contextLines, "context", search.DefaultContextLines, "lines of context on each side of a match")
	_ = cmd.MarkFlagRequired("term")
	return cmd
}
