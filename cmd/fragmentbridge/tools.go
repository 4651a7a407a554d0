package fragmentbridge

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/navicore/fragment-bridge/pkg/tools/categories/bridge"
	"github.com/navicore/fragment-bridge/pkg/ui"
)

func newToolsCommand(f *flags) *cobra.Command {
	toolsCmd := &cobra.Command{
		Use:   "tools",
		Short: "Inspect the registered tools",
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List tools with their scheme and loader availability",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := setup(f, nil)
			if err != nil {
				return err
			}
			defer env.logger.Sync()

			var rows []ui.ToolRow
			for _, info := range env.manager.ListTools() {
				row := ui.ToolRow{Name: info.Name, Enabled: info.Enabled}
				if entry, ok := bridge.Lookup(info.Name); ok {
					row.Scheme = entry.Scheme
					row.Plugin = entry.Plugin
					row.Available = env.loaders.Has(entry.Scheme)
				}
				rows = append(rows, row)
			}

			if len(rows) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No tools registered")
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.ToolTable(rows))
			return nil
		},
	}

	schemaCmd := &cobra.Command{
		Use:   "schema",
		Short: "Print JSON definitions of the enabled tools",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := setup(f, nil)
			if err != nil {
				return err
			}
			defer env.logger.Sync()

			data, err := json.MarshalIndent(env.manager.GetTools(), "", "  ")
			if err != nil {
				return fmt.Errorf("failed to marshal tool definitions: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return nil
		},
	}

	toolsCmd.AddCommand(listCmd, schemaCmd)
	return toolsCmd
}

func newLoadersCommand(f *flags) *cobra.Command {
	return &cobra.Command{
		Use:   "loaders",
		Short: "List configured fragment loaders",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := setup(f, nil)
			if err != nil {
				return err
			}
			defer env.logger.Sync()

			schemes := env.loaders.Schemes()
			if len(schemes) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No fragment loaders configured")
				return nil
			}
			for _, scheme := range schemes {
				lc := env.cfg.Loaders[scheme]
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s %s\n", scheme, lc.Command, strings.Join(lc.Args, " "))
			}
			return nil
		},
	}
}
