package fragmentbridge

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/navicore/fragment-bridge/pkg/tools/categories/bridge"
	"github.com/navicore/fragment-bridge/pkg/tools/core"
	"github.com/navicore/fragment-bridge/pkg/ui"
)

func newCallCommand(f *flags) *cobra.Command {
	cf := &callFlags{}

	callCmd := &cobra.Command{
		Use:   "call <tool> <argument>",
		Short: "Invoke a tool the way a model would",
		Example: `  fragment-bridge call load_yt dQw4w9WgXcQ
  fragment-bridge call load_github simonw/llm --protect
  fragment-bridge call load_pdf https://example.com/report.pdf --download-pdf --render`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := setup(f, cf)
			if err != nil {
				return err
			}
			defer env.logger.Sync()

			input, err := json.Marshal(bridge.Input{Argument: &args[1]})
			if err != nil {
				return err
			}

			result, err := env.manager.HandleToolUse(cmd.Context(), &core.ToolUse{
				Name:  args[0],
				Input: input,
			})
			if err != nil {
				return err
			}

			var text string
			if err := json.Unmarshal(result.Result, &text); err != nil {
				return fmt.Errorf("tool %s returned non-text result: %w", args[0], err)
			}

			if cf.copy {
				if err := ui.CopyToClipboard(text); err != nil {
					env.logger.Warn("failed to copy result to clipboard", zap.Error(err))
				}
			}

			out := text
			if cf.render {
				if out, err = ui.RenderMarkdown(text, cf.width); err != nil {
					return err
				}
			}
			fmt.Fprint(cmd.OutOrStdout(), out)
			return nil
		},
	}

	callCmd.Flags().BoolVar(&cf.protect, "protect", false, "Filter GitHub noise files and truncate long output")
	callCmd.Flags().IntVar(&cf.maxChars, "max-chars", 0, "Truncation limit used with --protect")
	callCmd.Flags().BoolVar(&cf.downloadPDF, "download-pdf", false, "Download http(s) PDF arguments before loading")
	callCmd.Flags().BoolVar(&cf.render, "render", false, "Render the result as markdown")
	callCmd.Flags().IntVar(&cf.width, "width", 100, "Wrap width for --render")
	callCmd.Flags().BoolVar(&cf.copy, "copy", false, "Copy the result to the clipboard")

	return callCmd
}
