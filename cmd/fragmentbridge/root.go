package fragmentbridge

import (
	"os"

	"github.com/spf13/cobra"
)

// flags holds the persistent command line flags
type flags struct {
	configFile    string
	debugMode     bool
	onlyAvailable bool
	categories    string
}

// NewRootCommand builds the fragment-bridge command tree
func NewRootCommand() *cobra.Command {
	f := &flags{}

	rootCmd := &cobra.Command{
		Use:   "fragment-bridge",
		Short: "Expose fragment loaders as tools a model can call",
		Long: `fragment-bridge wraps fragment loaders as tools.

Each tool takes a single reference string and returns the text produced by
the loader registered for its scheme:

- load_yt      YouTube transcript   (yt loader)
- load_github  GitHub repository    (github loader)
- load_pdf     PDF text extraction  (pdf loader)

Loaders are external commands configured per scheme in the config file.`,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&f.configFile, "config", "", "Config file path (default is $HOME/.config/fragment-bridge/config.json)")
	rootCmd.PersistentFlags().BoolVar(&f.debugMode, "debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&f.onlyAvailable, "only-available", false, "Register only tools whose loader is configured")
	rootCmd.PersistentFlags().StringVar(&f.categories, "categories", "", "Comma-separated tool categories to enable")

	rootCmd.AddCommand(
		newToolsCommand(f),
		newCallCommand(f),
		newLoadersCommand(f),
	)

	return rootCmd
}

// Execute runs the root command and exits non-zero on failure
func Execute() {
	if err := NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
