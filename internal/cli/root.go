package cli

import (
	"embed"
	stderrors "errors"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/appin/internal/version"
	"github.com/arthur-debert/appin/pkg/cobrax/topics"
	"github.com/arthur-debert/appin/pkg/config"
	"github.com/arthur-debert/appin/pkg/filesystem"
	"github.com/arthur-debert/appin/pkg/logging"
	"github.com/arthur-debert/appin/pkg/paths"
	"github.com/arthur-debert/appin/pkg/ui"
)

//go:embed docs
var docsFS embed.FS

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	var (
		verbosity  int
		formatName string
		req        Request
	)

	rootCmd := &cobra.Command{
		Use:     "appin [bundles...]",
		Short:   MsgShort,
		Long:    MsgLong,
		Example: MsgExample,
		Version: version.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		DisableAutoGenTag: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			req.Tokens = args
			plan := Dispatch(req)

			format, err := ui.ParseFormat(formatName)
			if err != nil {
				return err
			}

			settings, err := config.Load()
			if err != nil {
				return err
			}

			dirs, err := paths.New(settings.BundleDir, settings.DesktopDir, settings.IconDir)
			if err != nil {
				return err
			}

			a := newApp(settings, dirs, filesystem.NewOS(), ui.Resolve(format, os.Stdout), cmd.OutOrStdout())
			return a.Run(plan, cmd)
		},
	}

	// Operation flags, mutually exclusive in priority order (see Dispatch)
	rootCmd.Flags().StringVarP(&req.Show, "show-desktop", "s", "", "Print the launcher entry for the named bundle and exit")
	rootCmd.Flags().BoolVarP(&req.InstallRuntime, "install-libfuse2", "i", false, "Ensure the FUSE runtime package is installed")
	rootCmd.Flags().BoolVarP(&req.List, "list", "l", false, "Report which bundles have a launcher entry and exit")
	rootCmd.Flags().StringVarP(&req.Remove, "remove-desktop", "r", "", "Remove the launcher entry for the named bundle and exit")
	rootCmd.Flags().BoolVarP(&req.Create, "create-desktop", "c", false, "Regenerate launcher entries for the resolved bundles")
	rootCmd.Flags().BoolVar(&req.GenConfig, "gen-config", false, "Print the default configuration as TOML and exit")

	// Global flags
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)")
	rootCmd.PersistentFlags().StringVar(&formatName, "format", "auto", "Output format: auto, term or text")

	rootCmd.AddCommand(newVersionCmd())

	// Topic-based help from the embedded docs; markdown is rendered with
	// glamour only when talking to a terminal
	topicOpts := topics.Options{}
	if stdoutIsTerminal() {
		topicOpts.Renderer = topics.NewGlamourRenderer()
	}
	if err := topics.InitializeWithOptions(rootCmd, docsFS, "docs", topicOpts); err != nil {
		log.Warn().Err(err).Msg("Failed to initialize help topics")
	}

	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long:  `Print detailed version information including commit hash and build date`,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("appin version %s\n", version.Version)
			if version.Commit != "" {
				fmt.Printf("Commit: %s\n", version.Commit)
			}
			if version.Date != "" {
				fmt.Printf("Built:  %s\n", version.Date)
			}
		},
	}
}

// Main runs the CLI and returns the process exit code
func Main() int {
	initTemplateFormatting()

	rootCmd := NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		if stderrors.Is(err, errWarned) {
			// Already reported as a warning
			return 1
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}
