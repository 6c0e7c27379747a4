package cmd

import (
	"fmt"

	"amalgo/pkg/amalgamate"
	"amalgo/pkg/logging"
	"amalgo/pkg/version"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	rootLogger *zap.Logger
	cfg        amalgamate.Config
	showTree   bool
	verbose    bool
)

// RootCmd is the base command. Running amalgo without arguments performs a
// full generation pass using the conventional library layout.
var RootCmd = &cobra.Command{
	Use:   "amalgo",
	Short: "Amalgo generates single-header distributions of multi-file libraries",
	Long: `Amalgo expands the quoted local includes of a header-organized library
into one distributable file, inlining each header exactly once and wrapping
the result with a generation banner and an include guard.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := rootLogger
		if verbose {
			if err := logging.Setup(true, "Amalgo", version.Get().Version); err == nil {
				logger = logging.Logger
			}
		}

		result, err := amalgamate.Generate(cfg, logger)
		if err != nil {
			return fmt.Errorf("amalgamation failed: %w", err)
		}

		if showTree {
			fmt.Print(result.Graph.Render())
		}
		return nil
	},
}

func init() {
	RootCmd.Flags().StringVar(&cfg.Root, "root", ".", "library root directory")
	RootCmd.Flags().StringVar(&cfg.IncludeDir, "include", "include", "header directory under the root")
	RootCmd.Flags().StringVar(&cfg.Entry, "entry", "", "entry header name (default \"<project>.h\")")
	RootCmd.Flags().StringVar(&cfg.Output, "output", "", "generated file path (default \"<root>/single_include/<entry>\")")
	RootCmd.Flags().StringVar(&cfg.Project, "project", "", "project name for the banner (default root directory name)")
	RootCmd.Flags().StringVar(&cfg.Release, "release", "", "version string for the banner")
	RootCmd.Flags().StringVar(&cfg.Guard, "guard", "", "include guard macro (default \"<PROJECT>_SINGLE_INCLUDE_H\")")
	RootCmd.Flags().BoolVar(&showTree, "tree", false, "print the include expansion tree after generating")
	RootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

// Execute wires the provided logger into the command tree and runs it.
func Execute(logger *zap.Logger) error {
	rootLogger = logger
	return RootCmd.Execute()
}
