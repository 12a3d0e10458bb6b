package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"keymaze/pkg/engine/terminal"
	"keymaze/pkg/game/generator"
	"keymaze/pkg/game/renderer"
	"keymaze/pkg/game/solver"
)

var version = "dev"

// --- Global Command Variables ---
var (
	debug     bool
	noColor   bool
	localeDir string
	lang      string

	frontierName string
	branchName   string
	stateLimit   int
	showMaze     bool
	dumpPath     string
	metricsFile  string

	genOptions = generator.DefaultOptions
	genCount   int
	genSeed    int64
	genYAML    bool

	rootCmd = &cobra.Command{
		Use:   "keymaze",
		Short: "Find the fewest steps for robots to collect every key in a maze",
		Long: `keymaze reads bordered grid mazes of walls (#), floor (.), robots (@),
keys (a-z) and doors (A-Z), and reports the minimum total number of steps
the robots need to collect every key.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			setupLogging(cmd.ErrOrStderr(), debug)
			renderer.SetColor(!noColor && terminal.IsTerminal(os.Stdout))
			if localeDir != "" {
				renderer.InitLocale(localeDir, lang)
			}
		},
	}

	solveCmd = &cobra.Command{
		Use:   "solve [file...]",
		Short: "Solve mazes from text or YAML files (stdin when none given)",
		RunE: func(cmd *cobra.Command, args []string) error {
			frontier, err := solver.ParseFrontier(frontierName)
			if err != nil {
				return err
			}
			branching, err := solver.ParseBranching(branchName)
			if err != nil {
				return err
			}
			return solveAll(cmd.OutOrStdout(), inputPaths(args), solveConfig{
				frontier:    frontier,
				branching:   branching,
				stateLimit:  stateLimit,
				show:        showMaze,
				dump:        dumpPath,
				metricsFile: metricsFile,
			})
		},
	}

	checkCmd = &cobra.Command{
		Use:   "check [file...]",
		Short: "Validate mazes without solving them",
		RunE: func(cmd *cobra.Command, args []string) error {
			return checkAll(cmd.OutOrStdout(), inputPaths(args))
		},
	}

	renderCmd = &cobra.Command{
		Use:   "render [file...]",
		Short: "Draw mazes in the terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			return renderAll(cmd.OutOrStdout(), inputPaths(args))
		},
	}

	generateCmd = &cobra.Command{
		Use:   "generate",
		Short: "Generate random mazes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return generateAll(cmd.OutOrStdout(), generateConfig{
				opts:   genOptions,
				count:  genCount,
				seed:   genSeed,
				asYAML: genYAML,
			})
		},
	}

	versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "keymaze", version)
		},
	}
)

func init() {
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Log search progress at debug level")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable coloured output")
	rootCmd.PersistentFlags().StringVar(&localeDir, "locale", "", "Directory holding message catalogs")
	rootCmd.PersistentFlags().StringVar(&lang, "lang", "en_GB", "Language of the message catalog")

	rootCmd.AddCommand(solveCmd)
	solveCmd.Flags().StringVar(&frontierName, "frontier", "ordered", "Frontier discipline: 'ordered' (fewest steps first) or 'fifo'")
	solveCmd.Flags().StringVar(&branchName, "branch", "nearest", "Transitions per robot: 'nearest' key only or 'all' reachable keys")
	solveCmd.Flags().IntVar(&stateLimit, "state-limit", 0, "Abort after this many distinct configurations (0 = unlimited)")
	solveCmd.Flags().BoolVar(&showMaze, "show", false, "Draw each maze and print search statistics")
	solveCmd.Flags().StringVar(&dumpPath, "dump", "", "Write a debug dump of each maze and its search to this file")
	solveCmd.Flags().StringVar(&metricsFile, "metrics-file", "", "Write prometheus metrics for the run to this textfile")

	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(generateCmd)
	generateCmd.Flags().IntVar(&genOptions.Width, "width", genOptions.Width, "Grid columns including the border")
	generateCmd.Flags().IntVar(&genOptions.Height, "height", genOptions.Height, "Grid rows including the border")
	generateCmd.Flags().IntVar(&genOptions.Robots, "robots", genOptions.Robots, "Number of robots")
	generateCmd.Flags().IntVar(&genOptions.Keys, "keys", genOptions.Keys, "Number of keys (at most 26)")
	generateCmd.Flags().IntVar(&genOptions.Doors, "doors", genOptions.Doors, "Number of doors (at most the number of keys)")
	generateCmd.Flags().IntVar(&genCount, "count", 1, "Number of mazes to generate")
	generateCmd.Flags().Int64Var(&genSeed, "seed", 0, "Random seed (0 = time based)")
	generateCmd.Flags().BoolVar(&genYAML, "yaml", false, "Emit a YAML puzzle set with expected answers")

	rootCmd.AddCommand(versionCmd)
}
