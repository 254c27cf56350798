package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/armature"
	"github.com/aretw0/armature/internal/logging"
)

// exportCmd represents the export command
var exportCmd = &cobra.Command{
	Use:   "export <spec.yaml>",
	Short: "Export a model description to URDF",
	Long:  `Loads the YAML model description, validates the kinematic tree and writes the URDF document to the output file (or stdout).`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		output, _ := cmd.Flags().GetString("output")
		name, _ := cmd.Flags().GetString("name")

		exp, err := armature.New(args[0],
			armature.WithLogger(cmdLogger(cmd)),
			armature.WithRobotName(name),
		)
		if err != nil {
			fmt.Printf("Error loading model: %v\n", err)
			os.Exit(1)
		}

		if output == "" {
			err = exp.Export(os.Stdout)
		} else {
			err = exp.ExportFile(output)
		}
		if err != nil {
			fmt.Printf("Error exporting URDF: %v\n", err)
			os.Exit(1)
		}
		if output != "" {
			fmt.Printf("Exported %s to %s\n", exp.Name(), output)
		}
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().StringP("output", "o", "", "Output URDF file (default: stdout)")
	exportCmd.Flags().String("name", "", "Override the robot name")
}

// cmdLogger builds the shared CLI logger honoring --verbose.
func cmdLogger(cmd *cobra.Command) *slog.Logger {
	level := slog.LevelWarn
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		level = slog.LevelDebug
	}
	return logging.New(level)
}
