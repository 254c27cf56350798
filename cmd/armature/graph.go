package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/armature"
	"github.com/aretw0/armature/internal/presentation/graph"
)

// graphCmd represents the graph command
var graphCmd = &cobra.Command{
	Use:   "graph <spec.yaml>",
	Short: "Export the kinematic tree visualization",
	Long:  `Inspects the model description and outputs a Mermaid diagram (graph TD) of the kinematic tree, with joints as labeled edges.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		exp, err := armature.New(args[0], armature.WithLogger(cmdLogger(cmd)))
		if err != nil {
			fmt.Printf("Error loading model: %v\n", err)
			os.Exit(1)
		}

		links, err := exp.Inspect()
		if err != nil {
			fmt.Printf("Error inspecting tree: %v\n", err)
			os.Exit(1)
		}

		fmt.Print(graph.GenerateMermaid(links))
	},
}

func init() {
	rootCmd.AddCommand(graphCmd)
}
