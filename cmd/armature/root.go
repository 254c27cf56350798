package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/armature/internal/presentation/tui"
)

var rootCmd = &cobra.Command{
	Use:   "armature",
	Short: "Armature exports robot-model descriptions to URDF",
	Long:  `Armature converts a canonical YAML robot-model description (rigid bodies, inertia, joints, visual geometry) into a self-contained URDF file.`,
	Run: func(cmd *cobra.Command, args []string) {
		tui.PrintBanner()
		_ = cmd.Help()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging")
}
