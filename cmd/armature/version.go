package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aretw0/armature"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of armature",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("armature version %s\n", armature.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
