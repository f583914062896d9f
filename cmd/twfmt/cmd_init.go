package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pipech/readable-tailwind/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default configuration file",
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := os.Stat(cfgPath); err == nil {
			return fmt.Errorf("%s already exists", cfgPath)
		}
		if err := config.DefaultConfig().Save(cfgPath); err != nil {
			return err
		}
		fmt.Printf("wrote %s\n", cfgPath)
		return nil
	},
}
