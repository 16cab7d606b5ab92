package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "vitalmoto",
	Short: "VitalMoto payments backend",
	Long:  "Backend for the VitalMoto membership platform: pago-movil reconciliation against the bank and the daily membership reset sweep.",
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
