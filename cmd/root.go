// Package cmd 是 ctms 命令行：启动服务、数据库脚本与报表客户端
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "ctms",
	Short: "Clinical trial management system",
	Long: `ctms runs the clinical trial management API and ships the tools around it.

  ctms serve                  start the REST API
  ctms db setup|reset|seed    one-shot database scripts
  ctms report summary|export  report client against a running server`,
	SilenceUsage: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(dbCmd)
	rootCmd.AddCommand(reportCmd)
}
