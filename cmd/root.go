/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "docgpt",
	Short: "Chat with your local documents",
	Long: `docgpt is a small retrieval-augmented QA tool. The ingest command
walks a directory of text, markdown and PDF files and writes them out as
fixed-size chunks; the chat command answers questions about those chunks
using a locally running Ollama model.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	// .env is optional; real environment variables win either way.
	_ = godotenv.Load()

	settingDefaultConfig()
}
