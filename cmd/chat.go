/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"docgpt/src/chat"
	"docgpt/src/chunkfile"
	"docgpt/src/fsutil"
	"docgpt/src/ollama"
)

// chatCmd represents the chat command
var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Ask questions about your ingested documents",
	Long: `The chat command loads the processed documents file produced by
ingest, verifies that the Ollama model is reachable and then starts an
interactive question loop. Type 'exit' to leave the session.`,
	Run: RunChat,
}

func init() {
	rootCmd.AddCommand(chatCmd)
	chatCmd.Flags().StringP("input", "i", "", "Processed documents file (overrides PROCESSED_FILE)")
	chatCmd.Flags().StringP("model", "m", "", "Ollama model name (overrides OLLAMA_MODEL)")
}

func RunChat(cmd *cobra.Command, args []string) {
	input := viper.GetString("ingest.output")
	if v, _ := cmd.Flags().GetString("input"); v != "" {
		input = v
	}
	model := viper.GetString("ollama.model")
	if v, _ := cmd.Flags().GetString("model"); v != "" {
		model = v
	}

	store := fsutil.NewLocalFileStore()
	if !store.Exists(input) {
		fmt.Printf("Processed documents file %q not found\n", input)
		fmt.Println("Please run the ingest command first.")
		return
	}

	fmt.Println("Loading processed documents...")
	chunks, err := chunkfile.ReadFile(input)
	if err != nil {
		fmt.Printf("Failed to read %s: %v\n", input, err)
		return
	}
	if len(chunks) == 0 {
		fmt.Println("No document chunks loaded; the processed documents file is empty.")
		fmt.Println("Please run the ingest command first.")
		return
	}
	fmt.Printf("Loaded %d document chunks\n", len(chunks))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	client := ollama.NewClient(viper.GetString("ollama.url"), &http.Client{})
	provider := ollama.NewProvider(client, model)

	fmt.Println("Connecting to Ollama...")
	if err := provider.Ping(ctx); err != nil {
		fmt.Printf("Ollama connection failed: %v\n", err)
		fmt.Printf("Please make sure Ollama is running and the %s model is available.\n", model)
		return
	}
	fmt.Println("Ollama connection successful!")

	capability := chat.Capability{Model: model, Available: true}
	driver := chat.New(chunks, provider, capability,
		chat.WithMaxResults(viper.GetInt("search.max_results")))

	if err := driver.Run(ctx, os.Stdin, os.Stdout); err != nil {
		fmt.Printf("Chat session ended with error: %v\n", err)
	}
}
