/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"docgpt/src/chunker"
	"docgpt/src/chunkfile"
	"docgpt/src/fsutil"
	"docgpt/src/loader"
)

// ingestCmd represents the ingest command
var ingestCmd = &cobra.Command{
	Use:   "ingest",
	Short: "Process source documents into retrievable chunks",
	Long: `The ingest command walks the source directory for .txt, .md and .pdf
files, splits their text into fixed-size chunks and writes the result to the
processed documents file used by the chat command.`,
	Run: RunIngest,
}

func init() {
	rootCmd.AddCommand(ingestCmd)
	ingestCmd.Flags().StringP("source", "s", "", "Source directory to ingest (overrides SOURCE_DIR)")
	ingestCmd.Flags().StringP("output", "o", "", "Output file for processed chunks (overrides PROCESSED_FILE)")
	ingestCmd.Flags().Int("chunk-size", 0, "Chunk size in characters (overrides CHUNK_SIZE)")
}

func RunIngest(cmd *cobra.Command, args []string) {
	sourceDir := viper.GetString("source.dir")
	if v, _ := cmd.Flags().GetString("source"); v != "" {
		sourceDir = v
	}
	output := viper.GetString("ingest.output")
	if v, _ := cmd.Flags().GetString("output"); v != "" {
		output = v
	}
	chunkSize := viper.GetInt("chunk.size")
	if v, _ := cmd.Flags().GetInt("chunk-size"); v > 0 {
		chunkSize = v
	}

	store := fsutil.NewLocalFileStore()
	if !store.Exists(sourceDir) {
		fmt.Printf("Source directory %q not found\n", sourceDir)
		return
	}

	ld := loader.New(store)
	files, err := ld.Discover(sourceDir)
	if err != nil {
		fmt.Printf("Failed to scan source directory: %v\n", err)
		return
	}
	if len(files) == 0 {
		fmt.Println("No documents found to process")
		return
	}
	fmt.Printf("Found %d files to process\n", len(files))

	bar := progressbar.Default(int64(len(files)), "Loading documents")
	ld.OnFileDone = func(string) { bar.Add(1) }

	report := ld.Load(files)
	for _, f := range report.Failures {
		fmt.Printf("Error processing %s: %v\n", f.Path, f.Err)
	}
	if len(report.Documents) == 0 {
		fmt.Println("No documents could be loaded")
		return
	}
	fmt.Printf("Loaded %d documents\n", len(report.Documents))

	texts := make([]string, 0, len(report.Documents))
	for _, doc := range report.Documents {
		texts = append(texts, doc.Text)
	}

	chunks := chunker.Split(texts, chunkSize)
	if len(chunks) == 0 {
		fmt.Println("No chunks produced; documents may be too short")
		return
	}
	fmt.Printf("Created %d chunks\n", len(chunks))

	if err := chunkfile.WriteFile(output, chunks); err != nil {
		fmt.Printf("Failed to write %s: %v\n", output, err)
		return
	}
	fmt.Printf("Saved %d chunks to %s\n", len(chunks), output)
}
