package cmd

import "github.com/spf13/viper"

func settingDefaultConfig() {
	// Enable automatic environment variable binding
	viper.AutomaticEnv()

	// Map environment variables to Viper keys for the ingest pipeline
	viper.BindEnv("source.dir", "SOURCE_DIR")
	viper.BindEnv("ingest.output", "PROCESSED_FILE")
	viper.BindEnv("chunk.size", "CHUNK_SIZE")

	// Map environment variables to Viper keys for search and Ollama
	viper.BindEnv("search.max_results", "SEARCH_MAX_RESULTS")
	viper.BindEnv("ollama.url", "OLLAMA_URL")
	viper.BindEnv("ollama.model", "OLLAMA_MODEL")

	// Set default values for the ingest pipeline
	viper.SetDefault("source.dir", "source_documents")
	viper.SetDefault("ingest.output", "processed_documents.txt")
	viper.SetDefault("chunk.size", 1000)

	// Set default values for search and Ollama
	viper.SetDefault("search.max_results", 4)
	viper.SetDefault("ollama.url", "http://localhost:11434/api")
	viper.SetDefault("ollama.model", "mistral")
}
