package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/neurosym/logicpipe/utils/config"
	"github.com/neurosym/logicpipe/utils/models"
	"github.com/neurosym/logicpipe/utils/solver"
)

var configureList bool

var configureCmd = &cobra.Command{
	Use:   "configure",
	Short: "Configure API keys, models and the solver engine",
	Long:  `Interactively set up provider API keys, the default model, the solver engine and server settings.`,
	Run: func(cmd *cobra.Command, args []string) {
		if configureList {
			listConfiguration()
			return
		}
		runConfigure()
	},
}

func loadOrCreateEnvConfig(path string) *config.EnvConfig {
	envConfig, err := config.LoadEnvConfig(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &config.EnvConfig{}
		}
		log.Fatalf("Error loading environment configuration: %v", err)
	}
	return envConfig
}

func runConfigure() {
	envPath := config.GetEnvPath()
	envConfig := loadOrCreateEnvConfig(envPath)
	reader := bufio.NewReader(os.Stdin)

	fmt.Printf("Configuring %s\n\n", envPath)

	// Provider selection
	names := models.ListRegisteredProviders()
	fmt.Printf("Available providers: %s\n", strings.Join(names, ", "))
	providerName := promptString(reader, "Provider to configure", "google")
	if models.GetProviderByName(providerName) == nil {
		log.Fatalf("Unknown provider: %s", providerName)
	}

	// API key, echo off
	fmt.Printf("Enter %s API key (input hidden): ", providerName)
	keyBytes, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Println()
	if err != nil {
		log.Fatalf("Error reading API key: %v", err)
	}
	apiKey := strings.TrimSpace(string(keyBytes))
	if config.IsPlaceholderAPIKey(apiKey) {
		log.Fatalf("API key is empty or a placeholder")
	}

	defaultModel := models.DefaultGoogleModel
	if providerName == "openai" {
		defaultModel = "gpt-4o"
	}
	modelName := promptString(reader, "Default model", defaultModel)

	provider := models.GetProviderByName(providerName)
	if !provider.SupportsModel(modelName) {
		log.Fatalf("Model %s is not supported by provider %s", modelName, providerName)
	}

	envConfig.AddProvider(providerName, config.Provider{
		APIKey: apiKey,
		Models: []config.Model{{Name: modelName, Type: "text"}},
	})

	// Solver engine
	fmt.Printf("\nAvailable engines: %s\n", strings.Join(solver.ListEngines(), ", "))
	solverConfig := envConfig.GetSolverConfig()
	engineName := promptString(reader, "Solver engine", solverConfig.Engine)
	if _, err := solver.ForName(engineName, solverConfig); err != nil {
		log.Fatalf("%v", err)
	}
	solverConfig.Engine = engineName
	if engineName == "clingo" {
		solverConfig.ClingoPath = promptString(reader, "Path to clingo binary", solverConfig.ClingoPath)
	}
	envConfig.Solver = solverConfig

	// Server settings
	serverConfig := envConfig.GetServerConfig()
	portStr := promptString(reader, "Server port", strconv.Itoa(serverConfig.Port))
	port, err := strconv.Atoi(portStr)
	if err != nil || port <= 0 || port > 65535 {
		log.Fatalf("Invalid port: %s", portStr)
	}
	serverConfig.Port = port
	envConfig.Server = serverConfig

	if err := config.SaveEnvConfig(envPath, envConfig); err != nil {
		log.Fatalf("Error saving configuration: %v", err)
	}
	fmt.Printf("\nConfiguration saved to %s\n", envPath)
}

func promptString(reader *bufio.Reader, label, defaultValue string) string {
	if defaultValue != "" {
		fmt.Printf("%s [%s]: ", label, defaultValue)
	} else {
		fmt.Printf("%s: ", label)
	}
	line, err := reader.ReadString('\n')
	if err != nil {
		return defaultValue
	}
	line = strings.TrimSpace(line)
	if line == "" {
		return defaultValue
	}
	return line
}

func listConfiguration() {
	envPath := config.GetEnvPath()
	envConfig := loadOrCreateEnvConfig(envPath)

	fmt.Printf("Configuration file: %s\n\n", envPath)

	if len(envConfig.Providers) == 0 {
		fmt.Println("No providers configured. Run 'logicpipe configure'.")
	}
	for name, provider := range envConfig.Providers {
		status := "configured"
		if config.IsPlaceholderAPIKey(provider.APIKey) {
			status = "missing API key"
		}
		fmt.Printf("Provider %s (%s):\n", name, status)
		for _, model := range provider.Models {
			fmt.Printf("  - %s\n", model.Name)
		}
	}

	solverConfig := envConfig.GetSolverConfig()
	fmt.Printf("\nSolver engine: %s\n", solverConfig.Engine)
	if solverConfig.Engine == "clingo" {
		fmt.Printf("Clingo binary: %s\n", solverConfig.ClingoPath)
	}

	serverConfig := envConfig.GetServerConfig()
	fmt.Printf("Server port: %d (auth %s)\n", serverConfig.Port, map[bool]string{true: "enabled", false: "disabled"}[serverConfig.Enabled])
}

func init() {
	configureCmd.Flags().BoolVarP(&configureList, "list", "l", false, "list the current configuration")
	rootCmd.AddCommand(configureCmd)
}
