package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/neurosym/logicpipe/utils/config"
	"github.com/neurosym/logicpipe/utils/models"
	"github.com/neurosym/logicpipe/utils/pipeline"
	"github.com/neurosym/logicpipe/utils/scraper"
	"github.com/neurosym/logicpipe/utils/solver"
)

var (
	solveModel  string
	solveEngine string
	solveURL    string
)

var solveCmd = &cobra.Command{
	Use:   "solve [puzzle text]",
	Short: "Solve a logic puzzle from the command line",
	Long: `Run the full pipeline for one puzzle: translate it into a logic
program, solve the program, and explain the result. The puzzle is read
from the arguments, from --url, or from stdin.`,
	Run: func(cmd *cobra.Command, args []string) {
		query, err := readQuery(args)
		if err != nil {
			log.Fatalf("Error reading puzzle: %v", err)
		}
		if strings.TrimSpace(query) == "" {
			fmt.Fprintln(os.Stderr, "Please enter a question.")
			os.Exit(1)
		}

		envConfig, err := config.LoadEnvConfig(config.GetEnvPath())
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				log.Fatalf("Environment file not found at %s. Run 'logicpipe configure' or set LOGICPIPE_ENV.", config.GetEnvPath())
			}
			log.Fatalf("Error loading environment configuration: %v", err)
		}

		p, err := buildPipeline(envConfig)
		if err != nil {
			log.Fatalf("%v", err)
		}

		runSolve(p, query)
	},
}

// readQuery assembles the puzzle text from args, --url or stdin
func readQuery(args []string) (string, error) {
	if solveURL != "" {
		page, err := scraper.NewScraper().Scrape(solveURL)
		if err != nil {
			return "", err
		}
		return page.Text(), nil
	}
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}

	fmt.Fprintln(os.Stderr, "Reading puzzle from stdin...")
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// buildPipeline resolves provider, credential and engine from config
// and flags.
func buildPipeline(envConfig *config.EnvConfig) (*pipeline.Pipeline, error) {
	modelName := solveModel
	if modelName == "" {
		modelName = envConfig.DefaultModel()
	}
	if modelName == "" {
		modelName = models.DefaultGoogleModel
	}

	provider := models.DetectProvider(modelName)
	if provider == nil {
		return nil, fmt.Errorf("no provider supports model %s", modelName)
	}
	provider.SetVerbose(config.Verbose)

	if err := envConfig.ValidateAPIKey(provider.Name()); err != nil {
		return nil, err
	}
	providerConfig, err := envConfig.GetProviderConfig(provider.Name())
	if err != nil {
		return nil, err
	}
	if err := provider.Configure(providerConfig.APIKey); err != nil {
		return nil, err
	}

	solverConfig := envConfig.GetSolverConfig()
	engineName := solveEngine
	if engineName == "" {
		engineName = solverConfig.Engine
	}
	engine, err := solver.ForName(engineName, solverConfig)
	if err != nil {
		return nil, err
	}

	fmt.Printf("Model: %s\nEngine: %s\n\n", modelName, engine.Name())
	return pipeline.New(provider, modelName, engine), nil
}

// spinnerProgressWriter drives the terminal spinner from pipeline stages
type spinnerProgressWriter struct {
	spinner *pipeline.Spinner
	active  bool
}

func (w *spinnerProgressWriter) WriteProgress(update pipeline.ProgressUpdate) error {
	if w.active {
		w.spinner.Stop()
		w.active = false
	}
	if update.Type == pipeline.ProgressStage {
		w.spinner = pipeline.NewSpinner()
		w.spinner.Start(update.Message)
		w.active = true
	}
	return nil
}

func runSolve(p *pipeline.Pipeline, query string) {
	progress := &spinnerProgressWriter{}
	p.SetProgressWriter(progress)

	result := p.Run(query)
	if progress.active {
		progress.spinner.Stop()
	}

	if result.State == pipeline.StateAborted {
		fmt.Fprintf(os.Stderr, "Error: %v\n", result.Err)
		os.Exit(1)
	}

	fmt.Println("Generated Program:")
	fmt.Println("```")
	fmt.Println(result.Program)
	fmt.Println("```")

	fmt.Printf("\nFound %d Model(s):\n", len(result.Models))
	modelsJSON, _ := json.MarshalIndent(result.Models, "", "  ")
	fmt.Println(string(modelsJSON))

	fmt.Println("\nAnswer:")
	fmt.Println(result.Explanation)
}

func init() {
	solveCmd.Flags().StringVarP(&solveModel, "model", "m", "", "model to use (default: first configured)")
	solveCmd.Flags().StringVarP(&solveEngine, "engine", "e", "", "solver engine: clingo or sat (default: configured engine)")
	solveCmd.Flags().StringVarP(&solveURL, "url", "u", "", "scrape the puzzle text from a URL")
	rootCmd.AddCommand(solveCmd)
}
