package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"math/rand"
	"strings"
	"time"

	"ai-interviewer/internal/ai"
	"ai-interviewer/internal/ai/gemini"
	"ai-interviewer/internal/interview"
	"ai-interviewer/internal/logger"
	"ai-interviewer/internal/secrets"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run an interactive interview session",
	Run: func(cmd *cobra.Command, _ []string) {
		run(cmd)
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringP("candidate", "c", "", "candidate name (prompted interactively when unset)")
	runCmd.Flags().StringP("position", "p", "", "target position (prompted interactively when unset)")
	runCmd.Flags().String("category", "", "interview category: behavioral, technical, general, case-study or leadership")
	runCmd.Flags().IntP("max-questions", "n", 0, "maximum number of questions in the session")
	runCmd.Flags().BoolP("auto-save", "s", false, "save the session record without asking")

	viper.BindPFlag("max-questions", runCmd.Flags().Lookup("max-questions"))
}

// run is the main command for the cli.
func run(cmd *cobra.Command) {
	ctx := context.Background()

	logger, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	logger.Info("starting the ai-interviewer", zap.String("version", version))

	// do not bother error since there is a valid parseable config
	pretty, _ := json.MarshalIndent(config, "", "  ")
	logger.Debug(fmt.Sprintf("starting with config: \n %s", pretty))

	backend := buildBackend(ctx, config, logger)

	params, err := collectParams(cmd, config)
	if err != nil {
		logger.Fatal("collecting candidate info", zap.Error(err))
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	controller := interview.NewController(params, backend, newConsoleInput(), consoleOutput{}, rng, logger)

	session, err := controller.Run(ctx)
	if err != nil {
		logger.Fatal("interview aborted", zap.Error(err))
	}

	if !shouldSave(cmd) {
		return
	}

	path, err := interview.Export(config.ResultsDir, session)
	if err != nil {
		// The report stays valid even when the export sink fails.
		logger.Warn("saving session record failed", zap.Error(err))
		return
	}

	logger.Info("session record saved", zap.String("filename", path))
}

// buildBackend resolves the credential and constructs the Gemini generator.
// Any problem here means the whole session runs in fallback mode; it is never
// fatal.
func buildBackend(ctx context.Context, config *Config, log *zap.Logger) ai.Generator {
	var geminiCfg *GeminiConfig
	if config.AI != nil {
		provider := strings.TrimSpace(strings.ToLower(config.AI.Provider))
		if provider != "" && provider != "gemini" {
			log.Warn("unsupported ai provider, running in demo mode", zap.String("provider", config.AI.Provider))
			return ai.Absent()
		}
		geminiCfg = config.AI.Gemini
	}
	if geminiCfg == nil {
		geminiCfg = &GeminiConfig{}
	}

	apiKey, err := secrets.Load(secrets.Source{
		Name:  "gemini api key",
		Value: geminiCfg.APIKey,
		File:  geminiCfg.APIKeyFile,
	})
	if err != nil {
		log.Info("running in demo mode with built-in questions",
			zap.Error(err),
			zap.String("hint", "set GEMINI_API_KEY, GEMINI_API_KEY_FILE or the ai.gemini section in the configuration file"),
		)
		return ai.Absent()
	}

	generator, err := gemini.New(ctx, apiKey, geminiCfg.Model, geminiCfg.MaxLogLength, log)
	if err != nil {
		log.Warn("creating gemini client failed, running in demo mode", zap.Error(err))
		return ai.Absent()
	}

	return generator
}

// collectParams gathers candidate name, position and category from flags,
// prompting interactively for whatever is missing.
func collectParams(cmd *cobra.Command, config *Config) (interview.Params, error) {
	params := interview.Params{MaxQuestions: config.MaxQuestions}

	nonEmpty := func(input string) error {
		if strings.TrimSpace(input) == "" {
			return fmt.Errorf("value must not be empty")
		}
		return nil
	}

	params.Candidate = strings.TrimSpace(cmd.Flag("candidate").Value.String())
	if params.Candidate == "" {
		prompt := promptui.Prompt{Label: "What's your name", Validate: nonEmpty}
		value, err := prompt.Run()
		if err != nil {
			return params, err
		}
		params.Candidate = strings.TrimSpace(value)
	}

	params.Position = strings.TrimSpace(cmd.Flag("position").Value.String())
	if params.Position == "" {
		prompt := promptui.Prompt{Label: "What position are you interviewing for", Validate: nonEmpty}
		value, err := prompt.Run()
		if err != nil {
			return params, err
		}
		params.Position = strings.TrimSpace(value)
	}

	if flagged := strings.TrimSpace(cmd.Flag("category").Value.String()); flagged != "" {
		params.Category = interview.ParseCategory(flagged)
		return params, nil
	}

	categories := interview.Categories()
	labels := make([]string, 0, len(categories))
	for _, category := range categories {
		labels = append(labels, category.Describe())
	}

	categoryPrompt := promptui.Select{
		Label: "What type of interview would you like",
		Items: labels,
	}

	index, _, err := categoryPrompt.Run()
	if err != nil {
		return params, err
	}
	params.Category = categories[index]

	return params, nil
}

// shouldSave asks for confirmation unless the auto-save flag is set.
func shouldSave(cmd *cobra.Command) bool {
	if strings.EqualFold(cmd.Flag("auto-save").Value.String(), "true") {
		return true
	}

	prompt := promptui.Prompt{
		Label:     "Save this session's detailed analysis",
		IsConfirm: true,
	}

	// promptui reports a declined confirmation as an error.
	_, err := prompt.Run()
	return err == nil
}
