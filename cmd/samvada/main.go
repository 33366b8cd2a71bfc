// Package main provides the samvada CLI entry point.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/samskrita/samvada/agent"
	"github.com/samskrita/samvada/config"
	"github.com/samskrita/samvada/corpus"
	"github.com/samskrita/samvada/logbook"
	"github.com/samskrita/samvada/protocol"
	"github.com/samskrita/samvada/translate"
	"github.com/samskrita/samvada/validate"
)

func main() {
	// Load .env file if present (ignore "file not found" errors)
	if err := godotenv.Load(); err != nil {
		if !os.IsNotExist(err) {
			fmt.Fprintf(os.Stderr, "Warning: failed to load .env file: %v\n", err)
		}
	}

	rootCmd := &cobra.Command{
		Use:   "samvada",
		Short: "Sanskrit agent communication layer",
		Long: `A communication layer for agents exchanging Sanskrit messages.

Messages are validated structurally, exchanges are logged and analyzed,
and knowledge queries are answered only from attributed source texts.`,
	}

	rootCmd.AddCommand(validateCmd())
	rootCmd.AddCommand(queryCmd())
	rootCmd.AddCommand(statsCmd())
	rootCmd.AddCommand(agentsCmd())
	rootCmd.AddCommand(demoCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func validateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [text]",
		Short: "Validate Sanskrit text structure",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result := validate.New().Validate(args[0])
			return printJSON(result)
		},
	}
}

func queryCmd() *cobra.Command {
	var threshold float64
	var maxSources int

	cmd := &cobra.Command{
		Use:   "query [question]",
		Short: "Answer a question from the source corpus",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := newService()
			if err != nil {
				return err
			}
			result := svc.QueryKnowledge(args[0], threshold, maxSources)
			return printJSON(result)
		},
	}

	cmd.Flags().Float64Var(&threshold, "threshold", 0.6, "Minimum acceptable confidence")
	cmd.Flags().IntVar(&maxSources, "max-sources", 5, "Maximum passages to cite")
	return cmd
}

func statsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show corpus coverage statistics",
		RunE: func(cmd *cobra.Command, args []string) error {
			idx, err := corpus.Load()
			if err != nil {
				return err
			}
			return printJSON(idx.Statistics())
		},
	}
}

func agentsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "agents",
		Short: "Show the supported translation providers and default profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			return printJSON(map[string]interface{}{
				"default_profile":       agent.DefaultProfile(),
				"translation_providers": config.SupportedProviders(),
			})
		},
	}
}

func demoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Run a scripted two-agent exchange with analysis",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo(context.Background())
		},
	}
}

func newService() (*protocol.Service, error) {
	settings, err := config.New()
	if err != nil {
		return nil, err
	}

	log := logbook.New(settings.Log.MaxEntries)
	if settings.Log.DatabasePath != "" {
		store, err := logbook.OpenSqlite(settings.Log.DatabasePath)
		if err != nil {
			return nil, err
		}
		log.WithStore(store)
	}

	svc, err := protocol.NewService(log)
	if err != nil {
		return nil, err
	}

	provider, err := translate.ParseProvider(settings.Translate.Provider)
	if err != nil {
		return nil, err
	}
	apiKey, err := config.APIKeyFor(settings.Translate.Provider)
	if err != nil {
		return nil, err
	}
	translator, err := translate.New(provider, apiKey, settings.Translate.Model)
	if err != nil {
		return nil, err
	}
	return svc.WithTranslator(translator), nil
}

func runDemo(ctx context.Context) error {
	svc, err := newService()
	if err != nil {
		return err
	}

	for _, cfg := range []agent.Config{
		{ID: "acharya", Name: "Ācārya", Description: "Formal scholarly agent"},
		{ID: "shishya", Name: "Śiṣya", Description: "Student agent"},
	} {
		if _, err := svc.RegisterAgent(cfg); err != nil {
			return err
		}
	}

	session := "demo-session"
	exchanges := []protocol.ProcessRequest{
		{FromID: "shishya", ToID: "acharya", Content: "नमस्ते गुरो", SessionID: session},
		{FromID: "acharya", ToID: "shishya", Content: "नमस्ते शिष्य। किं ते प्रश्नः।", SessionID: session},
		{FromID: "shishya", ToID: "acharya", Content: "धर्मः किम्", SessionID: session},
	}
	for _, req := range exchanges {
		outcome, err := svc.ProcessMessage(ctx, req)
		if err != nil {
			return err
		}
		fmt.Printf("%s -> %s [%s]: %s\n", req.FromID, req.ToID, outcome.Status, req.Content)
	}

	fmt.Println(strings.Repeat("-", 40))
	if err := printJSON(svc.AnalyzeConversation(session)); err != nil {
		return err
	}

	fmt.Println(strings.Repeat("-", 40))
	return printJSON(svc.QueryKnowledge("what is dharma", 0.6, 5))
}

func printJSON(v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}
