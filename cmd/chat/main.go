// Command chat sends a single message through the chat pipeline and
// prints the resulting JSON object, mirroring what the HTTP chat
// endpoint returns. Useful for frontend development and smoke tests.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jiningying/property-chat-agent/config"
	"github.com/jiningying/property-chat-agent/internal/domain"
	"github.com/jiningying/property-chat-agent/internal/infrastructure/catalog"
	openaiBackend "github.com/jiningying/property-chat-agent/internal/infrastructure/openai"
	"github.com/jiningying/property-chat-agent/internal/infrastructure/store"
	"github.com/jiningying/property-chat-agent/internal/usecase"
)

var (
	message string
	userID  string
)

var rootCmd = &cobra.Command{
	Use:   "chat",
	Short: "One-shot property chat: send a message, get the JSON reply",
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(cmd.Context())
	},
}

func init() {
	rootCmd.Flags().StringVar(&message, "message", "", "message to send")
	rootCmd.Flags().StringVar(&userID, "user-id", "default", "user id for the chat")
	cobra.CheckErr(rootCmd.MarkFlagRequired("message"))
}

func run(ctx context.Context) error {
	result := chat(ctx)

	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}

// chat runs one turn against a fresh in-process pipeline. Any failure,
// configuration included, degrades to the generic error payload so the
// caller always gets the contract shape.
func chat(ctx context.Context) *domain.ChatResult {
	cfg, err := config.Load()
	if err != nil {
		return errorResult()
	}

	var backend domain.ChatBackend
	if cfg.AI.Enabled {
		client, err := openaiBackend.NewClient(cfg.AI.APIKey, cfg.AI.BaseURL, cfg.AI.Model)
		if err != nil {
			return errorResult()
		}
		backend = client
	}

	engine := usecase.NewMatchEngine(usecase.MatchConfig{
		ScoreThreshold: cfg.Matching.ScoreThreshold,
		MaxResults:     cfg.Matching.MaxResults,
	})

	service := usecase.NewChatService(catalog.NewSeeded(), store.NewMemoryStore(), backend, engine, zap.NewNop())
	return service.Chat(ctx, userID, message)
}

func errorResult() *domain.ChatResult {
	return &domain.ChatResult{
		Response:        "I'm sorry, I'm having trouble processing your request right now. Please try again.",
		Recommendations: []domain.Property{},
		Type:            domain.ResponseTypeError,
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
