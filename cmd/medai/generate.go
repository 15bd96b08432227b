package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os/signal"
	"syscall"

	"med-estudia/internal/adapter/gateway"
	"med-estudia/internal/domain"
	"med-estudia/internal/dto"
	"med-estudia/internal/prompt"
	"med-estudia/internal/service"
	"med-estudia/internal/shape"

	"github.com/spf13/cobra"
)

// errFailedEnvelope marks a run that printed an error envelope.
var errFailedEnvelope = errors.New("generation failed")

var generateCmd = &cobra.Command{
	Use:       "generate <mcq|quiz|explain>",
	Short:     "Generate content for a topic and print the JSON envelope",
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{string(domain.ModeMCQ), string(domain.ModeQuiz), string(domain.ModeExplain)},
	RunE: func(cmd *cobra.Command, args []string) error {
		req := requestFromFlags(cmd, args[0])

		validator, err := shape.NewValidator()
		if err != nil {
			return fmt.Errorf("compile schemas: %w", err)
		}
		chatGateway := gateway.WithRetry(
			gateway.NewClient(appConfig.Gateway, nil),
			gateway.NewRetryPolicy(appConfig.Gateway.Retry),
		)
		svc := service.NewGenerationService(prompt.NewBuilder(), chatGateway, validator)

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()
		return runGenerate(ctx, svc, req, cmd.OutOrStdout())
	},
}

func init() {
	generateCmd.Flags().StringP("topic", "t", "", "Medical topic (required)")
	generateCmd.Flags().StringP("difficulty", "d", string(domain.DifficultyMedium), "MCQ difficulty: easy, medium or hard")
	generateCmd.Flags().IntP("count", "n", domain.DefaultQuizCount, "Number of quiz questions requested")
	generateCmd.Flags().StringP("language", "l", string(domain.LanguageES), "Output language: es or en")
	_ = generateCmd.MarkFlagRequired("topic")
}

func requestFromFlags(cmd *cobra.Command, mode string) dto.GenerateRequest {
	topic, _ := cmd.Flags().GetString("topic")
	difficulty, _ := cmd.Flags().GetString("difficulty")
	count, _ := cmd.Flags().GetInt("count")
	language, _ := cmd.Flags().GetString("language")

	req := dto.GenerateRequest{
		Type:       mode,
		Topic:      topic,
		Difficulty: difficulty,
		Language:   language,
	}
	if cmd.Flags().Changed("count") {
		req.Count = &count
	}
	return req
}

// runGenerate prints {"data": ...} or {"error": ...} and returns
// errFailedEnvelope in the second case.
func runGenerate(ctx context.Context, svc service.GenerationService, req dto.GenerateRequest, out io.Writer) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")

	genReq, err := req.ToDomain()
	if err == nil {
		var result domain.Result
		result, err = svc.Generate(ctx, genReq)
		if err == nil {
			return enc.Encode(dto.DataResponse{Data: result})
		}
	}

	if encErr := enc.Encode(dto.ErrorResponse{Error: domain.MessageOf(err)}); encErr != nil {
		return encErr
	}
	return fmt.Errorf("%w: %s", errFailedEnvelope, domain.CodeOf(err))
}
