package gemini

import (
	"context"
	"errors"
	"fmt"

	"github.com/phrazzld/travel-guide/internal/config"
	"github.com/phrazzld/travel-guide/internal/domain"
	"google.golang.org/genai"
)

// GenerateContentAction is the supported action a model needs for Generate to work.
const GenerateContentAction = "generateContent"

// ModelInfo summarizes a model visible to the configured API key.
type ModelInfo struct {
	Name             string
	DisplayName      string
	Description      string
	SupportedActions []string
}

// SupportsGenerateContent reports whether the model can serve Generate calls.
func (m ModelInfo) SupportsGenerateContent() bool {
	for _, action := range m.SupportedActions {
		if action == GenerateContentAction {
			return true
		}
	}
	return false
}

// ListModels returns every model the API key can see, following pagination.
// It is an operator aid for choosing MODEL_NAME and is not used when serving requests.
func ListModels(ctx context.Context, cfg config.LLMConfig) ([]ModelInfo, error) {
	if cfg.GeminiAPIKey == "" {
		return nil, &domain.ConfigError{Setting: "GOOGLE_API_KEY"}
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:      cfg.GeminiAPIKey,
		Backend:     genai.BackendGeminiAPI,
		HTTPOptions: genai.HTTPOptions{APIVersion: "v1"},
	})
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create genai client: %v", domain.ErrInvalidConfig, err)
	}

	page, err := client.Models.List(ctx, &genai.ListModelsConfig{PageSize: 100})

	var models []ModelInfo
	for {
		if errors.Is(err, genai.ErrPageDone) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to list models: %w", err)
		}

		for _, m := range page.Items {
			if m == nil {
				continue
			}
			models = append(models, ModelInfo{
				Name:             m.Name,
				DisplayName:      m.DisplayName,
				Description:      m.Description,
				SupportedActions: m.SupportedActions,
			})
		}

		if page.NextPageToken == "" {
			break
		}
		page, err = page.Next(ctx)
	}

	return models, nil
}
