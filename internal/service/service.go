package service

import (
	"context"

	"github.com/Kitan-Dara06/flashcard-generator-public/internal/config"
	"go.uber.org/zap"
)

type ChatAPII interface {
	ChatJSON(ctx context.Context, prompt string) (string, error)
}

type ExtractorI interface {
	Text(content []byte, fileType string) (string, error)
}

type Service struct {
	*AuthS
	*FlashcardS
}

func InitServices(api ChatAPII, extractor ExtractorI, cfg *config.Config, log *zap.Logger) *Service {
	return &Service{
		AuthS:      NewAuthService(cfg.Auth, log),
		FlashcardS: NewFlashcardService(api, extractor, cfg.OpenAI.APIKey != "", log),
	}
}
