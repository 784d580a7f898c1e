package client

import "github.com/Kitan-Dara06/flashcard-generator-public/internal/config"

type Clients struct {
	*OpenAIAPI
}

func InitClients(cfg *config.Config) Clients {
	return Clients{
		OpenAIAPI: NewOpenAIAPI(cfg.OpenAI),
	}
}
