package llm_fx

import (
	"os"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"wanderplan/internal/recovery"
	"wanderplan/pkg/utils"
)

var Module = fx.Provide(provideCompletionClient, provideRecoveryEngine)

// provideCompletionClient builds the completion client from environment
// configuration. LLM_PROVIDER selects the backend ("groq" by default);
// the matching *_API_KEY must be set.
func provideCompletionClient() (utils.CompletionClientInterface, error) {
	provider := os.Getenv("LLM_PROVIDER")
	if provider == "" {
		provider = utils.ProviderGroq
	}

	apiKey := os.Getenv("GROQ_API_KEY")
	if provider == utils.ProviderGemini {
		apiKey = os.Getenv("GEMINI_API_KEY")
	}

	return utils.NewCompletionClient(provider, apiKey, "")
}

func provideRecoveryEngine(logger *zap.Logger) *recovery.Engine {
	return recovery.NewEngine(logger)
}
