package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/Kitan-Dara06/flashcard-generator-public/internal/models"
	"go.uber.org/zap"
)

var (
	// ErrAPIKeyNotConfigured is returned when no model API key is set.
	ErrAPIKeyNotConfigured = errors.New("OpenAI API key not configured")
	// ErrNoText is returned when the document yields no usable text.
	ErrNoText = errors.New("could not extract text from file")
)

const (
	// ~6000 input tokens at 4 chars per token.
	maxChunkChars = 24000

	answerFallback = "Answer not provided in text."
)

const flashcardPrompt = `You are a flashcard generator for theory-based subjects.
Output a valid JSON object with a key "flashcards" containing a list of flashcards.
Each flashcard must have:
  - "question": a clear, concise question (string)
  - "answer": a 2-3 sentence explanatory answer (string)
Stay strictly factual, based only on the provided text.
If the text contains no usable information, output {"flashcards": []}.
Do not explain, apologize, or return any text outside the JSON object.

Text:
%s`

type FlashcardS struct {
	api       ChatAPII
	extractor ExtractorI
	apiKeySet bool
	chunkSize int
	log       *zap.Logger
}

func NewFlashcardService(api ChatAPII, extractor ExtractorI, apiKeySet bool, log *zap.Logger) *FlashcardS {
	return &FlashcardS{
		api:       api,
		extractor: extractor,
		apiKeySet: apiKeySet,
		chunkSize: maxChunkChars,
		log:       log,
	}
}

// Generate extracts the document text and turns it into question/answer
// pairs, chunk by chunk. A chunk the model fails on is skipped, never fatal:
// the result carries whatever the good chunks produced, so it may be empty.
func (f *FlashcardS) Generate(ctx context.Context, content []byte, fileType string) ([]models.Flashcard, error) {
	if !f.apiKeySet {
		return nil, ErrAPIKeyNotConfigured
	}

	text, err := f.extractor.Text(content, fileType)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(text) == "" {
		return nil, ErrNoText
	}

	chunks := splitChunks(text, f.chunkSize)
	all := make([]models.Flashcard, 0)

	for i, chunk := range chunks {
		if strings.TrimSpace(chunk) == "" {
			continue
		}

		f.log.Info("processing chunk",
			zap.Int("chunk", i+1),
			zap.Int("total_chunks", len(chunks)),
			zap.Int("chars", len(chunk)))

		raw, err := f.api.ChatJSON(ctx, fmt.Sprintf(flashcardPrompt, chunk))
		if err != nil {
			f.log.Error("chunk failed", zap.Int("chunk", i+1), zap.Error(err))
			continue
		}

		cards := parseFlashcards(raw)
		if len(cards) == 0 {
			f.log.Warn("no valid flashcards in chunk", zap.Int("chunk", i+1))
			continue
		}

		all = append(all, cards...)
		f.log.Info("chunk generated flashcards", zap.Int("chunk", i+1), zap.Int("count", len(cards)))
	}

	return all, nil
}

func splitChunks(text string, size int) []string {
	runes := []rune(text)

	var chunks []string
	for i := 0; i < len(runes); i += size {
		end := i + size
		if end > len(runes) {
			end = len(runes)
		}
		chunks = append(chunks, string(runes[i:end]))
	}
	return chunks
}

var trailingComma = regexp.MustCompile(`,(\s*[}\]])`)

// cleanJSONOutput fixes common model JSON issues, currently trailing commas
// before a closing brace or bracket.
func cleanJSONOutput(raw string) string {
	return trailingComma.ReplaceAllString(raw, "$1")
}

// parseFlashcards decodes one model reply. A reply that holds no card with
// both sides non-blank is rejected wholesale; otherwise every card is kept
// and repaired.
func parseFlashcards(raw string) []models.Flashcard {
	var list models.FlashcardList
	if err := json.Unmarshal([]byte(cleanJSONOutput(raw)), &list); err != nil {
		return nil
	}

	valid := false
	for _, c := range list.Flashcards {
		if strings.TrimSpace(c.Question) != "" && strings.TrimSpace(c.Answer) != "" {
			valid = true
			break
		}
	}
	if !valid {
		return nil
	}

	repaired := make([]models.Flashcard, 0, len(list.Flashcards))
	for _, c := range list.Flashcards {
		q := strings.TrimSpace(c.Question)
		a := strings.TrimSpace(c.Answer)
		if a == "" {
			a = answerFallback
		}
		repaired = append(repaired, models.Flashcard{Question: q, Answer: a})
	}
	return repaired
}
