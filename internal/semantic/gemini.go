package semantic

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// DefaultEmbeddingModel is the Gemini embedding model used when none is
// configured.
const DefaultEmbeddingModel = "text-embedding-004"

// GeminiOracle computes similarity as the cosine of Gemini text embeddings.
type GeminiOracle struct {
	client *genai.Client
	model  string
}

// NewGeminiOracle creates an embedding-backed oracle.
func NewGeminiOracle(ctx context.Context, apiKey, model string) (*GeminiOracle, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("API key is required")
	}
	if model == "" {
		model = DefaultEmbeddingModel
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	return &GeminiOracle{client: client, model: model}, nil
}

// Similarity embeds both passages and returns their cosine similarity mapped
// into [0,1].
func (o *GeminiOracle) Similarity(ctx context.Context, a, b string) (float64, error) {
	if strings.TrimSpace(a) == "" || strings.TrimSpace(b) == "" {
		return 0.5, nil
	}

	embA, err := o.embed(ctx, a)
	if err != nil {
		return 0, err
	}
	embB, err := o.embed(ctx, b)
	if err != nil {
		return 0, err
	}
	return clamp01(cosine(embA, embB)), nil
}

// Close releases the underlying client.
func (o *GeminiOracle) Close() error {
	return o.client.Close()
}

func (o *GeminiOracle) embed(ctx context.Context, text string) ([]float32, error) {
	em := o.client.EmbeddingModel(o.model)
	res, err := em.EmbedContent(ctx, genai.Text(text))
	if err != nil {
		return nil, fmt.Errorf("failed to embed text: %w", err)
	}
	if res.Embedding == nil || len(res.Embedding.Values) == 0 {
		return nil, fmt.Errorf("empty embedding response")
	}
	return res.Embedding.Values, nil
}

func cosine(a, b []float32) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}
	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
