package gemini_embedding

import (
	"context"
	"errors"

	"github.com/philippgille/chromem-go"
	"google.golang.org/genai"
)

type embedder interface {
	EmbedContent(ctx context.Context, model string, contents []*genai.Content, config *genai.EmbedContentConfig) (*genai.EmbedContentResponse, error)
}

// Task types of the Gemini embedding API.
const (
	TaskRetrievalDocument = "RETRIEVAL_DOCUMENT"
	TaskRetrievalQuery    = "RETRIEVAL_QUERY"
)

// GeminiEmbeddingFunc returns a chromem embedding function backed by the Gemini embedding API,
// pass client.Models as the embedder. Index with TaskRetrievalDocument, search with TaskRetrievalQuery.
func GeminiEmbeddingFunc(models embedder, embeddingModel, taskType string) chromem.EmbeddingFunc {
	return func(ctx context.Context, text string) ([]float32, error) {
		contents := []*genai.Content{
			genai.NewContentFromText(text, genai.RoleUser),
		}
		res, err := models.EmbedContent(ctx, embeddingModel, contents, &genai.EmbedContentConfig{
			TaskType: taskType,
		})
		if err != nil {
			return nil, err
		}
		if len(res.Embeddings) == 0 || len(res.Embeddings[0].Values) == 0 {
			return nil, errors.New("no embeddings returned")
		}

		return res.Embeddings[0].Values, nil
	}
}
