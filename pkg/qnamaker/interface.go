package qnamaker

import "context"

// IQnAMaker defines the knowledge base lookup.
// Implementations are safe for concurrent use.
type IQnAMaker interface {
	// GenerateAnswer returns candidates ordered best first. Scores are normalised to 0-1.
	GenerateAnswer(ctx context.Context, question string) ([]Answer, error)
}
