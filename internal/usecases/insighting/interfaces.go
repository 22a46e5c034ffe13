package insighting

import "context"

//go:generate mockgen -source=interfaces.go -destination=mocks/interfaces.go -package=mocks

// TextGenerator é o modelo de linguagem usado pelo chat
type TextGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}
