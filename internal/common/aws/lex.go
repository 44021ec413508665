// internal/common/aws/lex.go
package aws

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/lexruntimev2"
)

type LexClient struct {
	client *lexruntimev2.Client
}

func NewLexClient(ctx context.Context, region string) (*LexClient, error) {
	cfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(region))
	if err != nil {
		return nil, err
	}
	return &LexClient{client: lexruntimev2.NewFromConfig(cfg)}, nil
}

func (l *LexClient) RecognizeText(ctx context.Context, input *lexruntimev2.RecognizeTextInput, optFns ...func(*lexruntimev2.Options)) (*lexruntimev2.RecognizeTextOutput, error) {
	return l.client.RecognizeText(ctx, input, optFns...)
}
