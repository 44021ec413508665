// internal/notify/publisher_test.go
package notify

import (
	"context"
	stderrors "errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	"github.com/stretchr/testify/assert"

	"dining-concierge/internal/common/errors"
	"dining-concierge/internal/common/logger"
)

// ==========================
// Mock Implementations
// ==========================

type MockSNSService struct {
	PublishFunc func(ctx context.Context, params *sns.PublishInput, optFns ...func(*sns.Options)) (*sns.PublishOutput, error)
}

func (m *MockSNSService) Publish(ctx context.Context, params *sns.PublishInput, optFns ...func(*sns.Options)) (*sns.PublishOutput, error) {
	return m.PublishFunc(ctx, params, optFns...)
}

// ==========================
// Publish Tests
// ==========================

func TestTopicPublisher_Publish_Success(t *testing.T) {
	var captured *sns.PublishInput
	svc := &MockSNSService{
		PublishFunc: func(ctx context.Context, params *sns.PublishInput, optFns ...func(*sns.Options)) (*sns.PublishOutput, error) {
			captured = params
			return &sns.PublishOutput{MessageId: aws.String("msg-001")}, nil
		},
	}

	p := NewTopicPublisher(svc, "arn:aws:sns:us-east-1:000000000000:suggestions", logger.NewTestLogger(t))
	err := p.Publish(context.Background(), "Restaurant Suggestions", "Here are the restaurant suggestions:\n\n")

	assert.NoError(t, err)
	assert.Equal(t, "arn:aws:sns:us-east-1:000000000000:suggestions", *captured.TopicArn)
	assert.Equal(t, "Restaurant Suggestions", *captured.Subject)
	assert.Equal(t, "Here are the restaurant suggestions:\n\n", *captured.Message)
}

func TestTopicPublisher_Publish_Failure(t *testing.T) {
	calls := 0
	svc := &MockSNSService{
		PublishFunc: func(ctx context.Context, params *sns.PublishInput, optFns ...func(*sns.Options)) (*sns.PublishOutput, error) {
			calls++
			return nil, stderrors.New("endpoint unreachable")
		},
	}

	p := NewTopicPublisher(svc, "arn:aws:sns:us-east-1:000000000000:suggestions", logger.NewTestLogger(t))
	err := p.Publish(context.Background(), "Restaurant Suggestions", "body")

	assert.Error(t, err)
	assert.Equal(t, 1, calls, "publish is a single attempt")

	var stdErr *errors.StandardError
	assert.True(t, stderrors.As(err, &stdErr))
	assert.Equal(t, errors.ErrCodePublishFailed, stdErr.Code)
	assert.False(t, stdErr.Retryable)
}
