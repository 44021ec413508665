// internal/notify/publisher.go
package notify

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sns"

	"dining-concierge/internal/common/errors"
	"dining-concierge/internal/common/logger"
)

// SNSService defines the SNS operations used by the publisher.
type SNSService interface {
	Publish(ctx context.Context, params *sns.PublishInput, optFns ...func(*sns.Options)) (*sns.PublishOutput, error)
}

// TopicPublisher delivers suggestion notifications to a single configured
// topic. Publishing is best-effort on the conversational path: callers decide
// what a failure means, the publisher only reports it.
type TopicPublisher struct {
	sns      SNSService
	topicARN string
	logger   logger.Logger
}

func NewTopicPublisher(svc SNSService, topicARN string, log logger.Logger) *TopicPublisher {
	return &TopicPublisher{
		sns:      svc,
		topicARN: topicARN,
		logger:   log.With(map[string]interface{}{"topic_arn": topicARN}),
	}
}

// Publish sends one message to the topic. A single attempt, no retries.
func (p *TopicPublisher) Publish(ctx context.Context, subject, body string) error {
	out, err := p.sns.Publish(ctx, &sns.PublishInput{
		TopicArn: aws.String(p.topicARN),
		Subject:  aws.String(subject),
		Message:  aws.String(body),
	})
	if err != nil {
		return errors.NewPublishFailedError(err)
	}

	messageID := ""
	if out.MessageId != nil {
		messageID = *out.MessageId
	}
	p.logger.Info("notification published", map[string]interface{}{
		"subject":    subject,
		"message_id": messageID,
	})
	return nil
}
