// internal/relay/relay.go
package relay

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/lexruntimev2"
	"github.com/google/uuid"

	"dining-concierge/internal/common/config"
	"dining-concierge/internal/common/errors"
	"dining-concierge/internal/common/logger"
)

// NoResponseMessage is returned when the recognizer answers with an empty
// message list.
const NoResponseMessage = "No response from bot."

// Recognizer defines the recognizer operations used by the relay.
type Recognizer interface {
	RecognizeText(ctx context.Context, params *lexruntimev2.RecognizeTextInput, optFns ...func(*lexruntimev2.Options)) (*lexruntimev2.RecognizeTextOutput, error)
}

// Relay forwards raw user text to the intent recognizer and hands back the
// first reply. It holds no conversation state of its own; continuity lives in
// the recognizer session.
type Relay struct {
	recognizer Recognizer
	cfg        config.LexConfig
	logger     logger.Logger
}

func NewRelay(recognizer Recognizer, cfg config.LexConfig, log logger.Logger) *Relay {
	return &Relay{
		recognizer: recognizer,
		cfg:        cfg,
		logger:     log.With(map[string]interface{}{"bot_id": cfg.BotID}),
	}
}

// Forward sends one utterance to the recognizer and returns the first message
// of the reply. A single attempt; failures are wrapped and returned as-is.
func (r *Relay) Forward(ctx context.Context, text string) (string, error) {
	requestID := uuid.New().String()

	r.logger.Debug("forwarding utterance", map[string]interface{}{
		"request_id": requestID,
		"session_id": r.cfg.SessionID,
	})

	out, err := r.recognizer.RecognizeText(ctx, &lexruntimev2.RecognizeTextInput{
		BotId:      aws.String(r.cfg.BotID),
		BotAliasId: aws.String(r.cfg.BotAliasID),
		LocaleId:   aws.String(r.cfg.LocaleID),
		SessionId:  aws.String(r.cfg.SessionID),
		Text:       aws.String(text),
	})
	if err != nil {
		r.logger.WithError(err).Error("recognizer request failed", map[string]interface{}{
			"request_id": requestID,
		})
		return "", errors.NewRecognizerFailedError(err)
	}

	if len(out.Messages) == 0 || out.Messages[0].Content == nil {
		return NoResponseMessage, nil
	}
	return *out.Messages[0].Content, nil
}
