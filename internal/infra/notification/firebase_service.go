package notification

import (
	"context"
	"fmt"
	"log/slog"

	"storefront/internal/domain/service"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"google.golang.org/api/option"
)

// maxMulticastTokens is the FCM limit per multicast request
const maxMulticastTokens = 500

type firebaseService struct {
	client *messaging.Client
}

// NewFirebaseService creates a new Firebase notification service instance
func NewFirebaseService(ctx context.Context, projectID, credentialsPath string) (service.NotificationService, error) {
	var opts []option.ClientOption
	if credentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsPath))
	}

	var appConfig *firebase.Config
	if projectID != "" {
		appConfig = &firebase.Config{ProjectID: projectID}
	}

	app, err := firebase.NewApp(ctx, appConfig, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Firebase app: %w", err)
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get messaging client: %w", err)
	}

	return &firebaseService{
		client: client,
	}, nil
}

// SendSingleNotification sends a push notification to a single device token
func (s *firebaseService) SendSingleNotification(ctx context.Context, token, title, body string, data map[string]string) error {
	message := &messaging.Message{
		Token: token,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data: data,
	}

	if _, err := s.client.Send(ctx, message); err != nil {
		return fmt.Errorf("failed to send notification: %w", err)
	}

	return nil
}

// SendBatchNotification sends push notifications to up to 500 device tokens
func (s *firebaseService) SendBatchNotification(ctx context.Context, tokens []string, title, body string, data map[string]string) (successCount, failureCount int, invalidTokens []string, err error) {
	if len(tokens) == 0 {
		return 0, 0, nil, nil
	}

	if len(tokens) > maxMulticastTokens {
		return 0, 0, nil, fmt.Errorf("token count exceeds limit: %d (max %d)", len(tokens), maxMulticastTokens)
	}

	message := &messaging.MulticastMessage{
		Tokens: tokens,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data: data,
	}

	response, err := s.client.SendEachForMulticast(ctx, message)
	if err != nil {
		return 0, 0, nil, fmt.Errorf("failed to send multicast notification: %w", err)
	}

	invalidTokens = make([]string, 0)
	for idx, sendResponse := range response.Responses {
		if sendResponse.Error == nil {
			continue
		}
		if messaging.IsInvalidArgument(sendResponse.Error) || messaging.IsUnregistered(sendResponse.Error) {
			invalidTokens = append(invalidTokens, tokens[idx])
		}
	}

	return response.SuccessCount, response.FailureCount, invalidTokens, nil
}

// logOnlyService stands in for FCM when no Firebase project is configured
type logOnlyService struct {
	logger *slog.Logger
}

// NewLogOnlyService returns a NotificationService that only logs
func NewLogOnlyService(logger *slog.Logger) service.NotificationService {
	return &logOnlyService{logger: logger}
}

func (s *logOnlyService) SendSingleNotification(ctx context.Context, token, title, body string, _ map[string]string) error {
	s.logger.InfoContext(ctx, "[LogOnlyPush] notification",
		slog.String("title", title),
		slog.String("body", body),
		slog.Int("token_len", len(token)),
	)

	return nil
}

func (s *logOnlyService) SendBatchNotification(ctx context.Context, tokens []string, title, body string, _ map[string]string) (successCount, failureCount int, invalidTokens []string, err error) {
	s.logger.InfoContext(ctx, "[LogOnlyPush] batch notification",
		slog.String("title", title),
		slog.String("body", body),
		slog.Int("token_count", len(tokens)),
	)

	return len(tokens), 0, nil, nil
}
