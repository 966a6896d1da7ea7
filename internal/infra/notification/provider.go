package notification

import (
	"context"
	"log/slog"

	"storefront/config"
	"storefront/internal/domain/service"

	"go.uber.org/fx"
)

// Params holds dependencies for NotificationService, injected by Fx
type Params struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewNotificationService picks FCM when Firebase is configured
func NewNotificationService(params Params) (service.NotificationService, error) {
	cfg := params.Config.Firebase
	if cfg == nil || (cfg.ProjectID == "" && cfg.CredentialsPath == "") {
		params.Logger.Info("Firebase not configured, push notifications are logged only")

		return NewLogOnlyService(params.Logger), nil
	}

	return NewFirebaseService(params.Ctx, cfg.ProjectID, cfg.CredentialsPath)
}

// Module provides the notification FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewNotificationService),
)
