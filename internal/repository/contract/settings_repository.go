package contract

import (
	"context"

	"pm-intel-be/internal/entity"
)

// SettingsRepository stores the single workspace settings row.
type SettingsRepository interface {
	Create(ctx context.Context, settings *entity.WorkspaceSettings) error
	Update(ctx context.Context, settings *entity.WorkspaceSettings) error
	FindFirst(ctx context.Context) (*entity.WorkspaceSettings, error)
}
