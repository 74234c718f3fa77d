package interfaces

import (
	"context"

	"salao_xpto/internal/domain/entities"
)

//go:generate mockgen -source=workspace_settings_repository_interface.go -destination=mocks/workspace_settings_repository_interface_mock.go -package=mock_interfaces

// IWorkspaceSettingsRepository abstracts DynamoDB persistence for the
// per-workspace pricing policy. GetByWorkspaceID returns the zero value when
// the workspace never configured payments.
type IWorkspaceSettingsRepository interface {
	Put(ctx context.Context, s entities.WorkspaceSettings) (entities.WorkspaceSettings, error)
	GetByWorkspaceID(ctx context.Context, workspaceID string) (entities.WorkspaceSettings, error)
}
