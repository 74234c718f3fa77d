package repository

import (
	"context"
	"time"

	"salao_xpto/internal/domain/entities"
	"salao_xpto/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultSettingsTableName = "workspace_payment_settings"

type workspaceSettingsItem struct {
	WorkspaceID       string `dynamodbav:"workspace_id"`
	RequirePayment    bool   `dynamodbav:"require_payment"`
	ChargeMode        string `dynamodbav:"charge_mode"`
	PartialPercent    int    `dynamodbav:"partial_percent,omitempty"`
	PartialFixedCents int64  `dynamodbav:"partial_fixed_cents,omitempty"`
	ExpiryMinutes     int    `dynamodbav:"expiry_minutes"`
	PixKeyType        string `dynamodbav:"pix_key_type,omitempty"`
	PixKey            string `dynamodbav:"pix_key,omitempty"`
	PixHolderName     string `dynamodbav:"pix_holder_name,omitempty"`
	PixCity           string `dynamodbav:"pix_city,omitempty"`
	UpdatedAt         string `dynamodbav:"updated_at"`
}

// WorkspaceSettingsDynamoRepository persists the pricing policy per
// workspace. Writes are last-writer-wins upserts: the settings form has no
// concurrent editing story and does not need one.
//
// Table requirements:
//   - PK: workspace_id (string)

type WorkspaceSettingsDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IWorkspaceSettingsRepository = (*WorkspaceSettingsDynamoRepository)(nil)

func NewWorkspaceSettingsDynamoRepository(ddb *dynamodb.Client) *WorkspaceSettingsDynamoRepository {
	return &WorkspaceSettingsDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("WORKSPACE_SETTINGS_TABLE", defaultSettingsTableName),
	}
}

func (r *WorkspaceSettingsDynamoRepository) Put(ctx context.Context, s entities.WorkspaceSettings) (entities.WorkspaceSettings, error) {
	av, err := attributevalue.MarshalMap(toSettingsItem(s))
	if err != nil {
		return entities.WorkspaceSettings{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	if err != nil {
		return entities.WorkspaceSettings{}, err
	}
	return s, nil
}

func (r *WorkspaceSettingsDynamoRepository) GetByWorkspaceID(ctx context.Context, workspaceID string) (entities.WorkspaceSettings, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"workspace_id": &types.AttributeValueMemberS{Value: workspaceID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.WorkspaceSettings{}, err
	}
	if len(out.Item) == 0 {
		return entities.WorkspaceSettings{}, nil
	}

	var it workspaceSettingsItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.WorkspaceSettings{}, err
	}
	return fromSettingsItem(it), nil
}

func toSettingsItem(s entities.WorkspaceSettings) workspaceSettingsItem {
	return workspaceSettingsItem{
		WorkspaceID:       s.WorkspaceID,
		RequirePayment:    s.Policy.RequirePayment,
		ChargeMode:        string(s.Policy.ChargeMode),
		PartialPercent:    s.Policy.PartialPercent,
		PartialFixedCents: s.Policy.PartialFixedCents,
		ExpiryMinutes:     s.Policy.ExpiryMinutes,
		PixKeyType:        string(s.Policy.Pix.KeyType),
		PixKey:            s.Policy.Pix.Key,
		PixHolderName:     s.Policy.Pix.HolderName,
		PixCity:           s.Policy.Pix.City,
		UpdatedAt:         s.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromSettingsItem(it workspaceSettingsItem) entities.WorkspaceSettings {
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.WorkspaceSettings{
		WorkspaceID: it.WorkspaceID,
		Policy: entities.PricingPolicy{
			RequirePayment:    it.RequirePayment,
			ChargeMode:        entities.ChargeMode(it.ChargeMode),
			PartialPercent:    it.PartialPercent,
			PartialFixedCents: it.PartialFixedCents,
			ExpiryMinutes:     it.ExpiryMinutes,
			Pix: entities.PixIdentity{
				KeyType:    entities.PixKeyType(it.PixKeyType),
				Key:        it.PixKey,
				HolderName: it.PixHolderName,
				City:       it.PixCity,
			},
		},
		UpdatedAt: updatedAt,
	}
}
