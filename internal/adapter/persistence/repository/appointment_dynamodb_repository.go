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

type appointmentItem struct {
	ID          string `dynamodbav:"id"`
	WorkspaceID string `dynamodbav:"workspace_id"`
	Status      string `dynamodbav:"status"`
	CancelledBy string `dynamodbav:"cancelled_by,omitempty"`
	UpdatedAt   string `dynamodbav:"updated_at,omitempty"`
}

// AppointmentDynamoRepository reads booking records from the scheduling
// side's table. This service never updates appointments through it: the
// status cascade happens inside the payment repository's transaction, which
// writes to the same table.

type AppointmentDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IAppointmentRepository = (*AppointmentDynamoRepository)(nil)

func NewAppointmentDynamoRepository(ddb *dynamodb.Client) *AppointmentDynamoRepository {
	return &AppointmentDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("APPOINTMENTS_TABLE", defaultAppointmentsTableName),
	}
}

func (r *AppointmentDynamoRepository) GetByID(ctx context.Context, id string) (entities.Appointment, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Appointment{}, err
	}
	if len(out.Item) == 0 {
		return entities.Appointment{}, nil
	}

	var it appointmentItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Appointment{}, err
	}

	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.Appointment{
		ID:          it.ID,
		WorkspaceID: it.WorkspaceID,
		Status:      entities.AppointmentStatus(it.Status),
		CancelledBy: it.CancelledBy,
		UpdatedAt:   updatedAt,
	}, nil
}
