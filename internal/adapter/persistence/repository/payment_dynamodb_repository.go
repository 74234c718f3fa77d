package repository

import (
	"context"
	"errors"
	"strconv"
	"time"

	"salao_xpto/internal/domain/entities"
	"salao_xpto/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultPaymentsTableName     = "payments"
	defaultAppointmentsTableName = "appointments"
	paymentsStatusExpiryIndex    = "status-expires_at-index"
)

type paymentItem struct {
	AppointmentID     string `dynamodbav:"appointment_id"`
	ID                string `dynamodbav:"id"`
	WorkspaceID       string `dynamodbav:"workspace_id"`
	AmountCents       int64  `dynamodbav:"amount_cents"`
	ServiceTotalCents int64  `dynamodbav:"service_total_cents"`
	Status            string `dynamodbav:"status"`
	PayloadText       string `dynamodbav:"payload_text,omitempty"`
	CreatedAt         string `dynamodbav:"created_at"`
	ExpiresAt         string `dynamodbav:"expires_at"`
	ExpiresAtEpoch    int64  `dynamodbav:"expires_at_epoch"`
	PaidAt            string `dynamodbav:"paid_at,omitempty"`
	ConfirmedBy       string `dynamodbav:"confirmed_by,omitempty"`
	CancelledBy       string `dynamodbav:"cancelled_by,omitempty"`
	CancelReason      string `dynamodbav:"cancel_reason,omitempty"`
	Notes             string `dynamodbav:"notes,omitempty"`
}

// PaymentDynamoRepository persists Payment entities in DynamoDB.
//
// Table requirements:
//   - PK: appointment_id (string) — using the appointment as PK means the
//     1:1 payment-per-appointment constraint is enforced by the table itself.
//   - GSI: status-expires_at-index (PK: status, SK: expires_at_epoch) for
//     the expiry sweep.
//
// Confirm/Cancel pair the payment write with the appointment status write in
// one TransactWriteItems call, so the two records can never diverge. A
// conditional-check loss anywhere in the transaction is reported as the zero
// Payment with a nil error; the usecase decides what that means.

type PaymentDynamoRepository struct {
	ddb               *dynamodb.Client
	tableName         string
	appointmentsTable string
}

var _ interfaces.IPaymentRepository = (*PaymentDynamoRepository)(nil)

func NewPaymentDynamoRepository(ddb *dynamodb.Client) *PaymentDynamoRepository {
	return &PaymentDynamoRepository{
		ddb:               ddb,
		tableName:         getenvDefault("PAYMENTS_TABLE", defaultPaymentsTableName),
		appointmentsTable: getenvDefault("APPOINTMENTS_TABLE", defaultAppointmentsTableName),
	}
}

func (r *PaymentDynamoRepository) Create(ctx context.Context, p entities.Payment) (entities.Payment, error) {
	it := toPaymentItem(p)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Payment{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#pk)"),
		ExpressionAttributeNames: map[string]string{
			"#pk": "appointment_id",
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			// Another writer created the row first.
			return entities.Payment{}, nil
		}
		return entities.Payment{}, err
	}
	return p, nil
}

func (r *PaymentDynamoRepository) GetByAppointmentID(ctx context.Context, appointmentID string) (entities.Payment, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"appointment_id": &types.AttributeValueMemberS{Value: appointmentID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Payment{}, err
	}
	if len(out.Item) == 0 {
		return entities.Payment{}, nil
	}

	var it paymentItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Payment{}, err
	}
	return fromPaymentItem(it), nil
}

func (r *PaymentDynamoRepository) ConfirmPending(ctx context.Context, appointmentID, actorID string, paidAt time.Time) (entities.Payment, error) {
	ts := paidAt.UTC().Format(time.RFC3339Nano)

	paymentUpdate := types.Update{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"appointment_id": &types.AttributeValueMemberS{Value: appointmentID},
		},
		UpdateExpression:    aws.String("SET #status = :pago, #paid_at = :ts, #confirmed_by = :actor"),
		ConditionExpression: aws.String("#status = :pendente"),
		ExpressionAttributeNames: map[string]string{
			"#status":       "status",
			"#paid_at":      "paid_at",
			"#confirmed_by": "confirmed_by",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pago":     &types.AttributeValueMemberS{Value: string(entities.PaymentStatusPago)},
			":pendente": &types.AttributeValueMemberS{Value: string(entities.PaymentStatusPendente)},
			":ts":       &types.AttributeValueMemberS{Value: ts},
			":actor":    &types.AttributeValueMemberS{Value: actorID},
		},
	}
	appointmentUpdate := types.Update{
		TableName: aws.String(r.appointmentsTable),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: appointmentID},
		},
		UpdateExpression:    aws.String("SET #status = :confirmado, #updated_at = :ts"),
		ConditionExpression: aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#status":     "status",
			"#updated_at": "updated_at",
			"#id":         "id",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":confirmado": &types.AttributeValueMemberS{Value: string(entities.AppointmentStatusConfirmado)},
			":ts":         &types.AttributeValueMemberS{Value: ts},
		},
	}

	return r.transitionPair(ctx, appointmentID, paymentUpdate, appointmentUpdate)
}

func (r *PaymentDynamoRepository) CancelPending(ctx context.Context, appointmentID, cancelledBy, reason string, now time.Time) (entities.Payment, error) {
	ts := now.UTC().Format(time.RFC3339Nano)

	paymentUpdate := types.Update{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"appointment_id": &types.AttributeValueMemberS{Value: appointmentID},
		},
		UpdateExpression:    aws.String("SET #status = :cancelado, #cancelled_by = :cb, #cancel_reason = :reason"),
		ConditionExpression: aws.String("#status = :pendente"),
		ExpressionAttributeNames: map[string]string{
			"#status":        "status",
			"#cancelled_by":  "cancelled_by",
			"#cancel_reason": "cancel_reason",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":cancelado": &types.AttributeValueMemberS{Value: string(entities.PaymentStatusCancelado)},
			":pendente":  &types.AttributeValueMemberS{Value: string(entities.PaymentStatusPendente)},
			":cb":        &types.AttributeValueMemberS{Value: cancelledBy},
			":reason":    &types.AttributeValueMemberS{Value: reason},
		},
	}
	appointmentUpdate := types.Update{
		TableName: aws.String(r.appointmentsTable),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: appointmentID},
		},
		UpdateExpression:    aws.String("SET #status = :cancelado, #cancelled_by = :cb, #updated_at = :ts"),
		ConditionExpression: aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#status":       "status",
			"#cancelled_by": "cancelled_by",
			"#updated_at":   "updated_at",
			"#id":           "id",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":cancelado": &types.AttributeValueMemberS{Value: string(entities.AppointmentStatusCancelado)},
			":cb":        &types.AttributeValueMemberS{Value: cancelledBy},
			":ts":        &types.AttributeValueMemberS{Value: ts},
		},
	}

	return r.transitionPair(ctx, appointmentID, paymentUpdate, appointmentUpdate)
}

// transitionPair commits both updates atomically and reads back the payment
// row. Either record can veto the transaction via its condition; the caller
// only learns "the pair did not move" and resolves the cause itself.
func (r *PaymentDynamoRepository) transitionPair(ctx context.Context, appointmentID string, paymentUpdate, appointmentUpdate types.Update) (entities.Payment, error) {
	_, err := r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{Update: &paymentUpdate},
			{Update: &appointmentUpdate},
		},
	})
	if err != nil {
		if isTransactionConditionLoss(err) {
			return entities.Payment{}, nil
		}
		return entities.Payment{}, err
	}
	return r.GetByAppointmentID(ctx, appointmentID)
}

func isTransactionConditionLoss(err error) bool {
	var tce *types.TransactionCanceledException
	if !errors.As(err, &tce) {
		return false
	}
	for _, reason := range tce.CancellationReasons {
		if reason.Code != nil && *reason.Code == "ConditionalCheckFailed" {
			return true
		}
	}
	return false
}

func (r *PaymentDynamoRepository) ListExpiredPending(ctx context.Context, workspaceID string, now time.Time) ([]entities.Payment, error) {
	input := &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(paymentsStatusExpiryIndex),
		KeyConditionExpression: aws.String("#status = :pendente AND #exp < :now"),
		ExpressionAttributeNames: map[string]string{
			"#status": "status",
			"#exp":    "expires_at_epoch",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pendente": &types.AttributeValueMemberS{Value: string(entities.PaymentStatusPendente)},
			":now":      &types.AttributeValueMemberN{Value: strconv.FormatInt(now.UTC().Unix(), 10)},
		},
	}
	if workspaceID != "" {
		input.FilterExpression = aws.String("workspace_id = :ws")
		input.ExpressionAttributeValues[":ws"] = &types.AttributeValueMemberS{Value: workspaceID}
	}

	var payments []entities.Payment
	for {
		out, err := r.ddb.Query(ctx, input)
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			var it paymentItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			payments = append(payments, fromPaymentItem(it))
		}
		if out.LastEvaluatedKey == nil {
			break
		}
		input.ExclusiveStartKey = out.LastEvaluatedKey
	}
	return payments, nil
}

func toPaymentItem(p entities.Payment) paymentItem {
	it := paymentItem{
		AppointmentID:     p.AppointmentID,
		ID:                p.ID,
		WorkspaceID:       p.WorkspaceID,
		AmountCents:       p.AmountCents,
		ServiceTotalCents: p.ServiceTotalCents,
		Status:            string(p.Status),
		PayloadText:       p.PayloadText,
		CreatedAt:         p.CreatedAt.UTC().Format(time.RFC3339Nano),
		ExpiresAt:         p.ExpiresAt.UTC().Format(time.RFC3339Nano),
		ExpiresAtEpoch:    p.ExpiresAt.UTC().Unix(),
		ConfirmedBy:       p.ConfirmedBy,
		CancelledBy:       p.CancelledBy,
		CancelReason:      p.CancelReason,
		Notes:             p.Notes,
	}
	if p.PaidAt != nil {
		it.PaidAt = p.PaidAt.UTC().Format(time.RFC3339Nano)
	}
	return it
}

func fromPaymentItem(it paymentItem) entities.Payment {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	expiresAt, _ := time.Parse(time.RFC3339Nano, it.ExpiresAt)
	p := entities.Payment{
		ID:                it.ID,
		AppointmentID:     it.AppointmentID,
		WorkspaceID:       it.WorkspaceID,
		AmountCents:       it.AmountCents,
		ServiceTotalCents: it.ServiceTotalCents,
		Status:            entities.PaymentStatus(it.Status),
		PayloadText:       it.PayloadText,
		CreatedAt:         createdAt,
		ExpiresAt:         expiresAt,
		ConfirmedBy:       it.ConfirmedBy,
		CancelledBy:       it.CancelledBy,
		CancelReason:      it.CancelReason,
		Notes:             it.Notes,
	}
	if it.PaidAt != "" {
		if paidAt, err := time.Parse(time.RFC3339Nano, it.PaidAt); err == nil {
			p.PaidAt = &paidAt
		}
	}
	return p
}
