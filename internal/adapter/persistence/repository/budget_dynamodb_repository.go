package repository

import (
	"context"
	"encoding/json"
	"time"

	"gerador_licitacao/internal/domain/entities"
	"gerador_licitacao/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultBudgetsTableName = "budgets"

// budgetItem stores the whole document as a JSON payload. Derived fields
// (estimates, quotas) are recomputed on read, so the payload is a plain
// snapshot and never needs per-attribute updates. PAE and timestamps are
// lifted to top-level attributes for future secondary indexes.
type budgetItem struct {
	ID        string `dynamodbav:"id"`
	PAE       string `dynamodbav:"pae"`
	Payload   string `dynamodbav:"payload"`
	CreatedAt string `dynamodbav:"created_at"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// BudgetDynamoRepository persists Budget documents in DynamoDB.
//
// Table requirements:
//   - PK: id (string)

type BudgetDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IBudgetRepository = (*BudgetDynamoRepository)(nil)

func NewBudgetDynamoRepository(ddb *dynamodb.Client) *BudgetDynamoRepository {
	return &BudgetDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("BUDGETS_TABLE", defaultBudgetsTableName),
	}
}

func (r *BudgetDynamoRepository) Create(ctx context.Context, b entities.Budget) (entities.Budget, error) {
	av, err := marshalBudgetItem(b)
	if err != nil {
		return entities.Budget{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.Budget{}, err
	}
	return b, nil
}

func (r *BudgetDynamoRepository) GetByID(ctx context.Context, id string) (entities.Budget, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Budget{}, err
	}
	if len(out.Item) == 0 {
		return entities.Budget{}, nil
	}

	var it budgetItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Budget{}, err
	}
	return fromBudgetItem(it)
}

func (r *BudgetDynamoRepository) Save(ctx context.Context, b entities.Budget) (entities.Budget, error) {
	av, err := marshalBudgetItem(b)
	if err != nil {
		return entities.Budget{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	if err != nil {
		return entities.Budget{}, err
	}
	return b, nil
}

func (r *BudgetDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

func marshalBudgetItem(b entities.Budget) (map[string]types.AttributeValue, error) {
	payload, err := json.Marshal(b)
	if err != nil {
		return nil, err
	}
	return attributevalue.MarshalMap(budgetItem{
		ID:        b.ID,
		PAE:       b.PAE,
		Payload:   string(payload),
		CreatedAt: b.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt: b.UpdatedAt.UTC().Format(time.RFC3339Nano),
	})
}

func fromBudgetItem(it budgetItem) (entities.Budget, error) {
	var b entities.Budget
	if err := json.Unmarshal([]byte(it.Payload), &b); err != nil {
		return entities.Budget{}, err
	}
	return b, nil
}
