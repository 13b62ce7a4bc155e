package repository

import (
	"context"
	"time"

	"garagejobs/internal/domain/entities"
	"garagejobs/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultVehiclesTableName = "vehicles"

type vehicleItem struct {
	ID            string `dynamodbav:"id"`
	Registration  string `dynamodbav:"registration"`
	Brand         string `dynamodbav:"brand,omitempty"`
	Model         string `dynamodbav:"model,omitempty"`
	Type          string `dynamodbav:"type,omitempty"`
	Year          string `dynamodbav:"year,omitempty"`
	Color         string `dynamodbav:"color,omitempty"`
	ChassisNumber string `dynamodbav:"chassis_number,omitempty"`
	CreatedAt     string `dynamodbav:"created_at"`
}

// VehicleDynamoRepository persists Vehicle records in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// Registration lookups scan with a filter; the fleet of one shop stays small
// enough that a GSI is not worth the table churn.
type VehicleDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IVehicleRepository = (*VehicleDynamoRepository)(nil)

func NewVehicleDynamoRepository(ddb *dynamodb.Client) *VehicleDynamoRepository {
	return &VehicleDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("VEHICLES_TABLE", defaultVehiclesTableName),
	}
}

func (r *VehicleDynamoRepository) Create(ctx context.Context, v entities.Vehicle) (entities.Vehicle, error) {
	av, err := attributevalue.MarshalMap(toVehicleItem(v))
	if err != nil {
		return entities.Vehicle{}, err
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
		return entities.Vehicle{}, err
	}
	return v, nil
}

func (r *VehicleDynamoRepository) GetByID(ctx context.Context, id string) (entities.Vehicle, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Vehicle{}, err
	}
	if len(out.Item) == 0 {
		return entities.Vehicle{}, nil
	}

	var it vehicleItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Vehicle{}, err
	}
	return fromVehicleItem(it), nil
}

func (r *VehicleDynamoRepository) GetByRegistration(ctx context.Context, registration string) (entities.Vehicle, error) {
	out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
		TableName:        aws.String(r.tableName),
		FilterExpression: aws.String("registration = :reg"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":reg": &types.AttributeValueMemberS{Value: registration},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.Vehicle{}, err
	}
	if len(out.Items) == 0 {
		return entities.Vehicle{}, nil
	}

	var it vehicleItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.Vehicle{}, err
	}
	return fromVehicleItem(it), nil
}

func toVehicleItem(v entities.Vehicle) vehicleItem {
	return vehicleItem{
		ID:            v.ID,
		Registration:  v.Registration,
		Brand:         v.Brand,
		Model:         v.Model,
		Type:          v.Type,
		Year:          v.Year,
		Color:         v.Color,
		ChassisNumber: v.ChassisNumber,
		CreatedAt:     v.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromVehicleItem(it vehicleItem) entities.Vehicle {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	return entities.Vehicle{
		ID:            it.ID,
		Registration:  it.Registration,
		Brand:         it.Brand,
		Model:         it.Model,
		Type:          it.Type,
		Year:          it.Year,
		Color:         it.Color,
		ChassisNumber: it.ChassisNumber,
		CreatedAt:     createdAt,
	}
}
