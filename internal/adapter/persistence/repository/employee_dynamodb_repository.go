package repository

import (
	"context"

	"garagejobs/internal/domain/entities"
	"garagejobs/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultEmployeesTableName = "employees"

type employeeItem struct {
	ID       string `dynamodbav:"id"`
	Name     string `dynamodbav:"name"`
	Role     string `dynamodbav:"role,omitempty"`
	Phone    string `dynamodbav:"phone,omitempty"`
	IsActive bool   `dynamodbav:"is_active"`
}

// EmployeeDynamoRepository persists Employee records in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// The roster is small; List scans the whole table and the use case filters.
type EmployeeDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IEmployeeRepository = (*EmployeeDynamoRepository)(nil)

func NewEmployeeDynamoRepository(ddb *dynamodb.Client) *EmployeeDynamoRepository {
	return &EmployeeDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("EMPLOYEES_TABLE", defaultEmployeesTableName),
	}
}

func (r *EmployeeDynamoRepository) GetByID(ctx context.Context, id string) (entities.Employee, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Employee{}, err
	}
	if len(out.Item) == 0 {
		return entities.Employee{}, nil
	}

	var it employeeItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Employee{}, err
	}
	return fromEmployeeItem(it), nil
}

func (r *EmployeeDynamoRepository) List(ctx context.Context) ([]entities.Employee, error) {
	employees := make([]entities.Employee, 0)

	var startKey map[string]types.AttributeValue
	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(r.tableName),
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			var it employeeItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			employees = append(employees, fromEmployeeItem(it))
		}
		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}
	return employees, nil
}

func fromEmployeeItem(it employeeItem) entities.Employee {
	return entities.Employee{
		ID:       it.ID,
		Name:     it.Name,
		Role:     it.Role,
		Phone:    it.Phone,
		IsActive: it.IsActive,
	}
}
