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

const defaultInsuranceCompaniesTableName = "insurance_companies"

type insuranceCompanyItem struct {
	ID   string `dynamodbav:"id"`
	Name string `dynamodbav:"name"`
}

// InsuranceCompanyDynamoRepository persists InsuranceCompany records in
// DynamoDB.
//
// Table requirements:
//   - PK: id (string)
type InsuranceCompanyDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IInsuranceCompanyRepository = (*InsuranceCompanyDynamoRepository)(nil)

func NewInsuranceCompanyDynamoRepository(ddb *dynamodb.Client) *InsuranceCompanyDynamoRepository {
	return &InsuranceCompanyDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("INSURANCE_COMPANIES_TABLE", defaultInsuranceCompaniesTableName),
	}
}

func (r *InsuranceCompanyDynamoRepository) GetByID(ctx context.Context, id string) (entities.InsuranceCompany, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.InsuranceCompany{}, err
	}
	if len(out.Item) == 0 {
		return entities.InsuranceCompany{}, nil
	}

	var it insuranceCompanyItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.InsuranceCompany{}, err
	}
	return entities.InsuranceCompany{ID: it.ID, Name: it.Name}, nil
}

func (r *InsuranceCompanyDynamoRepository) List(ctx context.Context) ([]entities.InsuranceCompany, error) {
	out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})
	if err != nil {
		return nil, err
	}

	companies := make([]entities.InsuranceCompany, 0, len(out.Items))
	for _, raw := range out.Items {
		var it insuranceCompanyItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		companies = append(companies, entities.InsuranceCompany{ID: it.ID, Name: it.Name})
	}
	return companies, nil
}
