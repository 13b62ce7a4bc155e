package repository

import (
	"context"
	"strconv"
	"time"

	"garagejobs/internal/domain/entities"
	"garagejobs/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultJobsTableName = "jobs"

type jobStepItem struct {
	ID          string `dynamodbav:"id"`
	Name        string `dynamodbav:"name"`
	OrderIndex  int    `dynamodbav:"order_index"`
	IsSkippable bool   `dynamodbav:"is_skippable"`
	Status      string `dynamodbav:"status"`
	EmployeeID  string `dynamodbav:"employee_id,omitempty"`
	CompletedAt string `dynamodbav:"completed_at,omitempty"`
}

type jobStageItem struct {
	Code        string        `dynamodbav:"code"`
	Name        string        `dynamodbav:"name"`
	OrderIndex  int           `dynamodbav:"order_index"`
	Steps       []jobStepItem `dynamodbav:"steps"`
	IsLocked    bool          `dynamodbav:"is_locked"`
	IsCompleted bool          `dynamodbav:"is_completed"`
	StartedAt   string        `dynamodbav:"started_at,omitempty"`
	CompletedAt string        `dynamodbav:"completed_at,omitempty"`
}

type jobItem struct {
	ID                 string `dynamodbav:"id"`
	JobNumber          string `dynamodbav:"job_number"`
	VehicleID          string `dynamodbav:"vehicle_id"`
	Registration       string `dynamodbav:"registration"`
	VehicleBrand       string `dynamodbav:"vehicle_brand,omitempty"`
	VehicleModel       string `dynamodbav:"vehicle_model,omitempty"`
	VehicleType        string `dynamodbav:"vehicle_type,omitempty"`
	VehicleYear        string `dynamodbav:"vehicle_year,omitempty"`
	VehicleColor       string `dynamodbav:"vehicle_color,omitempty"`
	ChassisNumber      string `dynamodbav:"chassis_number,omitempty"`
	CustomerID         string `dynamodbav:"customer_id"`
	CustomerName       string `dynamodbav:"customer_name,omitempty"`
	CustomerPhone      string `dynamodbav:"customer_phone,omitempty"`
	CustomerAddress    string `dynamodbav:"customer_address,omitempty"`
	InsuranceCompanyID string `dynamodbav:"insurance_company_id,omitempty"`
	PaymentType        string `dynamodbav:"payment_type"`
	ExcessFee          string `dynamodbav:"excess_fee"`
	Receiver           string `dynamodbav:"receiver,omitempty"`
	StartDate          string `dynamodbav:"start_date"`
	EstimatedEndDate   string `dynamodbav:"estimated_end_date,omitempty"`
	RepairDescription  string `dynamodbav:"repair_description,omitempty"`
	Notes              string `dynamodbav:"notes,omitempty"`

	Stages            []jobStageItem `dynamodbav:"stages"`
	CurrentStageIndex int            `dynamodbav:"current_stage_index"`
	IsFinished        bool           `dynamodbav:"is_finished"`

	CreatedAt string `dynamodbav:"created_at"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// JobDynamoRepository persists Job documents in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// The whole workflow (stages and steps) lives inside the job item; Update
// replaces the document under an attribute_exists condition so a missing job
// never gets resurrected by a stale writer.
type JobDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IJobRepository = (*JobDynamoRepository)(nil)

func NewJobDynamoRepository(ddb *dynamodb.Client) *JobDynamoRepository {
	return &JobDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("JOBS_TABLE", defaultJobsTableName),
	}
}

func (r *JobDynamoRepository) Create(ctx context.Context, j entities.Job) (entities.Job, error) {
	av, err := attributevalue.MarshalMap(toJobItem(j))
	if err != nil {
		return entities.Job{}, err
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
		return entities.Job{}, err
	}
	return j, nil
}

func (r *JobDynamoRepository) GetByID(ctx context.Context, id string) (entities.Job, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Job{}, err
	}
	if len(out.Item) == 0 {
		return entities.Job{}, nil
	}

	var it jobItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Job{}, err
	}
	return fromJobItem(it), nil
}

func (r *JobDynamoRepository) Update(ctx context.Context, j entities.Job) (entities.Job, error) {
	av, err := attributevalue.MarshalMap(toJobItem(j))
	if err != nil {
		return entities.Job{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.Job{}, err
	}
	return j, nil
}

func (r *JobDynamoRepository) List(ctx context.Context) ([]entities.Job, error) {
	jobs := make([]entities.Job, 0)

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
			var it jobItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			jobs = append(jobs, fromJobItem(it))
		}
		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}
	return jobs, nil
}

func toJobItem(j entities.Job) jobItem {
	stages := make([]jobStageItem, 0, len(j.Stages))
	for _, s := range j.Stages {
		steps := make([]jobStepItem, 0, len(s.Steps))
		for _, st := range s.Steps {
			steps = append(steps, jobStepItem{
				ID:          st.ID,
				Name:        st.Name,
				OrderIndex:  st.OrderIndex,
				IsSkippable: st.IsSkippable,
				Status:      string(st.Status),
				EmployeeID:  st.EmployeeID,
				CompletedAt: timePtrToString(st.CompletedAt),
			})
		}
		stages = append(stages, jobStageItem{
			Code:        string(s.Code),
			Name:        s.Name,
			OrderIndex:  s.OrderIndex,
			Steps:       steps,
			IsLocked:    s.IsLocked,
			IsCompleted: s.IsCompleted,
			StartedAt:   timePtrToString(s.StartedAt),
			CompletedAt: timePtrToString(s.CompletedAt),
		})
	}

	return jobItem{
		ID:                 j.ID,
		JobNumber:          j.JobNumber,
		VehicleID:          j.Vehicle.ID,
		Registration:       j.Vehicle.Registration,
		VehicleBrand:       j.Vehicle.Brand,
		VehicleModel:       j.Vehicle.Model,
		VehicleType:        j.Vehicle.Type,
		VehicleYear:        j.Vehicle.Year,
		VehicleColor:       j.Vehicle.Color,
		ChassisNumber:      j.Vehicle.ChassisNumber,
		CustomerID:         j.Customer.ID,
		CustomerName:       j.Customer.Name,
		CustomerPhone:      j.Customer.Phone,
		CustomerAddress:    j.Customer.Address,
		InsuranceCompanyID: j.InsuranceCompanyID,
		PaymentType:        string(j.PaymentType),
		ExcessFee:          floatToString(j.ExcessFee),
		Receiver:           j.Receiver,
		StartDate:          j.StartDate.UTC().Format(time.RFC3339Nano),
		EstimatedEndDate:   timeToStringOrEmpty(j.EstimatedEndDate),
		RepairDescription:  j.RepairDescription,
		Notes:              j.Notes,
		Stages:             stages,
		CurrentStageIndex:  j.CurrentStageIndex,
		IsFinished:         j.IsFinished,
		CreatedAt:          j.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:          j.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromJobItem(it jobItem) entities.Job {
	stages := make([]entities.Stage, 0, len(it.Stages))
	for _, s := range it.Stages {
		steps := make([]entities.Step, 0, len(s.Steps))
		for _, st := range s.Steps {
			steps = append(steps, entities.Step{
				ID:          st.ID,
				Name:        st.Name,
				OrderIndex:  st.OrderIndex,
				IsSkippable: st.IsSkippable,
				Status:      entities.StepStatus(st.Status),
				EmployeeID:  st.EmployeeID,
				CompletedAt: stringToTimePtr(st.CompletedAt),
			})
		}
		stages = append(stages, entities.Stage{
			Code:        entities.StageCode(s.Code),
			Name:        s.Name,
			OrderIndex:  s.OrderIndex,
			Steps:       steps,
			IsLocked:    s.IsLocked,
			IsCompleted: s.IsCompleted,
			StartedAt:   stringToTimePtr(s.StartedAt),
			CompletedAt: stringToTimePtr(s.CompletedAt),
		})
	}

	excessFee, _ := strconv.ParseFloat(it.ExcessFee, 64)
	startDate, _ := time.Parse(time.RFC3339Nano, it.StartDate)
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)

	var estimatedEnd time.Time
	if it.EstimatedEndDate != "" {
		estimatedEnd, _ = time.Parse(time.RFC3339Nano, it.EstimatedEndDate)
	}

	return entities.Job{
		ID:        it.ID,
		JobNumber: it.JobNumber,
		Vehicle: entities.Vehicle{
			ID:            it.VehicleID,
			Registration:  it.Registration,
			Brand:         it.VehicleBrand,
			Model:         it.VehicleModel,
			Type:          it.VehicleType,
			Year:          it.VehicleYear,
			Color:         it.VehicleColor,
			ChassisNumber: it.ChassisNumber,
		},
		Customer: entities.Customer{
			ID:      it.CustomerID,
			Name:    it.CustomerName,
			Phone:   it.CustomerPhone,
			Address: it.CustomerAddress,
		},
		InsuranceCompanyID: it.InsuranceCompanyID,
		PaymentType:        entities.PaymentType(it.PaymentType),
		ExcessFee:          excessFee,
		Receiver:           it.Receiver,
		StartDate:          startDate,
		EstimatedEndDate:   estimatedEnd,
		RepairDescription:  it.RepairDescription,
		Notes:              it.Notes,
		Stages:             stages,
		CurrentStageIndex:  it.CurrentStageIndex,
		IsFinished:         it.IsFinished,
		CreatedAt:          createdAt,
		UpdatedAt:          updatedAt,
	}
}
