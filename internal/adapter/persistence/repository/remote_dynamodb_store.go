package repository

import (
	"context"
	"encoding/json"
	"os"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/hsl-mateusbolsoni/Personal-SaaS-sub000/internal/domain/entities"
	"github.com/hsl-mateusbolsoni/Personal-SaaS-sub000/internal/usecase/interfaces"
)

const (
	defaultClientsTableName         = "clients"
	defaultInvoicesTableName        = "invoices"
	defaultActivitiesTableName      = "activities"
	defaultCompanySettingsTableName = "company_settings"
	defaultAppSettingsTableName     = "app_settings"

	userIDIndexName = "user_id-index"
)

// syncItem is the row shape for id-keyed collections.
//
// Table requirements:
//   - PK: id (string)
//   - GSI (user_id-index): user_id
//
// The record itself is stored as a JSON document so the remote schema
// does not chase the entity structs.
type syncItem struct {
	ID        string `dynamodbav:"id"`
	UserID    string `dynamodbav:"user_id"`
	Doc       string `dynamodbav:"doc"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// settingsItem is the row shape for the per-user settings singletons.
//
// Table requirements:
//   - PK: user_id (string)
type settingsItem struct {
	UserID    string `dynamodbav:"user_id"`
	Doc       string `dynamodbav:"doc"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// RemoteDynamoStore implements the remote side of sync on DynamoDB: one
// table per collection, records partitioned by the authenticated user id.
// Upserts are full-object puts keyed by entity id, so they are idempotent
// and last-write-to-arrive wins.
type RemoteDynamoStore struct {
	ddb             *dynamodb.Client
	clientsTable    string
	invoicesTable   string
	activitiesTable string
	companyTable    string
	appTable        string
}

var _ interfaces.IRemoteStore = (*RemoteDynamoStore)(nil)

func NewRemoteDynamoStore(ddb *dynamodb.Client) *RemoteDynamoStore {
	return &RemoteDynamoStore{
		ddb:             ddb,
		clientsTable:    getenvDefault("CLIENTS_TABLE", defaultClientsTableName),
		invoicesTable:   getenvDefault("INVOICES_TABLE", defaultInvoicesTableName),
		activitiesTable: getenvDefault("ACTIVITIES_TABLE", defaultActivitiesTableName),
		companyTable:    getenvDefault("COMPANY_SETTINGS_TABLE", defaultCompanySettingsTableName),
		appTable:        getenvDefault("APP_SETTINGS_TABLE", defaultAppSettingsTableName),
	}
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func (r *RemoteDynamoStore) FetchClients(ctx context.Context, userID string) ([]entities.Client, error) {
	return fetchAll[entities.Client](ctx, r.ddb, r.clientsTable, userID)
}

func (r *RemoteDynamoStore) FetchInvoices(ctx context.Context, userID string) ([]entities.Invoice, error) {
	return fetchAll[entities.Invoice](ctx, r.ddb, r.invoicesTable, userID)
}

func (r *RemoteDynamoStore) FetchActivities(ctx context.Context, userID string) ([]entities.Activity, error) {
	return fetchAll[entities.Activity](ctx, r.ddb, r.activitiesTable, userID)
}

func (r *RemoteDynamoStore) FetchCompanySettings(ctx context.Context, userID string) (*entities.CompanySettings, error) {
	return fetchSettings[entities.CompanySettings](ctx, r.ddb, r.companyTable, userID)
}

func (r *RemoteDynamoStore) FetchAppSettings(ctx context.Context, userID string) (*entities.AppSettings, error) {
	return fetchSettings[entities.AppSettings](ctx, r.ddb, r.appTable, userID)
}

func (r *RemoteDynamoStore) UpsertClient(ctx context.Context, c entities.Client, userID string) error {
	return r.upsert(ctx, r.clientsTable, c.ID, userID, c)
}

func (r *RemoteDynamoStore) UpsertInvoice(ctx context.Context, inv entities.Invoice, userID string) error {
	return r.upsert(ctx, r.invoicesTable, inv.ID, userID, inv)
}

func (r *RemoteDynamoStore) UpsertActivity(ctx context.Context, a entities.Activity, userID string) error {
	return r.upsert(ctx, r.activitiesTable, a.ID, userID, a)
}

func (r *RemoteDynamoStore) UpsertCompanySettings(ctx context.Context, s entities.CompanySettings, userID string) error {
	return r.upsertSettings(ctx, r.companyTable, userID, s)
}

func (r *RemoteDynamoStore) UpsertAppSettings(ctx context.Context, s entities.AppSettings, userID string) error {
	return r.upsertSettings(ctx, r.appTable, userID, s)
}

func (r *RemoteDynamoStore) DeleteClient(ctx context.Context, id string) error {
	return r.deleteByID(ctx, r.clientsTable, id)
}

func (r *RemoteDynamoStore) DeleteInvoice(ctx context.Context, id string) error {
	return r.deleteByID(ctx, r.invoicesTable, id)
}

func (r *RemoteDynamoStore) DeleteActivity(ctx context.Context, id string) error {
	return r.deleteByID(ctx, r.activitiesTable, id)
}

func (r *RemoteDynamoStore) upsert(ctx context.Context, table, id, userID string, record any) error {
	doc, err := json.Marshal(record)
	if err != nil {
		return err
	}
	av, err := attributevalue.MarshalMap(syncItem{
		ID:        id,
		UserID:    userID,
		Doc:       string(doc),
		UpdatedAt: time.Now().UTC().Format(time.RFC3339Nano),
	})
	if err != nil {
		return err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(table),
		Item:      av,
	})
	return err
}

func (r *RemoteDynamoStore) upsertSettings(ctx context.Context, table, userID string, record any) error {
	doc, err := json.Marshal(record)
	if err != nil {
		return err
	}
	av, err := attributevalue.MarshalMap(settingsItem{
		UserID:    userID,
		Doc:       string(doc),
		UpdatedAt: time.Now().UTC().Format(time.RFC3339Nano),
	})
	if err != nil {
		return err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(table),
		Item:      av,
	})
	return err
}

func (r *RemoteDynamoStore) deleteByID(ctx context.Context, table, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(table),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

func fetchAll[T any](ctx context.Context, ddb *dynamodb.Client, table, userID string) ([]T, error) {
	var out []T
	var startKey map[string]types.AttributeValue
	for {
		res, err := ddb.Query(ctx, &dynamodb.QueryInput{
			TableName:              aws.String(table),
			IndexName:              aws.String(userIDIndexName),
			KeyConditionExpression: aws.String("#user_id = :user_id"),
			ExpressionAttributeNames: map[string]string{
				"#user_id": "user_id",
			},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":user_id": &types.AttributeValueMemberS{Value: userID},
			},
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}

		var items []syncItem
		if err := attributevalue.UnmarshalListOfMaps(res.Items, &items); err != nil {
			return nil, err
		}
		for _, it := range items {
			var rec T
			if err := json.Unmarshal([]byte(it.Doc), &rec); err != nil {
				return nil, err
			}
			out = append(out, rec)
		}

		if len(res.LastEvaluatedKey) == 0 {
			break
		}
		startKey = res.LastEvaluatedKey
	}
	return out, nil
}

func fetchSettings[T any](ctx context.Context, ddb *dynamodb.Client, table, userID string) (*T, error) {
	out, err := ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(table),
		Key: map[string]types.AttributeValue{
			"user_id": &types.AttributeValueMemberS{Value: userID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return nil, err
	}
	if len(out.Item) == 0 {
		return nil, nil
	}

	var it settingsItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return nil, err
	}
	var rec T
	if err := json.Unmarshal([]byte(it.Doc), &rec); err != nil {
		return nil, err
	}
	return &rec, nil
}
