// internal/store/restaurants.go
package store

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"dining-concierge/internal/common/logger"
	"dining-concierge/internal/models"
)

// DynamoDBAPI is the subset of the DynamoDB client the store needs.
type DynamoDBAPI interface {
	Scan(ctx context.Context, params *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error)
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
}

// RestaurantStore reads and writes restaurant records in the restaurants
// table. Reads are a single bounded scan with an equality filter; no
// pagination follow-up is issued.
type RestaurantStore struct {
	client DynamoDBAPI
	table  string
	logger logger.Logger
}

func NewRestaurantStore(client DynamoDBAPI, table string, log logger.Logger) *RestaurantStore {
	return &RestaurantStore{
		client: client,
		table:  table,
		logger: log.With(map[string]interface{}{"table": table}),
	}
}

// FindByLocationCuisine returns every record whose City and Cuisine exactly
// match the given values, in store order.
func (s *RestaurantStore) FindByLocationCuisine(ctx context.Context, location, cuisine string) ([]models.Restaurant, error) {
	filter := expression.Name("City").Equal(expression.Value(location)).
		And(expression.Name("Cuisine").Equal(expression.Value(cuisine)))

	expr, err := expression.NewBuilder().WithFilter(filter).Build()
	if err != nil {
		return nil, fmt.Errorf("build filter expression: %w", err)
	}

	out, err := s.client.Scan(ctx, &dynamodb.ScanInput{
		TableName:                 aws.String(s.table),
		FilterExpression:          expr.Filter(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
	})
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w", s.table, err)
	}

	restaurants := make([]models.Restaurant, 0, len(out.Items))
	for _, item := range out.Items {
		r, err := decodeRestaurant(item)
		if err != nil {
			return nil, fmt.Errorf("decode item: %w", err)
		}
		restaurants = append(restaurants, r)
	}

	s.logger.Debug("restaurant lookup", map[string]interface{}{
		"location": location,
		"cuisine":  cuisine,
		"matches":  len(restaurants),
	})

	return restaurants, nil
}

// Put writes one record keyed by RestaurantID, overwriting any existing item
// with the same key.
func (s *RestaurantStore) Put(ctx context.Context, r models.Restaurant) error {
	item, err := attributevalue.MarshalMap(r)
	if err != nil {
		return fmt.Errorf("marshal restaurant %s: %w", r.ID, err)
	}

	_, err = s.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(s.table),
		Item:      item,
	})
	if err != nil {
		return fmt.Errorf("put restaurant %s: %w", r.ID, err)
	}
	return nil
}

// decodeRestaurant normalizes a raw item through ConvertDecimals before
// picking fields, so store-native numbers arrive as plain float64s.
func decodeRestaurant(item map[string]types.AttributeValue) (models.Restaurant, error) {
	plain, err := ConvertDecimals(&types.AttributeValueMemberM{Value: item})
	if err != nil {
		return models.Restaurant{}, err
	}
	m, ok := plain.(map[string]interface{})
	if !ok {
		return models.Restaurant{}, fmt.Errorf("item did not decode to a map")
	}

	return models.Restaurant{
		ID:               stringField(m, "RestaurantID"),
		Name:             stringField(m, "Name"),
		Address:          stringField(m, "Address"),
		City:             stringField(m, "City"),
		State:            stringField(m, "State"),
		ZipCode:          stringField(m, "ZipCode"),
		Phone:            stringField(m, "Phone"),
		Rating:           numberField(m, "Rating"),
		ReviewCount:      int(numberField(m, "ReviewCount")),
		Cuisine:          stringField(m, "Cuisine"),
		PartySizeDefault: int(numberField(m, "NumberOfPeople")),
	}, nil
}
