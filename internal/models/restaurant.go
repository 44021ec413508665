// internal/models/restaurant.go
package models

// Restaurant is one record in the restaurants table. The store owns the data;
// this service only reads it on the conversational path and writes it during
// directory ingestion. Rating and ReviewCount are stored as DynamoDB numbers
// and must be decoded to plain numerics before any message formatting.
type Restaurant struct {
	ID               string  `json:"restaurantId" dynamodbav:"RestaurantID"`
	Name             string  `json:"name" dynamodbav:"Name"`
	Address          string  `json:"address" dynamodbav:"Address"`
	City             string  `json:"city" dynamodbav:"City"`
	State            string  `json:"state" dynamodbav:"State"`
	ZipCode          string  `json:"zipCode" dynamodbav:"ZipCode"`
	Phone            string  `json:"phone" dynamodbav:"Phone"`
	Rating           float64 `json:"rating" dynamodbav:"Rating"`
	ReviewCount      int     `json:"reviewCount" dynamodbav:"ReviewCount"`
	Cuisine          string  `json:"cuisine" dynamodbav:"Cuisine"`
	PartySizeDefault int     `json:"partySizeDefault" dynamodbav:"NumberOfPeople"`
}
