// Acknowledgment shapes mirrored from the Node MongoDB driver. The frontend
// was written against those result objects, so the field names here are part
// of the wire contract, not a style choice.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// InsertResult is the body returned for insertOne operations.
type InsertResult struct {
	Acknowledged bool `json:"acknowledged"`
	InsertedID   any  `json:"insertedId"`
}

// NewInsertResult converts a driver insert acknowledgment.
func NewInsertResult(res *mongo.InsertOneResult) InsertResult {
	return InsertResult{Acknowledged: true, InsertedID: hexID(res.InsertedID)}
}

// UpdateResult is the body returned for updateOne operations.
type UpdateResult struct {
	Acknowledged  bool  `json:"acknowledged"`
	ModifiedCount int64 `json:"modifiedCount"`
	UpsertedID    any   `json:"upsertedId"`
	UpsertedCount int64 `json:"upsertedCount"`
	MatchedCount  int64 `json:"matchedCount"`
}

// NewUpdateResult converts a driver update acknowledgment.
func NewUpdateResult(res *mongo.UpdateResult) UpdateResult {
	return UpdateResult{
		Acknowledged:  true,
		ModifiedCount: res.ModifiedCount,
		UpsertedID:    hexID(res.UpsertedID),
		UpsertedCount: res.UpsertedCount,
		MatchedCount:  res.MatchedCount,
	}
}

// DeleteResult is the body returned for deleteOne operations.
type DeleteResult struct {
	Acknowledged bool  `json:"acknowledged"`
	DeletedCount int64 `json:"deletedCount"`
}

// NewDeleteResult converts a driver delete acknowledgment.
func NewDeleteResult(res *mongo.DeleteResult) DeleteResult {
	return DeleteResult{Acknowledged: true, DeletedCount: res.DeletedCount}
}

// DuplicateUser is the 200-status body returned when registration hits an
// existing email. insertedId is always null.
type DuplicateUser struct {
	Message    string `json:"message"`
	InsertedID any    `json:"insertedId"`
}

// NewDuplicateUser returns the exact body the frontend matches on.
func NewDuplicateUser() DuplicateUser {
	return DuplicateUser{Message: "user already exist", InsertedID: nil}
}

// hexID renders ObjectIDs as hex strings, like the Node driver serialises
// them; anything else passes through as-is.
func hexID(id any) any {
	if id == nil {
		return nil
	}
	if oid, ok := id.(primitive.ObjectID); ok {
		return oid.Hex()
	}
	return id
}
