package menu

import (
	"chaipoint-service/internal/app/contracts"
	"chaipoint-service/internal/app/models"
	"chaipoint-service/internal/pkg/constvars"
	"chaipoint-service/internal/pkg/exceptions"
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MenuMongoRepository struct {
	Collection *mongo.Collection
}

func NewMenuMongoRepository(db *mongo.Client, dbName string) contracts.MenuRepository {
	return &MenuMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionMenuItems),
	}
}

func (repo *MenuMongoRepository) CreateMenuItem(ctx context.Context, menuItem *models.MenuItem) (menuItemID string, err error) {
	result, err := repo.Collection.InsertOne(ctx, menuItem)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (r *MenuMongoRepository) FindByID(ctx context.Context, menuItemID string) (*models.MenuItem, error) {
	var menuItem models.MenuItem
	objectID, err := primitive.ObjectIDFromHex(menuItemID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}
	err = r.Collection.FindOne(ctx, bson.M{"_id": objectID, "deletedAt": nil}).Decode(&menuItem)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &menuItem, nil
}

func (r *MenuMongoRepository) FindAll(ctx context.Context, onlyAvailable bool, category string) ([]models.MenuItem, error) {
	filter := bson.M{"deletedAt": nil}
	if onlyAvailable {
		filter["available"] = true
	}
	if category != "" {
		filter["category"] = category
	}

	findOptions := options.Find().SetSort(bson.D{{Key: "category", Value: 1}, {Key: "name", Value: 1}})
	cursor, err := r.Collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	menuItems := make([]models.MenuItem, 0)
	if err := cursor.All(ctx, &menuItems); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return menuItems, nil
}

func (r *MenuMongoRepository) UpdateMenuItem(ctx context.Context, menuItem *models.MenuItem) error {
	objectID, err := primitive.ObjectIDFromHex(menuItem.ID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}
	update := bson.M{"$set": bson.M{
		"name":        menuItem.Name,
		"description": menuItem.Description,
		"category":    menuItem.Category,
		"price":       menuItem.Price,
		"imageUrl":    menuItem.ImageURL,
		"available":   menuItem.Available,
		"updatedAt":   menuItem.UpdatedAt,
	}}
	_, err = r.Collection.UpdateOne(ctx, bson.M{"_id": objectID}, update)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}

func (r *MenuMongoRepository) DeleteByID(ctx context.Context, menuItemID string) error {
	objectID, err := primitive.ObjectIDFromHex(menuItemID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}

	// Soft delete keeps historical orders pointing at a resolvable item.
	update := bson.M{"$set": bson.M{"deletedAt": primitive.NewDateTimeFromTime(time.Now())}}
	_, err = r.Collection.UpdateOne(ctx, bson.M{"_id": objectID}, update)
	if err != nil {
		return exceptions.ErrMongoDBDeleteDocument(err)
	}
	return nil
}
