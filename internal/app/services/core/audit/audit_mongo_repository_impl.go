package audit

import (
	"context"
	"salonflow-service/internal/app/contracts"
	"salonflow-service/internal/app/models"
	"salonflow-service/internal/pkg/constvars"
	"salonflow-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ScheduleAuditMongoRepository struct {
	Collection *mongo.Collection
}

func NewScheduleAuditMongoRepository(db *mongo.Client, dbName string) contracts.ScheduleAuditRepository {
	return &ScheduleAuditMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionScheduleAudits),
	}
}

func (repo *ScheduleAuditMongoRepository) CreateScheduleAudit(ctx context.Context, audit *models.ScheduleAudit) error {
	doc := *audit
	doc.ID = primitive.NewObjectID().Hex()
	_, err := repo.Collection.InsertOne(ctx, doc)
	if err != nil {
		return exceptions.ErrMongoDBInsertDocument(err)
	}
	return nil
}

func (repo *ScheduleAuditMongoRepository) FindScheduleAuditsByEmployeeID(ctx context.Context, employeeID string, limit int64) ([]models.ScheduleAudit, error) {
	findOptions := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(limit)

	cursor, err := repo.Collection.Find(ctx, bson.M{"employee_id": employeeID}, findOptions)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}

	var audits []models.ScheduleAudit
	if err := cursor.All(ctx, &audits); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return audits, nil
}
