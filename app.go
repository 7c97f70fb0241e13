package main

import (
	"context"
	"log"

	"sporelia/careai"
	"sporelia/images"
	"sporelia/repo"
	"sporelia/service"
	"sporelia/store"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type App struct {
	cfg    Config
	mongo  *mongo.Client
	repo   repo.PlantRepository
	plants *service.PlantService
	store  *store.Store
	care   *careai.Client
	photos *images.Store
}

func newApp(ctx context.Context, cfg Config) (*App, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		return nil, err
	}

	plantRepo := repo.NewMongoRepository(client.Database(cfg.MongoDB))
	if err := plantRepo.EnsureIndexes(ctx); err != nil {
		return nil, err
	}

	app := &App{
		cfg:    cfg,
		mongo:  client,
		repo:   plantRepo,
		plants: service.NewPlantService(plantRepo),
		store:  store.NewStore(),
	}

	if cfg.GeminiAPIKey != "" {
		app.care = careai.NewClient(cfg.GeminiAPIURL, cfg.GeminiAPIKey, cfg.GeminiModel)
	}
	if cfg.S3Bucket != "" {
		app.photos, err = images.New(ctx, images.Config{
			Region:    cfg.S3Region,
			Bucket:    cfg.S3Bucket,
			Endpoint:  cfg.S3Endpoint,
			PathStyle: cfg.S3PathStyle,
			MaxBytes:  cfg.MaxImageBytes,
		})
		if err != nil {
			return nil, err
		}
	} else {
		log.Println("S3_BUCKET not set, photo uploads disabled")
	}

	// Warm the store so the first page render sees the collection.
	app.loadPlants(ctx)

	return app, nil
}

// loadPlants populates the collection store from the repository. Errors
// land in the store's LOAD_PLANTS status, not here.
func (a *App) loadPlants(ctx context.Context) {
	a.store.Dispatch(store.Start{Operation: store.OpLoadPlants})
	res := a.plants.ListPlants(ctx)
	if !res.OK() {
		a.store.Dispatch(store.Error{Operation: store.OpLoadPlants, Message: res.Err})
		return
	}
	a.store.Dispatch(store.Success{Operation: store.OpLoadPlants, Payload: res.Data})
}

func (a *App) close(ctx context.Context) { _ = a.mongo.Disconnect(ctx) }
