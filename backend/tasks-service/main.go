package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dahiyakapil/task-tracker/backend/tasks-service/config"
	"github.com/dahiyakapil/task-tracker/backend/tasks-service/handlers"
	"github.com/dahiyakapil/task-tracker/backend/tasks-service/logging"
	"github.com/dahiyakapil/task-tracker/backend/tasks-service/repositories"
	"github.com/dahiyakapil/task-tracker/backend/tasks-service/services"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func main() {
	cfg, err := config.Load(".env")
	if err != nil {
		logging.Logger.Fatalf("Event ID: CONFIG_ERROR, Description: %v", err)
	}

	logging.InitLogger(cfg.Log)
	logging.Logger.Info("Event ID: SERVICE_START, Description: Starting Tasks Service...")

	repo, disconnect := openRepository(cfg)
	defer disconnect()

	setupCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := repo.EnsureIndexes(setupCtx); err != nil {
		logging.Logger.Fatalf("Event ID: DB_INDEX_FAILED, Description: %v", err)
	}
	cancel()

	taskService := services.NewTaskService(repo)
	taskHandler := handlers.NewTaskHandler(taskService)

	srv := &http.Server{
		Addr:         cfg.Address(),
		Handler:      handlers.NewRouter(taskHandler, cfg.CORSOrigin),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	go func() {
		logging.Logger.Infof("Event ID: SERVER_START_INFO, Description: Server running on http://localhost%s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logging.Logger.Fatalf("Event ID: SERVER_FATAL_ERROR, Description: Server failed to start: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	logging.Logger.Info("Event ID: SERVER_SHUTDOWN, Description: Shutting down Tasks Service...")
	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelShutdown()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logging.Logger.Errorf("Event ID: SERVER_SHUTDOWN_FAILED, Description: %v", err)
	}
}

// openRepository connects to the configured store. The returned func
// releases the connection.
func openRepository(cfg *config.Config) (repositories.TaskRepository, func()) {
	if cfg.Storage == config.StorageMemory {
		logging.Logger.Warn("Event ID: DB_MEMORY_STORE, Description: Using in-memory task store, data is lost on restart")
		return repositories.NewMemoryTaskRepository(), func() {}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.Mongo.URI))
	if err != nil {
		logging.Logger.Fatalf("Event ID: DB_CONNECTION_FAILED, Description: Database connection for MongoDB failed: %v", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		logging.Logger.Fatalf("Event ID: DB_PING_FAILED, Description: MongoDB connection ping error: %v", err)
	}
	logging.Logger.Infof("Event ID: DB_CONNECTED, Description: Successfully connected to MongoDB at %s", cfg.Mongo.URI)

	collection := client.Database(cfg.Mongo.DBName).Collection(cfg.Mongo.Collection)
	logging.Logger.Infof("Event ID: DB_COLLECTION_SET, Description: Using MongoDB collection: %s/%s", cfg.Mongo.DBName, cfg.Mongo.Collection)

	return repositories.NewMongoTaskRepository(collection), func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := client.Disconnect(ctx); err != nil {
			logging.Logger.Errorf("Event ID: DB_DISCONNECT_FAILED, Description: %v", err)
		}
	}
}
