package app

import (
	"context"
	"fmt"
	"time"

	"todolist/internal/config"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

type App struct {
	cfg    config.Config
	mongo  *mongo.Client
	db     *mongo.Database
	redis  *redis.Client
	router *gin.Engine
}

// New connects to Mongo (and Redis, if configured) before any route is
// registered, so the service never accepts a request ahead of its stores.
func New(cfg config.Config) (*App, error) {
	a := &App{cfg: cfg}

	client, err := newMongo(cfg.Mongo)
	if err != nil {
		return nil, err
	}
	a.mongo = client
	a.db = client.Database(cfg.Mongo.Database)

	if cfg.Redis.Addr != "" {
		rdb, err := newRedis(cfg.Redis)
		if err != nil {
			_ = client.Disconnect(context.Background())
			return nil, err
		}
		a.redis = rdb
	}

	a.router = newRouter(cfg, a.db, a.redis)
	return a, nil
}

func (a *App) Router() *gin.Engine {
	return a.router
}

func (a *App) Close(ctx context.Context) error {
	if a.redis != nil {
		_ = a.redis.Close()
	}
	if a.mongo != nil {
		return a.mongo.Disconnect(ctx)
	}
	return nil
}

func newMongo(cfg config.MongoConfig) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(context.Background(), cfg.ConnectTimeout.Duration())
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URL))
	if err != nil {
		return nil, fmt.Errorf("mongo connect: %w", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("mongo ping: %w", err)
	}
	return client, nil
}

func newRedis(cfg config.RedisConfig) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return rdb, nil
}

func newRouter(cfg config.Config, db *mongo.Database, rdb *redis.Client) *gin.Engine {
	r := gin.Default()

	// Open policy for this deployment: any origin, with credentials.
	// AllowOriginFunc (not AllowAllOrigins) so the origin is echoed back,
	// which is what browsers require when credentials are allowed.
	r.Use(cors.New(cors.Config{
		AllowOriginFunc:  func(origin string) bool { return true },
		AllowCredentials: true,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS", "HEAD"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "Cookie"},
		ExposeHeaders:    []string{"Content-Length", "Content-Type"},
		MaxAge:           12 * time.Hour,
	}))

	Setup(r, cfg, db, rdb)
	return r
}
