package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	redisv9 "github.com/redis/go-redis/v9"

	"microblog_backend/internal/app/di"
	"microblog_backend/internal/app/router"
	authadapters "microblog_backend/internal/feature/auth/adapters"
	authhandler "microblog_backend/internal/feature/auth/transport/handler"
	authusecase "microblog_backend/internal/feature/auth/usecase"
	postadapters "microblog_backend/internal/feature/posts/adapters"
	posthandler "microblog_backend/internal/feature/posts/transport/handler"
	postusecase "microblog_backend/internal/feature/posts/usecase"
	"microblog_backend/internal/platform/config"
	infradb "microblog_backend/internal/platform/db"
	"microblog_backend/internal/platform/hash"
	infraredis "microblog_backend/internal/platform/redis"
	"microblog_backend/internal/platform/token"
	"microblog_backend/internal/shared/ratelimiter"
)

func main() {
	cfg, err := config.Load(os.Getenv("MICROBLOG_CONFIG"))
	if err != nil {
		log.Fatal(err)
	}

	// db
	db, err := infradb.Open(cfg.DBDriver, cfg.DBDSN)
	if err != nil {
		log.Fatal(err)
	}
	if cfg.AutoMigrate {
		if err := infradb.AutoMigrate(db); err != nil {
			log.Fatalf("failed to migrate: %v", err)
		}
	}

	// Redis session store, falling back to the database when unavailable
	var rdb *redisv9.Client
	if cfg.RedisAddr != "" {
		if tmp, err := infraredis.NewRedisClient(cfg.RedisAddr, cfg.RedisPassword); err != nil {
			slog.Warn("Redis unavailable, using database session store")
		} else {
			rdb = tmp
			defer func() {
				if err := rdb.Close(); err != nil {
					slog.Error("failed to close Redis client", "error", err)
				}
			}()
		}
	}

	if cfg.JWTSecret == "" {
		slog.Warn("jwt_secret is not set. Set a strong secret in production.")
	}

	// Repository
	userRepo := authadapters.NewUserGorm(db)
	sessionRepo := di.NewSessionRepository(rdb, db)
	postRepo := postadapters.NewPostGorm(db)

	// Expired sessions in the database store are swept at startup;
	// the Redis store expires them by TTL on its own.
	if n, err := sessionRepo.DeleteExpired(context.Background()); err != nil {
		slog.Warn("failed to sweep expired sessions", "error", err)
	} else if n > 0 {
		slog.Info("swept expired sessions", "count", n)
	}

	// Usecase
	hasher := hash.NewBcrypt(cfg.BcryptCost)
	codec := token.NewCodec(cfg.JWTSecret, cfg.SessionTTL)
	authUC := authusecase.NewAuthUsecase(userRepo, sessionRepo, hasher, codec, cfg.SessionTTL)
	postUC := postusecase.NewPostUsecase(postRepo)

	// Handler
	authH := authhandler.NewAuthHandler(authUC)
	postH := posthandler.NewPostHandler(postUC)

	authLimiter := ratelimiter.New(cfg.AuthRateLimit, cfg.AuthRateWindow)
	r := router.NewRouter(authH, postH, authUC, authLimiter)

	if err := r.Run(cfg.ListenAddr); err != nil {
		log.Fatal(err)
	}
}
