package main

import (
	"context"
	"database/sql"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"google.golang.org/grpc"

	"github.com/nimbus-pos/nimbus/internal/adapter/embedder"
	"github.com/nimbus-pos/nimbus/internal/adapter/handler"
	"github.com/nimbus-pos/nimbus/internal/adapter/handler/pb"
	"github.com/nimbus-pos/nimbus/internal/adapter/storage"
	"github.com/nimbus-pos/nimbus/internal/core/domain"
	"github.com/nimbus-pos/nimbus/internal/core/embedding"
	"github.com/nimbus-pos/nimbus/internal/core/service"
)

const (
	httpPort        = ":8080"
	grpcPort        = ":50051"
	mysqlDSN        = "root:root@tcp(localhost:3306)/nimbus?parseTime=true"
	redisAddr       = "localhost:6379"
	embedderURL     = "http://localhost:8000"
	embedderTimeout = 10 * time.Second
	resyncInterval  = time.Minute
)

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize MySQL
	db, err := sql.Open("mysql", getenv("MYSQL_DSN", mysqlDSN))
	if err != nil {
		logger.Fatal("failed to connect mysql", zap.Error(err))
	}
	db.SetMaxOpenConns(50)
	db.SetMaxIdleConns(25)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.PingContext(ctx); err != nil {
		logger.Fatal("failed to ping mysql", zap.Error(err))
	}
	logger.Info("connected to mysql")

	// Initialize Redis
	rdb := redis.NewClient(&redis.Options{
		Addr:     getenv("REDIS_ADDR", redisAddr),
		PoolSize: 100,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		logger.Fatal("failed to connect redis", zap.Error(err))
	}
	logger.Info("connected to redis")

	// Initialize adapters
	mysqlAdapter := storage.NewMySQLAdapter(db)
	redisAdapter := storage.NewRedisAdapter(rdb)
	extractor := embedder.NewHTTPClient(getenv("EMBEDDER_URL", embedderURL), embedderTimeout)

	// Initialize services
	store := embedding.NewStore(domain.EmbeddingDim)
	enrollment := service.NewEnrollmentService(mysqlAdapter, store, logger)
	payment := service.NewPaymentService(mysqlAdapter, redisAdapter, store, service.MatchThreshold, logger)

	// Startup reconciliation: embeddings into the store, stock into the
	// mirror. An identity persisted by a crashed enrollment becomes
	// matchable again here.
	if err := enrollment.Reload(ctx); err != nil {
		logger.Fatal("failed to load embeddings", zap.Error(err))
	}
	if err := syncStockMirror(ctx, mysqlAdapter, redisAdapter); err != nil {
		logger.Fatal("failed to seed stock mirror", zap.Error(err))
	}
	logger.Info("stock mirror seeded")

	// Periodic mirror re-sync
	resyncDone := make(chan struct{})
	go func() {
		defer close(resyncDone)
		ticker := time.NewTicker(resyncInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if err := syncStockMirror(ctx, mysqlAdapter, redisAdapter); err != nil {
					logger.Warn("stock mirror re-sync failed", zap.Error(err))
				}
			}
		}
	}()

	// Initialize gRPC server
	grpcServer := grpc.NewServer()
	grpcHandler := handler.NewGRPCHandler(enrollment, payment, extractor, logger)
	pb.RegisterNimbusServiceServer(grpcServer, grpcHandler)

	lis, err := net.Listen("tcp", getenv("GRPC_PORT", grpcPort))
	if err != nil {
		logger.Fatal("failed to listen", zap.Error(err))
	}

	go func() {
		logger.Info("gRPC server listening", zap.String("addr", lis.Addr().String()))
		if err := grpcServer.Serve(lis); err != nil {
			logger.Error("gRPC server error", zap.Error(err))
		}
	}()

	// Initialize HTTP server
	httpHandler := handler.NewHTTPHandler(enrollment, payment, extractor, logger)
	httpServer := &http.Server{
		Addr:    getenv("HTTP_PORT", httpPort),
		Handler: httpHandler.Routes(),
	}

	go func() {
		logger.Info("HTTP server listening", zap.String("addr", httpServer.Addr))
		if err := httpServer.ListenAndServe(); err != http.ErrServerClosed {
			logger.Error("HTTP server error", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	httpServer.Shutdown(shutdownCtx)
	logger.Info("HTTP server stopped")

	grpcServer.GracefulStop()
	logger.Info("gRPC server stopped")

	cancel()
	<-resyncDone

	rdb.Close()
	db.Close()
	logger.Info("connections closed")
}

func syncStockMirror(ctx context.Context, db *storage.MySQLAdapter, cache *storage.RedisAdapter) error {
	entries, err := db.ListInventory(ctx)
	if err != nil {
		return err
	}
	for _, e := range entries {
		if err := cache.SetStock(ctx, e.ItemID, e.Remaining); err != nil {
			return err
		}
	}
	return nil
}
