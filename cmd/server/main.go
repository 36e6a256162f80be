package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/Ayushchugh15/SPRA/internal/config"
	"github.com/Ayushchugh15/SPRA/internal/entity"
	"github.com/Ayushchugh15/SPRA/internal/handler"
	"github.com/Ayushchugh15/SPRA/internal/middleware"
	"github.com/Ayushchugh15/SPRA/internal/repository"
	"github.com/Ayushchugh15/SPRA/internal/service"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var (
	Version   = "dev"
	BuildTime = "unknown"
)

func main() {
	// 加载 .env 文件
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found, using environment variables")
	}

	// 加载配置
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 初始化日志
	zapLogger, err := initLogger(cfg.Log)
	if err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer zapLogger.Sync()

	zapLogger.Info("Starting spra service",
		zap.String("version", Version),
		zap.String("build_time", BuildTime),
	)

	// 初始化数据库
	db, err := initDatabase(cfg.Database)
	if err != nil {
		zapLogger.Fatal("Failed to connect to database", zap.Error(err))
	}

	if err := entity.AutoMigrate(db); err != nil {
		zapLogger.Fatal("Failed to auto-migrate tables", zap.Error(err))
	}
	zapLogger.Info("Database migration completed")

	// Redis（可选，仪表盘缓存）
	var rdb *redis.Client
	if cfg.Redis.Enabled {
		rdb = redis.NewClient(&redis.Options{
			Addr:     fmt.Sprintf("%s:%d", cfg.Redis.Host, cfg.Redis.Port),
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := rdb.Ping(context.Background()).Err(); err != nil {
			zapLogger.Warn("Redis unavailable, dashboard cache disabled", zap.Error(err))
			rdb = nil
		}
	}

	// MinIO（可选，数据备份）
	var store *minio.Client
	if cfg.MinIO.Enabled {
		store, err = minio.New(cfg.MinIO.Endpoint, &minio.Options{
			Creds:  credentials.NewStaticV4(cfg.MinIO.AccessKey, cfg.MinIO.SecretKey, ""),
			Secure: cfg.MinIO.UseSSL,
		})
		if err != nil {
			zapLogger.Warn("MinIO unavailable, backup disabled", zap.Error(err))
			store = nil
		}
	}

	// 组装依赖
	repos := repository.NewRepositories(db)
	services := service.NewServices(repos, db, cfg, zapLogger, rdb, store)
	handlers := handler.NewHandlers(services)

	// 设置Gin模式
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.Logger(zapLogger))
	router.Use(middleware.CORS())
	router.Use(middleware.RequestID())
	router.Use(gzip.Gzip(gzip.DefaultCompression))

	// 健康检查
	router.GET("/health/live", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "service": "spra"})
	})
	router.GET("/health/ready", func(c *gin.Context) {
		sqlDB, err := db.DB()
		if err != nil || sqlDB.Ping() != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "service": "spra"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok", "service": "spra"})
	})

	// 版本信息
	router.GET("/version", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"service":    "spra",
			"version":    Version,
			"build_time": BuildTime,
		})
	})

	// 注册和登录不需要token
	router.POST("/api/v1/auth/register", handlers.Auth.Register)
	router.POST("/api/v1/auth/login", handlers.Auth.Login)

	v1 := router.Group("/api/v1")
	v1.Use(middleware.JWTAuth(cfg.JWT.Secret))
	{
		// 用户
		auth := v1.Group("/auth")
		{
			auth.GET("/me", handlers.Auth.Me)
			auth.GET("/users", middleware.RequireAdmin(), handlers.Auth.ListUsers)
			auth.POST("/users", middleware.RequireAdmin(), handlers.Auth.Register)
		}

		// 零部件
		components := v1.Group("/components")
		{
			components.GET("", handlers.Component.List)
			components.POST("", middleware.RequireOperator(), handlers.Component.Create)
			components.GET("/:id", handlers.Component.Get)
			components.PUT("/:id", middleware.RequireOperator(), handlers.Component.Update)
			components.DELETE("/:id", middleware.RequireOperator(), handlers.Component.Delete)
			components.GET("/:id/transactions", handlers.Inventory.Transactions)
		}

		// 库存调整
		v1.POST("/inventory/adjust", middleware.RequireOperator(), handlers.Inventory.Adjust)

		// 型号与BOM
		hornTypes := v1.Group("/horn-types")
		{
			hornTypes.GET("", handlers.HornType.List)
			hornTypes.POST("", middleware.RequireOperator(), handlers.HornType.Create)
			hornTypes.GET("/:id", handlers.HornType.Get)
			hornTypes.PUT("/:id", middleware.RequireOperator(), handlers.HornType.Update)
			hornTypes.DELETE("/:id", middleware.RequireOperator(), handlers.HornType.Delete)
			hornTypes.PUT("/:id/bom", middleware.RequireOperator(), handlers.HornType.SetBOM)
		}

		// 订单
		orders := v1.Group("/orders")
		{
			orders.GET("", handlers.Order.List)
			orders.POST("", middleware.RequireOperator(), handlers.Order.Create)
			orders.GET("/:id", handlers.Order.Get)
			orders.PUT("/:id", middleware.RequireOperator(), handlers.Order.Update)
			orders.DELETE("/:id", middleware.RequireOperator(), handlers.Order.Delete)

			// 采购计划
			orders.POST("/:id/mrp", middleware.RequireOperator(), handlers.MRP.Generate)
			orders.GET("/:id/mrp", handlers.MRP.ListByOrder)
		}
		v1.PUT("/mrp-plans/:id/status", middleware.RequireOperator(), handlers.MRP.UpdateStatus)

		// 生产配置
		v1.GET("/config", handlers.Config.Get)
		v1.PUT("/config", middleware.RequireAdmin(), handlers.Config.Update)

		// 仪表盘
		v1.GET("/dashboard", handlers.Dashboard.Metrics)

		// 导出
		exports := v1.Group("/exports")
		{
			exports.GET("/components", handlers.Export.Components)
			exports.GET("/orders/:id/mrp", handlers.Export.MRP)
		}

		// 备份
		backups := v1.Group("/backups", middleware.RequireAdmin())
		{
			backups.POST("", handlers.Backup.Run)
			backups.GET("", handlers.Backup.List)
		}

		// 审计
		v1.GET("/audit-logs", middleware.RequireAdmin(), handlers.Audit.List)
	}

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	// 启动服务器
	go func() {
		zapLogger.Info("Server starting", zap.Int("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zapLogger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// 优雅关闭
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zapLogger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		zapLogger.Error("Server forced to shutdown", zap.Error(err))
	}

	zapLogger.Info("Server exited")
}

func initLogger(cfg config.LogConfig) (*zap.Logger, error) {
	var zapCfg zap.Config
	if cfg.Format == "json" {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
	}
	switch cfg.Level {
	case "debug":
		zapCfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	case "info":
		zapCfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	case "warn":
		zapCfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	case "error":
		zapCfg.Level = zap.NewAtomicLevelAt(zap.ErrorLevel)
	}
	return zapCfg.Build()
}

func initDatabase(cfg config.DatabaseConfig) (*gorm.DB, error) {
	dsn := fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.DBName, cfg.SSLMode,
	)
	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	}
	db, err := gorm.Open(postgres.Open(dsn), gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database instance: %w", err)
	}
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	sqlDB.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)
	return db, nil
}
