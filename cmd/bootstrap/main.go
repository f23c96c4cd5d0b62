// Package main 系统初始化：建表、向量集合与首个管理员
package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"gameforge-api/internal/config"
	"gameforge-api/internal/domain/entity"
	"gameforge-api/internal/infrastructure/persistence/milvus"
	"gameforge-api/internal/infrastructure/persistence/postgres"
)

func main() {
	_ = godotenv.Load()

	fmt.Println("Starting system bootstrap...")

	// 1. 加载配置
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	ctx := context.Background()

	// 2. 建表
	pg, err := postgres.NewClient(&cfg.Database.Postgres)
	if err != nil {
		log.Fatalf("failed to connect postgres: %v", err)
	}
	defer pg.Close()

	if err := postgres.AutoMigrate(ctx, pg); err != nil {
		log.Fatalf("failed to migrate schema: %v", err)
	}
	fmt.Println("Database schema migrated.")

	// 3. 向量集合（可选）
	if cfg.Vector.Enabled {
		mv, err := milvus.NewClient(ctx, &cfg.Vector.Milvus)
		if err != nil {
			log.Fatalf("failed to connect milvus: %v", err)
		}
		defer mv.Close()

		vectors := milvus.NewGameVectorRepository(mv)
		if err := vectors.EnsureCollection(ctx); err != nil {
			log.Fatalf("failed to ensure vector collection: %v", err)
		}
		fmt.Println("Vector collection ready.")
	}

	// 4. 创建首个管理员
	adminEmail := os.Getenv("BOOTSTRAP_ADMIN_EMAIL")
	if adminEmail == "" {
		adminEmail = "admin@gameforge.local"
	}
	adminPassword := os.Getenv("BOOTSTRAP_ADMIN_PASSWORD")
	if adminPassword == "" {
		adminPassword = "admin123" // 生产环境请务必通过环境变量设置
	}

	users := postgres.NewUserRepository(pg)
	exists, err := users.ExistsByEmail(ctx, adminEmail)
	if err != nil {
		log.Fatalf("failed to check admin existence: %v", err)
	}

	if !exists {
		fmt.Printf("Creating admin user: %s...\n", adminEmail)
		admin := entity.NewUser(adminEmail, "System Admin")
		admin.IsAdmin = true
		if err := admin.SetPassword(adminPassword); err != nil {
			log.Fatalf("failed to hash admin password: %v", err)
		}

		if err := users.Create(ctx, admin); err != nil {
			log.Fatalf("failed to create admin user: %v", err)
		}
		fmt.Println("Admin user created successfully.")
	} else {
		fmt.Printf("Admin user %s already exists.\n", adminEmail)
	}

	fmt.Println("Bootstrap completed successfully.")
}
