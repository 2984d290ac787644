package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"

	"clinic-scheduling-api/internal/auth"
	"clinic-scheduling-api/internal/config"
	"clinic-scheduling-api/internal/handler"
	"clinic-scheduling-api/internal/model"
	"clinic-scheduling-api/internal/store"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	if cfg.JWTSecret == "" {
		log.Fatal("JWT_SECRET is required")
	}

	// database
	pool, err := pgxpool.New(context.Background(), cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("db: %v", err)
	}
	defer pool.Close()
	if err := pool.Ping(context.Background()); err != nil {
		log.Fatalf("db ping: %v", err)
	}
	log.Println("connected to postgres")

	// run migrations
	if migration, err := os.ReadFile(cfg.MigrationsFile); err != nil {
		log.Printf("migration file not found, skipping: %v", err)
	} else if _, err := pool.Exec(context.Background(), string(migration)); err != nil {
		log.Printf("migration warning: %v", err)
	} else {
		log.Println("migration applied")
	}

	st := store.New(pool)

	if err := bootstrapAdmin(context.Background(), st); err != nil {
		log.Fatalf("bootstrap admin: %v", err)
	}

	h := handler.New(st, cfg)
	srv := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: h.Router(),
	}
	go func() {
		log.Printf("http on %s", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Printf("http: %v", err)
		}
	}()

	// graceful shutdown
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
	<-ch
	log.Println("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Shutdown(ctx)
}

// bootstrapAdmin provisions the initial operator account when ADMIN_EMAIL
// and ADMIN_PASSWORD are set. Re-running against an existing account is a
// no-op.
func bootstrapAdmin(ctx context.Context, st *store.Store) error {
	email := os.Getenv("ADMIN_EMAIL")
	password := os.Getenv("ADMIN_PASSWORD")
	if email == "" || password == "" {
		return nil
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return err
	}
	err = st.CreateUser(ctx, &model.User{
		ID:           uuid.New().String(),
		Email:        email,
		PasswordHash: hash,
		FirstName:    "Admin",
		LastName:     "User",
		Role:         model.RoleAdmin,
	})
	if errors.Is(err, store.ErrDuplicateEmail) {
		return nil
	}
	if err == nil {
		log.Printf("admin account %s created", email)
	}
	return err
}
