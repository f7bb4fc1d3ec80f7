package main

import (
	"fmt"
	"net/http"

	"github.com/helloakshay27/hi-society-backend-go/internal/config"
	appHTTP "github.com/helloakshay27/hi-society-backend-go/internal/handler/http"
	"github.com/helloakshay27/hi-society-backend-go/internal/pkg/database"
	"github.com/helloakshay27/hi-society-backend-go/internal/pkg/jwt"
	"github.com/helloakshay27/hi-society-backend-go/internal/pkg/platform"
	"github.com/helloakshay27/hi-society-backend-go/internal/repository/postgresql"
	directoryService "github.com/helloakshay27/hi-society-backend-go/internal/service/directory"
	locationService "github.com/helloakshay27/hi-society-backend-go/internal/service/location"
	patrolService "github.com/helloakshay27/hi-society-backend-go/internal/service/patrol"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	locationRepo := postgresql.NewLocationRepository(db)
	checklistRepo := postgresql.NewChecklistRepository(db)
	userRepo := postgresql.NewUserRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)
	platformClient := platform.NewClient(cfg.Platform)
	catalog := locationService.NewCatalog(locationRepo)
	directorySvc := directoryService.NewDirectoryService(userRepo, checklistRepo)
	draftService := patrolService.NewDraftService(catalog, checklistRepo, userRepo, platformClient)

	patrolHandler := appHTTP.NewPatrolHandler(draftService)
	locationHandler := appHTTP.NewLocationHandler(catalog)
	directoryHandler := appHTTP.NewDirectoryHandler(directorySvc)

	router := appHTTP.NewRouter(
		JWTService,
		patrolHandler,
		locationHandler,
		directoryHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
