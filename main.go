package main

import (
	"log"

	"github.com/greencycle/recyclemart/config"
	"github.com/greencycle/recyclemart/db"
	"github.com/greencycle/recyclemart/mailingservices"
	"github.com/greencycle/recyclemart/server"
	"github.com/greencycle/recyclemart/services"
	"github.com/greencycle/recyclemart/services/chat"
)

func main() {
	conf, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	// Initialize Mailgun client
	mailgunClient := &mailingservices.Mailgun{}
	mailgunClient.Init()

	gormDB := db.GetDB(conf)
	// Seed roles
	if err := db.SeedRoles(gormDB.DB); err != nil {
		log.Fatalf("error seeding roles: %v", err)
	}
	authRepo := db.NewAuthRepo(gormDB)
	uploadRepo := db.NewUploadRepo(gormDB)
	rewardRepo := db.NewRewardRepo(gormDB)

	chatStore, err := chat.NewFileStore(conf.ChatDataDir)
	if err != nil {
		log.Fatalf("error opening chat store: %v", err)
	}

	authService := services.NewAuthService(authRepo, conf)
	rewardService := services.NewRewardService(rewardRepo, conf)
	uploadService := services.NewUploadService(uploadRepo, rewardService, conf)
	chatService := services.NewChatService(chatStore, uploadRepo, conf)

	s := &server.Server{
		Mail:             mailgunClient,
		Config:           conf,
		AuthRepository:   authRepo,
		AuthService:      authService,
		UploadRepository: uploadRepo,
		UploadService:    uploadService,
		RewardRepository: rewardRepo,
		RewardService:    rewardService,
		ChatService:      chatService,
		DB:               db.GormDB{},
	}

	s.Start()
}
