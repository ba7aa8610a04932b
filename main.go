package main

import (
	"fmt"
	"log"
	"time"

	"shop-api/internal/config"
	"shop-api/internal/database"
	"shop-api/internal/notify"
	"shop-api/internal/router"
	"shop-api/internal/token"
)

func main() {
	// load configuration
	cfg, err := config.Load("config.yaml")
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	// init database
	db, err := database.Init(cfg.Database)
	if err != nil {
		log.Fatalf("init database: %v", err)
	}

	// run migrations
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("migrate database: %v", err)
	}

	// token service with a persistent, process-shared blocklist
	revoked := token.NewGormRevocationStore(db)
	tokens := token.NewService(cfg.JWT, revoked)
	go purgeLoop(revoked)

	// registration mail dispatcher
	var mailer notify.Mailer = notify.LogMailer{}
	if cfg.Mail.Enabled {
		mailer = notify.NewMailgunMailer(cfg.Mail.Domain, cfg.Mail.APIKey, cfg.Mail.Sender)
	}
	dispatcher := notify.NewDispatcher(mailer, cfg.Mail.QueueSize)
	defer dispatcher.Close()

	// setup router
	r := router.SetupRouter(cfg, db, tokens, dispatcher)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Address, cfg.Server.Port)
	log.Printf("server listening on %s", addr)
	if err := r.Run(addr); err != nil {
		log.Fatalf("run server: %v", err)
	}
}

// purgeLoop drops blocklist rows for tokens that have expired on their
// own, keeping the table bounded by the token TTL.
func purgeLoop(revoked *token.GormRevocationStore) {
	ticker := time.NewTicker(time.Hour)
	defer ticker.Stop()
	for range ticker.C {
		if n, err := revoked.PurgeExpired(time.Now()); err != nil {
			log.Printf("purge blocklist: %v", err)
		} else if n > 0 {
			log.Printf("purged %d expired blocklist entries", n)
		}
	}
}
