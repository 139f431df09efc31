package main

import (
	"context"
	"log"

	_ "github.com/joho/godotenv/autoload"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg, err := LoadConfig()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	store, err := OpenContentStore(cfg.DBPath)
	if err != nil {
		log.Fatal("Failed to open content store:", err)
	}
	defer store.Close()

	content := NewContent(store)
	auth := NewAuth(cfg)

	var binary *BinaryStore
	if cfg.S3Bucket != "" {
		binary, err = NewBinaryStore(context.Background(), cfg)
		if err != nil {
			log.Fatal("Failed to set up binary store:", err)
		}
	} else {
		log.Println("S3_BUCKET not set, file uploads disabled")
	}

	tracker, err := NewTracker(store.DB(), auth.hashIP)
	if err != nil {
		log.Fatal("Failed to set up visitor tracking:", err)
	}

	r := newRouter(cfg, auth, content, binary, tracker)

	log.Printf("Admin console available at /login")
	r.Run(":" + cfg.Port)
}

// newRouter assembles the gin engine with every route wired. Tests
// build the same engine against a temp store.
func newRouter(cfg Config, auth *Auth, content *Content, binary *BinaryStore, tracker *Tracker) *gin.Engine {
	r := gin.Default()
	r.LoadHTMLGlob("templates/*")

	r.Static("/images", "./images")
	r.Static("/static", "./static")

	if tracker != nil {
		r.Use(tracker.Middleware())
	}

	auth.RegisterLoginRoutes(r)
	setupPublicRoutes(r, content, cfg)
	setupAdminRoutes(r, auth, content, binary, tracker)

	return r
}
