package main

import (
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
)

const defaultOpenAIBaseURL = "https://api.openai.com"

func main() {
	// .env is optional in production — env vars may come from the platform.
	if err := godotenv.Load(); err != nil {
		log.Warnf("no .env file loaded: %v", err)
	}

	h := &Handler{
		db:            getDBPool(),
		openAIBaseURL: defaultOpenAIBaseURL,
	}

	router := gin.Default()
	router.SetTrustedProxies(nil)
	h.registerRoutes(router)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	addr := ":" + os.Getenv("PORT")
	if addr == ":" {
		addr = ":3000"
	}

	log.Printf("starting vitalize api on %s", addr)
	if err := router.Run(addr); err != nil {
		log.Fatalf("server exited: %v", err)
	}
}
