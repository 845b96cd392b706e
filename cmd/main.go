package main

import (
	"os"

	log "github.com/sirupsen/logrus"

	"github.com/jonathanRossato/treino-app/config"
	"github.com/jonathanRossato/treino-app/routes"
	"github.com/jonathanRossato/treino-app/utils"
)

func main() {
	db := config.InitDB()
	utils.InitS3()

	r := routes.SetupRouter(db)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.WithField("port", port).Info("starting server")
	if err := r.Run(":" + port); err != nil {
		log.WithError(err).Fatal("server exited")
	}
}
