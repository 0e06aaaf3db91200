package main

import (
	"github.com/sirupsen/logrus"

	"lexforge/internal/api"
)

func main() {
	logrus.Info("App start")
	if err := api.StartServer(); err != nil {
		logrus.Fatal(err)
	}
	logrus.Info("App terminated")
}
