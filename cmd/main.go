package main

import (
	"github.com/GuruMohith24/e-commerce-backend/internal/app"
	"github.com/GuruMohith24/e-commerce-backend/internal/config"
)

func main() {
	config.MustInit()
	app.MustNewApp().Run()
}
