package handler

import (
	"net/http"

	"transbook/config"
	"transbook/di"
	"transbook/shared/logger"
)

func Handler(w http.ResponseWriter, r *http.Request) {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	handler := di.InitializeService()
	handler.Adaptor()(w, r)
}
