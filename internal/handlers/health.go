package handlers

import (
	"net/http"

	"github.com/pnicewicz421/big-picture/pkg/common/response"
)

const serverVersion = "big-picture-server v0.1.0"

func (hr *HandlerRepo) HealthHandler(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, serverVersion, false, "ok")
}
