package handlers

import (
	"errors"
	"net/http"

	"pos_terminal/internal/state"
	"pos_terminal/pkg/utils"

	"github.com/gin-gonic/gin"
)

// respondStorageAware maps service-layer errors that are not domain
// not-founds. A failed durable write is special: the state change IS
// committed in memory, so the response says so instead of pretending the
// operation failed outright.
func respondStorageAware(c *gin.Context, err error, op string) {
	utils.LogError(err, op+": operation error")
	if errors.Is(err, state.ErrStorageWrite) {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeStorageWrite,
			"The change was applied but could not be durably saved.", err.Error()))
		return
	}
	utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError,
		"Operation failed.", ""))
}
