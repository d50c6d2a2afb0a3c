package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/FCT-TaskManager/Backend/internal/services"
)

// Responses use a uniform envelope: {"success":true,"data":...} or
// {"success":true,"message":...} on success, {"success":false,"error":...}
// on failure, with "details" attached to internal errors for diagnostics.

func respondData(ctx *gin.Context, status int, data interface{}) {
	ctx.JSON(status, gin.H{"success": true, "data": data})
}

func respondDataMessage(ctx *gin.Context, status int, data interface{}, message string) {
	ctx.JSON(status, gin.H{"success": true, "data": data, "message": message})
}

func respondMessage(ctx *gin.Context, status int, message string) {
	ctx.JSON(status, gin.H{"success": true, "message": message})
}

func respondBadRequest(ctx *gin.Context, message string) {
	ctx.JSON(http.StatusBadRequest, gin.H{"success": false, "error": message})
}

func respondUnauthenticated(ctx *gin.Context) {
	ctx.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "User not authenticated"})
}

// respondError is the single error boundary of every handler: expected
// service failures carry their own status and message, anything else is
// logged and reported as a 500 with the fallback description.
func respondError(ctx *gin.Context, err error, fallback string) {
	if svcErr, ok := services.AsError(err); ok {
		ctx.JSON(svcErr.Status, gin.H{"success": false, "error": svcErr.Message})
		return
	}

	log.Error().Err(err).Str("path", ctx.FullPath()).Msg(fallback)
	ctx.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": fallback, "details": err.Error()})
}
