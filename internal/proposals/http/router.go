package http

import "github.com/gin-gonic/gin"

// Register registers the proposal routes
func (h *Handler) Register(rg *gin.RouterGroup) {
	rg.POST("/proposals", h.SubmitProposal)
	rg.GET("/proposals", h.ListProposals)
}
