package controller

import (
	"net/http"

	"course-admin/config"

	"github.com/gin-gonic/gin"
)

type IndexController struct{}

func NewIndexController(g *gin.RouterGroup) *IndexController {
	a := &IndexController{}
	g.GET("/", a.index)
	return a
}

// index doubles as a health check.
func (a *IndexController) index(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "hello world",
		"name":    config.GetName(),
		"version": config.GetVersion(),
	})
}
