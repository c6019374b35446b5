package controller

import (
	"course-admin/web/entity"
	"course-admin/web/service"

	"github.com/gin-gonic/gin"
)

type ArticleController struct {
	articleService service.ArticleService
}

func NewArticleController(g *gin.RouterGroup) *ArticleController {
	a := &ArticleController{}

	g.GET("", a.list)
	g.GET("/:id", a.get)
	g.POST("", a.create)
	g.PUT("/:id", a.update)
	g.DELETE("/:id", a.delete)

	return a
}

func (a *ArticleController) list(c *gin.Context) {
	plan := service.ParsePage(c.Query("currentPage"), c.Query("pageSize"))
	filter := service.ArticleFilter{Title: c.Query("title")}

	articles, total, err := a.articleService.List(plan, filter)
	if err != nil {
		jsonFailure(c, err)
		return
	}
	jsonData(c, "query article list succeeded.", gin.H{
		"articles": articles,
		"pagination": entity.Pagination{
			Total:       total,
			CurrentPage: plan.CurrentPage,
			PageSize:    plan.PageSize,
		},
	})
}

func (a *ArticleController) get(c *gin.Context) {
	id, err := pathId(c)
	if err != nil {
		jsonFailure(c, err)
		return
	}
	article, err := a.articleService.Get(id)
	if err != nil {
		jsonFailure(c, err)
		return
	}
	jsonData(c, "query article succeeded.", gin.H{"article": article})
}

func (a *ArticleController) create(c *gin.Context) {
	var fields service.ArticleFields
	if err := c.ShouldBindJSON(&fields); err != nil {
		jsonBadBody(c)
		return
	}
	article, err := a.articleService.Create(fields)
	if err != nil {
		jsonFailure(c, err)
		return
	}
	jsonCreated(c, "create article succeeded.", gin.H{"article": article})
}

func (a *ArticleController) update(c *gin.Context) {
	id, err := pathId(c)
	if err != nil {
		jsonFailure(c, err)
		return
	}
	var fields service.ArticleFields
	if err := c.ShouldBindJSON(&fields); err != nil {
		jsonBadBody(c)
		return
	}
	article, err := a.articleService.Update(id, fields)
	if err != nil {
		jsonFailure(c, err)
		return
	}
	jsonData(c, "update article succeeded.", gin.H{"article": article})
}

func (a *ArticleController) delete(c *gin.Context) {
	id, err := pathId(c)
	if err != nil {
		jsonFailure(c, err)
		return
	}
	if err := a.articleService.Delete(id); err != nil {
		jsonFailure(c, err)
		return
	}
	jsonData(c, "delete article succeeded.", gin.H{})
}
