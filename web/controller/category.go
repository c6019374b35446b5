package controller

import (
	"course-admin/web/entity"
	"course-admin/web/service"

	"github.com/gin-gonic/gin"
)

type CategoryController struct {
	categoryService service.CategoryService
}

func NewCategoryController(g *gin.RouterGroup) *CategoryController {
	a := &CategoryController{}

	g.GET("", a.list)
	g.GET("/:id", a.get)
	g.POST("", a.create)
	g.PUT("/:id", a.update)
	g.DELETE("/:id", a.delete)

	return a
}

func (a *CategoryController) list(c *gin.Context) {
	plan := service.ParsePage(c.Query("currentPage"), c.Query("pageSize"))
	filter := service.CategoryFilter{Name: c.Query("name")}

	categories, total, err := a.categoryService.List(plan, filter)
	if err != nil {
		jsonFailure(c, err)
		return
	}
	jsonData(c, "query category list succeeded.", gin.H{
		"categories": categories,
		"pagination": entity.Pagination{
			Total:       total,
			CurrentPage: plan.CurrentPage,
			PageSize:    plan.PageSize,
		},
	})
}

func (a *CategoryController) get(c *gin.Context) {
	id, err := pathId(c)
	if err != nil {
		jsonFailure(c, err)
		return
	}
	category, err := a.categoryService.Get(id)
	if err != nil {
		jsonFailure(c, err)
		return
	}
	jsonData(c, "query category succeeded.", gin.H{"category": category})
}

func (a *CategoryController) create(c *gin.Context) {
	var fields service.CategoryFields
	if err := c.ShouldBindJSON(&fields); err != nil {
		jsonBadBody(c)
		return
	}
	category, err := a.categoryService.Create(fields)
	if err != nil {
		jsonFailure(c, err)
		return
	}
	jsonCreated(c, "create category succeeded.", gin.H{"category": category})
}

func (a *CategoryController) update(c *gin.Context) {
	id, err := pathId(c)
	if err != nil {
		jsonFailure(c, err)
		return
	}
	var fields service.CategoryFields
	if err := c.ShouldBindJSON(&fields); err != nil {
		jsonBadBody(c)
		return
	}
	category, err := a.categoryService.Update(id, fields)
	if err != nil {
		jsonFailure(c, err)
		return
	}
	jsonData(c, "update category succeeded.", gin.H{"category": category})
}

func (a *CategoryController) delete(c *gin.Context) {
	id, err := pathId(c)
	if err != nil {
		jsonFailure(c, err)
		return
	}
	if err := a.categoryService.Delete(id); err != nil {
		jsonFailure(c, err)
		return
	}
	jsonData(c, "delete category succeeded.", gin.H{})
}
