package controller

import (
	"course-admin/web/entity"
	"course-admin/web/service"

	"github.com/gin-gonic/gin"
)

type SettingController struct {
	settingService service.SettingService
}

func NewSettingController(g *gin.RouterGroup) *SettingController {
	a := &SettingController{}

	g.GET("", a.list)
	g.GET("/:id", a.get)
	g.POST("", a.create)
	g.PUT("/:id", a.update)
	g.DELETE("/:id", a.delete)

	return a
}

func (a *SettingController) list(c *gin.Context) {
	plan := service.ParsePage(c.Query("currentPage"), c.Query("pageSize"))
	filter := service.SettingFilter{Name: c.Query("name")}

	settings, total, err := a.settingService.List(plan, filter)
	if err != nil {
		jsonFailure(c, err)
		return
	}
	jsonData(c, "query setting list succeeded.", gin.H{
		"settings": settings,
		"pagination": entity.Pagination{
			Total:       total,
			CurrentPage: plan.CurrentPage,
			PageSize:    plan.PageSize,
		},
	})
}

func (a *SettingController) get(c *gin.Context) {
	id, err := pathId(c)
	if err != nil {
		jsonFailure(c, err)
		return
	}
	setting, err := a.settingService.Get(id)
	if err != nil {
		jsonFailure(c, err)
		return
	}
	jsonData(c, "query setting succeeded.", gin.H{"setting": setting})
}

func (a *SettingController) create(c *gin.Context) {
	var fields service.SettingFields
	if err := c.ShouldBindJSON(&fields); err != nil {
		jsonBadBody(c)
		return
	}
	setting, err := a.settingService.Create(fields)
	if err != nil {
		jsonFailure(c, err)
		return
	}
	jsonCreated(c, "create setting succeeded.", gin.H{"setting": setting})
}

func (a *SettingController) update(c *gin.Context) {
	id, err := pathId(c)
	if err != nil {
		jsonFailure(c, err)
		return
	}
	var fields service.SettingFields
	if err := c.ShouldBindJSON(&fields); err != nil {
		jsonBadBody(c)
		return
	}
	setting, err := a.settingService.Update(id, fields)
	if err != nil {
		jsonFailure(c, err)
		return
	}
	jsonData(c, "update setting succeeded.", gin.H{"setting": setting})
}

func (a *SettingController) delete(c *gin.Context) {
	id, err := pathId(c)
	if err != nil {
		jsonFailure(c, err)
		return
	}
	if err := a.settingService.Delete(id); err != nil {
		jsonFailure(c, err)
		return
	}
	jsonData(c, "delete setting succeeded.", gin.H{})
}
