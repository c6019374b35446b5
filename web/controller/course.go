package controller

import (
	"strconv"

	"course-admin/web/entity"
	"course-admin/web/service"

	"github.com/gin-gonic/gin"
)

type CourseController struct {
	courseService service.CourseService
}

func NewCourseController(g *gin.RouterGroup) *CourseController {
	a := &CourseController{}

	g.GET("", a.list)
	g.GET("/:id", a.get)
	g.POST("", a.create)
	g.PUT("/:id", a.update)
	g.DELETE("/:id", a.delete)

	return a
}

func (a *CourseController) list(c *gin.Context) {
	plan := service.ParsePage(c.Query("currentPage"), c.Query("pageSize"))
	filter := service.CourseFilter{Name: c.Query("name")}

	if raw := c.Query("categoryId"); raw != "" {
		if id, err := strconv.ParseUint(raw, 10, 32); err == nil {
			filter.CategoryId = uint(id)
		}
	}
	if raw := c.Query("userId"); raw != "" {
		if id, err := strconv.ParseUint(raw, 10, 32); err == nil {
			filter.UserId = uint(id)
		}
	}
	if raw := c.Query("recommended"); raw != "" {
		recommended := raw == "true"
		filter.Recommended = &recommended
	}
	if raw := c.Query("introductory"); raw != "" {
		introductory := raw == "true"
		filter.Introductory = &introductory
	}

	courses, total, err := a.courseService.List(plan, filter)
	if err != nil {
		jsonFailure(c, err)
		return
	}
	jsonData(c, "query course list succeeded.", gin.H{
		"courses": courses,
		"pagination": entity.Pagination{
			Total:       total,
			CurrentPage: plan.CurrentPage,
			PageSize:    plan.PageSize,
		},
	})
}

func (a *CourseController) get(c *gin.Context) {
	id, err := pathId(c)
	if err != nil {
		jsonFailure(c, err)
		return
	}
	course, err := a.courseService.Get(id)
	if err != nil {
		jsonFailure(c, err)
		return
	}
	jsonData(c, "query course succeeded.", gin.H{"course": course})
}

func (a *CourseController) create(c *gin.Context) {
	var fields service.CourseFields
	if err := c.ShouldBindJSON(&fields); err != nil {
		jsonBadBody(c)
		return
	}
	course, err := a.courseService.Create(fields)
	if err != nil {
		jsonFailure(c, err)
		return
	}
	jsonCreated(c, "create course succeeded.", gin.H{"course": course})
}

func (a *CourseController) update(c *gin.Context) {
	id, err := pathId(c)
	if err != nil {
		jsonFailure(c, err)
		return
	}
	var fields service.CourseFields
	if err := c.ShouldBindJSON(&fields); err != nil {
		jsonBadBody(c)
		return
	}
	course, err := a.courseService.Update(id, fields)
	if err != nil {
		jsonFailure(c, err)
		return
	}
	jsonData(c, "update course succeeded.", gin.H{"course": course})
}

func (a *CourseController) delete(c *gin.Context) {
	id, err := pathId(c)
	if err != nil {
		jsonFailure(c, err)
		return
	}
	if err := a.courseService.Delete(id); err != nil {
		jsonFailure(c, err)
		return
	}
	jsonData(c, "delete course succeeded.", gin.H{})
}
