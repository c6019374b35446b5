package controller

import (
	"errors"
	"net/http"
	"strconv"

	"course-admin/web/entity"
	"course-admin/web/service"

	"github.com/gin-gonic/gin"
)

type UserController struct {
	userService service.UserService
}

func NewUserController(g *gin.RouterGroup) *UserController {
	a := &UserController{}

	g.POST("/login", a.login)
	g.GET("", a.list)
	g.GET("/:id", a.get)
	g.POST("", a.create)
	g.PUT("/:id", a.update)
	g.DELETE("/:id", a.delete)

	return a
}

type loginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (a *UserController) login(c *gin.Context) {
	var req loginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		jsonBadBody(c)
		return
	}
	if req.Email == "" || req.Password == "" {
		c.JSON(http.StatusBadRequest, entity.Msg{
			Message: "email and password are required.",
			Errors:  []string{"please provide email and password."},
		})
		return
	}

	user, err := a.userService.Login(req.Email, req.Password)
	if errors.Is(err, service.ErrLoginFailed) {
		c.JSON(http.StatusUnauthorized, entity.Msg{
			Message: "login failed.",
			Errors:  []string{err.Error()},
		})
		return
	} else if err != nil {
		jsonFailure(c, err)
		return
	}
	jsonData(c, "login succeeded.", gin.H{"user": user})
}

func (a *UserController) list(c *gin.Context) {
	plan := service.ParsePage(c.Query("currentPage"), c.Query("pageSize"))
	filter := service.UserFilter{
		Email:    c.Query("email"),
		Username: c.Query("username"),
	}
	if raw := c.Query("role"); raw != "" {
		if role, err := strconv.Atoi(raw); err == nil {
			filter.Role = &role
		}
	}

	users, total, err := a.userService.List(plan, filter)
	if err != nil {
		jsonFailure(c, err)
		return
	}
	jsonData(c, "query user list succeeded.", gin.H{
		"users": users,
		"pagination": entity.Pagination{
			Total:       total,
			CurrentPage: plan.CurrentPage,
			PageSize:    plan.PageSize,
		},
	})
}

func (a *UserController) get(c *gin.Context) {
	id, err := pathId(c)
	if err != nil {
		jsonFailure(c, err)
		return
	}
	user, err := a.userService.Get(id)
	if err != nil {
		jsonFailure(c, err)
		return
	}
	jsonData(c, "query user succeeded.", gin.H{"user": user})
}

func (a *UserController) create(c *gin.Context) {
	var fields service.UserFields
	if err := c.ShouldBindJSON(&fields); err != nil {
		jsonBadBody(c)
		return
	}
	user, err := a.userService.Create(fields)
	if err != nil {
		jsonFailure(c, err)
		return
	}
	jsonCreated(c, "create user succeeded.", gin.H{"user": user})
}

func (a *UserController) update(c *gin.Context) {
	id, err := pathId(c)
	if err != nil {
		jsonFailure(c, err)
		return
	}
	var fields service.UserFields
	if err := c.ShouldBindJSON(&fields); err != nil {
		jsonBadBody(c)
		return
	}
	user, err := a.userService.Update(id, fields)
	if err != nil {
		jsonFailure(c, err)
		return
	}
	jsonData(c, "update user succeeded.", gin.H{"user": user})
}

func (a *UserController) delete(c *gin.Context) {
	id, err := pathId(c)
	if err != nil {
		jsonFailure(c, err)
		return
	}
	if err := a.userService.Delete(id); err != nil {
		jsonFailure(c, err)
		return
	}
	jsonData(c, "delete user succeeded.", gin.H{})
}
