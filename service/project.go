package service

import (
	"metaapi/model"
	"metaapi/response"

	"github.com/gin-gonic/gin"
)

type ProjectQuery struct {
	Status *string `form:"status"`
}

func (s *Service) ListProjects(c *gin.Context) {
	var req ProjectQuery
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BindError(c, err)
		return
	}
	projects, err := s.store.ListProjects(c.Request.Context(), req.Status)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, projects)
}

func (s *Service) CreateProject(c *gin.Context) {
	var req model.Project
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}
	req.ID = 0
	if err := s.store.CreateProject(c.Request.Context(), &req); err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, req)
}

func (s *Service) RegisterProject(g *gin.RouterGroup) {
	g.GET("/projects/", s.ListProjects)
	g.POST("/projects/", s.CreateProject)
}
