package service

import (
	"metaapi/model"
	"metaapi/response"

	"github.com/gin-gonic/gin"
)

type SampleURI struct {
	SampleID int64 `uri:"sample_id"`
}

// Samples lists samples of the project with metadata and owning patient.
// Sample id 0 selects every sample.
func (s *Service) Samples(c *gin.Context) {
	var uri SampleURI
	if err := c.ShouldBindUri(&uri); err != nil {
		response.BindError(c, err)
		return
	}
	var q requiredProjectQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.BindError(c, err)
		return
	}
	samples, err := s.store.Samples(c.Request.Context(), *q.ProjectID, uri.SampleID)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, samples)
}

func (s *Service) CreateSample(c *gin.Context) {
	var req model.SampleCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}
	smp, err := s.store.CreateSample(c.Request.Context(), &req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, smp)
}

func (s *Service) RegisterSample(g *gin.RouterGroup) {
	g.GET("/samples/:sample_id", s.Samples)
	g.POST("/samples/", s.CreateSample)
}
