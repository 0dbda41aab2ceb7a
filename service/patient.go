package service

import (
	"metaapi/model"
	"metaapi/response"

	"github.com/gin-gonic/gin"
)

type PatientURI struct {
	PatientID int64 `uri:"patient_id"`
}

func (s *Service) ListPatients(c *gin.Context) {
	var q projectQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.BindError(c, err)
		return
	}
	patients, err := s.store.ListPatients(c.Request.Context(), q.ProjectID)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, patients)
}

// PatientsMetadata lists patients of the project with metadata and samples.
// Patient id 0 selects every patient.
func (s *Service) PatientsMetadata(c *gin.Context) {
	var uri PatientURI
	if err := c.ShouldBindUri(&uri); err != nil {
		response.BindError(c, err)
		return
	}
	var q requiredProjectQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.BindError(c, err)
		return
	}
	patients, err := s.store.PatientsWithSamples(c.Request.Context(), *q.ProjectID, uri.PatientID)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, patients)
}

func (s *Service) CreatePatient(c *gin.Context) {
	var req model.PatientCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}
	p, err := s.store.CreatePatient(c.Request.Context(), &req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, p)
}

func (s *Service) RegisterPatient(g *gin.RouterGroup) {
	g.GET("/patients/", s.ListPatients)
	g.POST("/patients/", s.CreatePatient)
	g.GET("/patients_metadata/:patient_id", s.PatientsMetadata)
}
