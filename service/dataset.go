package service

import (
	"metaapi/model"
	"metaapi/response"

	"github.com/gin-gonic/gin"
)

type DatasetQuery struct {
	ProjectID *int64 `form:"project_id"`
	DatasetID *int64 `form:"dataset_id"`
}

type DatasetURI struct {
	DatasetID int64 `uri:"dataset_id"`
}

func (s *Service) ListDatasets(c *gin.Context) {
	var req DatasetQuery
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BindError(c, err)
		return
	}
	datasets, err := s.store.ListDatasets(c.Request.Context(), req.ProjectID, req.DatasetID)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, datasets)
}

func (s *Service) CreateDataset(c *gin.Context) {
	var req model.DatasetCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}
	ds, err := s.store.CreateDataset(c.Request.Context(), &req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, ds)
}

func (s *Service) GetDatasetWithMetadata(c *gin.Context) {
	var uri DatasetURI
	if err := c.ShouldBindUri(&uri); err != nil {
		response.BindError(c, err)
		return
	}
	var q requiredProjectQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.BindError(c, err)
		return
	}
	ds, err := s.store.GetDatasetWithMetadata(c.Request.Context(), uri.DatasetID, *q.ProjectID)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, ds)
}

// UpdateSize stores file_size and last_size_update, whichever are set, and
// echoes the request.
func (s *Service) UpdateSize(c *gin.Context) {
	var req model.MetadataUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}
	if pairs := req.Pairs(); len(pairs) > 0 {
		if _, err := s.store.UpsertDatasetMetadata(c.Request.Context(), req.DatasetID, pairs); err != nil {
			response.FromError(c, err)
			return
		}
	}
	response.Success(c, req)
}

func (s *Service) UpsertDatasetMetadata(c *gin.Context) {
	var uri DatasetURI
	if err := c.ShouldBindUri(&uri); err != nil {
		response.BindError(c, err)
		return
	}
	var req model.MetadataUpsert
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}
	md, err := s.store.UpsertDatasetMetadata(c.Request.Context(), uri.DatasetID, req.Metadata)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, md)
}

func (s *Service) RegisterDataset(g *gin.RouterGroup) {
	g.GET("/datasets/", s.ListDatasets)
	g.POST("/datasets/", s.CreateDataset)
	g.GET("/datasets_with_metadata/:dataset_id", s.GetDatasetWithMetadata)
	g.PUT("/datasets_metadata/size_update", s.UpdateSize)
	g.PUT("/datasets_metadata/:dataset_id", s.UpsertDatasetMetadata)
}
