package service

import (
	"fmt"

	"metaapi/model"
	"metaapi/response"

	"github.com/gin-gonic/gin"
)

type AddRawFilesResp struct {
	Status  string  `json:"status"`
	Message string  `json:"message"`
	IDs     []int64 `json:"ids"`
}

func (s *Service) RawFilesWithMetadata(c *gin.Context) {
	var uri DatasetURI
	if err := c.ShouldBindUri(&uri); err != nil {
		response.BindError(c, err)
		return
	}
	files, err := s.store.RawFilesWithMetadata(c.Request.Context(), uri.DatasetID)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, files)
}

// AddRawFiles validates the whole batch, then writes it in one transaction.
func (s *Service) AddRawFiles(c *gin.Context) {
	var files []model.FileCreate
	if err := c.ShouldBindJSON(&files); err != nil {
		response.BindError(c, err)
		return
	}
	ids, err := s.store.AddRawFiles(c.Request.Context(), files)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, AddRawFilesResp{
		Status:  "success",
		Message: fmt.Sprintf("%d raw files and metadata added successfully", len(ids)),
		IDs:     ids,
	})
}

func (s *Service) RegisterRawFile(g *gin.RouterGroup) {
	g.GET("/raw_files_with_metadata/:dataset_id", s.RawFilesWithMetadata)
	g.POST("/add_raw_files/", s.AddRawFiles)
}
