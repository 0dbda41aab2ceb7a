package service

import (
	"net/http"

	"metaapi/dao"
	"metaapi/logutils"
	"metaapi/metrics"
	"metaapi/response"

	"github.com/gin-gonic/gin"
)

type Service struct {
	store *dao.Store
}

func New(store *dao.Store) *Service {
	return &Service{store: store}
}

// Router builds the engine with every route registered.
func Router(s *Service, m *metrics.Metrics) *gin.Engine {
	response.UseJSONFieldNames()

	r := gin.New()
	r.Use(gin.Recovery(), logutils.GinLogger(), m.Middleware())
	r.GET("/metrics", m.Handler())

	api := r.Group("")
	api.GET("/", func(c *gin.Context) {
		c.Redirect(http.StatusTemporaryRedirect, "/projects/")
	})
	api.GET("/healthz", s.Health)
	s.RegisterProject(api)
	s.RegisterDataset(api)
	s.RegisterPatient(api)
	s.RegisterSample(api)
	s.RegisterRawFile(api)
	return r
}

func (s *Service) Health(c *gin.Context) {
	if err := s.store.Ping(c.Request.Context()); err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, "ok")
}

// projectQuery is the project filter shared by list endpoints.
type projectQuery struct {
	ProjectID *int64 `form:"project_id"`
}

// requiredProjectQuery is for routes scoped to a single project.
type requiredProjectQuery struct {
	ProjectID *int64 `form:"project_id" binding:"required"`
}
