package dao

import (
	"context"

	"metaapi/dao/query"
	"metaapi/model"
)

func (s *Store) ListProjects(ctx context.Context, status *string) ([]model.Project, error) {
	q, args := query.Where("SELECT id, name, status FROM projects", query.Eq("status", status))
	projects := []model.Project{}
	if err := s.db.WithContext(ctx).Raw(q+" ORDER BY id", args...).Scan(&projects).Error; err != nil {
		return nil, classify("list projects", err)
	}
	return projects, nil
}

func (s *Store) CreateProject(ctx context.Context, p *model.Project) error {
	return classify("create project", s.db.WithContext(ctx).Create(p).Error)
}
