// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/workhub-console/internal/adapter"
	"github.com/MKhiriev/workhub-console/internal/logger"
	"github.com/MKhiriev/workhub-console/internal/validators"
	"github.com/MKhiriev/workhub-console/models"
)

type commentService struct {
	adapter   adapter.CommentAdapter
	session   SessionManager
	validator validators.Validator
	logger    *logger.Logger
}

func NewCommentService(a adapter.CommentAdapter, sess SessionManager, v validators.Validator, logger *logger.Logger) CommentService {
	return &commentService{adapter: a, session: sess, validator: v, logger: logger}
}

func (s *commentService) ListByTask(ctx context.Context, taskID string, page models.PageParams) (models.Page[models.TaskComment], error) {
	if err := validate(ctx, s.validator, page); err != nil {
		return models.Page[models.TaskComment]{}, err
	}
	return s.adapter.ListCommentsByTask(ctx, taskID, page)
}

func (s *commentService) ListByUser(ctx context.Context, userID string, page models.PageParams) (models.Page[models.TaskComment], error) {
	if err := validate(ctx, s.validator, page); err != nil {
		return models.Page[models.TaskComment]{}, err
	}
	return s.adapter.ListCommentsByUser(ctx, userID, page)
}

func (s *commentService) Add(ctx context.Context, taskID, message string) (models.TaskComment, error) {
	user, ok := s.session.User()
	if !ok {
		return models.TaskComment{}, ErrNotSignedIn
	}

	req := models.TaskCommentRequest{TaskID: taskID, UserID: user.ID, Message: message}
	if err := validate(ctx, s.validator, req); err != nil {
		return models.TaskComment{}, err
	}

	comment, err := s.adapter.CreateComment(ctx, req)
	if err != nil {
		s.logger.Err(err).Str("func", "*commentService.Add").Str("task_id", taskID).Msg("add comment failed")
		return models.TaskComment{}, err
	}
	return comment, nil
}

func (s *commentService) Delete(ctx context.Context, id string) error {
	if err := s.adapter.DeleteComment(ctx, id); err != nil {
		s.logger.Err(err).Str("func", "*commentService.Delete").Str("comment_id", id).Msg("delete comment failed")
		return err
	}
	return nil
}
