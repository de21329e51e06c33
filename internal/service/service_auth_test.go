// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/MKhiriev/workhub-console/internal/gateway"
	"github.com/MKhiriev/workhub-console/internal/logger"
	"github.com/MKhiriev/workhub-console/internal/mock"
	"github.com/MKhiriev/workhub-console/internal/session"
	"github.com/MKhiriev/workhub-console/internal/validators"
	"github.com/MKhiriev/workhub-console/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestAuthSvc(t *testing.T) (AuthService, *mock.MockAuthAdapter, *mock.MockSessionManager) {
	t.Helper()
	ctrl := gomock.NewController(t)
	a := mock.NewMockAuthAdapter(ctrl)
	sess := mock.NewMockSessionManager(ctrl)
	return NewAuthService(a, sess, validators.NewRequestValidator(), logger.Nop()), a, sess
}

var (
	testUser  = models.User{ID: "u-1", CompanyID: "c-1", Email: "ada@example.com", FullName: "Ada", Role: models.RoleManager}
	loginReq  = models.LoginRequest{Email: "ada@example.com", Password: "secret1"}
	authReply = models.AuthResponse{Token: "tok", Type: "Bearer", User: testUser}
)

// ── Login ────────────────────────────────────────────────────────────────────

func TestAuthService_Login_Success(t *testing.T) {
	svc, a, sess := newTestAuthSvc(t)
	ctx := context.Background()

	gomock.InOrder(
		a.EXPECT().Login(ctx, loginReq).Return(authReply, nil),
		sess.EXPECT().Login(ctx, testUser, "tok").Return(nil),
	)

	user, err := svc.Login(ctx, loginReq)
	require.NoError(t, err)
	assert.Equal(t, testUser, user)
}

func TestAuthService_Login_InvalidInput(t *testing.T) {
	svc, _, _ := newTestAuthSvc(t)

	_, err := svc.Login(context.Background(), models.LoginRequest{Email: "nope", Password: "x"})
	require.ErrorIs(t, err, ErrInvalidInput)
	assert.ErrorIs(t, err, validators.ErrInvalidEmail)
}

func TestAuthService_Login_BackendError(t *testing.T) {
	svc, a, _ := newTestAuthSvc(t)
	ctx := context.Background()
	apiErr := &gateway.APIError{Status: http.StatusUnauthorized, Message: "Invalid email or password", Kind: gateway.KindServer}

	a.EXPECT().Login(ctx, loginReq).Return(models.AuthResponse{}, apiErr)

	_, err := svc.Login(ctx, loginReq)
	require.Error(t, err)
	assert.Same(t, apiErr, err, "backend errors are returned unchanged")
}

func TestAuthService_Login_EmptyToken(t *testing.T) {
	svc, a, sess := newTestAuthSvc(t)
	ctx := context.Background()
	reply := authReply
	reply.Token = ""

	a.EXPECT().Login(ctx, loginReq).Return(reply, nil)
	sess.EXPECT().Login(ctx, testUser, "").Return(session.ErrEmptyToken)

	_, err := svc.Login(ctx, loginReq)
	require.ErrorIs(t, err, session.ErrEmptyToken)
}

func TestAuthService_Login_PersistFailureIsNotFatal(t *testing.T) {
	svc, a, sess := newTestAuthSvc(t)
	ctx := context.Background()

	a.EXPECT().Login(ctx, loginReq).Return(authReply, nil)
	sess.EXPECT().Login(ctx, testUser, "tok").Return(fmt.Errorf("persist session: %w", errors.New("disk full")))

	user, err := svc.Login(ctx, loginReq)
	require.NoError(t, err)
	assert.Equal(t, "u-1", user.ID)
}

// ── Register ─────────────────────────────────────────────────────────────────

func TestAuthService_Register(t *testing.T) {
	svc, a, sess := newTestAuthSvc(t)
	ctx := context.Background()
	req := models.RegisterRequest{FullName: "Ada", Email: "ada@example.com", Password: "secret1"}

	a.EXPECT().Register(ctx, req).Return(authReply, nil)
	sess.EXPECT().Login(ctx, testUser, "tok").Return(nil)

	user, err := svc.Register(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, testUser, user)
}

func TestAuthService_Register_ShortPassword(t *testing.T) {
	svc, _, _ := newTestAuthSvc(t)

	_, err := svc.Register(context.Background(), models.RegisterRequest{FullName: "Ada", Email: "ada@example.com", Password: "123"})
	require.ErrorIs(t, err, validators.ErrInvalidPassword)
}

// ── Logout / CurrentUser ─────────────────────────────────────────────────────

func TestAuthService_LogoutAndCurrentUser(t *testing.T) {
	svc, _, sess := newTestAuthSvc(t)

	sess.EXPECT().User().Return(testUser, true)
	user, ok := svc.CurrentUser()
	assert.True(t, ok)
	assert.Equal(t, testUser, user)

	sess.EXPECT().Logout()
	svc.Logout()
}
