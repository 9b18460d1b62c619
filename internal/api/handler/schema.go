package handler

import (
	"time"

	"github.com/Nowell222/green-path-ai/internal/core/domain"
)

// errorResponse is the canonical error envelope for all API errors.
type errorResponse struct {
	Error string `json:"error"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type loginResponse struct {
	User    *domain.UserProfile `json:"user"`
	Landing string              `json:"landing"`
}

type sessionResponse struct {
	Authenticated bool                `json:"authenticated"`
	Busy          bool                `json:"busy"`
	User          *domain.UserProfile `json:"user,omitempty"`
	RoleName      string              `json:"roleName,omitempty"`
}

type decisionResponse struct {
	Action   string `json:"action"`
	Target   string `json:"target,omitempty"`
	NotFound bool   `json:"notFound,omitempty"`
}

type auditEventResponse struct {
	ID        string    `json:"id"`
	ContextID string    `json:"contextId"`
	Kind      string    `json:"kind"`
	Email     string    `json:"email"`
	Role      string    `json:"role,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}
