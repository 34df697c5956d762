package handlers

import (
	"github.com/jmoiron/sqlx"

	"github.com/jems1213/nexus/internal/contact"
	"github.com/jems1213/nexus/internal/identity"
)

type Handler struct {
	Auth    *AuthHandler
	Contact *ContactHandler
	Health  *HealthHandler
}

func NewHandler(identitySvc *identity.Service, contactSvc *contact.Service, db *sqlx.DB) *Handler {
	return &Handler{
		Auth:    NewAuthHandler(identitySvc),
		Contact: NewContactHandler(contactSvc),
		Health:  NewHealthHandler(db),
	}
}
