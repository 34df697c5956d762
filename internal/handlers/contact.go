package handlers

import (
	"errors"
	"net/http"

	"github.com/jems1213/nexus/internal/contact"
	"github.com/jems1213/nexus/internal/utils"
)

type ContactHandler struct {
	svc *contact.Service
}

func NewContactHandler(svc *contact.Service) *ContactHandler {
	return &ContactHandler{svc: svc}
}

type contactReq struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

func (h *ContactHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req contactReq
	if err := utils.DecodeJSON(w, r, &req); err != nil {
		return
	}

	receipt, err := h.svc.Submit(r.Context(), req.Name, req.Email, req.Message)
	switch {
	case errors.Is(err, contact.ErrValidation):
		utils.Fail(w, http.StatusBadRequest, "All fields are required")
	case errors.Is(err, contact.ErrInvalidEmail):
		utils.Fail(w, http.StatusBadRequest, "Please enter a valid email address")
	case errors.Is(err, contact.ErrMessageTooShort):
		utils.Fail(w, http.StatusBadRequest, "Message should be at least 10 characters long")
	case err != nil:
		utils.Fail(w, http.StatusInternalServerError, "Error submitting contact form")
	default:
		utils.JSON(w, http.StatusCreated, utils.Envelope{
			Success: true,
			Message: "Thank you for contacting us! We will get back to you soon.",
			Data:    receipt,
		})
	}
}

func (h *ContactHandler) List(w http.ResponseWriter, r *http.Request) {
	contacts, err := h.svc.List(r.Context())
	if err != nil {
		utils.Fail(w, http.StatusInternalServerError, "Error fetching contacts")
		return
	}

	utils.JSON(w, http.StatusOK, utils.Envelope{
		Success: true,
		Message: "Contacts fetched",
		Data:    contacts,
	})
}
