package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/jems1213/nexus/internal/identity"
	"github.com/jems1213/nexus/internal/utils"
)

type AuthHandler struct {
	svc *identity.Service
}

func NewAuthHandler(svc *identity.Service) *AuthHandler {
	return &AuthHandler{svc: svc}
}

// ----------- Request/Response DTOs -------------

type signUpReq struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type googleLoginReq struct {
	Token string `json:"token"`
}

type signUpUser struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

type loginUser struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// -------------- SIGN UP ----------------------

func (h *AuthHandler) SignUp(w http.ResponseWriter, r *http.Request) {
	var req signUpReq
	if err := utils.DecodeJSON(w, r, &req); err != nil {
		return
	}

	view, err := h.svc.Register(r.Context(), req.Name, req.Email, req.Password)
	switch {
	case errors.Is(err, identity.ErrValidation):
		utils.Fail(w, http.StatusBadRequest, "All fields are required")
	case errors.Is(err, identity.ErrEmailExists):
		utils.Fail(w, http.StatusBadRequest, "Email already in use")
	case err != nil:
		utils.Fail(w, http.StatusInternalServerError, "Error creating user")
	default:
		utils.JSON(w, http.StatusCreated, utils.Envelope{
			Success: true,
			Message: "User created successfully",
			User: signUpUser{
				ID:        view.ID,
				Name:      view.Name,
				Email:     view.Email,
				CreatedAt: view.CreatedAt,
			},
		})
	}
}

// -------------- LOGIN ------------------------

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginReq
	if err := utils.DecodeJSON(w, r, &req); err != nil {
		return
	}

	view, err := h.svc.Authenticate(r.Context(), req.Email, req.Password)
	switch {
	case errors.Is(err, identity.ErrInvalidCredentials):
		utils.Fail(w, http.StatusUnauthorized, "Invalid credentials")
	case err != nil:
		utils.Fail(w, http.StatusInternalServerError, "Error logging in")
	default:
		utils.JSON(w, http.StatusOK, utils.Envelope{
			Success: true,
			Message: "Login successful",
			User:    loginUser{ID: view.ID, Name: view.Name, Email: view.Email},
		})
	}
}

// -------------- GOOGLE LOGIN -----------------

func (h *AuthHandler) GoogleLogin(w http.ResponseWriter, r *http.Request) {
	var req googleLoginReq
	if err := utils.DecodeJSON(w, r, &req); err != nil {
		return
	}

	view, err := h.svc.AuthenticateGoogle(r.Context(), req.Token)
	switch {
	case errors.Is(err, identity.ErrInvalidToken):
		utils.Fail(w, http.StatusUnauthorized, "Invalid Google token")
	case err != nil:
		utils.Fail(w, http.StatusInternalServerError, "Error logging in")
	default:
		utils.JSON(w, http.StatusOK, utils.Envelope{
			Success: true,
			Message: "Google login success",
			User:    loginUser{ID: view.ID, Name: view.Name, Email: view.Email},
		})
	}
}
