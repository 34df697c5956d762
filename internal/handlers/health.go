package handlers

import (
	"net/http"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/jems1213/nexus/internal/utils"
)

type HealthHandler struct {
	db *sqlx.DB
}

func NewHealthHandler(db *sqlx.DB) *HealthHandler {
	return &HealthHandler{db: db}
}

type healthResp struct {
	Status    string    `json:"status"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

// Check reports liveness, including a database ping.
func (h *HealthHandler) Check(w http.ResponseWriter, r *http.Request) {
	if h.db != nil {
		if err := h.db.PingContext(r.Context()); err != nil {
			utils.JSON(w, http.StatusInternalServerError, healthResp{
				Status:    "error",
				Message:   "Database unreachable",
				Timestamp: time.Now().UTC(),
			})
			return
		}
	}

	utils.JSON(w, http.StatusOK, healthResp{
		Status:    "OK",
		Message:   "Server is running",
		Timestamp: time.Now().UTC(),
	})
}
