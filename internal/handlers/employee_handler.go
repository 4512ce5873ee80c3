package handler

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"payroll-sync-backend/internal/models"
	"payroll-sync-backend/internal/payroll"
	"payroll-sync-backend/internal/repository"
)

type EmployeeHandler struct {
	store repository.Store
}

func NewEmployeeHandler(store repository.Store) *EmployeeHandler {
	return &EmployeeHandler{store: store}
}

// GetEmployees lists all employees with their last shift end time and
// trailing-7-day earnings.
func (h *EmployeeHandler) GetEmployees(c *gin.Context) {
	sevenDaysAgo := time.Now().UTC().AddDate(0, 0, -7)

	summaries, err := h.store.EmployeeSummaries(sevenDaysAgo)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, summaries)
}

// GetEmployeeShifts returns one employee's shifts, optionally limited to
// [from, to) on shift start, plus range totals.
func (h *EmployeeHandler) GetEmployeeShifts(c *gin.Context) {
	externalID := strings.TrimSpace(c.Param("externalId"))
	if externalID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid employee externalId"})
		return
	}

	from, ok := parseDateParam(c.Query("from"))
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid from date"})
		return
	}
	to, ok := parseDateParam(c.Query("to"))
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid to date"})
		return
	}
	if from != nil && to != nil && !to.After(*from) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "`to` must be after `from`"})
		return
	}

	employee, err := h.store.FindEmployeeByExternalID(externalID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "employee not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	shifts, err := h.store.ListShiftsForEmployee(externalID, from, to)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if shifts == nil {
		shifts = []models.Shift{}
	}

	c.JSON(http.StatusOK, gin.H{
		"employee": employee,
		"range":    gin.H{"from": from, "to": to},
		"shifts":   shifts,
		"totals":   payroll.Summarize(shifts),
	})
}

// parseDateParam accepts RFC 3339 or a bare date. Empty means not supplied.
func parseDateParam(v string) (*time.Time, bool) {
	if v == "" {
		return nil, true
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, v); err == nil {
			return &t, true
		}
	}
	return nil, false
}
