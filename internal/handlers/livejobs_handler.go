package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/meghannnnnnn/Resumex/internal/models"
	"github.com/meghannnnnnn/Resumex/internal/services"
)

type LiveJobsHandler struct {
	LiveJobs *services.LiveJobsService
	Tracker  *services.FetchTracker
}

func NewLiveJobsHandler(liveJobs *services.LiveJobsService, tracker *services.FetchTracker) *LiveJobsHandler {
	return &LiveJobsHandler{LiveJobs: liveJobs, Tracker: tracker}
}

// GetLiveJobs is the GET /live-jobs endpoint. Apart from the missing
// company parameter this always answers 200 with a populated list; the
// service absorbs every upstream failure into synthetic postings.
//
// The optional card parameter identifies which job card triggered the
// fetch, letting the tracker coalesce duplicate requests for the same card
// while separate cards fetch independently.
func (h *LiveJobsHandler) GetLiveJobs(c *gin.Context) {
	company := c.Query("company")
	if company == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Company parameter is required"})
		return
	}

	fetch := func() ([]models.LivePosting, error) {
		return h.LiveJobs.FetchPostings(c.Request.Context(), company)
	}

	var jobs []models.LivePosting
	var err error
	if card, ok := cardIndex(c.Query("card")); ok {
		jobs, err = h.Tracker.Fetch(card, fetch)
	} else {
		jobs, err = fetch()
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch jobs: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"jobs": jobs})
}

func cardIndex(raw string) (int, bool) {
	if raw == "" {
		return 0, false
	}
	idx, err := strconv.Atoi(raw)
	if err != nil || idx < 0 {
		return 0, false
	}
	return idx, true
}
