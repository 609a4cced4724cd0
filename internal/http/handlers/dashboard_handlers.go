package handlers

import (
	"net/http"
)

// GetDashboardOverviewHandler godoc
// @Summary Dashboard headline metrics
// @Description Today's revenue and orders, restock alert count, catalog size
// @Tags dashboard
// @Produce json
// @Success 200 {object} OverviewResponse
// @Failure 500 {string} string "Internal error"
// @Router /api/dashboard/overview [get]
func GetDashboardOverviewHandler(w http.ResponseWriter, r *http.Request) {
	// any cache error falls through to a fresh computation; a broken
	// cache must not take the dashboard down
	if redisService != nil {
		var cached OverviewResponse
		if err := redisService.GetJSON(overviewCacheKey, &cached); err == nil {
			writeJSON(w, http.StatusOK, cached)
			return
		}
	}

	dayStart, dayEnd := dayBounds()
	summary, err := svc.Overview(dayStart, dayEnd)
	if err != nil {
		http.Error(w, "could not compute overview", http.StatusInternalServerError)
		return
	}

	resp := toOverviewResponse(summary)
	if redisService != nil {
		_ = redisService.SetJSON(overviewCacheKey, resp, overviewCacheTTL)
	}
	writeJSON(w, http.StatusOK, resp)
}
