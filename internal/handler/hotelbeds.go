package handler

import (
	"net/http"
	"strings"
	"time"

	"github.com/maku-travel/inventory/internal/activities"
	"github.com/maku-travel/inventory/internal/middleware"
	"github.com/maku-travel/inventory/internal/transfers"
)

// Query parameter defaults for the Hotelbeds activity and transfer routes.
const (
	defaultActivityDestination = "BCN"
	defaultActivityLanguage    = "en"

	defaultTransferFrom = "MAD"
	defaultTransferTo   = "madrid"
	defaultTransferType = "PRIVATE"
	defaultTransferPax  = 2
)

// SourceError marks a response built from fallback data after an internal
// failure, as opposed to a deliberate fallback substitution.
const SourceError = "fallback_error"

// HotelbedsMeta is the metadata block shared by the activity and transfer
// envelopes.
type HotelbedsMeta struct {
	Count        int    `json:"count"`
	Source       string `json:"source"`
	SearchParams any    `json:"searchParams,omitempty"`
	Provider     string `json:"provider"`
}

// ActivitiesResponse is the activity search envelope.
type ActivitiesResponse struct {
	Meta        HotelbedsMeta         `json:"meta"`
	Data        []activities.Activity `json:"data"`
	LastUpdated time.Time             `json:"lastUpdated"`
	Error       string                `json:"error,omitempty"`
}

// TransfersResponse is the transfer search envelope.
type TransfersResponse struct {
	Meta        HotelbedsMeta        `json:"meta"`
	Data        []transfers.Transfer `json:"data"`
	LastUpdated time.Time            `json:"lastUpdated"`
	Error       string               `json:"error,omitempty"`
}

// ActivitiesHandler handles GET /api/hotelbeds/activities.
func (h *Handler) ActivitiesHandler(w http.ResponseWriter, r *http.Request) {
	h.metrics.IncRequests()
	requestID := middleware.RequestID(r.Context())

	ip := ExtractIP(r)
	if !h.rateLimiter.Allow(ip) {
		h.logger.Warn("rate limit exceeded", "request_id", requestID, "ip", ip)
		writeError(w, http.StatusTooManyRequests, "rate limit exceeded")
		return
	}

	query := ParseActivityQuery(r, time.Now())

	result, err := h.activities.Search(r.Context(), query)
	if err != nil {
		h.logger.Error("activities search failed", "request_id", requestID, "error", err)
		fallback := activities.FallbackActivities(time.Now().UTC())
		writeJSON(w, h.logger, http.StatusOK, ActivitiesResponse{
			Meta: HotelbedsMeta{
				Count:    len(fallback),
				Source:   SourceError,
				Provider: "hotelbeds_activities",
			},
			Data:        fallback,
			LastUpdated: time.Now().UTC(),
			Error:       err.Error(),
		})
		return
	}

	writeJSON(w, h.logger, http.StatusOK, ActivitiesResponse{
		Meta: HotelbedsMeta{
			Count:        len(result.Activities),
			Source:       result.Source,
			SearchParams: query,
			Provider:     "hotelbeds_activities",
		},
		Data:        result.Activities,
		LastUpdated: time.Now().UTC(),
	})
}

// TransfersHandler handles GET /api/hotelbeds/transfers.
func (h *Handler) TransfersHandler(w http.ResponseWriter, r *http.Request) {
	h.metrics.IncRequests()
	requestID := middleware.RequestID(r.Context())

	ip := ExtractIP(r)
	if !h.rateLimiter.Allow(ip) {
		h.logger.Warn("rate limit exceeded", "request_id", requestID, "ip", ip)
		writeError(w, http.StatusTooManyRequests, "rate limit exceeded")
		return
	}

	query := ParseTransferQuery(r)

	result, err := h.transfers.Search(r.Context(), query)
	if err != nil {
		h.logger.Error("transfers search failed", "request_id", requestID, "error", err)
		fallback := transfers.FallbackTransfers(time.Now().UTC())
		writeJSON(w, h.logger, http.StatusOK, TransfersResponse{
			Meta: HotelbedsMeta{
				Count:    len(fallback),
				Source:   SourceError,
				Provider: "hotelbeds_transfers",
			},
			Data:        fallback,
			LastUpdated: time.Now().UTC(),
			Error:       err.Error(),
		})
		return
	}

	writeJSON(w, h.logger, http.StatusOK, TransfersResponse{
		Meta: HotelbedsMeta{
			Count:        len(result.Transfers),
			Source:       result.Source,
			SearchParams: query,
			Provider:     "hotelbeds_transfers",
		},
		Data:        result.Transfers,
		LastUpdated: time.Now().UTC(),
	})
}

// ParseActivityQuery parses activity search parameters. Absent dates default
// to the same one-week-out window the hotel search uses; the content API is
// not date-scoped so they only shape response metadata.
func ParseActivityQuery(r *http.Request, now time.Time) activities.Query {
	query := r.URL.Query()

	destination := strings.TrimSpace(query.Get("destination"))
	if destination == "" {
		destination = defaultActivityDestination
	}
	language := strings.TrimSpace(query.Get("language"))
	if language == "" {
		language = defaultActivityLanguage
	}
	dateFrom := strings.TrimSpace(query.Get("dateFrom"))
	if dateFrom == "" {
		dateFrom = now.AddDate(0, 0, defaultCheckInDays).Format(dateLayout)
	}
	dateTo := strings.TrimSpace(query.Get("dateTo"))
	if dateTo == "" {
		dateTo = now.AddDate(0, 0, defaultCheckOutDays).Format(dateLayout)
	}

	return activities.Query{
		Destination: destination,
		Language:    language,
		DateFrom:    dateFrom,
		DateTo:      dateTo,
		PetFriendly: query.Get("petFriendly") == "true",
	}
}

// ParseTransferQuery parses transfer search parameters.
func ParseTransferQuery(r *http.Request) transfers.Query {
	query := r.URL.Query()

	from := strings.TrimSpace(query.Get("from"))
	if from == "" {
		from = defaultTransferFrom
	}
	to := strings.TrimSpace(query.Get("to"))
	if to == "" {
		to = defaultTransferTo
	}
	transferType := strings.TrimSpace(query.Get("type"))
	if transferType == "" {
		transferType = defaultTransferType
	}

	return transfers.Query{
		From:         from,
		To:           to,
		TransferType: transferType,
		Pax:          positiveInt(query.Get("pax"), defaultTransferPax),
		PetFriendly:  query.Get("petFriendly") == "true",
	}
}
