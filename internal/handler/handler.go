package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/maku-travel/inventory/internal/activities"
	"github.com/maku-travel/inventory/internal/middleware"
	"github.com/maku-travel/inventory/internal/obs"
	"github.com/maku-travel/inventory/internal/payments"
	"github.com/maku-travel/inventory/internal/search"
	"github.com/maku-travel/inventory/internal/search/cache"
	"github.com/maku-travel/inventory/internal/search/ratelimit"
	"github.com/maku-travel/inventory/internal/search/types"
	"github.com/maku-travel/inventory/internal/transfers"
)

// Documented query parameter defaults. Dates are computed from the wall
// clock at parse time, not passed through verbatim.
const (
	defaultDestination  = "MAD"
	defaultCheckInDays  = 7
	defaultCheckOutDays = 9
	defaultAdults       = 2
	defaultChildren     = 0
	defaultRooms        = 1

	dateLayout = "2006-01-02"
)

var searchProviders = []string{types.ProviderAmadeus, types.ProviderHotelbeds}

// Handler handles HTTP requests.
type Handler struct {
	aggregator  *search.Aggregator
	activities  *activities.Service
	transfers   *transfers.Service
	cache       *cache.Cache
	rateLimiter *ratelimit.Limiter
	payments    *payments.Client
	metrics     *obs.Metrics
	logger      *slog.Logger
}

// New creates a new Handler.
func New(
	aggregator *search.Aggregator,
	activitiesService *activities.Service,
	transfersService *transfers.Service,
	searchCache *cache.Cache,
	rateLimiter *ratelimit.Limiter,
	paymentsClient *payments.Client,
	metrics *obs.Metrics,
	logger *slog.Logger,
) *Handler {
	return &Handler{
		aggregator:  aggregator,
		activities:  activitiesService,
		transfers:   transfersService,
		cache:       searchCache,
		rateLimiter: rateLimiter,
		payments:    paymentsClient,
		metrics:     metrics,
		logger:      logger,
	}
}

// Meta is the metadata block of a unified search response.
type Meta struct {
	SearchParams types.SearchQuery `json:"searchParams"`
	Stats        types.Stats       `json:"stats"`
	Providers    []string          `json:"providers"`
	Source       string            `json:"source,omitempty"`
	LastUpdated  time.Time         `json:"lastUpdated"`
}

// SearchResponse is the unified search envelope. On internal failure the
// same shape is returned with empty data and the error fields set, so
// clients degrade gracefully.
type SearchResponse struct {
	Meta       Meta          `json:"meta"`
	Data       []types.Hotel `json:"data"`
	TotalCount int           `json:"totalCount"`
	Error      string        `json:"error,omitempty"`
	Message    string        `json:"message,omitempty"`
}

// UnifiedSearchHandler handles GET /api/search/unified.
func (h *Handler) UnifiedSearchHandler(w http.ResponseWriter, r *http.Request) {
	h.metrics.IncRequests()
	requestID := middleware.RequestID(r.Context())

	ip := ExtractIP(r)
	if !h.rateLimiter.Allow(ip) {
		h.logger.Warn("rate limit exceeded", "request_id", requestID, "ip", ip)
		writeError(w, http.StatusTooManyRequests, "rate limit exceeded")
		return
	}

	query := ParseSearchQuery(r, time.Now())

	result, cacheHit, err := h.cache.GetOrFetch(r.Context(), h.cache.Key(query), func() (*types.Result, error) {
		return h.aggregator.Search(r.Context(), query)
	})
	if err != nil {
		h.logger.Error("unified search failed",
			"request_id", requestID,
			"destination", query.Destination,
			"error", err,
		)
		h.writeDegraded(w, query, err)
		return
	}
	if cacheHit {
		h.metrics.IncCacheHits()
	}

	writeJSON(w, h.logger, http.StatusOK, SearchResponse{
		Meta: Meta{
			SearchParams: query,
			Stats:        result.Stats,
			Providers:    searchProviders,
			Source:       result.Source,
			LastUpdated:  time.Now().UTC(),
		},
		Data:       result.Hotels,
		TotalCount: len(result.Hotels),
	})
}

// InventoryMetadata is the metadata block of a live inventory response.
type InventoryMetadata struct {
	SearchParams      types.SearchQuery    `json:"searchParams"`
	TotalHotels       int                  `json:"totalHotels"`
	PetFriendlyCount  int                  `json:"petFriendlyCount"`
	ProviderBreakdown types.ProviderCounts `json:"providerBreakdown"`
	AveragePrice      float64              `json:"averagePrice"`
	PriceRange        types.PriceRange     `json:"priceRange"`
}

// InventoryResponse is the live inventory envelope, hotels plus derived
// scarcity alerts.
type InventoryResponse struct {
	Hotels      []types.Hotel     `json:"hotels"`
	Alerts      []types.Alert     `json:"alerts"`
	Source      string            `json:"source"`
	LastUpdated time.Time         `json:"lastUpdated"`
	Metadata    InventoryMetadata `json:"metadata"`
	Error       string            `json:"error,omitempty"`
}

// LiveInventoryHandler handles GET /api/inventory/live.
func (h *Handler) LiveInventoryHandler(w http.ResponseWriter, r *http.Request) {
	h.metrics.IncRequests()
	requestID := middleware.RequestID(r.Context())

	ip := ExtractIP(r)
	if !h.rateLimiter.Allow(ip) {
		h.logger.Warn("rate limit exceeded", "request_id", requestID, "ip", ip)
		writeError(w, http.StatusTooManyRequests, "rate limit exceeded")
		return
	}

	query := ParseSearchQuery(r, time.Now())

	result, cacheHit, err := h.cache.GetOrFetch(r.Context(), h.cache.Key(query), func() (*types.Result, error) {
		return h.aggregator.Search(r.Context(), query)
	})
	if err != nil {
		h.logger.Error("live inventory failed", "request_id", requestID, "error", err)
		writeJSON(w, h.logger, http.StatusInternalServerError, InventoryResponse{
			Hotels:      []types.Hotel{},
			Alerts:      []types.Alert{},
			Source:      types.SourceFallback,
			LastUpdated: time.Now().UTC(),
			Metadata:    InventoryMetadata{SearchParams: query},
			Error:       "failed to fetch real-time inventory",
		})
		return
	}
	if cacheHit {
		h.metrics.IncCacheHits()
	}

	now := time.Now().UTC()
	writeJSON(w, h.logger, http.StatusOK, InventoryResponse{
		Hotels:      result.Hotels,
		Alerts:      search.BuildAlerts(result.Hotels, now),
		Source:      result.Source,
		LastUpdated: now,
		Metadata: InventoryMetadata{
			SearchParams:      query,
			TotalHotels:       result.Stats.TotalHotels,
			PetFriendlyCount:  result.Stats.PetFriendlyCount,
			ProviderBreakdown: result.Stats.Providers,
			AveragePrice:      result.Stats.AveragePrice,
			PriceRange:        result.Stats.PriceRange,
		},
	})
}

// BookingRequest is the booking endpoint's request body.
type BookingRequest struct {
	HotelID    string      `json:"hotelId"`
	GuestName  string      `json:"guestName"`
	PetDetails *PetDetails `json:"petDetails"`
}

// PetDetails describes the guest's pet on a booking.
type PetDetails struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

// BookingResponse is the canned booking confirmation.
type BookingResponse struct {
	BookingID  string     `json:"bookingId"`
	Status     string     `json:"status"`
	HotelID    string     `json:"hotelId"`
	GuestName  string     `json:"guestName"`
	PetDetails PetDetails `json:"petDetails"`
}

// BookingHandler handles POST /api/hotels/booking. Bookings are not actually
// completed; the endpoint returns a static confirmation.
func (h *Handler) BookingHandler(w http.ResponseWriter, r *http.Request) {
	h.metrics.IncRequests()

	var req BookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.HotelID == "" {
		req.HotelID = "ACPAR419"
	}
	if req.GuestName == "" {
		req.GuestName = "John Doe"
	}
	pet := PetDetails{Name: "Buddy", Type: "dog"}
	if req.PetDetails != nil {
		pet = *req.PetDetails
	}

	writeJSON(w, h.logger, http.StatusOK, BookingResponse{
		BookingID:  "BOOKING123",
		Status:     "confirmed",
		HotelID:    req.HotelID,
		GuestName:  req.GuestName,
		PetDetails: pet,
	})
}

// RatingsHandler handles GET /api/hotels/ratings with a canned sentiment
// payload.
func (h *Handler) RatingsHandler(w http.ResponseWriter, r *http.Request) {
	h.metrics.IncRequests()

	writeJSON(w, h.logger, http.StatusOK, map[string]any{
		"data": map[string]any{
			"hotelId":       "TELONMFS",
			"overallRating": 81,
			"sentiments": map[string]int{
				"staff":         80,
				"location":      89,
				"service":       80,
				"roomComforts":  87,
				"valueForMoney": 75,
			},
		},
	})
}

// PaymentIntentRequest is the payment endpoint's request body. Amount is in
// major currency units.
type PaymentIntentRequest struct {
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
}

// PaymentIntentHandler handles POST /api/payments/intent.
func (h *Handler) PaymentIntentHandler(w http.ResponseWriter, r *http.Request) {
	h.metrics.IncRequests()
	requestID := middleware.RequestID(r.Context())

	var req PaymentIntentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Amount <= 0 {
		writeError(w, http.StatusBadRequest, "amount must be positive")
		return
	}

	intent, err := h.payments.CreateIntent(r.Context(), req.Amount, req.Currency)
	if err != nil {
		if errors.Is(err, payments.ErrNotConfigured) {
			writeError(w, http.StatusServiceUnavailable, "payment processor not configured")
			return
		}
		h.logger.Error("payment intent failed", "request_id", requestID, "error", err)
		writeError(w, http.StatusBadGateway, "payment processor error")
		return
	}

	h.metrics.IncPaymentIntents()
	writeJSON(w, h.logger, http.StatusOK, intent)
}

// ParseSearchQuery parses search parameters from the request. Every
// parameter is optional; absent or unparseable values take the documented
// defaults, and unparseable filter values are treated as absent.
func ParseSearchQuery(r *http.Request, now time.Time) types.SearchQuery {
	query := r.URL.Query()

	destination := strings.TrimSpace(query.Get("destination"))
	if destination == "" {
		destination = defaultDestination
	}

	checkIn := strings.TrimSpace(query.Get("checkIn"))
	if checkIn == "" {
		checkIn = now.AddDate(0, 0, defaultCheckInDays).Format(dateLayout)
	}
	checkOut := strings.TrimSpace(query.Get("checkOut"))
	if checkOut == "" {
		checkOut = now.AddDate(0, 0, defaultCheckOutDays).Format(dateLayout)
	}

	q := types.SearchQuery{
		Destination: destination,
		CheckIn:     checkIn,
		CheckOut:    checkOut,
		Adults:      positiveInt(query.Get("adults"), defaultAdults),
		Children:    nonNegativeInt(query.Get("children"), defaultChildren),
		Rooms:       positiveInt(query.Get("rooms"), defaultRooms),
		PetFriendly: query.Get("petFriendly") == "true",
	}

	if v, err := strconv.ParseFloat(query.Get("maxPrice"), 64); err == nil && v > 0 {
		q.MaxPrice = &v
	}
	if v, err := strconv.ParseFloat(query.Get("minRating"), 64); err == nil && v > 0 {
		q.MinRating = &v
	}

	return q
}

func positiveInt(s string, defaultValue int) int {
	if n, err := strconv.Atoi(s); err == nil && n > 0 {
		return n
	}
	return defaultValue
}

func nonNegativeInt(s string, defaultValue int) int {
	if n, err := strconv.Atoi(s); err == nil && n >= 0 {
		return n
	}
	return defaultValue
}

// writeDegraded sends the 500 envelope: same shape as a success response,
// empty data, error fields set.
func (h *Handler) writeDegraded(w http.ResponseWriter, query types.SearchQuery, err error) {
	writeJSON(w, h.logger, http.StatusInternalServerError, SearchResponse{
		Meta: Meta{
			SearchParams: query,
			Providers:    searchProviders,
			LastUpdated:  time.Now().UTC(),
		},
		Data:       []types.Hotel{},
		TotalCount: 0,
		Error:      "failed to perform unified search",
		Message:    err.Error(),
	})
}

// ExtractIP extracts the client IP from the request.
// Checks X-Forwarded-For, X-Real-IP, then falls back to RemoteAddr.
func ExtractIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		ips := strings.Split(xff, ",")
		if len(ips) > 0 {
			return strings.TrimSpace(ips[0])
		}
	}

	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return strings.TrimSpace(xri)
	}

	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return ip
}

func writeJSON(w http.ResponseWriter, logger *slog.Logger, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		// Status is already written; nothing left to do but log.
		logger.Error("failed to encode response", "error", err)
	}
}

// writeError writes a JSON error response.
func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": message})
}
