package routes_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"

	"grand-azure-hotel/config"
	"grand-azure-hotel/controllers"
	"grand-azure-hotel/metrics"
	"grand-azure-hotel/routes"
	"grand-azure-hotel/services"
	"grand-azure-hotel/storage"
	"grand-azure-hotel/utils"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := storage.NewMemoryStore()
	reg := prometheus.NewRegistry()
	m := metrics.NewMetrics("hotel", reg)

	roomSvc := services.NewRoomService(store, nil)
	availabilitySvc := services.NewAvailabilityService(store, m)
	bookingSvc := services.NewBookingService(store, roomSvc, availabilitySvc, m, utils.NewMailer(utils.SMTPConfig{}), true)

	if err := config.SeedDatabase(context.Background(), store, availabilitySvc, config.SeedOptions{WindowDays: 60}); err != nil {
		t.Fatalf("seed: %v", err)
	}

	return routes.SetupRouter(
		routes.Options{CorsOrigins: []string{"*"}, Metrics: m, Gatherer: reg, Health: store},
		routes.Handlers{
			Rooms:        controllers.NewRoomController(roomSvc, availabilitySvc),
			Availability: controllers.NewAvailabilityController(availabilitySvc),
			Bookings:     controllers.NewBookingController(bookingSvc),
			Inquiries:    controllers.NewInquiryController(services.NewInquiryService(store)),
			Content:      controllers.NewContentController(services.NewContentService(store)),
		},
	)
}

func doJSON(r http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), v); err != nil {
		t.Fatalf("decode %q: %v", w.Body.String(), err)
	}
}

type errorEnvelope struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func stayDates(offset, nights int) (string, string) {
	in := utils.Today().AddDate(0, 0, offset)
	return utils.FormatDate(in), utils.FormatDate(in.AddDate(0, 0, nights))
}

func TestBookingFlow(t *testing.T) {
	r := newTestRouter(t)
	checkIn, checkOut := stayDates(10, 3)
	availabilityURL := fmt.Sprintf("/api/rooms/1/availability?checkIn=%s&checkOut=%s", checkIn, checkOut)

	w := doJSON(r, http.MethodGet, availabilityURL, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("availability: %d %s", w.Code, w.Body.String())
	}
	var avail struct {
		IsAvailable bool `json:"isAvailable"`
	}
	decode(t, w, &avail)
	if !avail.IsAvailable {
		t.Fatal("room 1 should be available before booking")
	}

	w = doJSON(r, http.MethodPost, "/api/bookings", map[string]interface{}{
		"roomId":         1,
		"guestName":      "Jane Doe",
		"guestEmail":     "jane@example.com",
		"guestPhone":     "+1 555 0100",
		"checkInDate":    checkIn,
		"checkOutDate":   checkOut,
		"numberOfGuests": 2,
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("create booking: %d %s", w.Code, w.Body.String())
	}
	var booking struct {
		ID         uint   `json:"id"`
		TotalPrice int    `json:"totalPrice"`
		Status     string `json:"status"`
	}
	decode(t, w, &booking)
	if booking.TotalPrice != 47700 {
		t.Errorf("totalPrice = %d, want 47700", booking.TotalPrice)
	}
	if booking.Status != "confirmed" {
		t.Errorf("status = %s, want confirmed", booking.Status)
	}

	w = doJSON(r, http.MethodGet, availabilityURL, nil)
	decode(t, w, &avail)
	if avail.IsAvailable {
		t.Fatal("room 1 should be unavailable after booking")
	}

	// A second guest asking for an overlapping stay is turned away.
	w = doJSON(r, http.MethodPost, "/api/bookings", map[string]interface{}{
		"roomId": 1, "guestName": "Joe", "guestEmail": "joe@example.com", "guestPhone": "1",
		"checkInDate": checkIn, "checkOutDate": checkOut, "numberOfGuests": 1,
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("overlap: expected 400, got %d", w.Code)
	}
	var env errorEnvelope
	decode(t, w, &env)
	if env.Error.Code != "error.roomUnavailable" {
		t.Errorf("code = %s, want error.roomUnavailable", env.Error.Code)
	}

	w = doJSON(r, http.MethodGet, fmt.Sprintf("/api/bookings/%d", booking.ID), nil)
	if w.Code != http.StatusOK {
		t.Fatalf("get booking: %d", w.Code)
	}

	w = doJSON(r, http.MethodPatch, fmt.Sprintf("/api/bookings/%d/status", booking.ID), map[string]string{"status": "cancelled"})
	if w.Code != http.StatusOK {
		t.Fatalf("cancel: %d %s", w.Code, w.Body.String())
	}

	w = doJSON(r, http.MethodGet, availabilityURL, nil)
	decode(t, w, &avail)
	if !avail.IsAvailable {
		t.Fatal("cancelled nights should be free again")
	}

	w = doJSON(r, http.MethodPatch, fmt.Sprintf("/api/bookings/%d/status", booking.ID), map[string]string{"status": "completed"})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("cancelled -> completed: expected 400, got %d", w.Code)
	}
	decode(t, w, &env)
	if env.Error.Code != "error.invalidTransition" {
		t.Errorf("code = %s, want error.invalidTransition", env.Error.Code)
	}

	w = doJSON(r, http.MethodGet, "/metrics", nil)
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), "hotel_bookings_created_total 1") {
		t.Errorf("metrics missing booking counter: %d", w.Code)
	}
}

func TestErrorResponses(t *testing.T) {
	r := newTestRouter(t)
	checkIn, checkOut := stayDates(5, 2)

	tests := []struct {
		name   string
		method string
		path   string
		body   interface{}
		status int
		code   string
	}{
		{"bad room id", http.MethodGet, "/api/rooms/abc", nil, http.StatusBadRequest, "error.invalidId"},
		{"unknown room", http.MethodGet, "/api/rooms/99", nil, http.StatusNotFound, "error.roomNotFound"},
		{"missing dates", http.MethodGet, "/api/rooms/1/availability", nil, http.StatusBadRequest, "error.missingDates"},
		{"reversed dates", http.MethodGet, fmt.Sprintf("/api/rooms/1/availability?checkIn=%s&checkOut=%s", checkOut, checkIn), nil, http.StatusBadRequest, "error.invalidDateRange"},
		{"availability unknown room", http.MethodGet, fmt.Sprintf("/api/rooms/99/availability?checkIn=%s&checkOut=%s", checkIn, checkOut), nil, http.StatusNotFound, "error.roomNotFound"},
		{"unknown booking", http.MethodGet, "/api/bookings/12345", nil, http.StatusNotFound, "error.bookingNotFound"},
		{"bad status", http.MethodPatch, "/api/bookings/1/status", map[string]string{"status": "pending"}, http.StatusBadRequest, "error.invalidPayload"},
		{"status unknown booking", http.MethodPatch, "/api/bookings/77/status", map[string]string{"status": "cancelled"}, http.StatusNotFound, "error.bookingNotFound"},
		{"unknown user", http.MethodGet, "/api/users/42/bookings", nil, http.StatusNotFound, "error.userNotFound"},
		{"unknown ledger entry", http.MethodPatch, "/api/availability/999999", map[string]bool{"isAvailable": false}, http.StatusNotFound, "error.availabilityNotFound"},
		{"booking missing fields", http.MethodPost, "/api/bookings", map[string]interface{}{"roomId": 1}, http.StatusBadRequest, "error.invalidPayload"},
		{"booking over capacity", http.MethodPost, "/api/bookings", map[string]interface{}{
			"roomId": 1, "guestName": "Big Family", "guestEmail": "fam@example.com", "guestPhone": "1",
			"checkInDate": checkIn, "checkOutDate": checkOut, "numberOfGuests": 6,
		}, http.StatusBadRequest, "error.capacityExceeded"},
		{"booking unknown room", http.MethodPost, "/api/bookings", map[string]interface{}{
			"roomId": 99, "guestName": "A", "guestEmail": "a@example.com", "guestPhone": "1",
			"checkInDate": checkIn, "checkOutDate": checkOut, "numberOfGuests": 1,
		}, http.StatusNotFound, "error.roomNotFound"},
		{"booking same-day", http.MethodPost, "/api/bookings", map[string]interface{}{
			"roomId": 1, "guestName": "A", "guestEmail": "a@example.com", "guestPhone": "1",
			"checkInDate": checkIn, "checkOutDate": checkIn, "numberOfGuests": 1,
		}, http.StatusBadRequest, "error.invalidDateRange"},
		{"reversed dates with missing fields", http.MethodPost, "/api/bookings", map[string]interface{}{
			"roomId": 1, "checkInDate": checkOut, "checkOutDate": checkIn, "numberOfGuests": 0,
		}, http.StatusBadRequest, "error.invalidDateRange"},
		{"stay over a year", http.MethodPost, "/api/bookings", map[string]interface{}{
			"roomId": 1, "guestName": "A", "guestEmail": "a@example.com", "guestPhone": "1",
			"checkInDate": "0001-01-01", "checkOutDate": "9999-12-31", "numberOfGuests": 1,
		}, http.StatusBadRequest, "error.invalidDateRange"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := doJSON(r, tc.method, tc.path, tc.body)
			if w.Code != tc.status {
				t.Fatalf("status = %d, want %d (%s)", w.Code, tc.status, w.Body.String())
			}
			var env errorEnvelope
			decode(t, w, &env)
			if env.Error.Code != tc.code {
				t.Errorf("code = %q, want %q", env.Error.Code, tc.code)
			}
		})
	}
}

func TestLedgerAndCalendar(t *testing.T) {
	r := newTestRouter(t)
	from, to := stayDates(0, 6)

	w := doJSON(r, http.MethodGet, fmt.Sprintf("/api/rooms/2/availability-entries?startDate=%s&endDate=%s", from, to), nil)
	if w.Code != http.StatusOK {
		t.Fatalf("entries: %d %s", w.Code, w.Body.String())
	}
	var entries []struct {
		ID            uint   `json:"id"`
		Date          string `json:"date"`
		IsAvailable   bool   `json:"isAvailable"`
		PricePerNight *int   `json:"pricePerNight"`
	}
	decode(t, w, &entries)
	if len(entries) != 7 {
		t.Fatalf("expected 7 inclusive entries, got %d", len(entries))
	}
	if entries[0].PricePerNight == nil || *entries[0].PricePerNight != 229 {
		t.Errorf("override should equal the Deluxe room price")
	}

	w = doJSON(r, http.MethodPatch, fmt.Sprintf("/api/availability/%d", entries[2].ID), map[string]bool{"isAvailable": false})
	if w.Code != http.StatusOK {
		t.Fatalf("close date: %d %s", w.Code, w.Body.String())
	}

	w = doJSON(r, http.MethodGet, fmt.Sprintf("/api/rooms/2/availability?checkIn=%s&checkOut=%s", entries[1].Date, entries[4].Date), nil)
	var avail struct {
		IsAvailable bool `json:"isAvailable"`
	}
	decode(t, w, &avail)
	if avail.IsAvailable {
		t.Error("a closed ledger date must make the range unavailable")
	}

	w = doJSON(r, http.MethodGet, fmt.Sprintf("/api/rooms/2/calendar?from=%s&to=%s", from, to), nil)
	if w.Code != http.StatusOK {
		t.Fatalf("calendar: %d", w.Code)
	}
	var cal struct {
		RoomID        uint          `json:"roomId"`
		Entries       []interface{} `json:"entries"`
		ReservedDates []string      `json:"reservedDates"`
	}
	decode(t, w, &cal)
	if cal.RoomID != 2 || len(cal.Entries) != 7 || len(cal.ReservedDates) != 0 {
		t.Errorf("unexpected calendar %+v", cal)
	}
}

func TestCatalogContentAndForms(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(r, http.MethodGet, "/api/rooms", nil)
	var rooms []struct {
		ID        uint     `json:"id"`
		Name      string   `json:"name"`
		Price     int      `json:"price"`
		Amenities []string `json:"amenities"`
	}
	decode(t, w, &rooms)
	if len(rooms) != 3 || rooms[0].Price != 159 || len(rooms[0].Amenities) == 0 {
		t.Fatalf("unexpected rooms %+v", rooms)
	}

	for path, want := range map[string]int{"/api/gallery": 9, "/api/amenities": 6, "/api/testimonials": 3} {
		w = doJSON(r, http.MethodGet, path, nil)
		var list []interface{}
		decode(t, w, &list)
		if len(list) != want {
			t.Errorf("%s: got %d items, want %d", path, len(list), want)
		}
	}

	w = doJSON(r, http.MethodGet, "/api/hotel", nil)
	var hotel struct {
		Hotel struct {
			Name string `json:"name"`
		} `json:"hotel"`
	}
	decode(t, w, &hotel)
	if hotel.Hotel.Name != "Grand Azure Hotel" {
		t.Errorf("hotel name = %q", hotel.Hotel.Name)
	}

	checkIn, checkOut := stayDates(20, 2)
	w = doJSON(r, http.MethodPost, "/api/booking-inquiries", map[string]interface{}{
		"name": "Ann", "email": "ann@example.com", "checkInDate": checkIn, "checkOutDate": checkOut,
		"guests": 2, "roomType": "Deluxe Room",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("inquiry: %d %s", w.Code, w.Body.String())
	}

	w = doJSON(r, http.MethodPost, "/api/contact", map[string]interface{}{
		"name": "Bo", "email": "not-an-email", "subject": "Hi", "message": "Hello",
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("contact with bad email: expected 400, got %d", w.Code)
	}
	var env struct {
		Error struct {
			Details map[string]string `json:"details"`
		} `json:"error"`
	}
	decode(t, w, &env)
	if _, ok := env.Error.Details["email"]; !ok {
		t.Errorf("details should name the email field: %+v", env.Error.Details)
	}

	w = doJSON(r, http.MethodGet, "/health", nil)
	if w.Code != http.StatusOK {
		t.Errorf("health: %d", w.Code)
	}
	if w.Header().Get("X-Request-ID") == "" {
		t.Error("responses should carry X-Request-ID")
	}
}
