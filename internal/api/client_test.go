package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memTokenStore struct {
	token string
}

func (m *memTokenStore) Token() (string, error) { return m.token, nil }
func (m *memTokenStore) ClearToken() error      { m.token = ""; return nil }

// newTestClient takes the TokenStore interface, not the concrete mock, so
// a nil argument is a nil interface and the client's no-store guard holds.
func newTestClient(t *testing.T, handler http.HandlerFunc, tokens TokenStore) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL, 5*time.Second, tokens, nil), srv
}

func TestNoTokenStoreOmitsAuthHeader(t *testing.T) {
	var got string
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Get("Authorization")
		json.NewEncoder(w).Encode(map[string]string{"_id": "b"})
	}, nil)

	_, err := c.GetBus(context.Background(), "b")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestListBusesUnwrapsEnvelope(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/bus/all", r.URL.Path)
		assert.Equal(t, "2", r.URL.Query().Get("page"))
		assert.Equal(t, "travelDate", r.URL.Query().Get("sortBy"))
		json.NewEncoder(w).Encode(map[string]interface{}{
			"data": map[string]interface{}{
				"buses": []map[string]interface{}{{"_id": "b1", "routeName": "Express Morning Route", "price": 45}},
				"meta":  map[string]int{"total": 1, "currentPage": 2, "perPage": 10, "totalPages": 1},
			},
			"status": 200,
		})
	}, nil)

	out, err := c.ListBuses(context.Background(), ListBusesParams{Page: 2, PerPage: 10, SortBy: "travelDate", SortOrder: "asc"})
	require.NoError(t, err)
	require.Len(t, out.Buses, 1)
	assert.Equal(t, "b1", out.Buses[0].ID)
	assert.Equal(t, 45.0, out.Buses[0].Price)
	assert.Equal(t, 2, out.Meta.CurrentPage)
}

func TestBareBodyWithoutEnvelope(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{
			"_id":       "bus7",
			"routeName": "Night Liner",
			"bookings": []map[string]interface{}{
				{"_id": "k1", "selectedSeats": []int{3, 4}},
				{"_id": "k2", "selectedSeats": []int{11}},
			},
		})
	}, nil)

	out, err := c.GetBus(context.Background(), "bus7")
	require.NoError(t, err)
	assert.Equal(t, "Night Liner", out.RouteName)
	require.Len(t, out.Bookings, 2)
	assert.Equal(t, []int{3, 4}, out.Bookings[0].SelectedSeats)
}

func TestBookingListKeepsDataField(t *testing.T) {
	// /bookings/all really does use "data" for its group array; the decoder
	// must not mistake it for the generic envelope.
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{
			"data": []map[string]interface{}{
				{"date": "2026-08-30", "totalBookings": 2, "totalAmount": 90},
			},
			"meta": map[string]int{"total": 2, "groupedDays": 1},
		})
	}, nil)

	out, err := c.ListBookings(context.Background(), ListBookingsParams{Page: 1, PerPage: 10})
	require.NoError(t, err)
	require.Len(t, out.Groups, 1)
	assert.Equal(t, "2026-08-30", out.Groups[0].Date)
	assert.Equal(t, 2, out.Meta.Total)
}

func TestErrorMessageExtracted(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{"message": "seat already taken"})
	}, nil)

	_, err := c.GetBus(context.Background(), "x")
	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.Status)
	assert.Equal(t, "seat already taken", apiErr.Message)
}

func TestErrorWithoutBodyGetsGenericMessage(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}, nil)

	_, err := c.GetBus(context.Background(), "x")
	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "An error occurred", apiErr.Message)
}

func TestUnauthorizedClearsTokenAndFiresHook(t *testing.T) {
	tokens := &memTokenStore{token: "stale"}
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}, tokens)

	hookFired := false
	c.OnUnauthorized = func() { hookFired = true }

	_, err := c.GetBus(context.Background(), "x")
	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, CodeUnauthorized, apiErr.Code)
	assert.True(t, hookFired)
	assert.Empty(t, tokens.token)
}

func TestBearerTokenAttached(t *testing.T) {
	tokens := &memTokenStore{token: "tok-1"}
	var got string
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Get("Authorization")
		json.NewEncoder(w).Encode(map[string]string{"_id": "b"})
	}, tokens)

	_, err := c.GetBus(context.Background(), "b")
	require.NoError(t, err)
	assert.Equal(t, "Bearer tok-1", got)
}

func TestExpiredJWTNotAttached(t *testing.T) {
	claims := jwtlib.RegisteredClaims{ExpiresAt: jwtlib.NewNumericDate(time.Now().Add(-time.Hour))}
	signed, err := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, claims).SignedString([]byte("s"))
	require.NoError(t, err)

	tokens := &memTokenStore{token: signed}
	var got string
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Get("Authorization")
		json.NewEncoder(w).Encode(map[string]string{"_id": "b"})
	}, tokens)

	_, err = c.GetBus(context.Background(), "b")
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.Empty(t, tokens.token, "expired token should be cleared")
}

func TestNetworkFailureNormalized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on
	c := NewClient(srv.URL, time.Second, nil, nil)

	_, err := c.GetBus(context.Background(), "b")
	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, CodeNetwork, apiErr.Code)
}

func TestGetBookingUnwrapsEnvelope(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/bookings/bk-7", r.URL.Path)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"data": map[string]interface{}{
				"_id":           "bk-7",
				"bookerName":    "John Doe",
				"selectedSeats": []int{11, 12},
				"paymentStatus": "completed",
			},
			"status": 200,
		})
	}, nil)

	out, err := c.GetBooking(context.Background(), "bk-7")
	require.NoError(t, err)
	assert.Equal(t, "John Doe", out.BookerName)
	assert.Equal(t, []int{11, 12}, out.SelectedSeats)
}

func TestCreateBusRoundTrip(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/bus/create", r.URL.Path)
		var req CreateBusRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		json.NewEncoder(w).Encode(map[string]interface{}{
			"_id":       "new-1",
			"routeName": req.RouteName,
			"price":     req.Price,
		})
	}, nil)

	out, err := c.CreateBus(context.Background(), CreateBusRequest{RouteName: "City Hopper", Price: 25})
	require.NoError(t, err)
	assert.Equal(t, "new-1", out.ID)
	assert.Equal(t, "City Hopper", out.RouteName)
	assert.Equal(t, 25.0, out.Price)
}

func TestCreateBusesSendsArrayPayload(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/bus/create-multiple", r.URL.Path)
		var reqs []CreateBusRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&reqs))
		require.Len(t, reqs, 2)
		json.NewEncoder(w).Encode([]map[string]interface{}{
			{"_id": "m1", "routeName": reqs[0].RouteName},
			{"_id": "m2", "routeName": reqs[1].RouteName},
		})
	}, nil)

	out, err := c.CreateBuses(context.Background(), []CreateBusRequest{
		{RouteName: "Night Liner"},
		{RouteName: "Business Express"},
	})
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, "m2", out[1].ID)
}

func TestCreateBookingRejectsMissingID(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		var req CreateBookingRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.NotNil(t, req.Passengers)
		json.NewEncoder(w).Encode(map[string]interface{}{"payment": map[string]string{"redirectUrl": "u"}})
	}, nil)

	_, err := c.CreateBooking(context.Background(), CreateBookingRequest{BusID: "b1", SeatsBooked: 1})
	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, CodeBadPayload, apiErr.Code)
}
