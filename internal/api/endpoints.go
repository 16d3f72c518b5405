package api

import (
	"context"
	"net/url"
	"strconv"

	"busline/internal/domain"
)

// ListBusesParams mirrors the /bus/all query contract. Zero-valued optional
// fields are omitted from the query string.
type ListBusesParams struct {
	Page       int
	PerPage    int
	SortBy     string
	SortOrder  string
	Keyword    string
	TravelDate string
}

func (p ListBusesParams) values() url.Values {
	q := url.Values{}
	q.Set("page", strconv.Itoa(p.Page))
	q.Set("perPage", strconv.Itoa(p.PerPage))
	if p.SortBy != "" {
		q.Set("sortBy", p.SortBy)
	}
	if p.SortOrder != "" {
		q.Set("sortOrder", p.SortOrder)
	}
	if p.Keyword != "" {
		q.Set("keyword", p.Keyword)
	}
	if p.TravelDate != "" {
		q.Set("travelDate", p.TravelDate)
	}
	return q
}

func (c *Client) ListBuses(ctx context.Context, p ListBusesParams) (*BusListResponse, error) {
	var out BusListResponse
	if err := c.get(ctx, "/bus/all", p.values(), &out); err != nil {
		return nil, err
	}
	if out.Meta.PerPage <= 0 {
		out.Meta.PerPage = p.PerPage
	}
	return &out, nil
}

func (c *Client) GetBus(ctx context.Context, id string) (*BusDetails, error) {
	var out BusDetails
	if err := c.get(ctx, "/bus/"+url.PathEscape(id), nil, &out); err != nil {
		return nil, err
	}
	if out.ID == "" {
		out.ID = id
	}
	return &out, nil
}

func (c *Client) CreateBooking(ctx context.Context, req CreateBookingRequest) (*CreateBookingResponse, error) {
	if req.Passengers == nil {
		req.Passengers = []string{}
	}
	var out CreateBookingResponse
	if err := c.post(ctx, "/bookings/create", req, &out); err != nil {
		return nil, err
	}
	if out.Booking.ID == "" {
		return nil, payloadError("booking create response missing booking id")
	}
	return &out, nil
}

func (c *Client) GetBooking(ctx context.Context, id string) (*domain.Booking, error) {
	var out domain.Booking
	if err := c.get(ctx, "/bookings/"+url.PathEscape(id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// BookingStatus hits the poll target; the response is the booking with its
// current paymentStatus.
func (c *Client) BookingStatus(ctx context.Context, id string) (*domain.Booking, error) {
	var out domain.Booking
	if err := c.get(ctx, "/bookings/"+url.PathEscape(id)+"/status", nil, &out); err != nil {
		return nil, err
	}
	if out.PaymentStatus == "" {
		return nil, payloadError("status response missing paymentStatus")
	}
	return &out, nil
}

type ListBookingsParams struct {
	Page    int
	PerPage int
	Keyword string
	Date    string
}

func (p ListBookingsParams) values() url.Values {
	q := url.Values{}
	q.Set("page", strconv.Itoa(p.Page))
	q.Set("perPage", strconv.Itoa(p.PerPage))
	if p.Keyword != "" {
		q.Set("keyword", p.Keyword)
	}
	if p.Date != "" {
		q.Set("date", p.Date)
	}
	return q
}

func (c *Client) ListBookings(ctx context.Context, p ListBookingsParams) (*BookingListResponse, error) {
	var out BookingListResponse
	if err := c.get(ctx, "/bookings/all", p.values(), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateBus(ctx context.Context, req CreateBusRequest) (*domain.BusRoute, error) {
	var out domain.BusRoute
	if err := c.post(ctx, "/bus/create", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateBuses(ctx context.Context, reqs []CreateBusRequest) ([]domain.BusRoute, error) {
	var out []domain.BusRoute
	if err := c.post(ctx, "/bus/create-multiple", reqs, &out); err != nil {
		return nil, err
	}
	return out, nil
}

