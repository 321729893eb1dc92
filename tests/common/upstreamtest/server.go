//go:build unit || e2e

// Package upstreamtest runs an in-memory calendar backend for tests.
package upstreamtest

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"hoster-calendar/internal/infra/wire"

	"github.com/gin-gonic/gin"
)

const idempotencyHeader = "Idempotency-Key"

type dayKey struct {
	listingID string
	date      string
}

// Server answers the backend's calendar and reservation routes from memory.
// Zero value is not usable; call New.
type Server struct {
	srv *httptest.Server

	mu             sync.Mutex
	listings       []wire.Listing
	reservations   []wire.Reservation
	blocked        map[dayKey]bool
	channelResults []wire.ChannelResult
	failStatus     int
	hold           chan struct{}
	entered        chan struct{}
	blockCalls     []BlockCall
	calendarCalls  int
	decisions      map[string]string
}

type BlockCall struct {
	Request        wire.BlockRequest
	IdempotencyKey string
}

func New(t *testing.T) *Server {
	t.Helper()
	gin.SetMode(gin.TestMode)

	s := &Server{}
	s.Reset()

	engine := gin.New()
	engine.GET("/api/calendar", s.getCalendar)
	engine.POST("/api/calendar/block", s.postBlock)
	engine.POST("/api/reservations/:id/:action", s.postDecision)

	s.srv = httptest.NewServer(engine)
	t.Cleanup(s.srv.Close)
	return s
}

func (s *Server) URL() string {
	return s.srv.URL
}

// Reset clears all data and failure settings.
func (s *Server) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listings = nil
	s.reservations = nil
	s.blocked = make(map[dayKey]bool)
	s.channelResults = nil
	s.failStatus = 0
	s.hold = nil
	s.entered = nil
	s.blockCalls = nil
	s.calendarCalls = 0
	s.decisions = make(map[string]string)
}

func (s *Server) AddListing(l wire.Listing) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listings = append(s.listings, l)
}

func (s *Server) AddReservation(r wire.Reservation) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reservations = append(s.reservations, r)
}

func (s *Server) Block(listingID, date string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.blocked[dayKey{listingID, date}] = true
}

func (s *Server) IsBlocked(listingID, date string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.blocked[dayKey{listingID, date}]
}

// SetChannelResults fixes the per-channel outcome reported for every block change.
func (s *Server) SetChannelResults(results ...wire.ChannelResult) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.channelResults = results
}

// FailBlocks makes block changes answer with status without applying them. 0 restores success.
func (s *Server) FailBlocks(status int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failStatus = status
}

// HoldBlocks parks block changes until release is called. entered receives once per
// parked request.
func (s *Server) HoldBlocks() (entered <-chan struct{}, release func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.hold = make(chan struct{})
	s.entered = make(chan struct{}, 8)
	hold := s.hold
	var once sync.Once
	return s.entered, func() { once.Do(func() { close(hold) }) }
}

func (s *Server) BlockCalls() []BlockCall {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]BlockCall(nil), s.blockCalls...)
}

func (s *Server) CalendarCalls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calendarCalls
}

// Decision returns the last accept/reject action received for a reservation.
func (s *Server) Decision(reservationID string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.decisions[reservationID]
}

func (s *Server) getCalendar(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calendarCalls++

	resp := wire.CalendarResponse{
		Listings:     append([]wire.Listing{}, s.listings...),
		Reservations: append([]wire.Reservation{}, s.reservations...),
		CalendarDays: []wire.CalendarDay{},
	}
	for k, blocked := range s.blocked {
		if blocked {
			resp.CalendarDays = append(resp.CalendarDays, wire.CalendarDay{ListingID: k.listingID, Date: k.date, Status: "BLOCKED"})
		}
	}
	c.JSON(http.StatusOK, resp)
}

func (s *Server) postBlock(c *gin.Context) {
	var req wire.BlockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	s.mu.Lock()
	s.blockCalls = append(s.blockCalls, BlockCall{Request: req, IdempotencyKey: c.GetHeader(idempotencyHeader)})
	hold, entered := s.hold, s.entered
	s.mu.Unlock()

	if hold != nil {
		entered <- struct{}{}
		<-hold
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failStatus != 0 {
		c.JSON(s.failStatus, gin.H{"error": "block failed"})
		return
	}
	key := dayKey{req.ListingID, req.Date}
	if req.Block {
		s.blocked[key] = true
	} else {
		delete(s.blocked, key)
	}
	c.JSON(http.StatusOK, wire.BlockResponse{ChannelResults: s.channelResults})
}

func (s *Server) postDecision(c *gin.Context) {
	id, action := c.Param("id"), c.Param("action")
	if action != "accept" && action != "reject" {
		c.Status(http.StatusNotFound)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i, r := range s.reservations {
		if r.ID != id {
			continue
		}
		s.decisions[id] = action
		if action == "accept" {
			s.reservations[i].Status = "CONFIRMED"
		} else {
			s.reservations[i].Status = "DECLINED"
		}
		c.Status(http.StatusNoContent)
		return
	}
	c.JSON(http.StatusNotFound, gin.H{"error": "reservation not found"})
}
