package test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"planetarium/config"
	"planetarium/internal/auth"
	"planetarium/internal/model"
)

// These tests hit a running server and a real database. Start the
// server first, then run with BOOKING_TEST_LIVE=1.
const baseURL = "http://127.0.0.1:4000"

type bookingRequest struct {
	ShowSession uint `json:"show_session"`
	Row         int  `json:"row"`
	Seat        int  `json:"seat"`
}

type testResult struct {
	BookedCount     int64
	SeatTakenCount  int64
	OtherErrorCount int64
	TotalRequests   int64
	TotalDuration   time.Duration
}

func requireLive(t *testing.T) *config.Config {
	t.Helper()
	if os.Getenv("BOOKING_TEST_LIVE") != "1" {
		t.Skip("set BOOKING_TEST_LIVE=1 to run against a live server")
	}
	cfg, err := config.LoadConfig()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}
	return cfg
}

func setupTestDB(t *testing.T, cfg *config.Config, userCount, rows, seatsInRow int) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DatabaseDSN), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}

	db.Migrator().DropTable(
		&model.Ticket{}, &model.Reservation{}, &model.ShowSession{},
		"astronomy_show_themes", &model.AstronomyShow{}, &model.ShowTheme{},
		&model.PlanetariumDome{}, &model.User{},
	)
	db.AutoMigrate(
		&model.User{}, &model.ShowTheme{}, &model.AstronomyShow{},
		&model.PlanetariumDome{}, &model.ShowSession{},
		&model.Reservation{}, &model.Ticket{},
	)

	for i := 1; i <= userCount; i++ {
		db.Create(&model.User{
			Email:          fmt.Sprintf("user%d@tests.test", i),
			HashedPassword: fmt.Sprintf("pass%d", i),
		})
	}

	show := model.AstronomyShow{Title: "Saturn Rings"}
	db.Create(&show)
	dome := model.PlanetariumDome{Name: "Main dome", Rows: rows, SeatsInRow: seatsInRow}
	db.Create(&dome)
	db.Create(&model.ShowSession{
		AstronomyShowID:   &show.ID,
		PlanetariumDomeID: &dome.ID,
		ShowTime:          time.Now().Add(2 * time.Hour),
	})

	t.Logf("seeded %d users and a %dx%d dome", userCount, rows, seatsInRow)
	return db
}

var httpClient = &http.Client{
	Transport: &http.Transport{
		MaxIdleConns:        20000,
		MaxIdleConnsPerHost: 20000,
		MaxConnsPerHost:     20000,
		IdleConnTimeout:     90 * time.Second,
		DisableCompression:  true,
	},
	Timeout: 5 * time.Second,
}

func sendBookingRequest(token string, sessionID uint, row, seat int) (int, string, error) {
	body, _ := json.Marshal(bookingRequest{ShowSession: sessionID, Row: row, Seat: seat})

	req, err := http.NewRequest("POST", baseURL+"/api/planetarium/ticket", bytes.NewBuffer(body))
	if err != nil {
		return 0, "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := httpClient.Do(req)
	if err != nil {
		return 0, "", err
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(resp.Body)
	return resp.StatusCode, string(respBody), nil
}

func concurrentBooking(t *testing.T, cfg *config.Config, concurrency int, sessionID uint, seatFor func(int) (int, int)) *testResult {
	result := &testResult{}
	var wg sync.WaitGroup

	start := time.Now()
	for i := 0; i < concurrency; i++ {
		wg.Add(1)
		go func(index int) {
			defer wg.Done()

			userID := uint(index + 1)
			token, err := auth.GenerateToken(cfg.JWTSecret, userID, false)
			if err != nil {
				atomic.AddInt64(&result.OtherErrorCount, 1)
				return
			}

			row, seat := seatFor(index)
			statusCode, body, err := sendBookingRequest(token, sessionID, row, seat)
			atomic.AddInt64(&result.TotalRequests, 1)
			if err != nil {
				atomic.AddInt64(&result.OtherErrorCount, 1)
				t.Logf("request error [user %d]: %v", userID, err)
				return
			}

			switch statusCode {
			case http.StatusCreated:
				atomic.AddInt64(&result.BookedCount, 1)
			case http.StatusConflict:
				atomic.AddInt64(&result.SeatTakenCount, 1)
			default:
				atomic.AddInt64(&result.OtherErrorCount, 1)
				t.Logf("unexpected status [user %d]: %d, body: %s", userID, statusCode, body)
			}
		}(i)
	}
	wg.Wait()
	result.TotalDuration = time.Since(start)

	return result
}

func verifyTicketCount(t *testing.T, db *gorm.DB, sessionID uint, expected int64) {
	var actual int64
	db.Model(&model.Ticket{}).Where("show_session_id = ?", sessionID).Count(&actual)
	if actual != expected {
		t.Errorf("ticket count mismatch: want %d, got %d", expected, actual)
	} else {
		t.Logf("database verified: %d tickets", actual)
	}
}

// Every caller races for the exact same seat. Exactly one booking must
// win, the rest must get 409.
func TestConcurrent_SameSeatRace(t *testing.T) {
	const concurrency = 200

	cfg := requireLive(t)
	db := setupTestDB(t, cfg, concurrency, 5, 10)

	result := concurrentBooking(t, cfg, concurrency, 1, func(int) (int, int) {
		return 1, 1
	})

	t.Logf("booked: %d, seat taken: %d, other: %d, took %v",
		result.BookedCount, result.SeatTakenCount, result.OtherErrorCount, result.TotalDuration)

	if result.BookedCount != 1 {
		t.Errorf("double booking detected: %d winners for one seat", result.BookedCount)
	}
	if result.SeatTakenCount != concurrency-1 {
		t.Errorf("conflict count mismatch: want %d, got %d", concurrency-1, result.SeatTakenCount)
	}

	verifyTicketCount(t, db, 1, 1)
}

// Booking then deleting the reservation must free the seats: the
// tickets disappear and the session availability climbs back to
// capacity.
func TestDeleteReservationRestoresAvailability(t *testing.T) {
	cfg := requireLive(t)
	db := setupTestDB(t, cfg, 1, 5, 10)

	token, err := auth.GenerateToken(cfg.JWTSecret, 1, false)
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}

	statusCode, body, err := sendBookingRequest(token, 1, 1, 1)
	if err != nil || statusCode != http.StatusCreated {
		t.Fatalf("booking failed: status %d, err %v, body %s", statusCode, err, body)
	}
	var booked struct {
		ID uint `json:"id"`
	}
	if err := json.Unmarshal([]byte(body), &booked); err != nil {
		t.Fatalf("failed to parse booking response: %v", err)
	}
	verifyTicketCount(t, db, 1, 1)

	req, err := http.NewRequest("DELETE",
		fmt.Sprintf("%s/api/planetarium/reservation/%d", baseURL, booked.ID), nil)
	if err != nil {
		t.Fatalf("failed to build delete request: %v", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := httpClient.Do(req)
	if err != nil {
		t.Fatalf("delete request failed: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusNoContent {
		t.Fatalf("delete returned status %d", resp.StatusCode)
	}

	verifyTicketCount(t, db, 1, 0)

	detailReq, _ := http.NewRequest("GET", baseURL+"/api/planetarium/session/1", nil)
	detailReq.Header.Set("Authorization", "Bearer "+token)
	detailResp, err := httpClient.Do(detailReq)
	if err != nil {
		t.Fatalf("session detail request failed: %v", err)
	}
	defer detailResp.Body.Close()
	var detail struct {
		TicketsAvailable int `json:"tickets_available"`
	}
	if err := json.NewDecoder(detailResp.Body).Decode(&detail); err != nil {
		t.Fatalf("failed to parse session detail: %v", err)
	}
	if detail.TicketsAvailable != 50 {
		t.Errorf("availability not restored: want 50, got %d", detail.TicketsAvailable)
	}
}

// All seats in the dome are contested by more callers than seats. The
// dome must end up exactly full with no seat sold twice.
func TestConcurrent_FullDomeOversell(t *testing.T) {
	const (
		rows       = 5
		seatsInRow = 10
		capacity   = rows * seatsInRow
		// three callers per seat
		concurrency = capacity * 3
	)

	cfg := requireLive(t)
	db := setupTestDB(t, cfg, concurrency, rows, seatsInRow)

	result := concurrentBooking(t, cfg, concurrency, 1, func(i int) (int, int) {
		seatIndex := i % capacity
		return seatIndex/seatsInRow + 1, seatIndex%seatsInRow + 1
	})

	t.Logf("booked: %d, seat taken: %d, other: %d, took %v",
		result.BookedCount, result.SeatTakenCount, result.OtherErrorCount, result.TotalDuration)

	if result.BookedCount != capacity {
		t.Errorf("oversell check failed: want %d bookings, got %d", capacity, result.BookedCount)
	}

	verifyTicketCount(t, db, 1, capacity)
}
