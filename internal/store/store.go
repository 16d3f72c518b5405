// Package store is the durable client-side state shared across pages of the
// flow: the auth token and the payment poll reference written at submission
// time and read back after the external payment redirect.
package store

import (
	"errors"
	"time"

	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
	_ "modernc.org/sqlite" // registers the cgo-free "sqlite" driver
)

const (
	keyToken     = "token"
	keyPollURL   = "poll_url"
	keyBookingID = "booking_id"
)

var ErrNotFound = errors.New("store: key not found")

type entry struct {
	Key       string `gorm:"primaryKey"`
	Value     string
	UpdatedAt time.Time
}

func (entry) TableName() string { return "kv_entries" }

type Store struct {
	db *gorm.DB
}

// Open creates or opens the sqlite-backed store at path. The pure-Go sqlite
// driver is used so the client binary needs no cgo.
func Open(path string) (*Store, error) {
	db, err := gorm.Open(
		gormsqlite.New(gormsqlite.Config{DriverName: "sqlite", DSN: path}),
		&gorm.Config{Logger: logger.Default.LogMode(logger.Silent)},
	)
	if err != nil {
		return nil, err
	}
	if err := db.AutoMigrate(&entry{}); err != nil {
		return nil, err
	}
	return &Store{db: db}, nil
}

func (s *Store) Get(key string) (string, error) {
	var e entry
	err := s.db.First(&e, "key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", err
	}
	return e.Value, nil
}

func (s *Store) Set(key, value string) error {
	e := entry{Key: key, Value: value, UpdatedAt: time.Now().UTC()}
	return s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&e).Error
}

func (s *Store) Delete(key string) error {
	return s.db.Delete(&entry{}, "key = ?", key).Error
}

// Clear drops every entry; used on logout.
func (s *Store) Clear() error {
	return s.db.Where("1 = 1").Delete(&entry{}).Error
}

func (s *Store) Token() (string, error) { return s.Get(keyToken) }

func (s *Store) SetToken(token string) error { return s.Set(keyToken, token) }

func (s *Store) ClearToken() error { return s.Delete(keyToken) }

// PaymentRef is the poll URL / booking id pair that must outlive the page
// that created it.
type PaymentRef struct {
	PollURL   string
	BookingID string
}

func (s *Store) SavePaymentRef(ref PaymentRef) error {
	if err := s.Set(keyPollURL, ref.PollURL); err != nil {
		return err
	}
	return s.Set(keyBookingID, ref.BookingID)
}

func (s *Store) PaymentRef() (PaymentRef, error) {
	pollURL, err := s.Get(keyPollURL)
	if err != nil {
		return PaymentRef{}, err
	}
	bookingID, err := s.Get(keyBookingID)
	if err != nil {
		return PaymentRef{}, err
	}
	return PaymentRef{PollURL: pollURL, BookingID: bookingID}, nil
}

func (s *Store) ClearPaymentRef() error {
	if err := s.Delete(keyPollURL); err != nil {
		return err
	}
	return s.Delete(keyBookingID)
}
