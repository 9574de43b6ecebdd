// Package store presents one create/read/delete contract for time
// entries and clients while hiding whether data lives in the remote
// Postgres store or in the local fallback. Every operation reports
// which backend served it, so callers can tell "worked" from
// "recovered via fallback" without reading logs.
package store

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/fadzzz/timesheet/models"

	"gorm.io/gorm"
)

// Source identifies which backend satisfied an operation.
type Source string

const (
	SourceRemote   Source = "remote"
	SourceFallback Source = "fallback"
)

var (
	ErrDuplicateClient = errors.New("client already exists")
	ErrEmptyClientName = errors.New("client name is required")
)

// DefaultClients is seeded for a user whose client collection loads
// empty for the first time.
var DefaultClients = []string{
	"LGS Migration",
	"Bruce Power",
	"Alberta Health",
	"Bombardier",
}

// Store is the persistence façade. A nil db means local-only mode;
// the decision is made once at construction and never re-evaluated,
// though any remote failure still recovers through the fallback
// per call.
type Store struct {
	db *gorm.DB
	fb *Fallback
}

func New(db *gorm.DB, fb *Fallback) *Store {
	return &Store{db: db, fb: fb}
}

// LocalOnly reports whether the store was constructed without a
// remote backend.
func (s *Store) LocalOnly() bool {
	return s.db == nil
}

// ListEntries returns all entries for a user, date descending then
// creation time descending.
func (s *Store) ListEntries(userID string) ([]models.TimeEntry, Source, error) {
	if s.db == nil {
		entries, err := s.fb.Entries(userID)
		return entries, SourceFallback, err
	}

	var entries []models.TimeEntry
	err := s.db.Where("user_id = ?", userID).
		Order("date desc, created_at desc").
		Find(&entries).Error
	if err != nil {
		log.Printf("store: remote entry list failed, using fallback: %v", err)
		entries, ferr := s.fb.Entries(userID)
		return entries, SourceFallback, ferr
	}
	return entries, SourceRemote, nil
}

// ListEntriesByDateRange returns the user's entries whose date lies
// within the inclusive [start, end] bound. Both backends order the
// result identically.
func (s *Store) ListEntriesByDateRange(userID, start, end string) ([]models.TimeEntry, Source, error) {
	if s.db == nil {
		entries, err := s.fb.EntriesByDateRange(userID, start, end)
		return entries, SourceFallback, err
	}

	var entries []models.TimeEntry
	err := s.db.Where("user_id = ? AND date >= ? AND date <= ?", userID, start, end).
		Order("date desc, created_at desc").
		Find(&entries).Error
	if err != nil {
		log.Printf("store: remote range query failed, using fallback: %v", err)
		entries, ferr := s.fb.EntriesByDateRange(userID, start, end)
		return entries, SourceFallback, ferr
	}
	return entries, SourceRemote, nil
}

// CreateEntry validates the entry and writes it. Validation failures
// reject the entry before either backend is touched.
func (s *Store) CreateEntry(entry models.TimeEntry) (*models.TimeEntry, Source, error) {
	if err := entry.Validate(); err != nil {
		return nil, "", err
	}

	if s.db == nil {
		created, err := s.fb.SaveEntry(entry)
		return created, SourceFallback, err
	}

	entry.ID = 0 // remote store assigns the identifier
	if err := s.db.Create(&entry).Error; err != nil {
		log.Printf("store: remote entry create failed, using fallback: %v", err)
		created, ferr := s.fb.SaveEntry(entry)
		return created, SourceFallback, ferr
	}
	return &entry, SourceRemote, nil
}

// DeleteEntry removes exactly the identified entry for the user.
func (s *Store) DeleteEntry(userID string, id int64) (Source, error) {
	if s.db == nil {
		return SourceFallback, s.fb.DeleteEntry(userID, id)
	}

	err := s.db.Where("user_id = ?", userID).Delete(&models.TimeEntry{}, id).Error
	if err != nil {
		log.Printf("store: remote entry delete failed, using fallback: %v", err)
		return SourceFallback, s.fb.DeleteEntry(userID, id)
	}
	return SourceRemote, nil
}

// ListClients returns the user's clients, name ascending. A first
// load that comes back empty seeds the default client set once and
// reloads; no re-seed happens while at least one client exists.
func (s *Store) ListClients(userID string) ([]models.Client, Source, error) {
	clients, source, err := s.listClients(userID)
	if err != nil || len(clients) > 0 {
		return clients, source, err
	}

	s.seedDefaultClients(userID, source)
	return s.listClients(userID)
}

func (s *Store) listClients(userID string) ([]models.Client, Source, error) {
	if s.db == nil {
		clients, err := s.fb.Clients(userID)
		return clients, SourceFallback, err
	}

	var clients []models.Client
	err := s.db.Where("user_id = ?", userID).
		Order("name asc").
		Find(&clients).Error
	if err != nil {
		log.Printf("store: remote client list failed, using fallback: %v", err)
		clients, ferr := s.fb.Clients(userID)
		return clients, SourceFallback, ferr
	}
	return clients, SourceRemote, nil
}

func (s *Store) seedDefaultClients(userID string, source Source) {
	for _, name := range DefaultClients {
		if source == SourceRemote {
			client := models.Client{UserID: userID, Name: name}
			if err := s.db.Create(&client).Error; err != nil {
				log.Printf("store: seeding default client %q failed: %v", name, err)
			}
			continue
		}
		if _, err := s.fb.AddClient(userID, name); err != nil {
			log.Printf("store: seeding default client %q failed: %v", name, err)
		}
	}
}

// CreateClient enforces per-user name uniqueness case-insensitively
// before any write, in whichever backend is serving the user.
func (s *Store) CreateClient(userID, name string) (*models.Client, Source, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, "", ErrEmptyClientName
	}

	existing, source, err := s.listClients(userID)
	if err != nil {
		return nil, source, err
	}
	for _, c := range existing {
		if strings.EqualFold(c.Name, name) {
			return nil, source, ErrDuplicateClient
		}
	}

	if source == SourceRemote {
		client := models.Client{UserID: userID, Name: name, CreatedAt: time.Now()}
		if err := s.db.Create(&client).Error; err != nil {
			log.Printf("store: remote client create failed, using fallback: %v", err)
			created, ferr := s.fb.AddClient(userID, name)
			return created, SourceFallback, ferr
		}
		return &client, SourceRemote, nil
	}

	created, err := s.fb.AddClient(userID, name)
	return created, SourceFallback, err
}

// DeleteClient removes the identified client in whichever backend is
// serving the user.
func (s *Store) DeleteClient(userID, id string) (Source, error) {
	if s.db == nil {
		return SourceFallback, s.fb.DeleteClient(userID, id)
	}

	err := s.db.Where("user_id = ? AND id = ?", userID, id).Delete(&models.Client{}).Error
	if err != nil {
		log.Printf("store: remote client delete failed, using fallback: %v", err)
		return SourceFallback, s.fb.DeleteClient(userID, id)
	}
	return SourceRemote, nil
}

// UpsertUserByGoogleID returns the user for a Google identity,
// creating the record on first login and touching updated_at on
// subsequent ones.
func (s *Store) UpsertUserByGoogleID(googleID, email, name, avatarURL string) (*models.User, Source, error) {
	if s.db == nil {
		user, err := s.fb.UpsertUser(googleID, email, name, avatarURL)
		return user, SourceFallback, err
	}

	var user models.User
	err := s.db.Where("google_id = ?", googleID).First(&user).Error
	switch {
	case err == nil:
		s.db.Model(&user).Update("updated_at", time.Now())
		return &user, SourceRemote, nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		user = models.User{
			Email:     email,
			Name:      name,
			GoogleID:  googleID,
			AvatarURL: avatarURL,
		}
		if cerr := s.db.Create(&user).Error; cerr != nil {
			log.Printf("store: remote user create failed, using fallback: %v", cerr)
			created, ferr := s.fb.UpsertUser(googleID, email, name, avatarURL)
			return created, SourceFallback, ferr
		}
		return &user, SourceRemote, nil
	default:
		log.Printf("store: remote user lookup failed, using fallback: %v", err)
		user2, ferr := s.fb.UpsertUser(googleID, email, name, avatarURL)
		return user2, SourceFallback, ferr
	}
}
