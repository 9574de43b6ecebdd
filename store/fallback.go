package store

import (
	"errors"
	"fmt"
	"log"
	"sort"
	"strconv"
	"time"

	"github.com/fadzzz/timesheet/kv"
	"github.com/fadzzz/timesheet/models"

	"github.com/bytedance/sonic"
)

const (
	entriesBucket = "timesheet_entries"
	clientsBucket = "timesheet_clients"
	usersBucket   = "timesheet_users"
)

// Fallback is the always-available local store. It keeps one JSON
// sequence per user in each bucket: entries newest-first, clients in
// creation order. A corrupt sequence is discarded and treated as
// empty rather than failing the caller.
type Fallback struct {
	kv kv.Store
}

func NewFallback(store kv.Store) *Fallback {
	return &Fallback{kv: store}
}

func (f *Fallback) loadEntries(userID string) []models.TimeEntry {
	data, err := f.kv.Get(entriesBucket, userID)
	if errors.Is(err, kv.ErrKeyNotFound) {
		return nil
	}
	if err != nil {
		log.Printf("fallback: reading entries for %s: %v", userID, err)
		return nil
	}

	var entries []models.TimeEntry
	if err := sonic.Unmarshal(data, &entries); err != nil {
		log.Printf("fallback: discarding corrupt entries for %s: %v", userID, err)
		return nil
	}
	return entries
}

func (f *Fallback) saveEntries(userID string, entries []models.TimeEntry) error {
	data, err := sonic.Marshal(entries)
	if err != nil {
		return err
	}
	return f.kv.Put(entriesBucket, userID, data)
}

// Entries returns all of a user's entries in canonical order: date
// descending, then creation time descending.
func (f *Fallback) Entries(userID string) ([]models.TimeEntry, error) {
	entries := f.loadEntries(userID)
	sortEntries(entries)
	return entries, nil
}

// EntriesByDateRange filters on the inclusive [start, end] bound,
// compared as fixed-width date strings.
func (f *Fallback) EntriesByDateRange(userID, start, end string) ([]models.TimeEntry, error) {
	var matched []models.TimeEntry
	for _, e := range f.loadEntries(userID) {
		if e.Date >= start && e.Date <= end {
			matched = append(matched, e)
		}
	}
	sortEntries(matched)
	return matched, nil
}

// SaveEntry assigns a timestamp-derived identifier and prepends the
// entry, keeping the stored sequence newest-first.
func (f *Fallback) SaveEntry(entry models.TimeEntry) (*models.TimeEntry, error) {
	entries := f.loadEntries(entry.UserID)

	entry.ID = time.Now().UnixMilli()
	if len(entries) > 0 && entry.ID <= entries[0].ID {
		entry.ID = entries[0].ID + 1
	}
	entry.CreatedAt = time.Now()

	entries = append([]models.TimeEntry{entry}, entries...)
	if err := f.saveEntries(entry.UserID, entries); err != nil {
		return nil, err
	}
	return &entry, nil
}

func (f *Fallback) DeleteEntry(userID string, id int64) error {
	entries := f.loadEntries(userID)
	kept := entries[:0]
	for _, e := range entries {
		if e.ID != id {
			kept = append(kept, e)
		}
	}
	return f.saveEntries(userID, kept)
}

func (f *Fallback) loadClients(userID string) []models.Client {
	data, err := f.kv.Get(clientsBucket, userID)
	if errors.Is(err, kv.ErrKeyNotFound) {
		return nil
	}
	if err != nil {
		log.Printf("fallback: reading clients for %s: %v", userID, err)
		return nil
	}

	var clients []models.Client
	if err := sonic.Unmarshal(data, &clients); err != nil {
		log.Printf("fallback: discarding corrupt clients for %s: %v", userID, err)
		return nil
	}
	return clients
}

func (f *Fallback) saveClients(userID string, clients []models.Client) error {
	data, err := sonic.Marshal(clients)
	if err != nil {
		return err
	}
	return f.kv.Put(clientsBucket, userID, data)
}

// Clients returns a user's clients sorted by name ascending.
func (f *Fallback) Clients(userID string) ([]models.Client, error) {
	clients := f.loadClients(userID)
	sort.Slice(clients, func(i, j int) bool {
		return clients[i].Name < clients[j].Name
	})
	return clients, nil
}

// AddClient appends a client with a timestamp-derived string identifier.
func (f *Fallback) AddClient(userID, name string) (*models.Client, error) {
	clients := f.loadClients(userID)

	client := models.Client{
		ID:        strconv.FormatInt(time.Now().UnixNano(), 10),
		CreatedAt: time.Now(),
		UserID:    userID,
		Name:      name,
	}

	clients = append(clients, client)
	if err := f.saveClients(userID, clients); err != nil {
		return nil, err
	}
	return &client, nil
}

func (f *Fallback) DeleteClient(userID, id string) error {
	clients := f.loadClients(userID)
	kept := clients[:0]
	for _, c := range clients {
		if c.ID != id {
			kept = append(kept, c)
		}
	}
	return f.saveClients(userID, kept)
}

// UpsertUser stores the identity record keyed by Google ID so a
// local-only deployment keeps a stable user across restarts.
func (f *Fallback) UpsertUser(googleID, email, name, avatarURL string) (*models.User, error) {
	data, err := f.kv.Get(usersBucket, googleID)
	if err == nil {
		var user models.User
		if uerr := sonic.Unmarshal(data, &user); uerr == nil {
			user.UpdatedAt = time.Now()
			if saved, serr := sonic.Marshal(&user); serr == nil {
				f.kv.Put(usersBucket, googleID, saved)
			}
			return &user, nil
		}
		log.Printf("fallback: discarding corrupt user record for %s", googleID)
	} else if !errors.Is(err, kv.ErrKeyNotFound) {
		return nil, err
	}

	now := time.Now()
	user := models.User{
		ID:        fmt.Sprintf("local-%d", now.UnixMilli()),
		CreatedAt: now,
		UpdatedAt: now,
		Email:     email,
		Name:      name,
		GoogleID:  googleID,
		AvatarURL: avatarURL,
	}
	saved, err := sonic.Marshal(&user)
	if err != nil {
		return nil, err
	}
	if err := f.kv.Put(usersBucket, googleID, saved); err != nil {
		return nil, err
	}
	return &user, nil
}

// sortEntries applies the canonical ordering used by the remote store:
// date descending, then creation time descending.
func sortEntries(entries []models.TimeEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].Date != entries[j].Date {
			return entries[i].Date > entries[j].Date
		}
		return entries[i].CreatedAt.After(entries[j].CreatedAt)
	})
}
