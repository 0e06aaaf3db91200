package repository

import (
	"bytes"
	"context"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/natefinch/atomic"
	log "github.com/sirupsen/logrus"

	"lexforge/internal/app/ds"
)

const (
	contractsDir = "contracts"
	profilesDir  = "user_profiles"
	clientsDir   = "clients"
)

// FileStore хранит записи JSON-файлами:
// contracts/{id}.json, user_profiles/user_profile_{hex(user)}.json, clients/{id}.json.
// Запись атомарная, чтение-изменение-запись сериализуется мьютексом.
type FileStore struct {
	root string
	mu   sync.RWMutex
}

func NewFileStore(root string) (*FileStore, error) {
	if root == "" {
		return nil, errors.New("file store: empty data dir")
	}
	for _, dir := range []string{contractsDir, profilesDir, clientsDir} {
		if err := os.MkdirAll(filepath.Join(root, dir), 0o755); err != nil {
			return nil, fmt.Errorf("file store: %w", err)
		}
	}
	return &FileStore{root: root}, nil
}

func (s *FileStore) Close() error { return nil }

func (s *FileStore) recordPath(dir, id string) (string, bool) {
	if !validID(id) {
		return "", false
	}
	return filepath.Join(s.root, dir, id+".json"), true
}

// profilePath hex из идентификатора: разные пользователи не делят файл,
// в том числе на файловых системах без учета регистра
func (s *FileStore) profilePath(userID string) string {
	return filepath.Join(s.root, profilesDir, "user_profile_"+hex.EncodeToString([]byte(userID))+".json")
}

func writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	if err = atomic.WriteFile(path, bytes.NewReader(data)); err != nil {
		return fmt.Errorf("write %s: %w", filepath.Base(path), err)
	}
	return nil
}

func readJSON(path string, v any) error {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return ErrNotFound
	}
	if err != nil {
		return err
	}
	if err = json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("decode %s: %w", filepath.Base(path), err)
	}
	return nil
}

func removeFile(path string) error {
	err := os.Remove(path)
	if errors.Is(err, fs.ErrNotExist) {
		return ErrNotFound
	}
	return err
}

// readDir декодирует все файлы каталога. Битые файлы пропускаются.
func readDir[T any](dir string) ([]T, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	out := make([]T, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		var v T
		if err := readJSON(filepath.Join(dir, e.Name()), &v); err != nil {
			log.WithError(err).Warn("skip unreadable record")
			continue
		}
		out = append(out, v)
	}
	return out, nil
}

// Договоры

func (s *FileStore) CreateContract(_ context.Context, c *ds.Contract) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	path, ok := s.recordPath(contractsDir, c.ID)
	if !ok {
		return fmt.Errorf("invalid contract id %q", c.ID)
	}
	c.UserID = c.Owner()
	stampNew(&c.CreatedAt, &c.UpdatedAt)
	return writeJSON(path, c)
}

func (s *FileStore) GetContract(_ context.Context, id string) (*ds.Contract, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	path, ok := s.recordPath(contractsDir, id)
	if !ok {
		return nil, ErrNotFound
	}
	var c ds.Contract
	if err := readJSON(path, &c); err != nil {
		return nil, err
	}
	c.UserID = c.Owner()
	return &c, nil
}

func (s *FileStore) ListContracts(_ context.Context, userID string) ([]ds.Contract, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	all, err := readDir[ds.Contract](filepath.Join(s.root, contractsDir))
	if err != nil {
		return nil, err
	}
	out := make([]ds.Contract, 0, len(all))
	for _, c := range all {
		c := c
		if c.Owner() == userID {
			c.UserID = c.Owner()
			out = append(out, c)
		}
	}
	sortContracts(out)
	return out, nil
}

func (s *FileStore) UpdateContract(_ context.Context, c *ds.Contract) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	path, ok := s.recordPath(contractsDir, c.ID)
	if !ok {
		return ErrNotFound
	}
	var old ds.Contract
	if err := readJSON(path, &old); err != nil {
		return err
	}
	c.CreatedAt = old.CreatedAt
	c.UserID = c.Owner()
	c.UpdatedAt = now()
	return writeJSON(path, c)
}

func (s *FileStore) DeleteContract(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	path, ok := s.recordPath(contractsDir, id)
	if !ok {
		return ErrNotFound
	}
	return removeFile(path)
}

func (s *FileStore) MigrateUser(_ context.Context, from, to string) (int, error) {
	if from == "" || to == "" || from == to {
		return 0, nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	migrated := 0
	contracts, err := readDir[ds.Contract](filepath.Join(s.root, contractsDir))
	if err != nil {
		return 0, err
	}
	for _, c := range contracts {
		c := c
		if c.Owner() != from || !validID(c.ID) {
			continue
		}
		c.UserID = to
		c.UpdatedAt = now()
		path, _ := s.recordPath(contractsDir, c.ID)
		if err := writeJSON(path, c); err != nil {
			return migrated, err
		}
		migrated++
	}

	clients, err := readDir[ds.Client](filepath.Join(s.root, clientsDir))
	if err != nil {
		return migrated, err
	}
	for _, c := range clients {
		if c.UserID != from || !validID(c.ID) {
			continue
		}
		c.UserID = to
		c.UpdatedAt = now()
		path, _ := s.recordPath(clientsDir, c.ID)
		if err := writeJSON(path, c); err != nil {
			return migrated, err
		}
		migrated++
	}

	var profile ds.UserProfile
	switch err := readJSON(s.profilePath(from), &profile); {
	case errors.Is(err, ErrNotFound):
	case err != nil:
		return migrated, err
	default:
		var existing ds.UserProfile
		if err := readJSON(s.profilePath(to), &existing); errors.Is(err, ErrNotFound) {
			profile.UserID = to
			profile.UpdatedAt = now()
			if err := writeJSON(s.profilePath(to), &profile); err != nil {
				return migrated, err
			}
		}
		if err := removeFile(s.profilePath(from)); err != nil && !errors.Is(err, ErrNotFound) {
			return migrated, err
		}
	}
	return migrated, nil
}

// Профили

func (s *FileStore) GetProfile(_ context.Context, userID string) (*ds.UserProfile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var p ds.UserProfile
	if err := readJSON(s.profilePath(userID), &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *FileStore) SaveProfile(_ context.Context, p *ds.UserProfile) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	p.UpdatedAt = now()
	return writeJSON(s.profilePath(p.UserID), p)
}

// Клиенты

func (s *FileStore) CreateClient(_ context.Context, c *ds.Client) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	path, ok := s.recordPath(clientsDir, c.ID)
	if !ok {
		return fmt.Errorf("invalid client id %q", c.ID)
	}
	stampNew(&c.CreatedAt, &c.UpdatedAt)
	return writeJSON(path, c)
}

func (s *FileStore) GetClient(_ context.Context, id string) (*ds.Client, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	path, ok := s.recordPath(clientsDir, id)
	if !ok {
		return nil, ErrNotFound
	}
	var c ds.Client
	if err := readJSON(path, &c); err != nil {
		return nil, err
	}
	return &c, nil
}

func (s *FileStore) ListClients(_ context.Context, userID string) ([]ds.Client, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	all, err := readDir[ds.Client](filepath.Join(s.root, clientsDir))
	if err != nil {
		return nil, err
	}
	out := make([]ds.Client, 0, len(all))
	for _, c := range all {
		if c.UserID == userID {
			out = append(out, c)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return strings.ToLower(out[i].Name) < strings.ToLower(out[j].Name)
	})
	return out, nil
}

func (s *FileStore) UpdateClient(_ context.Context, c *ds.Client) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	path, ok := s.recordPath(clientsDir, c.ID)
	if !ok {
		return ErrNotFound
	}
	var old ds.Client
	if err := readJSON(path, &old); err != nil {
		return err
	}
	c.CreatedAt = old.CreatedAt
	c.UpdatedAt = now()
	return writeJSON(path, c)
}

func (s *FileStore) DeleteClient(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	path, ok := s.recordPath(clientsDir, id)
	if !ok {
		return ErrNotFound
	}
	return removeFile(path)
}

// sortContracts новые сверху
func sortContracts(cs []ds.Contract) {
	sort.SliceStable(cs, func(i, j int) bool {
		if !cs[i].UpdatedAt.Equal(cs[j].UpdatedAt) {
			return cs[i].UpdatedAt.After(cs[j].UpdatedAt)
		}
		return cs[i].ID < cs[j].ID
	})
}

var _ Store = (*FileStore)(nil)
