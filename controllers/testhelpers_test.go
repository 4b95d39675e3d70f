package controllers_test

import (
	"bytes"
	"encoding/json"
	iofs "io/fs"
	"mime/multipart"
	"net/http/httptest"
	"path/filepath"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/josechaverradev-cyber/quibdo/config"
	"github.com/josechaverradev-cyber/quibdo/controllers"
	"github.com/josechaverradev-cyber/quibdo/models"
	"github.com/josechaverradev-cyber/quibdo/routes"
	"github.com/josechaverradev-cyber/quibdo/storage"
	"github.com/josechaverradev-cyber/quibdo/store"
	"github.com/josechaverradev-cyber/quibdo/utils"
)

// fakeStore implementa store.Store en memoria para probar los handlers sin
// base de datos.
type fakeStore struct {
	mu       sync.Mutex
	events   map[uint]*models.Event
	gallery  map[uint]*models.GalleryItem
	sponsors map[uint]*models.Sponsor
	hero     *models.HeroSettings
	settings []models.EventSetting
	admins   map[string]*models.AdminUser
	nextID   uint
	clock    time.Time
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		events:   map[uint]*models.Event{},
		gallery:  map[uint]*models.GalleryItem{},
		sponsors: map[uint]*models.Sponsor{},
		admins:   map[string]*models.AdminUser{},
		clock:    time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func (f *fakeStore) id() uint {
	f.nextID++
	return f.nextID
}

// tick hace que cada fila creada tenga un created_at estrictamente creciente.
func (f *fakeStore) tick() time.Time {
	f.clock = f.clock.Add(time.Second)
	return f.clock
}

func (f *fakeStore) ListEvents() ([]models.Event, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]models.Event, 0, len(f.events))
	for _, e := range f.events {
		out = append(out, *e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (f *fakeStore) GetEvent(id uint) (*models.Event, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	e, ok := f.events[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	cp := *e
	return &cp, nil
}

func (f *fakeStore) CreateEvent(e *models.Event) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	e.ID = f.id()
	e.CreatedAt = f.tick()
	cp := *e
	f.events[e.ID] = &cp
	return nil
}

func (f *fakeStore) SaveEvent(e *models.Event) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	cp := *e
	f.events[e.ID] = &cp
	return nil
}

func (f *fakeStore) DeleteEvent(id uint) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.events[id]; !ok {
		return store.ErrNotFound
	}
	delete(f.events, id)
	for gid, item := range f.gallery {
		if item.EventID == id {
			delete(f.gallery, gid)
		}
	}
	return nil
}

func (f *fakeStore) ListGalleryItems() ([]models.GalleryItem, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]models.GalleryItem, 0, len(f.gallery))
	for _, item := range f.gallery {
		cp := *item
		if e, ok := f.events[cp.EventID]; ok {
			ev := *e
			cp.Event = &ev
		}
		out = append(out, cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (f *fakeStore) GalleryItemsByEvent(eventID uint) ([]models.GalleryItem, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.GalleryItem
	for _, item := range f.gallery {
		if item.EventID == eventID {
			out = append(out, *item)
		}
	}
	return out, nil
}

func (f *fakeStore) GetGalleryItem(id uint) (*models.GalleryItem, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	item, ok := f.gallery[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	cp := *item
	return &cp, nil
}

func (f *fakeStore) CreateGalleryItem(item *models.GalleryItem) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.events[item.EventID]; !ok {
		return store.ErrNotFound
	}
	item.ID = f.id()
	item.CreatedAt = f.tick()
	cp := *item
	cp.Event = nil
	f.gallery[item.ID] = &cp
	return nil
}

func (f *fakeStore) DeleteGalleryItem(id uint) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.gallery[id]; !ok {
		return store.ErrNotFound
	}
	delete(f.gallery, id)
	return nil
}

func (f *fakeStore) HeroSettings() (*models.HeroSettings, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.hero == nil {
		f.hero = &models.HeroSettings{
			ID:        models.HeroSettingsID,
			HeroVideo: "",
			EventDate: models.DefaultEventDate,
			UpdatedAt: f.tick(),
		}
	}
	cp := *f.hero
	return &cp, nil
}

func (f *fakeStore) SaveHeroSettings(s *models.HeroSettings) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	s.ID = models.HeroSettingsID
	s.UpdatedAt = f.tick()
	cp := *s
	f.hero = &cp
	return nil
}

func (f *fakeStore) ListSponsors() ([]models.Sponsor, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]models.Sponsor, 0, len(f.sponsors))
	for _, s := range f.sponsors {
		out = append(out, *s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeStore) GetSponsor(id uint) (*models.Sponsor, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	s, ok := f.sponsors[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	cp := *s
	return &cp, nil
}

func (f *fakeStore) CreateSponsor(s *models.Sponsor) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	s.ID = f.id()
	s.CreatedAt = f.tick()
	cp := *s
	f.sponsors[s.ID] = &cp
	return nil
}

func (f *fakeStore) DeleteSponsor(id uint) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.sponsors[id]; !ok {
		return store.ErrNotFound
	}
	delete(f.sponsors, id)
	return nil
}

func (f *fakeStore) ActiveEventSetting() (*models.EventSetting, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.settings {
		if f.settings[i].IsActive {
			cp := f.settings[i]
			return &cp, nil
		}
	}
	return nil, store.ErrNotFound
}

func (f *fakeStore) AdminUserByUsername(username string) (*models.AdminUser, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.admins[username]
	if !ok {
		return nil, store.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (f *fakeStore) CountEvents() (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return int64(len(f.events)), nil
}

func (f *fakeStore) CountFeaturedEvents() (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var n int64
	for _, e := range f.events {
		if e.Featured {
			n++
		}
	}
	return n, nil
}

func (f *fakeStore) CountGalleryItems() (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return int64(len(f.gallery)), nil
}

func (f *fakeStore) seedAdmin(t *testing.T, username, password string) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	f.admins[username] = &models.AdminUser{ID: 1, Username: username, Password: string(hash)}
}

const testPassword = "mmq2025admin"

// newTestServer levanta el router completo contra el fake store y devuelve un
// token de administración válido.
func newTestServer(t *testing.T) (*gin.Engine, *fakeStore, string) {
	t.Helper()
	r, fs, token, _ := newTestServerDir(t)
	return r, fs, token
}

// newTestServerDir además expone el directorio de subidas, para las pruebas
// que verifican el estado de los archivos en disco.
func newTestServerDir(t *testing.T) (*gin.Engine, *fakeStore, string, string) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	fs := newFakeStore()
	fs.seedAdmin(t, "admin", testPassword)

	secret := []byte("secreto-de-prueba")
	uploadDir := t.TempDir()
	h := controllers.NewHandler(fs, storage.NewFileStore(uploadDir), secret, "admin")

	cfg := &config.Config{UploadDir: uploadDir, StaticDir: t.TempDir()}
	r := routes.SetupRouter(h, nil, cfg)

	token, err := utils.GenerateToken(secret, "admin")
	require.NoError(t, err)

	return r, fs, token, uploadDir
}

// countUploadedFiles cuenta los archivos regulares que quedan bajo el
// directorio de subidas.
func countUploadedFiles(t *testing.T, dir string) int {
	t.Helper()
	n := 0
	err := filepath.WalkDir(dir, func(_ string, d iofs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			n++
		}
		return nil
	})
	require.NoError(t, err)
	return n
}

type formFile struct {
	field   string
	name    string
	content string
}

func multipartBody(t *testing.T, fields map[string]string, files []formFile) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	for _, file := range files {
		part, err := w.CreateFormFile(file.field, file.name)
		require.NoError(t, err)
		_, err = part.Write([]byte(file.content))
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
	return body, w.FormDataContentType()
}

func doRequest(r *gin.Engine, method, path, token, contentType string, body *bytes.Buffer) *httptest.ResponseRecorder {
	if body == nil {
		body = &bytes.Buffer{}
	}
	req := httptest.NewRequest(method, path, body)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func doJSON(r *gin.Engine, method, path, token string, payload any) *httptest.ResponseRecorder {
	body := &bytes.Buffer{}
	if payload != nil {
		_ = json.NewEncoder(body).Encode(payload)
	}
	return doRequest(r, method, path, token, "application/json", body)
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), "cuerpo: %s", rec.Body.String())
	return out
}
