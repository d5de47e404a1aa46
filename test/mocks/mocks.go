package mocks

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/devillabs/cms-api/internal/core/domain/auth"
	"github.com/devillabs/cms-api/internal/core/domain/chat"
	"github.com/devillabs/cms-api/internal/core/domain/contact"
	"github.com/devillabs/cms-api/internal/core/domain/content"
	"github.com/devillabs/cms-api/internal/core/domain/media"
	"github.com/devillabs/cms-api/internal/core/ports"
	"github.com/google/uuid"
)

// BlogRepositoryMock is a lightweight mock for BlogRepository
type BlogRepositoryMock struct {
	CreateFn         func(ctx context.Context, b *content.Blog) error
	UpdateFn         func(ctx context.Context, b *content.Blog) error
	DeleteFn         func(ctx context.Context, id uuid.UUID) error
	GetBySlugFn      func(ctx context.Context, slug string) (*content.Blog, error)
	ListFn           func(ctx context.Context, f content.BlogFilter) ([]*content.Blog, error)
	SlugExistsFn     func(ctx context.Context, slug string) (bool, error)
	IncrementViewsFn func(ctx context.Context, id uuid.UUID) (int, error)
	IncrementLikesFn func(ctx context.Context, slug string) (int, error)
}

func (m *BlogRepositoryMock) Create(ctx context.Context, b *content.Blog) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, b)
	}
	return nil
}
func (m *BlogRepositoryMock) Update(ctx context.Context, b *content.Blog) error {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, b)
	}
	return nil
}
func (m *BlogRepositoryMock) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	return nil
}
func (m *BlogRepositoryMock) GetBySlug(ctx context.Context, slug string) (*content.Blog, error) {
	if m.GetBySlugFn != nil {
		return m.GetBySlugFn(ctx, slug)
	}
	return nil, content.ErrNotFound
}
func (m *BlogRepositoryMock) List(ctx context.Context, f content.BlogFilter) ([]*content.Blog, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, f)
	}
	return []*content.Blog{}, nil
}
func (m *BlogRepositoryMock) SlugExists(ctx context.Context, slug string) (bool, error) {
	if m.SlugExistsFn != nil {
		return m.SlugExistsFn(ctx, slug)
	}
	return false, nil
}
func (m *BlogRepositoryMock) IncrementViews(ctx context.Context, id uuid.UUID) (int, error) {
	if m.IncrementViewsFn != nil {
		return m.IncrementViewsFn(ctx, id)
	}
	return 1, nil
}
func (m *BlogRepositoryMock) IncrementLikes(ctx context.Context, slug string) (int, error) {
	if m.IncrementLikesFn != nil {
		return m.IncrementLikesFn(ctx, slug)
	}
	return 1, nil
}

// ProjectRepositoryMock is a lightweight mock for ProjectRepository
type ProjectRepositoryMock struct {
	CreateFn         func(ctx context.Context, p *content.Project) error
	UpdateFn         func(ctx context.Context, p *content.Project) error
	DeleteFn         func(ctx context.Context, id uuid.UUID) error
	GetBySlugFn      func(ctx context.Context, slug string) (*content.Project, error)
	ListFn           func(ctx context.Context, f content.ProjectFilter) ([]*content.Project, error)
	SlugExistsFn     func(ctx context.Context, slug string) (bool, error)
	IncrementViewsFn func(ctx context.Context, id uuid.UUID) (int, error)
}

func (m *ProjectRepositoryMock) Create(ctx context.Context, p *content.Project) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, p)
	}
	return nil
}
func (m *ProjectRepositoryMock) Update(ctx context.Context, p *content.Project) error {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, p)
	}
	return nil
}
func (m *ProjectRepositoryMock) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	return nil
}
func (m *ProjectRepositoryMock) GetBySlug(ctx context.Context, slug string) (*content.Project, error) {
	if m.GetBySlugFn != nil {
		return m.GetBySlugFn(ctx, slug)
	}
	return nil, content.ErrNotFound
}
func (m *ProjectRepositoryMock) List(ctx context.Context, f content.ProjectFilter) ([]*content.Project, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, f)
	}
	return []*content.Project{}, nil
}
func (m *ProjectRepositoryMock) SlugExists(ctx context.Context, slug string) (bool, error) {
	if m.SlugExistsFn != nil {
		return m.SlugExistsFn(ctx, slug)
	}
	return false, nil
}
func (m *ProjectRepositoryMock) IncrementViews(ctx context.Context, id uuid.UUID) (int, error) {
	if m.IncrementViewsFn != nil {
		return m.IncrementViewsFn(ctx, id)
	}
	return 1, nil
}

// ServiceRepositoryMock is a lightweight mock for ServiceRepository
type ServiceRepositoryMock struct {
	CreateFn     func(ctx context.Context, s *content.Service) error
	UpdateFn     func(ctx context.Context, s *content.Service) error
	DeleteFn     func(ctx context.Context, id uuid.UUID) error
	GetBySlugFn  func(ctx context.Context, slug string) (*content.Service, error)
	ListFn       func(ctx context.Context, f content.ServiceFilter) ([]*content.Service, error)
	SlugExistsFn func(ctx context.Context, slug string) (bool, error)
}

func (m *ServiceRepositoryMock) Create(ctx context.Context, s *content.Service) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, s)
	}
	return nil
}
func (m *ServiceRepositoryMock) Update(ctx context.Context, s *content.Service) error {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, s)
	}
	return nil
}
func (m *ServiceRepositoryMock) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	return nil
}
func (m *ServiceRepositoryMock) GetBySlug(ctx context.Context, slug string) (*content.Service, error) {
	if m.GetBySlugFn != nil {
		return m.GetBySlugFn(ctx, slug)
	}
	return nil, content.ErrNotFound
}
func (m *ServiceRepositoryMock) List(ctx context.Context, f content.ServiceFilter) ([]*content.Service, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, f)
	}
	return []*content.Service{}, nil
}
func (m *ServiceRepositoryMock) SlugExists(ctx context.Context, slug string) (bool, error) {
	if m.SlugExistsFn != nil {
		return m.SlugExistsFn(ctx, slug)
	}
	return false, nil
}

// ToolRepositoryMock is a lightweight mock for ToolRepository
type ToolRepositoryMock struct {
	CreateFn          func(ctx context.Context, t *content.Tool) error
	UpdateFn          func(ctx context.Context, t *content.Tool) error
	DeleteFn          func(ctx context.Context, id uuid.UUID) error
	GetByIDFn         func(ctx context.Context, id uuid.UUID) (*content.Tool, error)
	GetBySlugFn       func(ctx context.Context, slug string) (*content.Tool, error)
	ListFn            func(ctx context.Context, f content.ToolFilter) ([]*content.Tool, error)
	SlugExistsFn      func(ctx context.Context, slug string) (bool, error)
	IncrementViewsFn  func(ctx context.Context, id uuid.UUID) (int, error)
	IncrementClicksFn func(ctx context.Context, slug string) (int, error)
}

func (m *ToolRepositoryMock) Create(ctx context.Context, t *content.Tool) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, t)
	}
	return nil
}
func (m *ToolRepositoryMock) Update(ctx context.Context, t *content.Tool) error {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, t)
	}
	return nil
}
func (m *ToolRepositoryMock) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	return nil
}
func (m *ToolRepositoryMock) GetByID(ctx context.Context, id uuid.UUID) (*content.Tool, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, content.ErrNotFound
}
func (m *ToolRepositoryMock) GetBySlug(ctx context.Context, slug string) (*content.Tool, error) {
	if m.GetBySlugFn != nil {
		return m.GetBySlugFn(ctx, slug)
	}
	return nil, content.ErrNotFound
}
func (m *ToolRepositoryMock) List(ctx context.Context, f content.ToolFilter) ([]*content.Tool, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, f)
	}
	return []*content.Tool{}, nil
}
func (m *ToolRepositoryMock) SlugExists(ctx context.Context, slug string) (bool, error) {
	if m.SlugExistsFn != nil {
		return m.SlugExistsFn(ctx, slug)
	}
	return false, nil
}
func (m *ToolRepositoryMock) IncrementViews(ctx context.Context, id uuid.UUID) (int, error) {
	if m.IncrementViewsFn != nil {
		return m.IncrementViewsFn(ctx, id)
	}
	return 1, nil
}
func (m *ToolRepositoryMock) IncrementClicks(ctx context.Context, slug string) (int, error) {
	if m.IncrementClicksFn != nil {
		return m.IncrementClicksFn(ctx, slug)
	}
	return 1, nil
}

// TaxonomyRepositoryMock is a lightweight mock for TaxonomyRepository
type TaxonomyRepositoryMock struct {
	CreateCategoryFn func(ctx context.Context, c *content.Category) error
	DeleteCategoryFn func(ctx context.Context, id uuid.UUID) error
	ListCategoriesFn func(ctx context.Context) ([]*content.Category, error)
	CreateTagFn      func(ctx context.Context, t *content.Tag) error
	DeleteTagFn      func(ctx context.Context, id uuid.UUID) error
	ListTagsFn       func(ctx context.Context) ([]*content.Tag, error)
}

func (m *TaxonomyRepositoryMock) CreateCategory(ctx context.Context, c *content.Category) error {
	if m.CreateCategoryFn != nil {
		return m.CreateCategoryFn(ctx, c)
	}
	return nil
}
func (m *TaxonomyRepositoryMock) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	if m.DeleteCategoryFn != nil {
		return m.DeleteCategoryFn(ctx, id)
	}
	return nil
}
func (m *TaxonomyRepositoryMock) ListCategories(ctx context.Context) ([]*content.Category, error) {
	if m.ListCategoriesFn != nil {
		return m.ListCategoriesFn(ctx)
	}
	return []*content.Category{}, nil
}
func (m *TaxonomyRepositoryMock) CreateTag(ctx context.Context, t *content.Tag) error {
	if m.CreateTagFn != nil {
		return m.CreateTagFn(ctx, t)
	}
	return nil
}
func (m *TaxonomyRepositoryMock) DeleteTag(ctx context.Context, id uuid.UUID) error {
	if m.DeleteTagFn != nil {
		return m.DeleteTagFn(ctx, id)
	}
	return nil
}
func (m *TaxonomyRepositoryMock) ListTags(ctx context.Context) ([]*content.Tag, error) {
	if m.ListTagsFn != nil {
		return m.ListTagsFn(ctx)
	}
	return []*content.Tag{}, nil
}

// StatsRepositoryMock is a lightweight mock for StatsRepository
type StatsRepositoryMock struct {
	GetStatsFn func(ctx context.Context) (*content.Stats, error)
}

func (m *StatsRepositoryMock) GetStats(ctx context.Context) (*content.Stats, error) {
	if m.GetStatsFn != nil {
		return m.GetStatsFn(ctx)
	}
	return &content.Stats{}, nil
}

// AssetRepositoryMock is a lightweight mock for AssetRepository
type AssetRepositoryMock struct {
	CreateFn  func(ctx context.Context, a *media.Asset) error
	GetByIDFn func(ctx context.Context, id uuid.UUID) (*media.Asset, error)
	ListFn    func(ctx context.Context, limit, offset int) ([]*media.Asset, error)
	DeleteFn  func(ctx context.Context, id uuid.UUID) error
}

func (m *AssetRepositoryMock) Create(ctx context.Context, a *media.Asset) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, a)
	}
	return nil
}
func (m *AssetRepositoryMock) GetByID(ctx context.Context, id uuid.UUID) (*media.Asset, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, media.ErrAssetNotFound
}
func (m *AssetRepositoryMock) List(ctx context.Context, limit, offset int) ([]*media.Asset, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, limit, offset)
	}
	return []*media.Asset{}, nil
}
func (m *AssetRepositoryMock) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	return nil
}

// RateWindowRepositoryMock is a lightweight mock for RateWindowRepository
type RateWindowRepositoryMock struct {
	RecordIfBelowFn func(ctx context.Context, key string, limit int, window time.Duration, now time.Time) (ports.RateWindowState, error)
}

func (m *RateWindowRepositoryMock) RecordIfBelow(ctx context.Context, key string, limit int, window time.Duration, now time.Time) (ports.RateWindowState, error) {
	if m.RecordIfBelowFn != nil {
		return m.RecordIfBelowFn(ctx, key, limit, window, now)
	}
	return ports.RateWindowState{Allowed: true, Count: 1, Oldest: now}, nil
}

// TokenBlacklistMock is a lightweight mock for TokenBlacklist
type TokenBlacklistMock struct {
	RevokeFn    func(ctx context.Context, tokenHash string, expiresAt time.Time) error
	IsRevokedFn func(ctx context.Context, tokenHash string) (bool, error)
}

func (m *TokenBlacklistMock) Revoke(ctx context.Context, tokenHash string, expiresAt time.Time) error {
	if m.RevokeFn != nil {
		return m.RevokeFn(ctx, tokenHash, expiresAt)
	}
	return nil
}
func (m *TokenBlacklistMock) IsRevoked(ctx context.Context, tokenHash string) (bool, error) {
	if m.IsRevokedFn != nil {
		return m.IsRevokedFn(ctx, tokenHash)
	}
	return false, nil
}

// EmailServiceMock is a lightweight mock for EmailService
type EmailServiceMock struct {
	SendContactNotificationFn func(ctx context.Context, req contact.Request) error
}

func (m *EmailServiceMock) SendContactNotification(ctx context.Context, req contact.Request) error {
	if m.SendContactNotificationFn != nil {
		return m.SendContactNotificationFn(ctx, req)
	}
	return nil
}

// ChatModelMock is a lightweight mock for ChatModel
type ChatModelMock struct {
	GenerateFn func(ctx context.Context, systemPrompt string, turns []chat.Message) (string, error)
}

func (m *ChatModelMock) Generate(ctx context.Context, systemPrompt string, turns []chat.Message) (string, error) {
	if m.GenerateFn != nil {
		return m.GenerateFn(ctx, systemPrompt, turns)
	}
	return "ok", nil
}

// SanitizerMock returns input trimmed unless SanitizeFn is set.
type SanitizerMock struct {
	SanitizeFn func(text string) string
}

func (m *SanitizerMock) Sanitize(text string) string {
	if m.SanitizeFn != nil {
		return m.SanitizeFn(text)
	}
	return strings.TrimSpace(text)
}

// AuthServiceMock is a lightweight mock for AuthService
type AuthServiceMock struct {
	LoginFn         func(ctx context.Context, req *auth.LoginRequest) (*auth.TokenResponse, error)
	ValidateTokenFn func(ctx context.Context, token string) (*auth.Claims, error)
	LogoutFn        func(ctx context.Context, token string) error
}

func (m *AuthServiceMock) Login(ctx context.Context, req *auth.LoginRequest) (*auth.TokenResponse, error) {
	if m.LoginFn != nil {
		return m.LoginFn(ctx, req)
	}
	return nil, auth.ErrInvalidCredentials
}
func (m *AuthServiceMock) ValidateToken(ctx context.Context, token string) (*auth.Claims, error) {
	if m.ValidateTokenFn != nil {
		return m.ValidateTokenFn(ctx, token)
	}
	return nil, auth.ErrInvalidToken
}
func (m *AuthServiceMock) Logout(ctx context.Context, token string) error {
	if m.LogoutFn != nil {
		return m.LogoutFn(ctx, token)
	}
	return nil
}

// AssetServiceMock is a lightweight mock for AssetService
type AssetServiceMock struct {
	UploadAssetFn func(ctx context.Context, req media.UploadRequest, meta ports.AssetMeta) (*media.UploadResponse, error)
	ListAssetsFn  func(ctx context.Context, limit, offset int) ([]*media.Asset, error)
	SignedURLFn   func(ctx context.Context, id uuid.UUID, expiry time.Duration) (string, error)
	DeleteAssetFn func(ctx context.Context, id uuid.UUID) error
}

func (m *AssetServiceMock) UploadAsset(ctx context.Context, req media.UploadRequest, meta ports.AssetMeta) (*media.UploadResponse, error) {
	if m.UploadAssetFn != nil {
		return m.UploadAssetFn(ctx, req, meta)
	}
	return &media.UploadResponse{ID: uuid.New(), Filename: req.Filename, FileType: req.ContentType, FileSize: int64(len(req.Data))}, nil
}
func (m *AssetServiceMock) ListAssets(ctx context.Context, limit, offset int) ([]*media.Asset, error) {
	if m.ListAssetsFn != nil {
		return m.ListAssetsFn(ctx, limit, offset)
	}
	return []*media.Asset{}, nil
}
func (m *AssetServiceMock) SignedURL(ctx context.Context, id uuid.UUID, expiry time.Duration) (string, error) {
	if m.SignedURLFn != nil {
		return m.SignedURLFn(ctx, id, expiry)
	}
	return "", media.ErrAssetNotFound
}
func (m *AssetServiceMock) DeleteAsset(ctx context.Context, id uuid.UUID) error {
	if m.DeleteAssetFn != nil {
		return m.DeleteAssetFn(ctx, id)
	}
	return nil
}

// ContactServiceMock is a lightweight mock for ContactService
type ContactServiceMock struct {
	SubmitFn func(ctx context.Context, req *contact.Request) error
}

func (m *ContactServiceMock) Submit(ctx context.Context, req *contact.Request) error {
	if m.SubmitFn != nil {
		return m.SubmitFn(ctx, req)
	}
	return nil
}

// ChatServiceMock is a lightweight mock for ChatService
type ChatServiceMock struct {
	ReplyFn      func(ctx context.Context, req *chat.Request) (*chat.Response, error)
	ConfiguredFn func() bool
}

func (m *ChatServiceMock) Reply(ctx context.Context, req *chat.Request) (*chat.Response, error) {
	if m.ReplyFn != nil {
		return m.ReplyFn(ctx, req)
	}
	return &chat.Response{Response: "ok", Suggestions: []string{}, Actions: []chat.Action{}}, nil
}
func (m *ChatServiceMock) Configured() bool {
	if m.ConfiguredFn != nil {
		return m.ConfiguredFn()
	}
	return true
}

// MemoryCache is an in-process ports.Cache that ignores TTLs.
type MemoryCache struct {
	mu   sync.Mutex
	data map[string][]byte
	Gets int
}

func NewMemoryCache() *MemoryCache {
	return &MemoryCache{data: make(map[string][]byte)}
}

func (c *MemoryCache) Get(_ context.Context, key string) ([]byte, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Gets++
	v, ok := c.data[key]
	return v, ok, nil
}
func (c *MemoryCache) Set(_ context.Context, key string, value []byte, _ time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[key] = append([]byte(nil), value...)
	return nil
}
func (c *MemoryCache) Delete(_ context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.data, key)
	return nil
}

// ObjectStoreFake keeps objects in memory and mimics a remote blob store's URL shape.
type ObjectStoreFake struct {
	mu        sync.Mutex
	objects   map[string][]byte
	BaseURL   string
	Name      string
	PutErr    func(name string) error
	DeleteErr func(name string) error
}

func NewObjectStoreFake() *ObjectStoreFake {
	return &ObjectStoreFake{objects: make(map[string][]byte), BaseURL: "https://fake.blob.local/assets", Name: "assets"}
}

func (s *ObjectStoreFake) Put(_ context.Context, name string, data []byte, _ string) (string, error) {
	if s.PutErr != nil {
		if err := s.PutErr(name); err != nil {
			return "", err
		}
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.objects[name] = append([]byte(nil), data...)
	return s.BaseURL + "/" + name, nil
}

func (s *ObjectStoreFake) Delete(_ context.Context, name string) error {
	if s.DeleteErr != nil {
		if err := s.DeleteErr(name); err != nil {
			return err
		}
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.objects[name]; !ok {
		return media.ErrObjectNotFound
	}
	delete(s.objects, name)
	return nil
}

func (s *ObjectStoreFake) SignedURL(name string, expiry time.Duration) (string, error) {
	return fmt.Sprintf("%s/%s?se=%d", s.BaseURL, name, int(expiry.Seconds())), nil
}

func (s *ObjectStoreFake) Backend() media.Backend { return media.BackendAzure }
func (s *ObjectStoreFake) Container() string      { return s.Name }

func (s *ObjectStoreFake) Ping(context.Context) error { return nil }

// Object returns the stored bytes for name.
func (s *ObjectStoreFake) Object(name string) ([]byte, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.objects[name]
	return b, ok
}

// Names lists stored object names in sorted order.
func (s *ObjectStoreFake) Names() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, 0, len(s.objects))
	for k := range s.objects {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// RateLimiterServiceMock is a lightweight mock for RateLimiterService
type RateLimiterServiceMock struct {
	AllowFn func(ctx context.Context, key string, limit int) ports.RateDecision
}

func (m *RateLimiterServiceMock) CheckAndRecord(ctx context.Context, key string, limit int) bool {
	return m.Allow(ctx, key, limit).Allowed
}
func (m *RateLimiterServiceMock) Allow(ctx context.Context, key string, limit int) ports.RateDecision {
	if m.AllowFn != nil {
		return m.AllowFn(ctx, key, limit)
	}
	return ports.RateDecision{Allowed: true, Limit: limit, Remaining: limit}
}

// HealthCheckerStub reports Err from Check.
type HealthCheckerStub struct {
	CheckerName string
	Err         error
}

func (h *HealthCheckerStub) Name() string                { return h.CheckerName }
func (h *HealthCheckerStub) Check(context.Context) error { return h.Err }
