package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/nimbus-pos/nimbus/internal/core/domain"
	"github.com/nimbus-pos/nimbus/internal/core/embedding"
	"github.com/nimbus-pos/nimbus/internal/core/service"
)

// fakeExtractor maps photo bytes to a canned vector or error, standing
// in for the embedding sidecar.
type fakeExtractor struct {
	vectors map[string][]float64
	err     error
}

func (f *fakeExtractor) Extract(_ context.Context, photo []byte) ([]float64, error) {
	if f.err != nil {
		return nil, f.err
	}
	if vec, ok := f.vectors[string(photo)]; ok {
		return vec, nil
	}
	return nil, domain.ErrNoFaceDetected
}

type fakeDB struct {
	mu         sync.Mutex
	identities []domain.Identity
	inventory  map[string]int
	failCreate error
}

func (f *fakeDB) CreateIdentity(_ context.Context, identity domain.Identity) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failCreate != nil {
		return f.failCreate
	}
	f.identities = append(f.identities, identity)
	return nil
}

func (f *fakeDB) ListIdentities(_ context.Context) ([]domain.Identity, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]domain.Identity(nil), f.identities...), nil
}

func (f *fakeDB) GetInventory(_ context.Context, itemID string) (*domain.InventoryEntry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	remaining, ok := f.inventory[itemID]
	if !ok {
		return nil, nil
	}
	return &domain.InventoryEntry{ItemID: itemID, Remaining: remaining}, nil
}

func (f *fakeDB) ListInventory(_ context.Context) ([]domain.InventoryEntry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]domain.InventoryEntry, 0, len(f.inventory))
	for id, remaining := range f.inventory {
		out = append(out, domain.InventoryEntry{ItemID: id, Remaining: remaining})
	}
	return out, nil
}

func (f *fakeDB) CommitPurchase(_ context.Context, identityID string, req domain.PurchaseRequest) (*domain.Receipt, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var identity *domain.Identity
	for i := range f.identities {
		if f.identities[i].ID == identityID {
			identity = &f.identities[i]
			break
		}
	}
	if identity == nil {
		return nil, domain.ErrIdentityNotFound
	}
	if identity.Balance < req.TotalAmount {
		return nil, domain.ErrInsufficientFunds
	}
	for _, it := range req.Items {
		if f.inventory[it.ItemID] < it.Quantity {
			return nil, &domain.OutOfStockError{ItemID: it.ItemID}
		}
	}

	identity.Balance -= req.TotalAmount
	txn := domain.Transaction{
		ID:            uuid.NewString(),
		IdentityID:    identityID,
		Amount:        req.TotalAmount,
		TotalQuantity: req.TotalQuantity(),
		Description:   req.Description,
		Balance:       identity.Balance,
		CreatedAt:     time.Now(),
	}
	items := make([]domain.TransactionItem, 0, len(req.Items))
	for _, it := range req.Items {
		f.inventory[it.ItemID] -= it.Quantity
		items = append(items, domain.TransactionItem{
			ID:            uuid.NewString(),
			TransactionID: txn.ID,
			ItemID:        it.ItemID,
			Quantity:      it.Quantity,
			Price:         it.Price,
		})
	}
	return &domain.Receipt{Transaction: txn, Items: items, IdentityName: identity.Name}, nil
}

type fakeCache struct {
	mu    sync.Mutex
	stock map[string]int
	keys  map[string]bool
}

func newFakeCache() *fakeCache {
	return &fakeCache{stock: map[string]int{}, keys: map[string]bool{}}
}

func (f *fakeCache) DecrementStock(_ context.Context, itemID string, quantity int) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.stock[itemID] < quantity {
		return false, nil
	}
	f.stock[itemID] -= quantity
	return true, nil
}

func (f *fakeCache) IncrementStock(_ context.Context, itemID string, quantity int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.stock[itemID] += quantity
	return nil
}

func (f *fakeCache) SetStock(_ context.Context, itemID string, quantity int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.stock[itemID] = quantity
	return nil
}

func (f *fakeCache) SetIdempotency(_ context.Context, key string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.keys[key] {
		return false, nil
	}
	f.keys[key] = true
	return true, nil
}

func (f *fakeCache) ReleaseIdempotency(_ context.Context, key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.keys, key)
	return nil
}

type handlerEnv struct {
	db        *fakeDB
	cache     *fakeCache
	extractor *fakeExtractor
	store     *embedding.Store
	server    *httptest.Server
}

func newHandlerEnv(t *testing.T) *handlerEnv {
	t.Helper()
	db := &fakeDB{inventory: map[string]int{}}
	cache := newFakeCache()
	extractor := &fakeExtractor{vectors: map[string][]float64{}}
	store := embedding.NewStore(domain.EmbeddingDim)
	logger := zap.NewNop()

	enrollment := service.NewEnrollmentService(db, store, logger)
	payment := service.NewPaymentService(db, cache, store, service.MatchThreshold, logger)
	h := NewHTTPHandler(enrollment, payment, extractor, logger)

	srv := httptest.NewServer(h.Routes())
	t.Cleanup(srv.Close)
	return &handlerEnv{db: db, cache: cache, extractor: extractor, store: store, server: srv}
}

func (e *handlerEnv) knownFace(photo string) []float64 {
	vec := make([]float64, domain.EmbeddingDim)
	vec[0] = 1
	e.extractor.vectors[photo] = vec
	return vec
}

func multipartBody(t *testing.T, fields map[string]string, photo string) (*bytes.Buffer, string) {
	t.Helper()
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	if photo != "" {
		fw, err := mw.CreateFormFile("photo", "photo.jpg")
		require.NoError(t, err)
		_, err = fw.Write([]byte(photo))
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())
	return &body, mw.FormDataContentType()
}

func postForm(t *testing.T, url string, fields map[string]string, photo string) *http.Response {
	t.Helper()
	body, contentType := multipartBody(t, fields, photo)
	resp, err := http.Post(url, contentType, body)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func decodeBody[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func TestSignup_Created(t *testing.T) {
	env := newHandlerEnv(t)
	env.knownFace("alice.jpg")

	resp := postForm(t, env.server.URL+"/api/signup", map[string]string{"name": "alice"}, "alice.jpg")
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	out := decodeBody[identityResponse](t, resp)
	assert.NotEmpty(t, out.ID)
	assert.Equal(t, "alice", out.Name)
	assert.Equal(t, service.InitialBalance, out.Balance)
	assert.Equal(t, 1, env.store.Len())
}

func TestSignup_MissingName(t *testing.T) {
	env := newHandlerEnv(t)
	env.knownFace("alice.jpg")

	resp := postForm(t, env.server.URL+"/api/signup", nil, "alice.jpg")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestSignup_MissingPhoto(t *testing.T) {
	env := newHandlerEnv(t)

	resp := postForm(t, env.server.URL+"/api/signup", map[string]string{"name": "alice"}, "")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestSignup_NoFace(t *testing.T) {
	env := newHandlerEnv(t)

	resp := postForm(t, env.server.URL+"/api/signup", map[string]string{"name": "alice"}, "landscape.jpg")
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	out := decodeBody[errorResponse](t, resp)
	assert.Equal(t, "no face detected", out.Error)
}

func TestSignup_InvalidImage(t *testing.T) {
	env := newHandlerEnv(t)
	env.extractor.err = domain.ErrInvalidImage

	resp := postForm(t, env.server.URL+"/api/signup", map[string]string{"name": "alice"}, "garbage")
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	out := decodeBody[errorResponse](t, resp)
	assert.Equal(t, "invalid image", out.Error)
}

func payRequestJSON(t *testing.T, req domain.PurchaseRequest) string {
	t.Helper()
	raw, err := json.Marshal(req)
	require.NoError(t, err)
	return string(raw)
}

func enrollAndStock(t *testing.T, env *handlerEnv) {
	t.Helper()
	env.knownFace("alice.jpg")
	resp := postForm(t, env.server.URL+"/api/signup", map[string]string{"name": "alice"}, "alice.jpg")
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	env.db.inventory["7"] = 10
	env.cache.stock["7"] = 10
}

func TestPay_Success(t *testing.T) {
	env := newHandlerEnv(t)
	enrollAndStock(t, env)

	req := domain.PurchaseRequest{
		Description: "lunch",
		TotalAmount: 60,
		Items:       []domain.PurchaseItem{{ItemID: "7", Quantity: 2, Price: 30}},
	}
	resp := postForm(t, env.server.URL+"/api/pay", map[string]string{"request": payRequestJSON(t, req)}, "alice.jpg")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	out := decodeBody[receiptResponse](t, resp)
	assert.Equal(t, "alice", out.UserName)
	assert.Equal(t, 60.0, out.Amount)
	assert.Equal(t, 2, out.TotalQuantity)
	assert.Equal(t, 40.0, out.Balance)
	require.Len(t, out.Items, 1)
	assert.Equal(t, "7", out.Items[0].ItemID)
	assert.Equal(t, 8, env.db.inventory["7"])
}

func TestPay_Unrecognized(t *testing.T) {
	env := newHandlerEnv(t)
	enrollAndStock(t, env)

	stranger := make([]float64, domain.EmbeddingDim)
	stranger[0] = 50
	env.extractor.vectors["mallory.jpg"] = stranger

	req := domain.PurchaseRequest{
		TotalAmount: 30,
		Items:       []domain.PurchaseItem{{ItemID: "7", Quantity: 1, Price: 30}},
	}
	resp := postForm(t, env.server.URL+"/api/pay", map[string]string{"request": payRequestJSON(t, req)}, "mallory.jpg")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestPay_InsufficientFunds(t *testing.T) {
	env := newHandlerEnv(t)
	enrollAndStock(t, env)
	env.cache.stock["7"] = 100
	env.db.inventory["7"] = 100

	req := domain.PurchaseRequest{
		TotalAmount: 150,
		Items:       []domain.PurchaseItem{{ItemID: "7", Quantity: 5, Price: 30}},
	}
	resp := postForm(t, env.server.URL+"/api/pay", map[string]string{"request": payRequestJSON(t, req)}, "alice.jpg")
	assert.Equal(t, http.StatusPaymentRequired, resp.StatusCode)
}

func TestPay_OutOfStock(t *testing.T) {
	env := newHandlerEnv(t)
	enrollAndStock(t, env)
	env.db.inventory["7"] = 1
	env.cache.stock["7"] = 1

	req := domain.PurchaseRequest{
		TotalAmount: 60,
		Items:       []domain.PurchaseItem{{ItemID: "7", Quantity: 2, Price: 30}},
	}
	resp := postForm(t, env.server.URL+"/api/pay", map[string]string{"request": payRequestJSON(t, req)}, "alice.jpg")
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
}

func TestPay_DuplicateRequest(t *testing.T) {
	env := newHandlerEnv(t)
	enrollAndStock(t, env)

	req := domain.PurchaseRequest{
		RequestID:   "req-1",
		TotalAmount: 30,
		Items:       []domain.PurchaseItem{{ItemID: "7", Quantity: 1, Price: 30}},
	}
	fields := map[string]string{"request": payRequestJSON(t, req)}

	resp := postForm(t, env.server.URL+"/api/pay", fields, "alice.jpg")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = postForm(t, env.server.URL+"/api/pay", fields, "alice.jpg")
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, 9, env.db.inventory["7"])
}

func TestPay_MalformedRequest(t *testing.T) {
	env := newHandlerEnv(t)
	enrollAndStock(t, env)

	resp := postForm(t, env.server.URL+"/api/pay", map[string]string{"request": "{not-json"}, "alice.jpg")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestPay_MissingRequest(t *testing.T) {
	env := newHandlerEnv(t)
	enrollAndStock(t, env)

	resp := postForm(t, env.server.URL+"/api/pay", nil, "alice.jpg")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestListIdentities_DumpsEmbeddings(t *testing.T) {
	env := newHandlerEnv(t)
	enrollAndStock(t, env)

	resp, err := http.Get(env.server.URL + "/api/identities")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	out := decodeBody[map[string][]identityDump](t, resp)
	require.Len(t, out["identities"], 1)
	assert.Equal(t, "alice", out["identities"][0].Name)
	assert.Len(t, out["identities"][0].Embedding, domain.EmbeddingDim)
}

func TestHealthCheck(t *testing.T) {
	env := newHandlerEnv(t)

	resp, err := http.Get(env.server.URL + "/health")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
