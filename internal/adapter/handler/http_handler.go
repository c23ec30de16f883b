package handler

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/nimbus-pos/nimbus/internal/core/domain"
	"github.com/nimbus-pos/nimbus/internal/core/service"
	"github.com/nimbus-pos/nimbus/internal/port"
)

// maxPhotoBytes caps uploaded photo size (multipart memory budget).
const maxPhotoBytes = 8 << 20

// requestTimeout bounds every storage interaction behind a request.
const requestTimeout = 5 * time.Second

type HTTPHandler struct {
	enrollment *service.EnrollmentService
	payment    *service.PaymentService
	extractor  port.FeatureExtractor
	logger     *zap.Logger
}

func NewHTTPHandler(enrollment *service.EnrollmentService, payment *service.PaymentService, extractor port.FeatureExtractor, logger *zap.Logger) *HTTPHandler {
	return &HTTPHandler{
		enrollment: enrollment,
		payment:    payment,
		extractor:  extractor,
		logger:     logger,
	}
}

// Routes mounts the API on a chi router.
func (h *HTTPHandler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Get("/health", h.HealthCheck)
	r.Route("/api", func(r chi.Router) {
		r.Post("/signup", h.Signup)
		r.Post("/pay", h.Pay)
		r.Get("/identities", h.ListIdentities)
	})
	return r
}

type identityResponse struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	Balance float64 `json:"balance"`
}

type identityDump struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Embedding []float64 `json:"embedding"`
	Balance   float64   `json:"balance"`
}

type receiptItemResponse struct {
	TransactionItemID string  `json:"transaction_item_id"`
	TransactionID     string  `json:"transaction_id"`
	ItemID            string  `json:"item_id"`
	Quantity          int     `json:"quantity"`
	Price             float64 `json:"price"`
}

type receiptResponse struct {
	TransactionID string                `json:"transaction_id"`
	UserName      string                `json:"user_name"`
	Amount        float64               `json:"amount"`
	TotalQuantity int                   `json:"total_quantity"`
	Description   string                `json:"description"`
	Balance       float64               `json:"balance"`
	CreatedAt     time.Time             `json:"created_at"`
	Items         []receiptItemResponse `json:"items"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (h *HTTPHandler) Signup(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := contextWithTimeout(r)
	defer cancel()

	if err := r.ParseMultipartForm(maxPhotoBytes); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid multipart form"})
		return
	}
	name := r.FormValue("name")
	if name == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "missing name"})
		return
	}
	photo, err := readFormFile(r, "photo")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "missing photo"})
		return
	}

	vec, err := h.extractor.Extract(ctx, photo)
	if err != nil {
		h.writeError(w, err)
		return
	}

	identity, err := h.enrollment.Enroll(ctx, name, vec)
	if err != nil {
		h.writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, identityResponse{
		ID:      identity.ID,
		Name:    identity.Name,
		Balance: identity.Balance,
	})
}

func (h *HTTPHandler) Pay(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := contextWithTimeout(r)
	defer cancel()

	if err := r.ParseMultipartForm(maxPhotoBytes); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid multipart form"})
		return
	}
	photo, err := readFormFile(r, "photo")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "missing photo"})
		return
	}

	var req domain.PurchaseRequest
	if raw := r.FormValue("request"); raw == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "missing request"})
		return
	} else if err := json.Unmarshal([]byte(raw), &req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "malformed request"})
		return
	}

	vec, err := h.extractor.Extract(ctx, photo)
	if err != nil {
		h.writeError(w, err)
		return
	}

	receipt, err := h.payment.Pay(ctx, vec, req)
	if err != nil {
		h.writeError(w, err)
		return
	}

	items := make([]receiptItemResponse, 0, len(receipt.Items))
	for _, it := range receipt.Items {
		items = append(items, receiptItemResponse{
			TransactionItemID: it.ID,
			TransactionID:     it.TransactionID,
			ItemID:            it.ItemID,
			Quantity:          it.Quantity,
			Price:             it.Price,
		})
	}
	writeJSON(w, http.StatusOK, receiptResponse{
		TransactionID: receipt.Transaction.ID,
		UserName:      receipt.IdentityName,
		Amount:        receipt.Transaction.Amount,
		TotalQuantity: receipt.Transaction.TotalQuantity,
		Description:   receipt.Transaction.Description,
		Balance:       receipt.Transaction.Balance,
		CreatedAt:     receipt.Transaction.CreatedAt,
		Items:         items,
	})
}

func (h *HTTPHandler) ListIdentities(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := contextWithTimeout(r)
	defer cancel()

	identities, err := h.enrollment.List(ctx)
	if err != nil {
		h.writeError(w, err)
		return
	}

	out := make([]identityDump, 0, len(identities))
	for _, id := range identities {
		out = append(out, identityDump{
			ID:        id.ID,
			Name:      id.Name,
			Embedding: id.Embedding,
			Balance:   id.Balance,
		})
	}
	writeJSON(w, http.StatusOK, map[string]any{"identities": out})
}

func (h *HTTPHandler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// writeError maps user-triggerable failures to specific statuses and
// everything else to an opaque 500, with the detail only in the log.
func (h *HTTPHandler) writeError(w http.ResponseWriter, err error) {
	var oos *domain.OutOfStockError
	switch {
	case errors.Is(err, domain.ErrInvalidImage):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid image"})
	case errors.Is(err, domain.ErrNoFaceDetected):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "no face detected"})
	case errors.Is(err, service.ErrInvalidRequest):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
	case errors.Is(err, service.ErrUnauthorized):
		writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "face not recognized"})
	case errors.Is(err, domain.ErrInsufficientFunds):
		writeJSON(w, http.StatusPaymentRequired, errorResponse{Error: "insufficient funds"})
	case errors.As(err, &oos):
		writeJSON(w, http.StatusConflict, errorResponse{Error: oos.Error()})
	case errors.Is(err, service.ErrDuplicateRequest):
		writeJSON(w, http.StatusConflict, errorResponse{Error: "duplicate request"})
	default:
		h.logger.Error("request failed", zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
	}
}

func contextWithTimeout(r *http.Request) (ctx context.Context, cancel context.CancelFunc) {
	return context.WithTimeout(r.Context(), requestTimeout)
}

func readFormFile(r *http.Request, field string) ([]byte, error) {
	f, _, err := r.FormFile(field)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(io.LimitReader(f, maxPhotoBytes))
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}
