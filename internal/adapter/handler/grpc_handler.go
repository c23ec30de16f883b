package handler

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/nimbus-pos/nimbus/internal/adapter/handler/pb"
	"github.com/nimbus-pos/nimbus/internal/core/domain"
	"github.com/nimbus-pos/nimbus/internal/core/service"
	"github.com/nimbus-pos/nimbus/internal/port"
)

type GRPCHandler struct {
	pb.UnimplementedNimbusServiceServer
	enrollment *service.EnrollmentService
	payment    *service.PaymentService
	extractor  port.FeatureExtractor
	logger     *zap.Logger
}

func NewGRPCHandler(enrollment *service.EnrollmentService, payment *service.PaymentService, extractor port.FeatureExtractor, logger *zap.Logger) *GRPCHandler {
	return &GRPCHandler{
		enrollment: enrollment,
		payment:    payment,
		extractor:  extractor,
		logger:     logger,
	}
}

func (h *GRPCHandler) Enroll(ctx context.Context, req *pb.EnrollRequest) (*pb.EnrollResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	vec, err := h.extractor.Extract(ctx, req.GetPhoto())
	if err != nil {
		return nil, h.toStatus(err)
	}

	identity, err := h.enrollment.Enroll(ctx, req.GetName(), vec)
	if err != nil {
		return nil, h.toStatus(err)
	}

	return &pb.EnrollResponse{
		Id:      identity.ID,
		Name:    identity.Name,
		Balance: identity.Balance,
	}, nil
}

func (h *GRPCHandler) Pay(ctx context.Context, req *pb.PayRequest) (*pb.PayResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	vec, err := h.extractor.Extract(ctx, req.GetPhoto())
	if err != nil {
		return nil, h.toStatus(err)
	}

	purchase := domain.PurchaseRequest{
		RequestID:   req.GetRequestId(),
		Description: req.GetDescription(),
		TotalAmount: req.GetTotalAmount(),
	}
	for _, it := range req.GetItems() {
		purchase.Items = append(purchase.Items, domain.PurchaseItem{
			ItemID:   it.GetItemId(),
			Quantity: int(it.GetQuantity()),
			Price:    it.GetPrice(),
		})
	}

	receipt, err := h.payment.Pay(ctx, vec, purchase)
	if err != nil {
		return nil, h.toStatus(err)
	}

	resp := &pb.PayResponse{
		TransactionId: receipt.Transaction.ID,
		UserName:      receipt.IdentityName,
		Amount:        receipt.Transaction.Amount,
		TotalQuantity: int32(receipt.Transaction.TotalQuantity),
		Description:   receipt.Transaction.Description,
		Balance:       receipt.Transaction.Balance,
		CreatedAt:     receipt.Transaction.CreatedAt.Unix(),
	}
	for _, it := range receipt.Items {
		resp.Items = append(resp.Items, &pb.ReceiptItem{
			TransactionItemId: it.ID,
			ItemId:            it.ItemID,
			Quantity:          int32(it.Quantity),
			Price:             it.Price,
		})
	}
	return resp, nil
}

// toStatus maps service errors to gRPC codes; anything unexpected is
// logged in full and returned as an opaque Internal.
func (h *GRPCHandler) toStatus(err error) error {
	var oos *domain.OutOfStockError
	switch {
	case errors.Is(err, domain.ErrInvalidImage):
		return status.Error(codes.InvalidArgument, "invalid image")
	case errors.Is(err, domain.ErrNoFaceDetected):
		return status.Error(codes.InvalidArgument, "no face detected")
	case errors.Is(err, service.ErrInvalidRequest):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, service.ErrUnauthorized):
		return status.Error(codes.Unauthenticated, "face not recognized")
	case errors.Is(err, domain.ErrInsufficientFunds):
		return status.Error(codes.FailedPrecondition, "insufficient funds")
	case errors.As(err, &oos):
		return status.Error(codes.FailedPrecondition, oos.Error())
	case errors.Is(err, service.ErrDuplicateRequest):
		return status.Error(codes.AlreadyExists, "duplicate request")
	default:
		h.logger.Error("request failed", zap.Error(err))
		return status.Error(codes.Internal, "internal error")
	}
}
