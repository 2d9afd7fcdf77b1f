package grpc

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/accountkeeper/internal/common"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// toStatus turns a service error into the status the caller sees. Credential
// and token failures collapse into one message each; internals never leak.
func (s *GRPCServer) toStatus(ctx context.Context, err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, common.ErrInvalidCredentials):
		return status.Error(codes.Unauthenticated, "invalid credentials")
	case errors.Is(err, common.ErrInvalidToken), errors.Is(err, common.ErrTokenExpired):
		return status.Error(codes.Unauthenticated, "invalid or expired token")
	case errors.Is(err, common.ErrRateLimited):
		return status.Error(codes.ResourceExhausted, "too many attempts, try again later")
	case errors.Is(err, common.ErrorValidation):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, common.ErrInvalidCode):
		return status.Error(codes.InvalidArgument, common.ErrInvalidCode.Error())
	case errors.Is(err, common.ErrAlreadyExists):
		return status.Error(codes.AlreadyExists, "already exists")
	case errors.Is(err, common.ErrWalletLimitExceeded):
		return status.Error(codes.FailedPrecondition, common.ErrWalletLimitExceeded.Error())
	case errors.Is(err, common.ErrExhaustedRetries):
		s.logger.Error(ctx, "identifier space exhausted", "request_id", requestIDFromContext(ctx), "error", err)
		return status.Error(codes.Internal, "identifier allocation failed")
	case errors.Is(err, context.Canceled):
		return status.Error(codes.Canceled, "canceled")
	case errors.Is(err, context.DeadlineExceeded):
		return status.Error(codes.DeadlineExceeded, "deadline exceeded")
	}

	s.logger.Error(ctx, "request failed", "request_id", requestIDFromContext(ctx), "error", err)
	return status.Error(codes.Internal, "internal error")
}
