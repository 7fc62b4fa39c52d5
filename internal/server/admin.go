package server

import (
	"context"
	"errors"
	"strings"
	"time"

	"log/slog"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/joseph-ayodele/docuvault/constants"
	docuvaultpb "github.com/joseph-ayodele/docuvault/gen/proto/docuvault/v1"
	"github.com/joseph-ayodele/docuvault/internal/common"
	"github.com/joseph-ayodele/docuvault/internal/export"
	"github.com/joseph-ayodele/docuvault/internal/repository"
)

type AdminService struct {
	docuvaultpb.UnimplementedAdminServiceServer
	docs     repository.DocumentRepository
	users    repository.UserRepository
	activity repository.ActivityRepository
	exporter *export.Service
	logger   *slog.Logger
}

func NewAdminService(docs repository.DocumentRepository, users repository.UserRepository, activity repository.ActivityRepository, exporter *export.Service, logger *slog.Logger) *AdminService {
	return &AdminService{
		docs:     docs,
		users:    users,
		activity: activity,
		exporter: exporter,
		logger:   logger,
	}
}

// UpdateFraudStatus is the manual review override: an admin replaces the
// heuristic verdict and the change lands in the audit trail.
func (s *AdminService) UpdateFraudStatus(ctx context.Context, req *docuvaultpb.UpdateFraudStatusRequest) (*docuvaultpb.UpdateFraudStatusResponse, error) {
	documentID, err := parseUUIDField(req.GetDocumentId(), "document_id")
	if err != nil {
		return nil, err
	}
	reviewerID, err := parseUUIDField(req.GetReviewerId(), "reviewer_id")
	if err != nil {
		return nil, err
	}
	if !constants.IsValidFraudStatus(req.GetFraudStatus()) {
		return nil, status.Errorf(codes.InvalidArgument, "unknown fraud_status %q", req.GetFraudStatus())
	}

	admin, err := s.users.IsAdmin(ctx, reviewerID)
	if err != nil {
		s.logger.Error("reviewer lookup failed", "reviewer_id", reviewerID, "error", err)
		return nil, toStatus(err, "reviewer lookup failed")
	}
	if !admin {
		s.logger.Warn("fraud status update denied", "reviewer_id", reviewerID)
		return nil, status.Error(codes.PermissionDenied, "only admins can update fraud status")
	}

	rec, err := s.docs.UpdateFraudStatus(ctx, documentID, constants.FraudStatus(req.GetFraudStatus()), strings.TrimSpace(req.GetReason()), reviewerID)
	if err != nil {
		s.logger.Error("fraud status update failed", "document_id", documentID, "error", err)
		return nil, toStatus(err, "fraud status update failed")
	}

	if err := s.activity.Record(ctx, reviewerID, &documentID, constants.ActivityVerification, req.GetFraudStatus()); err != nil {
		s.logger.Warn("activity record failed", "document_id", documentID, "error", err)
	}
	return &docuvaultpb.UpdateFraudStatusResponse{Document: toPBDocument(rec)}, nil
}

func (s *AdminService) DashboardStats(ctx context.Context, _ *docuvaultpb.DashboardStatsRequest) (*docuvaultpb.DashboardStatsResponse, error) {
	stats, err := s.docs.Stats(ctx)
	if err != nil {
		s.logger.Error("failed to load dashboard stats", "error", err)
		return nil, toStatus(err, "dashboard stats failed")
	}
	return &docuvaultpb.DashboardStatsResponse{
		TotalDocuments: int32(stats.TotalDocuments),
		Verified:       int32(stats.Verified),
		Suspicious:     int32(stats.Suspicious),
		Rejected:       int32(stats.Rejected),
		Pending:        int32(stats.Pending),
	}, nil
}

func (s *AdminService) CategoryStats(ctx context.Context, _ *docuvaultpb.CategoryStatsRequest) (*docuvaultpb.CategoryStatsResponse, error) {
	rows, err := s.docs.CountByCategory(ctx)
	if err != nil {
		s.logger.Error("failed to load category stats", "error", err)
		return nil, toStatus(err, "category stats failed")
	}
	out := make([]*docuvaultpb.CategoryCount, 0, len(rows))
	for _, row := range rows {
		out = append(out, &docuvaultpb.CategoryCount{
			Category: row.Category,
			Count:    int32(row.Count),
		})
	}
	return &docuvaultpb.CategoryStatsResponse{Categories: out}, nil
}

func (s *AdminService) RecentActivity(ctx context.Context, req *docuvaultpb.RecentActivityRequest) (*docuvaultpb.RecentActivityResponse, error) {
	entries, err := s.activity.Recent(ctx, int(req.GetLimit()))
	if err != nil {
		s.logger.Error("failed to load recent activity", "error", err)
		return nil, toStatus(err, "recent activity failed")
	}
	out := make([]*docuvaultpb.ActivityEntry, 0, len(entries))
	for _, e := range entries {
		entry := &docuvaultpb.ActivityEntry{
			Id:        e.ID.String(),
			UserId:    e.UserID.String(),
			Type:      e.Type,
			CreatedAt: e.CreatedAt.UTC().Format(time.RFC3339),
		}
		if e.DocumentID != nil {
			entry.DocumentId = e.DocumentID.String()
		}
		if e.Detail != nil {
			entry.Detail = *e.Detail
		}
		out = append(out, entry)
	}
	return &docuvaultpb.RecentActivityResponse{Entries: out}, nil
}

func (s *AdminService) CreateUser(ctx context.Context, req *docuvaultpb.CreateUserRequest) (*docuvaultpb.CreateUserResponse, error) {
	name := strings.TrimSpace(req.GetName())
	email := strings.TrimSpace(req.GetEmail())
	if name == "" {
		return nil, status.Error(codes.InvalidArgument, "name is required")
	}
	if email == "" || !strings.Contains(email, "@") {
		return nil, status.Error(codes.InvalidArgument, "a valid email is required")
	}
	role := strings.TrimSpace(req.GetRole())
	if role != "" && role != "user" && role != repository.RoleAdmin {
		return nil, status.Errorf(codes.InvalidArgument, "unknown role %q", role)
	}

	if _, err := s.users.GetByEmail(ctx, email); err == nil {
		return nil, status.Error(codes.AlreadyExists, "a user with this email already exists")
	} else if !errors.Is(err, common.ErrNotFound) {
		s.logger.Error("user lookup failed", "email", email, "error", err)
		return nil, toStatus(err, "create user failed")
	}

	u, err := s.users.CreateUser(ctx, name, email, role)
	if err != nil {
		s.logger.Error("create user failed", "email", email, "error", err)
		return nil, toStatus(err, "create user failed")
	}
	s.logger.Info("user created", "user_id", u.ID, "role", u.Role)
	return &docuvaultpb.CreateUserResponse{User: toPBUser(u)}, nil
}

func (s *AdminService) ListUsers(ctx context.Context, _ *docuvaultpb.ListUsersRequest) (*docuvaultpb.ListUsersResponse, error) {
	us, err := s.users.ListUsers(ctx)
	if err != nil {
		s.logger.Error("failed to list users", "error", err)
		return nil, toStatus(err, "list users failed")
	}
	out := make([]*docuvaultpb.User, 0, len(us))
	for _, u := range us {
		out = append(out, toPBUser(u))
	}
	return &docuvaultpb.ListUsersResponse{Users: out}, nil
}

func (s *AdminService) ExportDocuments(ctx context.Context, req *docuvaultpb.ExportDocumentsRequest) (*docuvaultpb.ExportDocumentsResponse, error) {
	filter := repository.ListFilter{}
	if c := strings.TrimSpace(req.GetCategory()); c != "" {
		cat, ok := constants.Canonicalize(c)
		if !ok {
			return nil, status.Errorf(codes.InvalidArgument, "unknown category %q", c)
		}
		filter.Category = cat
	}
	if fs := strings.TrimSpace(req.GetFraudStatus()); fs != "" {
		if !constants.IsValidFraudStatus(fs) {
			return nil, status.Errorf(codes.InvalidArgument, "unknown fraud_status %q", fs)
		}
		filter.FraudStatus = constants.FraudStatus(fs)
	}

	xlsx, err := s.exporter.ExportDocumentsXLSX(ctx, filter)
	if err != nil {
		s.logger.Error("export failed", "error", err)
		return nil, toStatus(err, "export failed")
	}
	return &docuvaultpb.ExportDocumentsResponse{Xlsx: xlsx}, nil
}
