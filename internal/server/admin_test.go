package server

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/joseph-ayodele/docuvault/gen/ent"
	docuvaultpb "github.com/joseph-ayodele/docuvault/gen/proto/docuvault/v1"
	"github.com/joseph-ayodele/docuvault/internal/common"
	"github.com/joseph-ayodele/docuvault/internal/repository"
)

// stubUserRepo keeps users in memory, keyed by lowercased email.
type stubUserRepo struct {
	repository.UserRepository
	byEmail map[string]*ent.User
	created []*ent.User
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{byEmail: map[string]*ent.User{}}
}

func (s *stubUserRepo) GetByEmail(_ context.Context, email string) (*ent.User, error) {
	if u, ok := s.byEmail[strings.ToLower(strings.TrimSpace(email))]; ok {
		return u, nil
	}
	return nil, common.NewAppError("USER_NOT_FOUND", "user not found", common.ErrNotFound)
}

func (s *stubUserRepo) CreateUser(_ context.Context, name, email, role string) (*ent.User, error) {
	if role == "" {
		role = "user"
	}
	u := &ent.User{
		ID:        uuid.New(),
		Name:      name,
		Email:     strings.ToLower(strings.TrimSpace(email)),
		Role:      role,
		CreatedAt: time.Now(),
	}
	s.byEmail[u.Email] = u
	s.created = append(s.created, u)
	return u, nil
}

func (s *stubUserRepo) ListUsers(context.Context) ([]*ent.User, error) {
	return s.created, nil
}

func TestCreateUser(t *testing.T) {
	users := newStubUserRepo()
	svc := NewAdminService(nil, users, &stubActivity{}, nil, discardLogger())

	resp, err := svc.CreateUser(context.Background(), &docuvaultpb.CreateUserRequest{
		Name:  "Dana Reviewer",
		Email: "Dana@Example.com",
	})
	if err != nil {
		t.Fatalf("CreateUser: %v", err)
	}
	if resp.GetUser().GetEmail() != "dana@example.com" {
		t.Fatalf("email = %q, want lowercased", resp.GetUser().GetEmail())
	}
	if resp.GetUser().GetRole() != "user" {
		t.Fatalf("role = %q, want the default", resp.GetUser().GetRole())
	}

	_, err = svc.CreateUser(context.Background(), &docuvaultpb.CreateUserRequest{
		Name:  "Dana Again",
		Email: "dana@example.com",
	})
	if status.Code(err) != codes.AlreadyExists {
		t.Fatalf("duplicate email code = %v, want AlreadyExists", status.Code(err))
	}
}

func TestCreateUserValidation(t *testing.T) {
	svc := NewAdminService(nil, newStubUserRepo(), &stubActivity{}, nil, discardLogger())

	cases := []struct {
		name string
		req  *docuvaultpb.CreateUserRequest
	}{
		{"missing name", &docuvaultpb.CreateUserRequest{Email: "a@b.com"}},
		{"missing email", &docuvaultpb.CreateUserRequest{Name: "A"}},
		{"malformed email", &docuvaultpb.CreateUserRequest{Name: "A", Email: "not-an-email"}},
		{"unknown role", &docuvaultpb.CreateUserRequest{Name: "A", Email: "a@b.com", Role: "root"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := svc.CreateUser(context.Background(), tc.req); status.Code(err) != codes.InvalidArgument {
				t.Fatalf("code = %v, want InvalidArgument", status.Code(err))
			}
		})
	}
}

func TestListUsers(t *testing.T) {
	users := newStubUserRepo()
	svc := NewAdminService(nil, users, &stubActivity{}, nil, discardLogger())

	for _, email := range []string{"one@example.com", "two@example.com"} {
		if _, err := svc.CreateUser(context.Background(), &docuvaultpb.CreateUserRequest{
			Name:  email,
			Email: email,
		}); err != nil {
			t.Fatal(err)
		}
	}

	resp, err := svc.ListUsers(context.Background(), &docuvaultpb.ListUsersRequest{})
	if err != nil {
		t.Fatalf("ListUsers: %v", err)
	}
	if len(resp.GetUsers()) != 2 {
		t.Fatalf("got %d users, want 2", len(resp.GetUsers()))
	}
	if resp.GetUsers()[0].GetEmail() != "one@example.com" {
		t.Fatalf("first user = %q, want insertion order preserved", resp.GetUsers()[0].GetEmail())
	}
	if _, err := time.Parse(time.RFC3339, resp.GetUsers()[0].GetCreatedAt()); err != nil {
		t.Fatalf("created_at is not RFC3339: %v", err)
	}
}
