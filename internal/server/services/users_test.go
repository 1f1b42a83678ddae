package services

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/charafmezdari/portfolio/internal/common"
	"github.com/charafmezdari/portfolio/internal/server/auth"
	"github.com/charafmezdari/portfolio/internal/server/config"
	"github.com/charafmezdari/portfolio/internal/server/models"
)

func newUserService(t *testing.T, db *sql.DB, rm *fakeRepoManager) *UserService {
	t.Helper()
	cfg := &config.Config{
		SecretKey:             "k",
		TokenValidityDuration: time.Hour,
	}
	return NewUserService(db, rm, cfg)
}

func hashFor(t *testing.T, password string) string {
	t.Helper()
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("bcrypt error: %v", err)
	}
	return string(h)
}

func TestLogin_Flows(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	// unknown email → unauthorized
	rmNF := &fakeRepoManager{u: &fakeUsersRepo{byEmailErr: common.ErrorNotFound}}
	sNF := newUserService(t, db, rmNF)
	if _, err := sNF.Login(context.Background(), "ghost@x.com", "pw"); !errors.Is(err, common.ErrorUnauthorized) {
		t.Fatalf("notfound → unauthorized, got %v", err)
	}

	// repository failure → internal
	rmIE := &fakeRepoManager{u: &fakeUsersRepo{byEmailErr: errBoom{}}}
	sIE := newUserService(t, db, rmIE)
	if _, err := sIE.Login(context.Background(), "a@x.com", "pw"); !errors.Is(err, common.ErrorInternal) {
		t.Fatalf("internal → ErrorInternal, got %v", err)
	}

	// wrong password → unauthorized
	rmWP := &fakeRepoManager{u: &fakeUsersRepo{
		byEmailOut: &models.User{ID: 1, Email: "a@x.com", PasswordHash: hashFor(t, "right")},
	}}
	sWP := newUserService(t, db, rmWP)
	if _, err := sWP.Login(context.Background(), "a@x.com", "wrong"); !errors.Is(err, common.ErrorUnauthorized) {
		t.Fatalf("wrong password → unauthorized, got %v", err)
	}
}

func TestLogin_Success_TokenRoundTrip(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	rm := &fakeRepoManager{u: &fakeUsersRepo{
		byEmailOut: &models.User{ID: 42, Email: "a@x.com", PasswordHash: hashFor(t, "right")},
	}}
	s := newUserService(t, db, rm)

	token, err := s.Login(context.Background(), "a@x.com", "right")
	if err != nil {
		t.Fatalf("Login error: %v", err)
	}

	userID, err := auth.GetUserIDFromToken(token, []byte("k"))
	if err != nil {
		t.Fatalf("issued token does not validate: %v", err)
	}
	if userID != 42 {
		t.Fatalf("token resolves to wrong account: got %d want 42", userID)
	}
}

func TestAuthenticate_Flows(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	token, err := auth.GenerateToken(42, []byte("k"), time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}

	// valid token, account present
	rmOK := &fakeRepoManager{u: &fakeUsersRepo{
		byIDOut: &models.User{ID: 42, Email: "a@x.com", PasswordHash: "hash"},
	}}
	sOK := newUserService(t, db, rmOK)
	user, err := sOK.Authenticate(context.Background(), token)
	if err != nil {
		t.Fatalf("Authenticate error: %v", err)
	}
	if user.ID != 42 || user.Email != "a@x.com" {
		t.Fatalf("unexpected account ref: %+v", user)
	}
	if user.PasswordHash != "" {
		t.Fatalf("account ref leaks password hash")
	}

	// valid token, account removed since issuance
	rmGone := &fakeRepoManager{u: &fakeUsersRepo{byIDErr: common.ErrorNotFound}}
	sGone := newUserService(t, db, rmGone)
	if _, err := sGone.Authenticate(context.Background(), token); !errors.Is(err, common.ErrorUnauthorized) {
		t.Fatalf("removed account → unauthorized, got %v", err)
	}

	// malformed token
	sBad := newUserService(t, db, rmOK)
	if _, err := sBad.Authenticate(context.Background(), "garbage"); !errors.Is(err, common.ErrInvalidToken) {
		t.Fatalf("garbage token → ErrInvalidToken, got %v", err)
	}

	// expired token
	expired, err := auth.GenerateToken(42, []byte("k"), -time.Minute)
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}
	if _, err := sBad.Authenticate(context.Background(), expired); !errors.Is(err, common.ErrTokenExpired) {
		t.Fatalf("expired token → ErrTokenExpired, got %v", err)
	}
}

func TestEnsureAdmin_AlreadyExists(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	repo := &fakeUsersRepo{byEmailOut: &models.User{ID: 1, Email: "admin@charaf.com"}}
	s := newUserService(t, db, &fakeRepoManager{u: repo})

	if err := s.EnsureAdmin(context.Background(), "admin@charaf.com", "pw"); err != nil {
		t.Fatalf("EnsureAdmin error: %v", err)
	}
	if len(repo.created) != 0 {
		t.Fatalf("expected no account creation, got %d", len(repo.created))
	}
}

func TestEnsureAdmin_CreatesHashedAccount(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	repo := &fakeUsersRepo{
		byEmailErr: common.ErrorNotFound,
		createOut:  &models.User{ID: 1, Email: "admin@charaf.com"},
	}
	s := newUserService(t, db, &fakeRepoManager{u: repo})

	if err := s.EnsureAdmin(context.Background(), "admin@charaf.com", "secretpw"); err != nil {
		t.Fatalf("EnsureAdmin error: %v", err)
	}
	if len(repo.created) != 1 {
		t.Fatalf("expected one account creation, got %d", len(repo.created))
	}
	if repo.created[0] == "secretpw" {
		t.Fatalf("password stored in plaintext")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(repo.created[0]), []byte("secretpw")); err != nil {
		t.Fatalf("stored hash does not verify: %v", err)
	}
}

func TestEnsureAdmin_LookupError(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	s := newUserService(t, db, &fakeRepoManager{u: &fakeUsersRepo{byEmailErr: errBoom{}}})

	err := s.EnsureAdmin(context.Background(), "admin@charaf.com", "pw")
	if err == nil || !regexp.MustCompile(`error checking admin account: .*boom`).MatchString(err.Error()) {
		t.Fatalf("expected wrapped lookup error, got %v", err)
	}
}
