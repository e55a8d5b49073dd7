package authsvc

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/Devanshrai2003/book-review-api/model"
	userrepo "github.com/Devanshrai2003/book-review-api/repository/user"
	"github.com/Devanshrai2003/book-review-api/util/hash"
	jwtutil "github.com/Devanshrai2003/book-review-api/util/jwt"
)

const tokenTTLHours = 1

var (
	ErrBadInput     = errors.New("bad input")
	ErrUserExists   = errors.New("user with this email or username already exists")
	ErrInvalidCreds = errors.New("invalid credentials")
)

type Service interface {
	Signup(ctx context.Context, req model.SignupReq) (*model.User, string, error)
	Login(ctx context.Context, req model.LoginReq) (*model.User, string, error)
}

type service struct {
	ur     userrepo.Repo
	secret string
}

func New(ur userrepo.Repo, secret string) Service { return &service{ur: ur, secret: secret} }

func (s *service) Signup(ctx context.Context, req model.SignupReq) (*model.User, string, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	username := strings.TrimSpace(req.Username)
	if email == "" || username == "" || req.Password == "" {
		return nil, "", ErrBadInput
	}

	// Early exit only; the unique constraints on users are the
	// authoritative guard under concurrent signups.
	existing, err := s.ur.ByEmailOrUsername(ctx, email, username)
	if err != nil {
		return nil, "", err
	}
	if existing != nil {
		return nil, "", ErrUserExists
	}

	hashed, err := hash.HashPassword(req.Password)
	if err != nil {
		return nil, "", err
	}

	u := &model.User{
		Email:        email,
		Username:     username,
		PasswordHash: hashed,
	}
	if err := s.ur.Create(ctx, u); err != nil {
		if isUniqueViolation(err) {
			return nil, "", ErrUserExists
		}
		return nil, "", err
	}

	token, err := jwtutil.Issue(s.secret, u.ID, u.Username, tokenTTLHours)
	if err != nil {
		return nil, "", err
	}
	return u, token, nil
}

func (s *service) Login(ctx context.Context, req model.LoginReq) (*model.User, string, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" || req.Password == "" {
		return nil, "", ErrBadInput
	}

	u, err := s.ur.ByEmail(ctx, email)
	if err != nil {
		return nil, "", err
	}
	// Unknown email and wrong password share one outcome so that a
	// failed login never reveals whether the account exists.
	if u == nil {
		return nil, "", ErrInvalidCreds
	}
	if !hash.Check(u.PasswordHash, req.Password) {
		return nil, "", ErrInvalidCreds
	}

	token, err := jwtutil.Issue(s.secret, u.ID, u.Username, tokenTTLHours)
	if err != nil {
		return nil, "", err
	}
	return u, token, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation
}

// Code reduces err to one of the package sentinels, or nil when the
// failure is unexpected and should surface as an internal error.
func Code(err error) error {
	for _, known := range []error{ErrBadInput, ErrUserExists, ErrInvalidCreds} {
		if errors.Is(err, known) {
			return known
		}
	}
	return nil
}
