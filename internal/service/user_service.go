package service

import (
	"context"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/teepha/More-Recipes/internal/models"
	"github.com/teepha/More-Recipes/internal/observability"
	"github.com/teepha/More-Recipes/internal/repository"
)

// PasswordCost is the bcrypt cost used for new password hashes.
const PasswordCost = 10

// dummyHash is compared against when the username is unknown so that
// signin takes the same time either way.
var dummyHash, _ = bcrypt.GenerateFromPassword([]byte("more-recipes-placeholder"), PasswordCost)

type UserService struct {
	repos repository.Repos
	tx    repository.TxFunc
}

type SignupInput struct {
	FullName string
	Username string
	Email    string
	Password string
}

// UpdateProfileInput carries a partial profile update. Empty fields are kept.
type UpdateProfileInput struct {
	UserID       uint
	FullName     string
	Username     string
	Email        string
	ProfileImage string
	Location     string
	AboutMe      string
}

func NewUserService(repos repository.Repos, tx repository.TxFunc) *UserService {
	return &UserService{repos: repos, tx: tx}
}

// Signup creates an account after checking that neither the username nor
// the email is taken, ignoring case.
func (s *UserService) Signup(ctx context.Context, in SignupInput) (*models.User, error) {
	ctx, span := observability.StartSpan(ctx, "UserService.Signup")
	var err error
	defer func() { observability.EndSpan(span, err) }()

	in.FullName = strings.TrimSpace(in.FullName)
	in.Username = strings.TrimSpace(in.Username)
	in.Email = strings.TrimSpace(in.Email)

	existing, err := s.repos.Users.FindByUsernameOrEmail(ctx, in.Username, in.Email)
	if err != nil {
		return nil, err
	}
	if conflicts := accountConflicts(existing, 0, in.Username, in.Email); conflicts != nil {
		err = conflicts
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), PasswordCost)
	if err != nil {
		err = models.NewInternalError(err)
		return nil, err
	}

	user := &models.User{
		FullName: in.FullName,
		Username: in.Username,
		Email:    in.Email,
		Password: string(hash),
	}
	if err = s.repos.Users.Create(ctx, user); err != nil {
		return nil, err
	}
	observability.AuthEvents.WithLabelValues(observability.AuthSignup).Inc()
	return user, nil
}

// Signin checks credentials. Every mismatch yields the same error.
func (s *UserService) Signin(ctx context.Context, username, password string) (*models.User, error) {
	user, err := s.repos.Users.GetByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		return nil, err
	}

	hash := dummyHash
	if user != nil {
		hash = []byte(user.Password)
	}
	if cmpErr := bcrypt.CompareHashAndPassword(hash, []byte(password)); cmpErr != nil || user == nil {
		observability.AuthEvents.WithLabelValues(observability.AuthSigninFailed).Inc()
		return nil, models.NewInvalidCredentialsError()
	}

	observability.AuthEvents.WithLabelValues(observability.AuthSignin).Inc()
	return user, nil
}

// GetProfile returns the public projection of a user.
func (s *UserService) GetProfile(ctx context.Context, userID uint) (*models.User, error) {
	return s.repos.Users.GetProfile(ctx, userID)
}

// UpdateProfile overwrites the non-empty fields of in, then rewrites the
// author snapshot on the user's reviews. Both happen in one transaction.
func (s *UserService) UpdateProfile(ctx context.Context, in UpdateProfileInput) (*models.User, error) {
	ctx, span := observability.StartSpan(ctx, "UserService.UpdateProfile")
	var profile *models.User
	err := s.tx(ctx, func(r repository.Repos) error {
		user, err := r.Users.GetByID(ctx, in.UserID)
		if err != nil {
			return err
		}

		username := strings.TrimSpace(in.Username)
		email := strings.TrimSpace(in.Email)
		existing, err := r.Users.FindByUsernameOrEmail(ctx, username, email)
		if err != nil {
			return err
		}
		if conflicts := accountConflicts(existing, user.ID, username, email); conflicts != nil {
			return conflicts
		}

		applyIfSet(&user.FullName, in.FullName)
		applyIfSet(&user.Username, username)
		applyIfSet(&user.Email, email)
		applyIfSet(&user.ProfileImage, in.ProfileImage)
		applyIfSet(&user.Location, in.Location)
		applyIfSet(&user.AboutMe, in.AboutMe)
		if err := r.Users.Update(ctx, user); err != nil {
			return err
		}

		profile, err = r.Users.GetProfile(ctx, user.ID)
		if err != nil {
			return err
		}
		reviewCount, err := r.Reviews.CountByUser(ctx, user.ID)
		if err != nil {
			return err
		}
		if reviewCount > 0 {
			return r.Reviews.SyncAuthorProfile(ctx, user.ID, profile.Username, profile.ProfileImage)
		}
		return nil
	})
	observability.EndSpan(span, err)
	if err != nil {
		return nil, err
	}
	return profile, nil
}

// accountConflicts reports which of username and email already belong to a
// user other than selfID.
func accountConflicts(existing []models.User, selfID uint, username, email string) error {
	fields := map[string]string{}
	for _, u := range existing {
		if u.ID == selfID {
			continue
		}
		if username != "" && strings.EqualFold(u.Username, username) {
			fields["username"] = "Username already exist"
		}
		if email != "" && strings.EqualFold(u.Email, email) {
			fields["email"] = "Email already exist"
		}
	}
	if len(fields) == 0 {
		return nil
	}
	return models.NewConflictError("Username or email already exist", fields)
}

func applyIfSet(dst *string, v string) {
	if v = strings.TrimSpace(v); v != "" {
		*dst = v
	}
}
