package commands

import (
	"context"

	"parkhub/internal/domain/user"
	"parkhub/internal/infra"
	"parkhub/internal/pkg/errs"
	"parkhub/internal/pkg/jwt"
	"parkhub/internal/pkg/password"
	"parkhub/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrEmailTaken         = errs.New("email already registered")
	ErrInvalidCredentials = errs.New("invalid credentials")
	ErrUserInactive       = errs.New("user inactive")
	ErrTokenGeneration    = errs.New("token generation failed")
)

type RegisterParams struct {
	Name     string
	Email    string
	Password string
}

type LoginResult struct {
	UserID uuid.UUID
	Email  string
	Role   string
	Token  string
}

type AuthCommands interface {
	Register(ctx context.Context, p RegisterParams) (uuid.UUID, error)
	Login(ctx context.Context, email, plainPassword string) (*LoginResult, error)
}

type UserRepository interface {
	Create(ctx context.Context, db infra.DBTX, u *user.User) (uuid.UUID, error)
}

type authCommandsImpl struct {
	repo       UserRepository
	readStore  queries.UserReadStore
	jwtService *jwt.Service
	db         *pgxpool.Pool
}

func NewAuthCommands(
	repo UserRepository,
	readStore queries.UserReadStore,
	jwtService *jwt.Service,
	db *pgxpool.Pool,
) AuthCommands {
	return &authCommandsImpl{
		repo:       repo,
		readStore:  readStore,
		jwtService: jwtService,
		db:         db,
	}
}

// Register creates an account with the default "user" role. Admins are
// provisioned out of band.
func (a *authCommandsImpl) Register(ctx context.Context, p RegisterParams) (uuid.UUID, error) {
	email, err := user.NewEmail(p.Email)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrDomainValidation)
	}

	hash, err := password.Hash(p.Password)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrDomainValidation)
	}

	entity := user.NewUser(p.Name, email, hash, user.RoleUser)

	id, err := a.repo.Create(ctx, a.db, entity)
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return uuid.Nil, ErrEmailTaken
		}
		return uuid.Nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return id, nil
}

func (a *authCommandsImpl) Login(ctx context.Context, email, plainPassword string) (*LoginResult, error) {
	view, hash, err := a.readStore.FindByEmail(ctx, email)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if !view.IsActive {
		return nil, ErrUserInactive
	}

	if err := password.Compare(hash, plainPassword); err != nil {
		return nil, ErrInvalidCredentials
	}

	role, err := user.NewRole(view.Role)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	token, err := a.jwtService.GenerateToken(view.ID, view.Email, role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	return &LoginResult{
		UserID: view.ID,
		Email:  view.Email,
		Role:   role.String(),
		Token:  token,
	}, nil
}
