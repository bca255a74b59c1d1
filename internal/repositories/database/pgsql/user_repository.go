package pgsql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/blogapi/blog_backend/internal/apperrors"
	"github.com/blogapi/blog_backend/internal/core/domain"
	portsrepo "github.com/blogapi/blog_backend/internal/core/ports/repositories"
	"github.com/blogapi/blog_backend/internal/models"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxUserRepository struct {
	BaseRepository
}

func newPgxUserRepository(db *pgxpool.Pool) portsrepo.UserRepositoryFacade {
	return &PgxUserRepository{BaseRepository{Pool: db}}
}

// Ensure PgxUserRepository implements portsrepo.UserRepositoryFacade
var _ portsrepo.UserRepositoryFacade = (*PgxUserRepository)(nil)

const userColumns = `user_id, email, username, password_hash, role, status, otp, otp_expires_at,
       first_name, last_name, avatar, bio, created_at, last_updated_at`

// Helper to convert domain.User to models.User
func toModelUser(d domain.User) models.User {
	return models.User{
		UserID:       d.UserID,
		Email:        d.Email,
		Username:     d.Username,
		PasswordHash: d.PasswordHash,
		Role:         string(d.Role),
		Status:       string(d.Status),
		OTP:          toNullString(d.OTP),
		OTPExpiresAt: toNullTime(d.OTPExpiresAt),
		FirstName:    toNullString(d.FirstName),
		LastName:     toNullString(d.LastName),
		Avatar:       toNullString(d.Avatar),
		Bio:          toNullString(d.Bio),
		AuditFields: models.AuditFields{
			CreatedAt:     d.CreatedAt,
			LastUpdatedAt: d.LastUpdatedAt,
		},
	}
}

// Helper to convert models.User to domain.User
func toDomainUser(m models.User) domain.User {
	return domain.User{
		UserID:       m.UserID,
		Email:        m.Email,
		Username:     m.Username,
		PasswordHash: m.PasswordHash,
		Role:         domain.UserRole(m.Role),
		Status:       domain.UserStatus(m.Status),
		OTP:          fromNullString(m.OTP),
		OTPExpiresAt: fromNullTime(m.OTPExpiresAt),
		FirstName:    fromNullString(m.FirstName),
		LastName:     fromNullString(m.LastName),
		Avatar:       fromNullString(m.Avatar),
		Bio:          fromNullString(m.Bio),
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			LastUpdatedAt: m.LastUpdatedAt,
		},
	}
}

func toNullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

func fromNullString(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	s := ns.String
	return &s
}

func toNullTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *t, Valid: true}
}

func fromNullTime(nt sql.NullTime) *time.Time {
	if !nt.Valid {
		return nil
	}
	t := nt.Time
	return &t
}

func (r *PgxUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	modelUser := toModelUser(user)
	query := `
        INSERT INTO users (user_id, email, username, password_hash, role, status, otp, otp_expires_at,
                           first_name, last_name, avatar, bio, created_at, last_updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14);
    `
	_, err := r.Pool.Exec(ctx, query,
		modelUser.UserID,
		modelUser.Email,
		modelUser.Username,
		modelUser.PasswordHash,
		modelUser.Role,
		modelUser.Status,
		modelUser.OTP,
		modelUser.OTPExpiresAt,
		modelUser.FirstName,
		modelUser.LastName,
		modelUser.Avatar,
		modelUser.Bio,
		modelUser.CreatedAt,
		modelUser.LastUpdatedAt,
	)
	if err != nil {
		// Races with the pre-insert uniqueness checks still end up here: map
		// the violated constraint to the matching conflict error.
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			if strings.Contains(pgErr.ConstraintName, "email") {
				return apperrors.ErrEmailExists
			}
			if strings.Contains(pgErr.ConstraintName, "username") {
				return apperrors.ErrUsernameExists
			}
			return apperrors.ErrDuplicate
		}
		return translateError(err, "save user")
	}
	return nil
}

func (r *PgxUserRepository) findUser(ctx context.Context, where string, arg any) (*domain.User, error) {
	query := fmt.Sprintf(`SELECT %s FROM users WHERE %s;`, userColumns, where)

	var m models.User
	err := r.Pool.QueryRow(ctx, query, arg).Scan(
		&m.UserID,
		&m.Email,
		&m.Username,
		&m.PasswordHash,
		&m.Role,
		&m.Status,
		&m.OTP,
		&m.OTPExpiresAt,
		&m.FirstName,
		&m.LastName,
		&m.Avatar,
		&m.Bio,
		&m.CreatedAt,
		&m.LastUpdatedAt,
	)
	if err != nil {
		return nil, translateError(err, "find user")
	}

	domainUser := toDomainUser(m)
	return &domainUser, nil
}

func (r *PgxUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	return r.findUser(ctx, "user_id = $1", userID)
}

func (r *PgxUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.findUser(ctx, "email = $1", email)
}

func (r *PgxUserRepository) FindUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	return r.findUser(ctx, "username = $1", username)
}

func (r *PgxUserRepository) UpdateUser(ctx context.Context, user domain.User) error {
	modelUser := toModelUser(user)
	query := `
        UPDATE users
        SET first_name = $1, last_name = $2, avatar = $3, bio = $4, last_updated_at = $5
        WHERE user_id = $6;
    `
	cmdTag, err := r.Pool.Exec(ctx, query,
		modelUser.FirstName,
		modelUser.LastName,
		modelUser.Avatar,
		modelUser.Bio,
		modelUser.LastUpdatedAt,
		modelUser.UserID,
	)
	if err != nil {
		return translateError(err, "update user")
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// ActivateUser performs the OTP-conditional activation in a single statement:
// status, otp and otp_expires_at change together, so no concurrent reader can
// observe an active user with a pending OTP or the reverse.
func (r *PgxUserRepository) ActivateUser(ctx context.Context, userID string, otp string, now time.Time) error {
	query := `
        UPDATE users
        SET status = $1, otp = NULL, otp_expires_at = NULL, last_updated_at = $2
        WHERE user_id = $3
          AND status = $4
          AND otp = $5
          AND otp_expires_at > $2;
    `
	cmdTag, err := r.Pool.Exec(ctx, query,
		string(domain.StatusActive),
		now,
		userID,
		string(domain.StatusInactive),
		otp,
	)
	if err != nil {
		return translateError(err, "activate user")
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrOTPInvalidOrExpired
	}
	return nil
}
