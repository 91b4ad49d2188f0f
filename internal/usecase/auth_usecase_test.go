package usecase_test

import (
	"context"
	"testing"
	"time"

	"go-workerconnect-backend/internal/domain"
	"go-workerconnect-backend/internal/repository/memory"
	"go-workerconnect-backend/internal/usecase"
	"go-workerconnect-backend/pkg/logger"
	"go-workerconnect-backend/pkg/token"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func init() {
	logger.Init("error")
}

// MockSessionRepo lets tests fail individual store operations
type MockSessionRepo struct {
	mock.Mock
}

func (m *MockSessionRepo) Save(ctx context.Context, session *domain.Session) error {
	return m.Called(ctx, session).Error(0)
}

func (m *MockSessionRepo) Get(ctx context.Context, id string) (*domain.Session, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Session), args.Error(1)
}

func (m *MockSessionRepo) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func newAuth() (domain.AuthUsecase, *token.Manager) {
	tokens := token.NewManager("test-secret", time.Hour)
	return usecase.NewAuthUsecase(memory.NewSessionRepository(), tokens), tokens
}

func TestLoginAllowList(t *testing.T) {
	uc, tokens := newAuth()
	ctx := context.Background()

	t.Run("Valid customer triple succeeds", func(t *testing.T) {
		result, err := uc.Login(ctx, "admin", "12345678", "customer")
		assert.NoError(t, err)
		assert.Equal(t, "customer", result.Identity.Role)
		assert.Equal(t, "John Customer", result.Identity.Name)
		assert.NotEmpty(t, result.Token)

		// The token references a restorable snapshot
		sid, err := tokens.Verify(result.Token)
		assert.NoError(t, err)
		restored, err := uc.Restore(ctx, sid)
		assert.NoError(t, err)
		assert.Equal(t, result.Identity, restored)
	})

	t.Run("Valid worker triple synthesizes the worker profile", func(t *testing.T) {
		result, err := uc.Login(ctx, "worker", "12345678", "worker")
		assert.NoError(t, err)
		assert.Equal(t, "Mike Worker", result.Identity.Name)
		assert.Equal(t, "Plumber", result.Identity.Profession)
		assert.Equal(t, 4.8, result.Identity.Rating)
		assert.Equal(t, 127, result.Identity.TotalReviews)
	})

	t.Run("Wrong password fails", func(t *testing.T) {
		result, err := uc.Login(ctx, "admin", "wrong", "customer")
		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
		assert.Nil(t, result)
	})

	t.Run("Role mismatch against the allow-list fails", func(t *testing.T) {
		result, err := uc.Login(ctx, "admin", "12345678", "worker")
		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
		assert.Nil(t, result)
	})

	t.Run("Failed login leaves an existing session untouched", func(t *testing.T) {
		prior, err := uc.Login(ctx, "admin", "12345678", "customer")
		assert.NoError(t, err)

		_, err = uc.Login(ctx, "admin", "wrong", "customer")
		assert.Error(t, err)

		sid, _ := tokens.Verify(prior.Token)
		restored, err := uc.Restore(ctx, sid)
		assert.NoError(t, err)
		assert.Equal(t, prior.Identity, restored)
	})
}

func TestRegister(t *testing.T) {
	uc, tokens := newAuth()
	ctx := context.Background()

	t.Run("Registration always succeeds and assigns a fresh id", func(t *testing.T) {
		first, err := uc.Register(ctx, &domain.RegisterInput{Name: "Asha", Email: "asha@example.com"})
		assert.NoError(t, err)
		assert.Equal(t, "customer", first.Identity.Role) // role defaults

		second, err := uc.Register(ctx, &domain.RegisterInput{Name: "Asha", Email: "asha@example.com"})
		assert.NoError(t, err)
		assert.NotEqual(t, first.Identity.ID, second.Identity.ID)
	})

	t.Run("Worker fields survive the snapshot roundtrip", func(t *testing.T) {
		result, err := uc.Register(ctx, &domain.RegisterInput{
			Name:       "Ravi",
			Email:      "ravi@example.com",
			Role:       "worker",
			Profession: "Electrician",
			Experience: 3,
			Skills:     []string{"Wiring", "Lighting"},
		})
		assert.NoError(t, err)

		sid, _ := tokens.Verify(result.Token)
		restored, err := uc.Restore(ctx, sid)
		assert.NoError(t, err)
		assert.True(t, restored.IsWorker())
		assert.Equal(t, []string{"Wiring", "Lighting"}, restored.Skills)
	})
}

func TestLogoutAndRestore(t *testing.T) {
	uc, tokens := newAuth()
	ctx := context.Background()

	t.Run("Logout clears the persisted snapshot", func(t *testing.T) {
		result, err := uc.Login(ctx, "admin", "12345678", "customer")
		assert.NoError(t, err)
		sid, _ := tokens.Verify(result.Token)

		assert.NoError(t, uc.Logout(ctx, sid))

		restored, err := uc.Restore(ctx, sid)
		assert.NoError(t, err)
		assert.Nil(t, restored)
	})

	t.Run("Logout is idempotent", func(t *testing.T) {
		assert.NoError(t, uc.Logout(ctx, "never-existed"))
		assert.NoError(t, uc.Logout(ctx, ""))
	})

	t.Run("Unknown session restores as no identity", func(t *testing.T) {
		restored, err := uc.Restore(ctx, "missing")
		assert.NoError(t, err)
		assert.Nil(t, restored)
	})
}

func TestRestoreCorruptSnapshot(t *testing.T) {
	mockRepo := new(MockSessionRepo)
	tokens := token.NewManager("test-secret", time.Hour)
	uc := usecase.NewAuthUsecase(mockRepo, tokens)
	ctx := context.Background()

	t.Run("Corrupt snapshot is treated as no session and dropped", func(t *testing.T) {
		mockRepo.On("Get", ctx, "bad").Return(nil, domain.ErrSessionCorrupt)
		mockRepo.On("Delete", ctx, "bad").Return(nil)

		restored, err := uc.Restore(ctx, "bad")
		assert.NoError(t, err)
		assert.Nil(t, restored)
		mockRepo.AssertCalled(t, "Delete", ctx, "bad")
	})
}
