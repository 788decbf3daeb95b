package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/yukikurage/store-management-api/internal/database"
	"github.com/yukikurage/store-management-api/internal/models"
	"github.com/yukikurage/store-management-api/internal/repository"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const testPassword = "secret1"

type testEnv struct {
	db         *gorm.DB
	tokens     *TokenService
	access     *AccessResolver
	auth       *AuthService
	stores     *StoreService
	categories *CategoryService
	customers  *CustomerService
	vendors    *VendorService
	staff      *StaffService
	userRepo   repository.UserRepository
}

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// every connection to :memory: is a separate database
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	require.NoError(t, database.Migrate(db))
	return db
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db := newTestDB(t)
	userRepo := repository.NewUserRepository(db)
	storeRepo := repository.NewStoreRepository(db)
	tokens := NewTokenService("test-secret", time.Hour, 24*time.Hour)
	access := NewAccessResolver(storeRepo)

	return &testEnv{
		db:         db,
		tokens:     tokens,
		access:     access,
		auth:       NewAuthService(userRepo, tokens),
		stores:     NewStoreService(storeRepo, access),
		categories: NewCategoryService(repository.NewCategoryRepository(db), access),
		customers:  NewCustomerService(repository.NewCustomerRepository(db), access),
		vendors:    NewVendorService(repository.NewVendorRepository(db), access),
		staff:      NewStaffService(storeRepo, userRepo, access),
		userRepo:   userRepo,
	}
}

func (e *testEnv) createUser(t *testing.T, username string) *models.User {
	t.Helper()

	password := testPassword
	user, err := e.auth.Register(context.Background(), RegisterInput{
		Username: username,
		Email:    username + "@x.com",
		Password: &password,
	})
	require.NoError(t, err)
	return user
}

func (e *testEnv) createStore(t *testing.T, owner *models.User, name string) *models.Store {
	t.Helper()

	store, err := e.stores.CreateStore(context.Background(), CreateStoreInput{
		Name:    name,
		OwnerID: owner.ID,
	})
	require.NoError(t, err)
	return store
}
