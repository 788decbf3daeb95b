package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/suite"
	"github.com/yukikurage/store-management-api/internal/database"
	"github.com/yukikurage/store-management-api/internal/dto"
	"github.com/yukikurage/store-management-api/internal/repository"
	"github.com/yukikurage/store-management-api/internal/services"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// APITestSuite runs requests against the full router backed by in-memory SQLite
type APITestSuite struct {
	suite.Suite
	db     *gorm.DB
	router *gin.Engine
}

// SetupTest runs before each test
func (suite *APITestSuite) SetupTest() {
	var err error

	suite.db, err = gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	suite.Require().NoError(err)

	sqlDB, err := suite.db.DB()
	suite.Require().NoError(err)
	sqlDB.SetMaxOpenConns(1)

	suite.Require().NoError(database.Migrate(suite.db))

	userRepo := repository.NewUserRepository(suite.db)
	storeRepo := repository.NewStoreRepository(suite.db)
	tokens := services.NewTokenService("test-secret", time.Hour, 24*time.Hour)
	access := services.NewAccessResolver(storeRepo)

	gin.SetMode(gin.TestMode)
	suite.router = NewRouter(Services{
		Tokens:   tokens,
		Auth:     services.NewAuthService(userRepo, tokens),
		Store:    services.NewStoreService(storeRepo, access),
		Category: services.NewCategoryService(repository.NewCategoryRepository(suite.db), access),
		Customer: services.NewCustomerService(repository.NewCustomerRepository(suite.db), access),
		Vendor:   services.NewVendorService(repository.NewVendorRepository(suite.db), access),
		Staff:    services.NewStaffService(storeRepo, userRepo, access),
	}, zerolog.Nop())
}

// TearDownTest runs after each test
func (suite *APITestSuite) TearDownTest() {
	sqlDB, err := suite.db.DB()
	suite.Require().NoError(err)
	sqlDB.Close()
}

// do sends a request and decodes the envelope. data, when not nil, receives
// the envelope's data field.
func (suite *APITestSuite) do(method, url, token string, body any, data any) (int, dto.Response) {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		suite.Require().NoError(err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, url, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	var envelope struct {
		dto.Response
		Data json.RawMessage `json:"data"`
	}
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &envelope), w.Body.String())
	suite.Equal(w.Code, envelope.StatusCode)

	if data != nil && len(envelope.Data) > 0 {
		suite.Require().NoError(json.Unmarshal(envelope.Data, data))
	}
	return w.Code, envelope.Response
}

func (suite *APITestSuite) register(username string) dto.UserDTO {
	var user dto.UserDTO
	code, _ := suite.do(http.MethodPost, "/auth/v1/register", "", gin.H{
		"username": username,
		"email":    username + "@x.com",
		"password": "secret1",
	}, &user)
	suite.Require().Equal(http.StatusCreated, code)
	return user
}

func (suite *APITestSuite) login(username string) dto.LoginDTO {
	var result dto.LoginDTO
	code, _ := suite.do(http.MethodPost, "/auth/v1/login", "", gin.H{
		"userId":   username,
		"password": "secret1",
	}, &result)
	suite.Require().Equal(http.StatusOK, code)
	return result
}

// signup registers and logs in, returning the user and an access token
func (suite *APITestSuite) signup(username string) (dto.UserDTO, string) {
	user := suite.register(username)
	return user, suite.login(username).AccessToken
}

func (suite *APITestSuite) createStore(token, name string) dto.StoreDTO {
	var store dto.StoreDTO
	code, _ := suite.do(http.MethodPost, "/store/v1/create", token, gin.H{"name": name}, &store)
	suite.Require().Equal(http.StatusCreated, code)
	return store
}
