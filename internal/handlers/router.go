package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/yukikurage/store-management-api/internal/middleware"
	"github.com/yukikurage/store-management-api/internal/services"
)

// Services bundles everything the HTTP layer dispatches to.
type Services struct {
	Tokens   *services.TokenService
	Auth     *services.AuthService
	Store    *services.StoreService
	Category *services.CategoryService
	Customer *services.CustomerService
	Vendor   *services.VendorService
	Staff    *services.StaffService
}

// NewRouter builds the gin engine with every route of the API.
func NewRouter(svc Services, logger zerolog.Logger) *gin.Engine {
	registerValidator()

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(logger))

	authHandler := NewAuthHandler(svc.Auth)
	storeHandler := NewStoreHandler(svc.Store)
	categoryHandler := NewCategoryHandler(svc.Category)
	customerHandler := NewCustomerHandler(svc.Customer)
	vendorHandler := NewVendorHandler(svc.Vendor)
	staffHandler := NewStaffHandler(svc.Staff)

	requireAuth := middleware.RequireAuth(svc.Tokens)

	r.GET("/health", func(c *gin.Context) {
		respondSuccess(c, http.StatusOK, gin.H{"status": "ok"}, "Store Management API is running")
	})

	auth := r.Group("/auth/v1")
	{
		auth.POST("/register", authHandler.Register)
		auth.POST("/login", authHandler.Login)
		// The refresh token itself is the credential here
		auth.POST("/access-token", authHandler.AccessToken)
		auth.GET("/access-token", authHandler.AccessToken)
		auth.GET("/user-details", requireAuth, authHandler.UserDetails)
		auth.GET("/logout", requireAuth, authHandler.Logout)
	}

	store := r.Group("/store/v1", requireAuth)
	{
		store.POST("/create", storeHandler.CreateStore)
		store.PUT("/update/:id", storeHandler.UpdateStore)
		store.DELETE("/delete/:id", storeHandler.DeleteStore)
		store.GET("/owned-store", storeHandler.OwnedStores)
		store.GET("/store-member", storeHandler.MemberStores)
	}

	category := r.Group("/category/v1", requireAuth)
	{
		category.POST("/create", categoryHandler.CreateCategory)
		category.PUT("/update/:id", categoryHandler.UpdateCategory)
		category.DELETE("/delete/:categoryId", categoryHandler.DeleteCategory)
		category.GET("/get-categories/:storeId", categoryHandler.ListCategories)
	}

	customer := r.Group("/customer/v1", requireAuth)
	{
		customer.POST("/create", customerHandler.CreateCustomer)
		customer.POST("/update", customerHandler.UpdateCustomer)
		customer.POST("/remove", customerHandler.RemoveCustomer)
		customer.GET("/get", customerHandler.GetCustomer)
		customer.GET("/get-all/:storeId", customerHandler.ListCustomers)
	}

	vendor := r.Group("/vendor/v1", requireAuth)
	{
		vendor.POST("/create", vendorHandler.CreateVendor)
		vendor.PUT("/update/:id", vendorHandler.UpdateVendor)
		vendor.DELETE("/delete", vendorHandler.DeleteVendor)
		vendor.GET("/vendors/:id", vendorHandler.ListVendors)
	}

	staff := r.Group("/staff/v1/staff", requireAuth)
	{
		staff.POST("/create", staffHandler.CreateStaff)
		staff.PUT("/update", staffHandler.UpdateStaff)
		staff.DELETE("/remove", staffHandler.RemoveStaff)
		staff.GET("/get-staffs/:storeId", staffHandler.ListStaff)
	}

	return r
}
