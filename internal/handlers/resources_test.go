package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"github.com/yukikurage/store-management-api/internal/dto"
	"github.com/yukikurage/store-management-api/internal/models"
)

// ResourceHandlerTestSuite covers the store-scoped resources
type ResourceHandlerTestSuite struct {
	APITestSuite
	owner      dto.UserDTO
	ownerToken string
	staff      dto.UserDTO
	staffToken string
	store      dto.StoreDTO
}

func (suite *ResourceHandlerTestSuite) SetupTest() {
	suite.APITestSuite.SetupTest()

	suite.owner, suite.ownerToken = suite.signup("alice")
	suite.staff, suite.staffToken = suite.signup("bob")
	suite.store = suite.createStore(suite.ownerToken, "Alice Shop")

	code, _ := suite.do(http.MethodPost, "/staff/v1/staff/create", suite.ownerToken, gin.H{
		"staffId": suite.staff.ID,
		"storeId": suite.store.ID,
		"role":    models.StaffRoleStaff,
	}, nil)
	suite.Require().Equal(http.StatusCreated, code)
}

func (suite *ResourceHandlerTestSuite) TestCategories() {
	var category dto.CategoryDTO
	code, _ := suite.do(http.MethodPost, "/category/v1/create", suite.ownerToken, gin.H{
		"storeId":     suite.store.ID,
		"name":        "Drinks",
		"description": "Cold drinks",
	}, &category)
	suite.Require().Equal(http.StatusCreated, code)
	suite.Require().NotNil(category.Description)

	code, resp := suite.do(http.MethodPost, "/category/v1/create", suite.ownerToken, gin.H{
		"storeId": suite.store.ID,
		"name":    "Dr",
	}, nil)
	suite.Equal(http.StatusBadRequest, code)
	suite.Equal("name should be min 3 characters", resp.Message)

	var updated dto.CategoryDTO
	code, _ = suite.do(http.MethodPut, "/category/v1/update/"+category.ID, suite.ownerToken, gin.H{
		"storeId": suite.store.ID,
		"name":    "Beverages",
	}, &updated)
	suite.Require().Equal(http.StatusOK, code)
	suite.Equal("Beverages", updated.Name)

	code, _ = suite.do(http.MethodPut, "/category/v1/update/missing", suite.ownerToken, gin.H{
		"storeId": suite.store.ID,
		"name":    "Beverages",
	}, nil)
	suite.Equal(http.StatusNotFound, code)

	var categories []dto.CategoryDTO
	code, _ = suite.do(http.MethodGet, "/category/v1/get-categories/"+suite.store.ID, suite.staffToken, nil, &categories)
	suite.Require().Equal(http.StatusOK, code)
	suite.Len(categories, 1)

	code, _ = suite.do(http.MethodDelete, "/category/v1/delete/"+category.ID, suite.staffToken, nil, nil)
	suite.Equal(http.StatusForbidden, code)

	var deletedID string
	code, _ = suite.do(http.MethodDelete, "/category/v1/delete/"+category.ID+"?storeId="+suite.store.ID, suite.ownerToken, nil, &deletedID)
	suite.Require().Equal(http.StatusOK, code)
	suite.Equal(category.ID, deletedID)
}

func (suite *ResourceHandlerTestSuite) TestCustomers() {
	var customer dto.CustomerDTO
	code, _ := suite.do(http.MethodPost, "/customer/v1/create", suite.ownerToken, gin.H{
		"storeId": suite.store.ID,
		"name":    "Carol",
	}, &customer)
	suite.Require().Equal(http.StatusCreated, code)

	var fetched dto.CustomerDTO
	code, _ = suite.do(http.MethodGet, "/customer/v1/get?storeId="+suite.store.ID+"&customerId="+customer.ID, suite.staffToken, nil, &fetched)
	suite.Require().Equal(http.StatusOK, code)
	suite.Equal("Carol", fetched.Name)

	code, resp := suite.do(http.MethodGet, "/customer/v1/get?storeId="+suite.store.ID, suite.staffToken, nil, nil)
	suite.Equal(http.StatusBadRequest, code)
	suite.Equal("Store id and Customer id is required", resp.Message)

	var customers []dto.CustomerDTO
	code, _ = suite.do(http.MethodGet, "/customer/v1/get-all/"+suite.store.ID+"?page=1&limit=10", suite.staffToken, nil, &customers)
	suite.Require().Equal(http.StatusOK, code)
	suite.Len(customers, 1)

	code, _ = suite.do(http.MethodPost, "/customer/v1/remove", suite.staffToken, gin.H{
		"storeId":    suite.store.ID,
		"customerId": customer.ID,
	}, nil)
	suite.Equal(http.StatusForbidden, code)

	code, _ = suite.do(http.MethodPost, "/customer/v1/remove", suite.ownerToken, gin.H{
		"storeId":    suite.store.ID,
		"customerId": customer.ID,
	}, nil)
	suite.Equal(http.StatusOK, code)

	code, resp = suite.do(http.MethodGet, "/customer/v1/get-all/"+suite.store.ID, suite.ownerToken, nil, nil)
	suite.Equal(http.StatusNotFound, code)
	suite.Equal("No customers found", resp.Message)
}

func (suite *ResourceHandlerTestSuite) TestCustomerReadRequiresMembership() {
	_, eveToken := suite.signup("eve")

	var customer dto.CustomerDTO
	code, _ := suite.do(http.MethodPost, "/customer/v1/create", suite.ownerToken, gin.H{
		"storeId": suite.store.ID,
		"name":    "Carol",
	}, &customer)
	suite.Require().Equal(http.StatusCreated, code)

	code, resp := suite.do(http.MethodGet, "/customer/v1/get?storeId="+suite.store.ID+"&customerId="+customer.ID, eveToken, nil, nil)
	suite.Equal(http.StatusForbidden, code)
	suite.Equal("Cannot access this resource", resp.Message)

	code, _ = suite.do(http.MethodGet, "/customer/v1/get-all/"+suite.store.ID, eveToken, nil, nil)
	suite.Equal(http.StatusForbidden, code)
}

func (suite *ResourceHandlerTestSuite) TestVendors() {
	var vendor dto.VendorDTO
	code, _ := suite.do(http.MethodPost, "/vendor/v1/create", suite.ownerToken, gin.H{
		"storeId": suite.store.ID,
		"name":    "Acme",
	}, &vendor)
	suite.Require().Equal(http.StatusCreated, code)

	code, resp := suite.do(http.MethodGet, "/vendor/v1/vendors/"+suite.store.ID, suite.staffToken, nil, nil)
	suite.Equal(http.StatusForbidden, code)
	suite.Equal("Only owner can see vendors", resp.Message)

	var updated dto.VendorDTO
	code, _ = suite.do(http.MethodPut, "/vendor/v1/update/"+vendor.ID, suite.ownerToken, gin.H{
		"storeId": suite.store.ID,
		"name":    "Acme Corp",
	}, &updated)
	suite.Require().Equal(http.StatusOK, code)
	suite.Equal("Acme Corp", updated.Name)

	var vendors []dto.VendorDTO
	code, _ = suite.do(http.MethodGet, "/vendor/v1/vendors/"+suite.store.ID, suite.ownerToken, nil, &vendors)
	suite.Require().Equal(http.StatusOK, code)
	suite.Len(vendors, 1)

	code, _ = suite.do(http.MethodDelete, "/vendor/v1/delete", suite.ownerToken, gin.H{
		"storeId":  suite.store.ID,
		"vendorId": "missing",
	}, nil)
	suite.Equal(http.StatusNotFound, code)

	var deletedID string
	code, _ = suite.do(http.MethodDelete, "/vendor/v1/delete", suite.ownerToken, gin.H{
		"storeId":  suite.store.ID,
		"vendorId": vendor.ID,
	}, &deletedID)
	suite.Require().Equal(http.StatusOK, code)
	suite.Equal(vendor.ID, deletedID)
}

func (suite *ResourceHandlerTestSuite) TestStaff() {
	code, _ := suite.do(http.MethodPost, "/staff/v1/staff/create", suite.ownerToken, gin.H{
		"staffId": suite.staff.ID,
		"storeId": suite.store.ID,
		"role":    models.StaffRoleManager,
	}, nil)
	suite.Equal(http.StatusConflict, code)

	code, resp := suite.do(http.MethodPost, "/staff/v1/staff/create", suite.ownerToken, gin.H{
		"staffId": suite.staff.ID,
		"storeId": suite.store.ID,
		"role":    "JANITOR",
	}, nil)
	suite.Equal(http.StatusBadRequest, code)
	suite.Equal("role must be one of: OWNER, MANAGER, STAFF", resp.Message)

	var assignment dto.StaffAssignmentDTO
	code, _ = suite.do(http.MethodPut, "/staff/v1/staff/update", suite.ownerToken, gin.H{
		"staffId": suite.staff.ID,
		"storeId": suite.store.ID,
		"role":    models.StaffRoleManager,
	}, &assignment)
	suite.Require().Equal(http.StatusOK, code)
	suite.Equal(models.StaffRoleManager, assignment.Role)

	// a manager is still not the owner
	code, _ = suite.do(http.MethodGet, "/staff/v1/staff/get-staffs/"+suite.store.ID, suite.staffToken, nil, nil)
	suite.Equal(http.StatusForbidden, code)

	var staff []dto.StaffAssignmentDTO
	code, _ = suite.do(http.MethodGet, "/staff/v1/staff/get-staffs/"+suite.store.ID, suite.ownerToken, nil, &staff)
	suite.Require().Equal(http.StatusOK, code)
	suite.Len(staff, 2)

	code, _ = suite.do(http.MethodDelete, "/staff/v1/staff/remove", suite.ownerToken, gin.H{
		"staffId": suite.owner.ID,
		"storeId": suite.store.ID,
	}, nil)
	suite.Equal(http.StatusBadRequest, code)

	var removedID string
	code, _ = suite.do(http.MethodDelete, "/staff/v1/staff/remove", suite.ownerToken, gin.H{
		"staffId": suite.staff.ID,
		"storeId": suite.store.ID,
	}, &removedID)
	suite.Require().Equal(http.StatusOK, code)
	suite.Equal(assignment.ID, removedID)
}

func TestResourceHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ResourceHandlerTestSuite))
}
