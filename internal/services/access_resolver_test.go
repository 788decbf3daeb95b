package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/suite"
	"github.com/yukikurage/store-management-api/internal/models"
	"github.com/yukikurage/store-management-api/internal/utils"
)

// AccessTestSuite covers the ownership policy shared by every resource service
type AccessTestSuite struct {
	suite.Suite
	env   *testEnv
	ctx   context.Context
	owner *models.User
	staff *models.User
	other *models.User
	store *models.Store
}

func (s *AccessTestSuite) SetupTest() {
	s.env = newTestEnv(s.T())
	s.ctx = context.Background()

	s.owner = s.env.createUser(s.T(), "alice")
	s.staff = s.env.createUser(s.T(), "bob-staff")
	s.other = s.env.createUser(s.T(), "eve")
	s.store = s.env.createStore(s.T(), s.owner, "Alice Shop")

	_, err := s.env.staff.AddStaff(s.ctx, s.owner.ID, s.store.ID, s.staff.ID, models.StaffRoleManager)
	s.Require().NoError(err)
}

func (s *AccessTestSuite) requireDenied(err error) {
	s.T().Helper()
	s.Require().Error(err)
	s.True(errors.Is(err, ErrAccessDenied), "expected access denied, got %v", err)

	var denied *AccessDeniedError
	s.Require().True(errors.As(err, &denied))
	s.NotEmpty(denied.Reason)
}

func (s *AccessTestSuite) TestOwnerIsRecordedAsStaff() {
	role, ok, err := s.env.access.ResolveStaffRole(s.ctx, s.owner.ID, s.store.ID)
	s.Require().NoError(err)
	s.True(ok)
	s.Equal(models.StaffRoleOwner, role)

	isOwner, err := s.env.access.IsStoreOwner(s.ctx, s.owner.ID, s.store.ID)
	s.Require().NoError(err)
	s.True(isOwner)

	isOwner, err = s.env.access.IsStoreOwner(s.ctx, s.staff.ID, s.store.ID)
	s.Require().NoError(err)
	s.False(isOwner)

	_, ok, err = s.env.access.ResolveStaffRole(s.ctx, s.other.ID, s.store.ID)
	s.Require().NoError(err)
	s.False(ok)
}

func (s *AccessTestSuite) TestMissingStoreIsNotFoundForEveryone() {
	for _, actor := range []*models.User{s.owner, s.staff, s.other} {
		_, err := s.env.stores.UpdateStore(s.ctx, actor.ID, "missing-store", "New name")
		s.ErrorIs(err, ErrStoreNotFound)

		_, err = s.env.categories.CreateCategory(s.ctx, actor.ID, CategoryInput{StoreID: "missing-store", Name: "Drinks"})
		s.ErrorIs(err, ErrStoreNotFound)

		_, err = s.env.vendors.CreateVendor(s.ctx, actor.ID, "missing-store", "Acme")
		s.ErrorIs(err, ErrStoreNotFound)

		_, err = s.env.customers.UpdateCustomer(s.ctx, actor.ID, "missing-store", "missing-customer", "Bob")
		s.ErrorIs(err, ErrStoreNotFound)
	}
}

func (s *AccessTestSuite) TestStaffCannotMutate() {
	for _, actor := range []*models.User{s.staff, s.other} {
		_, err := s.env.stores.UpdateStore(s.ctx, actor.ID, s.store.ID, "Hijacked")
		s.requireDenied(err)

		_, err = s.env.stores.DeleteStore(s.ctx, actor.ID, s.store.ID)
		s.requireDenied(err)

		_, err = s.env.categories.CreateCategory(s.ctx, actor.ID, CategoryInput{StoreID: s.store.ID, Name: "Drinks"})
		s.requireDenied(err)

		_, err = s.env.customers.CreateCustomer(s.ctx, actor.ID, s.store.ID, "Bob")
		s.requireDenied(err)

		_, err = s.env.vendors.CreateVendor(s.ctx, actor.ID, s.store.ID, "Acme")
		s.requireDenied(err)

		_, err = s.env.staff.AddStaff(s.ctx, actor.ID, s.store.ID, s.other.ID, models.StaffRoleStaff)
		s.requireDenied(err)

		_, err = s.env.vendors.ListVendors(s.ctx, actor.ID, s.store.ID, utils.PaginationParams{})
		s.requireDenied(err)

		_, err = s.env.staff.ListStaff(s.ctx, actor.ID, s.store.ID, utils.PaginationParams{})
		s.requireDenied(err)
	}
}

func (s *AccessTestSuite) TestSubResourceExistenceBeforeOwnership() {
	_, err := s.env.customers.UpdateCustomer(s.ctx, s.other.ID, s.store.ID, "missing-customer", "Bob")
	s.ErrorIs(err, ErrCustomerNotFound)

	_, err = s.env.vendors.UpdateVendor(s.ctx, s.other.ID, s.store.ID, "missing-vendor", "Acme")
	s.ErrorIs(err, ErrVendorNotFound)

	_, err = s.env.categories.UpdateCategory(s.ctx, s.other.ID, "missing-category", CategoryInput{StoreID: s.store.ID, Name: "Drinks"})
	s.ErrorIs(err, ErrCategoryNotFound)

	_, err = s.env.staff.UpdateStaffRole(s.ctx, s.other.ID, s.store.ID, s.other.ID, models.StaffRoleStaff)
	s.ErrorIs(err, ErrStaffNotFound)
}

func (s *AccessTestSuite) TestOwnerMutatesSubResources() {
	category, err := s.env.categories.CreateCategory(s.ctx, s.owner.ID, CategoryInput{StoreID: s.store.ID, Name: "Drinks"})
	s.Require().NoError(err)

	desc := "Cold drinks"
	category, err = s.env.categories.UpdateCategory(s.ctx, s.owner.ID, category.ID, CategoryInput{StoreID: s.store.ID, Name: "Beverages", Description: &desc})
	s.Require().NoError(err)
	s.Equal("Beverages", category.Name)

	customer, err := s.env.customers.CreateCustomer(s.ctx, s.owner.ID, s.store.ID, "Bob")
	s.Require().NoError(err)
	_, err = s.env.customers.UpdateCustomer(s.ctx, s.staff.ID, s.store.ID, customer.ID, "Robert")
	s.requireDenied(err)
	customer, err = s.env.customers.UpdateCustomer(s.ctx, s.owner.ID, s.store.ID, customer.ID, "Robert")
	s.Require().NoError(err)
	s.Equal("Robert", customer.Name)

	vendor, err := s.env.vendors.CreateVendor(s.ctx, s.owner.ID, s.store.ID, "Acme")
	s.Require().NoError(err)
	vendors, err := s.env.vendors.ListVendors(s.ctx, s.owner.ID, s.store.ID, utils.PaginationParams{})
	s.Require().NoError(err)
	s.Len(vendors, 1)

	id, err := s.env.vendors.DeleteVendor(s.ctx, s.owner.ID, s.store.ID, vendor.ID)
	s.Require().NoError(err)
	s.Equal(vendor.ID, id)

	id, err = s.env.categories.DeleteCategory(s.ctx, s.owner.ID, category.ID, s.store.ID)
	s.Require().NoError(err)
	s.Equal(category.ID, id)

	s.Require().NoError(s.env.customers.RemoveCustomer(s.ctx, s.owner.ID, s.store.ID, customer.ID))
	_, err = s.env.customers.GetCustomer(s.ctx, s.owner.ID, s.store.ID, customer.ID)
	s.ErrorIs(err, ErrCustomerNotFound)
}

func (s *AccessTestSuite) TestSubResourceOfAnotherStore() {
	otherStore := s.env.createStore(s.T(), s.other, "Eve Shop")
	customer, err := s.env.customers.CreateCustomer(s.ctx, s.other.ID, otherStore.ID, "Mallory")
	s.Require().NoError(err)

	// addressing Eve's customer through Alice's store does not find it
	_, err = s.env.customers.UpdateCustomer(s.ctx, s.owner.ID, s.store.ID, customer.ID, "Changed")
	s.ErrorIs(err, ErrCustomerNotFound)

	category, err := s.env.categories.CreateCategory(s.ctx, s.other.ID, CategoryInput{StoreID: otherStore.ID, Name: "Tools"})
	s.Require().NoError(err)
	_, err = s.env.categories.DeleteCategory(s.ctx, s.owner.ID, category.ID, s.store.ID)
	s.ErrorIs(err, ErrCategoryNotFound)
	_, err = s.env.categories.DeleteCategory(s.ctx, s.owner.ID, category.ID, "")
	s.requireDenied(err)
}

func (s *AccessTestSuite) TestMembershipReads() {
	_, err := s.env.customers.CreateCustomer(s.ctx, s.owner.ID, s.store.ID, "Bob")
	s.Require().NoError(err)
	_, err = s.env.categories.CreateCategory(s.ctx, s.owner.ID, CategoryInput{StoreID: s.store.ID, Name: "Drinks"})
	s.Require().NoError(err)

	customers, err := s.env.customers.ListCustomers(s.ctx, s.staff.ID, s.store.ID, utils.PaginationParams{})
	s.Require().NoError(err)
	s.Len(customers, 1)

	customer, err := s.env.customers.GetCustomer(s.ctx, s.staff.ID, s.store.ID, customers[0].ID)
	s.Require().NoError(err)
	s.Equal("Bob", customer.Name)

	categories, err := s.env.categories.ListCategories(s.ctx, s.staff.ID, s.store.ID, utils.PaginationParams{})
	s.Require().NoError(err)
	s.Len(categories, 1)

	_, err = s.env.customers.ListCustomers(s.ctx, s.other.ID, s.store.ID, utils.PaginationParams{})
	s.requireDenied(err)
	_, err = s.env.customers.GetCustomer(s.ctx, s.other.ID, s.store.ID, customers[0].ID)
	s.requireDenied(err)
	_, err = s.env.categories.ListCategories(s.ctx, s.other.ID, s.store.ID, utils.PaginationParams{})
	s.requireDenied(err)
}

func (s *AccessTestSuite) TestNoCustomers() {
	_, err := s.env.customers.ListCustomers(s.ctx, s.owner.ID, s.store.ID, utils.PaginationParams{})
	s.ErrorIs(err, ErrNoCustomers)
}

func TestAccessTestSuite(t *testing.T) {
	suite.Run(t, new(AccessTestSuite))
}
