package orderrepo_test

import (
	"context"
	"testing"
	"time"

	"orderdesk/internal/adapters/out/postgres/orderrepo"
	"orderdesk/internal/adapters/out/postgres/pgtest"
	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/domain/model/order"
	"orderdesk/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
)

// OrderRepositoryIntegrationTestSuite verifies order persistence against PostgreSQL.
type OrderRepositoryIntegrationTestSuite struct {
	suite.Suite
	pg         *pgtest.Database
	repository *orderrepo.GormOrderRepository
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupSuite() {
	pg, err := pgtest.Start(context.Background())
	suite.Require().NoError(err)
	suite.pg = pg
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.pg.Truncate())
	suite.Require().NoError(suite.pg.InsertProduct("PRODUCT00000A", "HP laptop", "This is HP laptop"))
	suite.Require().NoError(suite.pg.InsertProduct("PRODUCT00000B", "Car", "This is Car"))
	suite.repository = orderrepo.NewGormOrderRepository(suite.pg.DB)
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.pg != nil {
		suite.Require().NoError(suite.pg.Terminate(context.Background()))
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_WithProducts_PersistsLinks() {
	ctx := context.Background()
	o := suite.newOrder("ORDER00000001", "PRODUCT00000A", "PRODUCT00000B")

	suite.Require().NoError(suite.repository.Add(ctx, o))

	suite.assertOrderCount(1)
	suite.assertLinkCount("ORDER00000001", 2)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_WithoutProducts_PersistsOrderOnly() {
	ctx := context.Background()

	suite.Require().NoError(suite.repository.Add(ctx, suite.newOrder("ORDER00000001")))

	suite.assertOrderCount(1)
	suite.assertLinkCount("ORDER00000001", 0)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_DuplicateUID_ReturnsAlreadyExists() {
	ctx := context.Background()
	suite.Require().NoError(suite.repository.Add(ctx, suite.newOrder("ORDER00000001")))

	err := suite.repository.Add(ctx, suite.newOrder("ORDER00000001"))

	suite.Require().ErrorIs(err, errs.ErrObjectAlreadyExists)
	suite.assertOrderCount(1)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_UnknownProduct_ReturnsInvalidReference() {
	ctx := context.Background()

	err := suite.repository.Add(ctx, suite.newOrder("ORDER00000001", "MISSING000000"))

	suite.Require().ErrorIs(err, errs.ErrInvalidReference)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_NotConstructed_ReturnsError() {
	err := suite.repository.Add(context.Background(), &order.Order{})

	suite.Require().ErrorIs(err, order.ErrOrderIsNotConstructed)
	suite.assertOrderCount(0)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_ExistingOrder_ReturnsAggregate() {
	ctx := context.Background()
	original := suite.newOrder("ORDER00000001", "PRODUCT00000B", "PRODUCT00000A")
	suite.Require().NoError(suite.repository.Add(ctx, original))

	retrieved, err := suite.repository.Get(ctx, original.UID())
	suite.Require().NoError(err)

	suite.True(original.IsEqual(retrieved))
	suite.Positive(retrieved.ID())
	suite.Equal("Test order", retrieved.Description())
	suite.Equal([]string{"PRODUCT00000A", "PRODUCT00000B"}, kernel.UIDStrings(retrieved.ProductUIDs()))
	suite.WithinDuration(original.CreatedAt(), retrieved.CreatedAt(), time.Millisecond)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_NonExistentOrder_ReturnsNotFoundError() {
	retrieved, err := suite.repository.Get(context.Background(), suite.uid("ORDER00000404"))

	suite.Nil(retrieved)
	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetForUpdate_InsideTransaction() {
	ctx := context.Background()
	suite.Require().NoError(suite.repository.Add(ctx, suite.newOrder("ORDER00000001", "PRODUCT00000A")))

	tx := suite.pg.DB.Begin()
	defer tx.Rollback()

	retrieved, err := orderrepo.NewGormOrderRepository(tx).GetForUpdate(ctx, suite.uid("ORDER00000001"))
	suite.Require().NoError(err)
	suite.Len(retrieved.ProductUIDs(), 1)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_ReplacesDescriptionAndLinks() {
	ctx := context.Background()
	original := suite.newOrder("ORDER00000001", "PRODUCT00000A")
	suite.Require().NoError(suite.repository.Add(ctx, original))

	suite.Require().NoError(original.ChangeDescription("  Updated order  "))
	suite.Require().NoError(original.ReplaceProducts([]kernel.UID{suite.uid("PRODUCT00000B")}))
	suite.Require().NoError(suite.repository.Update(ctx, original))

	retrieved, err := suite.repository.Get(ctx, original.UID())
	suite.Require().NoError(err)
	suite.Equal("Updated order", retrieved.Description())
	suite.Equal([]string{"PRODUCT00000B"}, kernel.UIDStrings(retrieved.ProductUIDs()))
	suite.assertLinkCount("ORDER00000001", 1)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_EmptyProductSet_RemovesAllLinks() {
	ctx := context.Background()
	original := suite.newOrder("ORDER00000001", "PRODUCT00000A", "PRODUCT00000B")
	suite.Require().NoError(suite.repository.Add(ctx, original))

	suite.Require().NoError(original.ReplaceProducts(nil))
	suite.Require().NoError(suite.repository.Update(ctx, original))

	suite.assertLinkCount("ORDER00000001", 0)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_NonExistentOrder_ReturnsNotFound() {
	err := suite.repository.Update(context.Background(), suite.newOrder("ORDER00000404", "PRODUCT00000A"))

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
	suite.assertLinkCount("ORDER00000404", 0)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestDelete_RemovesOrderAndLinks() {
	ctx := context.Background()
	suite.Require().NoError(suite.repository.Add(ctx, suite.newOrder("ORDER00000001", "PRODUCT00000A")))
	suite.Require().NoError(suite.repository.Add(ctx, suite.newOrder("ORDER00000002", "PRODUCT00000A")))

	suite.Require().NoError(suite.repository.Delete(ctx, suite.uid("ORDER00000001")))

	suite.assertOrderCount(1)
	suite.assertLinkCount("ORDER00000001", 0)
	suite.assertLinkCount("ORDER00000002", 1)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestDelete_NonExistentOrder_ReturnsNotFound() {
	err := suite.repository.Delete(context.Background(), suite.uid("ORDER00000404"))

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUIDExists() {
	ctx := context.Background()
	suite.Require().NoError(suite.repository.Add(ctx, suite.newOrder("ORDER00000001")))

	taken, err := suite.repository.UIDExists(ctx, suite.uid("ORDER00000001"))
	suite.Require().NoError(err)
	suite.True(taken)

	taken, err = suite.repository.UIDExists(ctx, suite.uid("ORDER00000002"))
	suite.Require().NoError(err)
	suite.False(taken)

	taken, err = suite.repository.UIDExists(ctx, suite.uid("PRODUCT00000A"))
	suite.Require().NoError(err)
	suite.False(taken, "Product uids live in a different scope")
}

func (suite *OrderRepositoryIntegrationTestSuite) TestRemoveOrphanedProductLinks() {
	ctx := context.Background()
	suite.Require().NoError(suite.repository.Add(ctx, suite.newOrder("ORDER00000001", "PRODUCT00000A", "PRODUCT00000B")))

	// Constraints are dropped to reproduce rows written before they existed.
	tx := suite.pg.DB.Begin()
	suite.Require().NoError(tx.Exec("SET LOCAL session_replication_role = replica").Error)
	suite.Require().NoError(tx.Exec("DELETE FROM products WHERE uid = 'PRODUCT00000B'").Error)
	suite.Require().NoError(tx.Commit().Error)

	removed, err := suite.repository.RemoveOrphanedProductLinks(ctx)
	suite.Require().NoError(err)

	suite.Equal(int64(1), removed)
	suite.assertLinkCount("ORDER00000001", 1)
}

func (suite *OrderRepositoryIntegrationTestSuite) uid(s string) kernel.UID {
	uid, err := kernel.UIDFromString(s)
	suite.Require().NoError(err)
	return uid
}

func (suite *OrderRepositoryIntegrationTestSuite) newOrder(uid string, productUIDs ...string) *order.Order {
	products, err := kernel.UIDsFromStrings(productUIDs)
	suite.Require().NoError(err)
	o, err := order.NewOrder(suite.uid(uid), "Test order", products, time.Now())
	suite.Require().NoError(err)
	return o
}

func (suite *OrderRepositoryIntegrationTestSuite) assertOrderCount(expected int) {
	var count int64
	suite.Require().NoError(suite.pg.DB.Model(&orderrepo.OrderDTO{}).Count(&count).Error)
	suite.Equal(int64(expected), count)
}

func (suite *OrderRepositoryIntegrationTestSuite) assertLinkCount(orderUID string, expected int) {
	var count int64
	err := suite.pg.DB.Model(&orderrepo.OrderProductDTO{}).Where("order_uid = ?", orderUID).Count(&count).Error
	suite.Require().NoError(err)
	suite.Equal(int64(expected), count)
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
