package persistence_test

import (
	"context"
	"errors"

	"green-link/internal/infra/pubsub"
	"green-link/internal/infra/sql"
	inventoryDomain "green-link/internal/inventory/domain"
	inventoryPersistence "green-link/internal/inventory/persistence"
	"green-link/internal/shared_kernel/avro"
	pubsubDoubles "green-link/test/unit/doubles/infra/pubsub"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
	"go.uber.org/mock/gomock"
)

var _ = ginkgo.Describe("ItemRepository publishing", func() {
	var (
		ctrl      *gomock.Controller
		factory   *pubsubDoubles.MockPublisherFactory
		publisher *pubsubDoubles.MockPublisher
		orm       sql.ORM
	)

	ginkgo.BeforeEach(func() {
		ctrl = gomock.NewController(ginkgo.GinkgoT())
		factory = pubsubDoubles.NewMockPublisherFactory(ctrl)
		publisher = pubsubDoubles.NewMockPublisher(ctrl)

		var err error
		orm, err = sql.NewMemoryORM()
		gomega.Expect(err).NotTo(gomega.HaveOccurred())
	})

	ginkgo.It("should fail construction when the publisher cannot be created", func() {
		factory.EXPECT().
			New(pubsub.TopicInventoryItems, gomock.Any()).
			Return(nil, errors.New("no brokers"))

		_, err := inventoryPersistence.NewItemRepository(factory, orm)
		gomega.Expect(err).To(gomega.MatchError(gomega.ContainSubstring("no brokers")))
	})

	ginkgo.It("should keep the write when publishing fails", func() {
		factory.EXPECT().
			New(pubsub.TopicInventoryItems, gomock.Any()).
			Return(publisher, nil)
		publisher.EXPECT().
			Publish(gomock.Any(), pubsub.Key("FT-100"), gomock.AssignableToTypeOf(&avro.InventoryItemChanged{})).
			Return(errors.New("broker unavailable"))

		repo, err := inventoryPersistence.NewItemRepository(factory, orm)
		gomega.Expect(err).NotTo(gomega.HaveOccurred())

		item, err := inventoryDomain.NewItemBuilder().
			WithItemID("FT-100").
			WithItemName("Urea 50kg").
			WithItemBrand("CIC").
			WithStockCount(12).
			Build()
		gomega.Expect(err).NotTo(gomega.HaveOccurred())

		ctx := context.Background()
		gomega.Expect(repo.Create(ctx, item)).To(gomega.Succeed())

		stored, err := repo.GetByItemID(ctx, "FT-100")
		gomega.Expect(err).NotTo(gomega.HaveOccurred())
		gomega.Expect(stored.StockCount).To(gomega.Equal(12))
	})
})
