package usecases_test

import (
	"context"
	"errors"
	"time"

	"green-link/internal/infra/async"
	"green-link/internal/infra/utils"
	inventoryDomain "green-link/internal/inventory/domain"
	inventoryUsecases "green-link/internal/inventory/usecases"
	shareddomain "green-link/internal/shared_kernel/domain"
	inventoryDoubles "green-link/test/unit/doubles/inventory/usecases"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/mock/gomock"
)

var _ = Describe("ItemService storage calls", func() {
	var (
		ctrl       *gomock.Controller
		repository *inventoryDoubles.MockItemRepository
		broker     *async.LocalBroker
		service    *inventoryUsecases.SimpleItemService
		ctx        context.Context
	)

	BeforeEach(func() {
		ctrl = gomock.NewController(GinkgoT())
		repository = inventoryDoubles.NewMockItemRepository(ctrl)
		broker = async.NewLocalBroker()
		ctx = context.Background()
		service = inventoryUsecases.NewItemService(repository, broker,
			utils.FixedClock{At: time.Date(2024, 3, 10, 8, 30, 0, 0, time.UTC)},
			inventoryUsecases.ItemServiceConfig{})
	})

	AfterEach(func() {
		broker.Stop()
	})

	It("should not reach storage when the record is invalid", func() {
		_, err := service.CreateItem(ctx, map[string]any{"itemID": "FT-001", "stockCount": -1})

		Expect(errors.Is(err, shareddomain.ErrValidation)).To(BeTrue())
	})

	It("should not reach storage when a patch is invalid", func() {
		_, err := service.UpdateItem(ctx, "FT-001", map[string]any{"itemPrice": "free"})

		Expect(errors.Is(err, shareddomain.ErrValidation)).To(BeTrue())
	})

	It("should pass the search and paging through", func() {
		filter := inventoryUsecases.ItemFilter{
			Query:      "urea",
			Pagination: &inventoryUsecases.Pagination{Limit: 10, Offset: 20},
		}
		repository.EXPECT().
			FindAll(gomock.Any(), filter).
			Return([]inventoryDomain.Item{}, 21, nil)

		items, total, err := service.ListItems(ctx, filter)

		Expect(err).NotTo(HaveOccurred())
		Expect(items).To(BeEmpty())
		Expect(total).To(Equal(21))
	})

	It("should read every item for the low stock filter", func() {
		repository.EXPECT().
			FindAll(gomock.Any(), inventoryUsecases.ItemFilter{}).
			Return(nil, 0, errors.New("connection reset"))

		_, err := service.ListLowStock(ctx, inventoryUsecases.DefaultThreshold)

		Expect(errors.Is(err, shareddomain.ErrUnavailable)).To(BeTrue())
	})
})
