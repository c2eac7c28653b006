package usecases_test

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"time"

	"green-link/internal/infra/async"
	"green-link/internal/infra/utils"
	inventoryDomain "green-link/internal/inventory/domain"
	inventoryUsecases "green-link/internal/inventory/usecases"
	shareddomain "green-link/internal/shared_kernel/domain"
	"green-link/internal/shared_kernel/report"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("ItemService", func() {
	var (
		service        *inventoryUsecases.SimpleItemService
		mockRepository *mockItemRepository
		broker         *async.LocalBroker
		now            time.Time
		ctx            context.Context
		config         inventoryUsecases.ItemServiceConfig
	)

	validFields := func(itemID string, stock int) map[string]any {
		return map[string]any{
			"itemID":     itemID,
			"itemName":   "Urea 50kg",
			"itemBrand":  "Baur",
			"itemPrice":  "4500.50",
			"stockCount": stock,
			"catagory":   "Fertilizer",
		}
	}

	newService := func() {
		service = inventoryUsecases.NewItemService(mockRepository, broker, utils.FixedClock{At: now}, config)
	}

	BeforeEach(func() {
		ctx = context.Background()
		now = time.Date(2024, 3, 10, 8, 30, 0, 0, time.UTC)
		mockRepository = newMockItemRepository()
		broker = async.NewLocalBroker()
		config = inventoryUsecases.ItemServiceConfig{}
		newService()
	})

	AfterEach(func() {
		broker.Stop()
	})

	Context("CreateItem", func() {
		It("should store the normalized item", func() {
			item, err := service.CreateItem(ctx, validFields("FT-001", 20))

			Expect(err).NotTo(HaveOccurred())
			Expect(mockRepository.createCalled).To(BeTrue())
			Expect(item.ItemID).To(Equal("FT-001"))
			Expect(item.ItemPrice).To(Equal(4500.5))
			Expect(item.StockCount).To(Equal(20))
			Expect(*item.Category).To(Equal("Fertilizer"))
			Expect(item.CreatedAt).To(Equal(now))
		})

		It("should report every invalid field", func() {
			_, err := service.CreateItem(ctx, map[string]any{
				"itemName":   "Hoe",
				"itemPrice":  -3,
				"stockCount": 1.5,
			})

			var verr *shareddomain.ValidationError
			Expect(errors.As(err, &verr)).To(BeTrue())
			Expect(verr.HasField("itemID")).To(BeTrue())
			Expect(verr.HasField("itemBrand")).To(BeTrue())
			Expect(verr.HasField("itemPrice")).To(BeTrue())
			Expect(verr.HasField("stockCount")).To(BeTrue())
			Expect(mockRepository.createCalled).To(BeFalse())
		})

		It("should reject a taken item id", func() {
			_, err := service.CreateItem(ctx, validFields("FT-001", 20))
			Expect(err).NotTo(HaveOccurred())

			_, err = service.CreateItem(ctx, validFields("FT-001", 7))

			Expect(errors.Is(err, shareddomain.ErrConflict)).To(BeTrue())
			Expect(mockRepository.items).To(HaveLen(1))
		})

		It("should map a duplicate raised by the store to a conflict", func() {
			mockRepository.createError = inventoryUsecases.ErrDuplicateItemID

			_, err := service.CreateItem(ctx, validFields("FT-002", 20))

			Expect(errors.Is(err, shareddomain.ErrConflict)).To(BeTrue())
		})

		It("should report an unavailable store", func() {
			mockRepository.findError = errors.New("connection refused")

			_, err := service.CreateItem(ctx, validFields("FT-003", 20))

			Expect(errors.Is(err, shareddomain.ErrUnavailable)).To(BeTrue())
		})

		It("should announce items created below the threshold", func() {
			subscription, err := broker.Subscribe(inventoryUsecases.InventoryTopic)
			Expect(err).NotTo(HaveOccurred())

			_, err = service.CreateItem(ctx, validFields("FT-004", 2))
			Expect(err).NotTo(HaveOccurred())

			var msg async.BrokerMessage
			Eventually(subscription.Receiver).Should(Receive(&msg))
			Expect(msg.Event).To(Equal(inventoryUsecases.StockLowEvent))
			Expect(msg.Value.(inventoryDomain.Item).ItemID).To(Equal("FT-004"))
		})

		It("should not announce well stocked items", func() {
			subscription, err := broker.Subscribe(inventoryUsecases.InventoryTopic)
			Expect(err).NotTo(HaveOccurred())

			_, err = service.CreateItem(ctx, validFields("FT-005", 5))
			Expect(err).NotTo(HaveOccurred())

			Consistently(subscription.Receiver, 50*time.Millisecond).ShouldNot(Receive())
		})
	})

	Context("ListItems", func() {
		It("should return the newest items first", func() {
			for _, id := range []string{"A", "B", "C"} {
				_, err := service.CreateItem(ctx, validFields(id, 10))
				Expect(err).NotTo(HaveOccurred())
			}

			items, total, err := service.ListItems(ctx, inventoryUsecases.ItemFilter{})

			Expect(err).NotTo(HaveOccurred())
			Expect(total).To(Equal(3))
			Expect(items[0].ItemID).To(Equal("C"))
			Expect(items[2].ItemID).To(Equal("A"))
		})
	})

	Context("GetItem", func() {
		It("should fail for an unknown item id", func() {
			_, err := service.GetItem(ctx, "missing")

			var nf *shareddomain.NotFoundError
			Expect(errors.As(err, &nf)).To(BeTrue())
			Expect(nf.Key).To(Equal("missing"))
		})
	})

	Context("UpdateItem", func() {
		BeforeEach(func() {
			_, err := service.CreateItem(ctx, validFields("FT-001", 20))
			Expect(err).NotTo(HaveOccurred())
		})

		It("should only change the supplied fields", func() {
			item, err := service.UpdateItem(ctx, "FT-001", map[string]any{"stockCount": 12, "warranty": "1 year"})

			Expect(err).NotTo(HaveOccurred())
			Expect(item.StockCount).To(Equal(12))
			Expect(*item.Warranty).To(Equal("1 year"))
			Expect(item.ItemName.String()).To(Equal("Urea 50kg"))
			Expect(mockRepository.items["FT-001"]).To(Equal(item))
		})

		It("should accept the current item id in the patch", func() {
			_, err := service.UpdateItem(ctx, "FT-001", map[string]any{"itemID": "FT-001", "itemPrice": 10})

			Expect(err).NotTo(HaveOccurred())
		})

		It("should refuse to change the item id", func() {
			_, err := service.UpdateItem(ctx, "FT-001", map[string]any{"itemID": "FT-999"})

			var verr *shareddomain.ValidationError
			Expect(errors.As(err, &verr)).To(BeTrue())
			Expect(verr.HasField("itemID")).To(BeTrue())
			Expect(mockRepository.updateCalled).To(BeFalse())
		})

		It("should reject invalid values", func() {
			_, err := service.UpdateItem(ctx, "FT-001", map[string]any{"stockCount": -1})

			Expect(errors.Is(err, shareddomain.ErrValidation)).To(BeTrue())
			Expect(mockRepository.updateCalled).To(BeFalse())
		})

		It("should fail for an unknown item id", func() {
			_, err := service.UpdateItem(ctx, "missing", map[string]any{"stockCount": 1})

			Expect(errors.Is(err, shareddomain.ErrNotFound)).To(BeTrue())
		})

		When("brand and category are locked", func() {
			BeforeEach(func() {
				config.LockBrandAndCategory = true
				newService()
			})

			It("should refuse new values", func() {
				_, err := service.UpdateItem(ctx, "FT-001", map[string]any{"itemBrand": "CIC", "catagory": "Seeds"})

				var verr *shareddomain.ValidationError
				Expect(errors.As(err, &verr)).To(BeTrue())
				Expect(verr.HasField("itemBrand")).To(BeTrue())
				Expect(verr.HasField("catagory")).To(BeTrue())
			})

			It("should accept the current values", func() {
				_, err := service.UpdateItem(ctx, "FT-001", map[string]any{"itemBrand": "Baur", "catagory": "Fertilizer"})

				Expect(err).NotTo(HaveOccurred())
			})
		})
	})

	Context("DeleteItem", func() {
		It("should return what was removed", func() {
			created, err := service.CreateItem(ctx, validFields("FT-001", 20))
			Expect(err).NotTo(HaveOccurred())

			deleted, err := service.DeleteItem(ctx, "FT-001")

			Expect(err).NotTo(HaveOccurred())
			Expect(deleted).To(Equal(created))
			Expect(mockRepository.items).To(BeEmpty())
		})

		It("should fail for an unknown item id", func() {
			_, err := service.DeleteItem(ctx, "missing")

			Expect(errors.Is(err, shareddomain.ErrNotFound)).To(BeTrue())
		})
	})

	Context("ListLowStock", func() {
		BeforeEach(func() {
			for id, stock := range map[string]int{"two": 2, "five": 5, "ten": 10} {
				_, err := service.CreateItem(ctx, validFields(id, stock))
				Expect(err).NotTo(HaveOccurred())
			}
		})

		It("should use the configured threshold by default", func() {
			items, err := service.ListLowStock(ctx, inventoryUsecases.DefaultThreshold)

			Expect(err).NotTo(HaveOccurred())
			Expect(items).To(HaveLen(1))
			Expect(items[0].ItemID).To(Equal("two"))
		})

		It("should honour an explicit threshold", func() {
			items, err := service.ListLowStock(ctx, 11)

			Expect(err).NotTo(HaveOccurred())
			Expect(items).To(HaveLen(3))
		})

		It("should return nothing for a zero threshold", func() {
			items, err := service.ListLowStock(ctx, 0)

			Expect(err).NotTo(HaveOccurred())
			Expect(items).To(BeEmpty())
		})
	})

	Context("ExportItems", func() {
		It("should render a csv with one row per item", func() {
			_, err := service.CreateItem(ctx, validFields("FT-001", 20))
			Expect(err).NotTo(HaveOccurred())

			var buf bytes.Buffer
			Expect(service.ExportItems(ctx, &buf, report.FormatCSV)).To(Succeed())

			lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
			Expect(lines).To(HaveLen(2))
			Expect(lines[0]).To(Equal("Item ID,Item Name,Brand,Price,Stock Count,Added Date"))
			Expect(lines[1]).To(Equal("FT-001,Urea 50kg,Baur,4500.5,20,2024-03-10"))
		})
	})
})
