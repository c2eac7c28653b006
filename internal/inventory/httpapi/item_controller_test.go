package httpapi_test

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"

	"green-link/internal/infra/httpserver"
	inventoryDomain "green-link/internal/inventory/domain"
	inventoryHTTPAPI "green-link/internal/inventory/httpapi"
	inventoryUsecases "green-link/internal/inventory/usecases"
	shareddomain "green-link/internal/shared_kernel/domain"
	"green-link/internal/shared_kernel/report"
	mockusecases "green-link/test/unit/doubles/inventory/usecases"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/tidwall/gjson"
	"go.uber.org/mock/gomock"
)

var _ = Describe("ItemController", func() {
	var (
		ctrl        *gomock.Controller
		mockService *mockusecases.MockItemService
		router      *http.ServeMux
		recorder    *httptest.ResponseRecorder
		item        inventoryDomain.Item
	)

	BeforeEach(func() {
		slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))
		ctrl = gomock.NewController(GinkgoT())
		mockService = mockusecases.NewMockItemService(ctrl)
		router = http.NewServeMux()
		inventoryHTTPAPI.NewItemController(mockService).AddRoutes(router)
		recorder = httptest.NewRecorder()

		var err error
		item, err = inventoryDomain.NewItemBuilder().
			WithItemID("FT-001").
			WithItemName("Urea").
			WithItemBrand("Baur").
			WithItemPrice(4500).
			WithStockCount(3).
			Build()
		Expect(err).NotTo(HaveOccurred())
	})

	AfterEach(func() {
		ctrl.Finish()
	})

	serve := func(method, target, body string) {
		var reader io.Reader
		if body != "" {
			reader = strings.NewReader(body)
		}
		router.ServeHTTP(recorder, httptest.NewRequest(method, target, reader))
	}

	Context("createItem", func() {
		It("should reply 201 with the stored item", func() {
			mockService.EXPECT().
				CreateItem(gomock.Any(), map[string]any{"itemID": "FT-001", "stockCount": float64(3)}).
				Return(item, nil)

			serve("POST", "/v1/inventory", `{"itemID":"FT-001","stockCount":3}`)

			Expect(recorder.Code).To(Equal(http.StatusCreated))
			Expect(gjson.GetBytes(recorder.Body.Bytes(), "itemID").String()).To(Equal("FT-001"))
		})

		It("should reply 400 for a taken item id", func() {
			mockService.EXPECT().CreateItem(gomock.Any(), gomock.Any()).
				Return(inventoryDomain.Item{}, &shareddomain.ConflictError{Kind: shareddomain.KindInventoryItem, Key: "FT-001"})

			serve("POST", "/v1/inventory", `{"itemID":"FT-001"}`)

			Expect(recorder.Code).To(Equal(http.StatusBadRequest))
			Expect(recorder.Body.String()).To(ContainSubstring("FT-001"))
		})

		It("should reject a body that is not an object", func() {
			serve("POST", "/v1/inventory", `[1,2]`)

			Expect(recorder.Code).To(Equal(http.StatusBadRequest))
			Expect(recorder.Body.String()).To(ContainSubstring(httpserver.ErrMalformedBody.Error()))
		})
	})

	Context("listItems", func() {
		It("should pass the search term", func() {
			mockService.EXPECT().
				ListItems(gomock.Any(), inventoryUsecases.ItemFilter{Query: "urea"}).
				Return([]inventoryDomain.Item{item}, 1, nil)

			serve("GET", "/v1/inventory?q=urea", "")

			Expect(recorder.Code).To(Equal(http.StatusOK))
			Expect(gjson.GetBytes(recorder.Body.Bytes(), "data.0.itemName").String()).To(Equal("Urea"))
		})
	})

	Context("listLowStock", func() {
		It("should use the configured threshold without a parameter", func() {
			mockService.EXPECT().ListLowStock(gomock.Any(), inventoryUsecases.DefaultThreshold).
				Return([]inventoryDomain.Item{item}, nil)

			serve("GET", "/v1/inventory/low-stock", "")

			Expect(recorder.Code).To(Equal(http.StatusOK))
			Expect(gjson.GetBytes(recorder.Body.Bytes(), "total").Int()).To(Equal(int64(1)))
		})

		It("should forward an explicit threshold", func() {
			mockService.EXPECT().ListLowStock(gomock.Any(), 10).Return([]inventoryDomain.Item{}, nil)

			serve("GET", "/v1/inventory/low-stock?threshold=10", "")

			Expect(recorder.Code).To(Equal(http.StatusOK))
		})

		It("should reject a negative threshold", func() {
			serve("GET", "/v1/inventory/low-stock?threshold=-4", "")

			Expect(recorder.Code).To(Equal(http.StatusBadRequest))
		})

		It("should reject a threshold that is not an integer", func() {
			serve("GET", "/v1/inventory/low-stock?threshold=abc", "")

			Expect(recorder.Code).To(Equal(http.StatusBadRequest))
			Expect(gjson.GetBytes(recorder.Body.Bytes(), "message").String()).
				To(Equal("threshold must be a non-negative integer"))
		})
	})

	Context("getItem", func() {
		It("should look items up by item id", func() {
			mockService.EXPECT().GetItem(gomock.Any(), "FT-001").Return(item, nil)

			serve("GET", "/v1/inventory/FT-001", "")

			Expect(recorder.Code).To(Equal(http.StatusOK))
			Expect(gjson.GetBytes(recorder.Body.Bytes(), "id").String()).To(Equal(item.ID.String()))
		})

		It("should reply 404 for unknown items", func() {
			mockService.EXPECT().GetItem(gomock.Any(), "nope").
				Return(inventoryDomain.Item{}, &shareddomain.NotFoundError{Kind: shareddomain.KindInventoryItem, Key: "nope"})

			serve("GET", "/v1/inventory/nope", "")

			Expect(recorder.Code).To(Equal(http.StatusNotFound))
		})
	})

	Context("updateItem", func() {
		It("should apply the patch", func() {
			mockService.EXPECT().UpdateItem(gomock.Any(), "FT-001", map[string]any{"stockCount": float64(9)}).
				Return(item, nil)

			serve("PATCH", "/v1/inventory/FT-001", `{"stockCount":9}`)

			Expect(recorder.Code).To(Equal(http.StatusOK))
		})

		It("should hide internal failures", func() {
			mockService.EXPECT().UpdateItem(gomock.Any(), "FT-001", gomock.Any()).
				Return(inventoryDomain.Item{}, errors.New("boom"))

			serve("PUT", "/v1/inventory/FT-001", `{"stockCount":9}`)

			Expect(recorder.Code).To(Equal(http.StatusInternalServerError))
			Expect(recorder.Body.String()).To(ContainSubstring("failed to update inventory item"))
		})
	})

	Context("deleteItem", func() {
		It("should return the deleted item", func() {
			mockService.EXPECT().DeleteItem(gomock.Any(), "FT-001").Return(item, nil)

			serve("DELETE", "/v1/inventory/FT-001", "")

			Expect(recorder.Code).To(Equal(http.StatusOK))
			Expect(gjson.GetBytes(recorder.Body.Bytes(), "itemBrand").String()).To(Equal("Baur"))
		})
	})

	Context("exportItems", func() {
		It("should stream an xlsx attachment", func() {
			mockService.EXPECT().ExportItems(gomock.Any(), gomock.Any(), report.FormatXLSX).Return(nil)

			serve("GET", "/v1/inventory/export?format=xlsx", "")

			Expect(recorder.Code).To(Equal(http.StatusOK))
			Expect(recorder.Header().Get("Content-Disposition")).To(ContainSubstring("inventory.xlsx"))
		})
	})
})
