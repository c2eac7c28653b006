package avro_test

import (
	"time"

	"green-link/internal/shared_kernel/avro"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Codec", func() {
	It("should round trip a crop event with optional fields", func() {
		codec, err := avro.NewCodec(avro.CropChanged{})
		Expect(err).NotTo(HaveOccurred())

		yield := 22.5
		planted := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
		event := avro.CropChanged{
			Operation:    string(avro.OperationCreated),
			ID:           "8d0f5e3a-8a8b-4c55-9a4e-6f0f2b1c9f10",
			Name:         "Maize",
			Type:         "Cereal",
			Season:       "Yala",
			YieldPerAcre: &yield,
			PlantingDate: &planted,
			OccurredAt:   time.Date(2024, 3, 2, 10, 30, 0, 0, time.UTC),
		}

		data, err := codec.Encode(event)
		Expect(err).NotTo(HaveOccurred())

		decoded, err := codec.Decode(data)
		Expect(err).NotTo(HaveOccurred())

		crop, ok := decoded.(*avro.CropChanged)
		Expect(ok).To(BeTrue())
		Expect(crop.Name).To(Equal("Maize"))
		Expect(*crop.YieldPerAcre).To(Equal(22.5))
		Expect(crop.PlantingDate.Equal(planted)).To(BeTrue())
		Expect(crop.ExpectedHarvestDate).To(BeNil())
		Expect(crop.OccurredAt).To(BeTemporally("~", event.OccurredAt, time.Millisecond))
	})

	It("should round trip an inventory event given by pointer", func() {
		codec, err := avro.NewCodec(&avro.InventoryItemChanged{})
		Expect(err).NotTo(HaveOccurred())

		data, err := codec.Encode(&avro.InventoryItemChanged{
			Operation:  string(avro.OperationDeleted),
			ID:         "a1",
			ItemID:     "SKU-1",
			ItemName:   "Urea",
			ItemBrand:  "Baur",
			ItemPrice:  1450.5,
			StockCount: 3,
			OccurredAt: time.Now(),
		})
		Expect(err).NotTo(HaveOccurred())

		decoded, err := codec.Decode(data)
		Expect(err).NotTo(HaveOccurred())
		Expect(decoded.(*avro.InventoryItemChanged).StockCount).To(Equal(3))
		Expect(decoded.(*avro.InventoryItemChanged).Operation).To(Equal("deleted"))
	})

	It("should reject unknown prototypes", func() {
		_, err := avro.NewCodec(struct{ Name string }{})
		Expect(err).To(HaveOccurred())

		_, err = avro.NewCodec(nil)
		Expect(err).To(HaveOccurred())
	})

	It("should refuse to encode another event type", func() {
		codec, err := avro.NewCodec(avro.CropChanged{})
		Expect(err).NotTo(HaveOccurred())

		_, err = codec.Encode(avro.InventoryItemChanged{})
		Expect(err).To(HaveOccurred())
	})
})
