package domain_test

import (
	"time"

	"green-link/internal/crops/domain"
	shareddomain "green-link/internal/shared_kernel/domain"
	"green-link/internal/shared_kernel/schema"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Crop", func() {
	planting := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	Context("Builder", func() {
		It("should assign an id and timestamps", func() {
			crop, err := domain.NewCropBuilder().
				WithName("Paddy").
				WithType("Cereal").
				WithSeason("Maha").
				WithYieldPerAcre(40).
				Build()

			Expect(err).NotTo(HaveOccurred())
			Expect(crop.ID).NotTo(BeEmpty())
			Expect(crop.CreatedAt).NotTo(BeZero())
			Expect(*crop.YieldPerAcre).To(Equal(40.0))
		})

		It("should refuse crops without the required fields", func() {
			_, err := domain.NewCropBuilder().WithName("Paddy").Build()
			Expect(err).To(MatchError(domain.ErrIncompleteCrop))
		})

		It("should build from a validated record", func() {
			record, err := domain.CropSchema.Validate(map[string]any{
				"name":         " Maize ",
				"type":         "Cereal",
				"season":       "Yala",
				"plantingDate": "2024-03-01",
				"phone":        "0771234567",
			})
			Expect(err).NotTo(HaveOccurred())

			crop, err := domain.NewCropBuilder().WithRecord(record).Build()
			Expect(err).NotTo(HaveOccurred())
			Expect(crop.Name).To(Equal(shareddomain.Name("Maize")))
			Expect(crop.PlantingDate).To(HaveValue(Equal(planting)))
			Expect(crop.Phone).To(HaveValue(Equal("0771234567")))
			Expect(crop.SoilType).To(BeNil())
		})
	})

	Context("Apply", func() {
		It("should only touch supplied fields and clear emptied ones", func() {
			crop, _ := domain.NewCropBuilder().
				WithName("Maize").
				WithType("Cereal").
				WithSeason("Yala").
				WithPhone("0771234567").
				WithYieldPerAcre(12).
				Build()

			crop.Apply(schema.Record{"season": "Maha", "phone": nil, "yieldPerAcre": nil})

			Expect(crop.Name).To(Equal(shareddomain.Name("Maize")))
			Expect(crop.Season).To(Equal("Maha"))
			Expect(crop.Phone).To(BeNil())
			Expect(crop.YieldPerAcre).To(BeNil())
		})
	})

	Context("CheckSchedule", func() {
		It("should accept a harvest after planting", func() {
			crop, _ := domain.NewCropBuilder().WithName("a").WithType("b").WithSeason("c").
				WithPlantingDate(planting).
				WithExpectedHarvestDate(planting.AddDate(0, 3, 0)).
				Build()

			Expect(crop.CheckSchedule()).To(Succeed())
		})

		It("should reject a harvest on the planting day", func() {
			crop, _ := domain.NewCropBuilder().WithName("a").WithType("b").WithSeason("c").
				WithPlantingDate(planting).
				WithExpectedHarvestDate(planting).
				Build()

			err := crop.CheckSchedule()

			var verr *shareddomain.ValidationError
			Expect(err).To(BeAssignableToTypeOf(verr))
			Expect(err.(*shareddomain.ValidationError).HasField(domain.FieldExpectedHarvestDate)).To(BeTrue())
		})

		It("should ignore a single date", func() {
			crop, _ := domain.NewCropBuilder().WithName("a").WithType("b").WithSeason("c").
				WithExpectedHarvestDate(planting).
				Build()

			Expect(crop.CheckSchedule()).To(Succeed())
		})
	})

	It("should report growth at a given time", func() {
		crop, _ := domain.NewCropBuilder().WithName("a").WithType("b").WithSeason("c").
			WithPlantingDate(planting).
			WithExpectedHarvestDate(planting.AddDate(0, 0, 10)).
			Build()

		Expect(crop.GrowthAt(planting.AddDate(0, 0, 20)).Status).To(Equal(domain.GrowthStatusHarvested))
	})
})
