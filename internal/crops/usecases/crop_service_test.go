package usecases_test

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"time"

	cropsDomain "green-link/internal/crops/domain"
	cropsUsecases "green-link/internal/crops/usecases"
	"green-link/internal/infra/utils"
	shareddomain "green-link/internal/shared_kernel/domain"
	"green-link/internal/shared_kernel/report"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("CropService", func() {
	var (
		service        *cropsUsecases.SimpleCropService
		mockRepository *mockCropRepository
		now            time.Time
		ctx            context.Context
	)

	validFields := func() map[string]any {
		return map[string]any{
			"name":                "Paddy",
			"type":                "Cereal",
			"season":              "Maha",
			"yieldPerAcre":        "42.5",
			"plantingDate":        "2024-01-01",
			"expectedHarvestDate": "2024-04-01",
			"phone":               "0771234567",
		}
	}

	BeforeEach(func() {
		ctx = context.Background()
		now = time.Date(2024, 2, 15, 9, 0, 0, 0, time.UTC)
		mockRepository = newMockCropRepository()
		service = cropsUsecases.NewCropService(mockRepository, utils.FixedClock{At: now})
	})

	Context("CreateCrop", func() {
		When("the fields are valid", func() {
			It("should store the normalized crop", func() {
				crop, err := service.CreateCrop(ctx, validFields())

				Expect(err).NotTo(HaveOccurred())
				Expect(mockRepository.createCalled).To(BeTrue())
				Expect(crop.ID).NotTo(BeEmpty())
				Expect(crop.CreatedAt).To(Equal(now))
				Expect(*crop.YieldPerAcre).To(Equal(42.5))
				Expect(mockRepository.crops[crop.ID.String()]).To(Equal(crop))
			})
		})

		When("several fields are wrong", func() {
			It("should report all of them", func() {
				_, err := service.CreateCrop(ctx, map[string]any{
					"name":         "",
					"type":         "Cereal",
					"yieldPerAcre": -1,
					"phone":        "12345",
				})

				var verr *shareddomain.ValidationError
				Expect(errors.As(err, &verr)).To(BeTrue())
				Expect(verr.Fields).To(HaveLen(4))
				Expect(verr.HasField("name")).To(BeTrue())
				Expect(verr.HasField("season")).To(BeTrue())
				Expect(verr.HasField("yieldPerAcre")).To(BeTrue())
				Expect(verr.HasField("phone")).To(BeTrue())
				Expect(mockRepository.createCalled).To(BeFalse())
			})
		})

		When("the harvest is not after planting", func() {
			It("should name the harvest date", func() {
				fields := validFields()
				fields["expectedHarvestDate"] = "2024-01-01"

				_, err := service.CreateCrop(ctx, fields)

				var verr *shareddomain.ValidationError
				Expect(errors.As(err, &verr)).To(BeTrue())
				Expect(verr.HasField("expectedHarvestDate")).To(BeTrue())
				Expect(mockRepository.createCalled).To(BeFalse())
			})
		})

		When("the repository fails", func() {
			BeforeEach(func() {
				mockRepository.createError = errors.New("database error")
			})

			It("should report the collaborator as unavailable", func() {
				_, err := service.CreateCrop(ctx, validFields())

				Expect(err).To(MatchError(shareddomain.ErrUnavailable))
				Expect(err.Error()).To(ContainSubstring("creating crop"))
			})
		})
	})

	Context("ListCrops", func() {
		It("should return crops in insertion order", func() {
			first, _ := service.CreateCrop(ctx, validFields())
			fields := validFields()
			fields["name"] = "Maize"
			second, _ := service.CreateCrop(ctx, fields)

			crops, total, err := service.ListCrops(ctx, cropsUsecases.CropFilter{})

			Expect(err).NotTo(HaveOccurred())
			Expect(total).To(Equal(2))
			Expect(crops).To(Equal([]cropsDomain.Crop{first, second}))
		})

		It("should wrap repository failures", func() {
			mockRepository.findError = errors.New("timeout")

			_, _, err := service.ListCrops(ctx, cropsUsecases.CropFilter{})
			Expect(err).To(MatchError(shareddomain.ErrUnavailable))
		})
	})

	Context("GetCrop", func() {
		It("should return not found with the key", func() {
			_, err := service.GetCrop(ctx, "missing")

			var notFound *shareddomain.NotFoundError
			Expect(errors.As(err, &notFound)).To(BeTrue())
			Expect(notFound.Key).To(Equal("missing"))
			Expect(notFound.Kind).To(Equal(shareddomain.KindCrop))
		})
	})

	Context("UpdateCrop", func() {
		var stored cropsDomain.Crop

		BeforeEach(func() {
			stored, _ = service.CreateCrop(ctx, validFields())
		})

		It("should merge only the supplied fields", func() {
			updated, err := service.UpdateCrop(ctx, stored.ID, map[string]any{"season": "Yala", "soilType": "Loam"})

			Expect(err).NotTo(HaveOccurred())
			Expect(updated.Season).To(Equal("Yala"))
			Expect(*updated.SoilType).To(Equal("Loam"))
			Expect(updated.Name).To(Equal(stored.Name))
			Expect(updated.ID).To(Equal(stored.ID))
			Expect(mockRepository.crops[stored.ID.String()].Season).To(Equal("Yala"))
		})

		It("should clear optional fields sent empty", func() {
			updated, err := service.UpdateCrop(ctx, stored.ID, map[string]any{"phone": ""})

			Expect(err).NotTo(HaveOccurred())
			Expect(updated.Phone).To(BeNil())
		})

		It("should refuse to clear a required field", func() {
			_, err := service.UpdateCrop(ctx, stored.ID, map[string]any{"name": "  "})

			Expect(err).To(MatchError(shareddomain.ErrValidation))
			Expect(mockRepository.updateCalled).To(BeFalse())
		})

		It("should check the schedule against the stored dates", func() {
			_, err := service.UpdateCrop(ctx, stored.ID, map[string]any{"plantingDate": "2024-05-01"})

			var verr *shareddomain.ValidationError
			Expect(errors.As(err, &verr)).To(BeTrue())
			Expect(verr.HasField("expectedHarvestDate")).To(BeTrue())
		})

		It("should return not found for unknown crops", func() {
			_, err := service.UpdateCrop(ctx, "missing", map[string]any{"season": "Yala"})
			Expect(err).To(MatchError(shareddomain.ErrNotFound))
		})
	})

	Context("DeleteCrop", func() {
		It("should return the deleted snapshot", func() {
			stored, _ := service.CreateCrop(ctx, validFields())

			deleted, err := service.DeleteCrop(ctx, stored.ID)

			Expect(err).NotTo(HaveOccurred())
			Expect(deleted).To(Equal(stored))
			Expect(mockRepository.crops).To(BeEmpty())

			_, err = service.DeleteCrop(ctx, stored.ID)
			Expect(err).To(MatchError(shareddomain.ErrNotFound))
		})
	})

	Context("GrowthOf", func() {
		It("should use the service clock", func() {
			stored, _ := service.CreateCrop(ctx, validFields())

			growth := service.GrowthOf(stored)

			Expect(growth.Status).To(Equal(cropsDomain.GrowthStatusGrowing))
			Expect(growth.Progress).To(BeNumerically(">", 0.4))
			Expect(growth.Progress).To(BeNumerically("<", 0.6))
		})
	})

	Context("ExportCrops", func() {
		It("should render one row per crop with N/A for blanks", func() {
			service.CreateCrop(ctx, map[string]any{"name": "Maize", "type": "Cereal", "season": "Yala"})
			var buf bytes.Buffer

			Expect(service.ExportCrops(ctx, &buf, report.FormatCSV)).To(Succeed())

			lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
			Expect(lines).To(HaveLen(2))
			Expect(lines[0]).To(HavePrefix("Name,Type,Season,Yield per Acre"))
			Expect(lines[1]).To(Equal("Maize,Cereal,Yala,N/A,N/A,N/A,N/A,N/A,N/A,N/A,N/A,N/A"))
		})
	})
})
