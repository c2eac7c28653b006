package schema_test

import (
	"errors"
	"math"
	"time"

	"green-link/internal/shared_kernel/domain"
	"green-link/internal/shared_kernel/schema"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Schema", func() {
	var s schema.Schema

	BeforeEach(func() {
		s = schema.NewSchemaBuilder(domain.KindCrop).
			Required("name", "Name", schema.FieldTypeText).
			Optional("yield", "Yield", schema.FieldTypeNumber).NonNegative().
			Optional("count", "Count", schema.FieldTypeInteger).NonNegative().
			Optional("planted", "Planted", schema.FieldTypeDate).
			Optional("phone", "Phone", schema.FieldTypePhone).
			Optional("notes", "Notes", schema.FieldTypeText).
			Build()
	})

	validationFields := func(err error) []string {
		var verr *domain.ValidationError
		Expect(errors.As(err, &verr)).To(BeTrue())
		names := make([]string, len(verr.Fields))
		for i, f := range verr.Fields {
			names[i] = f.Field
		}
		return names
	}

	Context("Validate", func() {
		It("should normalize a valid record", func() {
			record, err := s.Validate(map[string]any{
				"name":    "  Rice ",
				"yield":   "12.5",
				"count":   float64(3),
				"planted": "2024-01-01",
				"phone":   "0712345678",
				"unknown": "ignored",
			})

			Expect(err).NotTo(HaveOccurred())
			Expect(record["name"]).To(Equal("Rice"))
			Expect(record["yield"]).To(Equal(12.5))
			Expect(record["count"]).To(Equal(3))
			Expect(record["planted"]).To(Equal(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)))
			Expect(record["phone"]).To(Equal("0712345678"))
			Expect(record.Has("unknown")).To(BeFalse())
			Expect(record.Has("notes")).To(BeFalse())
		})

		It("should treat empty strings and missing keys as absent", func() {
			_, err := s.Validate(map[string]any{"name": "   "})
			Expect(err).To(MatchError(domain.ErrValidation))
			Expect(validationFields(err)).To(Equal([]string{"name"}))

			_, err = s.Validate(map[string]any{})
			Expect(validationFields(err)).To(Equal([]string{"name"}))
		})

		It("should report every offending field in schema order", func() {
			_, err := s.Validate(map[string]any{
				"yield":   "lots",
				"count":   2.5,
				"planted": "not a date",
				"phone":   "12345",
			})

			Expect(validationFields(err)).To(Equal([]string{"name", "yield", "count", "planted", "phone"}))
		})

		It("should reject negative numbers", func() {
			_, err := s.Validate(map[string]any{"name": "Rice", "yield": -1, "count": "-2"})

			Expect(validationFields(err)).To(Equal([]string{"yield", "count"}))
		})

		It("should reject booleans in numeric fields", func() {
			_, err := s.Validate(map[string]any{"name": "Rice", "yield": true})

			Expect(validationFields(err)).To(Equal([]string{"yield"}))
		})

		It("should reject structured values in text fields", func() {
			_, err := s.Validate(map[string]any{"name": map[string]any{"a": 1}})

			Expect(validationFields(err)).To(Equal([]string{"name"}))
		})
	})

	DescribeTable("integer limits",
		func(raw any, accepted bool, expected int) {
			record, err := s.Validate(map[string]any{"name": "Rice", "count": raw})

			if !accepted {
				Expect(validationFields(err)).To(Equal([]string{"count"}))
				return
			}
			Expect(err).NotTo(HaveOccurred())
			Expect(record["count"]).To(Equal(expected))
		},
		Entry("largest accepted value", float64(2147483647), true, 2147483647),
		Entry("largest accepted value as text", "2147483647", true, 2147483647),
		Entry("negative zero", math.Copysign(0, -1), true, 0),
		Entry("negative zero as text", "-0", true, 0),
		Entry("just above the limit", "2147483648", false, 0),
		Entry("far beyond the limit", 1e19, false, 0),
		Entry("max int64 as text", "9223372036854775807", false, 0),
	)

	Context("ValidatePatch", func() {
		It("should only validate supplied fields", func() {
			record, err := s.ValidatePatch(map[string]any{"yield": 4})

			Expect(err).NotTo(HaveOccurred())
			Expect(record).To(HaveLen(1))
			Expect(record["yield"]).To(Equal(4.0))
		})

		It("should keep cleared optional fields as nil", func() {
			record, err := s.ValidatePatch(map[string]any{"notes": ""})

			Expect(err).NotTo(HaveOccurred())
			Expect(record.Has("notes")).To(BeTrue())
			notes, ok := record.String("notes")
			Expect(ok).To(BeTrue())
			Expect(notes).To(BeEmpty())
		})

		It("should not allow clearing a required field", func() {
			_, err := s.ValidatePatch(map[string]any{"name": ""})

			Expect(validationFields(err)).To(Equal([]string{"name"}))
		})
	})

	Context("Record accessors", func() {
		It("should distinguish absent and cleared values", func() {
			record := schema.Record{"yield": nil, "count": 2}

			yield, ok := record.Float("yield")
			Expect(ok).To(BeTrue())
			Expect(yield).To(BeNil())

			_, ok = record.Float("missing")
			Expect(ok).To(BeFalse())

			count, ok := record.Int("count")
			Expect(ok).To(BeTrue())
			Expect(*count).To(Equal(2))
		})
	})
})
