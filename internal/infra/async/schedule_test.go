package async_test

import (
	"time"

	"green-link/internal/infra/async"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Schedule", func() {
	start := time.Date(2024, 5, 10, 6, 30, 0, 0, time.UTC)

	It("should reject malformed expressions", func() {
		_, err := async.NewSchedule("every morning", start)
		Expect(err).To(HaveOccurred())
	})

	It("should fire once per activation", func() {
		schedule, err := async.NewSchedule("0 7 * * *", start)
		Expect(err).NotTo(HaveOccurred())
		Expect(schedule.Next()).To(Equal(time.Date(2024, 5, 10, 7, 0, 0, 0, time.UTC)))

		Expect(schedule.Due(start.Add(10 * time.Minute))).To(BeFalse())
		Expect(schedule.Due(start.Add(30 * time.Minute))).To(BeTrue())
		Expect(schedule.Due(start.Add(31 * time.Minute))).To(BeFalse())
		Expect(schedule.Next()).To(Equal(time.Date(2024, 5, 11, 7, 0, 0, 0, time.UTC)))
	})

	It("should collapse missed activations", func() {
		schedule, err := async.NewSchedule("*/5 * * * *", start)
		Expect(err).NotTo(HaveOccurred())

		Expect(schedule.Due(start.Add(time.Hour))).To(BeTrue())
		Expect(schedule.Due(start.Add(time.Hour))).To(BeFalse())
	})
})
