package sql_test

import (
	"context"
	"errors"
	"time"

	"green-link/internal/infra/sql"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
)

type plot struct {
	ID        string `gorm:"primaryKey"`
	Code      string `gorm:"uniqueIndex"`
	Name      string
	CreatedAt time.Time
}

var _ = ginkgo.Describe("ORM", func() {
	var (
		orm sql.ORM
		ctx context.Context
	)

	ginkgo.BeforeEach(func() {
		var err error
		orm, err = sql.NewMemoryORM()
		gomega.Expect(err).NotTo(gomega.HaveOccurred())
		gomega.Expect(orm.AutoMigrate(&plot{})).To(gomega.Succeed())
		ctx = context.Background()
	})

	ginkgo.Context("Error translation", func() {
		ginkgo.It("should map a missing row to ErrRecordNotFound", func() {
			var entity plot
			err := orm.WithContext(ctx).First(&entity, "id = ?", "missing").Error()

			gomega.Expect(err).To(gomega.MatchError(sql.ErrRecordNotFound))
		})

		ginkgo.It("should map a unique index violation to ErrDuplicatedKey", func() {
			gomega.Expect(orm.WithContext(ctx).Create(&plot{ID: "1", Code: "A"}).Error()).To(gomega.Succeed())

			err := orm.WithContext(ctx).Create(&plot{ID: "2", Code: "A"}).Error()

			gomega.Expect(errors.Is(err, sql.ErrDuplicatedKey)).To(gomega.BeTrue())
		})

		ginkgo.It("should keep memory databases isolated", func() {
			gomega.Expect(orm.WithContext(ctx).Create(&plot{ID: "1", Code: "A"}).Error()).To(gomega.Succeed())

			other, err := sql.NewMemoryORM()
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(other.AutoMigrate(&plot{})).To(gomega.Succeed())

			var count int64
			gomega.Expect(other.WithContext(ctx).Model(&plot{}).Count(&count).Error()).To(gomega.Succeed())
			gomega.Expect(count).To(gomega.Equal(int64(0)))
		})
	})

	ginkgo.Context("Transaction", func() {
		ginkgo.It("should roll back when the callback fails", func() {
			err := orm.Transaction(func(tx sql.ORM) error {
				if err := tx.Create(&plot{ID: "1", Code: "A"}).Error(); err != nil {
					return err
				}
				return errors.New("abort")
			})
			gomega.Expect(err).To(gomega.MatchError("abort"))

			var count int64
			gomega.Expect(orm.WithContext(ctx).Model(&plot{}).Count(&count).Error()).To(gomega.Succeed())
			gomega.Expect(count).To(gomega.Equal(int64(0)))
		})
	})

	ginkgo.Context("Queries", func() {
		ginkgo.It("should order, limit and offset", func() {
			base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
			for i, code := range []string{"A", "B", "C"} {
				entity := plot{ID: code, Code: code, CreatedAt: base.Add(time.Duration(i) * time.Hour)}
				gomega.Expect(orm.WithContext(ctx).Create(&entity).Error()).To(gomega.Succeed())
			}

			var entities []plot
			err := orm.WithTimeout(ctx, time.Second).
				Order("created_at DESC").
				Limit(2).
				Offset(1).
				Find(&entities).
				Error()

			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(entities).To(gomega.HaveLen(2))
			gomega.Expect(entities[0].Code).To(gomega.Equal("B"))
			gomega.Expect(entities[1].Code).To(gomega.Equal("A"))
		})
	})
})
