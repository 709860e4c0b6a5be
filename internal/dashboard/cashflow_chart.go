package dashboard

import (
	"fmt"
	"sort"
	"time"

	"trucklog-backend/internal/database"
	"trucklog-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

type CashflowPoint struct {
	Label    string  `json:"label"` // day / week start / month start
	Receipts float64 `json:"receipts"`
	Payments float64 `json:"payments"`
	Net      float64 `json:"net"`
}

type CashflowGrandTotals struct {
	Receipts float64 `json:"receipts"`
	Payments float64 `json:"payments"`
	Net      float64 `json:"net"`
}

type CashflowChartResponse struct {
	Period      string              `json:"period"` // daily | weekly | monthly
	From        string              `json:"from"`
	To          string              `json:"to"`
	Points      []CashflowPoint     `json:"points"`
	GrandTotals CashflowGrandTotals `json:"grand_totals"`
}

// GET /api/dashboard/cashflow-chart?period=daily&count=7
func CashflowChartHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		period := c.Query("period", "daily") // daily | weekly | monthly
		countStr := c.Query("count", "")

		var count int
		if countStr == "" {
			switch period {
			case "weekly":
				count = 8
			case "monthly":
				count = 12
			default:
				period = "daily"
				count = 7
			}
		} else {
			if _, err := fmt.Sscan(countStr, &count); err != nil || count <= 0 {
				return fiber.NewError(fiber.StatusBadRequest, "count is invalid")
			}
		}

		now := time.Now()
		loc := now.Location()
		end := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc)
		var start time.Time

		switch period {
		case "weekly":
			days := 7 * (count - 1)
			start = end.AddDate(0, 0, -days)
		case "monthly":
			end = time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, loc)
			start = end.AddDate(0, -(count - 1), 0)
		default:
			period = "daily"
			start = end.AddDate(0, 0, -(count - 1))
		}

		type row struct {
			Bucket time.Time `gorm:"column:bucket"`
			Type   string    `gorm:"column:type"`
			Total  float64   `gorm:"column:total"`
		}
		var rows []row

		var sql string
		switch period {
		case "weekly":
			sql = `
				SELECT date_trunc('week', date)::date AS bucket,
					   type,
					   SUM(amount) AS total
				FROM payments
				WHERE date >= ? AND date <= ?
				GROUP BY bucket, type
				ORDER BY bucket ASC;
			`
		case "monthly":
			sql = `
				SELECT date_trunc('month', date)::date AS bucket,
					   type,
					   SUM(amount) AS total
				FROM payments
				WHERE date >= ? AND date < ?
				GROUP BY bucket, type
				ORDER BY bucket ASC;
			`
			end = start.AddDate(0, count, 0).AddDate(0, 0, -1)
		default: // daily
			sql = `
				SELECT date::date AS bucket,
					   type,
					   SUM(amount) AS total
				FROM payments
				WHERE date >= ? AND date <= ?
				GROUP BY bucket, type
				ORDER BY bucket ASC;
			`
		}

		if err := database.DB.Raw(sql, start, end).Scan(&rows).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not aggregate payments")
		}

		type bucketAgg struct {
			Bucket   time.Time
			Receipts float64
			Payments float64
		}

		buckets := make(map[time.Time]*bucketAgg)
		for _, r := range rows {
			agg, ok := buckets[r.Bucket]
			if !ok {
				agg = &bucketAgg{Bucket: r.Bucket}
				buckets[r.Bucket] = agg
			}
			switch r.Type {
			case string(models.PaymentTypeReceipt):
				agg.Receipts += r.Total
			case string(models.PaymentTypePayment):
				agg.Payments += r.Total
			}
		}

		ordered := make([]bucketAgg, 0, len(buckets))
		for _, v := range buckets {
			ordered = append(ordered, *v)
		}
		sort.Slice(ordered, func(i, j int) bool {
			return ordered[i].Bucket.Before(ordered[j].Bucket)
		})

		points := make([]CashflowPoint, 0, len(ordered))
		grand := CashflowGrandTotals{}

		for _, b := range ordered {
			net := b.Receipts - b.Payments
			points = append(points, CashflowPoint{
				Label:    b.Bucket.Format("2006-01-02"),
				Receipts: b.Receipts,
				Payments: b.Payments,
				Net:      net,
			})

			grand.Receipts += b.Receipts
			grand.Payments += b.Payments
			grand.Net += net
		}

		resp := CashflowChartResponse{
			Period:      period,
			From:        start.Format("2006-01-02"),
			To:          end.Format("2006-01-02"),
			Points:      points,
			GrandTotals: grand,
		}

		return c.JSON(resp)
	}
}
