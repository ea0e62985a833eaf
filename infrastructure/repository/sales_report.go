package repository

//go:generate mockgen -source=sales_report.go -destination=mocks/mock_sales_report.go -package=mocks

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/market-sales-report/infrastructure/database/postgres"
	"github.com/vfg2006/market-sales-report/internal/domain"
)

const (
	salesReportTable = "sales_report"

	// maxRowsPerStatement mantém o INSERT abaixo do limite de parâmetros do postgres
	maxRowsPerStatement = 1000
)

var salesReportColumns = []string{
	"day",
	"month",
	"year",
	"category_name",
	"brand_name",
	"offer_id",
	"offer_name",
	"by_msku_shows",
	"visibility_index",
	"shows",
	"shows_with_promotion",
	"shows_share",
	"clicks",
	"clicks_with_promotion",
	"to_cart_conversion",
	"to_cart",
	"to_cart_with_promotion",
	"to_cart_share",
	"order_items",
	"order_items_with_promotion",
	"order_items_total_amount",
	"order_items_total_amount_with_promotion",
	"to_order_conversion",
	"order_items_share",
	"order_items_delivered_count",
	"order_items_delivered_count_with_promotion",
	"order_items_delivered_total_amount",
	"order_items_delivered_total_amount_with_promotion",
	"order_items_delivered_from_ordered_count",
	"order_items_delivered_from_ordered_total_amount",
	"order_items_delivered_from_ordered_total_amount_with_promotion",
	"order_items_canceled_count",
	"order_items_canceled_by_created_at_count",
	"order_items_returned_count",
	"order_items_returned_by_created_at_count",
}

type SalesReportRepository interface {
	// SaveBatch grava todos os registros em uma única transação: ou todos são confirmados ou nenhum
	SaveBatch(ctx context.Context, records []domain.ReportRecord) error
}

type salesReportRepository struct {
	conn postgres.Conn
}

func NewSalesReportRepository(conn postgres.Conn) SalesReportRepository {
	return &salesReportRepository{
		conn: conn,
	}
}

func (r *salesReportRepository) SaveBatch(ctx context.Context, records []domain.ReportRecord) error {
	if len(records) == 0 {
		return nil
	}

	return r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		for start := 0; start < len(records); start += maxRowsPerStatement {
			end := min(start+maxRowsPerStatement, len(records))

			query, args, err := buildSalesReportInsert(records[start:end])
			if err != nil {
				return fmt.Errorf("erro ao construir a query: %w", err)
			}

			if _, err := tx.ExecContext(ctx, query, args...); err != nil {
				var pqErr *pq.Error
				if errors.As(err, &pqErr) {
					return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
				}
				return fmt.Errorf("erro ao executar a query: %w", err)
			}
		}

		return nil
	})
}

func buildSalesReportInsert(records []domain.ReportRecord) (string, []interface{}, error) {
	builder := squirrel.StatementBuilder.
		Insert(salesReportTable).
		Columns(salesReportColumns...).
		PlaceholderFormat(squirrel.Dollar)

	for i := range records {
		builder = builder.Values(salesReportValues(&records[i])...)
	}

	return builder.ToSql()
}

// salesReportValues segue a mesma ordem de salesReportColumns
func salesReportValues(r *domain.ReportRecord) []interface{} {
	return []interface{}{
		r.Day,
		r.Month,
		r.Year,
		r.CategoryName,
		r.BrandName,
		r.OfferID,
		r.OfferName,
		r.ByMskuShows,
		r.VisibilityIndex,
		r.Shows,
		r.ShowsWithPromotion,
		r.ShowsShare,
		r.Clicks,
		r.ClicksWithPromotion,
		r.ToCartConversion,
		r.ToCart,
		r.ToCartWithPromotion,
		r.ToCartShare,
		r.OrderItems,
		r.OrderItemsWithPromotion,
		r.OrderItemsTotalAmount,
		r.OrderItemsTotalAmountWithPromotion,
		r.ToOrderConversion,
		r.OrderItemsShare,
		r.OrderItemsDeliveredCount,
		r.OrderItemsDeliveredCountWithPromotion,
		r.OrderItemsDeliveredTotalAmount,
		r.OrderItemsDeliveredTotalAmountWithPromotion,
		r.OrderItemsDeliveredFromOrderedCount,
		r.OrderItemsDeliveredFromOrderedTotalAmount,
		r.OrderItemsDeliveredFromOrderedTotalAmountWithPromotion,
		r.OrderItemsCanceledCount,
		r.OrderItemsCanceledByCreatedAtCount,
		r.OrderItemsReturnedCount,
		r.OrderItemsReturnedByCreatedAtCount,
	}
}
