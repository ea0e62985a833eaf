package loading

import (
	"strings"

	"github.com/vfg2006/market-sales-report/internal/domain"
	"github.com/vfg2006/market-sales-report/pkg/utils"
)

// setColumn aplica o valor bruto de uma célula ao campo da coluna.
// Devolve false para colunas que o relatório de vendas não conhece.
func setColumn(r *domain.ReportRecord, column, value string) bool {
	switch column {
	case "DAY":
		r.Day, r.Month, r.Year = utils.SplitReportDay(value)
	case "CATEGORY_NAME":
		r.CategoryName = utils.NullIfEmpty(value)
	case "BRAND_NAME":
		r.BrandName = utils.NullIfEmpty(value)
	case "OFFER_ID":
		r.OfferID = utils.NullIfEmpty(value)
	case "OFFER_NAME":
		r.OfferName = utils.NullIfEmpty(value)
	case "VISIBILITY_INDEX":
		r.VisibilityIndex = utils.NullIfEmpty(value)
	case "BY_MSKU_SHOWS":
		r.ByMskuShows = utils.ParseInteger(value)
	case "SHOWS":
		r.Shows = utils.ParseInteger(value)
	case "SHOWS_WITH_PROMOTION":
		r.ShowsWithPromotion = utils.ParseInteger(value)
	case "CLICKS":
		r.Clicks = utils.ParseInteger(value)
	case "CLICKS_WITH_PROMOTION":
		r.ClicksWithPromotion = utils.ParseInteger(value)
	case "TO_CART":
		r.ToCart = utils.ParseInteger(value)
	case "TO_CART_WITH_PROMOTION":
		r.ToCartWithPromotion = utils.ParseInteger(value)
	case "ORDER_ITEMS":
		r.OrderItems = utils.ParseInteger(value)
	case "ORDER_ITEMS_WITH_PROMOTION":
		r.OrderItemsWithPromotion = utils.ParseInteger(value)
	case "ORDER_ITEMS_TOTAL_AMOUNT":
		r.OrderItemsTotalAmount = utils.ParseInteger(value)
	case "ORDER_ITEMS_TOTAL_AMOUNT_WITH_PROMOTION":
		r.OrderItemsTotalAmountWithPromotion = utils.ParseInteger(value)
	case "ORDER_ITEMS_DELIVERED_COUNT":
		r.OrderItemsDeliveredCount = utils.ParseInteger(value)
	case "ORDER_ITEMS_DELIVERED_COUNT_WITH_PROMOTION":
		r.OrderItemsDeliveredCountWithPromotion = utils.ParseInteger(value)
	case "ORDER_ITEMS_DELIVERED_TOTAL_AMOUNT":
		r.OrderItemsDeliveredTotalAmount = utils.ParseInteger(value)
	case "ORDER_ITEMS_DELIVERED_TOTAL_AMOUNT_WITH_PROMOTION":
		r.OrderItemsDeliveredTotalAmountWithPromotion = utils.ParseInteger(value)
	case "ORDER_ITEMS_DELIVERED_FROM_ORDERED_COUNT":
		r.OrderItemsDeliveredFromOrderedCount = utils.ParseInteger(value)
	case "ORDER_ITEMS_DELIVERED_FROM_ORDERED_TOTAL_AMOUNT":
		r.OrderItemsDeliveredFromOrderedTotalAmount = utils.ParseInteger(value)
	case "ORDER_ITEMS_DELIVERED_FROM_ORDERED_TOTAL_AMOUNT_WITH_PROMOTION":
		r.OrderItemsDeliveredFromOrderedTotalAmountWithPromotion = utils.ParseInteger(value)
	case "ORDER_ITEMS_CANCELED_COUNT":
		r.OrderItemsCanceledCount = utils.ParseInteger(value)
	case "ORDER_ITEMS_CANCELED_BY_CREATED_AT_COUNT":
		r.OrderItemsCanceledByCreatedAtCount = utils.ParseInteger(value)
	case "ORDER_ITEMS_RETURNED_COUNT":
		r.OrderItemsReturnedCount = utils.ParseInteger(value)
	case "ORDER_ITEMS_RETURNED_BY_CREATED_AT_COUNT":
		r.OrderItemsReturnedByCreatedAtCount = utils.ParseInteger(value)
	case "SHOWS_SHARE":
		r.ShowsShare = utils.ParseDecimal(value)
	case "TO_CART_CONVERSION":
		r.ToCartConversion = utils.ParseDecimal(value)
	case "TO_CART_SHARE":
		r.ToCartShare = utils.ParseDecimal(value)
	case "TO_ORDER_CONVERSION":
		r.ToOrderConversion = utils.ParseDecimal(value)
	case "ORDER_ITEMS_SHARE":
		r.OrderItemsShare = utils.ParseDecimal(value)
	default:
		return false
	}

	return true
}

// normalizeHeader remove BOM, espaços e diferenças de caixa do nome da coluna
func normalizeHeader(name string) string {
	name = strings.TrimPrefix(name, "\ufeff")
	return strings.ToUpper(strings.TrimSpace(name))
}

// rowMapper converte as linhas de um arquivo em ReportRecord a partir do cabeçalho
type rowMapper struct {
	columns []string
	known   int
}

func newRowMapper(header []string) *rowMapper {
	m := &rowMapper{columns: make([]string, len(header))}

	var scratch domain.ReportRecord
	for i, name := range header {
		column := normalizeHeader(name)
		if setColumn(&scratch, column, "") {
			m.columns[i] = column
			m.known++
		}
	}

	return m
}

// mapRow devolve false para linhas sem nenhuma célula preenchida
func (m *rowMapper) mapRow(row []string) (domain.ReportRecord, bool) {
	var record domain.ReportRecord

	filled := false
	for i, value := range row {
		if i >= len(m.columns) {
			break
		}
		if strings.TrimSpace(value) != "" {
			filled = true
		}
		if m.columns[i] != "" {
			setColumn(&record, m.columns[i], value)
		}
	}

	return record, filled
}
